package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/storegate/backoffice/internal/domains/catalog/domain"
	"github.com/storegate/backoffice/internal/domains/catalog/ports"
	platformpostgres "github.com/storegate/backoffice/internal/platform/postgres"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists catalog items in PostgreSQL using GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	repo := &Repository{db: db}
	if db != nil {
		_ = db.AutoMigrate(&itemRecord{})
	}
	return repo
}

// itemRecord maps the item aggregate to a relational table. Kind-specific
// descriptive fields share one table with a kind discriminator.
type itemRecord struct {
	ID            int64          `gorm:"primaryKey;column:id"`
	Name          string         `gorm:"column:name;index"`
	Kind          string         `gorm:"column:kind;type:varchar(16);index"`
	Price         int64          `gorm:"column:price"`
	StockQuantity int64          `gorm:"column:stock_quantity"`
	Author        string         `gorm:"column:author"`
	ISBN          string         `gorm:"column:isbn"`
	Artist        string         `gorm:"column:artist"`
	Director      string         `gorm:"column:director"`
	Actors        pq.StringArray `gorm:"column:actors;type:text[]"`
	CreatedAt     time.Time      `gorm:"column:created_at"`
	UpdatedAt     time.Time      `gorm:"column:updated_at"`
}

func (itemRecord) TableName() string { return "items" }

// Save inserts or updates an item. Runs on the ambient transaction when the
// context carries one.
func (r *Repository) Save(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if item == nil {
		return nil, errors.New("item is nil")
	}
	if err := item.Validate(); err != nil {
		return nil, err
	}
	record := toRecord(item)
	db := platformpostgres.DB(ctx, r.db)
	if err := db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"name":           record.Name,
				"kind":           record.Kind,
				"price":          record.Price,
				"stock_quantity": record.StockQuantity,
				"author":         record.Author,
				"isbn":           record.ISBN,
				"artist":         record.Artist,
				"director":       record.Director,
				"actors":         record.Actors,
				"updated_at":     gorm.Expr("NOW()"),
			}),
		}).Create(&record).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, record.ID)
}

// GetByID fetches an item by identifier.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Item, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record itemRecord
	db := platformpostgres.DB(ctx, r.db)
	if err := db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

// List returns all items.
func (r *Repository) List(ctx context.Context) ([]*domain.Item, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []itemRecord
	db := platformpostgres.DB(ctx, r.db)
	if err := db.WithContext(ctx).Order("id").Find(&records).Error; err != nil {
		return nil, err
	}
	items := make([]*domain.Item, 0, len(records))
	for i := range records {
		items = append(items, records[i].toDomain())
	}
	return items, nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres item repository not configured")
	}
	return nil
}

func toRecord(item *domain.Item) itemRecord {
	return itemRecord{
		ID:            item.ID,
		Name:          item.Name,
		Kind:          string(item.Kind),
		Price:         item.Price,
		StockQuantity: item.StockQuantity,
		Author:        item.Author,
		ISBN:          item.ISBN,
		Artist:        item.Artist,
		Director:      item.Director,
		Actors:        pq.StringArray(item.Actors),
	}
}

func (r itemRecord) toDomain() *domain.Item {
	return &domain.Item{
		ID:            r.ID,
		Name:          r.Name,
		Kind:          domain.Kind(r.Kind),
		Price:         r.Price,
		StockQuantity: r.StockQuantity,
		Author:        r.Author,
		ISBN:          r.ISBN,
		Artist:        r.Artist,
		Director:      r.Director,
		Actors:        []string(r.Actors),
	}
}
