package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/storegate/backoffice/internal/domains/orders/domain"
	"github.com/storegate/backoffice/internal/domains/orders/ports"
	platformpostgres "github.com/storegate/backoffice/internal/platform/postgres"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists orders and their lines in PostgreSQL using GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	repo := &Repository{db: db}
	if db != nil {
		_ = db.AutoMigrate(&orderRecord{}, &orderLineRecord{})
	}
	return repo
}

// orderRecord maps the order aggregate to a relational table. Lines cascade on
// insert through the association.
type orderRecord struct {
	ID        int64             `gorm:"primaryKey;column:id"`
	MemberID  int64             `gorm:"column:member_id;index"`
	OrderDate time.Time         `gorm:"column:order_date;index"`
	Status    string            `gorm:"column:status;type:varchar(16);index"`
	Lines     []orderLineRecord `gorm:"foreignKey:OrderID"`
	CreatedAt time.Time         `gorm:"column:created_at"`
	UpdatedAt time.Time         `gorm:"column:updated_at"`
}

func (orderRecord) TableName() string { return "orders" }

type orderLineRecord struct {
	ID         int64 `gorm:"primaryKey;column:id"`
	OrderID    int64 `gorm:"column:order_id;index"`
	ItemID     int64 `gorm:"column:item_id;index"`
	OrderPrice int64 `gorm:"column:order_price"`
	Count      int64 `gorm:"column:count"`
}

func (orderLineRecord) TableName() string { return "order_lines" }

// Save inserts a new order with its lines, or updates the status of an
// existing one. Line membership is immutable after creation, so updates never
// touch the line rows.
func (r *Repository) Save(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if order == nil {
		return nil, errors.New("order is nil")
	}
	db := platformpostgres.DB(ctx, r.db)
	if order.ID == 0 {
		record := toRecord(order)
		if err := db.WithContext(ctx).Create(&record).Error; err != nil {
			return nil, err
		}
		return r.GetByID(ctx, record.ID)
	}
	result := db.WithContext(ctx).Model(&orderRecord{}).
		Where("id = ?", order.ID).
		Updates(map[string]any{
			"status":     string(order.Status),
			"updated_at": gorm.Expr("NOW()"),
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ports.ErrNotFound
	}
	return r.GetByID(ctx, order.ID)
}

// GetByID fetches an order with its lines.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record orderRecord
	db := platformpostgres.DB(ctx, r.db)
	if err := db.WithContext(ctx).Preload("Lines").First(&record, "orders.id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

// Find filters orders by buyer name substring and status, newest first. The
// name filter joins the members table owned by the members context.
func (r *Repository) Find(ctx context.Context, search domain.OrderSearch) ([]*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	db := platformpostgres.DB(ctx, r.db)
	query := db.WithContext(ctx).Model(&orderRecord{}).Preload("Lines")
	if search.MemberName != "" {
		query = query.
			Joins("JOIN members ON members.id = orders.member_id").
			Where("members.name LIKE ?", "%"+search.MemberName+"%")
	}
	if search.Status != "" {
		query = query.Where("orders.status = ?", string(search.Status))
	}
	var records []orderRecord
	if err := query.Order("orders.order_date DESC").Find(&records).Error; err != nil {
		return nil, err
	}
	orders := make([]*domain.Order, 0, len(records))
	for i := range records {
		orders = append(orders, records[i].toDomain())
	}
	return orders, nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres order repository not configured")
	}
	return nil
}

func toRecord(order *domain.Order) orderRecord {
	record := orderRecord{
		ID:        order.ID,
		MemberID:  order.MemberID,
		OrderDate: order.OrderDate,
		Status:    string(order.Status),
	}
	for _, line := range order.Lines {
		record.Lines = append(record.Lines, orderLineRecord{
			ID:         line.ID,
			OrderID:    order.ID,
			ItemID:     line.ItemID,
			OrderPrice: line.OrderPrice,
			Count:      line.Count,
		})
	}
	return record
}

func (r orderRecord) toDomain() *domain.Order {
	order := &domain.Order{
		ID:        r.ID,
		MemberID:  r.MemberID,
		OrderDate: r.OrderDate,
		Status:    domain.Status(r.Status),
	}
	for _, line := range r.Lines {
		order.Lines = append(order.Lines, domain.OrderLine{
			ID:         line.ID,
			ItemID:     line.ItemID,
			OrderPrice: line.OrderPrice,
			Count:      line.Count,
		})
	}
	return order
}
