package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/storegate/backoffice/internal/domains/members/domain"
	"github.com/storegate/backoffice/internal/domains/members/ports"
	platformpostgres "github.com/storegate/backoffice/internal/platform/postgres"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists members in PostgreSQL using GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	repo := &Repository{db: db}
	if db != nil {
		_ = db.AutoMigrate(&memberRecord{})
	}
	return repo
}

// memberRecord maps the member to a relational table. The name column is
// indexed but not unique: duplicate registration is rejected by the service's
// check-then-insert, matching the observable behavior of the original system.
type memberRecord struct {
	ID        int64     `gorm:"primaryKey;column:id"`
	Name      string    `gorm:"column:name;index"`
	City      string    `gorm:"column:city"`
	Street    string    `gorm:"column:street"`
	Zipcode   string    `gorm:"column:zipcode"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (memberRecord) TableName() string { return "members" }

// Save inserts or updates a member.
func (r *Repository) Save(ctx context.Context, member *domain.Member) (*domain.Member, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if member == nil {
		return nil, errors.New("member is nil")
	}
	if err := member.Validate(); err != nil {
		return nil, err
	}
	record := toRecord(member)
	db := platformpostgres.DB(ctx, r.db)
	if err := db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"name":       record.Name,
				"city":       record.City,
				"street":     record.Street,
				"zipcode":    record.Zipcode,
				"updated_at": gorm.Expr("NOW()"),
			}),
		}).Create(&record).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, record.ID)
}

// GetByID fetches a member by identifier.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Member, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record memberRecord
	db := platformpostgres.DB(ctx, r.db)
	if err := db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

// FindByName returns members whose name matches exactly.
func (r *Repository) FindByName(ctx context.Context, name string) ([]*domain.Member, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []memberRecord
	db := platformpostgres.DB(ctx, r.db)
	if err := db.WithContext(ctx).Where("name = ?", name).Find(&records).Error; err != nil {
		return nil, err
	}
	return toDomainList(records), nil
}

// List returns all members.
func (r *Repository) List(ctx context.Context) ([]*domain.Member, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []memberRecord
	db := platformpostgres.DB(ctx, r.db)
	if err := db.WithContext(ctx).Order("id").Find(&records).Error; err != nil {
		return nil, err
	}
	return toDomainList(records), nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres member repository not configured")
	}
	return nil
}

func toRecord(member *domain.Member) memberRecord {
	return memberRecord{
		ID:      member.ID,
		Name:    member.Name,
		City:    member.Address.City,
		Street:  member.Address.Street,
		Zipcode: member.Address.Zipcode,
	}
}

func (r memberRecord) toDomain() *domain.Member {
	return &domain.Member{
		ID:   r.ID,
		Name: r.Name,
		Address: domain.Address{
			City:    r.City,
			Street:  r.Street,
			Zipcode: r.Zipcode,
		},
	}
}

func toDomainList(records []memberRecord) []*domain.Member {
	members := make([]*domain.Member, 0, len(records))
	for i := range records {
		members = append(members, records[i].toDomain())
	}
	return members
}
