package migrations

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Run applies the schema for the bounded contexts. Intended to replace
// adapter-level automigrate.
func Run(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	return db.AutoMigrate(
		&itemRecord{},
		&memberRecord{},
		&orderRecord{},
		&orderLineRecord{},
	)
}

// Item schema mirrors the catalog Postgres adapter.
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

// Member schema mirrors the members Postgres adapter. The name column is
// indexed, not unique: duplicate registration stays a service-level
// check-then-insert.
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

// Order and order line schemas mirror the orders Postgres adapter.
type orderRecord struct {
	ID        int64     `gorm:"primaryKey;column:id"`
	MemberID  int64     `gorm:"column:member_id;index"`
	OrderDate time.Time `gorm:"column:order_date;index"`
	Status    string    `gorm:"column:status;type:varchar(16);index"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
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
