package ports

import (
	"context"

	"github.com/storegate/backoffice/internal/domains/catalog/domain"
)

// ItemUpdate carries the mutable fields of an item update request.
type ItemUpdate struct {
	Name          string
	Price         int64
	StockQuantity int64
}

// Service exposes catalog use cases to adapters.
type Service interface {
	AddItem(ctx context.Context, item *domain.Item) (*domain.Item, error)
	UpdateItem(ctx context.Context, id int64, update ItemUpdate) (*domain.Item, error)
	GetByID(ctx context.Context, id int64) (*domain.Item, error)
	List(ctx context.Context) ([]*domain.Item, error)
}
