package ports

import (
	"context"
	"errors"

	"github.com/storegate/backoffice/internal/domains/catalog/domain"
)

var ErrNotFound = errors.New("item not found")

// Repository persists catalog items.
type Repository interface {
	Save(ctx context.Context, item *domain.Item) (*domain.Item, error)
	GetByID(ctx context.Context, id int64) (*domain.Item, error)
	List(ctx context.Context) ([]*domain.Item, error)
}
