package ports

import (
	"context"

	"github.com/storegate/backoffice/internal/domains/orders/domain"
)

// Service exposes the order workflow to adapters.
type Service interface {
	PlaceOrder(ctx context.Context, memberID, itemID, count int64) (int64, error)
	CancelOrder(ctx context.Context, orderID int64) error
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	FindOrders(ctx context.Context, search domain.OrderSearch) ([]*domain.Order, error)
}
