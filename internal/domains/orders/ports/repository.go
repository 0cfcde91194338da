package ports

import (
	"context"
	"errors"

	catalogdomain "github.com/storegate/backoffice/internal/domains/catalog/domain"
	membersdomain "github.com/storegate/backoffice/internal/domains/members/domain"
	"github.com/storegate/backoffice/internal/domains/orders/domain"
)

var ErrNotFound = errors.New("order not found")

// Repository persists orders together with their lines.
type Repository interface {
	Save(ctx context.Context, order *domain.Order) (*domain.Order, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	Find(ctx context.Context, search domain.OrderSearch) ([]*domain.Order, error)
}

// ItemStore is the slice of the catalog the workflow needs: load an item,
// submit its mutated stock. Satisfied by the catalog repository.
type ItemStore interface {
	GetByID(ctx context.Context, id int64) (*catalogdomain.Item, error)
	Save(ctx context.Context, item *catalogdomain.Item) (*catalogdomain.Item, error)
}

// MemberDirectory resolves buyers. Satisfied by the members repository.
type MemberDirectory interface {
	GetByID(ctx context.Context, id int64) (*membersdomain.Member, error)
}

// Transactor scopes one workflow call to a single atomic unit: every load and
// save inside fn commits or rolls back together.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
