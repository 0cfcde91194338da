package ports

import (
	"context"

	"github.com/storegate/backoffice/internal/domains/members/domain"
)

// Service exposes member registration use cases to adapters.
type Service interface {
	Join(ctx context.Context, member *domain.Member) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Member, error)
	List(ctx context.Context) ([]*domain.Member, error)
	UpdateName(ctx context.Context, id int64, name string) (*domain.Member, error)
}
