package ports

import (
	"context"
	"errors"

	"github.com/storegate/backoffice/internal/domains/members/domain"
)

var ErrNotFound = errors.New("member not found")

// Repository persists members.
type Repository interface {
	Save(ctx context.Context, member *domain.Member) (*domain.Member, error)
	GetByID(ctx context.Context, id int64) (*domain.Member, error)
	FindByName(ctx context.Context, name string) ([]*domain.Member, error)
	List(ctx context.Context) ([]*domain.Member, error)
}
