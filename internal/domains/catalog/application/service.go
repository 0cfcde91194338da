package application

import (
	"context"
	"errors"

	"github.com/storegate/backoffice/internal/domains/catalog/domain"
	"github.com/storegate/backoffice/internal/domains/catalog/ports"
)

// Service orchestrates catalog use cases.
type Service struct {
	repo ports.Repository
}

func NewService(repo ports.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) AddItem(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	if item == nil {
		return nil, errors.New("item is nil")
	}
	if err := item.Validate(); err != nil {
		return nil, mapError(err)
	}
	return s.repo.Save(ctx, item)
}

// UpdateItem loads the item, applies the changed fields, and submits it back.
// The stock quantity is set absolutely; order placement and cancellation remain
// the only relative stock adjustments.
func (s *Service) UpdateItem(ctx context.Context, id int64, update ports.ItemUpdate) (*domain.Item, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := item.Rename(update.Name); err != nil {
		return nil, mapError(err)
	}
	if err := item.Reprice(update.Price); err != nil {
		return nil, mapError(err)
	}
	item.StockQuantity = update.StockQuantity
	if err := item.Validate(); err != nil {
		return nil, mapError(err)
	}
	return s.repo.Save(ctx, item)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Item, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*domain.Item, error) {
	return s.repo.List(ctx)
}

var _ ports.Service = (*Service)(nil)
