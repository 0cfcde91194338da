package application

import (
	"context"
	"errors"

	"github.com/storegate/backoffice/internal/domains/members/domain"
	"github.com/storegate/backoffice/internal/domains/members/ports"
)

// Service orchestrates member registration use cases.
type Service struct {
	repo ports.Repository
}

func NewService(repo ports.Repository) *Service {
	return &Service{repo: repo}
}

// Join registers a member after checking no member with the same name exists.
// Known limitation: the check and the insert are not atomic, so two
// simultaneous joins with the same name can both pass the check. The schema
// deliberately carries no unique constraint so the observable behavior stays
// a plain check-then-insert.
func (s *Service) Join(ctx context.Context, member *domain.Member) (int64, error) {
	if member == nil {
		return 0, errors.New("member is nil")
	}
	if err := member.Validate(); err != nil {
		return 0, mapError(err)
	}
	existing, err := s.repo.FindByName(ctx, member.Name)
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		return 0, ErrDuplicateName
	}
	saved, err := s.repo.Save(ctx, member)
	if err != nil {
		return 0, err
	}
	return saved.ID, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Member, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*domain.Member, error) {
	return s.repo.List(ctx)
}

// UpdateName loads the member, renames it, and submits the change.
func (s *Service) UpdateName(ctx context.Context, id int64, name string) (*domain.Member, error) {
	member, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := member.Rename(name); err != nil {
		return nil, mapError(err)
	}
	return s.repo.Save(ctx, member)
}

var _ ports.Service = (*Service)(nil)
