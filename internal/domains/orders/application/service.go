package application

import (
	"context"

	catalogdomain "github.com/storegate/backoffice/internal/domains/catalog/domain"
	"github.com/storegate/backoffice/internal/domains/orders/domain"
	"github.com/storegate/backoffice/internal/domains/orders/ports"
)

// Service orchestrates order placement and cancellation. Each workflow call
// runs inside one transaction scope so a mid-sequence failure leaves no
// partial state.
type Service struct {
	orders  ports.Repository
	items   ports.ItemStore
	members ports.MemberDirectory
	tx      ports.Transactor
}

func NewService(orders ports.Repository, items ports.ItemStore, members ports.MemberDirectory, tx ports.Transactor) *Service {
	return &Service{orders: orders, items: items, members: members, tx: tx}
}

// PlaceOrder loads the buyer and the item, creates the order line (debiting
// stock), builds the order, and submits both the debited item and the new
// order. Lookup failures and ErrNotEnoughStock propagate untranslated.
func (s *Service) PlaceOrder(ctx context.Context, memberID, itemID, count int64) (int64, error) {
	var orderID int64
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		member, err := s.members.GetByID(ctx, memberID)
		if err != nil {
			return err
		}
		item, err := s.items.GetByID(ctx, itemID)
		if err != nil {
			return err
		}
		line, err := domain.NewOrderLine(item, item.Price, count)
		if err != nil {
			return mapError(err)
		}
		order, err := domain.NewOrder(member.ID, line)
		if err != nil {
			return mapError(err)
		}
		if _, err := s.items.Save(ctx, item); err != nil {
			return err
		}
		saved, err := s.orders.Save(ctx, order)
		if err != nil {
			return err
		}
		orderID = saved.ID
		return nil
	})
	if err != nil {
		return 0, err
	}
	return orderID, nil
}

// CancelOrder flips the order to canceled and restores stock for every line.
// The status change and all stock restorations commit together or not at all.
func (s *Service) CancelOrder(ctx context.Context, orderID int64) error {
	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		order, err := s.orders.GetByID(ctx, orderID)
		if err != nil {
			return err
		}
		items := make(map[int64]*catalogdomain.Item, len(order.Lines))
		for _, line := range order.Lines {
			if _, ok := items[line.ItemID]; ok {
				continue
			}
			item, err := s.items.GetByID(ctx, line.ItemID)
			if err != nil {
				return err
			}
			items[line.ItemID] = item
		}
		if err := order.Cancel(items); err != nil {
			return err
		}
		for _, item := range items {
			if _, err := s.items.Save(ctx, item); err != nil {
				return err
			}
		}
		_, err = s.orders.Save(ctx, order)
		return err
	})
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	return s.orders.GetByID(ctx, id)
}

// FindOrders delegates the member-name and status filters to the repository.
func (s *Service) FindOrders(ctx context.Context, search domain.OrderSearch) ([]*domain.Order, error) {
	return s.orders.Find(ctx, search)
}

var _ ports.Service = (*Service)(nil)
