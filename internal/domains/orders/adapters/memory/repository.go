package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	membersdomain "github.com/storegate/backoffice/internal/domains/members/domain"
	"github.com/storegate/backoffice/internal/domains/orders/domain"
	"github.com/storegate/backoffice/internal/domains/orders/ports"
)

var _ ports.Repository = (*Repository)(nil)

// memberDirectory resolves buyer names for the member-name search filter.
type memberDirectory interface {
	GetByID(ctx context.Context, id int64) (*membersdomain.Member, error)
}

// Repository is an in-memory order persistence adapter.
type Repository struct {
	mu         sync.RWMutex
	orders     map[int64]*domain.Order
	nextID     int64
	nextLineID int64
	members    memberDirectory
}

// NewRepository builds the adapter. members may be nil, in which case the
// member-name search filter matches nothing.
func NewRepository(members memberDirectory) *Repository {
	return &Repository{orders: map[int64]*domain.Order{}, members: members}
}

func (r *Repository) Save(_ context.Context, order *domain.Order) (*domain.Order, error) {
	if order == nil {
		return nil, errors.New("order is nil")
	}
	clone := cloneOrder(order)
	r.mu.Lock()
	defer r.mu.Unlock()
	if clone.ID == 0 {
		r.nextID++
		clone.ID = r.nextID
	} else if clone.ID > r.nextID {
		r.nextID = clone.ID
	}
	for i := range clone.Lines {
		if clone.Lines[i].ID == 0 {
			r.nextLineID++
			clone.Lines[i].ID = r.nextLineID
		}
	}
	r.orders[clone.ID] = clone
	return cloneOrder(clone), nil
}

func (r *Repository) GetByID(_ context.Context, id int64) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	order, ok := r.orders[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return cloneOrder(order), nil
}

// Find filters by member name substring and status, newest first.
func (r *Repository) Find(ctx context.Context, search domain.OrderSearch) ([]*domain.Order, error) {
	r.mu.RLock()
	snapshot := make([]*domain.Order, 0, len(r.orders))
	for _, order := range r.orders {
		snapshot = append(snapshot, cloneOrder(order))
	}
	r.mu.RUnlock()

	var result []*domain.Order
	for _, order := range snapshot {
		if search.Status != "" && order.Status != search.Status {
			continue
		}
		if search.MemberName != "" {
			name, err := r.memberName(ctx, order.MemberID)
			if err != nil {
				return nil, err
			}
			if !strings.Contains(name, search.MemberName) {
				continue
			}
		}
		result = append(result, order)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].OrderDate.After(result[j].OrderDate)
	})
	return result, nil
}

func (r *Repository) memberName(ctx context.Context, memberID int64) (string, error) {
	if r.members == nil {
		return "", nil
	}
	member, err := r.members.GetByID(ctx, memberID)
	if err != nil {
		return "", err
	}
	return member.Name, nil
}

func cloneOrder(order *domain.Order) *domain.Order {
	clone := *order
	clone.Lines = append([]domain.OrderLine(nil), order.Lines...)
	return &clone
}

// Transactor satisfies the workflow's transaction port for in-memory runs.
// It serializes workflow calls; rollback is not provided, which matches the
// dev/test role of the memory adapters.
type Transactor struct {
	mu sync.Mutex
}

func NewTransactor() *Transactor {
	return &Transactor{}
}

func (t *Transactor) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return fn(ctx)
}

var _ ports.Transactor = (*Transactor)(nil)
