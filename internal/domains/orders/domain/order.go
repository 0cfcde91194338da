package domain

import (
	"errors"
	"fmt"
	"time"

	catalogdomain "github.com/storegate/backoffice/internal/domains/catalog/domain"
)

// Status enumerates order states. The only legal transition is
// StatusOrdered -> StatusCanceled.
type Status string

const (
	StatusOrdered  Status = "ORDER"
	StatusCanceled Status = "CANCEL"
)

var (
	ErrInvalidCount    = errors.New("order count must be greater than zero")
	ErrNoLines         = errors.New("order requires at least one line")
	ErrAlreadyCanceled = errors.New("order is already canceled")
)

// OrderLine binds one item to an order with the quantity and the unit price
// captured at order time. Lines exist only inside an order and their
// membership never changes after creation.
type OrderLine struct {
	ID         int64
	ItemID     int64
	OrderPrice int64
	Count      int64
}

// NewOrderLine debits count units from the item's stock and returns the line.
// This is the only path by which a sale decrements stock; on
// ErrNotEnoughStock the item is left untouched and no line is created.
func NewOrderLine(item *catalogdomain.Item, orderPrice, count int64) (OrderLine, error) {
	if item == nil {
		return OrderLine{}, errors.New("item is nil")
	}
	if count <= 0 {
		return OrderLine{}, ErrInvalidCount
	}
	if err := item.DecreaseStock(count); err != nil {
		return OrderLine{}, err
	}
	return OrderLine{
		ItemID:     item.ID,
		OrderPrice: orderPrice,
		Count:      count,
	}, nil
}

// TotalPrice is the line subtotal.
func (l OrderLine) TotalPrice() int64 {
	return l.OrderPrice * l.Count
}

// Cancel restores the debited quantity to the given item. The order is
// responsible for calling this exactly once per cancellation.
func (l OrderLine) Cancel(item *catalogdomain.Item) {
	if item == nil {
		return
	}
	item.IncreaseStock(l.Count)
}

// Order aggregates a buyer reference, its lines, a status, and the order
// timestamp. Stock was already debited when the lines were created.
type Order struct {
	ID        int64
	MemberID  int64
	Lines     []OrderLine
	OrderDate time.Time
	Status    Status
}

// NewOrder attaches the given lines to a fresh placed order.
func NewOrder(memberID int64, lines ...OrderLine) (*Order, error) {
	if len(lines) == 0 {
		return nil, ErrNoLines
	}
	return &Order{
		MemberID:  memberID,
		Lines:     append([]OrderLine(nil), lines...),
		OrderDate: time.Now(),
		Status:    StatusOrdered,
	}, nil
}

// TotalPrice sums the line subtotals.
func (o *Order) TotalPrice() int64 {
	var total int64
	for _, line := range o.Lines {
		total += line.TotalPrice()
	}
	return total
}

// Cancel flips the order to canceled and restores stock for every line. The
// caller supplies the loaded item handles, keyed by item id; the map must
// cover every line. Canceling twice fails before any stock is touched.
func (o *Order) Cancel(items map[int64]*catalogdomain.Item) error {
	if o.Status == StatusCanceled {
		return ErrAlreadyCanceled
	}
	for _, line := range o.Lines {
		if _, ok := items[line.ItemID]; !ok {
			return fmt.Errorf("item %d missing for cancellation", line.ItemID)
		}
	}
	o.Status = StatusCanceled
	for _, line := range o.Lines {
		line.Cancel(items[line.ItemID])
	}
	return nil
}

// OrderSearch filters the order listing. Zero values mean no filter; the
// member name matches as a substring.
type OrderSearch struct {
	MemberName string
	Status     Status
}
