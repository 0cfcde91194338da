package mapper

import (
	"time"

	ordersdomain "github.com/storegate/backoffice/internal/domains/orders/domain"
)

// Order is the transport-layer shape for orders.
type Order struct {
	ID         int64       `json:"id"`
	MemberID   int64       `json:"memberId"`
	Lines      []OrderLine `json:"lines"`
	OrderDate  time.Time   `json:"orderDate"`
	Status     string      `json:"status"`
	TotalPrice int64       `json:"totalPrice"`
}

// OrderLine is the transport-layer shape for a single order line.
type OrderLine struct {
	ID         int64 `json:"id"`
	ItemID     int64 `json:"itemId"`
	OrderPrice int64 `json:"orderPrice"`
	Count      int64 `json:"count"`
	TotalPrice int64 `json:"totalPrice"`
}

// FromDomainOrder converts a domain order to the transport representation.
func FromDomainOrder(order *ordersdomain.Order) Order {
	if order == nil {
		return Order{}
	}
	result := Order{
		ID:         order.ID,
		MemberID:   order.MemberID,
		OrderDate:  order.OrderDate,
		Status:     string(order.Status),
		TotalPrice: order.TotalPrice(),
	}
	for _, line := range order.Lines {
		result.Lines = append(result.Lines, OrderLine{
			ID:         line.ID,
			ItemID:     line.ItemID,
			OrderPrice: line.OrderPrice,
			Count:      line.Count,
			TotalPrice: line.TotalPrice(),
		})
	}
	return result
}

// FromDomainOrders maps a list of domain orders.
func FromDomainOrders(orders []*ordersdomain.Order) []Order {
	result := make([]Order, 0, len(orders))
	for _, order := range orders {
		result = append(result, FromDomainOrder(order))
	}
	return result
}
