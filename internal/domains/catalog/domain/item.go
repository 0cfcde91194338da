package domain

import (
	"errors"
	"strings"
)

// Kind tags the descriptive shape of an item. Ordering behavior does not vary
// by kind.
type Kind string

const (
	KindBook  Kind = "book"
	KindAlbum Kind = "album"
	KindMovie Kind = "movie"
)

var (
	ErrEmptyName      = errors.New("item name is required")
	ErrNegativePrice  = errors.New("item price must not be negative")
	ErrNegativeStock  = errors.New("item stock must not be negative")
	ErrInvalidKind    = errors.New("item kind is invalid")
	ErrNotEnoughStock = errors.New("not enough stock")
)

// Item models a purchasable catalog entry with tracked inventory.
type Item struct {
	ID            int64
	Name          string
	Kind          Kind
	Price         int64
	StockQuantity int64

	// Descriptive fields per kind; unused ones stay zero.
	Author   string
	ISBN     string
	Artist   string
	Director string
	Actors   []string
}

// NewItem validates and constructs a catalog item.
func NewItem(name string, kind Kind, price, stock int64) (*Item, error) {
	item := &Item{
		Name:          strings.TrimSpace(name),
		Kind:          kind,
		Price:         price,
		StockQuantity: stock,
	}
	if err := item.Validate(); err != nil {
		return nil, err
	}
	return item, nil
}

// Validate enforces invariants on the aggregate.
func (i *Item) Validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return ErrEmptyName
	}
	if !isValidKind(i.Kind) {
		return ErrInvalidKind
	}
	if i.Price < 0 {
		return ErrNegativePrice
	}
	if i.StockQuantity < 0 {
		return ErrNegativeStock
	}
	return nil
}

// DecreaseStock debits quantity units. Stock is left untouched when the debit
// would drive it negative.
func (i *Item) DecreaseStock(quantity int64) error {
	remaining := i.StockQuantity - quantity
	if remaining < 0 {
		return ErrNotEnoughStock
	}
	i.StockQuantity = remaining
	return nil
}

// IncreaseStock credits quantity units back, with no upper bound.
func (i *Item) IncreaseStock(quantity int64) {
	i.StockQuantity += quantity
}

// Rename updates the display name.
func (i *Item) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	i.Name = name
	return nil
}

// Reprice sets a new unit price. Existing orders keep the price captured at
// order time.
func (i *Item) Reprice(price int64) error {
	if price < 0 {
		return ErrNegativePrice
	}
	i.Price = price
	return nil
}

func isValidKind(kind Kind) bool {
	switch kind {
	case KindBook, KindAlbum, KindMovie:
		return true
	default:
		return false
	}
}
