package mapper

import (
	catalogdomain "github.com/storegate/backoffice/internal/domains/catalog/domain"
)

// Item is the transport-layer shape for catalog entries.
type Item struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	Kind          string   `json:"kind"`
	Price         int64    `json:"price"`
	StockQuantity int64    `json:"stockQuantity"`
	Author        string   `json:"author,omitempty"`
	ISBN          string   `json:"isbn,omitempty"`
	Artist        string   `json:"artist,omitempty"`
	Director      string   `json:"director,omitempty"`
	Actors        []string `json:"actors,omitempty"`
}

// ToDomainItem converts a transport item into the catalog domain model.
func ToDomainItem(item Item) (*catalogdomain.Item, error) {
	domainItem := &catalogdomain.Item{
		ID:            item.ID,
		Name:          item.Name,
		Kind:          catalogdomain.Kind(item.Kind),
		Price:         item.Price,
		StockQuantity: item.StockQuantity,
		Author:        item.Author,
		ISBN:          item.ISBN,
		Artist:        item.Artist,
		Director:      item.Director,
		Actors:        item.Actors,
	}
	if err := domainItem.Validate(); err != nil {
		return nil, err
	}
	return domainItem, nil
}

// FromDomainItem converts a domain item to the transport representation.
func FromDomainItem(item *catalogdomain.Item) Item {
	if item == nil {
		return Item{}
	}
	return Item{
		ID:            item.ID,
		Name:          item.Name,
		Kind:          string(item.Kind),
		Price:         item.Price,
		StockQuantity: item.StockQuantity,
		Author:        item.Author,
		ISBN:          item.ISBN,
		Artist:        item.Artist,
		Director:      item.Director,
		Actors:        item.Actors,
	}
}

// FromDomainItems maps a list of domain items.
func FromDomainItems(items []*catalogdomain.Item) []Item {
	result := make([]Item, 0, len(items))
	for _, item := range items {
		result = append(result, FromDomainItem(item))
	}
	return result
}
