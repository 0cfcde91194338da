package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storegate/backoffice/internal/domains/catalog/domain"
	"github.com/storegate/backoffice/internal/domains/catalog/ports"
)

type fakeItemRepo struct {
	items  map[int64]*domain.Item
	nextID int64
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{items: map[int64]*domain.Item{}}
}

func (f *fakeItemRepo) Save(_ context.Context, item *domain.Item) (*domain.Item, error) {
	clone := *item
	if clone.ID == 0 {
		f.nextID++
		clone.ID = f.nextID
	}
	f.items[clone.ID] = &clone
	saved := clone
	return &saved, nil
}

func (f *fakeItemRepo) GetByID(_ context.Context, id int64) (*domain.Item, error) {
	item, ok := f.items[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	clone := *item
	return &clone, nil
}

func (f *fakeItemRepo) List(_ context.Context) ([]*domain.Item, error) {
	var list []*domain.Item
	for _, item := range f.items {
		clone := *item
		list = append(list, &clone)
	}
	return list, nil
}

func TestAddItem(t *testing.T) {
	svc := NewService(newFakeItemRepo())

	item, err := domain.NewItem("Book A", domain.KindBook, 10000, 10)
	require.NoError(t, err)

	saved, err := svc.AddItem(context.Background(), item)
	require.NoError(t, err)
	assert.Positive(t, saved.ID)
	assert.Equal(t, int64(10), saved.StockQuantity)
}

func TestAddItem_Invalid(t *testing.T) {
	svc := NewService(newFakeItemRepo())

	_, err := svc.AddItem(context.Background(), &domain.Item{Name: "x", Kind: domain.KindBook, Price: -5})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateItem(t *testing.T) {
	repo := newFakeItemRepo()
	svc := NewService(repo)

	item, err := domain.NewItem("Book A", domain.KindBook, 10000, 10)
	require.NoError(t, err)
	saved, err := svc.AddItem(context.Background(), item)
	require.NoError(t, err)

	updated, err := svc.UpdateItem(context.Background(), saved.ID, ports.ItemUpdate{
		Name:          "Book B",
		Price:         12000,
		StockQuantity: 7,
	})
	require.NoError(t, err)
	assert.Equal(t, "Book B", updated.Name)
	assert.Equal(t, int64(12000), updated.Price)
	assert.Equal(t, int64(7), updated.StockQuantity)
}

func TestUpdateItem_UnknownItem(t *testing.T) {
	svc := NewService(newFakeItemRepo())

	_, err := svc.UpdateItem(context.Background(), 42, ports.ItemUpdate{Name: "x"})
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestUpdateItem_NegativeStock(t *testing.T) {
	svc := NewService(newFakeItemRepo())

	item, err := domain.NewItem("Book A", domain.KindBook, 10000, 10)
	require.NoError(t, err)
	saved, err := svc.AddItem(context.Background(), item)
	require.NoError(t, err)

	_, err = svc.UpdateItem(context.Background(), saved.ID, ports.ItemUpdate{
		Name:          "Book A",
		Price:         10000,
		StockQuantity: -1,
	})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestList(t *testing.T) {
	svc := NewService(newFakeItemRepo())

	for _, name := range []string{"Book A", "Album B"} {
		item, err := domain.NewItem(name, domain.KindBook, 1000, 1)
		require.NoError(t, err)
		_, err = svc.AddItem(context.Background(), item)
		require.NoError(t, err)
	}

	items, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 2)
}
