package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem_Validates(t *testing.T) {
	item, err := NewItem("Kafka on the Shore", KindBook, 12000, 5)
	require.NoError(t, err)
	assert.Equal(t, "Kafka on the Shore", item.Name)
	assert.Equal(t, int64(12000), item.Price)
	assert.Equal(t, int64(5), item.StockQuantity)
}

func TestNewItem_InvalidInputs(t *testing.T) {
	_, err := NewItem("  ", KindBook, 100, 1)
	require.ErrorIs(t, err, ErrEmptyName)

	_, err = NewItem("x", Kind("vinyl"), 100, 1)
	require.ErrorIs(t, err, ErrInvalidKind)

	_, err = NewItem("x", KindAlbum, -1, 1)
	require.ErrorIs(t, err, ErrNegativePrice)

	_, err = NewItem("x", KindAlbum, 1, -1)
	require.ErrorIs(t, err, ErrNegativeStock)
}

func TestDecreaseStock(t *testing.T) {
	item, err := NewItem("Book A", KindBook, 10000, 10)
	require.NoError(t, err)

	require.NoError(t, item.DecreaseStock(4))
	assert.Equal(t, int64(6), item.StockQuantity)

	require.NoError(t, item.DecreaseStock(6))
	assert.Equal(t, int64(0), item.StockQuantity)
}

func TestDecreaseStock_NotEnough_LeavesStockUnchanged(t *testing.T) {
	item, err := NewItem("Book A", KindBook, 10000, 10)
	require.NoError(t, err)

	err = item.DecreaseStock(11)
	require.ErrorIs(t, err, ErrNotEnoughStock)
	assert.Equal(t, int64(10), item.StockQuantity)
}

func TestIncreaseStock_Unbounded(t *testing.T) {
	item, err := NewItem("Book A", KindBook, 10000, 0)
	require.NoError(t, err)

	item.IncreaseStock(3)
	item.IncreaseStock(7)
	assert.Equal(t, int64(10), item.StockQuantity)
}

func TestRenameAndReprice(t *testing.T) {
	item, err := NewItem("Old", KindMovie, 5000, 1)
	require.NoError(t, err)

	require.NoError(t, item.Rename("New"))
	assert.Equal(t, "New", item.Name)
	require.ErrorIs(t, item.Rename(" "), ErrEmptyName)

	require.NoError(t, item.Reprice(7000))
	assert.Equal(t, int64(7000), item.Price)
	require.ErrorIs(t, item.Reprice(-1), ErrNegativePrice)
}
