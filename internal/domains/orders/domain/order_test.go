package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogdomain "github.com/storegate/backoffice/internal/domains/catalog/domain"
)

func newTestItem(t *testing.T, id, price, stock int64) *catalogdomain.Item {
	t.Helper()
	item, err := catalogdomain.NewItem("Book A", catalogdomain.KindBook, price, stock)
	require.NoError(t, err)
	item.ID = id
	return item
}

func TestNewOrderLine_DebitsStock(t *testing.T) {
	item := newTestItem(t, 1, 10000, 10)

	line, err := NewOrderLine(item, item.Price, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(8), item.StockQuantity)
	assert.Equal(t, int64(1), line.ItemID)
	assert.Equal(t, int64(10000), line.OrderPrice)
	assert.Equal(t, int64(20000), line.TotalPrice())
}

func TestNewOrderLine_NotEnoughStock(t *testing.T) {
	item := newTestItem(t, 1, 10000, 10)

	_, err := NewOrderLine(item, item.Price, 11)
	require.ErrorIs(t, err, catalogdomain.ErrNotEnoughStock)
	assert.Equal(t, int64(10), item.StockQuantity)
}

func TestNewOrderLine_InvalidCount(t *testing.T) {
	item := newTestItem(t, 1, 10000, 10)

	_, err := NewOrderLine(item, item.Price, 0)
	require.ErrorIs(t, err, ErrInvalidCount)
	_, err = NewOrderLine(item, item.Price, -3)
	require.ErrorIs(t, err, ErrInvalidCount)
	assert.Equal(t, int64(10), item.StockQuantity)
}

func TestNewOrder(t *testing.T) {
	item := newTestItem(t, 1, 10000, 10)
	line, err := NewOrderLine(item, item.Price, 2)
	require.NoError(t, err)

	order, err := NewOrder(7, line)
	require.NoError(t, err)
	assert.Equal(t, StatusOrdered, order.Status)
	assert.Equal(t, int64(7), order.MemberID)
	assert.Len(t, order.Lines, 1)
	assert.False(t, order.OrderDate.IsZero())
}

func TestNewOrder_RequiresLines(t *testing.T) {
	_, err := NewOrder(7)
	require.ErrorIs(t, err, ErrNoLines)
}

func TestOrderTotalPrice_SumsLines(t *testing.T) {
	first := newTestItem(t, 1, 10000, 10)
	second := newTestItem(t, 2, 2500, 4)

	lineOne, err := NewOrderLine(first, first.Price, 2)
	require.NoError(t, err)
	lineTwo, err := NewOrderLine(second, second.Price, 4)
	require.NoError(t, err)

	order, err := NewOrder(1, lineOne, lineTwo)
	require.NoError(t, err)
	assert.Equal(t, int64(20000+10000), order.TotalPrice())
}

func TestCancel_RestoresStock(t *testing.T) {
	item := newTestItem(t, 1, 10000, 10)
	line, err := NewOrderLine(item, item.Price, 2)
	require.NoError(t, err)
	order, err := NewOrder(1, line)
	require.NoError(t, err)
	require.Equal(t, int64(8), item.StockQuantity)

	err = order.Cancel(map[int64]*catalogdomain.Item{item.ID: item})
	require.NoError(t, err)
	assert.Equal(t, StatusCanceled, order.Status)
	assert.Equal(t, int64(10), item.StockQuantity)
}

func TestCancel_Twice_NoFurtherMutation(t *testing.T) {
	item := newTestItem(t, 1, 10000, 10)
	line, err := NewOrderLine(item, item.Price, 2)
	require.NoError(t, err)
	order, err := NewOrder(1, line)
	require.NoError(t, err)

	items := map[int64]*catalogdomain.Item{item.ID: item}
	require.NoError(t, order.Cancel(items))

	err = order.Cancel(items)
	require.ErrorIs(t, err, ErrAlreadyCanceled)
	assert.Equal(t, int64(10), item.StockQuantity)
}

func TestCancel_MissingItem_LeavesOrderPlaced(t *testing.T) {
	item := newTestItem(t, 1, 10000, 10)
	line, err := NewOrderLine(item, item.Price, 2)
	require.NoError(t, err)
	order, err := NewOrder(1, line)
	require.NoError(t, err)

	err = order.Cancel(map[int64]*catalogdomain.Item{})
	require.Error(t, err)
	assert.Equal(t, StatusOrdered, order.Status)
	assert.Equal(t, int64(8), item.StockQuantity)
}
