package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuagourlay/Item-Exchange-Simulator/internal/common"
	"github.com/joshuagourlay/Item-Exchange-Simulator/internal/engine"
)

// --- Setup & Helpers --------------------------------------------------------

func owners(orders []*common.Order) []string {
	names := make([]string, len(orders))
	for i, order := range orders {
		names[i] = order.Owner
	}
	return names
}

func fillBook(book *engine.OrderBook, side common.Side, entries ...float64) {
	for i, price := range entries {
		book.Insert(common.NewOrder(string(rune('A'+i)), side, price, 1))
	}
}

// --- Tests ------------------------------------------------------------------

func TestInsert_SellBookAscending(t *testing.T) {
	book := engine.NewOrderBook(common.Sell)

	// D rests first at 20, E arrives later at a better price.
	book.Insert(common.NewOrder("D", common.Sell, 20, 1))
	book.Insert(common.NewOrder("E", common.Sell, 15, 1))

	assert.Equal(t, []string{"E", "D"}, owners(book.Orders()))
}

func TestInsert_BuyBookDescending(t *testing.T) {
	book := engine.NewOrderBook(common.Buy)

	fillBook(book, common.Buy, 10, 20, 15)

	orders := book.Orders()
	require.Len(t, orders, 3)
	for i := 1; i < len(orders); i++ {
		assert.GreaterOrEqual(t, orders[i-1].Price, orders[i].Price,
			"Buy book must be non-increasing by price")
	}
	assert.Equal(t, []string{"B", "C", "A"}, owners(orders))
}

func TestInsert_EqualPriceNewOrderFirst(t *testing.T) {
	// Inherited tie rule: a new order at an existing price level goes
	// ahead of the orders already resting there. No time priority.
	book := engine.NewOrderBook(common.Buy)

	book.Insert(common.NewOrder("old", common.Buy, 10, 1))
	book.Insert(common.NewOrder("new", common.Buy, 10, 1))

	assert.Equal(t, []string{"new", "old"}, owners(book.Orders()))
}

func TestPeekBest_EmptyBook(t *testing.T) {
	book := engine.NewOrderBook(common.Sell)

	assert.Nil(t, book.PeekBest())
	assert.Nil(t, book.PopBest())
	assert.True(t, book.IsEmpty())
}

func TestPeekBest_DoesNotMutate(t *testing.T) {
	book := engine.NewOrderBook(common.Sell)
	fillBook(book, common.Sell, 20, 15)

	best := book.PeekBest()
	require.NotNil(t, best)
	assert.Equal(t, 15.0, best.Price)
	assert.Equal(t, 2, book.Len())
}

func TestPopBest_RemovesHeadAndLevel(t *testing.T) {
	book := engine.NewOrderBook(common.Sell)
	fillBook(book, common.Sell, 20, 15, 15)

	// Two orders share the 15 level; the later insert pops first.
	assert.Equal(t, "C", book.PopBest().Owner)
	assert.Equal(t, "B", book.PopBest().Owner)
	assert.Equal(t, "A", book.PopBest().Owner)
	assert.True(t, book.IsEmpty())
}

func TestDrain(t *testing.T) {
	book := engine.NewOrderBook(common.Buy)
	fillBook(book, common.Buy, 10, 12, 11)

	var drained []string
	book.Drain(func(order *common.Order) {
		drained = append(drained, order.Owner)
	})

	// Best price first: 12, 11, 10.
	assert.Equal(t, []string{"B", "C", "A"}, drained)
	assert.True(t, book.IsEmpty())

	book.Drain(func(order *common.Order) {
		t.Fatalf("drain of empty book visited %s", order.Owner)
	})
}
