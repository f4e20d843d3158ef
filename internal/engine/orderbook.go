package engine

import (
	"github.com/tidwall/btree"

	"github.com/joshuagourlay/Item-Exchange-Simulator/internal/common"
)

// priceLevel groups the resting orders sharing one price. Orders on a level
// are kept best-priority first: a new order at an existing price is placed
// ahead of the orders already resting there.
type priceLevel struct {
	price  float64
	orders []*common.Order
}

type priceLevels = btree.BTreeG[*priceLevel]

// OrderBook holds the resting orders of one side, best price first.
// Bids sort greatest-first, asks least-first, so MinMut is always top of
// book regardless of side.
type OrderBook struct {
	side   common.Side
	levels *priceLevels
	count  int
}

func NewOrderBook(side common.Side) *OrderBook {
	var less func(a, b *priceLevel) bool
	switch side {
	case common.Buy:
		// Sorted greatest first.
		less = func(a, b *priceLevel) bool { return a.price > b.price }
	default:
		// Sorted least first.
		less = func(a, b *priceLevel) bool { return a.price < b.price }
	}
	return &OrderBook{
		side:   side,
		levels: btree.NewBTreeG(less),
	}
}

func (book *OrderBook) Side() common.Side { return book.side }

func (book *OrderBook) IsEmpty() bool { return book.count == 0 }

// Len returns the number of resting orders across all price levels.
func (book *OrderBook) Len() int { return book.count }

// Insert places the order at the position preserving the book's price
// priority. At an existing price level the new order goes ahead of the
// orders already resting there. Callers guarantee order.Quantity > 0.
func (book *OrderBook) Insert(order *common.Order) {
	level, ok := book.levels.GetMut(&priceLevel{price: order.Price})
	if ok {
		level.orders = append([]*common.Order{order}, level.orders...)
	} else {
		book.levels.Set(&priceLevel{
			price:  order.Price,
			orders: []*common.Order{order},
		})
	}
	book.count++
}

// PeekBest returns the order at the top of the book without removing it,
// or nil if the book is empty.
func (book *OrderBook) PeekBest() *common.Order {
	level, ok := book.levels.MinMut()
	if !ok {
		return nil
	}
	return level.orders[0]
}

// PopBest removes and returns the order at the top of the book, or nil if
// the book is empty. A level is dropped as soon as its last order leaves.
func (book *OrderBook) PopBest() *common.Order {
	level, ok := book.levels.MinMut()
	if !ok {
		return nil
	}
	order := level.orders[0]
	level.orders = level.orders[1:]
	if len(level.orders) == 0 {
		book.levels.Delete(level)
	}
	book.count--
	return order
}

// Orders returns a snapshot of the resting orders, best price first. The
// returned slice is owned by the caller; the orders are not.
func (book *OrderBook) Orders() []*common.Order {
	orders := make([]*common.Order, 0, book.count)
	book.levels.Scan(func(level *priceLevel) bool {
		orders = append(orders, level.orders...)
		return true
	})
	return orders
}

// Drain removes every resting order head-first, invoking fn on each.
// Draining an empty book is a no-op.
func (book *OrderBook) Drain(fn func(*common.Order)) {
	for !book.IsEmpty() {
		fn(book.PopBest())
	}
}
