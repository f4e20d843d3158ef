package engine

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/joshuagourlay/Item-Exchange-Simulator/internal/common"
)

// Engine matches incoming orders against the opposite book and rests any
// unfilled remainder on the same side. Single-threaded by contract: the
// owning command loop runs one operation to completion at a time.
type Engine struct {
	bids *OrderBook
	asks *OrderBook

	reporter common.Reporter
}

func New() *Engine {
	return &Engine{
		bids: NewOrderBook(common.Buy),
		asks: NewOrderBook(common.Sell),
	}
}

// SetReporter injects the sink for fill and lifecycle events. A nil
// reporter silently drops them.
func (e *Engine) SetReporter(r common.Reporter) {
	e.reporter = r
}

func (e *Engine) Bids() *OrderBook { return e.bids }
func (e *Engine) Asks() *OrderBook { return e.asks }

// PlaceOrder matches the incoming order against the opposite book and rests
// any remainder. The order must not be touched by the caller afterwards:
// ownership moves to the engine, which either rests or drops it.
func (e *Engine) PlaceOrder(order *common.Order) {
	order.Timestamp = time.Now()

	// Input validation guarantees a positive quantity; a non-positive one
	// is treated as an already filled order and never inserted.
	if order.Quantity <= 0 {
		order.Quantity = 0
		order.Total = 0
		e.reportCompleted(order)
		return
	}

	same, opposite := e.sideBooks(order.Side)
	e.match(order, opposite)

	if order.Filled() {
		e.reportCompleted(order)
		return
	}
	same.Insert(order)
	e.reportResting(order)
}

// Shutdown drains both books, emitting a cleared notice per resting order.
// Safe to call repeatedly; an empty book yields no events.
func (e *Engine) Shutdown() {
	e.bids.Drain(e.reportCleared)
	e.asks.Drain(e.reportCleared)
}

// match consumes the opposite book best price first while the top order
// crosses with incoming. Every iteration removes a resting order or zeroes
// the incoming quantity, so the loop runs at most opposite.Len()+1 times.
// Fills always execute at the resting order's price.
func (e *Engine) match(incoming *common.Order, opposite *OrderBook) {
	for incoming.Quantity > 0 {
		resting := opposite.PeekBest()
		if resting == nil || !crosses(incoming, resting) {
			return
		}

		if incoming.Quantity >= resting.Quantity {
			// Full consumption of the resting order.
			qty := resting.Quantity
			incoming.Reduce(qty)
			e.reportFill(incoming, resting, qty)
			opposite.PopBest()
		} else {
			// Resting order outlasts the incoming one; it stays on the
			// book with its quantity reduced.
			qty := incoming.Quantity
			resting.Reduce(qty)
			e.reportFill(incoming, resting, qty)
			incoming.Reduce(qty)
		}
	}
}

// crosses reports whether the best resting order trades with incoming: an
// incoming buy lifts asks at or below its price, an incoming sell hits
// bids at or above it.
func crosses(incoming, resting *common.Order) bool {
	if incoming.Side == common.Buy {
		return resting.Price <= incoming.Price
	}
	return resting.Price >= incoming.Price
}

func (e *Engine) sideBooks(side common.Side) (same, opposite *OrderBook) {
	if side == common.Buy {
		return e.bids, e.asks
	}
	return e.asks, e.bids
}

func (e *Engine) reportFill(incoming, resting *common.Order, qty float64) {
	fill := common.Fill{
		Taker:     incoming.Owner,
		Maker:     resting.Owner,
		Side:      incoming.Side,
		Quantity:  qty,
		Price:     resting.Price,
		Timestamp: time.Now(),
	}
	log.Debug().Stringer("fill", fill).Msg("orders matched")
	if e.reporter != nil {
		e.reporter.ReportFill(fill)
	}
}

func (e *Engine) reportResting(order *common.Order) {
	log.Debug().Stringer("order", order).Msg("order resting")
	if e.reporter != nil {
		e.reporter.ReportResting(*order)
	}
}

func (e *Engine) reportCompleted(order *common.Order) {
	log.Debug().Stringer("order", order).Msg("order completed")
	if e.reporter != nil {
		e.reporter.ReportCompleted(*order)
	}
}

func (e *Engine) reportCleared(order *common.Order) {
	log.Debug().Stringer("order", order).Msg("order cleared")
	if e.reporter != nil {
		e.reporter.ReportCleared(*order)
	}
}
