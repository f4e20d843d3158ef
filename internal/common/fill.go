package common

import (
	"fmt"
	"time"
)

// Fill records one trade between an incoming (taker) order and a resting
// (maker) order. Price is always the resting order's price.
type Fill struct {
	Taker     string
	Maker     string
	Side      Side // Taker's side
	Quantity  float64
	Price     float64
	Timestamp time.Time
}

func (f Fill) String() string {
	return fmt.Sprintf(
		"Taker: %s Maker: %s Side: %v Quantity: %.2f Price: %.2f",
		f.Taker,
		f.Maker,
		f.Side,
		f.Quantity,
		f.Price,
	)
}

// Reporter receives the engine's order lifecycle events. The production
// implementation prints user-facing notices; tests record the events.
type Reporter interface {
	// ReportFill is emitted once per trade during matching.
	ReportFill(fill Fill)
	// ReportResting is emitted when an order (possibly partially filled)
	// is placed on its book.
	ReportResting(order Order)
	// ReportCompleted is emitted when an incoming order is fully filled
	// and will not rest.
	ReportCompleted(order Order)
	// ReportCleared is emitted per resting order during teardown.
	ReportCleared(order Order)
}
