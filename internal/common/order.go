package common

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// MaxOwnerLen bounds the owner username length, excluding surrounding
// whitespace.
const MaxOwnerLen = 50

type Order struct {
	UUID      string    // Order tracked uuid
	Owner     string    // Who owns this order
	Side      Side      // Order side
	Price     float64   // Limit price
	Quantity  float64   // Remaining quantity
	Total     float64   // Always Price * Quantity; 0 iff fully filled
	Timestamp time.Time // Time of arrival of order into the book
}

// NewOrder builds an order from an already validated (owner, price, quantity)
// tuple. Callers guarantee price > 0 and quantity > 0.
func NewOrder(owner string, side Side, price, quantity float64) *Order {
	return &Order{
		UUID:     uuid.New().String(),
		Owner:    owner,
		Side:     side,
		Price:    price,
		Quantity: quantity,
		Total:    price * quantity,
	}
}

// Reduce removes qty from the order's remaining quantity. Total is
// recomputed from Price and Quantity rather than decremented, so the
// two fields never drift apart.
func (o *Order) Reduce(qty float64) {
	o.Quantity -= qty
	o.Total = o.Price * o.Quantity
}

// Filled reports whether the order has been fully consumed.
func (o *Order) Filled() bool {
	return o.Total == 0
}

func (o *Order) String() string {
	return fmt.Sprintf(
		"UUID: %s Owner: %s Side: %v Price: %.2f Quantity: %.2f Total: %.2f",
		o.UUID,
		o.Owner,
		o.Side,
		o.Price,
		o.Quantity,
		o.Total,
	)
}
