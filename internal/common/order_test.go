package common_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/joshuagourlay/Item-Exchange-Simulator/internal/common"
)

func TestNewOrder(t *testing.T) {
	order := common.NewOrder("alice", common.Buy, 10, 5)

	assert.NotEmpty(t, order.UUID)
	assert.Equal(t, 50.0, order.Total)
	assert.False(t, order.Filled())
}

func TestReduce_TotalNeverDrifts(t *testing.T) {
	// Total is recomputed from price and quantity on every reduction, so
	// the two fields agree exactly even for awkward float values.
	order := common.NewOrder("alice", common.Buy, 0.1, 0.9)

	for i := 0; i < 3; i++ {
		order.Reduce(0.3)
		assert.Equal(t, order.Price*order.Quantity, order.Total)
	}
}

func TestReduce_ToZeroMeansFilled(t *testing.T) {
	order := common.NewOrder("alice", common.Sell, 10, 5)

	order.Reduce(5)

	assert.Equal(t, 0.0, order.Quantity)
	assert.True(t, order.Filled())
}

func TestSideOpposite(t *testing.T) {
	assert.Equal(t, common.Sell, common.Buy.Opposite())
	assert.Equal(t, common.Buy, common.Sell.Opposite())
}
