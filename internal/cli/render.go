package cli

import (
	"fmt"
	"io"

	"github.com/joshuagourlay/Item-Exchange-Simulator/internal/common"
)

const bookRule = "|--------------------------------------|---------|------------|-----------|"

// RenderBook writes a fixed-width table of the resting orders, best price
// first, or a not-found message for an empty book. Pure over the snapshot;
// the book itself is never touched.
func RenderBook(w io.Writer, label string, orders []*common.Order) {
	fmt.Fprintln(w)
	if len(orders) == 0 {
		fmt.Fprintf(w, "%s orders not found\n", label)
		return
	}
	fmt.Fprintf(w, "%s Orders:\n", label)
	fmt.Fprintln(w, bookRule)
	fmt.Fprintln(w, "| Username                             |  Price  |  Quantity  |   Total   |")
	fmt.Fprintln(w, bookRule)
	for _, order := range orders {
		fmt.Fprintf(w, "| %-36s | %7.2f | %10.2f | %9.2f |\n",
			order.Owner, order.Price, order.Quantity, order.Total)
	}
	fmt.Fprintln(w, bookRule)
}
