package cli

import (
	"fmt"
	"io"

	"github.com/joshuagourlay/Item-Exchange-Simulator/internal/common"
)

// consoleReporter turns engine events into the user-facing notices of the
// interactive session.
type consoleReporter struct {
	out io.Writer
}

func (r *consoleReporter) ReportFill(fill common.Fill) {
	if fill.Side == common.Buy {
		fmt.Fprintf(r.out, "%s has bought %.2f @ $%.2f from %s\n",
			fill.Taker, fill.Quantity, fill.Price, fill.Maker)
		return
	}
	fmt.Fprintf(r.out, "%s has sold %.2f @ $%.2f to %s\n",
		fill.Taker, fill.Quantity, fill.Price, fill.Maker)
}

func (r *consoleReporter) ReportResting(order common.Order) {
	fmt.Fprintf(r.out, "%s's order has been placed for %.2f @ $%.2f\n",
		order.Owner, order.Quantity, order.Price)
}

func (r *consoleReporter) ReportCompleted(order common.Order) {
	fmt.Fprintf(r.out, "%s's order has been completed\n", order.Owner)
}

func (r *consoleReporter) ReportCleared(order common.Order) {
	fmt.Fprintf(r.out, "Clearing %s's order\n", order.Owner)
}
