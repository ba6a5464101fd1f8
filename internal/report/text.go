package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-faster/errors"

	"github.com/xenking/order-report/internal/domain/order"
)

// Text writes the plain text order report: customer header, one block per
// line item, then order totals. Amounts are rounded to whole units and the
// weight to two decimal places.
func Text(w io.Writer, o *order.Order) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Customer: %s\n", o.Customer().Name)
	fmt.Fprintf(&b, "Order Date: %s\n", o.Date())
	fmt.Fprintf(&b, "Order Status: %s\n", o.Status())

	for _, d := range o.Details() {
		it := d.Item()
		fmt.Fprintf(&b, "Item: %s\n", it.Description())
		fmt.Fprintf(&b, "Quantity: %d\n", d.Quantity())
		fmt.Fprintf(&b, "Price per item: %s\n", money(it.PriceForQuantity(1)))
		fmt.Fprintf(&b, "SubTotal: %s\n", money(d.SubTotal()))
	}

	fmt.Fprintf(&b, "Order SubTotal: %s\n", money(o.SubTotal()))
	fmt.Fprintf(&b, "Order Tax: %s\n", money(o.Tax()))
	fmt.Fprintf(&b, "Order Total: %s\n", money(o.Total()))
	fmt.Fprintf(&b, "Total Weight: %s lbs\n", weight(o.TotalWeight()))

	if _, err := io.WriteString(w, b.String()); err != nil {
		return errors.Wrap(err, "write text report")
	}
	return nil
}
