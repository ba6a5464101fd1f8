package report

import (
	"io"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"

	"github.com/xenking/order-report/internal/domain/order"
)

// JSON writes the order report as a single JSON object followed by a newline.
// Amounts are encoded as fixed-point strings with the same rounding as Text.
func JSON(w io.Writer, o *order.Order) error {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)

	e.ObjStart()

	e.FieldStart("customer")
	e.ObjStart()
	e.FieldStart("name")
	e.Str(o.Customer().Name)
	e.FieldStart("address")
	e.Str(o.Customer().Address)
	e.ObjEnd()

	e.FieldStart("date")
	e.Str(o.Date())
	e.FieldStart("status")
	e.Str(o.Status())

	e.FieldStart("items")
	e.ArrStart()
	for _, d := range o.Details() {
		it := d.Item()
		e.ObjStart()
		e.FieldStart("description")
		e.Str(it.Description())
		e.FieldStart("quantity")
		e.Int(d.Quantity())
		e.FieldStart("tax_status")
		e.Str(d.TaxStatus())
		e.FieldStart("unit_price")
		e.Str(money(it.PriceForQuantity(1)))
		e.FieldStart("subtotal")
		e.Str(money(d.SubTotal()))
		e.ObjEnd()
	}
	e.ArrEnd()

	e.FieldStart("subtotal")
	e.Str(money(o.SubTotal()))
	e.FieldStart("tax")
	e.Str(money(o.Tax()))
	e.FieldStart("total")
	e.Str(money(o.Total()))
	e.FieldStart("total_weight")
	e.Str(weight(o.TotalWeight()))

	e.ObjEnd()

	buf := append(e.Bytes(), '\n')
	if _, err := w.Write(buf); err != nil {
		return errors.Wrap(err, "write json report")
	}
	return nil
}
