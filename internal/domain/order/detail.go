// Package order contains the customer order aggregate and its line details.
package order

import (
	"github.com/shopspring/decimal"

	"github.com/xenking/order-report/internal/domain/item"
)

// TaxStatusTaxable is the tax status used for regular goods. The status is
// informational and does not change any calculation.
const TaxStatusTaxable = "Taxable"

// Detail is a single order line: a quantity of one catalog item.
type Detail struct {
	quantity  int
	taxStatus string
	item      *item.Item
}

// NewDetail creates an order line. The item is referenced, not copied, so the
// same item may back several lines.
func NewDetail(quantity int, taxStatus string, it *item.Item) *Detail {
	return &Detail{
		quantity:  quantity,
		taxStatus: taxStatus,
		item:      it,
	}
}

// SubTotal returns the item price for the line quantity.
func (d *Detail) SubTotal() decimal.Decimal {
	return d.item.PriceForQuantity(d.quantity)
}

// Weight returns the item shipping weight multiplied by the line quantity.
func (d *Detail) Weight() decimal.Decimal {
	return d.item.ShippingWeight().Mul(decimal.NewFromInt(int64(d.quantity)))
}

// Tax returns the item tax. The line quantity is not applied.
func (d *Detail) Tax() decimal.Decimal {
	return d.item.Tax()
}

func (d *Detail) Quantity() int     { return d.quantity }
func (d *Detail) TaxStatus() string { return d.taxStatus }
func (d *Detail) Item() *item.Item  { return d.item }
