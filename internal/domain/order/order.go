package order

import (
	"slices"

	"github.com/shopspring/decimal"
)

// Customer is the person an order is placed for.
type Customer struct {
	Name    string
	Address string
}

// Order is an immutable customer order made of line details. Totals are
// recomputed from the details on every call.
type Order struct {
	date     string
	status   string
	customer Customer
	details  []*Detail
}

// New creates an Order. The details slice is copied; the details themselves
// are shared.
func New(date, status string, customer Customer, details ...*Detail) *Order {
	return &Order{
		date:     date,
		status:   status,
		customer: customer,
		details:  slices.Clone(details),
	}
}

// SubTotal returns the sum of all line subtotals.
func (o *Order) SubTotal() decimal.Decimal {
	sum := decimal.Zero
	for _, d := range o.details {
		sum = sum.Add(d.SubTotal())
	}
	return sum
}

// Tax returns the sum of all line taxes.
func (o *Order) Tax() decimal.Decimal {
	sum := decimal.Zero
	for _, d := range o.details {
		sum = sum.Add(d.Tax())
	}
	return sum
}

// Total returns SubTotal() + Tax().
func (o *Order) Total() decimal.Decimal {
	return o.SubTotal().Add(o.Tax())
}

// TotalWeight returns the sum of all line shipping weights.
func (o *Order) TotalWeight() decimal.Decimal {
	sum := decimal.Zero
	for _, d := range o.details {
		sum = sum.Add(d.Weight())
	}
	return sum
}

func (o *Order) Date() string       { return o.date }
func (o *Order) Status() string     { return o.status }
func (o *Order) Customer() Customer { return o.customer }

// Details returns the order lines in insertion order.
func (o *Order) Details() []*Detail {
	return slices.Clone(o.details)
}
