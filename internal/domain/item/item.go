// Package item defines catalog entries that can be placed on an order.
package item

import (
	"fmt"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// ErrInvalidWeight is returned when a shipping weight is not a decimal literal.
var ErrInvalidWeight = errors.New("invalid shipping weight")

// WeightParseError indicates that the shipping weight text of an item could
// not be parsed as a decimal number.
type WeightParseError struct {
	Description string
	Weight      string
	Err         error
}

func (e *WeightParseError) Error() string {
	return fmt.Sprintf("item %q: shipping weight %q: %v", e.Description, e.Weight, e.Err)
}

func (e *WeightParseError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrInvalidWeight.
func (e *WeightParseError) Is(target error) bool {
	return target == ErrInvalidWeight
}

// Item is an immutable catalog entry.
type Item struct {
	shippingWeight decimal.Decimal
	description    string
	price          decimal.Decimal
	taxRate        decimal.Decimal
}

// New creates an Item. The shipping weight is given as text and parsed once
// here, so weight calculations on the item never fail later.
func New(shippingWeight, description string, price, taxRate decimal.Decimal) (*Item, error) {
	w, err := decimal.NewFromString(shippingWeight)
	if err != nil {
		return nil, &WeightParseError{
			Description: description,
			Weight:      shippingWeight,
			Err:         err,
		}
	}
	return &Item{
		shippingWeight: w,
		description:    description,
		price:          price,
		taxRate:        taxRate,
	}, nil
}

// MustNew is like New but panics on an unparsable shipping weight.
// Intended for fixed, known-good catalog data.
func MustNew(shippingWeight, description string, price, taxRate decimal.Decimal) *Item {
	it, err := New(shippingWeight, description, price, taxRate)
	if err != nil {
		panic(err)
	}
	return it
}

// PriceForQuantity returns price * quantity. Zero and negative quantities are
// accepted as is.
func (i *Item) PriceForQuantity(quantity int) decimal.Decimal {
	return i.price.Mul(decimal.NewFromInt(int64(quantity)))
}

// Tax returns price * taxRate. It is a per-item amount and is not scaled by
// any line quantity.
func (i *Item) Tax() decimal.Decimal {
	return i.price.Mul(i.taxRate)
}

// InStock reports stock availability. Always true for now.
func (i *Item) InStock() bool {
	return true
}

func (i *Item) ShippingWeight() decimal.Decimal { return i.shippingWeight }
func (i *Item) Description() string             { return i.description }
func (i *Item) Price() decimal.Decimal          { return i.price }
func (i *Item) TaxRate() decimal.Decimal        { return i.taxRate }
