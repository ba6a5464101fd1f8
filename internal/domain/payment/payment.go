// Package payment models the ways an order can be paid.
//
// Payment is a closed set of variants: Cash, Check and Credit. Variants that
// need approval before settlement also implement Authorizer.
package payment

import (
	"context"

	"github.com/shopspring/decimal"
)

// Payment is implemented by Cash, Check and Credit only.
type Payment interface {
	// Amount returns the amount paid. It is fixed at construction.
	Amount() decimal.Decimal

	isPayment()
}

var (
	_ Payment = (*Cash)(nil)
	_ Payment = (*Check)(nil)
	_ Payment = (*Credit)(nil)

	_ Authorizer = (*Check)(nil)
	_ Authorizer = (*Credit)(nil)
)

// Cash is a payment in cash.
type Cash struct {
	amount       decimal.Decimal
	cashTendered decimal.Decimal
}

// NewCash creates a cash payment.
func NewCash(amount, cashTendered decimal.Decimal) *Cash {
	return &Cash{amount: amount, cashTendered: cashTendered}
}

func (c *Cash) Amount() decimal.Decimal       { return c.amount }
func (c *Cash) CashTendered() decimal.Decimal { return c.cashTendered }
func (*Cash) isPayment()                      {}

// Check is a payment by bank check.
type Check struct {
	amount decimal.Decimal
	name   string
	bankID string
}

// NewCheck creates a check payment.
func NewCheck(amount decimal.Decimal, name, bankID string) *Check {
	return &Check{amount: amount, name: name, bankID: bankID}
}

func (c *Check) Amount() decimal.Decimal { return c.amount }
func (c *Check) Name() string            { return c.name }
func (c *Check) BankID() string          { return c.bankID }
func (*Check) isPayment()                {}

// Authorize approves the check. No verification is performed yet.
func (c *Check) Authorize(ctx context.Context) (Authorization, error) {
	return approve(ctx)
}

// Credit is a payment by credit card.
type Credit struct {
	amount   decimal.Decimal
	number   string
	cardType string
	expDate  string
}

// NewCredit creates a credit card payment.
func NewCredit(amount decimal.Decimal, number, cardType, expDate string) *Credit {
	return &Credit{
		amount:   amount,
		number:   number,
		cardType: cardType,
		expDate:  expDate,
	}
}

func (c *Credit) Amount() decimal.Decimal { return c.amount }
func (c *Credit) Number() string          { return c.number }
func (c *Credit) CardType() string        { return c.cardType }
func (c *Credit) ExpDate() string         { return c.expDate }
func (*Credit) isPayment()                {}

// Authorize approves the card payment. No verification is performed yet.
func (c *Credit) Authorize(ctx context.Context) (Authorization, error) {
	return approve(ctx)
}
