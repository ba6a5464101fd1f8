package app

import (
	"github.com/shopspring/decimal"

	"github.com/xenking/order-report/internal/domain/item"
	"github.com/xenking/order-report/internal/domain/order"
)

// SampleOrder returns the demonstration order printed by the order-report
// binary.
func SampleOrder() *order.Order {
	taxRate := decimal.RequireFromString("0.05")
	laptop := item.MustNew("2.5", "Laptop", decimal.NewFromInt(200000), taxRate)
	mouse := item.MustNew("0.5", "Mouse", decimal.NewFromInt(100000), taxRate)

	return order.New("2024-12-05", "Processing",
		order.Customer{Name: "Romi", Address: "123 Main St"},
		order.NewDetail(2, order.TaxStatusTaxable, laptop),
		order.NewDetail(3, order.TaxStatusTaxable, mouse),
	)
}
