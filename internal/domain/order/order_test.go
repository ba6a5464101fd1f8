package order

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/order-report/internal/domain/item"
)

// --- Helpers ---

func d(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, d(want).Equal(got), "want %s, got %s", want, got)
}

func newLaptop() *item.Item {
	return item.MustNew("2.5", "Laptop", d("200000.0"), d("0.05"))
}

func newMouse() *item.Item {
	return item.MustNew("0.5", "Mouse", d("100000.0"), d("0.05"))
}

func newSampleOrder() *Order {
	return New("2024-12-05", "Processing",
		Customer{Name: "Romi", Address: "123 Main St"},
		NewDetail(2, TaxStatusTaxable, newLaptop()),
		NewDetail(3, TaxStatusTaxable, newMouse()),
	)
}

// --- Detail ---

func TestDetail_Calculations(t *testing.T) {
	tests := []struct {
		name         string
		detail       *Detail
		wantSubTotal string
		wantTax      string
		wantWeight   string
	}{
		{
			name:         "laptop x2",
			detail:       NewDetail(2, TaxStatusTaxable, newLaptop()),
			wantSubTotal: "400000",
			wantTax:      "10000",
			wantWeight:   "5",
		},
		{
			name:         "mouse x3",
			detail:       NewDetail(3, TaxStatusTaxable, newMouse()),
			wantSubTotal: "300000",
			wantTax:      "5000",
			wantWeight:   "1.5",
		},
		{
			name:         "zero quantity keeps per-item tax",
			detail:       NewDetail(0, TaxStatusTaxable, newMouse()),
			wantSubTotal: "0",
			wantTax:      "5000",
			wantWeight:   "0",
		},
		{
			name:         "negative quantity is not clamped",
			detail:       NewDetail(-1, "Exempt", newLaptop()),
			wantSubTotal: "-200000",
			wantTax:      "10000",
			wantWeight:   "-2.5",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertDecimal(t, tt.wantSubTotal, tt.detail.SubTotal())
			assertDecimal(t, tt.wantTax, tt.detail.Tax())
			assertDecimal(t, tt.wantWeight, tt.detail.Weight())
		})
	}
}

func TestDetail_Accessors(t *testing.T) {
	laptop := newLaptop()
	det := NewDetail(2, TaxStatusTaxable, laptop)

	assert.Equal(t, 2, det.Quantity())
	assert.Equal(t, "Taxable", det.TaxStatus())
	assert.Same(t, laptop, det.Item())
}

func TestDetail_SharedItem(t *testing.T) {
	laptop := newLaptop()
	a := NewDetail(1, TaxStatusTaxable, laptop)
	b := NewDetail(4, TaxStatusTaxable, laptop)

	assert.Same(t, a.Item(), b.Item())
	assertDecimal(t, "200000", a.SubTotal())
	assertDecimal(t, "800000", b.SubTotal())
}

// --- Order ---

func TestOrder_SampleTotals(t *testing.T) {
	o := newSampleOrder()

	assertDecimal(t, "700000", o.SubTotal())
	assertDecimal(t, "15000", o.Tax())
	assertDecimal(t, "715000", o.Total())
	assertDecimal(t, "6.5", o.TotalWeight())
}

func TestOrder_Empty(t *testing.T) {
	o := New("2024-01-01", "New", Customer{Name: "Nobody"})

	assert.True(t, o.SubTotal().IsZero())
	assert.True(t, o.Tax().IsZero())
	assert.True(t, o.Total().IsZero())
	assert.True(t, o.TotalWeight().IsZero())
	assert.Empty(t, o.Details())
}

func TestOrder_TotalIsSubTotalPlusTax(t *testing.T) {
	orders := []*Order{
		newSampleOrder(),
		New("d", "s", Customer{}, NewDetail(7, TaxStatusTaxable, item.MustNew("0.125", "Cable", d("9.99"), d("0.2")))),
		New("d", "s", Customer{}),
	}
	for _, o := range orders {
		assert.True(t, o.SubTotal().Add(o.Tax()).Equal(o.Total()))
	}
}

func TestOrder_SubTotalMatchesDetails(t *testing.T) {
	o := newSampleOrder()

	sum := decimal.Zero
	for _, det := range o.Details() {
		sum = sum.Add(det.SubTotal())
	}
	assert.True(t, sum.Equal(o.SubTotal()))
}

func TestOrder_RoundTrip(t *testing.T) {
	customer := Customer{Name: "Romi", Address: "123 Main St"}
	d1 := NewDetail(2, TaxStatusTaxable, newLaptop())
	d2 := NewDetail(3, TaxStatusTaxable, newMouse())

	o := New("2024-12-05", "Processing", customer, d1, d2)

	assert.Equal(t, "2024-12-05", o.Date())
	assert.Equal(t, "Processing", o.Status())
	assert.Equal(t, customer, o.Customer())

	details := o.Details()
	require.Len(t, details, 2)
	assert.Same(t, d1, details[0])
	assert.Same(t, d2, details[1])
}

func TestOrder_DetailsImmutable(t *testing.T) {
	input := []*Detail{
		NewDetail(2, TaxStatusTaxable, newLaptop()),
		NewDetail(3, TaxStatusTaxable, newMouse()),
	}
	o := New("2024-12-05", "Processing", Customer{}, input...)

	input[0] = nil
	got := o.Details()
	got[1] = nil

	details := o.Details()
	require.Len(t, details, 2)
	assert.NotNil(t, details[0])
	assert.NotNil(t, details[1])
	assertDecimal(t, "700000", o.SubTotal())
}
