// Package report renders orders for the console.
package report

import (
	"io"
	"strings"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/xenking/order-report/internal/domain/order"
)

// Format selects the report encoding.
type Format string

const (
	// FormatText is the line-oriented human readable report.
	FormatText Format = "text"
	// FormatJSON is a single JSON object with the same values.
	FormatJSON Format = "json"
)

// ErrUnknownFormat is returned for a format other than text or json.
var ErrUnknownFormat = errors.New("unknown report format")

const (
	moneyPlaces  = 0
	weightPlaces = 2
)

// ParseFormat converts a configuration value into a Format. Matching is case
// insensitive and an empty value selects FormatText.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", errors.Wrapf(ErrUnknownFormat, "%q", s)
	}
}

// Write renders o to w in the given format.
func Write(w io.Writer, f Format, o *order.Order) error {
	switch f {
	case FormatText:
		return Text(w, o)
	case FormatJSON:
		return JSON(w, o)
	default:
		return errors.Wrapf(ErrUnknownFormat, "%q", f)
	}
}

func money(v decimal.Decimal) string {
	return v.StringFixed(moneyPlaces)
}

func weight(v decimal.Decimal) string {
	return v.StringFixed(weightPlaces)
}
