package types

import (
	"github.com/shopspring/decimal"

	"github.com/quanttools/quantcore/internal/errors"
)

// Price is a market price tagged with the precision it displays at.
// Arithmetic happens on the underlying decimal; the precision travels
// with the value so results can be quantized at the boundary.
type Price struct {
	value     decimal.Decimal
	precision int32
}

// NewPrice builds a Price from a decimal value at the given precision.
func NewPrice(value decimal.Decimal, precision int32) (Price, error) {
	if precision < 0 {
		return Price{}, errors.NewInvalidArgument("Price", "precision", "must not be negative")
	}
	return Price{value: value, precision: precision}, nil
}

// NewPriceFromString parses a decimal string into a Price.
func NewPriceFromString(s string, precision int32) (Price, error) {
	value, err := decimal.NewFromString(s)
	if err != nil {
		return Price{}, errors.NewInvalidArgument("Price", "value", err.Error())
	}
	return NewPrice(value, precision)
}

// NewPriceFromFloat converts a float (e.g. from a bar close) into a Price.
// Only used at the boundary; internal sizing math stays decimal.
func NewPriceFromFloat(f float64, precision int32) (Price, error) {
	return NewPrice(decimal.NewFromFloat(f).Round(precision), precision)
}

func (p Price) Decimal() decimal.Decimal { return p.value }
func (p Price) Precision() int32         { return p.precision }
func (p Price) Float64() float64         { f, _ := p.value.Float64(); return f }
func (p Price) IsPositive() bool         { return p.value.IsPositive() }
func (p Price) IsZero() bool             { return p.value.IsZero() }

func (p Price) String() string { return p.value.StringFixed(p.precision) }

// Quantity is a non-negative tradable size at an instrument's size precision.
type Quantity struct {
	value     decimal.Decimal
	precision int32
}

// NewQuantity builds a Quantity; negative values are rejected.
func NewQuantity(value decimal.Decimal, precision int32) (Quantity, error) {
	if precision < 0 {
		return Quantity{}, errors.NewInvalidArgument("Quantity", "precision", "must not be negative")
	}
	if value.IsNegative() {
		return Quantity{}, errors.NewInvalidArgument("Quantity", "value", "must not be negative")
	}
	return Quantity{value: value, precision: precision}, nil
}

// NewQuantityFromString parses a decimal string into a Quantity.
func NewQuantityFromString(s string, precision int32) (Quantity, error) {
	value, err := decimal.NewFromString(s)
	if err != nil {
		return Quantity{}, errors.NewInvalidArgument("Quantity", "value", err.Error())
	}
	return NewQuantity(value, precision)
}

// ZeroQuantity is the zero size at the given precision.
func ZeroQuantity(precision int32) Quantity {
	return Quantity{value: decimal.Zero, precision: precision}
}

func (q Quantity) Decimal() decimal.Decimal { return q.value }
func (q Quantity) Precision() int32         { return q.precision }
func (q Quantity) Float64() float64         { f, _ := q.value.Float64(); return f }
func (q Quantity) IsZero() bool             { return q.value.IsZero() }

func (q Quantity) String() string { return q.value.StringFixed(q.precision) }

// Money is a monetary amount tagged with its currency.
type Money struct {
	value    decimal.Decimal
	currency string
}

// NewMoney builds a Money amount in the given currency.
func NewMoney(value decimal.Decimal, currency string) (Money, error) {
	if currency == "" {
		return Money{}, errors.NewInvalidArgument("Money", "currency", "must not be empty")
	}
	return Money{value: value, currency: currency}, nil
}

// NewMoneyFromString parses a decimal string into a Money amount.
func NewMoneyFromString(s, currency string) (Money, error) {
	value, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errors.NewInvalidArgument("Money", "value", err.Error())
	}
	return NewMoney(value, currency)
}

func (m Money) Decimal() decimal.Decimal { return m.value }
func (m Money) Currency() string         { return m.currency }
func (m Money) Float64() float64         { f, _ := m.value.Float64(); return f }
func (m Money) IsPositive() bool         { return m.value.IsPositive() }

func (m Money) String() string { return m.value.StringFixed(2) + " " + m.currency }
