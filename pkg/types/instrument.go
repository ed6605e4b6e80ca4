package types

import (
	"github.com/shopspring/decimal"

	"github.com/quanttools/quantcore/internal/errors"
)

// Instrument is a read-only descriptor of a tradable market. It is owned
// by the surrounding runtime and shared by reference: sizers hold the
// pointer and never copy the value.
type Instrument struct {
	symbol        string
	tickSize      decimal.Decimal
	sizePrecision int32
	maxQuantity   Quantity
}

// NewInstrument validates and builds an instrument descriptor.
func NewInstrument(symbol string, tickSize decimal.Decimal, sizePrecision int32, maxQuantity Quantity) (*Instrument, error) {
	if symbol == "" {
		return nil, errors.NewInvalidArgument("Instrument", "symbol", "must not be empty")
	}
	if !tickSize.IsPositive() {
		return nil, errors.NewInvalidArgument("Instrument", "tickSize", "must be positive")
	}
	if sizePrecision < 0 {
		return nil, errors.NewInvalidArgument("Instrument", "sizePrecision", "must not be negative")
	}
	return &Instrument{
		symbol:        symbol,
		tickSize:      tickSize,
		sizePrecision: sizePrecision,
		maxQuantity:   maxQuantity,
	}, nil
}

func (i *Instrument) Symbol() string            { return i.symbol }
func (i *Instrument) TickSize() decimal.Decimal { return i.tickSize }
func (i *Instrument) SizePrecision() int32      { return i.sizePrecision }
func (i *Instrument) MaxQuantity() Quantity     { return i.maxQuantity }
