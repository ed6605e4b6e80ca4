package risk

import (
	"github.com/shopspring/decimal"

	"github.com/quanttools/quantcore/internal/errors"
	"github.com/quanttools/quantcore/pkg/types"
)

// PositionSizer defines the interface for instrument-aware sizing
// strategies. Callers hold the interface, never a concrete sizer, so
// strategies can be swapped without touching call sites.
type PositionSizer interface {
	// Instrument returns the currently bound instrument
	Instrument() *types.Instrument

	// UpdateInstrument replaces the bound instrument. The replacement
	// must describe the same symbol.
	UpdateInstrument(instrument *types.Instrument) error

	// Calculate converts the sizing input into a tradable quantity at
	// the instrument's size precision
	Calculate(in SizingInput) (types.Quantity, error)
}

// SizingInput carries the full parameter surface every sizing strategy
// honors. Build it with NewSizingInput so the contract defaults
// (exchange rate one, one unit, zeros elsewhere) are decimal constants.
type SizingInput struct {
	Entry          types.Price
	StopLoss       types.Price
	Equity         types.Money
	Risk           decimal.Decimal // fraction of equity to put at risk, > 0
	CommissionRate decimal.Decimal // round-turn commission is charged twice
	ExchangeRate   decimal.Decimal // quote-to-account conversion; zero sizes to zero
	HardLimit      decimal.Decimal // absolute unit cap, zero disables
	UnitBatchSize  decimal.Decimal // result floors to a multiple, zero disables
	Units          int             // parallel units the risk budget splits across
}

// NewSizingInput returns a SizingInput with the contract defaults applied.
func NewSizingInput(entry, stopLoss types.Price, equity types.Money, risk decimal.Decimal) SizingInput {
	return SizingInput{
		Entry:          entry,
		StopLoss:       stopLoss,
		Equity:         equity,
		Risk:           risk,
		CommissionRate: decimal.Zero,
		ExchangeRate:   decimal.NewFromInt(1),
		HardLimit:      decimal.Zero,
		UnitBatchSize:  decimal.Zero,
		Units:          1,
	}
}

// instrumentSizer holds the instrument reference and the arithmetic
// shared by all sizing strategies. Concrete sizers embed it.
type instrumentSizer struct {
	instrument *types.Instrument
}

func (s *instrumentSizer) Instrument() *types.Instrument {
	return s.instrument
}

// UpdateInstrument swaps the bound instrument. A mismatched symbol is
// rejected so a sizer can never silently reprice against the wrong market.
func (s *instrumentSizer) UpdateInstrument(instrument *types.Instrument) error {
	if instrument == nil {
		return errors.NewInvalidArgument("PositionSizer", "instrument", "must not be nil")
	}
	if instrument.Symbol() != s.instrument.Symbol() {
		return errors.NewInvalidArgument("PositionSizer", "instrument",
			"symbol "+instrument.Symbol()+" does not match bound symbol "+s.instrument.Symbol())
	}
	s.instrument = instrument
	return nil
}

// riskTicks is the entry-to-stop distance expressed in instrument ticks.
func (s *instrumentSizer) riskTicks(entry, stopLoss types.Price) decimal.Decimal {
	return entry.Decimal().Sub(stopLoss.Decimal()).Abs().Div(s.instrument.TickSize())
}

// riskableMoney is the equity share available to lose on the trade, net
// of a round-turn commission charged on entry and exit. Non-positive
// equity risks nothing.
func (s *instrumentSizer) riskableMoney(equity types.Money, risk, commissionRate decimal.Decimal) decimal.Decimal {
	if !equity.IsPositive() {
		return decimal.Zero
	}
	budget := equity.Decimal().Mul(risk)
	commission := budget.Mul(commissionRate).Mul(decimal.NewFromInt(2))
	return budget.Sub(commission)
}
