package risk

import (
	"github.com/shopspring/decimal"

	"github.com/quanttools/quantcore/internal/errors"
	"github.com/quanttools/quantcore/pkg/types"
)

const fixedRiskComponent = "FixedRiskSizer"

// FixedRiskSizer sizes a position so that losing the full entry-to-stop
// distance costs a fixed fraction of account equity. Stateless beyond
// the bound instrument: identical inputs always produce identical output.
type FixedRiskSizer struct {
	instrumentSizer
}

// NewFixedRiskSizer binds a sizer to an instrument.
func NewFixedRiskSizer(instrument *types.Instrument) (*FixedRiskSizer, error) {
	if instrument == nil {
		return nil, errors.NewInvalidArgument(fixedRiskComponent, "instrument", "must not be nil")
	}
	return &FixedRiskSizer{instrumentSizer{instrument: instrument}}, nil
}

// Calculate runs the fixed-risk sizing algorithm. Malformed caller input
// fails with an invalid-argument error before any computation; degenerate
// market conditions (zero exchange rate, zero risk distance) size to zero
// instead of failing, since they are expected transients in live data.
func (s *FixedRiskSizer) Calculate(in SizingInput) (types.Quantity, error) {
	if err := validateSizingInput(in); err != nil {
		return types.Quantity{}, err
	}

	precision := s.instrument.SizePrecision()

	// Cannot size without a conversion rate; not an error.
	if in.ExchangeRate.IsZero() {
		return types.ZeroQuantity(precision), nil
	}

	// Entry at stop loss means no measurable risk per unit; dividing
	// through would blow up, so size to zero.
	riskTicks := s.riskTicks(in.Entry, in.StopLoss)
	if riskTicks.Sign() <= 0 {
		return types.ZeroQuantity(precision), nil
	}

	riskMoney := s.riskableMoney(in.Equity, in.Risk, in.CommissionRate)

	positionSize := riskMoney.
		Div(in.ExchangeRate).
		Div(riskTicks).
		Div(s.instrument.TickSize())

	if in.HardLimit.IsPositive() && positionSize.GreaterThan(in.HardLimit) {
		positionSize = in.HardLimit
	}

	batched := positionSize.Div(decimal.NewFromInt(int64(in.Units)))
	if batched.IsNegative() {
		batched = decimal.Zero
	}

	// Floor to the batch multiple; sizing must never round up past the
	// risk tolerance.
	if in.UnitBatchSize.IsPositive() {
		batched = batched.Div(in.UnitBatchSize).Floor().Mul(in.UnitBatchSize)
	}

	maxQuantity := s.instrument.MaxQuantity().Decimal()
	if batched.GreaterThan(maxQuantity) {
		batched = maxQuantity
	}

	return types.NewQuantity(batched.RoundDown(precision), precision)
}

func validateSizingInput(in SizingInput) error {
	if !in.Entry.IsPositive() {
		return errors.NewInvalidArgument(fixedRiskComponent, "entry", "must be a positive price")
	}
	if !in.StopLoss.IsPositive() {
		return errors.NewInvalidArgument(fixedRiskComponent, "stopLoss", "must be a positive price")
	}
	if in.Equity.Currency() == "" {
		return errors.NewInvalidArgument(fixedRiskComponent, "equity", "must be a constructed money amount")
	}
	if in.Risk.Sign() <= 0 {
		return errors.NewInvalidArgument(fixedRiskComponent, "risk", "must be positive")
	}
	if in.CommissionRate.IsNegative() {
		return errors.NewInvalidArgument(fixedRiskComponent, "commissionRate", "must not be negative")
	}
	if in.ExchangeRate.IsNegative() {
		return errors.NewInvalidArgument(fixedRiskComponent, "exchangeRate", "must not be negative")
	}
	if in.HardLimit.IsNegative() {
		return errors.NewInvalidArgument(fixedRiskComponent, "hardLimit", "must not be negative")
	}
	if in.UnitBatchSize.IsNegative() {
		return errors.NewInvalidArgument(fixedRiskComponent, "unitBatchSize", "must not be negative")
	}
	if in.Units < 1 {
		return errors.NewInvalidArgument(fixedRiskComponent, "units", "must be a positive integer")
	}
	return nil
}
