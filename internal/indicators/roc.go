package indicators

import (
	"math"

	"github.com/quanttools/quantcore/internal/errors"
	"github.com/quanttools/quantcore/pkg/types"
)

// RateOfChange measures the relative price change across a rolling
// window of the last period prices. The comparison baseline is the
// oldest price still in the window, so it slides forward as new prices
// evict old ones rather than staying anchored to a fixed origin.
type RateOfChange struct {
	streamingBase
	useLog bool
	window *window
	value  float64
}

// NewRateOfChange creates a rate-of-change indicator. With useLog the
// value is ln(price/oldest) instead of (price-oldest)/oldest.
func NewRateOfChange(period int, useLog bool) (*RateOfChange, error) {
	if period <= 1 {
		return nil, errors.NewInvalidArgument("RateOfChange", "period", "must be greater than 1")
	}
	return &RateOfChange{
		streamingBase: newStreamingBase(period),
		useLog:        useLog,
		window:        newWindow(period),
	}, nil
}

func (r *RateOfChange) Name() string {
	return "RateOfChange"
}

// HandleBar feeds the bar's closing price into the indicator.
func (r *RateOfChange) HandleBar(bar types.OHLCV) {
	r.UpdateRaw(bar.Close)
}

// UpdateRaw pushes one price and recomputes the value. The value is
// recomputed on every update, even before the window fills; it is only
// reliable once Initialized reports true.
func (r *RateOfChange) UpdateRaw(price float64) {
	r.window.push(price)

	if !r.Initialized() {
		r.markHasInputs()
		if r.window.size() >= r.period {
			r.markInitialized()
		}
	}

	oldest := r.window.front()
	if r.useLog {
		r.value = math.Log(price / oldest)
	} else {
		r.value = (price - oldest) / oldest
	}
}

func (r *RateOfChange) Value() float64 {
	return r.value
}

// Reset clears the window and returns to the uninitialized state.
// Period and log mode are preserved.
func (r *RateOfChange) Reset() {
	r.window.reset()
	r.value = 0
	r.resetState()
}
