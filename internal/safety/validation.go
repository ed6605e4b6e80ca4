package safety

import (
	"fmt"
	"math"

	"github.com/quanttools/quantcore/pkg/types"
)

// ValidationResult represents the result of a validation check
type ValidationResult struct {
	Valid   bool
	Message string
	Code    string
}

// Validator provides defensive checks for raw float inputs before they
// reach the streaming indicators
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidatePrice validates a raw price scalar
func (v *Validator) ValidatePrice(price float64, symbol string) ValidationResult {
	if math.IsNaN(price) {
		return ValidationResult{
			Valid:   false,
			Message: fmt.Sprintf("invalid price for %s: price is NaN", symbol),
			Code:    "INVALID_PRICE_NAN",
		}
	}

	if math.IsInf(price, 0) {
		return ValidationResult{
			Valid:   false,
			Message: fmt.Sprintf("invalid price for %s: price is infinite", symbol),
			Code:    "INVALID_PRICE_INF",
		}
	}

	if price <= 0 {
		return ValidationResult{
			Valid:   false,
			Message: fmt.Sprintf("invalid price %.8f for %s: price must be positive", price, symbol),
			Code:    "INVALID_PRICE_NEGATIVE",
		}
	}

	return ValidationResult{Valid: true}
}

// ValidateBar validates a full bar before it is streamed into indicators
func (v *Validator) ValidateBar(bar types.OHLCV, symbol string) ValidationResult {
	for _, price := range []float64{bar.Open, bar.High, bar.Low, bar.Close} {
		if result := v.ValidatePrice(price, symbol); !result.Valid {
			return result
		}
	}

	if bar.High < bar.Low {
		return ValidationResult{
			Valid:   false,
			Message: fmt.Sprintf("invalid bar for %s: high %.8f below low %.8f", symbol, bar.High, bar.Low),
			Code:    "INVALID_BAR_RANGE",
		}
	}

	return ValidationResult{Valid: true}
}
