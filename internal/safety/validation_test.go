package safety

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quanttools/quantcore/pkg/types"
)

func TestValidator_ValidatePrice(t *testing.T) {
	v := NewValidator()

	assert.True(t, v.ValidatePrice(50000.0, "BTCUSDT").Valid)

	cases := []struct {
		name  string
		price float64
		code  string
	}{
		{"nan", math.NaN(), "INVALID_PRICE_NAN"},
		{"positive inf", math.Inf(1), "INVALID_PRICE_INF"},
		{"negative inf", math.Inf(-1), "INVALID_PRICE_INF"},
		{"zero", 0, "INVALID_PRICE_NEGATIVE"},
		{"negative", -1.5, "INVALID_PRICE_NEGATIVE"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := v.ValidatePrice(tc.price, "BTCUSDT")
			assert.False(t, result.Valid)
			assert.Equal(t, tc.code, result.Code)
			assert.Contains(t, result.Message, "BTCUSDT")
		})
	}
}

func TestValidator_ValidateBar(t *testing.T) {
	v := NewValidator()

	good := types.OHLCV{Open: 100, High: 105, Low: 95, Close: 102}
	assert.True(t, v.ValidateBar(good, "BTCUSDT").Valid)

	badClose := good
	badClose.Close = math.NaN()
	assert.False(t, v.ValidateBar(badClose, "BTCUSDT").Valid)

	inverted := types.OHLCV{Open: 100, High: 95, Low: 105, Close: 100}
	result := v.ValidateBar(inverted, "BTCUSDT")
	assert.False(t, result.Valid)
	assert.Equal(t, "INVALID_BAR_RANGE", result.Code)
}
