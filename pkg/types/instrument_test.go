package types

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quanttools/quantcore/internal/errors"
)

func TestNewInstrument(t *testing.T) {
	maxQty, err := NewQuantityFromString("100", 3)
	require.NoError(t, err)

	instrument, err := NewInstrument("BTCUSDT", decimal.NewFromFloat(0.01), 3, maxQty)
	require.NoError(t, err)

	assert.Equal(t, "BTCUSDT", instrument.Symbol())
	assert.True(t, instrument.TickSize().Equal(decimal.NewFromFloat(0.01)))
	assert.Equal(t, int32(3), instrument.SizePrecision())
	assert.Equal(t, "100.000", instrument.MaxQuantity().String())
}

func TestNewInstrument_Invalid(t *testing.T) {
	maxQty := ZeroQuantity(3)

	cases := []struct {
		name      string
		symbol    string
		tickSize  decimal.Decimal
		precision int32
	}{
		{"empty symbol", "", decimal.NewFromFloat(0.01), 3},
		{"zero tick size", "BTCUSDT", decimal.Zero, 3},
		{"negative tick size", "BTCUSDT", decimal.NewFromFloat(-0.01), 3},
		{"negative precision", "BTCUSDT", decimal.NewFromFloat(0.01), -1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewInstrument(tc.symbol, tc.tickSize, tc.precision, maxQty)
			assert.True(t, errors.IsInvalidArgument(err))
		})
	}
}
