package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "BTCUSDT", cfg.Instrument.Symbol)
	assert.Equal(t, "0.01", cfg.Instrument.TickSize)
	assert.Equal(t, 10, cfg.Indicator.Period)
	assert.False(t, cfg.Indicator.UseLog)
	assert.Equal(t, "1", cfg.Sizing.ExchangeRate)
	assert.Equal(t, 1, cfg.Sizing.Units)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("INSTRUMENT_SYMBOL", "ETHUSDT")
	t.Setenv("ROC_PERIOD", "20")
	t.Setenv("ROC_USE_LOG", "true")
	t.Setenv("SIZING_RISK", "0.02")

	cfg := Load()

	assert.Equal(t, "ETHUSDT", cfg.Instrument.Symbol)
	assert.Equal(t, 20, cfg.Indicator.Period)
	assert.True(t, cfg.Indicator.UseLog)
	assert.Equal(t, "0.02", cfg.Sizing.Risk)
}

func TestLoad_BadValuesFallBack(t *testing.T) {
	t.Setenv("ROC_PERIOD", "not-a-number")
	t.Setenv("ROC_USE_LOG", "maybe")

	cfg := Load()

	assert.Equal(t, 10, cfg.Indicator.Period)
	assert.False(t, cfg.Indicator.UseLog)
}
