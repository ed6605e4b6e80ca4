package config

import (
	"os"
	"strconv"
)

type Config struct {
	Environment string

	Instrument struct {
		Symbol        string
		TickSize      string
		SizePrecision int
		MaxQuantity   string
	}

	Indicator struct {
		Period int
		UseLog bool
	}

	Sizing struct {
		Equity         string
		Currency       string
		Risk           string
		CommissionRate string
		ExchangeRate   string
		HardLimit      string
		UnitBatchSize  string
		Units          int
		StopDistance   string
	}

	Data struct {
		File       string
		ReportFile string
	}
}

// Load reads configuration from the environment. Decimal-valued fields
// stay strings here so monetary values never round-trip through floats;
// they are parsed into decimals where they are consumed.
func Load() *Config {
	cfg := &Config{
		Environment: getEnv("ENV", "development"),
	}

	cfg.Instrument.Symbol = getEnv("INSTRUMENT_SYMBOL", "BTCUSDT")
	cfg.Instrument.TickSize = getEnv("INSTRUMENT_TICK_SIZE", "0.01")
	cfg.Instrument.SizePrecision = getEnvInt("INSTRUMENT_SIZE_PRECISION", 3)
	cfg.Instrument.MaxQuantity = getEnv("INSTRUMENT_MAX_QUANTITY", "1000")

	cfg.Indicator.Period = getEnvInt("ROC_PERIOD", 10)
	cfg.Indicator.UseLog = getEnvBool("ROC_USE_LOG", false)

	cfg.Sizing.Equity = getEnv("SIZING_EQUITY", "100000")
	cfg.Sizing.Currency = getEnv("SIZING_CURRENCY", "USDT")
	cfg.Sizing.Risk = getEnv("SIZING_RISK", "0.01")
	cfg.Sizing.CommissionRate = getEnv("SIZING_COMMISSION_RATE", "0")
	cfg.Sizing.ExchangeRate = getEnv("SIZING_EXCHANGE_RATE", "1")
	cfg.Sizing.HardLimit = getEnv("SIZING_HARD_LIMIT", "0")
	cfg.Sizing.UnitBatchSize = getEnv("SIZING_UNIT_BATCH_SIZE", "0")
	cfg.Sizing.Units = getEnvInt("SIZING_UNITS", 1)
	cfg.Sizing.StopDistance = getEnv("SIZING_STOP_DISTANCE", "100")

	cfg.Data.File = getEnv("DATA_FILE", "")
	cfg.Data.ReportFile = getEnv("REPORT_FILE", "")

	return cfg
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.ParseBool(val); err == nil {
			return parsed
		}
	}
	return defaultVal
}
