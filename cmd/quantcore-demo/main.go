package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/quanttools/quantcore/internal/config"
	"github.com/quanttools/quantcore/internal/indicators"
	"github.com/quanttools/quantcore/internal/monitoring"
	"github.com/quanttools/quantcore/internal/risk"
	"github.com/quanttools/quantcore/internal/safety"
	"github.com/quanttools/quantcore/pkg/data"
	"github.com/quanttools/quantcore/pkg/reporting"
	"github.com/quanttools/quantcore/pkg/types"
)

func main() {
	log.Println("=== quantcore demo ===")

	loadEnvFile()
	cfg := config.Load()
	log.Printf("Configuration loaded: %s mode", cfg.Environment)

	instrument := buildInstrument(cfg)
	bars := loadBars(cfg)
	log.Printf("Loaded %d bars for %s", len(bars), instrument.Symbol())

	roc, err := indicators.NewRateOfChange(cfg.Indicator.Period, cfg.Indicator.UseLog)
	if err != nil {
		log.Fatalf("indicator setup failed: %v", err)
	}
	manager := indicators.NewManager(roc)

	series, skipped := streamBars(manager, roc.Name(), instrument.Symbol(), bars)
	if len(series) == 0 {
		log.Fatal("no usable bars in the data set")
	}

	summary := sizePosition(cfg, instrument, roc, series)
	summary.Bars = len(series)
	summary.Skipped = skipped

	console := reporting.NewConsoleReporter()
	console.PrintSummary(summary)
	console.PrintTail(series, 10)

	if cfg.Data.ReportFile != "" {
		if err := reporting.NewExcelReporter().Write(summary, series, cfg.Data.ReportFile); err != nil {
			log.Fatalf("report export failed: %v", err)
		}
		log.Printf("Report written to %s", cfg.Data.ReportFile)
	}
}

func loadEnvFile() {
	if _, err := os.Stat(".env"); err != nil {
		return
	}
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: could not load .env: %v", err)
	}
}

func buildInstrument(cfg *config.Config) *types.Instrument {
	tickSize := mustDecimal("INSTRUMENT_TICK_SIZE", cfg.Instrument.TickSize)
	precision := int32(cfg.Instrument.SizePrecision)

	maxQuantity, err := types.NewQuantityFromString(cfg.Instrument.MaxQuantity, precision)
	if err != nil {
		log.Fatalf("bad INSTRUMENT_MAX_QUANTITY: %v", err)
	}

	instrument, err := types.NewInstrument(cfg.Instrument.Symbol, tickSize, precision, maxQuantity)
	if err != nil {
		log.Fatalf("instrument setup failed: %v", err)
	}
	return instrument
}

func loadBars(cfg *config.Config) []types.OHLCV {
	if cfg.Data.File == "" {
		log.Println("DATA_FILE not set, generating sample data")
		return data.GenerateSampleData(500, 30000.0)
	}

	bars, err := data.NewCSVProvider().LoadData(cfg.Data.File)
	if err != nil {
		log.Fatalf("data load failed: %v", err)
	}
	return bars
}

func streamBars(manager *indicators.Manager, name, symbol string, bars []types.OHLCV) ([]reporting.SeriesPoint, int) {
	validator := safety.NewValidator()
	series := make([]reporting.SeriesPoint, 0, len(bars))
	skipped := 0

	for _, bar := range bars {
		if result := validator.ValidateBar(bar, symbol); !result.Valid {
			monitoring.RecordError(result.Code)
			skipped++
			continue
		}

		results := manager.HandleBar(bar)
		reading := results[name]
		monitoring.RecordIndicatorUpdate(name, symbol, reading.Value)

		series = append(series, reporting.SeriesPoint{
			Timestamp:   bar.Timestamp,
			Close:       bar.Close,
			Value:       reading.Value,
			State:       reading.State.String(),
			Initialized: reading.Initialized,
		})
	}
	return series, skipped
}

func sizePosition(cfg *config.Config, instrument *types.Instrument, roc *indicators.RateOfChange, series []reporting.SeriesPoint) *reporting.RunSummary {
	lastClose := series[len(series)-1].Close

	entry, err := types.NewPriceFromFloat(lastClose, 2)
	if err != nil {
		log.Fatalf("bad entry price: %v", err)
	}

	stopDistance := mustDecimal("SIZING_STOP_DISTANCE", cfg.Sizing.StopDistance)
	stopLoss, err := types.NewPrice(entry.Decimal().Sub(stopDistance), entry.Precision())
	if err != nil {
		log.Fatalf("bad stop loss: %v", err)
	}

	equity, err := types.NewMoneyFromString(cfg.Sizing.Equity, cfg.Sizing.Currency)
	if err != nil {
		log.Fatalf("bad SIZING_EQUITY: %v", err)
	}

	in := risk.NewSizingInput(entry, stopLoss, equity, mustDecimal("SIZING_RISK", cfg.Sizing.Risk))
	in.CommissionRate = mustDecimal("SIZING_COMMISSION_RATE", cfg.Sizing.CommissionRate)
	in.ExchangeRate = mustDecimal("SIZING_EXCHANGE_RATE", cfg.Sizing.ExchangeRate)
	in.HardLimit = mustDecimal("SIZING_HARD_LIMIT", cfg.Sizing.HardLimit)
	in.UnitBatchSize = mustDecimal("SIZING_UNIT_BATCH_SIZE", cfg.Sizing.UnitBatchSize)
	in.Units = cfg.Sizing.Units

	sizer, err := risk.NewFixedRiskSizer(instrument)
	if err != nil {
		log.Fatalf("sizer setup failed: %v", err)
	}

	quantity, err := sizer.Calculate(in)
	if err != nil {
		monitoring.RecordSizing(instrument.Symbol(), monitoring.SizingOutcomeRejected, 0)
		log.Fatalf("sizing failed: %v", err)
	}

	outcome := monitoring.SizingOutcomeSized
	if quantity.IsZero() {
		outcome = monitoring.SizingOutcomeDegenerate
	}
	monitoring.RecordSizing(instrument.Symbol(), outcome, quantity.Float64())

	return &reporting.RunSummary{
		Symbol:        instrument.Symbol(),
		Indicator:     roc.Name(),
		Period:        roc.Period(),
		FinalValue:    roc.Value(),
		Initialized:   roc.Initialized(),
		Entry:         entry,
		StopLoss:      stopLoss,
		Equity:        equity,
		SizedQuantity: quantity,
	}
}

func mustDecimal(name, value string) decimal.Decimal {
	parsed, err := decimal.NewFromString(value)
	if err != nil {
		log.Fatalf("bad %s %q: %v", name, value, err)
	}
	return parsed
}
