package data

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"strconv"
	"time"

	coreerrors "github.com/quanttools/quantcore/internal/errors"
	"github.com/quanttools/quantcore/internal/safety"
	"github.com/quanttools/quantcore/pkg/types"
)

// CSVColumnMapping describes where each field lives in a CSV row.
type CSVColumnMapping struct {
	TimestampCol int
	OpenCol      int
	HighCol      int
	LowCol       int
	CloseCol     int
	VolumeCol    int
	MinColumns   int
	DateFormat   string
}

// DefaultCSVFormat matches timestamp,open,high,low,close,volume exports.
var DefaultCSVFormat = CSVColumnMapping{
	TimestampCol: 0,
	OpenCol:      1,
	HighCol:      2,
	LowCol:       3,
	CloseCol:     4,
	VolumeCol:    5,
	MinColumns:   6,
	DateFormat:   "2006-01-02 15:04:05",
}

// CSVProvider implements Provider for CSV files
type CSVProvider struct {
	format    CSVColumnMapping
	validator *safety.Validator
}

var _ Provider = (*CSVProvider)(nil)

// NewCSVProvider creates a new CSV data provider with the default format
func NewCSVProvider() *CSVProvider {
	return NewCSVProviderWithFormat(DefaultCSVFormat)
}

// NewCSVProviderWithFormat creates a new CSV data provider with a custom format
func NewCSVProviderWithFormat(format CSVColumnMapping) *CSVProvider {
	return &CSVProvider{
		format:    format,
		validator: safety.NewValidator(),
	}
}

// GetName returns the name of the data provider
func (p *CSVProvider) GetName() string {
	return "CSV Provider"
}

// LoadData loads bars from a CSV file. A missing file is a data error:
// a sizing run must never proceed on invented prices.
func (p *CSVProvider) LoadData(source string) ([]types.OHLCV, error) {
	file, err := os.Open(source)
	if err != nil {
		return nil, coreerrors.WrapData(err, "CSVProvider", "open")
	}
	defer file.Close()

	reader := csv.NewReader(file)

	// Skip header
	if _, err := reader.Read(); err != nil {
		return nil, coreerrors.WrapData(err, "CSVProvider", "read header")
	}

	var bars []types.OHLCV

	lineNum := 1 // header already read
	for {
		record, err := reader.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, coreerrors.WrapData(fmt.Errorf("line %d: %w", lineNum, err), "CSVProvider", "read row")
		}
		lineNum++

		if len(record) < p.format.MinColumns {
			log.Printf("insufficient columns at line %d (expected %d, got %d), skipping", lineNum, p.format.MinColumns, len(record))
			continue
		}

		timestamp, err := time.Parse(p.format.DateFormat, record[p.format.TimestampCol])
		if err != nil {
			log.Printf("invalid timestamp %q at line %d, skipping: %v", record[p.format.TimestampCol], lineNum, err)
			continue
		}

		bar := types.OHLCV{Timestamp: timestamp}
		fields := []struct {
			name string
			col  int
			dst  *float64
		}{
			{"open", p.format.OpenCol, &bar.Open},
			{"high", p.format.HighCol, &bar.High},
			{"low", p.format.LowCol, &bar.Low},
			{"close", p.format.CloseCol, &bar.Close},
			{"volume", p.format.VolumeCol, &bar.Volume},
		}

		parsed := true
		for _, f := range fields {
			value, err := strconv.ParseFloat(record[f.col], 64)
			if err != nil {
				log.Printf("invalid %s %q at line %d, skipping: %v", f.name, record[f.col], lineNum, err)
				parsed = false
				break
			}
			*f.dst = value
		}
		if !parsed {
			continue
		}

		if result := p.validator.ValidateBar(bar, source); !result.Valid {
			log.Printf("bad bar at line %d, skipping: %s", lineNum, result.Message)
			continue
		}

		bars = append(bars, bar)
	}

	return bars, nil
}

// GenerateSampleData creates a synthetic random-walk series for demos
// and tests when no real data file is configured.
func GenerateSampleData(n int, basePrice float64) []types.OHLCV {
	bars := make([]types.OHLCV, n)
	startTime := time.Now().Add(-time.Duration(n) * time.Hour)

	for i := range bars {
		volatility := 0.02
		randomWalk := (rand.Float64() - 0.5) * basePrice * volatility

		price := basePrice + randomWalk
		if price < basePrice*0.5 {
			price = basePrice * 0.5
		}

		bars[i] = types.OHLCV{
			Timestamp: startTime.Add(time.Duration(i) * time.Hour),
			Open:      price * (1 + (rand.Float64()-0.5)*0.01),
			High:      price * (1 + rand.Float64()*0.02),
			Low:       price * (1 - rand.Float64()*0.02),
			Close:     price,
			Volume:    rand.Float64() * 1000000,
		}

		basePrice = price
	}

	return bars
}
