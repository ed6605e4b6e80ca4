package reporting

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/quanttools/quantcore/pkg/types"
)

func testSummary(t *testing.T) *RunSummary {
	t.Helper()

	entry, err := types.NewPriceFromString("50000", 2)
	require.NoError(t, err)
	stop, err := types.NewPriceFromString("49900", 2)
	require.NoError(t, err)
	equity, err := types.NewMoneyFromString("100000", "USDT")
	require.NoError(t, err)

	return &RunSummary{
		Symbol:        "BTCUSDT",
		Bars:          3,
		Indicator:     "RateOfChange",
		Period:        3,
		FinalValue:    0.05,
		Initialized:   true,
		Entry:         entry,
		StopLoss:      stop,
		Equity:        equity,
		SizedQuantity: types.ZeroQuantity(3),
	}
}

func testSeries() []SeriesPoint {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return []SeriesPoint{
		{Timestamp: start, Close: 100, Value: 0, State: "HAS_INPUTS"},
		{Timestamp: start.Add(time.Hour), Close: 102, Value: 0.02, State: "HAS_INPUTS"},
		{Timestamp: start.Add(2 * time.Hour), Close: 105, Value: 0.05, State: "INITIALIZED", Initialized: true},
	}
}

func TestExcelReporter_Write(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "run.xlsx")

	err := NewExcelReporter().Write(testSummary(t), testSeries(), path)
	require.NoError(t, err)

	fx, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer fx.Close()

	assert.ElementsMatch(t, []string{"Summary", "Series"}, fx.GetSheetList())

	symbol, err := fx.GetCellValue("Summary", "B1")
	require.NoError(t, err)
	assert.Equal(t, "BTCUSDT", symbol)

	rows, err := fx.GetRows("Series")
	require.NoError(t, err)
	assert.Len(t, rows, 4) // header + 3 points
}
