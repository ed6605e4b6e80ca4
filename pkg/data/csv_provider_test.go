package data

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quanttools/quantcore/internal/errors"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bars.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestCSVProvider_LoadData(t *testing.T) {
	path := writeTempCSV(t, `timestamp,open,high,low,close,volume
2024-01-01 00:00:00,100,105,95,102,1000
2024-01-01 01:00:00,102,110,101,108,1500
`)

	bars, err := NewCSVProvider().LoadData(path)
	require.NoError(t, err)

	require.Len(t, bars, 2)
	assert.Equal(t, 102.0, bars[0].Close)
	assert.Equal(t, 108.0, bars[1].Close)
	assert.Equal(t, 2024, bars[0].Timestamp.Year())
}

func TestCSVProvider_SkipsBadRows(t *testing.T) {
	path := writeTempCSV(t, `timestamp,open,high,low,close,volume
2024-01-01 00:00:00,100,105,95,102,1000
not-a-date,100,105,95,102,1000
2024-01-01 02:00:00,100,105,95,oops,1000
2024-01-01 03:00:00,100,95,105,102,1000
2024-01-01 04:00:00,-1,105,95,102,1000
2024-01-01 05:00:00,100,105,95,104,2000
`)

	bars, err := NewCSVProvider().LoadData(path)
	require.NoError(t, err)

	// Only the two well-formed rows survive: bad timestamp, bad close,
	// inverted high/low and negative open are all skipped.
	require.Len(t, bars, 2)
	assert.Equal(t, 102.0, bars[0].Close)
	assert.Equal(t, 104.0, bars[1].Close)
}

func TestCSVProvider_MissingFile(t *testing.T) {
	_, err := NewCSVProvider().LoadData(filepath.Join(t.TempDir(), "missing.csv"))

	assert.Error(t, err)
	assert.True(t, errors.IsData(err))
}

func TestCSVProvider_GetName(t *testing.T) {
	assert.Equal(t, "CSV Provider", NewCSVProvider().GetName())
}

func TestGenerateSampleData(t *testing.T) {
	bars := GenerateSampleData(100, 30000.0)

	require.Len(t, bars, 100)
	for i, bar := range bars {
		assert.Greater(t, bar.Close, 0.0, "bar %d", i)
		assert.False(t, bars[0].Timestamp.After(bar.Timestamp))
	}
}
