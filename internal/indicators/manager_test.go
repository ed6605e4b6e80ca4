package indicators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quanttools/quantcore/pkg/types"
)

func TestManager_HandleBar(t *testing.T) {
	roc, err := NewRateOfChange(2, false)
	require.NoError(t, err)

	m := NewManager(roc)
	require.Equal(t, 1, m.Len())

	results := m.HandleBar(types.OHLCV{Close: 100})
	reading, ok := results["RateOfChange"]
	require.True(t, ok)
	assert.False(t, reading.Initialized)
	assert.Equal(t, StateHasInputs, reading.State)

	results = m.HandleBar(types.OHLCV{Close: 110})
	reading = results["RateOfChange"]
	assert.True(t, reading.Initialized)
	assert.InDelta(t, 0.10, reading.Value, 1e-12)
}

func TestManager_AddAndReset(t *testing.T) {
	fast, err := NewRateOfChange(2, false)
	require.NoError(t, err)
	slow, err := NewRateOfChange(4, true)
	require.NoError(t, err)

	m := NewManager(fast)
	m.Add(slow)
	assert.Equal(t, 2, m.Len())

	for _, close := range []float64{100, 101, 102, 103} {
		m.HandleBar(types.OHLCV{Close: close})
	}
	require.True(t, fast.Initialized())
	require.True(t, slow.Initialized())

	m.Reset()

	assert.False(t, fast.HasInputs())
	assert.False(t, slow.HasInputs())
	assert.Equal(t, 0.0, fast.Value())
	assert.Equal(t, 0.0, slow.Value())
}
