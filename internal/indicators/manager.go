package indicators

import (
	"sync"

	"github.com/quanttools/quantcore/pkg/types"
)

// Result is one indicator's reading after a bar has been applied.
type Result struct {
	Value       float64
	State       State
	Initialized bool
}

// Manager fans a bar out to a set of streaming indicators and collects
// their readings. The mutex serializes callers at the manager level;
// the indicators themselves stay single-threaded and lock-free.
type Manager struct {
	mu         sync.RWMutex
	indicators []Indicator
}

// NewManager creates a manager over the given indicators.
func NewManager(indicators ...Indicator) *Manager {
	return &Manager{indicators: indicators}
}

// Add registers another indicator.
func (m *Manager) Add(indicator Indicator) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.indicators = append(m.indicators, indicator)
}

// HandleBar applies the bar to every indicator and returns a snapshot
// of their readings keyed by indicator name.
func (m *Manager) HandleBar(bar types.OHLCV) map[string]Result {
	m.mu.Lock()
	defer m.mu.Unlock()

	results := make(map[string]Result, len(m.indicators))
	for _, indicator := range m.indicators {
		indicator.HandleBar(bar)
		results[indicator.Name()] = Result{
			Value:       indicator.Value(),
			State:       indicator.State(),
			Initialized: indicator.Initialized(),
		}
	}
	return results
}

// Reset resets every managed indicator.
func (m *Manager) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, indicator := range m.indicators {
		indicator.Reset()
	}
}

// Len returns the number of managed indicators.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.indicators)
}
