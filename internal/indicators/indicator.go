package indicators

import "github.com/quanttools/quantcore/pkg/types"

// State is the lifecycle of a streaming indicator. It only moves
// forward: Uninitialized on construction, HasInputs once the first
// update lands, Initialized once the window holds a full period.
// Reset is the single backward transition.
type State uint8

const (
	StateUninitialized State = iota
	StateHasInputs
	StateInitialized
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "UNINITIALIZED"
	case StateHasInputs:
		return "HAS_INPUTS"
	case StateInitialized:
		return "INITIALIZED"
	default:
		return "UNKNOWN"
	}
}

// Indicator is a streaming, update-driven calculator. Value is
// recomputed on every update, including before the window fills;
// callers gate on Initialized before trusting it.
type Indicator interface {
	Name() string
	Period() int
	State() State
	HasInputs() bool
	Initialized() bool

	// HandleBar extracts the bar's close and forwards it to UpdateRaw
	HandleBar(bar types.OHLCV)

	// UpdateRaw pushes one raw price into the indicator
	UpdateRaw(price float64)

	Value() float64

	// Reset returns the indicator to its just-constructed state,
	// keeping its configuration
	Reset()
}

// streamingBase owns the state machine so concrete indicators cannot
// break the forward-only invariant. Subclasses call markHasInputs and
// markInitialized from their update logic at the trigger points and
// never touch the state directly.
type streamingBase struct {
	period int
	state  State
}

func newStreamingBase(period int) streamingBase {
	return streamingBase{period: period, state: StateUninitialized}
}

func (b *streamingBase) Period() int       { return b.period }
func (b *streamingBase) State() State      { return b.state }
func (b *streamingBase) HasInputs() bool   { return b.state >= StateHasInputs }
func (b *streamingBase) Initialized() bool { return b.state == StateInitialized }

func (b *streamingBase) markHasInputs() {
	if b.state == StateUninitialized {
		b.state = StateHasInputs
	}
}

func (b *streamingBase) markInitialized() {
	if b.state < StateInitialized {
		b.state = StateInitialized
	}
}

func (b *streamingBase) resetState() {
	b.state = StateUninitialized
}
