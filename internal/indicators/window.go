package indicators

// window is a fixed-capacity FIFO of raw prices backed by a ring
// buffer. Once full, each push explicitly evicts the oldest element.
// Capacity is set at construction and never changes.
type window struct {
	buf   []float64
	head  int // index of the oldest element
	count int
}

func newWindow(capacity int) *window {
	return &window{buf: make([]float64, capacity)}
}

// push appends v, evicting the oldest element when the window is
// already full. Reports whether an eviction happened.
func (w *window) push(v float64) bool {
	if w.count == len(w.buf) {
		// Saturated: overwrite the front slot and slide the head.
		w.buf[w.head] = v
		w.head = (w.head + 1) % len(w.buf)
		return true
	}
	w.buf[(w.head+w.count)%len(w.buf)] = v
	w.count++
	return false
}

// front returns the oldest buffered price. Callers check size first.
func (w *window) front() float64 {
	return w.buf[w.head]
}

func (w *window) size() int     { return w.count }
func (w *window) capacity() int { return len(w.buf) }

func (w *window) reset() {
	w.head = 0
	w.count = 0
}
