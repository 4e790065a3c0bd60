package models

import "sync"

// HistoryBuffer is a bounded FIFO log of location points. When full, the
// oldest point is evicted on append.
type HistoryBuffer struct {
	mu   sync.RWMutex
	data []LocationPoint
	max  int
}

func NewHistoryBuffer(maxPoints int) *HistoryBuffer {
	if maxPoints <= 0 {
		maxPoints = 1
	}
	return &HistoryBuffer{
		data: make([]LocationPoint, 0, maxPoints),
		max:  maxPoints,
	}
}

func (h *HistoryBuffer) Append(p LocationPoint) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.data) == h.max {
		copy(h.data, h.data[1:])
		h.data = h.data[:len(h.data)-1]
	}
	h.data = append(h.data, p)
}

func (h *HistoryBuffer) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.data)
}

// Get returns the point at index. Out-of-range indices are clamped; callers
// scrubbing through history never observe an error, only the nearest point.
func (h *HistoryBuffer) Get(index int) (LocationPoint, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if len(h.data) == 0 {
		return LocationPoint{}, false
	}
	if index < 0 {
		index = 0
	}
	if index > len(h.data)-1 {
		index = len(h.data) - 1
	}
	return h.data[index], true
}

func (h *HistoryBuffer) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.data = h.data[:0]
}

// Points returns a copy of the buffer in arrival order.
func (h *HistoryBuffer) Points() []LocationPoint {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]LocationPoint, len(h.data))
	copy(out, h.data)
	return out
}

func (h *HistoryBuffer) Last() (LocationPoint, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if len(h.data) == 0 {
		return LocationPoint{}, false
	}
	return h.data[len(h.data)-1], true
}
