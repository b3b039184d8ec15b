package display

import (
	"time"

	"github.com/dstrand/zonewatch/pkg/overlay"
)

// MockWindow records shown frames and plays back scripted key presses.
type MockWindow struct {
	// Keys is consumed one code per PollKey call; afterwards PollKey
	// returns KeyNone.
	Keys []int

	// ShowErr, when set, is returned by every Show call.
	ShowErr error

	Shown  []overlay.Canvas
	polls  int
	closed bool
}

// NewMockWindow creates a window that presses the given keys in order.
func NewMockWindow(keys ...int) *MockWindow {
	return &MockWindow{Keys: keys}
}

// Show implements Window.
func (m *MockWindow) Show(frame overlay.Canvas) error {
	if m.ShowErr != nil {
		return m.ShowErr
	}
	m.Shown = append(m.Shown, frame)
	return nil
}

// PollKey implements Window.
func (m *MockWindow) PollKey(wait time.Duration) int {
	if m.polls < len(m.Keys) {
		key := m.Keys[m.polls]
		m.polls++
		return key
	}
	m.polls++
	return KeyNone
}

// Close implements Window.
func (m *MockWindow) Close() error {
	m.closed = true
	return nil
}

// Closed reports whether Close has been called.
func (m *MockWindow) Closed() bool {
	return m.closed
}
