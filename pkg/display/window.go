// Package display provides the on-screen window boundary.
package display

import (
	"time"

	"github.com/dstrand/zonewatch/pkg/overlay"
)

// Key codes returned by PollKey.
const (
	KeyNone   = -1
	KeyEscape = 27
)

// Window shows frames and polls the keyboard. Implementations are used
// from a single goroutine.
type Window interface {
	Show(frame overlay.Canvas) error
	PollKey(wait time.Duration) int
	Close() error
}
