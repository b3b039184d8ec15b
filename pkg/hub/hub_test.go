package hub

import (
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	h := New("events")
	if h == nil {
		t.Fatal("New returned nil")
	}
	if h.ClientCount() != 0 {
		t.Error("ClientCount should be 0 initially")
	}
}

func TestBroadcastWithoutClients(t *testing.T) {
	h := New("events")
	go h.Run()
	defer h.Stop()

	// Must not block or panic with nobody listening
	h.Broadcast([]byte(`{"zone":"left"}`))
	if err := h.BroadcastJSON(map[string]string{"zone": "right"}); err != nil {
		t.Fatalf("BroadcastJSON: %v", err)
	}
}

func TestBroadcastJSON_EncodeError(t *testing.T) {
	h := New("events")
	if err := h.BroadcastJSON(make(chan int)); err == nil {
		t.Error("expected encode error for unmarshalable value")
	}
}

func TestBroadcastQueueOverflowDropsEvents(t *testing.T) {
	// Hub not running: the queue fills, further events are dropped
	// without blocking
	h := New("events")
	done := make(chan struct{})
	go func() {
		for i := 0; i < 1000; i++ {
			h.Broadcast([]byte("x"))
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Broadcast blocked on a full queue")
	}
}

func TestStopIsIdempotent(t *testing.T) {
	h := New("events")
	go h.Run()
	h.Stop()
	h.Stop()
}
