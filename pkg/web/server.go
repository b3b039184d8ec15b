// Package web provides the optional zonewatch monitor: session status,
// recent in-zone events, the latest annotated snapshot and prometheus
// metrics. It observes the frame loop; it never streams video.
package web

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dstrand/zonewatch/internal/log"
	"github.com/dstrand/zonewatch/pkg/detect"
	"github.com/dstrand/zonewatch/pkg/hub"
	"github.com/dstrand/zonewatch/pkg/watch"
	"github.com/dstrand/zonewatch/pkg/zone"
)

// maxEvents bounds the in-memory event buffer.
const maxEvents = 200

// Event is one in-zone detection as reported to monitor clients.
type Event struct {
	ID        string           `json:"id"`
	Time      string           `json:"time"`
	Zones     []string         `json:"zones"`
	Detection detect.Detection `json:"detection"`
}

// Status is the session summary served at /api/status.
type Status struct {
	SessionID        string   `json:"session_id"`
	StartedAt        string   `json:"started_at"`
	UptimeSeconds    int64    `json:"uptime_seconds"`
	Zones            zone.Set `json:"zones"`
	FramesProcessed  uint64   `json:"frames_processed"`
	DetectionsSeen   uint64   `json:"detections_seen"`
	DetectionsInZone uint64   `json:"detections_in_zone"`
	MonitorClients   int      `json:"monitor_clients"`
	LastEvent        *Event   `json:"last_event,omitempty"`
}

// Server is the monitor server. It consumes loop snapshots through
// Publish and serves them read-only.
type Server struct {
	app  *fiber.App
	port string

	sessionID string
	startedAt time.Time
	metrics   *watch.Metrics

	mu       sync.RWMutex
	zones    zone.Set
	snapshot []byte
	events   []Event

	eventsHub *hub.Hub
}

// NewServer creates a monitor server bound to the loop's metrics.
func NewServer(port string, metrics *watch.Metrics) *Server {
	s := &Server{
		port:      port,
		sessionID: uuid.NewString(),
		startedAt: time.Now(),
		metrics:   metrics,
		events:    make([]Event, 0, maxEvents),
		eventsHub: hub.New("events"),
	}

	app := fiber.New(fiber.Config{
		AppName:               "zonewatch monitor",
		DisableStartupMessage: true,
	})

	// CORS for local dashboards
	app.Use(cors.New())

	api := app.Group("/api")
	api.Get("/status", s.handleStatus)
	api.Get("/zones", s.handleZones)
	api.Get("/events", s.handleEvents)
	api.Get("/snapshot", s.handleSnapshot)

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(metrics.Registry(), promhttp.HandlerOpts{})))

	// WebSocket upgrade middleware
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/events", websocket.New(s.handleEventsWS))

	s.app = app
	return s
}

// Start serves until Shutdown. It blocks.
func (s *Server) Start() error {
	log.Info("monitor listening", "port", s.port, "session", s.sessionID)
	go s.eventsHub.Run()
	return s.app.Listen(":" + s.port)
}

// StartAsync serves in a goroutine.
func (s *Server) StartAsync() {
	go func() {
		if err := s.Start(); err != nil {
			log.Error("monitor server stopped", "error", err)
		}
	}()
}

// Shutdown stops the server and disconnects event feed clients.
func (s *Server) Shutdown() error {
	s.eventsHub.Stop()
	return s.app.Shutdown()
}

// Publish records a loop snapshot: the latest annotated frame, the
// zone set, and one event per in-zone detection. Safe for the loop
// goroutine to call every frame.
func (s *Server) Publish(snap watch.Snapshot) {
	s.mu.Lock()
	s.zones = snap.Zones
	s.snapshot = snap.JPEG

	var fresh []Event
	for _, d := range snap.InZone {
		ev := Event{
			ID:        uuid.NewString(),
			Time:      snap.Taken.Format(time.RFC3339),
			Zones:     snap.Zones.Hits(d.Box),
			Detection: d,
		}
		s.events = append(s.events, ev)
		fresh = append(fresh, ev)
	}
	if len(s.events) > maxEvents {
		s.events = s.events[len(s.events)-maxEvents:]
	}
	s.mu.Unlock()

	for _, ev := range fresh {
		if err := s.eventsHub.BroadcastJSON(ev); err != nil {
			log.Warn("event broadcast failed", "error", err)
		}
	}
}
