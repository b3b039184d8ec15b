package web

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"github.com/dstrand/zonewatch/pkg/hub"
)

// handleStatus returns the session summary.
func (s *Server) handleStatus(c *fiber.Ctx) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	status := Status{
		SessionID:        s.sessionID,
		StartedAt:        s.startedAt.Format(time.RFC3339),
		UptimeSeconds:    int64(time.Since(s.startedAt).Seconds()),
		Zones:            s.zones,
		FramesProcessed:  s.metrics.FramesProcessed.Load(),
		DetectionsSeen:   s.metrics.DetectionsSeen.Load(),
		DetectionsInZone: s.metrics.DetectionsInZone.Load(),
		MonitorClients:   s.eventsHub.ClientCount(),
	}
	if n := len(s.events); n > 0 {
		last := s.events[n-1]
		status.LastEvent = &last
	}
	return c.JSON(status)
}

// handleZones returns the configured watch zones.
func (s *Server) handleZones(c *fiber.Ctx) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.zones == nil {
		return c.JSON([]interface{}{})
	}
	return c.JSON(s.zones)
}

// handleEvents returns the recent in-zone event buffer, newest last.
func (s *Server) handleEvents(c *fiber.Ctx) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return c.JSON(s.events)
}

// handleSnapshot serves the latest annotated frame. 404 until the
// loop has published one.
func (s *Server) handleSnapshot(c *fiber.Ctx) error {
	s.mu.RLock()
	snapshot := s.snapshot
	s.mu.RUnlock()

	if len(snapshot) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "no frame published yet",
		})
	}
	c.Set(fiber.HeaderContentType, "image/jpeg")
	return c.Send(snapshot)
}

// handleEventsWS subscribes a websocket client to the live event feed.
func (s *Server) handleEventsWS(c *websocket.Conn) {
	client := hub.NewClient(s.eventsHub, c)
	client.Run() // blocks until the connection closes
}
