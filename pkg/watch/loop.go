// Package watch runs the capture-detect-render frame loop.
package watch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dstrand/zonewatch/internal/log"
	"github.com/dstrand/zonewatch/pkg/capture"
	"github.com/dstrand/zonewatch/pkg/detect"
	"github.com/dstrand/zonewatch/pkg/display"
	"github.com/dstrand/zonewatch/pkg/overlay"
	"github.com/dstrand/zonewatch/pkg/zone"
)

// Snapshot is what the loop hands to the publish hook after each
// frame: the annotated frame as JPEG plus the detections that landed
// in a zone.
type Snapshot struct {
	JPEG   []byte
	Zones  zone.Set
	InZone []detect.Detection
	Taken  time.Time
}

// Config wires the loop's collaborators. Source, Window, Detector and
// Layout are required; everything else has defaults.
type Config struct {
	Source   capture.Source
	Window   display.Window
	Detector detect.Detector
	Layout   zone.Layout

	// Renderer defaults to overlay.DefaultStyle.
	Renderer *overlay.Renderer

	// Class keeps only detections of this class. Defaults to person.
	Class string

	// MinConfidence drops detections below this score.
	MinConfidence float64

	// Banner is the instruction line drawn on every frame.
	Banner string

	// ExitKey ends the loop when polled. Defaults to ESC.
	ExitKey int

	// PollInterval bounds the key poll. Defaults to 1ms.
	PollInterval time.Duration

	// JPEGQuality for published snapshots. Defaults to 85.
	JPEGQuality int

	// OnFrame, when set, receives a snapshot after every iteration.
	OnFrame func(Snapshot)

	// Metrics defaults to a fresh instance.
	Metrics *Metrics
}

// Loop is the single-threaded frame loop. One iteration reads a
// frame, draws the zone overlays, runs detection, annotates in-zone
// persons, shows the frame and polls for the exit key. The frame is
// owned by the loop for the whole iteration.
type Loop struct {
	cfg      Config
	renderer *overlay.Renderer
	metrics  *Metrics
}

// New validates the configuration and builds a loop.
func New(cfg Config) (*Loop, error) {
	if cfg.Source == nil {
		return nil, errors.New("watch: nil frame source")
	}
	if cfg.Window == nil {
		return nil, errors.New("watch: nil window")
	}
	if cfg.Detector == nil {
		return nil, errors.New("watch: nil detector")
	}
	if cfg.Layout == nil {
		return nil, errors.New("watch: nil zone layout")
	}

	if cfg.Renderer == nil {
		cfg.Renderer = overlay.NewRenderer(overlay.DefaultStyle())
	}
	if cfg.Class == "" {
		cfg.Class = detect.ClassPerson
	}
	if cfg.Banner == "" {
		cfg.Banner = "Press ESC to exit"
	}
	if cfg.ExitKey == 0 {
		cfg.ExitKey = display.KeyEscape
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = time.Millisecond
	}
	if cfg.JPEGQuality <= 0 {
		cfg.JPEGQuality = 85
	}
	if cfg.Metrics == nil {
		cfg.Metrics = NewMetrics()
	}

	return &Loop{cfg: cfg, renderer: cfg.Renderer, metrics: cfg.Metrics}, nil
}

// Metrics returns the loop's counters.
func (l *Loop) Metrics() *Metrics {
	return l.metrics
}

// Run executes the loop until the exit key is pressed, the context is
// cancelled, or the stream ends. A read failure ends the run with
// capture.ErrStreamEnded wrapped in the returned error; the exit key
// and context cancellation end it cleanly. Run does not close the
// collaborators; the caller releases them on every path.
func (l *Loop) Run(ctx context.Context) error {
	log.Info("watch loop started", "class", l.cfg.Class, "exit_key", l.cfg.ExitKey)

	for {
		select {
		case <-ctx.Done():
			log.Info("watch loop cancelled")
			return nil
		default:
		}

		start := time.Now()

		frame, err := l.cfg.Source.Read()
		if err != nil {
			l.metrics.ReadErrors.Add(1)
			if errors.Is(err, capture.ErrStreamEnded) {
				log.Error("camera stream ended", "error", err)
			} else {
				log.Error("frame capture failed", "error", err)
			}
			return fmt.Errorf("read frame: %w", err)
		}

		width, height := frame.Bounds()
		zones := l.cfg.Layout.Zones(width, height)

		for _, z := range zones {
			l.renderer.DrawZone(frame, z.Rect)
		}
		l.renderer.DrawBanner(frame, l.cfg.Banner)

		detections, err := l.cfg.Detector.Detect(frame)
		if err != nil {
			l.metrics.DetectErrors.Add(1)
			return fmt.Errorf("detect: %w", err)
		}
		detections = detect.FilterClass(detections, l.cfg.Class)

		var inZone []detect.Detection
		for _, d := range detections {
			l.metrics.DetectionsSeen.Add(1)
			if d.Confidence < l.cfg.MinConfidence {
				continue
			}
			// Out-of-zone detections are dropped silently
			if !zones.Intersects(d.Box) {
				continue
			}
			l.renderer.DrawBox(frame, d.Box, d.Label())
			inZone = append(inZone, d)
			l.metrics.DetectionsInZone.Add(1)
		}

		if l.cfg.OnFrame != nil {
			l.publish(frame, zones, inZone)
		}

		if err := l.cfg.Window.Show(frame); err != nil {
			return fmt.Errorf("show frame: %w", err)
		}

		l.metrics.FramesProcessed.Add(1)
		l.metrics.FrameLatencyMs.Store(uint64(time.Since(start).Milliseconds()))

		if key := l.cfg.Window.PollKey(l.cfg.PollInterval); key == l.cfg.ExitKey {
			log.Info("exit key pressed", "key", key)
			return nil
		}
	}
}

func (l *Loop) publish(frame overlay.Canvas, zones zone.Set, inZone []detect.Detection) {
	data, err := frame.EncodeJPEG(l.cfg.JPEGQuality)
	if err != nil {
		log.Warn("snapshot encode failed", "error", err)
		return
	}
	l.cfg.OnFrame(Snapshot{
		JPEG:   data,
		Zones:  zones,
		InZone: inZone,
		Taken:  time.Now(),
	})
	l.metrics.FramesPublished.Add(1)
}
