// zonewatch watches a webcam for people inside configured screen
// zones, drawing translucent zone overlays and annotated detection
// boxes. ESC exits.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dstrand/zonewatch/internal/config"
	"github.com/dstrand/zonewatch/internal/log"
	"github.com/dstrand/zonewatch/pkg/capture"
	"github.com/dstrand/zonewatch/pkg/detect"
	"github.com/dstrand/zonewatch/pkg/display"
	"github.com/dstrand/zonewatch/pkg/overlay"
	"github.com/dstrand/zonewatch/pkg/watch"
	"github.com/dstrand/zonewatch/pkg/web"
	"github.com/dstrand/zonewatch/pkg/zone"
)

const windowName = "Zone Watch"

type options struct {
	camera     int
	model      string
	confidence float64
	alpha      float64
	layout     string
	zones      int
	fullscreen bool
	monitor    string
	quality    int
	debug      bool
}

func main() {
	var opts options
	flag.IntVar(&opts.camera, "camera", config.CameraIndex(0), "camera device index")
	flag.StringVar(&opts.model, "model", config.ModelPath("models/yolov8n.onnx"), "path to YOLOv8 ONNX model")
	flag.Float64Var(&opts.confidence, "confidence", 0.5, "minimum detection confidence")
	flag.Float64Var(&opts.alpha, "alpha", 0.1, "zone fill transparency (0-1)")
	flag.StringVar(&opts.layout, "layout", "adaptive", "zone layout: adaptive or fixed")
	flag.IntVar(&opts.zones, "zones", 3, "zone count for the adaptive layout")
	flag.BoolVar(&opts.fullscreen, "fullscreen", false, "show the window fullscreen")
	flag.StringVar(&opts.monitor, "monitor", config.MonitorPort(""), "monitor HTTP port (empty disables)")
	flag.IntVar(&opts.quality, "quality", 85, "snapshot JPEG quality")
	flag.BoolVar(&opts.debug, "debug", false, "enable debug logging")
	flag.Parse()

	level := "info"
	if opts.debug {
		level = "debug"
	}
	log.Init(level)

	if err := run(opts); err != nil {
		if errors.Is(err, capture.ErrDeviceUnavailable) {
			fmt.Fprintf(os.Stderr, "Error: could not open camera %d\n", opts.camera)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(opts options) error {
	layout, err := zoneLayout(opts)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Info("shutting down")
		cancel()
	}()

	// Camera first: an unavailable device must fail before any window
	// or model resource exists.
	source, err := capture.OpenDevice(opts.camera)
	if err != nil {
		return err
	}
	defer source.Close()
	log.Info("camera opened", "index", opts.camera)

	yoloCfg := detect.DefaultYOLOConfig()
	yoloCfg.ModelPath = opts.model
	yoloCfg.ConfidenceThresh = float32(opts.confidence)
	detector, err := detect.NewYOLO(yoloCfg)
	if err != nil {
		return fmt.Errorf("load detector: %w", err)
	}
	defer detector.Close()
	log.Info("detector loaded", "model", opts.model)

	window := display.NewScreen(windowName, opts.fullscreen)
	defer window.Close()

	style := overlay.DefaultStyle()
	style.ZoneAlpha = opts.alpha

	cfg := watch.Config{
		Source:        source,
		Window:        window,
		Detector:      detector,
		Layout:        layout,
		Renderer:      overlay.NewRenderer(style),
		MinConfidence: opts.confidence,
		JPEGQuality:   opts.quality,
		Metrics:       watch.NewMetrics(),
	}

	if opts.monitor != "" {
		server := web.NewServer(opts.monitor, cfg.Metrics)
		server.StartAsync()
		defer server.Shutdown()
		cfg.OnFrame = server.Publish
	}

	loop, err := watch.New(cfg)
	if err != nil {
		return err
	}

	err = loop.Run(ctx)
	log.Info("session finished",
		"frames", cfg.Metrics.FramesProcessed.Load(),
		"in_zone", cfg.Metrics.DetectionsInZone.Load())
	return err
}

func zoneLayout(opts options) (zone.Layout, error) {
	switch opts.layout {
	case "adaptive":
		return zone.NewAdaptiveLayout(opts.zones), nil
	case "fixed":
		return zone.DefaultFixedLayout(), nil
	default:
		return nil, fmt.Errorf("unknown layout %q (want adaptive or fixed)", opts.layout)
	}
}
