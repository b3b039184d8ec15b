// Package config provides environment fallbacks for zonewatch flags.
package config

import (
	"os"
	"strconv"
)

// Environment variables recognized when the matching flag is left at
// its default.
const (
	EnvCamera  = "ZONEWATCH_CAMERA"
	EnvModel   = "ZONEWATCH_MODEL"
	EnvMonitor = "ZONEWATCH_MONITOR"
)

// CameraIndex returns the camera index from ZONEWATCH_CAMERA.
// Falls back to the provided default if unset or malformed.
func CameraIndex(defaultIndex int) int {
	if v := os.Getenv(EnvCamera); v != "" {
		if idx, err := strconv.Atoi(v); err == nil && idx >= 0 {
			return idx
		}
	}
	return defaultIndex
}

// ModelPath returns the detector model path from ZONEWATCH_MODEL.
// Falls back to the provided default if not set.
func ModelPath(defaultPath string) string {
	if p := os.Getenv(EnvModel); p != "" {
		return p
	}
	return defaultPath
}

// MonitorPort returns the monitor port from ZONEWATCH_MONITOR.
// Falls back to the provided default if not set; empty disables the
// monitor.
func MonitorPort(defaultPort string) string {
	if p := os.Getenv(EnvMonitor); p != "" {
		return p
	}
	return defaultPort
}
