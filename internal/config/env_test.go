package config

import "testing"

func TestCameraIndex(t *testing.T) {
	tests := []struct {
		name   string
		env    string
		expect int
	}{
		{name: "unset falls back", env: "", expect: 3},
		{name: "valid value wins", env: "1", expect: 1},
		{name: "zero is valid", env: "0", expect: 0},
		{name: "garbage falls back", env: "webcam", expect: 3},
		{name: "negative falls back", env: "-2", expect: 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(EnvCamera, tc.env)
			if got := CameraIndex(3); got != tc.expect {
				t.Errorf("CameraIndex = %d, want %d", got, tc.expect)
			}
		})
	}
}

func TestModelPath(t *testing.T) {
	t.Setenv(EnvModel, "")
	if got := ModelPath("models/yolov8n.onnx"); got != "models/yolov8n.onnx" {
		t.Errorf("ModelPath fallback = %q", got)
	}

	t.Setenv(EnvModel, "/opt/models/v8s.onnx")
	if got := ModelPath("models/yolov8n.onnx"); got != "/opt/models/v8s.onnx" {
		t.Errorf("ModelPath = %q", got)
	}
}

func TestMonitorPort(t *testing.T) {
	t.Setenv(EnvMonitor, "")
	if got := MonitorPort(""); got != "" {
		t.Errorf("MonitorPort fallback = %q, want empty (disabled)", got)
	}

	t.Setenv(EnvMonitor, "8099")
	if got := MonitorPort(""); got != "8099" {
		t.Errorf("MonitorPort = %q", got)
	}
}
