package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gtaradio/internal/evdev"
)

func fakeDevice(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "event0")
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunWritesKeystroke(t *testing.T) {
	path := fakeDevice(t)

	var stderr bytes.Buffer
	if code := run([]string{"-device", path, "-key", "space"}, &stderr); code != 0 {
		t.Fatalf("run() = %d, stderr: %s", code, stderr.String())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != 4*evdev.Size() {
		t.Errorf("wrote %d bytes, want %d", len(data), 4*evdev.Size())
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    func(device string) []string
		wantErr string
	}{
		{
			name:    "missing device",
			args:    func(device string) []string { return []string{"-device", device + "-missing"} },
			wantErr: "cannot open input device",
		},
		{
			name:    "unknown key",
			args:    func(device string) []string { return []string{"-device", device, "-key", "nosuchkey"} },
			wantErr: "unknown key",
		},
		{
			name:    "unknown flag",
			args:    func(string) []string { return []string{"-bogus"} },
			wantErr: "flag provided but not defined",
		},
		{
			name:    "extra arguments",
			args:    func(device string) []string { return []string{"-device", device, "extra"} },
			wantErr: "unexpected arguments",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stderr bytes.Buffer
			if code := run(tt.args(fakeDevice(t)), &stderr); code != 1 {
				t.Errorf("run() = %d, want 1", code)
			}
			if !strings.Contains(stderr.String(), tt.wantErr) {
				t.Errorf("stderr = %q, want it to contain %q", stderr.String(), tt.wantErr)
			}
		})
	}
}
