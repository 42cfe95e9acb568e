package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadParsesYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "defaults.yaml")
	contents := "timeout_seconds: 30\nproxy_url: \"http://proxy.local:8080\"\ndefault_headers:\n  X-Client: httpcall\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	d, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if d.TimeoutSeconds != 30 {
		t.Fatalf("TimeoutSeconds = %d, want 30", d.TimeoutSeconds)
	}
	if d.ProxyURL != "http://proxy.local:8080" {
		t.Fatalf("ProxyURL = %q", d.ProxyURL)
	}
	if d.DefaultHeaders["X-Client"] != "httpcall" {
		t.Fatalf("DefaultHeaders = %v", d.DefaultHeaders)
	}
	if d.Timeout().Seconds() != 30 {
		t.Fatalf("Timeout() = %v, want 30s", d.Timeout())
	}
}

func TestWatchReloadsOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "defaults.yaml")
	if err := os.WriteFile(path, []byte("timeout_seconds: 5\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	changes := make(chan *ClientDefaults, 1)
	stop := make(chan struct{})
	defer close(stop)

	if err := Watch(path, func(d *ClientDefaults) { changes <- d }, stop); err != nil {
		t.Fatalf("Watch: %v", err)
	}

	if err := os.WriteFile(path, []byte("timeout_seconds: 60\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	select {
	case d := <-changes:
		if d.TimeoutSeconds != 60 {
			t.Fatalf("reloaded TimeoutSeconds = %d, want 60", d.TimeoutSeconds)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for reload")
	}
}
