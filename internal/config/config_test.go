package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadFromMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file should not be an error: %v", err)
	}
	if cfg.Backend.URL != "" {
		t.Fatalf("unexpected default URL: %q", cfg.Backend.URL)
	}
	if len(cfg.Backend.ProbePorts) != 2 || cfg.Backend.ProbePorts[0] != 5337 || cfg.Backend.ProbePorts[1] != 5437 {
		t.Fatalf("unexpected default probe ports: %v", cfg.Backend.ProbePorts)
	}
}

func TestLoadFromParsesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mcp.yaml")
	data := []byte("backend:\n  url: http://127.0.0.1:6000\n  action_timeout_ms: 5000\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom error: %v", err)
	}
	if cfg.Backend.URL != "http://127.0.0.1:6000" {
		t.Fatalf("unexpected URL: %q", cfg.Backend.URL)
	}
	if cfg.ActionTimeout() != 5*time.Second {
		t.Fatalf("unexpected action timeout: %v", cfg.ActionTimeout())
	}
	// Unset fields keep their defaults
	if cfg.WindowsTimeout() != 10*time.Second {
		t.Fatalf("unexpected windows timeout: %v", cfg.WindowsTimeout())
	}
}

func TestLoadFromRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mcp.yaml")
	if err := os.WriteFile(path, []byte("backend: ["), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadFrom(path); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "mcp.yaml")

	cfg := Default()
	cfg.Backend.URL = "http://127.0.0.1:7000"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo error: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom error: %v", err)
	}
	if loaded.Backend.URL != cfg.Backend.URL {
		t.Fatalf("round trip lost URL: %q", loaded.Backend.URL)
	}
}

func TestTimeoutDefaultsWhenUnset(t *testing.T) {
	cfg := &Config{}
	if cfg.ProbeTimeout() != 500*time.Millisecond {
		t.Fatalf("unexpected probe timeout: %v", cfg.ProbeTimeout())
	}
	if cfg.ActionTimeout() != 30*time.Second {
		t.Fatalf("unexpected action timeout: %v", cfg.ActionTimeout())
	}
}
