package backend

import (
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/NPC-Worldwide/incognide/internal/config"
)

// freePort grabs an ephemeral loopback port and immediately releases it, so
// the port is (very likely) closed when probed.
func freePort(t *testing.T) int {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	port := ln.Addr().(*net.TCPAddr).Port
	ln.Close()
	return port
}

// openPort starts a listener that accepts connections for the test duration.
func openPort(t *testing.T) int {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	t.Cleanup(func() { ln.Close() })
	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			conn.Close()
		}
	}()
	return ln.Addr().(*net.TCPAddr).Port
}

func TestDiscoverEnvOverride(t *testing.T) {
	t.Setenv(config.BackendURLEnv, "http://backend.example:8080")

	cfg := config.Default()
	cfg.Backend.URL = "http://should-not-win:1"

	if got := Discover(cfg); got != "http://backend.example:8080" {
		t.Fatalf("env override ignored, got %q", got)
	}
}

func TestDiscoverConfigURL(t *testing.T) {
	t.Setenv(config.BackendURLEnv, "")

	cfg := config.Default()
	cfg.Backend.URL = "http://127.0.0.1:9999"

	if got := Discover(cfg); got != "http://127.0.0.1:9999" {
		t.Fatalf("config URL ignored, got %q", got)
	}
}

func TestProbeFallsBackWhenAllClosed(t *testing.T) {
	preferred := freePort(t)
	fallback := freePort(t)

	got := probePorts([]int{preferred, fallback}, 100*time.Millisecond)
	want := fmt.Sprintf("http://127.0.0.1:%d", fallback)
	if got != want {
		t.Fatalf("expected fallback %q, got %q", want, got)
	}
}

func TestProbeSelectsNonPreferredWhenOnlyItIsOpen(t *testing.T) {
	preferred := freePort(t)
	fallback := openPort(t)

	got := probePorts([]int{preferred, fallback}, 100*time.Millisecond)
	want := fmt.Sprintf("http://127.0.0.1:%d", fallback)
	if got != want {
		t.Fatalf("expected open port %q, got %q", want, got)
	}
}

func TestProbePrefersFirstWhenBothOpen(t *testing.T) {
	preferred := openPort(t)
	fallback := openPort(t)

	got := probePorts([]int{preferred, fallback}, 100*time.Millisecond)
	want := fmt.Sprintf("http://127.0.0.1:%d", preferred)
	if got != want {
		t.Fatalf("expected preferred port %q, got %q", want, got)
	}
}
