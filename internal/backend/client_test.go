package backend

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/NPC-Worldwide/incognide/internal/config"
)

// decodeBody reads a captured action request body.
func decodeBody(t *testing.T, r *http.Request) map[string]any {
	t.Helper()
	data, err := io.ReadAll(r.Body)
	if err != nil {
		t.Fatalf("read request body: %v", err)
	}
	var payload map[string]any
	if err := json.Unmarshal(data, &payload); err != nil {
		t.Fatalf("request body is not JSON: %v", err)
	}
	return payload
}

// asFailure asserts the structured error envelope and returns its message.
func asFailure(t *testing.T, v any) string {
	t.Helper()
	m, ok := v.(map[string]any)
	if !ok {
		t.Fatalf("expected failure map, got %T", v)
	}
	if success, _ := m["success"].(bool); success {
		t.Fatalf("expected success=false, got %v", m)
	}
	msg, ok := m["error"].(string)
	if !ok {
		t.Fatalf("missing error string in %v", m)
	}
	return msg
}

func TestCallActionPassthrough(t *testing.T) {
	var captured map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/studio/action" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		captured = decodeBody(t, r)
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"success":true,"paneId":"p42"}`)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, config.Default())
	result := client.CallAction(context.Background(), "open_pane", map[string]any{"type": "browser"}, "")

	m, ok := result.(map[string]any)
	if !ok {
		t.Fatalf("expected map result, got %T", result)
	}
	if m["paneId"] != "p42" {
		t.Fatalf("backend response not passed through: %v", m)
	}

	if captured["action"] != "open_pane" {
		t.Fatalf("wrong action in payload: %v", captured)
	}
	args, _ := captured["args"].(map[string]any)
	if args["type"] != "browser" {
		t.Fatalf("wrong args in payload: %v", captured)
	}
	if _, present := captured["window_id"]; present {
		t.Fatalf("window_id should be omitted when empty: %v", captured)
	}
}

func TestCallActionWindowID(t *testing.T) {
	var captured map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = decodeBody(t, r)
		io.WriteString(w, `{}`)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, config.Default())
	client.CallAction(context.Background(), "notify", nil, "W9")

	if captured["window_id"] != "W9" {
		t.Fatalf("expected window_id=W9, got %v", captured)
	}
}

func TestCallActionNilArgsBecomeEmptyObject(t *testing.T) {
	var captured map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = decodeBody(t, r)
		io.WriteString(w, `{}`)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, config.Default())
	client.CallAction(context.Background(), "list_panes", nil, "")

	args, ok := captured["args"].(map[string]any)
	if !ok || args == nil {
		t.Fatalf("args should be an empty object, got %v", captured["args"])
	}
}

func TestCallActionHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, "not found")
	}))
	defer srv.Close()

	client := NewClient(srv.URL, config.Default())
	result := client.CallAction(context.Background(), "nope", nil, "")

	if msg := asFailure(t, result); msg != "HTTP 404: not found" {
		t.Fatalf("unexpected error message: %q", msg)
	}
}

func TestCallActionConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing is listening anymore

	client := NewClient(srv.URL, config.Default())
	result := client.CallAction(context.Background(), "notify", nil, "")

	msg := asFailure(t, result)
	if !strings.HasPrefix(msg, "Connection error: ") {
		t.Fatalf("expected connection error, got %q", msg)
	}
}

func TestCallActionTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release // accept the connection but never respond
	}))
	defer func() {
		close(release)
		srv.Close()
	}()

	cfg := config.Default()
	cfg.Backend.ActionTimeoutMs = 50

	client := NewClient(srv.URL, cfg)
	start := time.Now()
	result := client.CallAction(context.Background(), "notify", nil, "")

	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Fatalf("call did not respect timeout, took %v", elapsed)
	}
	msg := asFailure(t, result)
	if !strings.HasPrefix(msg, "Connection error: ") {
		t.Fatalf("expected connection error on timeout, got %q", msg)
	}
}

func TestCallActionMalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "this is not json")
	}))
	defer srv.Close()

	client := NewClient(srv.URL, config.Default())
	result := client.CallAction(context.Background(), "notify", nil, "")

	msg := asFailure(t, result)
	if !strings.HasPrefix(msg, "Error: ") {
		t.Fatalf("expected generic error, got %q", msg)
	}
}

func TestListWindows(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/api/studio/windows" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		io.WriteString(w, `[{"id":"W1","folder":"/tmp/proj","title":"proj"}]`)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, config.Default())
	result := client.ListWindows(context.Background())

	windows, ok := result.([]any)
	if !ok || len(windows) != 1 {
		t.Fatalf("expected one window descriptor, got %v", result)
	}
	first, _ := windows[0].(map[string]any)
	if first["id"] != "W1" {
		t.Fatalf("unexpected window descriptor: %v", first)
	}
}

func TestListWindowsUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := NewClient(srv.URL, config.Default())
	asFailure(t, client.ListWindows(context.Background()))
}
