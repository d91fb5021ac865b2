// Package backend talks to the Incognide studio backend over HTTP.
//
// Every call returns a decoded JSON value, never a Go error: failures are
// folded into a {"success":false,"error":...} object so that tool callers
// always receive a uniform, parseable result.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/NPC-Worldwide/incognide/internal/config"
)

const (
	actionPath  = "/api/studio/action"
	windowsPath = "/api/studio/windows"
)

// Client issues studio action calls against a single backend base URL.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	actionTimeout  time.Duration
	windowsTimeout time.Duration
}

// NewClient creates a Client for the given base URL.
func NewClient(baseURL string, cfg *config.Config) *Client {
	return &Client{
		baseURL:        baseURL,
		httpClient:     &http.Client{},
		actionTimeout:  cfg.ActionTimeout(),
		windowsTimeout: cfg.WindowsTimeout(),
	}
}

// BaseURL returns the resolved backend base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Failure builds the structured error envelope returned for any failed call.
func Failure(format string, a ...any) map[string]any {
	return map[string]any{
		"success": false,
		"error":   fmt.Sprintf(format, a...),
	}
}

// CallAction posts a studio action to the backend and returns its JSON
// response verbatim. windowID, when non-empty, targets a specific window;
// empty means broadcast/default. No retries are performed.
func (c *Client) CallAction(ctx context.Context, action string, args map[string]any, windowID string) any {
	if args == nil {
		args = map[string]any{}
	}
	payload := map[string]any{
		"action": action,
		"args":   args,
	}
	if windowID != "" {
		payload["window_id"] = windowID
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return Failure("Error: %v", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.actionTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+actionPath, bytes.NewReader(body))
	if err != nil {
		return Failure("Error: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Failure("Connection error: %v", err)
	}
	defer resp.Body.Close()

	return decodeResponse(resp)
}

// ListWindows fetches the connected window descriptors.
func (c *Client) ListWindows(ctx context.Context) any {
	ctx, cancel := context.WithTimeout(ctx, c.windowsTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+windowsPath, nil)
	if err != nil {
		return Failure("Error: %v", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Failure("Connection error: %v", err)
	}
	defer resp.Body.Close()

	return decodeResponse(resp)
}

func decodeResponse(resp *http.Response) any {
	if resp.StatusCode != http.StatusOK {
		text, _ := io.ReadAll(resp.Body)
		return Failure("HTTP %d: %s", resp.StatusCode, string(text))
	}

	var result any
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return Failure("Error: %v", err)
	}
	return result
}
