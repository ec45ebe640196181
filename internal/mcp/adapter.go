// Package mcp normalizes tool-invocation requests arriving in either a
// simplified tool-call shape or a JSON-RPC 2.0 envelope, forwards them to an
// external webhook when one is configured, and otherwise dispatches to a
// fixed table of local tools backed by the in-process services.
package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/kane/portfolio-api/pkg/logger"
	"github.com/kane/portfolio-api/pkg/metrics"
)

// defaultProtocolVersion is returned by initialize when the client does not
// announce one.
const defaultProtocolVersion = "2025-03-26"

// Adapter holds the dispatch table and forwarding configuration. It keeps no
// state across calls.
type Adapter struct {
	tools         map[string]Tool
	manifestPath  string
	webhook       string
	client        *http.Client
	serverName    string
	serverVersion string
	log           logger.Logger
}

// Option applies a configuration option to the Adapter.
type Option func(*Adapter)

// WithWebhook sets the forwarding target. Empty selects local mode.
func WithWebhook(url string) Option {
	return func(a *Adapter) { a.webhook = url }
}

// WithTimeout bounds forwarding calls.
func WithTimeout(d time.Duration) Option {
	return func(a *Adapter) {
		if d > 0 {
			a.client.Timeout = d
		}
	}
}

// WithManifestPath points at the tool manifest document.
func WithManifestPath(path string) Option {
	return func(a *Adapter) { a.manifestPath = path }
}

// WithServerInfo sets the identity announced by initialize.
func WithServerInfo(name, version string) Option {
	return func(a *Adapter) {
		a.serverName = name
		a.serverVersion = version
	}
}

// WithLogger sets the logger.
func WithLogger(log logger.Logger) Option {
	return func(a *Adapter) {
		if log != nil {
			a.log = log
		}
	}
}

// New creates an Adapter with its dispatch table built against deps.
func New(deps Dependencies, opts ...Option) *Adapter {
	a := &Adapter{
		tools:         buildTools(deps),
		manifestPath:  "mcp.tools.json",
		client:        &http.Client{Timeout: 15 * time.Second},
		serverName:    "Portfolio MCP",
		serverVersion: "0.0.0",
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// WebhookConfigured reports whether a forwarding target is set.
func (a *Adapter) WebhookConfigured() bool { return a.webhook != "" }

// ExecuteSimple handles the simplified shape. Without a webhook the payload
// is echoed back; otherwise it is forwarded with the correlation id injected.
// The returned error marks a forwarding failure the caller reports as
// ERR_UPSTREAM.
func (a *Adapter) ExecuteSimple(ctx context.Context, call *SimpleCall, correlationID string) (result any, forwarded bool, err error) {
	callContext := call.Context
	if callContext == nil {
		callContext = map[string]any{}
	}
	payload := map[string]any{
		"tool":           call.Tool,
		"params":         call.Params,
		"context":        callContext,
		"correlation_id": correlationID,
	}

	if !a.WebhookConfigured() {
		return map[string]any{"echo": payload}, false, nil
	}

	body, err := a.post(ctx, payload)
	if err != nil {
		return nil, true, err
	}
	var parsed any
	if jsonErr := json.Unmarshal(body, &parsed); jsonErr != nil {
		// Simple-path upstreams may reply with plain text.
		return map[string]any{"text": string(body)}, true, nil
	}
	return parsed, true, nil
}

// ExecuteRPC handles a JSON-RPC envelope. Without a webhook the adapter
// serves the minimal MCP lifecycle locally; otherwise the raw payload is
// passed through with the correlation id injected. The returned error marks
// a forwarding failure the caller wraps as a -32000 JSON-RPC error.
func (a *Adapter) ExecuteRPC(ctx context.Context, env *RPCEnvelope, correlationID string) (resp map[string]any, forwarded bool, err error) {
	if !a.WebhookConfigured() {
		return a.serveLocal(ctx, env), false, nil
	}

	payload := make(map[string]any, len(env.Payload)+1)
	for k, v := range env.Payload {
		payload[k] = v
	}
	payload["correlation_id"] = correlationID

	body, err := a.post(ctx, payload)
	if err != nil {
		return nil, true, err
	}
	var parsed map[string]any
	if jsonErr := json.Unmarshal(body, &parsed); jsonErr != nil {
		// Non-JSON bodies are not expected on the JSON-RPC path; treat
		// them as a transport failure for this response.
		return nil, true, NewKind("mcp.forward", ErrForward, "non-JSON response from upstream")
	}
	return parsed, true, nil
}

// serveLocal answers the minimal MCP lifecycle without any upstream.
func (a *Adapter) serveLocal(ctx context.Context, env *RPCEnvelope) map[string]any {
	switch env.Method {
	case "initialize":
		version := defaultProtocolVersion
		if v, ok := env.Params["protocolVersion"].(string); ok && v != "" {
			version = v
		}
		return rpcResult(env.ID, map[string]any{
			"protocolVersion": version,
			"capabilities":    map[string]any{"tools": map[string]any{}},
			"serverInfo":      map[string]any{"name": a.serverName, "version": a.serverVersion},
		})

	case "tools/list":
		return rpcResult(env.ID, map[string]any{"tools": loadManifest(a.manifestPath)})

	case "tools/call":
		name, _ := env.Params["name"].(string)
		args, _ := env.Params["arguments"].(map[string]any)
		if args == nil {
			args = map[string]any{}
		}
		result, terr := a.callTool(ctx, name, args)
		if terr != nil {
			metrics.RecordToolCall(name, "error")
			return rpcError(env.ID, rpcCode(terr.Code), terr.Message)
		}
		metrics.RecordToolCall(name, "ok")
		return rpcResult(env.ID, textContentResult(result))

	case "shutdown":
		return rpcResult(env.ID, true)

	default:
		return rpcError(env.ID, rpcMethodNotFound, "Method not found")
	}
}

// post forwards payload to the webhook with a bounded timeout. At most one
// attempt is made; failures are never retried.
func (a *Adapter) post(ctx context.Context, payload map[string]any) ([]byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, Wrap("mcp.forward", ErrForward, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.webhook, bytes.NewReader(raw))
	if err != nil {
		return nil, Wrap("mcp.forward", ErrForward, err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := a.client.Do(req)
	metrics.RecordForwardLatency(float64(time.Since(start).Milliseconds()))
	if err != nil {
		metrics.RecordForwardAttempt("mcp", "error")
		if a.log != nil {
			a.log.Warn(ctx, "mcp forwarding failed", logger.Error(err))
		}
		return nil, Wrap("mcp.forward", ErrForward, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.RecordForwardAttempt("mcp", "error")
		return nil, Wrap("mcp.forward", ErrForward, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.RecordForwardAttempt("mcp", "error")
		return nil, NewKind("mcp.forward", ErrForward, resp.Status)
	}
	metrics.RecordForwardAttempt("mcp", "ok")
	return body, nil
}
