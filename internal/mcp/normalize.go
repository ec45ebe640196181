package mcp

import "encoding/json"

// rpcResult builds a JSON-RPC success envelope.
func rpcResult(id, result any) map[string]any {
	return map[string]any{"jsonrpc": "2.0", "id": id, "result": result}
}

// rpcError builds a JSON-RPC error envelope.
func rpcError(id any, code int, message string) map[string]any {
	return map[string]any{
		"jsonrpc": "2.0",
		"id":      id,
		"error":   map[string]any{"code": code, "message": message},
	}
}

// RPCUpstreamError builds the envelope returned when forwarding itself
// fails; the correlation id rides along in the error data.
func RPCUpstreamError(id any, message, correlationID string) map[string]any {
	if message == "" {
		message = "Upstream error."
	}
	return map[string]any{
		"jsonrpc": "2.0",
		"id":      id,
		"error": map[string]any{
			"code":    rpcServerError,
			"message": message,
			"data":    map[string]any{"correlation_id": correlationID},
		},
	}
}

// textContentResult wraps a tool result as an MCP content array, the shape
// every successful tools/call response conforms to.
func textContentResult(result any) map[string]any {
	raw, err := json.Marshal(result)
	text := string(raw)
	if err != nil {
		text = "{}"
	}
	return map[string]any{
		"content": []any{map[string]any{"type": "text", "text": text}},
		"isError": false,
	}
}

// NormalizeForwarded defensively re-shapes a forwarded upstream body so the
// caller always sees either an explicit JSON-RPC error or a result carrying
// a content array. Bodies without a jsonrpc key are wrapped whole; bodies
// with a jsonrpc key, no error, and a result lacking a content array get
// their result wrapped.
func NormalizeForwarded(id any, upstream map[string]any) map[string]any {
	if _, ok := upstream["jsonrpc"]; !ok {
		return rpcResult(id, textContentResult(upstream))
	}
	if upstream["error"] != nil {
		return upstream
	}
	if result, ok := upstream["result"].(map[string]any); ok {
		if _, hasContent := result["content"]; hasContent {
			return upstream
		}
	}
	upstream["result"] = textContentResult(upstream["result"])
	return upstream
}

// DecorateLocal appends forwarding metadata to a local-mode response whose
// result is a JSON object.
func (a *Adapter) DecorateLocal(resp map[string]any, correlationID string) {
	result, ok := resp["result"].(map[string]any)
	if !ok {
		return
	}
	meta, ok := result["meta"].(map[string]any)
	if !ok {
		meta = map[string]any{}
		result["meta"] = meta
	}
	meta["webhook_configured"] = a.WebhookConfigured()
	meta["correlation_id"] = correlationID
}
