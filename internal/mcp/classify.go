package mcp

// SimpleCall is the simplified tool-call request shape.
type SimpleCall struct {
	Tool    string         `json:"tool"`
	Params  map[string]any `json:"params"`
	Context map[string]any `json:"context,omitempty"`
}

// RPCEnvelope is an inbound JSON-RPC 2.0 request. Payload retains the full
// raw object so forwarding passes it through untouched.
type RPCEnvelope struct {
	ID      any
	Method  string
	Params  map[string]any
	Payload map[string]any
}

// Request is the tagged union produced by Classify. Exactly one of RPC and
// Simple is set; downstream code never re-inspects the raw payload.
type Request struct {
	RPC    *RPCEnvelope
	Simple *SimpleCall
}

// Classify decides the request shape once at the boundary. An object
// carrying both "jsonrpc" and "method" keys takes the JSON-RPC path;
// anything else must validate as a simple tool call.
func Classify(payload map[string]any) (Request, error) {
	_, hasVersion := payload["jsonrpc"]
	_, hasMethod := payload["method"]
	if hasVersion && hasMethod {
		env := &RPCEnvelope{Payload: payload}
		env.ID = payload["id"]
		env.Method, _ = payload["method"].(string)
		if params, ok := payload["params"].(map[string]any); ok {
			env.Params = params
		}
		return Request{RPC: env}, nil
	}

	call := &SimpleCall{Params: map[string]any{}}
	tool, ok := payload["tool"].(string)
	if !ok || tool == "" {
		return Request{}, NewKind("mcp.classify", ErrBadPayload, "missing or invalid 'tool'")
	}
	call.Tool = tool

	if raw, present := payload["params"]; present && raw != nil {
		params, ok := raw.(map[string]any)
		if !ok {
			return Request{}, NewKind("mcp.classify", ErrBadPayload, "'params' must be an object")
		}
		call.Params = params
	}
	if raw, present := payload["context"]; present && raw != nil {
		ctx, ok := raw.(map[string]any)
		if !ok {
			return Request{}, NewKind("mcp.classify", ErrBadPayload, "'context' must be an object")
		}
		call.Context = ctx
	}
	return Request{Simple: call}, nil
}
