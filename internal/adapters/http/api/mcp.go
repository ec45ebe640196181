package api

import (
	"encoding/json"
	"net/http"

	"github.com/kane/portfolio-api/internal/mcp"
)

// MCPDependencies defines the interface for the MCP endpoint.
type MCPDependencies interface {
	MCP() *mcp.Adapter
}

// MCPHandler serves POST /v1/mcp/execute, accepting either the simplified
// tool-call shape or a JSON-RPC 2.0 envelope.
type MCPHandler struct {
	deps MCPDependencies
}

// NewMCPHandler creates a new MCP handler.
func NewMCPHandler(deps MCPDependencies) *MCPHandler {
	return &MCPHandler{deps: deps}
}

// mcpResponse is the simple-path response shape.
type mcpResponse struct {
	Forwarded bool           `json:"forwarded"`
	Result    any            `json:"result"`
	Meta      map[string]any `json:"meta"`
}

// HandleExecute handles POST /v1/mcp/execute requests. The request shape is
// classified exactly once; each path translates outcomes into its own error
// vocabulary (ERR_* for the simple shape, numeric codes for JSON-RPC).
func (h *MCPHandler) HandleExecute(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	var payload map[string]any
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload == nil {
		writeError(w, r, http.StatusUnprocessableEntity, CodeBadRequest, "Invalid MCP payload.")
		return
	}

	correlationID := CorrelationID(r.Context())
	adapter := h.deps.MCP()

	req, err := mcp.Classify(payload)
	if err != nil {
		writeError(w, r, http.StatusUnprocessableEntity, CodeBadRequest, "Invalid MCP payload.")
		return
	}

	if req.RPC != nil {
		resp, forwarded, err := adapter.ExecuteRPC(r.Context(), req.RPC, correlationID)
		if err != nil {
			// Forwarding failures surface as an explicit JSON-RPC error,
			// not an HTTP-level one.
			writeJSON(w, http.StatusOK, mcp.RPCUpstreamError(req.RPC.ID, err.Error(), correlationID))
			return
		}
		if forwarded {
			writeJSON(w, http.StatusOK, mcp.NormalizeForwarded(req.RPC.ID, resp))
			return
		}
		adapter.DecorateLocal(resp, correlationID)
		writeJSON(w, http.StatusOK, resp)
		return
	}

	result, forwarded, err := adapter.ExecuteSimple(r.Context(), req.Simple, correlationID)
	if err != nil {
		writeError(w, r, http.StatusBadGateway, CodeUpstream, "Upstream error.")
		return
	}
	if result == nil {
		result = map[string]any{}
	}
	writeJSON(w, http.StatusOK, mcpResponse{
		Forwarded: forwarded,
		Result:    result,
		Meta: map[string]any{
			"webhook_configured": adapter.WebhookConfigured(),
			"correlation_id":     correlationID,
		},
	})
}
