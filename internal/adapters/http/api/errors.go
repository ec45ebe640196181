package api

// Error codes of the REST surface. The MCP adapter translates the same
// vocabulary onto JSON-RPC numeric codes for the JSON-RPC path.
const (
	CodeBadRequest = "ERR_BAD_REQUEST"
	CodeAuth       = "ERR_AUTH"
	CodeNotFound   = "ERR_NOT_FOUND"
	CodeRateLimit  = "ERR_RATE_LIMIT"
	CodeUpstream   = "ERR_UPSTREAM"
	CodeInternal   = "ERR_INTERNAL"
)
