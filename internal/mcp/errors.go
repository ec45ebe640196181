package mcp

import (
	"errors"
	"fmt"
)

// Domain error codes shared with the REST surface.
const (
	CodeBadRequest = "ERR_BAD_REQUEST"
	CodeNotFound   = "ERR_NOT_FOUND"
	CodeInternal   = "ERR_INTERNAL"
)

// JSON-RPC numeric error codes.
const (
	rpcInvalidParams  = -32602
	rpcMethodNotFound = -32601
	rpcServerError    = -32000
)

// Sentinel kinds for adapter errors.
var (
	ErrBadPayload = errors.New("invalid mcp payload")
	ErrForward    = errors.New("forwarding failed")
)

// ToolError is the domain error object {code, message} returned by local
// tools. Validation failures are recoverable and reported, never fatal.
type ToolError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *ToolError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// rpcCode maps a domain error code onto the JSON-RPC vocabulary. Both
// unknown tool names and tool-internal not-found map to -32601; the
// upstream protocol conflates them and the mapping is preserved as-is.
func rpcCode(code string) int {
	switch code {
	case CodeBadRequest:
		return rpcInvalidParams
	case CodeNotFound:
		return rpcMethodNotFound
	default:
		return rpcServerError
	}
}

// NewKind creates an error of the given kind with a detail message.
func NewKind(op string, kind error, detail string) error {
	return fmt.Errorf("%s: %w: %s", op, kind, detail)
}

// Wrap annotates an external error with an operation and a sentinel kind.
func Wrap(op string, kind, err error) error {
	return fmt.Errorf("%s: %w: %w", op, kind, err)
}
