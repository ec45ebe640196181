package mcp_test

import (
	"encoding/json"
	"testing"

	"github.com/smartystreets/goconvey/convey"

	"github.com/kane/portfolio-api/internal/mcp"
)

func TestRPCUpstreamError(t *testing.T) {
	convey.Convey("Given a forwarding failure", t, func() {
		resp := mcp.RPCUpstreamError(float64(3), "connection refused", "cid-1")
		errObj := resp["error"].(map[string]any)

		convey.Convey("Then the envelope carries -32000 with the correlation id", func() {
			convey.So(resp["jsonrpc"], convey.ShouldEqual, "2.0")
			convey.So(resp["id"], convey.ShouldEqual, float64(3))
			convey.So(errObj["code"], convey.ShouldEqual, -32000)
			convey.So(errObj["message"], convey.ShouldEqual, "connection refused")
			data := errObj["data"].(map[string]any)
			convey.So(data["correlation_id"], convey.ShouldEqual, "cid-1")
		})
	})

	convey.Convey("Given an empty failure message", t, func() {
		resp := mcp.RPCUpstreamError(nil, "", "cid-2")
		errObj := resp["error"].(map[string]any)

		convey.Convey("Then a default message is substituted", func() {
			convey.So(errObj["message"], convey.ShouldEqual, "Upstream error.")
		})
	})
}

func TestNormalizeForwarded(t *testing.T) {
	convey.Convey("Given forwarded upstream bodies", t, func() {
		convey.Convey("When the body has no jsonrpc key", func() {
			out := mcp.NormalizeForwarded(float64(1), map[string]any{"status": "ok"})

			convey.Convey("Then the whole body is wrapped as a content result", func() {
				convey.So(out["jsonrpc"], convey.ShouldEqual, "2.0")
				result := out["result"].(map[string]any)
				items := result["content"].([]any)
				text := items[0].(map[string]any)["text"].(string)

				var decoded map[string]any
				convey.So(json.Unmarshal([]byte(text), &decoded), convey.ShouldBeNil)
				convey.So(decoded["status"], convey.ShouldEqual, "ok")
				convey.So(result["isError"], convey.ShouldEqual, false)
			})
		})

		convey.Convey("When the body already carries an error", func() {
			upstream := map[string]any{
				"jsonrpc": "2.0", "id": float64(1),
				"error": map[string]any{"code": float64(-32000), "message": "boom"},
			}
			out := mcp.NormalizeForwarded(float64(1), upstream)

			convey.Convey("Then it passes through untouched", func() {
				convey.So(out, convey.ShouldResemble, upstream)
			})
		})

		convey.Convey("When the result already has a content array", func() {
			upstream := map[string]any{
				"jsonrpc": "2.0", "id": float64(1),
				"result": map[string]any{"content": []any{}, "isError": false},
			}
			out := mcp.NormalizeForwarded(float64(1), upstream)

			convey.Convey("Then it passes through untouched", func() {
				convey.So(out, convey.ShouldResemble, upstream)
			})
		})

		convey.Convey("When the result lacks a content array", func() {
			out := mcp.NormalizeForwarded(float64(1), map[string]any{
				"jsonrpc": "2.0", "id": float64(1),
				"result": map[string]any{"answer": float64(42)},
			})

			convey.Convey("Then the result is re-wrapped", func() {
				result := out["result"].(map[string]any)
				items := result["content"].([]any)
				text := items[0].(map[string]any)["text"].(string)
				convey.So(text, convey.ShouldContainSubstring, `"answer":42`)
			})
		})
	})
}

func TestAdapter_DecorateLocal(t *testing.T) {
	convey.Convey("Given a local-mode adapter", t, func() {
		adapter := mcp.New(&fakeDeps{})

		convey.Convey("When the response result is an object", func() {
			resp := map[string]any{
				"jsonrpc": "2.0", "id": float64(1),
				"result": map[string]any{"protocolVersion": "2025-03-26"},
			}
			adapter.DecorateLocal(resp, "cid-7")

			convey.Convey("Then meta is injected", func() {
				meta := resp["result"].(map[string]any)["meta"].(map[string]any)
				convey.So(meta["webhook_configured"], convey.ShouldEqual, false)
				convey.So(meta["correlation_id"], convey.ShouldEqual, "cid-7")
			})
		})

		convey.Convey("When the response result is a scalar", func() {
			resp := map[string]any{"jsonrpc": "2.0", "id": float64(1), "result": true}
			adapter.DecorateLocal(resp, "cid-8")

			convey.Convey("Then the response is left as-is", func() {
				convey.So(resp["result"], convey.ShouldEqual, true)
			})
		})
	})
}
