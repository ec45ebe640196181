package mcp_test

import (
	"testing"

	"github.com/smartystreets/goconvey/convey"

	"github.com/kane/portfolio-api/internal/mcp"
)

func TestClassify(t *testing.T) {
	convey.Convey("Given a JSON-RPC payload", t, func() {
		payload := map[string]any{
			"jsonrpc": "2.0",
			"id":      float64(7),
			"method":  "tools/call",
			"params":  map[string]any{"name": "get_about"},
		}

		req, err := mcp.Classify(payload)

		convey.Convey("Then the JSON-RPC path is taken", func() {
			convey.So(err, convey.ShouldBeNil)
			convey.So(req.RPC, convey.ShouldNotBeNil)
			convey.So(req.Simple, convey.ShouldBeNil)
			convey.So(req.RPC.ID, convey.ShouldEqual, float64(7))
			convey.So(req.RPC.Method, convey.ShouldEqual, "tools/call")
			convey.So(req.RPC.Params["name"], convey.ShouldEqual, "get_about")
		})

		convey.Convey("Then the raw payload is retained for forwarding", func() {
			convey.So(req.RPC.Payload, convey.ShouldResemble, payload)
		})
	})

	convey.Convey("Given a simple tool-call payload", t, func() {
		req, err := mcp.Classify(map[string]any{
			"tool":    "get_work",
			"params":  map[string]any{"slug": "demo"},
			"context": map[string]any{"audience": "engineer"},
		})

		convey.Convey("Then the simple path is taken", func() {
			convey.So(err, convey.ShouldBeNil)
			convey.So(req.Simple, convey.ShouldNotBeNil)
			convey.So(req.RPC, convey.ShouldBeNil)
			convey.So(req.Simple.Tool, convey.ShouldEqual, "get_work")
			convey.So(req.Simple.Params["slug"], convey.ShouldEqual, "demo")
			convey.So(req.Simple.Context["audience"], convey.ShouldEqual, "engineer")
		})
	})

	convey.Convey("Given a simple payload without params", t, func() {
		req, err := mcp.Classify(map[string]any{"tool": "get_about"})

		convey.Convey("Then params default to an empty object", func() {
			convey.So(err, convey.ShouldBeNil)
			convey.So(req.Simple.Params, convey.ShouldNotBeNil)
			convey.So(req.Simple.Params, convey.ShouldBeEmpty)
		})
	})

	convey.Convey("Given invalid payloads", t, func() {
		cases := []map[string]any{
			{},                                      // nothing at all
			{"tool": ""},                            // empty tool
			{"tool": 42},                            // non-string tool
			{"tool": "x", "params": "not-an-object"},
			{"tool": "x", "context": []any{"nope"}},
			{"jsonrpc": "2.0"},                      // version without method falls to simple
		}

		convey.Convey("Then each is rejected as a bad payload", func() {
			for _, payload := range cases {
				_, err := mcp.Classify(payload)
				convey.So(err, convey.ShouldWrap, mcp.ErrBadPayload)
			}
		})
	})

	convey.Convey("Given a method without a jsonrpc version", t, func() {
		_, err := mcp.Classify(map[string]any{"method": "tools/list"})

		convey.Convey("Then it falls through to simple validation and fails", func() {
			convey.So(err, convey.ShouldWrap, mcp.ErrBadPayload)
		})
	})
}
