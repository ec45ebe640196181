package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/smartystreets/goconvey/convey"

	"github.com/kane/portfolio-api/internal/config"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New()

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
			convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
			convey.So(cfg.Environment, convey.ShouldEqual, "development")
			convey.So(cfg.RateLimitPerMinute, convey.ShouldEqual, 60)
			convey.So(cfg.ContactTimeoutSeconds, convey.ShouldEqual, 10)
			convey.So(cfg.MCPTimeoutSeconds, convey.ShouldEqual, 15)
			convey.So(cfg.MaxWorkLimit, convey.ShouldEqual, 20)
			convey.So(cfg.ManifestPath, convey.ShouldEqual, "mcp.tools.json")
			convey.So(cfg.ContentDir, convey.ShouldEqual, "data/content/work")
		})
	})
}

func TestConfig_Load(t *testing.T) {
	convey.Convey("Given no overrides", t, func() {
		cfg, err := config.Load(context.Background())

		convey.Convey("Then loading yields the defaults", func() {
			convey.So(err, convey.ShouldBeNil)
			convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
		})
	})

	convey.Convey("Given environment overrides", t, func() {
		t.Setenv("PORTFOLIO_ADDR", ":9999")
		t.Setenv("PORTFOLIO_API_KEY", "secret")
		t.Setenv("PORTFOLIO_MCP_WEBHOOK", "https://hooks.example.com/mcp")

		cfg, err := config.Load(context.Background())

		convey.Convey("Then env values win over defaults", func() {
			convey.So(err, convey.ShouldBeNil)
			convey.So(cfg.Addr, convey.ShouldEqual, ":9999")
			convey.So(cfg.APIKey, convey.ShouldEqual, "secret")
			convey.So(cfg.MCPWebhook, convey.ShouldEqual, "https://hooks.example.com/mcp")
		})
	})

	convey.Convey("Given a YAML config file", t, func() {
		os.Unsetenv("PORTFOLIO_ADDR")
		path := filepath.Join(t.TempDir(), "config.yaml")
		err := os.WriteFile(path, []byte("addr: \":7070\"\nlog_level: debug\n"), 0o600)
		convey.So(err, convey.ShouldBeNil)
		t.Setenv("PORTFOLIO_CONFIG", path)

		convey.Convey("Then the file layers over defaults", func() {
			cfg, err := config.Load(context.Background())
			convey.So(err, convey.ShouldBeNil)
			convey.So(cfg.Addr, convey.ShouldEqual, ":7070")
			convey.So(cfg.LogLevel, convey.ShouldEqual, "debug")
		})

		convey.Convey("Then env still wins over the file", func() {
			t.Setenv("PORTFOLIO_ADDR", ":6060")
			cfg, err := config.Load(context.Background())
			convey.So(err, convey.ShouldBeNil)
			convey.So(cfg.Addr, convey.ShouldEqual, ":6060")
		})
	})

	convey.Convey("Given an invalid rate limit", t, func() {
		t.Setenv("PORTFOLIO_RATE_LIMIT_PER_MINUTE", "0")
		_, err := config.Load(context.Background())

		convey.Convey("Then validation rejects the config", func() {
			convey.So(err, convey.ShouldWrap, config.ErrInvalidConfig)
		})
	})

	convey.Convey("Given a missing config file", t, func() {
		t.Setenv("PORTFOLIO_CONFIG", "/does/not/exist.yaml")
		_, err := config.Load(context.Background())

		convey.Convey("Then loading fails with ErrLoadConfig", func() {
			convey.So(err, convey.ShouldWrap, config.ErrLoadConfig)
		})
	})
}
