package logger_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/smartystreets/goconvey/convey"

	"github.com/kane/portfolio-api/pkg/logger"
)

func TestFieldConstructors(t *testing.T) {
	convey.Convey("Given the field constructors", t, func() {
		convey.So(logger.String("k", "v"), convey.ShouldResemble, logger.Field{Key: "k", Value: "v"})
		convey.So(logger.Int("n", 7), convey.ShouldResemble, logger.Field{Key: "n", Value: 7})
		convey.So(logger.Duration("d", time.Second), convey.ShouldResemble, logger.Field{Key: "d", Value: time.Second})

		err := errors.New("boom")
		convey.So(logger.Error(err), convey.ShouldResemble, logger.Field{Key: "error", Value: err})
	})
}

func TestGlobalLogger(t *testing.T) {
	convey.Convey("Given an initialized global logger", t, func() {
		convey.So(logger.Init(), convey.ShouldBeNil)

		convey.Convey("Then logging does not panic at any level", func() {
			log := logger.Get()
			ctx := context.Background()
			convey.So(func() {
				log.Debug(ctx, "debug", logger.String("k", "v"))
				log.Info(ctx, "info")
				log.Warn(ctx, "warn")
				log.Error(ctx, "error")
				log.Named("sub").Info(ctx, "named")
			}, convey.ShouldNotPanic)
		})
	})
}

func TestSetLevelString(t *testing.T) {
	convey.Convey("Given the level parser", t, func() {
		convey.So(logger.Init(), convey.ShouldBeNil)

		convey.Convey("Then known levels are accepted", func() {
			for _, level := range []string{"debug", "info", "WARN", "warning", "Error", ""} {
				convey.So(logger.SetLevelString(level), convey.ShouldBeNil)
			}
		})

		convey.Convey("Then unknown levels are rejected", func() {
			convey.So(logger.SetLevelString("verbose"), convey.ShouldNotBeNil)
		})
	})
}
