package ratelimit_test

import (
	"context"
	"testing"
	"time"

	"github.com/smartystreets/goconvey/convey"

	"github.com/kane/portfolio-api/internal/ratelimit"
)

func TestLimiter_Allow(t *testing.T) {
	convey.Convey("Given a limiter of two requests per minute", t, func() {
		// 20 seconds into a minute window.
		now := time.Unix(1_700_000_000, 0)
		limiter := ratelimit.New(
			ratelimit.WithLimit(2),
			ratelimit.WithClock(func() time.Time { return now }),
		)
		ctx := context.Background()

		convey.Convey("When a client stays within the budget", func() {
			for i := 0; i < 2; i++ {
				allowed, retryAfter := limiter.Allow(ctx, "10.0.0.1")
				convey.So(allowed, convey.ShouldBeTrue)
				convey.So(retryAfter, convey.ShouldEqual, 0)
			}
		})

		convey.Convey("When a client exceeds the budget", func() {
			limiter.Allow(ctx, "10.0.0.1")
			limiter.Allow(ctx, "10.0.0.1")
			allowed, retryAfter := limiter.Allow(ctx, "10.0.0.1")

			convey.Convey("Then the request is denied", func() {
				convey.So(allowed, convey.ShouldBeFalse)
			})

			convey.Convey("Then retry-after is the remainder of the window", func() {
				convey.So(retryAfter, convey.ShouldEqual, 40)
			})

			convey.Convey("Then other clients are unaffected", func() {
				allowed, _ := limiter.Allow(ctx, "10.0.0.2")
				convey.So(allowed, convey.ShouldBeTrue)
			})
		})

		convey.Convey("When the minute window advances", func() {
			limiter.Allow(ctx, "10.0.0.1")
			limiter.Allow(ctx, "10.0.0.1")
			limiter.Allow(ctx, "10.0.0.2")
			convey.So(limiter.Size(), convey.ShouldEqual, 2)

			now = now.Add(time.Minute)
			allowed, _ := limiter.Allow(ctx, "10.0.0.1")

			convey.Convey("Then counters reset wholesale", func() {
				convey.So(allowed, convey.ShouldBeTrue)
				convey.So(limiter.Size(), convey.ShouldEqual, 1)
			})
		})

		convey.Convey("When denial happens at the very end of a window", func() {
			now = time.Unix(1_700_000_000, 0).Truncate(time.Minute).Add(59*time.Second + 500*time.Millisecond)
			limiter.Allow(ctx, "10.0.0.9")
			limiter.Allow(ctx, "10.0.0.9")
			_, retryAfter := limiter.Allow(ctx, "10.0.0.9")

			convey.Convey("Then retry-after is clamped to at least one second", func() {
				convey.So(retryAfter, convey.ShouldBeBetweenOrEqual, 1, 60)
			})
		})
	})
}
