package api_test

import (
	"net/http"
	"testing"

	"github.com/smartystreets/goconvey/convey"

	"github.com/kane/portfolio-api/internal/config"
)

func TestAuth(t *testing.T) {
	convey.Convey("Given the wired API", t, func() {
		h := newTestHandler(t, nil)

		convey.Convey("When a protected path is hit without a key", func() {
			w := do(h, http.MethodGet, "/v1/about", "")
			errObj := errorOf(t, w)

			convey.Convey("Then 401 with the uniform envelope", func() {
				convey.So(w.Code, convey.ShouldEqual, http.StatusUnauthorized)
				convey.So(errObj["code"], convey.ShouldEqual, "ERR_AUTH")
				convey.So(errObj["message"], convey.ShouldEqual, "Invalid or missing API key.")
				convey.So(errObj["correlation_id"], convey.ShouldNotBeEmpty)
			})
		})

		convey.Convey("When the key is wrong", func() {
			w := do(h, http.MethodGet, "/v1/about", "", func(r *http.Request) {
				r.Header.Set("x-api-key", "wrong")
			})
			convey.So(w.Code, convey.ShouldEqual, http.StatusUnauthorized)
		})

		convey.Convey("When open paths are hit without a key", func() {
			for _, path := range []string{"/healthz", "/metrics"} {
				w := do(h, http.MethodGet, path, "")
				convey.So(w.Code, convey.ShouldEqual, http.StatusOK)
			}
		})
	})
}

func TestCorrelation(t *testing.T) {
	convey.Convey("Given the wired API", t, func() {
		h := newTestHandler(t, nil)

		convey.Convey("When the client supplies a correlation id", func() {
			w := do(h, http.MethodGet, "/v1/about", "", withKey, func(r *http.Request) {
				r.Header.Set("x-correlation-id", "my-trace-token")
			})

			convey.Convey("Then the same id is echoed on the response", func() {
				convey.So(w.Header().Get("x-correlation-id"), convey.ShouldEqual, "my-trace-token")
			})
		})

		convey.Convey("When the client supplies none", func() {
			w := do(h, http.MethodGet, "/v1/about", "", withKey)

			convey.Convey("Then a fresh id is minted", func() {
				convey.So(w.Header().Get("x-correlation-id"), convey.ShouldNotBeEmpty)
			})
		})

		convey.Convey("When an error response is rendered", func() {
			w := do(h, http.MethodGet, "/v1/work/ghost", "", withKey, func(r *http.Request) {
				r.Header.Set("x-correlation-id", "err-trace")
			})

			convey.Convey("Then the envelope carries the request's id", func() {
				convey.So(errorOf(t, w)["correlation_id"], convey.ShouldEqual, "err-trace")
			})
		})
	})
}

func TestRateLimit(t *testing.T) {
	convey.Convey("Given an API limited to two requests per minute", t, func() {
		h := newTestHandler(t, func(cfg *config.Config) {
			cfg.RateLimitPerMinute = 2
		})

		convey.Convey("When a client sends three requests", func() {
			do(h, http.MethodGet, "/v1/about", "", withKey)
			do(h, http.MethodGet, "/v1/about", "", withKey)
			w := do(h, http.MethodGet, "/v1/about", "", withKey)

			convey.Convey("Then the third is rejected with Retry-After", func() {
				convey.So(w.Code, convey.ShouldEqual, http.StatusTooManyRequests)
				convey.So(errorOf(t, w)["code"], convey.ShouldEqual, "ERR_RATE_LIMIT")
				convey.So(w.Header().Get("Retry-After"), convey.ShouldNotBeEmpty)
			})
		})
	})
}

func TestCORS(t *testing.T) {
	convey.Convey("Given the wired API", t, func() {
		h := newTestHandler(t, nil)

		convey.Convey("When a preflight request arrives", func() {
			w := do(h, http.MethodOptions, "/v1/chat/ask", "",
				withOrigin("https://watcharapon.dev"))

			convey.Convey("Then it is answered without auth", func() {
				convey.So(w.Code, convey.ShouldEqual, http.StatusNoContent)
				convey.So(w.Header().Get("Access-Control-Allow-Origin"),
					convey.ShouldEqual, "https://watcharapon.dev")
			})
		})

		convey.Convey("When a cross-origin POST hits an allow-listed path", func() {
			w := do(h, http.MethodPost, "/v1/chat/ask",
				`{"question":"hi"}`, withKey, withOrigin("https://watcharapon.dev"))

			convey.Convey("Then it goes through to the handler", func() {
				convey.So(w.Code, convey.ShouldEqual, http.StatusOK)
			})
		})

		convey.Convey("When a cross-origin POST hits any other path", func() {
			w := do(h, http.MethodPost, "/v1/availability/hold",
				`{"start":"2024-10-19T10:00:00+07:00","end":"2024-10-19T11:00:00+07:00"}`,
				withKey, withOrigin("https://watcharapon.dev"))

			convey.Convey("Then it is rejected with 405", func() {
				convey.So(w.Code, convey.ShouldEqual, http.StatusMethodNotAllowed)
				convey.So(errorOf(t, w)["code"], convey.ShouldEqual, "ERR_BAD_REQUEST")
			})
		})

		convey.Convey("When the origin is not allow-listed", func() {
			w := do(h, http.MethodGet, "/v1/about", "", withKey,
				withOrigin("https://evil.example"))

			convey.Convey("Then the first configured origin is advertised", func() {
				convey.So(w.Header().Get("Access-Control-Allow-Origin"),
					convey.ShouldEqual, "https://watcharapon.dev")
			})
		})

		convey.Convey("When a same-origin POST has no Origin header", func() {
			w := do(h, http.MethodPost, "/v1/availability/hold",
				`{"start":"2024-10-19T10:00:00+07:00","end":"2024-10-19T11:00:00+07:00"}`,
				withKey)

			convey.Convey("Then no CORS restriction applies", func() {
				convey.So(w.Code, convey.ShouldEqual, http.StatusOK)
			})
		})
	})
}
