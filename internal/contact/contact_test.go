package contact_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/smartystreets/goconvey/convey"

	"github.com/kane/portfolio-api/internal/contact"
)

func TestNotifier_Submit(t *testing.T) {
	convey.Convey("Given a notifier without a webhook", t, func() {
		notifier := contact.New()

		convey.Convey("When a message is submitted", func() {
			ticket := notifier.Submit(context.Background(), contact.Message{
				Name: "Ada", Email: "ada@example.com", Message: "Hi",
			})

			convey.Convey("Then a ticket id is still issued", func() {
				convey.So(strings.HasPrefix(ticket, "ticket_"), convey.ShouldBeTrue)
			})
		})
	})

	convey.Convey("Given a notifier with a working webhook", t, func() {
		var received map[string]any
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewDecoder(r.Body).Decode(&received)
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		notifier := contact.New(contact.WithWebhook(srv.URL))

		convey.Convey("When a message is submitted", func() {
			msg := contact.Message{Name: "Ada", Email: "ada@example.com", Message: "Hi", IP: "10.0.0.1"}
			ticket := notifier.Submit(context.Background(), msg)

			convey.Convey("Then the webhook sees the message and the ticket id", func() {
				convey.So(received["ticket_id"], convey.ShouldEqual, ticket)
				convey.So(received["name"], convey.ShouldEqual, "Ada")
				convey.So(received["email"], convey.ShouldEqual, "ada@example.com")
				convey.So(received["message"], convey.ShouldEqual, "Hi")
				convey.So(received["ip"], convey.ShouldEqual, "10.0.0.1")
			})
		})
	})

	convey.Convey("Given a webhook that replies with an error status", t, func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		notifier := contact.New(contact.WithWebhook(srv.URL))

		convey.Convey("When a message is submitted", func() {
			ticket := notifier.Submit(context.Background(), contact.Message{
				Name: "Ada", Email: "ada@example.com", Message: "Hi",
			})

			convey.Convey("Then delivery failure never reaches the caller", func() {
				convey.So(strings.HasPrefix(ticket, "ticket_"), convey.ShouldBeTrue)
			})
		})
	})

	convey.Convey("Given a webhook that is unreachable", t, func() {
		notifier := contact.New(contact.WithWebhook("http://127.0.0.1:1/hook"))

		convey.Convey("When a message is submitted", func() {
			ticket := notifier.Submit(context.Background(), contact.Message{
				Name: "Ada", Email: "ada@example.com", Message: "Hi",
			})

			convey.Convey("Then the ticket id is issued regardless", func() {
				convey.So(strings.HasPrefix(ticket, "ticket_"), convey.ShouldBeTrue)
			})
		})
	})
}
