package chat_test

import (
	"testing"

	"github.com/smartystreets/goconvey/convey"

	"github.com/kane/portfolio-api/internal/chat"
	"github.com/kane/portfolio-api/internal/content"
)

const chatSeed = `{
  "about": {
    "headline": "Platform engineer",
    "summary": "Builds satellite tooling and booking automations"
  },
  "pillars": [
    {"id": "pillar-ai", "title": "Applied AI", "bullets": ["LLM assistants", "RAG pipelines"]}
  ],
  "work": [
    {"slug": "satellite-ops", "title": "Satellite Ops Assistant", "summary": "Chat assistant for satellite operators"},
    {"slug": "booking-bot", "title": "Booking Bot", "summary": "Automated meeting scheduling"}
  ],
  "skills": [
    {"id": "skill-backend", "title": "Backend", "items": [{"name": "Go", "level": 5}, {"name": "Python", "level": 4}]}
  ],
  "faq": [
    {"id": "faq-remote", "question": "Remote?", "answer": "Remote friendly across time zones"}
  ],
  "availability": {"time_zone": "UTC", "free": []}
}`

func testResponder(t *testing.T) *chat.Responder {
	t.Helper()
	store, err := content.New(content.WithSeed([]byte(chatSeed)))
	if err != nil {
		t.Fatalf("loading seed: %v", err)
	}
	return chat.NewResponder(store)
}

func TestResponder_Answer(t *testing.T) {
	convey.Convey("Given a responder over a known corpus", t, func() {
		responder := testResponder(t)

		convey.Convey("Then the corpus covers every content section", func() {
			convey.So(responder.CorpusSize(), convey.ShouldEqual, 6)
		})

		convey.Convey("When a token matches multiple entries", func() {
			resp := responder.Answer("tell me about satellite work", chat.AudienceEngineer)

			convey.Convey("Then sources come back in corpus order", func() {
				convey.So(resp.Sources, convey.ShouldResemble, []string{"about", "satellite-ops", "booking-bot"})
			})

			convey.Convey("Then one chat event is emitted", func() {
				convey.So(resp.Events, convey.ShouldHaveLength, 1)
				convey.So(resp.Events[0].Type, convey.ShouldEqual, "chat")
				convey.So(resp.Events[0].Audience, convey.ShouldEqual, chat.AudienceEngineer)
				convey.So(resp.Events[0].Intent, convey.ShouldEqual, "portfolio_query")
				convey.So(resp.Events[0].Sources, convey.ShouldResemble, resp.Sources)
			})
		})

		convey.Convey("When matching is case-insensitive", func() {
			resp := responder.Answer("SATELLITE", chat.AudienceGeneral)
			convey.So(resp.Sources, convey.ShouldContain, "satellite-ops")
		})

		convey.Convey("When nothing matches", func() {
			resp := responder.Answer("zzzqqq", chat.AudienceGeneral)

			convey.Convey("Then the first three corpus entries answer", func() {
				convey.So(resp.Sources, convey.ShouldResemble, []string{"about", "pillar-ai", "satellite-ops"})
				convey.So(resp.Answer, convey.ShouldNotBeEmpty)
			})
		})

		convey.Convey("When the same question is asked twice", func() {
			first := responder.Answer("booking", chat.AudienceRecruiter)
			second := responder.Answer("booking", chat.AudienceRecruiter)

			convey.Convey("Then the answer is deterministic", func() {
				convey.So(first, convey.ShouldResemble, second)
			})
		})

		convey.Convey("Then suggestions are constant", func() {
			resp := responder.Answer("anything", chat.AudienceGeneral)
			convey.So(resp.Suggestions, convey.ShouldResemble,
				[]string{"See availability", "View case studies", "Send a contact message"})
		})
	})
}

func TestValidAudience(t *testing.T) {
	convey.Convey("Given the audience vocabulary", t, func() {
		convey.So(chat.ValidAudience(chat.AudienceGeneral), convey.ShouldBeTrue)
		convey.So(chat.ValidAudience(chat.AudienceRecruiter), convey.ShouldBeTrue)
		convey.So(chat.ValidAudience(chat.AudienceEngineer), convey.ShouldBeTrue)
		convey.So(chat.ValidAudience("investor"), convey.ShouldBeFalse)
		convey.So(chat.ValidAudience(""), convey.ShouldBeFalse)
	})
}
