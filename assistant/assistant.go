package assistant

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"wayfare/rdx"
	"wayfare/utils"

	"github.com/julienschmidt/httprouter"
)

const fallbackReply = "I'm not sure how to help with that. Try asking about our features or for a travel recommendation!"

type popularFunc func(ctx context.Context) ([]string, error)

// rule is one (predicate, response) pair. Rules are evaluated in order and
// the first match wins, so keyword precedence is explicit rather than an
// accident of map iteration.
type rule struct {
	name  string
	match func(msg string) bool
	reply func(ctx context.Context, a *Assistant) string
}

type Assistant struct {
	popular popularFunc
	rules   []rule
}

// New returns an assistant backed by the Redis popularity ranking.
func New() *Assistant {
	return newAssistant(func(ctx context.Context) ([]string, error) {
		return rdx.TopDestinations(5)
	})
}

func newAssistant(popular popularFunc) *Assistant {
	a := &Assistant{popular: popular}
	a.rules = []rule{
		{
			name:  "greeting",
			match: containsAny("hello", "hey there", "good morning", "good evening"),
			reply: func(context.Context, *Assistant) string {
				return "Hello, traveler! Ask me for a recommendation or about what Wayfare can do."
			},
		},
		{
			name:  "recommend",
			match: containsAny("recommend", "popular", "destination", "suggest", "where to go"),
			reply: recommendReply,
		},
		{
			name:  "features",
			match: containsAny("help", "feature", "what can you do"),
			reply: func(context.Context, *Assistant) string {
				return "You can build a day-by-day itinerary for your trip, create travel groups, and chat with your group in real time."
			},
		},
	}
	return a
}

func containsAny(keywords ...string) func(string) bool {
	return func(msg string) bool {
		for _, kw := range keywords {
			if strings.Contains(msg, kw) {
				return true
			}
		}
		return false
	}
}

func recommendReply(ctx context.Context, a *Assistant) string {
	destinations, err := a.popular(ctx)
	if err != nil {
		log.Printf("assistant: popular destinations lookup failed: %v", err)
		destinations = nil
	}
	if len(destinations) == 0 {
		return "We don't have any popular destinations yet, but you can be the first to start a trend!"
	}
	return "Our most popular destinations are: " + strings.Join(destinations, ", ") + ". You can create a group for one of them!"
}

// Respond walks the rule table in order; the first matching rule wins.
func (a *Assistant) Respond(ctx context.Context, message string) string {
	msg := strings.ToLower(strings.TrimSpace(message))
	for _, r := range a.rules {
		if r.match(msg) {
			return r.reply(ctx, a)
		}
	}
	return fallbackReply
}

// ChatHandler handles POST /api/assistant/chat.
func (a *Assistant) ChatHandler(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"response": a.Respond(r.Context(), input.Message),
	})
}
