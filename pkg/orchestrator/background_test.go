package orchestrator

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsBackgroundRequest(t *testing.T) {
	tests := []struct {
		name string
		msg  string
		want bool
	}{
		{"title generation", "Generate a title for this conversation", true},
		{"concise title", "generate a concise title summarizing the chat", true},
		{"provide a title", "Please provide a title.", true},
		{"create a title", "create a title for the above", true},
		{"summary prompt", "Summarize the conversation in 10 words or less", true},
		{"british spelling", "Summarise the conversation in one sentence", true},
		{"give this conversation a title", "Give this conversation a title", true},
		{"mixed case", "GENERATE A TITLE", true},
		{"follow-up suggestions", "Suggest a follow-up question the user might ask", true},
		{"summarize this conversation", "summarize this conversation briefly", true},
		{"real question", "why did the hallway light turn on at 3am?", false},
		{"mentions titles but is real", "what is the title of the schedule I created?", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsBackgroundRequest(tt.msg))
		})
	}
}

func TestDeriveConversationID(t *testing.T) {
	t.Run("is deterministic", func(t *testing.T) {
		a := DeriveConversationID("turn on the porch light")
		b := DeriveConversationID("turn on the porch light")
		assert.Equal(t, a, b)
	})

	t.Run("differs per message", func(t *testing.T) {
		a := DeriveConversationID("turn on the porch light")
		b := DeriveConversationID("turn off the porch light")
		assert.NotEqual(t, a, b)
	})

	t.Run("is uuid shaped", func(t *testing.T) {
		id := DeriveConversationID("hello")
		assert.Len(t, id, 36)
		assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`), id)
	})
}
