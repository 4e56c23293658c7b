package orchestrator

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// backgroundPatterns mark meta requests issued by chat frontends
// (title generation, summarisation prompts). Background requests get
// a plain completion: no trace, agent, status, delegation or proposal
// events, and nothing is persisted to the conversation.
var backgroundPatterns = []string{
	"generate a title",
	"generate a concise title",
	"provide a title",
	"create a title",
	"give this conversation a title",
	"suggest a follow-up",
	"summarize this conversation",
	"summarise this conversation",
	"summarize the conversation in",
	"summarise the conversation in",
}

// IsBackgroundRequest reports whether a message is a frontend meta
// request rather than a real conversation turn. Frontends send the
// meta prompt as the system message; some older ones put it in the
// user message, so the orchestrator checks both.
func IsBackgroundRequest(message string) bool {
	msg := strings.ToLower(message)
	for _, p := range backgroundPatterns {
		if strings.Contains(msg, p) {
			return true
		}
	}
	return false
}

// DeriveConversationID maps the first user message to a stable,
// uuid-shaped identifier. Retries of the same opening message land on
// the same conversation row.
func DeriveConversationID(firstUserMessage string) string {
	sum := sha256.Sum256([]byte(firstUserMessage))
	h := hex.EncodeToString(sum[:])[:32]
	return h[0:8] + "-" + h[8:12] + "-" + h[12:16] + "-" + h[16:20] + "-" + h[20:32]
}
