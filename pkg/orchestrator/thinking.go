package orchestrator

import "strings"

// thinkingTagNames are the tag names treated as internal reasoning,
// matched case-insensitively.
var thinkingTagNames = map[string]bool{
	"think":      true,
	"thinking":   true,
	"reasoning":  true,
	"thought":    true,
	"reflection": true,
}

// maxTagLen bounds how many bytes a tag token may span:
// len("</reflection>"). Anything longer is literal text.
const maxTagLen = 13

// ThinkingFilter incrementally splits a token stream into visible text
// and thinking text. Models that lack a native thinking channel wrap
// reasoning in tags like <think>...</think>; the filter strips the
// tags and reroutes the wrapped text, even when a tag is split across
// chunk boundaries.
//
// Not safe for concurrent use; one filter per stream.
type ThinkingFilter struct {
	carry  string
	inside bool
	tag    string
}

// NewThinkingFilter creates a filter in the visible state.
func NewThinkingFilter() *ThinkingFilter {
	return &ThinkingFilter{}
}

// Feed processes one chunk and returns the visible and thinking text
// it produced. Partial tags are held back until the next chunk.
func (f *ThinkingFilter) Feed(chunk string) (visible, thinking string) {
	s := f.carry + chunk
	f.carry = ""

	var vis, thk strings.Builder
	emit := func(text string) {
		if f.inside {
			thk.WriteString(text)
		} else {
			vis.WriteString(text)
		}
	}

	i := 0
	for i < len(s) {
		lt := strings.IndexByte(s[i:], '<')
		if lt < 0 {
			emit(s[i:])
			break
		}
		lt += i
		emit(s[i:lt])

		gt := -1
		end := lt + maxTagLen
		if end > len(s) {
			end = len(s)
		}
		for j := lt + 1; j < end; j++ {
			if s[j] == '>' {
				gt = j
				break
			}
		}
		if gt < 0 {
			if len(s)-lt < maxTagLen {
				// Possibly a tag split across chunks; hold it back.
				f.carry = s[lt:]
				break
			}
			emit("<")
			i = lt + 1
			continue
		}

		token := s[lt : gt+1]
		inner := token[1 : len(token)-1]
		closing := strings.HasPrefix(inner, "/")
		name := strings.ToLower(strings.TrimPrefix(inner, "/"))

		if thinkingTagNames[name] {
			switch {
			case !closing && !f.inside:
				f.inside = true
				f.tag = name
			case closing && f.inside && name == f.tag:
				f.inside = false
				f.tag = ""
			}
			// Stray or nested thinking tags are swallowed either way.
		} else {
			emit(token)
		}
		i = gt + 1
	}

	return vis.String(), thk.String()
}

// Flush releases any held-back partial tag as literal text. Call once
// when the stream ends.
func (f *ThinkingFilter) Flush() (visible, thinking string) {
	if f.carry == "" {
		return "", ""
	}
	rest := f.carry
	f.carry = ""
	if f.inside {
		return "", rest
	}
	return rest, ""
}

// StripThinking removes thinking-tagged spans from a complete string
// and trims the result. Used when persisting the assistant message.
func StripThinking(s string) string {
	f := NewThinkingFilter()
	visible, _ := f.Feed(s)
	tail, _ := f.Flush()
	return strings.TrimSpace(visible + tail)
}
