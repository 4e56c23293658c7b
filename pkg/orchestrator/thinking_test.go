package orchestrator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// feedAll runs chunks through one filter and concatenates the outputs,
// including the final flush.
func feedAll(chunks ...string) (visible, thinking string) {
	f := NewThinkingFilter()
	var vis, thk strings.Builder
	for _, c := range chunks {
		v, t := f.Feed(c)
		vis.WriteString(v)
		thk.WriteString(t)
	}
	v, t := f.Flush()
	vis.WriteString(v)
	thk.WriteString(t)
	return vis.String(), thk.String()
}

func TestThinkingFilter_Feed(t *testing.T) {
	t.Run("passes plain text through", func(t *testing.T) {
		vis, thk := feedAll("the living room light is on")
		assert.Equal(t, "the living room light is on", vis)
		assert.Empty(t, thk)
	})

	t.Run("reroutes tagged reasoning", func(t *testing.T) {
		vis, thk := feedAll("<think>check the sensor first</think>It is 21 degrees.")
		assert.Equal(t, "It is 21 degrees.", vis)
		assert.Equal(t, "check the sensor first", thk)
	})

	t.Run("matches tag names case-insensitively", func(t *testing.T) {
		vis, thk := feedAll("<THINK>hidden</THINK>shown")
		assert.Equal(t, "shown", vis)
		assert.Equal(t, "hidden", thk)
	})

	t.Run("handles every recognized tag name", func(t *testing.T) {
		for _, name := range []string{"think", "thinking", "reasoning", "thought", "reflection"} {
			vis, thk := feedAll("<" + name + ">a</" + name + ">b")
			assert.Equal(t, "b", vis, name)
			assert.Equal(t, "a", thk, name)
		}
	})

	t.Run("reassembles a tag split across chunks", func(t *testing.T) {
		vis, thk := feedAll("before<thi", "nk>inside</th", "ink>after")
		assert.Equal(t, "beforeafter", vis)
		assert.Equal(t, "inside", thk)
	})

	t.Run("splits one character per chunk", func(t *testing.T) {
		input := "a<think>bb</think>c"
		var chunks []string
		for _, r := range input {
			chunks = append(chunks, string(r))
		}
		vis, thk := feedAll(chunks...)
		assert.Equal(t, "ac", vis)
		assert.Equal(t, "bb", thk)
	})

	t.Run("leaves non-thinking tags alone", func(t *testing.T) {
		vis, thk := feedAll("use <b>bold</b> here")
		assert.Equal(t, "use <b>bold</b> here", vis)
		assert.Empty(t, thk)
	})

	t.Run("treats a long bracketed span as literal", func(t *testing.T) {
		vis, thk := feedAll("a < b and also x < y in math")
		assert.Equal(t, "a < b and also x < y in math", vis)
		assert.Empty(t, thk)
	})

	t.Run("swallows a stray closing tag", func(t *testing.T) {
		vis, thk := feedAll("hello</think>world")
		assert.Equal(t, "helloworld", vis)
		assert.Empty(t, thk)
	})

	t.Run("swallows a nested opening tag", func(t *testing.T) {
		vis, thk := feedAll("<think>outer<think>still inside</think>back")
		assert.Equal(t, "back", vis)
		assert.Equal(t, "outerstill inside", thk)
	})

	t.Run("ignores a mismatched closing tag while inside", func(t *testing.T) {
		vis, thk := feedAll("<think>a</reasoning>b</think>c")
		assert.Equal(t, "c", vis)
		assert.Equal(t, "ab", thk)
	})
}

func TestThinkingFilter_Flush(t *testing.T) {
	t.Run("releases a trailing partial tag as visible text", func(t *testing.T) {
		f := NewThinkingFilter()
		vis, _ := f.Feed("done<thin")
		assert.Equal(t, "done", vis)

		vis, thk := f.Flush()
		assert.Equal(t, "<thin", vis)
		assert.Empty(t, thk)
	})

	t.Run("releases a trailing partial tag to thinking while inside", func(t *testing.T) {
		f := NewThinkingFilter()
		_, _ = f.Feed("<think>reason</thi")
		vis, thk := f.Flush()
		assert.Empty(t, vis)
		assert.Equal(t, "</thi", thk)
	})

	t.Run("is a no-op with nothing held back", func(t *testing.T) {
		f := NewThinkingFilter()
		vis, thk := f.Flush()
		assert.Empty(t, vis)
		assert.Empty(t, thk)
	})
}

func TestStripThinking(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text", "turn off the lights", "turn off the lights"},
		{"strips one block", "<think>hm</think> done", "done"},
		{"strips multiple blocks", "<think>a</think>x<reasoning>b</reasoning>y", "xy"},
		{"unterminated block drops the tail", "visible<think>never closed", "visible"},
		{"empty input", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripThinking(tt.in))
		})
	}
}
