package render

import (
	"testing"

	"github.com/btjones-me/llm-browser-use/history"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBanner(t *testing.T) {
	r := NewRenderer()
	ok := history.Reconcile(history.New(history.Records{ExtractedContent: []string{"42"}}))
	assert.Equal(t, "Task completed successfully: 42", r.Banner(ok))

	failed := history.Reconcile(history.New(history.Records{Errors: []string{"boom"}}))
	assert.Equal(t, "Task failed: No result", r.Banner(failed))
}

func TestStepsRenderPlaceholders(t *testing.T) {
	r := NewRenderer()
	outcome := history.Reconcile(history.New(history.Records{
		ActionNames: []string{"click", "done"},
		URLs:        []string{"https://example.com"},
	}))
	text := r.Steps(outcome)
	assert.Contains(t, text, "Step 1")
	assert.Contains(t, text, "Step 2")
	assert.Contains(t, text, "url: "+history.Placeholder)
	assert.Contains(t, text, "action: done")
}

func TestStepsTranslateHTMLExtracts(t *testing.T) {
	r := NewRenderer()
	outcome := history.Reconcile(history.New(history.Records{
		ActionNames:      []string{"extract_content"},
		ExtractedContent: []string{"<div><b>bold</b> result</div>"},
	}))
	text := r.Steps(outcome)
	assert.Contains(t, text, "**bold** result")
	assert.NotContains(t, text, "<div>")
}

func TestDebugIsRawBundleJSON(t *testing.T) {
	r := NewRenderer()
	outcome := history.Reconcile(history.New(history.Records{
		Screenshots: []string{"step_1.png"},
	}))
	debug, err := r.Debug(outcome)
	require.NoError(t, err)
	assert.Contains(t, debug, `"screenshots"`)
	assert.Contains(t, debug, "step_1.png")
}

func TestLooksLikeHTML(t *testing.T) {
	assert.True(t, LooksLikeHTML("<p>hi</p>"))
	assert.True(t, LooksLikeHTML("  <div>x</div>"))
	assert.False(t, LooksLikeHTML("plain text"))
	assert.False(t, LooksLikeHTML("3 < 5"))
}
