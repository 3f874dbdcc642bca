// Package render formats a reconciled run outcome for display.
package render

import (
	"fmt"
	"strings"

	"github.com/btjones-me/llm-browser-use/history"
	"github.com/btjones-me/llm-browser-use/translators"
	"github.com/btjones-me/llm-browser-use/translators/html2md"
	"github.com/btjones-me/llm-browser-use/utils/slicesx"
	"github.com/btjones-me/llm-browser-use/utils/stringsx"
)

const maxStepExtractLength = 2000

type Renderer struct {
	translator translators.Translator
}

func NewRenderer() *Renderer {
	return &Renderer{
		translator: html2md.NewHTML2MDTranslator(nil),
	}
}

// Banner is the one-line success or failure verdict with the run summary.
func (r *Renderer) Banner(outcome *history.Outcome) string {
	if outcome.Succeeded {
		return fmt.Sprintf("Task completed successfully: %s", outcome.Summary)
	}
	return fmt.Sprintf("Task failed: %s", outcome.Summary)
}

// FailureBanner renders a run that produced no outcome at all.
func (r *Renderer) FailureBanner(err error) string {
	return fmt.Sprintf("Task failed: %s", err.Error())
}

// Steps renders the ordered step records, one block per step.
func (r *Renderer) Steps(outcome *history.Outcome) string {
	blocks := slicesx.Map(outcome.Steps, func(step history.Step, idx int) string {
		return strings.Join([]string{
			fmt.Sprintf("Step %d", step.Index),
			fmt.Sprintf("  action: %s", step.Action),
			fmt.Sprintf("  url: %s", step.URL),
			fmt.Sprintf("  extracted: %s", r.extracted(step)),
			fmt.Sprintf("  model action: %s", step.ModelAction),
		}, "\n")
	})
	return strings.Join(blocks, "\n\n")
}

// Debug is the raw bundle as indented JSON, for the diagnostic view.
func (r *Renderer) Debug(outcome *history.Outcome) (string, error) {
	data, err := history.Marshal(outcome.Debug)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (r *Renderer) extracted(step history.Step) string {
	text := step.Extracted
	if LooksLikeHTML(text) {
		if md, err := r.translator.Translate(text); err == nil && md != "" {
			text = md
		}
	}
	return stringsx.Abbreviate(text, maxStepExtractLength)
}

// LooksLikeHTML is a cheap check for markup in extracted content; content
// that trips it is translated to markdown before display.
func LooksLikeHTML(s string) bool {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "<") {
		return false
	}
	return strings.Contains(trimmed, ">")
}
