package html2md

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslateBasicElements(t *testing.T) {
	translator := NewHTML2MDTranslator(nil)
	md, err := translator.Translate(`<html><body><h1>Results</h1><p>The <b>first</b> post is <a href="https://old.reddit.com/r/python/1">here</a>.</p></body></html>`)
	require.NoError(t, err)
	assert.Contains(t, md, "## Results")
	assert.Contains(t, md, "**first**")
	assert.Contains(t, md, "[here](old.reddit.com/r/python/1)")
}

func TestTranslateDropsInvisibleContent(t *testing.T) {
	translator := NewHTML2MDTranslator(nil)
	md, err := translator.Translate(`<div><script>alert(1)</script><span style="display: none">hidden</span><span>shown</span></div>`)
	require.NoError(t, err)
	assert.NotContains(t, md, "alert")
	assert.NotContains(t, md, "hidden")
	assert.Contains(t, md, "shown")
}

func TestTranslateTruncatesLongLists(t *testing.T) {
	items := make([]string, 0, 15)
	for i := 0; i < 15; i++ {
		items = append(items, "<li>item</li>")
	}
	translator := NewHTML2MDTranslator(&Options{MaxListDisplaySize: 3})
	md, err := translator.Translate("<ul>" + strings.Join(items, "") + "</ul>")
	require.NoError(t, err)
	assert.Contains(t, md, "- ...")
	assert.LessOrEqual(t, strings.Count(md, "- item"), 3)
}
