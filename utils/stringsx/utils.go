package stringsx

import (
	"fmt"
	"regexp"
	"strings"
)

func ReduceNewlines(s string, maxNewlines int) string {
	if maxNewlines < 1 {
		return s
	}
	replacement := strings.Repeat("\n", maxNewlines)

	// Matches sequences of (maxNewlines+1) or more newlines, with spaces or tabs in between.
	pattern := regexp.MustCompile(fmt.Sprintf(`(\n[ \t]*){%d,}`, maxNewlines+1))
	return pattern.ReplaceAllString(s, replacement)
}

func Abbreviate(s string, maxLen int) string {
	if maxLen <= 3 || len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
