package extract

import "regexp"

var (
	lineBreakRuns = regexp.MustCompile(`(\r\n|\r|\n){2,}`)
	tightSentence = regexp.MustCompile(`([a-z])\.([A-Z])`)
)

// Normalize repairs common PDF text-extraction artifacts: runs of two or more
// line breaks collapse to a single blank line, and a missing space after a
// sentence-ending period ("end.Next") is reinserted. Pure and idempotent.
func Normalize(text string) string {
	text = lineBreakRuns.ReplaceAllString(text, "\n\n")
	return tightSentence.ReplaceAllString(text, "$1. $2")
}
