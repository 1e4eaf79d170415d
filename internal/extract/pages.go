package extract

import "regexp"

// Document is the decoded PDF handed to the pipeline: the concatenated text,
// the page count reported by the decoder, and per-page text when the decoder
// can provide it.
type Document struct {
	Text     string
	NumPages int
	Pages    []Page
}

// Page is one page of decoded text. Text may be empty for pages the decoder
// could not read.
type Page struct {
	Text string
}

// KeyPageNotFound is returned by FindKeyPage when no page matches an
// answer-key heading.
const KeyPageNotFound = -1

var keyPageHeading = regexp.MustCompile(`(?i)KEY|ANSWER\s+KEY|EXAM\s*[-—]\s*KEY|FINANCE CLUSTER EXAM[-—]KEY`)

// SplitPages returns per-page text chunks. When the decoder supplies pages
// they are used verbatim; otherwise page boundaries are estimated by dividing
// the character length evenly across the page count. The estimate can
// misplace content near page boundaries; its output feeds diagnostics, not
// extraction.
func SplitPages(doc Document) []string {
	if len(doc.Pages) > 0 {
		out := make([]string, len(doc.Pages))
		for i, p := range doc.Pages {
			out[i] = p.Text
		}
		return out
	}
	if doc.NumPages <= 0 {
		return nil
	}
	out := make([]string, 0, doc.NumPages)
	n := len(doc.Text)
	for i := 0; i < doc.NumPages; i++ {
		start := i * n / doc.NumPages
		end := (i + 1) * n / doc.NumPages
		out = append(out, doc.Text[start:end])
	}
	return out
}

// FindKeyPage scans pages in order for an answer-key heading and returns the
// index of the first match, or KeyPageNotFound. The index is informational
// only; it does not gate later extraction stages.
func FindKeyPage(pages []string) int {
	for i, p := range pages {
		if keyPageHeading.MatchString(p) {
			return i
		}
	}
	return KeyPageNotFound
}
