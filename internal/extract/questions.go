package extract

import (
	"log"
	"regexp"
	"strconv"
	"strings"

	"github.com/quizdeck/quizdeck/internal/game"
)

// Candidate is a question recovered by an extraction strategy before any
// answer or explanation has been attached. Question numbers need not be
// contiguous or unique.
type Candidate struct {
	ID             string
	QuestionNumber int
	Text           string
	Options        []game.Option
}

var (
	questionStart  = regexp.MustCompile(`(\d+)\.\s+`)
	optionAhead    = regexp.MustCompile(`^\s*\n\s*[A-D]\.`)
	numberedAhead  = regexp.MustCompile(`^\n\s*\d+\.`)
	optionCapture  = regexp.MustCompile(`([A-D])\.?\s+([^\n]+)`)
	lineQuestion   = regexp.MustCompile(`^(\d+)\.\s+(.+)`)
	lineNumbered   = regexp.MustCompile(`^(\d+)\.`)
	lineOptionStop = regexp.MustCompile(`^[A-D]\.`)
	lineOption     = regexp.MustCompile(`^([A-D])\.?\s+(.+)`)
	lineExpl       = regexp.MustCompile(`(?i)^Explanation:`)
	looseNumber    = regexp.MustCompile(`\b(\d{1,2})\.\s+([^\n]+)`)
	strictOption   = regexp.MustCompile(`([A-D])\.\s+([^\n]+)`)
)

// questionLineText returns the question text starting at the head of s: the
// shortest prefix of the first line that runs up against an option line, a
// numbered line, or the end of the text. ok is false when the line has no
// such boundary, which means the numbered match was not a question start.
func questionLineText(s string) (text string, consumed int, ok bool) {
	lineEnd := strings.IndexByte(s, '\n')
	if lineEnd == -1 {
		lineEnd = len(s)
	}
	for q := 0; q <= lineEnd; q++ {
		if q == len(s) {
			return s[:q], q, true
		}
		rest := s[q:]
		if optionAhead.MatchString(rest) || numberedAhead.MatchString(rest) {
			return s[:q], q, true
		}
	}
	return "", 0, false
}

// primaryQuestions is the strict strategy: a numbered line whose text runs to
// the next lettered-option line or numbered line, followed by a block of
// consecutive A.-D. option lines. The option block is searched from the
// question's own position, with a lookahead to the next question number as a
// fallback when the strict block pattern fails. A candidate is kept only if
// at least one option was found.
func (e *Extractor) primaryQuestions(text string) []Candidate {
	var out []Candidate
	for _, loc := range questionStart.FindAllStringSubmatchIndex(text, -1) {
		num, err := strconv.Atoi(text[loc[2]:loc[3]])
		if err != nil || num <= 0 {
			continue
		}
		qText, consumed, ok := questionLineText(text[loc[1]:])
		if !ok {
			continue
		}
		matchLen := (loc[1] - loc[0]) + consumed

		var optionsText string
		blockRe, err := regexp.Compile(`(?s)` + strconv.Itoa(num) + `\..*?\n((?:\s*[A-D]\..*?\n)+)`)
		if err != nil {
			continue
		}
		if m := blockRe.FindStringSubmatch(text[loc[0]:]); m != nil {
			optionsText = m[1]
		} else {
			nextRe, err := regexp.Compile(`\s*` + strconv.Itoa(num+1) + `\.[^\n]+`)
			if err != nil {
				continue
			}
			endPos := len(text)
			if nm := nextRe.FindStringIndex(text[loc[0]:]); nm != nil {
				endPos = loc[0] + nm[0]
			}
			start := loc[0] + matchLen
			if endPos < start {
				endPos = start
			}
			optionsText = text[start:endPos]
		}

		var options []game.Option
		for _, om := range optionCapture.FindAllStringSubmatch(optionsText, -1) {
			options = append(options, game.Option{
				ID:    e.ids(),
				Label: om[1],
				Text:  strings.TrimSpace(om[2]),
			})
		}
		if len(options) > 0 {
			out = append(out, Candidate{
				ID:             e.ids(),
				QuestionNumber: num,
				Text:           strings.TrimSpace(qText),
				Options:        options,
			})
		}
	}
	return out
}

// alternativeQuestions is a line-oriented state machine over the trimmed
// non-empty lines of the text. Lines that belong to neither a question start
// nor an option start are folded into the current question or option text
// with a single joining space. A question is emitted only once it has at
// least one option.
func (e *Extractor) alternativeQuestions(text string) []Candidate {
	var lines []string
	for _, ln := range strings.Split(text, "\n") {
		if t := strings.TrimSpace(ln); t != "" {
			lines = append(lines, t)
		}
	}

	var questions []Candidate
	var current *Candidate

	flush := func() {
		if current != nil && len(current.Options) > 0 {
			questions = append(questions, *current)
		}
	}
	continues := func(line string) bool {
		return !lineNumbered.MatchString(line) &&
			!lineOptionStop.MatchString(line) &&
			!lineExpl.MatchString(line)
	}

	for i := 0; i < len(lines); i++ {
		if m := lineQuestion.FindStringSubmatch(lines[i]); m != nil {
			flush()
			num, _ := strconv.Atoi(m[1])
			qText := m[2]
			for j := i + 1; j < len(lines) && continues(lines[j]); j++ {
				qText += " " + lines[j]
			}
			current = &Candidate{
				ID:             e.ids(),
				QuestionNumber: num,
				Text:           strings.TrimSpace(qText),
			}
			continue
		}
		if m := lineOption.FindStringSubmatch(lines[i]); m != nil && current != nil {
			optText := m[2]
			for k := i + 1; k < len(lines) && continues(lines[k]); k++ {
				optText += " " + lines[k]
			}
			current.Options = append(current.Options, game.Option{
				ID:    e.ids(),
				Label: m[1],
				Text:  strings.TrimSpace(optText),
			})
		}
	}
	flush()
	return questions
}

// lastResortQuestions is the most aggressive strategy: any one- or two-digit
// "N. text" pattern anywhere in the text (numbers 1-100 to limit false
// positives), with options collected from the span up to the next candidate.
// Because this method produces more noise, a candidate needs at least two
// options to survive.
func (e *Extractor) lastResortQuestions(text string) []Candidate {
	type numbered struct {
		number int
		text   string
		index  int
	}
	var found []numbered
	for _, loc := range looseNumber.FindAllStringSubmatchIndex(text, -1) {
		num, err := strconv.Atoi(text[loc[2]:loc[3]])
		if err != nil || num <= 0 || num > 100 {
			continue
		}
		found = append(found, numbered{
			number: num,
			text:   strings.TrimSpace(text[loc[4]:loc[5]]),
			index:  loc[0],
		})
	}

	var out []Candidate
	for i, q := range found {
		start := q.index + len(q.text)
		end := len(text)
		if i < len(found)-1 {
			end = found[i+1].index
		}
		if start > end {
			start = end
		}

		var options []game.Option
		for _, om := range strictOption.FindAllStringSubmatch(text[start:end], -1) {
			options = append(options, game.Option{
				ID:    e.ids(),
				Label: om[1],
				Text:  strings.TrimSpace(om[2]),
			})
		}
		if len(options) >= 2 {
			out = append(out, Candidate{
				ID:             e.ids(),
				QuestionNumber: q.number,
				Text:           q.text,
				Options:        options,
			})
		}
	}
	return out
}

// selectCandidates applies the escalation policy: primary first, then the
// alternative strategy if primary under-delivers, then last resort. The
// strategy with the most results wins outright; results are never merged
// across strategies.
func (e *Extractor) selectCandidates(text string, requested int) []Candidate {
	candidates := e.primaryQuestions(text)
	log.Printf("extract: primary strategy found %d questions", len(candidates))

	if len(candidates) < requested {
		alt := e.alternativeQuestions(text)
		log.Printf("extract: alternative strategy found %d questions", len(alt))
		if len(alt) > len(candidates) {
			candidates = alt
		}
	}
	if len(candidates) < requested {
		last := e.lastResortQuestions(text)
		log.Printf("extract: last-resort strategy found %d questions", len(last))
		if len(last) > len(candidates) {
			candidates = last
		}
	}
	return candidates
}
