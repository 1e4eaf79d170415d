package extract

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// NoExplanation is the sentinel stored when no explanation text could be
// recovered for an answer.
const NoExplanation = "No explanation available."

// AnswerRecord is the recovered answer letter and explanation for one
// question number. Answer may be empty while passes are still running; the
// merge rules fill it from the first pass that knows the letter.
type AnswerRecord struct {
	Answer      string
	Explanation string
}

// answerMatch is one answer-key style occurrence ("12. B") with its position
// in the text.
type answerMatch struct {
	questionNumber int
	answer         string
	position       int
}

var (
	answerKeyLine   = regexp.MustCompile(`(?i)(\d+)\.\s+([A-D])(?:[:.\s]|$)`)
	looseAnswer     = regexp.MustCompile(`(\d+)\s*\.\s*([A-D])`)
	explMarker      = regexp.MustCompile(`(?i)Explanation:?`)
	explMarkerSpace = regexp.MustCompile(`(?i)Explanation:?\s*`)
	explPrefix      = regexp.MustCompile(`(?i)^Explanation:?\s*`)
	numberedAfter   = regexp.MustCompile(`^\n\d+\.`)
	nextNumberBreak = regexp.MustCompile(`\n\s*\d+\.\s`)
	startsNumbered  = regexp.MustCompile(`^\d+\.`)
	startsOption    = regexp.MustCompile(`^[A-D]\.`)
	trailingAnswer = regexp.MustCompile(`(\d+)\.\s+([A-D])[^\d]*$`)
	nearAnswer     = regexp.MustCompile(`(\d+)\.\s*[A-D]`)
	sentenceBreak  = regexp.MustCompile(`[.!?]\s`)
	terminalPunct   = regexp.MustCompile(`[.!?]$`)

	midWordBreak = regexp.MustCompile(`(?i)([a-z])\n([a-z])`)
	newlineRuns  = regexp.MustCompile(`\n+`)
	tightPeriod  = regexp.MustCompile(`\.([A-Z])`)
)

// repairContinuity rejoins words split across line breaks, collapses newline
// runs and reinserts the space after tight periods. Used by the answer passes
// on top of the document-level normalization.
func repairContinuity(text string) string {
	text = midWordBreak.ReplaceAllString(text, "$1 $2")
	text = newlineRuns.ReplaceAllString(text, "\n")
	return tightPeriod.ReplaceAllString(text, ". $1")
}

// explLen is the explanation length used in merge comparisons. The sentinel
// counts as empty so it can never beat recovered text.
func explLen(s string) int {
	if s == NoExplanation {
		return 0
	}
	return len(s)
}

func findAnswerMatches(re *regexp.Regexp, text string) []answerMatch {
	var out []answerMatch
	for _, loc := range re.FindAllStringSubmatchIndex(text, -1) {
		n, err := strconv.Atoi(text[loc[2]:loc[3]])
		if err != nil {
			continue
		}
		out = append(out, answerMatch{
			questionNumber: n,
			answer:         strings.ToUpper(text[loc[4]:loc[5]]),
			position:       loc[0],
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].position < out[j].position })
	return out
}

// markerBlock is one explicit "Explanation:" marker plus the rest of its
// line, kept only when the line runs up against a numbered line or the end of
// the text.
type markerBlock struct {
	position int
	body     string
}

func explicitMarkerBlocks(text string) []markerBlock {
	var out []markerBlock
	for _, loc := range explMarker.FindAllStringIndex(text, -1) {
		lineEnd := strings.IndexByte(text[loc[1]:], '\n')
		if lineEnd == -1 {
			lineEnd = len(text) - loc[1]
		}
		for q := loc[1]; q <= loc[1]+lineEnd; q++ {
			if q == len(text) || numberedAfter.MatchString(text[q:]) {
				out = append(out, markerBlock{position: loc[0], body: text[loc[0]:q]})
				break
			}
		}
	}
	return out
}

// primaryAnswers is the first and most trusted answer pass. It locates
// answer-key lines and explicit explanation markers, carves out the text
// between consecutive answers, and extends truncated explanations to the
// next sentence boundary. When fewer than 3 entries end up with a real
// explanation, the full-explanation pass takes over and its output is merged
// in.
func primaryAnswers(text string) map[int]AnswerRecord {
	pre := repairContinuity(text)
	answers := make(map[int]AnswerRecord)

	matches := findAnswerMatches(answerKeyLine, pre)

	// Explicit markers first: the most reliable association. The question
	// number comes from scanning backward up to 150 characters for the
	// nearest "N. <letter>" pattern, falling back to the nearest numbered
	// question start when the key line has not appeared yet.
	for _, blk := range explicitMarkerBlocks(pre) {
		windowStart := blk.position - 150
		if windowStart < 0 {
			windowStart = 0
		}
		before := pre[windowStart:blk.position]

		n := 0
		letter := ""
		if m := trailingAnswer.FindStringSubmatch(before); m != nil {
			n, _ = strconv.Atoi(m[1])
			letter = strings.ToUpper(m[2])
		} else if locs := questionStart.FindAllStringSubmatchIndex(before, -1); len(locs) > 0 {
			last := locs[len(locs)-1]
			n, _ = strconv.Atoi(before[last[2]:last[3]])
		}
		if n == 0 {
			continue
		}

		explText := strings.TrimSpace(explPrefix.ReplaceAllString(blk.body, ""))
		rec, ok := answers[n]
		if !ok {
			answers[n] = AnswerRecord{Answer: letter, Explanation: explText}
		} else if explLen(explText) > explLen(rec.Explanation) {
			rec.Explanation = explText
			answers[n] = rec
		}
	}

	// Answer-key spans: for each key line without a solid explanation, mine
	// the text up to the next key line.
	for i, am := range matches {
		if rec, ok := answers[am.questionNumber]; ok {
			if rec.Answer == "" {
				rec.Answer = am.answer
				answers[am.questionNumber] = rec
			}
			if len(rec.Explanation) > 30 {
				continue
			}
		}

		nextPos := len(pre)
		if i < len(matches)-1 {
			nextPos = matches[i+1].position
		}
		between := pre[am.position:nextPos]

		explanation := ""
		if loc := explMarkerSpace.FindStringIndex(between); loc != nil {
			explText := between[loc[1]:]
			if m := nextNumberBreak.FindStringIndex(explText); m != nil {
				explText = explText[:m[0]]
			}
			explanation = strings.TrimSpace(explText)
		} else {
			remaining := between
			if idx := strings.IndexByte(remaining, '\n'); idx != -1 {
				remaining = remaining[idx+1:]
			}
			remaining = strings.TrimSpace(remaining)
			if remaining != "" && !startsNumbered.MatchString(remaining) && !startsOption.MatchString(remaining) {
				end := len(remaining)
				if m := nextNumberBreak.FindStringIndex(remaining); m != nil {
					end = m[0]
				}
				explanation = strings.TrimSpace(remaining[:end])
			}
		}

		if explanation != "" {
			// Strip any captured start of the next question.
			nextQ, err := regexp.Compile(`(?i)\b` + strconv.Itoa(am.questionNumber+1) + `\.\s+`)
			if err == nil {
				if m := nextQ.FindStringIndex(explanation); m != nil {
					explanation = strings.TrimSpace(explanation[:m[0]])
				}
			}
			if explanation == "" {
				explanation = NoExplanation
			}
			rec, ok := answers[am.questionNumber]
			if !ok {
				answers[am.questionNumber] = AnswerRecord{Answer: am.answer, Explanation: explanation}
			} else if explLen(explanation) > explLen(rec.Explanation) {
				rec.Explanation = explanation
				answers[am.questionNumber] = rec
			}
		} else if _, ok := answers[am.questionNumber]; !ok {
			answers[am.questionNumber] = AnswerRecord{Answer: am.answer, Explanation: NoExplanation}
		}
	}

	// Truncated explanations: locate the text in the document and extend
	// forward to the next sentence boundary (within 200 characters) or the
	// next numbered line (within 100), whichever triggers first.
	for n, rec := range answers {
		if rec.Explanation == "" || rec.Explanation == NoExplanation {
			continue
		}
		if terminalPunct.MatchString(rec.Explanation) {
			continue
		}
		probe := rec.Explanation
		if len(probe) > 50 {
			probe = probe[:50]
		}
		start := strings.Index(pre, probe)
		if start == -1 {
			continue
		}
		end := start + len(rec.Explanation)
		if end > len(pre) {
			end = len(pre)
		}
		if m := sentenceBreak.FindStringIndex(pre[end:]); m != nil && m[0] < 200 {
			end += m[0] + 2
		}
		if end > len(pre) {
			end = len(pre)
		}
		if m := nextNumberBreak.FindStringIndex(pre[end:]); m != nil && m[0] < 100 {
			end += m[0]
		}
		rec.Explanation = strings.TrimSpace(pre[start:end])
		answers[n] = rec
	}

	nonDefault := 0
	for _, rec := range answers {
		if rec.Explanation != NoExplanation {
			nonDefault++
		}
	}
	if nonDefault < 3 {
		return mergeAnswerMaps(answers, fullExplanations(pre, matches))
	}
	return answers
}

// fullExplanations builds contiguous sections from one answer-key match to
// the next and fills every section: text after an explicit marker when
// present, else everything after the section's first line break.
func fullExplanations(text string, matches []answerMatch) map[int]AnswerRecord {
	firstAnswer := make(map[int]string, len(matches))
	for _, am := range matches {
		if _, ok := firstAnswer[am.questionNumber]; !ok {
			firstAnswer[am.questionNumber] = am.answer
		}
	}

	answers := make(map[int]AnswerRecord)
	for i, am := range matches {
		nextPos := len(text)
		if i < len(matches)-1 {
			nextPos = matches[i+1].position
		}
		section := text[am.position:nextPos]

		explanation := ""
		if loc := explMarkerSpace.FindStringIndex(section); loc != nil {
			explanation = strings.TrimSpace(section[loc[1]:])
		} else if idx := strings.IndexByte(section, '\n'); idx != -1 {
			explanation = strings.TrimSpace(section[idx:])
		}
		if explanation != "" {
			if m := nextNumberBreak.FindStringIndex(explanation); m != nil {
				explanation = strings.TrimSpace(explanation[:m[0]])
			}
		}
		if explanation == "" {
			explanation = NoExplanation
		}

		answer := firstAnswer[am.questionNumber]
		if answer == "" {
			answer = "A"
		}
		answers[am.questionNumber] = AnswerRecord{Answer: answer, Explanation: explanation}
	}
	return answers
}

// sectionExplanations splits the text at every explanation marker and
// attributes each chunk to the question number found at the tail of the
// preceding chunk. Produces explanation-only records used to backfill, never
// answers.
func sectionExplanations(text string) map[int]string {
	pre := repairContinuity(text)
	out := make(map[int]string)

	locs := explMarker.FindAllStringIndex(pre, -1)
	for i, loc := range locs {
		chunkEnd := len(pre)
		if i < len(locs)-1 {
			chunkEnd = locs[i+1][0]
		}
		chunk := strings.TrimSpace(pre[loc[0]:chunkEnd])
		explText := strings.TrimSpace(explPrefix.ReplaceAllString(chunk, ""))

		prev := pre[:loc[0]]
		if i > 0 {
			prev = pre[locs[i-1][0]:loc[0]]
		}
		m := trailingAnswer.FindStringSubmatch(prev)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if mm := nextNumberBreak.FindStringIndex(explText); mm != nil {
			explText = strings.TrimSpace(explText[:mm[0]])
		}
		out[n] = explText
	}
	return out
}

// explanationSpan is a half-open byte range into the text.
type explanationSpan struct {
	start, end int
}

// explanationBoundaries locates every explanation marker and assigns it a
// question number by scanning up to 100 characters backward for the nearest
// "N. <letter>" pattern. The span runs from just after the marker to the
// next marker or the end of the text.
func explanationBoundaries(text string) map[int]explanationSpan {
	out := make(map[int]explanationSpan)

	var marks [][2]int // position, end of marker incl. trailing whitespace
	for _, loc := range explMarkerSpace.FindAllStringIndex(text, -1) {
		if loc[1] >= len(text) {
			continue // nothing follows the marker
		}
		marks = append(marks, [2]int{loc[0], loc[1]})
	}

	for i, mk := range marks {
		windowStart := mk[0] - 100
		if windowStart < 0 {
			windowStart = 0
		}
		ms := nearAnswer.FindAllStringSubmatch(text[windowStart:mk[0]], -1)
		if len(ms) == 0 {
			continue
		}
		n, err := strconv.Atoi(ms[len(ms)-1][1])
		if err != nil {
			continue
		}
		end := len(text)
		if i < len(marks)-1 {
			end = marks[i+1][0]
		}
		out[n] = explanationSpan{start: mk[1], end: end}
	}
	return out
}

// mergeAnswerMaps combines two answer maps: an existing answer letter is
// never overwritten, the longer explanation wins (the sentinel counts as
// empty), and numbers only present in incoming are inserted as-is.
func mergeAnswerMaps(existing, incoming map[int]AnswerRecord) map[int]AnswerRecord {
	out := make(map[int]AnswerRecord, len(existing)+len(incoming))
	for n, rec := range existing {
		out[n] = rec
	}
	for n, in := range incoming {
		cur, ok := out[n]
		if !ok {
			out[n] = in
			continue
		}
		if explLen(in.Explanation) > explLen(cur.Explanation) {
			cur.Explanation = in.Explanation
		}
		if cur.Answer == "" {
			cur.Answer = in.Answer
		}
		out[n] = cur
	}
	return out
}

var answerLetters = [4]string{"A", "B", "C", "D"}

// guessAnswer returns the most frequent answer letter across the known
// records, ties broken in A,B,C,D order, defaulting to "A" when the map is
// empty. A statistical guess, not exam-aware.
func guessAnswer(answers map[int]AnswerRecord) string {
	counts := make(map[string]int, 4)
	for _, rec := range answers {
		counts[rec.Answer]++
	}
	best, bestCount := "A", 0
	for _, l := range answerLetters {
		if counts[l] > bestCount {
			best, bestCount = l, counts[l]
		}
	}
	return best
}

// goodExplanations counts entries whose explanation is real (non-sentinel)
// and longer than 20 characters.
func goodExplanations(answers map[int]AnswerRecord) int {
	n := 0
	for _, rec := range answers {
		if explLen(rec.Explanation) > 20 {
			n++
		}
	}
	return n
}

func sortedKeys[V any](m map[int]V) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// extractAnswers runs the answer/explanation cascade. Later stages fire only
// while the coverage of good explanations stays below a threshold fraction
// of the question count; each stage's output is folded in under the merge
// rules rather than replacing earlier work.
func extractAnswers(text string, questionCount int) map[int]AnswerRecord {
	answers := primaryAnswers(text)

	half := float64(questionCount) / 2
	if float64(goodExplanations(answers)) < half {
		matches := findAnswerMatches(looseAnswer, text)
		answers = mergeAnswerMaps(answers, fullExplanations(text, matches))
	}

	if float64(goodExplanations(answers)) < half {
		sections := sectionExplanations(text)
		for _, n := range sortedKeys(sections) {
			explText := sections[n]
			if rec, ok := answers[n]; ok {
				if explLen(explText) > explLen(rec.Explanation) {
					rec.Explanation = explText
					answers[n] = rec
				}
			} else if len(explText) > 20 {
				answers[n] = AnswerRecord{Answer: guessAnswer(answers), Explanation: explText}
			}
		}
	}

	if float64(goodExplanations(answers)) < 0.7*float64(questionCount) {
		spans := explanationBoundaries(text)
		for _, n := range sortedKeys(spans) {
			sp := spans[n]
			explText := strings.TrimSpace(text[sp.start:sp.end])
			if rec, ok := answers[n]; ok {
				if explLen(explText) > explLen(rec.Explanation) {
					rec.Explanation = explText
					answers[n] = rec
				}
			} else {
				answers[n] = AnswerRecord{Answer: guessAnswer(answers), Explanation: explText}
			}
		}
	}

	return answers
}
