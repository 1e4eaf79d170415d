package extract

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/quizdeck/quizdeck/internal/game"
)

// MissingExplanation is the sentinel attached to questions that never matched
// an answer record.
const MissingExplanation = "Explanation not available for this question."

var wsRun = regexp.MustCompile(`\s+`)

// mergeQuestions joins the chosen candidate set with the answer mapping by
// question number. Candidates are sorted ascending; a question without a
// record gets the majority-vote answer letter and the missing-explanation
// sentinel. Every returned question has a non-empty correct answer and
// explanation.
func (e *Extractor) mergeQuestions(candidates []Candidate, answers map[int]AnswerRecord) []game.Question {
	sorted := make([]Candidate, len(candidates))
	copy(sorted, candidates)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].QuestionNumber < sorted[j].QuestionNumber
	})

	var out []game.Question
	for _, c := range sorted {
		if c.QuestionNumber <= 0 {
			continue
		}
		q := game.Question{
			ID:             c.ID,
			QuestionNumber: c.QuestionNumber,
			Text:           c.Text,
			Options:        c.Options,
		}
		if q.ID == "" {
			q.ID = e.ids()
		}
		if q.Text == "" {
			q.Text = fmt.Sprintf("Question %d", c.QuestionNumber)
		}
		if q.Options == nil {
			q.Options = []game.Option{}
		}

		if rec, ok := answers[c.QuestionNumber]; ok {
			q.CorrectAnswer = rec.Answer
			q.Explanation = rec.Explanation
			if q.CorrectAnswer == "" {
				q.CorrectAnswer = guessAnswer(answers)
			}
			if q.Explanation == "" {
				q.Explanation = MissingExplanation
			}
		} else {
			q.CorrectAnswer = guessAnswer(answers)
			q.Explanation = MissingExplanation
		}
		out = append(out, q)
	}
	return out
}

// normalizeExplanations rewrites every explanation into a tidy sentence:
// whitespace runs collapse to single spaces, the first character is
// upper-cased and terminal punctuation is appended when missing. The
// no-explanation sentinel is left untouched.
func normalizeExplanations(questions []game.Question) {
	for i := range questions {
		expl := strings.TrimSpace(wsRun.ReplaceAllString(questions[i].Explanation, " "))
		if expl != "" && expl != NoExplanation {
			r := []rune(expl)
			r[0] = unicode.ToUpper(r[0])
			expl = string(r)
			if !terminalPunct.MatchString(expl) {
				expl += "."
			}
		}
		questions[i].Explanation = expl
	}
}
