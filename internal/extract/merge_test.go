package extract

import (
	"testing"

	"github.com/quizdeck/quizdeck/internal/game"
)

func TestMergeQuestionsSortsAndDefaults(t *testing.T) {
	e := New(seqIDs())
	candidates := []Candidate{
		{ID: "c3", QuestionNumber: 3, Text: "Third?", Options: []game.Option{{Label: "A"}}},
		{ID: "c1", QuestionNumber: 1, Text: "First?", Options: []game.Option{{Label: "A"}}},
		{QuestionNumber: 0, Text: "bogus"},
	}
	answers := map[int]AnswerRecord{
		1: {Answer: "B", Explanation: "Because of gravity."},
	}
	got := e.mergeQuestions(candidates, answers)
	if len(got) != 2 {
		t.Fatalf("got %d questions, want 2 (number 0 dropped)", len(got))
	}
	if got[0].QuestionNumber != 1 || got[1].QuestionNumber != 3 {
		t.Errorf("order = %d, %d", got[0].QuestionNumber, got[1].QuestionNumber)
	}
	if got[0].CorrectAnswer != "B" || got[0].Explanation != "Because of gravity." {
		t.Errorf("matched question = %+v", got[0])
	}
	// No record for 3: majority vote over known answers, sentinel explanation.
	if got[1].CorrectAnswer != "B" {
		t.Errorf("unmatched answer = %q, want B", got[1].CorrectAnswer)
	}
	if got[1].Explanation != MissingExplanation {
		t.Errorf("unmatched explanation = %q", got[1].Explanation)
	}
}

func TestMergeQuestionsFillsMissingFields(t *testing.T) {
	e := New(seqIDs())
	got := e.mergeQuestions([]Candidate{{QuestionNumber: 7}}, nil)
	if len(got) != 1 {
		t.Fatalf("got %d questions", len(got))
	}
	q := got[0]
	if q.ID == "" {
		t.Error("missing ID not generated")
	}
	if q.Text != "Question 7" {
		t.Errorf("text = %q", q.Text)
	}
	if q.Options == nil {
		t.Error("options must be an empty slice, not nil")
	}
	if q.CorrectAnswer != "A" {
		t.Errorf("answer = %q, want default A", q.CorrectAnswer)
	}
}

func TestNormalizeExplanationsFormatting(t *testing.T) {
	qs := []game.Question{
		{Explanation: "  it   works because\nof gravity  "},
		{Explanation: "already terminal!"},
		{Explanation: NoExplanation},
		{Explanation: ""},
	}
	normalizeExplanations(qs)
	if qs[0].Explanation != "It works because of gravity." {
		t.Errorf("got %q", qs[0].Explanation)
	}
	if qs[1].Explanation != "Already terminal!" {
		t.Errorf("got %q", qs[1].Explanation)
	}
	if qs[2].Explanation != NoExplanation {
		t.Errorf("sentinel changed: %q", qs[2].Explanation)
	}
	if qs[3].Explanation != "" {
		t.Errorf("empty changed: %q", qs[3].Explanation)
	}
}
