package extract

import (
	"fmt"
	"testing"
)

const twoQuestionText = "1. What is 2+2?\nA. 3\nB. 4\nC. 5\nD. 6\n" +
	"2. What is 3+3?\nA. 5\nB. 6\nC. 7\nD. 8\n" +
	"Explanation: Basic addition.\n1. B\n2. C"

func seqIDs() IDGen {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%04d", n)
	}
}

func TestPrimaryQuestions(t *testing.T) {
	e := New(seqIDs())
	got := e.primaryQuestions(twoQuestionText)
	if len(got) != 2 {
		t.Fatalf("got %d candidates, want 2: %+v", len(got), got)
	}
	if got[0].QuestionNumber != 1 || got[0].Text != "What is 2+2?" {
		t.Errorf("first candidate = %+v", got[0])
	}
	if got[1].QuestionNumber != 2 || got[1].Text != "What is 3+3?" {
		t.Errorf("second candidate = %+v", got[1])
	}
	for _, c := range got {
		if len(c.Options) != 4 {
			t.Fatalf("question %d has %d options, want 4", c.QuestionNumber, len(c.Options))
		}
	}
	labels := []string{"A", "B", "C", "D"}
	texts := []string{"3", "4", "5", "6"}
	for i, o := range got[0].Options {
		if o.Label != labels[i] || o.Text != texts[i] {
			t.Errorf("option %d = %+v", i, o)
		}
		if o.ID == "" {
			t.Errorf("option %d has no ID", i)
		}
	}
}

// The answer-key lines at the end of the document match the numbered-question
// pattern but have no option block, so the strict strategy must not emit them
// as candidates.
func TestPrimaryQuestionsSkipsAnswerKeyLines(t *testing.T) {
	e := New(seqIDs())
	for _, c := range e.primaryQuestions(twoQuestionText) {
		if c.Text == "B" || c.Text == "C" {
			t.Errorf("answer-key line emitted as candidate: %+v", c)
		}
	}
}

func TestAlternativeQuestionsJoinsContinuations(t *testing.T) {
	text := "1. What is the capital\nof France?\n" +
		"A. Paris, the largest\ncity\n" +
		"B. London\nC. Berlin\nD. Madrid"
	e := New(seqIDs())
	got := e.alternativeQuestions(text)
	if len(got) != 1 {
		t.Fatalf("got %d candidates, want 1", len(got))
	}
	if got[0].Text != "What is the capital of France?" {
		t.Errorf("question text = %q", got[0].Text)
	}
	if len(got[0].Options) != 4 {
		t.Fatalf("got %d options, want 4", len(got[0].Options))
	}
	if got[0].Options[0].Text != "Paris, the largest city" {
		t.Errorf("continuation option = %q", got[0].Options[0].Text)
	}
}

func TestAlternativeQuestionsRequireOptions(t *testing.T) {
	e := New(seqIDs())
	got := e.alternativeQuestions("1. A question with no options at all\nsome trailing prose")
	if len(got) != 0 {
		t.Errorf("got %d candidates, want 0", len(got))
	}
}

func TestLastResortQuestionsNeedTwoOptions(t *testing.T) {
	text := "intro prose\n" +
		"7. First loose question text\nA. one\nB. two\n" +
		"8. Second loose question text\nA. only\n" +
		"9. Third loose question text\nC. three\nD. four\n"
	e := New(seqIDs())
	got := e.lastResortQuestions(text)
	if len(got) != 2 {
		t.Fatalf("got %d candidates, want 2: %+v", len(got), got)
	}
	if got[0].QuestionNumber != 7 || got[1].QuestionNumber != 9 {
		t.Errorf("numbers = %d, %d", got[0].QuestionNumber, got[1].QuestionNumber)
	}
}

func TestSelectCandidatesEscalates(t *testing.T) {
	// Question text wrapped across lines defeats the strict strategy but not
	// the line-oriented one.
	text := "1. What is\n2+2?\nA. 3\nB. 4\n" +
		"2. What is\n3+3?\nA. 5\nB. 6\n"
	e := New(seqIDs())
	got := e.selectCandidates(text, 2)
	if len(got) != 2 {
		t.Fatalf("got %d candidates, want 2", len(got))
	}
	if got[0].Text != "What is 2+2?" {
		t.Errorf("first question text = %q", got[0].Text)
	}
}
