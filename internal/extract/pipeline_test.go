package extract_test

import (
	"fmt"
	"testing"

	"github.com/quizdeck/quizdeck/internal/extract"
)

func countingIDs() extract.IDGen {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%04d", n)
	}
}

const threeQuestionDoc = "1. What is 2+2?\nA. 3\nB. 4\nC. 5\nD. 6\n" +
	"2. What is 3+3?\nA. 5\nB. 6\nC. 7\nD. 8\n" +
	"3. What is 5+5?\nA. 9\nB. 10\nC. 11\nD. 12\n" +
	"Explanation: Basic addition.\n1. B\n2. C\n3. B"

func TestExtractQuestionsFullDocument(t *testing.T) {
	e := extract.New(countingIDs())
	got := e.ExtractQuestions(extract.Document{Text: threeQuestionDoc, NumPages: 1}, 3)
	if len(got) != 3 {
		t.Fatalf("got %d questions, want 3", len(got))
	}
	wantAnswers := []string{"B", "C", "B"}
	for i, q := range got {
		if q.QuestionNumber != i+1 {
			t.Errorf("question %d has number %d", i, q.QuestionNumber)
		}
		if q.CorrectAnswer != wantAnswers[i] {
			t.Errorf("question %d answer = %q, want %q", i+1, q.CorrectAnswer, wantAnswers[i])
		}
		if len(q.Options) != 4 {
			t.Errorf("question %d has %d options", i+1, len(q.Options))
		}
		if q.Explanation == "" {
			t.Errorf("question %d has empty explanation", i+1)
		}
	}
	if got[2].Explanation != "Basic addition." {
		t.Errorf("question 3 explanation = %q", got[2].Explanation)
	}
}

func TestExtractQuestionsFallsBackToBackup(t *testing.T) {
	// Two extractable questions is below the usability floor.
	doc := extract.Document{
		Text: "1. What is 2+2?\nA. 3\nB. 4\nC. 5\nD. 6\n" +
			"2. What is 3+3?\nA. 5\nB. 6\nC. 7\nD. 8\n" +
			"Explanation: Basic addition.\n1. B\n2. C",
		NumPages: 1,
	}
	e := extract.New(countingIDs())
	got := e.ExtractQuestions(doc, 5)
	backup := extract.New(countingIDs()).BackupQuestions()
	if len(got) != len(backup) {
		t.Fatalf("got %d questions, want the %d backup questions", len(got), len(backup))
	}
	for i := range got {
		if got[i].Text != backup[i].Text || got[i].CorrectAnswer != backup[i].CorrectAnswer {
			t.Errorf("question %d differs from backup set: %+v", i+1, got[i])
		}
	}
}

func TestExtractQuestionsTruncatesToRequested(t *testing.T) {
	e := extract.New(countingIDs())
	got := e.ExtractQuestions(extract.Document{Text: "no questions in here", NumPages: 1}, 2)
	if len(got) != 2 {
		t.Fatalf("got %d questions, want 2", len(got))
	}
	if got[0].QuestionNumber != 1 || got[1].QuestionNumber != 2 {
		t.Errorf("numbers = %d, %d", got[0].QuestionNumber, got[1].QuestionNumber)
	}
}

func TestBackupQuestionsShape(t *testing.T) {
	qs := extract.New(countingIDs()).BackupQuestions()
	if len(qs) != 5 {
		t.Fatalf("got %d backup questions, want 5", len(qs))
	}
	wantAnswers := []string{"D", "B", "A", "C", "D"}
	seen := map[string]bool{}
	for i, q := range qs {
		if q.QuestionNumber != i+1 {
			t.Errorf("question %d has number %d", i, q.QuestionNumber)
		}
		if q.CorrectAnswer != wantAnswers[i] {
			t.Errorf("question %d answer = %q, want %q", i+1, q.CorrectAnswer, wantAnswers[i])
		}
		if len(q.Options) != 4 {
			t.Errorf("question %d has %d options", i+1, len(q.Options))
		}
		if q.Explanation == "" {
			t.Errorf("question %d has no explanation", i+1)
		}
		if seen[q.ID] {
			t.Errorf("duplicate ID %q", q.ID)
		}
		seen[q.ID] = true
	}
}

func TestBuildGameName(t *testing.T) {
	e := extract.New(countingIDs())
	doc := extract.Document{Text: threeQuestionDoc, NumPages: 1}

	g := e.BuildGame(doc, "Finance Cluster Exam.PDF", 3)
	if g.Name != "Finance Cluster Exam" {
		t.Errorf("name = %q", g.Name)
	}
	if g.ID == "" {
		t.Error("game has no ID")
	}
	if g.CreatedAt.IsZero() {
		t.Error("game has no creation time")
	}
	if len(g.Questions) != 3 {
		t.Errorf("got %d questions", len(g.Questions))
	}

	if g := e.BuildGame(doc, ".pdf", 3); g.Name != "DECA Practice Test" {
		t.Errorf("fallback name = %q", g.Name)
	}
}
