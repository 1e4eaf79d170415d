package extract

import (
	"reflect"
	"testing"
)

func TestExtractAnswersScenario(t *testing.T) {
	got := extractAnswers(twoQuestionText, 2)
	want := map[int]AnswerRecord{
		1: {Answer: "B", Explanation: NoExplanation},
		2: {Answer: "C", Explanation: "Basic addition."},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestFindAnswerMatchesUppercasesLetters(t *testing.T) {
	got := findAnswerMatches(answerKeyLine, "3. b\n4. D\n")
	if len(got) != 2 {
		t.Fatalf("got %d matches, want 2", len(got))
	}
	if got[0].questionNumber != 3 || got[0].answer != "B" {
		t.Errorf("first match = %+v", got[0])
	}
	if got[1].questionNumber != 4 || got[1].answer != "D" {
		t.Errorf("second match = %+v", got[1])
	}
}

func TestAnswerKeyLineAtEndOfText(t *testing.T) {
	got := findAnswerMatches(answerKeyLine, "1. B\n2. C")
	if len(got) != 2 {
		t.Fatalf("got %d matches, want 2 (last line has no trailing separator)", len(got))
	}
}

func TestRepairContinuity(t *testing.T) {
	got := repairContinuity("liabi\nlity\n\n\nends.Next")
	want := "liabi lity\nends. Next"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPrimaryAnswersExplicitMarkers(t *testing.T) {
	text := "12. B\nExplanation: The first rule applies to every contract made.\n" +
		"13. C\nExplanation: Partnerships share liability between all partners."
	got := primaryAnswers(text)
	if rec := got[12]; rec.Answer != "B" || rec.Explanation != "The first rule applies to every contract made." {
		t.Errorf("record 12 = %+v", rec)
	}
	if rec := got[13]; rec.Answer != "C" || rec.Explanation != "Partnerships share liability between all partners." {
		t.Errorf("record 13 = %+v", rec)
	}
}

func TestSectionExplanations(t *testing.T) {
	text := "1. B\nExplanation: First answer because of gravity.\n" +
		"2. C\nExplanation: Second answer because of magnetism."
	got := sectionExplanations(text)
	if got[1] != "First answer because of gravity." {
		t.Errorf("section 1 = %q", got[1])
	}
	if got[2] != "Second answer because of magnetism." {
		t.Errorf("section 2 = %q", got[2])
	}
}

func TestExplanationBoundaries(t *testing.T) {
	text := "5. A Explanation: Gravity pulls things down always.\n" +
		"6. B Explanation: Magnets attract iron strongly."
	got := explanationBoundaries(text)
	if len(got) != 2 {
		t.Fatalf("got %d spans, want 2: %+v", len(got), got)
	}
	first := text[got[5].start:got[5].end]
	if want := "Gravity pulls things down always."; len(first) < len(want) || first[:len(want)] != want {
		t.Errorf("span 5 = %q", first)
	}
	second := text[got[6].start:got[6].end]
	if second != "Magnets attract iron strongly." {
		t.Errorf("span 6 = %q", second)
	}
}

func TestMergeAnswerMaps(t *testing.T) {
	existing := map[int]AnswerRecord{
		1: {Answer: "B", Explanation: "short"},
		2: {Answer: "C", Explanation: NoExplanation},
		3: {Answer: "", Explanation: "kept text"},
	}
	incoming := map[int]AnswerRecord{
		1: {Answer: "D", Explanation: "a much longer explanation"},
		2: {Answer: "A", Explanation: "real text"},
		3: {Answer: "D", Explanation: NoExplanation},
		4: {Answer: "A", Explanation: "brand new"},
	}
	got := mergeAnswerMaps(existing, incoming)

	if rec := got[1]; rec.Answer != "B" || rec.Explanation != "a much longer explanation" {
		t.Errorf("record 1 = %+v (answer must not be overwritten, longer explanation wins)", rec)
	}
	if rec := got[2]; rec.Answer != "C" || rec.Explanation != "real text" {
		t.Errorf("record 2 = %+v (sentinel must lose to real text)", rec)
	}
	if rec := got[3]; rec.Answer != "D" || rec.Explanation != "kept text" {
		t.Errorf("record 3 = %+v (empty answer filled, sentinel must not replace text)", rec)
	}
	if rec := got[4]; rec.Answer != "A" || rec.Explanation != "brand new" {
		t.Errorf("record 4 = %+v (new numbers inserted as-is)", rec)
	}

	// Inputs untouched.
	if existing[1].Explanation != "short" || incoming[1].Answer != "D" {
		t.Error("mergeAnswerMaps mutated its inputs")
	}
}

func TestGuessAnswer(t *testing.T) {
	if got := guessAnswer(nil); got != "A" {
		t.Errorf("empty map: got %q, want A", got)
	}
	answers := map[int]AnswerRecord{
		1: {Answer: "C"}, 2: {Answer: "C"}, 3: {Answer: "B"},
	}
	if got := guessAnswer(answers); got != "C" {
		t.Errorf("majority: got %q, want C", got)
	}
	tied := map[int]AnswerRecord{1: {Answer: "D"}, 2: {Answer: "B"}}
	if got := guessAnswer(tied); got != "B" {
		t.Errorf("tie: got %q, want B (letter order)", got)
	}
}

func TestGoodExplanations(t *testing.T) {
	answers := map[int]AnswerRecord{
		1: {Explanation: NoExplanation},
		2: {Explanation: "short"},
		3: {Explanation: "long enough to count as a real explanation"},
	}
	if got := goodExplanations(answers); got != 1 {
		t.Errorf("got %d, want 1", got)
	}
}

func TestExplLenTreatsSentinelAsEmpty(t *testing.T) {
	if explLen(NoExplanation) != 0 {
		t.Error("sentinel must count as zero length")
	}
	if explLen("ab") != 2 {
		t.Error("real text must keep its length")
	}
}
