package extract

import (
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/quizdeck/quizdeck/internal/game"
)

// DefaultQuestionCount is the number of questions a game targets when the
// request does not say otherwise.
const DefaultQuestionCount = 10

// minUsableQuestions is the floor below which extraction output is discarded
// in favour of the backup set.
const minUsableQuestions = 3

// DefaultGameName is used when the source filename reduces to nothing.
const DefaultGameName = "DECA Practice Test"

var pdfSuffix = regexp.MustCompile(`(?i)\.pdf$`)

// IDGen produces unique identifiers for games, questions and options. It
// must be safe for concurrent use.
type IDGen func() string

// Extractor runs the extraction pipeline. Zero-configuration apart from the
// injectable ID generator, which tests replace with a deterministic one.
type Extractor struct {
	ids IDGen
}

// New returns an Extractor. A nil gen means random UUIDs.
func New(gen IDGen) *Extractor {
	if gen == nil {
		gen = uuid.NewString
	}
	return &Extractor{ids: gen}
}

// ExtractQuestions turns a decoded document into at most requested finished
// questions. It never fails: malformed input degrades through the strategy
// cascade down to the backup question set.
func (e *Extractor) ExtractQuestions(doc Document, requested int) []game.Question {
	if requested <= 0 {
		requested = DefaultQuestionCount
	}

	text := Normalize(doc.Text)

	pages := SplitPages(doc)
	log.Printf("extract: %d pages, answer key page index %d", len(pages), FindKeyPage(pages))

	candidates := e.selectCandidates(text, requested)
	log.Printf("extract: selected strategy yielded %d candidate questions", len(candidates))

	answers := extractAnswers(text, len(candidates))
	log.Printf("extract: %d answer records, %d with good explanations",
		len(answers), goodExplanations(answers))

	questions := e.mergeQuestions(candidates, answers)
	normalizeExplanations(questions)

	if len(questions) < minUsableQuestions {
		log.Printf("extract: only %d usable questions, falling back to backup set", len(questions))
		questions = e.BackupQuestions()
	}
	if len(questions) > requested {
		questions = questions[:requested]
	}
	return questions
}

// BuildGame runs the pipeline and wraps the result in a Game named after the
// source file.
func (e *Extractor) BuildGame(doc Document, filename string, requested int) game.Game {
	name := strings.TrimSpace(pdfSuffix.ReplaceAllString(filename, ""))
	if name == "" {
		name = DefaultGameName
	}
	return game.Game{
		ID:        e.ids(),
		Name:      name,
		Questions: e.ExtractQuestions(doc, requested),
		CreatedAt: time.Now().UTC(),
	}
}
