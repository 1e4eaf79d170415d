package game

import "time"

// Option is a single answer choice belonging to a question.
type Option struct {
	ID    string `json:"id"`
	Label string `json:"label"` // A, B, C or D
	Text  string `json:"text"`
}

// Question is a fully merged quiz question: extracted text and options plus the
// correct-answer letter and explanation recovered from the answer key.
type Question struct {
	ID             string   `json:"id"`
	QuestionNumber int      `json:"question_number"`
	Text           string   `json:"text"`
	Options        []Option `json:"options"`
	CorrectAnswer  string   `json:"correct_answer"` // A, B, C or D
	Explanation    string   `json:"explanation"`
}

// Game is one playable quiz built from a single uploaded document.
type Game struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Questions []Question `json:"questions"`
	CreatedAt time.Time  `json:"created_at"`
}

// GameSummary is the listing view of a game (no question payload).
type GameSummary struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	QuestionCount int       `json:"question_count"`
	CreatedAt     time.Time `json:"created_at"`
}
