package extract

import "github.com/quizdeck/quizdeck/internal/game"

// BackupQuestions returns the fixed fallback question set: five real DECA
// finance-exam questions, used when extraction yields too few usable
// questions to make a playable quiz. Deterministic apart from the generated
// IDs.
func (e *Extractor) BackupQuestions() []game.Question {
	opts := func(a, b, c, d string) []game.Option {
		return []game.Option{
			{ID: e.ids(), Label: "A", Text: a},
			{ID: e.ids(), Label: "B", Text: b},
			{ID: e.ids(), Label: "C", Text: c},
			{ID: e.ids(), Label: "D", Text: d},
		}
	}
	return []game.Question{
		{
			ID:             e.ids(),
			QuestionNumber: 1,
			Text:           "Which of the following is a characteristic of a legally binding contract:",
			Options: opts(
				"The contract must be written and signed.",
				"One of the parties must be in agreement.",
				"The contract must include an expiration date.",
				"Something of value must be exchanged.",
			),
			CorrectAnswer: "D",
			Explanation:   "Something of value must be exchanged. A legally binding contract must meet two requirements: something of value must be exchanged, and both parties must be in agreement with the terms of the contract.",
		},
		{
			ID:             e.ids(),
			QuestionNumber: 2,
			Text:           "Chris purchased 500 shares of microcap HRR stock. Then, he posted false information about HRR on several investment websites to hype up the stock. After driving up the price of HRR stock, Chris quickly sold all of his stock in the company and earned a large profit. The price of the stock then fell, leaving HRR investors with worthless stock. What type of investment scam did Chris commit?",
			Options: opts(
				"Ponzi scheme",
				"Pump and dump",
				"Pyramid scheme",
				"Phishing",
			),
			CorrectAnswer: "B",
			Explanation:   "Pump and dump. Pump and dump is an investment scam that takes place mostly online. It typically involves scammers who buy a small stock and then hype it up to other investors, causing its price to rise. The scammers sell when the price is high, leaving the victims to deal with the rapid price decline afterwards.",
		},
		{
			ID:             e.ids(),
			QuestionNumber: 3,
			Text:           "The tendency to respond to situations based on how those situations are posed or viewed is known as",
			Options: opts(
				"framing.",
				"obedience to authority.",
				"groupthink.",
				"overoptimism and overconfidence.",
			),
			CorrectAnswer: "A",
			Explanation:   "Framing. Framing is the tendency to respond to situations based on how those situations are posed or viewed.",
		},
		{
			ID:             e.ids(),
			QuestionNumber: 4,
			Text:           "Colin bought 35 shares of stock at $23.50 per share and recently sold all of the stock for $53.00 per share. What type of tax will Colin pay?",
			Options: opts(
				"Sales",
				"Excise",
				"Capital gains",
				"Gift",
			),
			CorrectAnswer: "C",
			Explanation:   "Capital gains. When investments such as stocks, bonds, and real estate are sold at a profit, the stockholder may be required to pay a capital gains tax. A capital gain is the difference between the purchase price and sales price of an asset (e.g., stock).",
		},
		{
			ID:             e.ids(),
			QuestionNumber: 5,
			Text:           "What is an advantage of setting ideal standards?",
			Options: opts(
				"Reduce the frustration associated with easily attainable goals",
				"Allocate time for rework when errors occur",
				"Recognize that errors can occur in production",
				"Provide a lofty goal for employees to strive for",
			),
			CorrectAnswer: "D",
			Explanation:   "Provide a lofty goal for employees to strive for. Ideal standards are those that can be reached only if everything works perfectly.",
		},
	}
}
