// Package extract recovers multiple-choice questions, answer keys and
// explanations from the unstructured plain text of a decoded practice-exam
// PDF.
//
// The pipeline is a cascade of heuristic passes: normalize the text, run up
// to three question-extraction strategies of escalating permissiveness, run a
// cascade of answer/explanation extractors, then merge the two sides by
// question number. Every stage degrades instead of failing; the hardcoded
// backup question set is the last safety net. Each invocation is a pure
// function of its input text apart from unique-ID generation, so documents
// can be processed concurrently without coordination.
package extract
