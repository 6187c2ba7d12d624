// Package store defines the result persistence contract shared by the quiz
// engine and its backends. Implementations must swallow storage failures:
// a broken backend degrades to "no prior results", it never aborts the quiz.
package store

import "github.com/ad/go-wallet-quiz/internal/models"

// ResultStore holds at most one ResultRecord per question id.
type ResultStore interface {
	// Upsert records the verdict for a question, overwriting any existing
	// record for the same id. Repeated calls with the same arguments leave
	// the store unchanged.
	Upsert(questionID int, isCorrect bool)
	// GetAll returns all records ordered by question id. An empty or broken
	// store yields an empty slice, never an error.
	GetAll() []models.ResultRecord
	// GetByQuestionID returns the record for one question; the second
	// return is false when no record exists.
	GetByQuestionID(questionID int) (models.ResultRecord, bool)
	// Clear deletes every record.
	Clear()
}
