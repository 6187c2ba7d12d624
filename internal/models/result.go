package models

// ResultRecord is the persisted correctness verdict for one question.
// The store keeps at most one record per question id; re-answering
// overwrites the existing record in place.
type ResultRecord struct {
	QuestionID int  `json:"id"`
	IsCorrect  bool `json:"isCorrect"`
}
