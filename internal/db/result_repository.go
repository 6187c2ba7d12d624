package db

import (
	"database/sql"
	"log"

	"github.com/ad/go-wallet-quiz/internal/models"
)

// ResultRepository is the sqlite-backed result store. Storage failures are
// logged and absorbed here: readers see an empty store and writers lose the
// record, but the quiz itself keeps running.
type ResultRepository struct {
	queue *Queue
}

func NewResultRepository(queue *Queue) *ResultRepository {
	return &ResultRepository{queue: queue}
}

func (r *ResultRepository) Upsert(questionID int, isCorrect bool) {
	_, err := r.queue.Execute(func(db *sql.DB) (interface{}, error) {
		_, err := db.Exec(`
			INSERT INTO results (question_id, is_correct) VALUES (?, ?)
			ON CONFLICT(question_id) DO UPDATE SET is_correct = excluded.is_correct, answered_at = CURRENT_TIMESTAMP
		`, questionID, isCorrect)
		return nil, err
	})
	if err != nil {
		log.Printf("[RESULT_STORE] Failed to save result for question %d: %v", questionID, err)
	}
}

func (r *ResultRepository) GetAll() []models.ResultRecord {
	result, err := r.queue.Execute(func(db *sql.DB) (interface{}, error) {
		rows, err := db.Query(`SELECT question_id, is_correct FROM results ORDER BY question_id`)
		if err != nil {
			return nil, err
		}
		defer rows.Close()

		var records []models.ResultRecord
		for rows.Next() {
			var rec models.ResultRecord
			if err := rows.Scan(&rec.QuestionID, &rec.IsCorrect); err != nil {
				return nil, err
			}
			records = append(records, rec)
		}
		return records, rows.Err()
	})
	if err != nil {
		log.Printf("[RESULT_STORE] Failed to read results, treating store as empty: %v", err)
		return nil
	}
	records, _ := result.([]models.ResultRecord)
	return records
}

func (r *ResultRepository) GetByQuestionID(questionID int) (models.ResultRecord, bool) {
	// An absent row is a normal outcome, so it maps to a nil result inside
	// the task; only real failures reach the queue's retry path.
	result, err := r.queue.Execute(func(db *sql.DB) (interface{}, error) {
		var rec models.ResultRecord
		err := db.QueryRow(`
			SELECT question_id, is_correct FROM results WHERE question_id = ?
		`, questionID).Scan(&rec.QuestionID, &rec.IsCorrect)
		if err == sql.ErrNoRows {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		return rec, nil
	})
	if err != nil {
		log.Printf("[RESULT_STORE] Failed to read result for question %d: %v", questionID, err)
		return models.ResultRecord{}, false
	}
	rec, ok := result.(models.ResultRecord)
	return rec, ok
}

func (r *ResultRepository) Clear() {
	_, err := r.queue.Execute(func(db *sql.DB) (interface{}, error) {
		_, err := db.Exec(`DELETE FROM results`)
		return nil, err
	})
	if err != nil {
		log.Printf("[RESULT_STORE] Failed to clear results: %v", err)
	}
}
