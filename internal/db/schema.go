package db

import (
	"database/sql"
)

const schema = `
CREATE TABLE IF NOT EXISTS results (
    question_id INTEGER PRIMARY KEY,
    is_correct BOOLEAN NOT NULL,
    answered_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
`

func InitSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
