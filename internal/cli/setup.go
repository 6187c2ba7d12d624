package cli

import (
	"database/sql"
	"log"

	_ "modernc.org/sqlite"

	"github.com/ad/go-wallet-quiz/internal/config"
	"github.com/ad/go-wallet-quiz/internal/db"
	"github.com/ad/go-wallet-quiz/internal/questions"
	"github.com/ad/go-wallet-quiz/internal/store"
)

// env is the wired-up engine: the question repository plus a result store.
type env struct {
	repo    *questions.Repository
	results store.ResultStore
	close   func()
}

// setup loads config, builds the question repository and opens the result
// store. A sqlite store that cannot be opened degrades to in-memory with a
// logged notice; a broken question bank is fatal, there is nothing to quiz.
func setup() (*env, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if dbPath != "" {
		cfg.DBPath = dbPath
	}
	if questionsPath != "" {
		cfg.QuestionsPath = questionsPath
	}

	var repo *questions.Repository
	if cfg.QuestionsPath != "" {
		repo, err = questions.NewRepositoryFromFile(cfg.QuestionsPath)
	} else {
		repo, err = questions.NewRepository()
	}
	if err != nil {
		return nil, err
	}

	if noPersist || cfg.DBPath == "" {
		return &env{repo: repo, results: store.NewMemoryStore(), close: func() {}}, nil
	}

	sqlDB, err := sql.Open("sqlite", cfg.DBPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err == nil {
		err = db.InitSchema(sqlDB)
	}
	if err != nil {
		log.Printf("[RESULT_STORE] Cannot open %s, progress will not be saved: %v", cfg.DBPath, err)
		if sqlDB != nil {
			sqlDB.Close()
		}
		return &env{repo: repo, results: store.NewMemoryStore(), close: func() {}}, nil
	}

	queue := db.NewQueue(sqlDB)
	return &env{
		repo:    repo,
		results: db.NewResultRepository(queue),
		close: func() {
			queue.Close()
			sqlDB.Close()
		},
	}, nil
}
