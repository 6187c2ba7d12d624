package db

import (
	"database/sql"
	"time"
)

type task struct {
	exec func(*sql.DB) (interface{}, error)
	resp chan taskResult
}

type taskResult struct {
	data interface{}
	err  error
}

// Queue serializes all access to the sqlite handle through a single worker
// goroutine, with bounded retry on failure. sqlite tolerates one writer at a
// time; funneling every operation through here keeps the callers simple.
type Queue struct {
	tasks      chan task
	db         *sql.DB
	maxRetry   int
	retryDelay time.Duration
	linearWait bool
}

func NewQueue(db *sql.DB) *Queue {
	q := &Queue{
		tasks:      make(chan task, 64),
		db:         db,
		maxRetry:   3,
		retryDelay: 100 * time.Millisecond,
	}
	go q.worker()
	return q
}

// NewQueueForTest uses a minimal retry delay so failing tests finish fast.
func NewQueueForTest(db *sql.DB) *Queue {
	q := &Queue{
		tasks:      make(chan task, 64),
		db:         db,
		maxRetry:   3,
		retryDelay: time.Millisecond,
		linearWait: true,
	}
	go q.worker()
	return q
}

func (q *Queue) Execute(exec func(*sql.DB) (interface{}, error)) (interface{}, error) {
	resp := make(chan taskResult, 1)
	q.tasks <- task{exec: exec, resp: resp}
	result := <-resp
	return result.data, result.err
}

func (q *Queue) worker() {
	for t := range q.tasks {
		t.resp <- q.runWithRetry(t)
	}
}

func (q *Queue) runWithRetry(t task) taskResult {
	var lastErr error
	for attempt := 0; attempt < q.maxRetry; attempt++ {
		data, err := t.exec(q.db)
		if err == nil {
			return taskResult{data: data}
		}
		lastErr = err
		if attempt < q.maxRetry-1 {
			if q.linearWait {
				time.Sleep(q.retryDelay)
			} else {
				time.Sleep(time.Duration(attempt+1) * q.retryDelay)
			}
		}
	}
	return taskResult{err: lastErr}
}

func (q *Queue) Close() {
	close(q.tasks)
}
