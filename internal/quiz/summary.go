package quiz

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/ad/go-wallet-quiz/internal/questions"
	"github.com/ad/go-wallet-quiz/internal/store"
)

// Reporter builds the end-of-sequence summary. Its only write path is
// Restart, which wipes the result store.
type Reporter struct {
	repo    *questions.Repository
	results store.ResultStore
}

func NewReporter(repo *questions.Repository, results store.ResultStore) *Reporter {
	return &Reporter{repo: repo, results: results}
}

// ComputeSummary counts correct verdicts against the full sequence length
// and attaches a shareable score line. The share token is cosmetic and
// regenerated on every call; nothing about it is persisted.
func (r *Reporter) ComputeSummary() SummaryProps {
	total := r.repo.Count()
	correct := 0
	for _, rec := range r.results.GetAll() {
		if rec.IsCorrect {
			correct++
		}
	}
	token := uuid.NewString()[:8]
	return SummaryProps{
		Total:     total,
		Correct:   correct,
		ShareText: fmt.Sprintf("Signed safely %d/%d (run %s)", correct, total, token),
	}
}

// Restart clears every stored result and returns the id of the first
// question for the caller to navigate to.
func (r *Reporter) Restart() int {
	r.results.Clear()
	return 1
}
