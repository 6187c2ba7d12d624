package quiz

import (
	"math"

	"github.com/ad/go-wallet-quiz/internal/models"
	"github.com/ad/go-wallet-quiz/internal/questions"
	"github.com/ad/go-wallet-quiz/internal/store"
)

// Aggregator derives the progress view from the question ordering and the
// stored results. It never writes.
type Aggregator struct {
	repo    *questions.Repository
	results store.ResultStore
}

func NewAggregator(repo *questions.Repository, results store.ResultStore) *Aggregator {
	return &Aggregator{repo: repo, results: results}
}

// ComputeProgress builds the per-question status strip for the given current
// question. A stored verdict is authoritative: the current question shows
// correct/incorrect rather than "current" once it has a record. Exactly one
// entry carries StatusCurrent when currentID is in range and unanswered.
func (a *Aggregator) ComputeProgress(currentID int) ProgressProps {
	total := a.repo.Count()

	verdicts := make(map[int]bool, total)
	for _, rec := range a.results.GetAll() {
		verdicts[rec.QuestionID] = rec.IsCorrect
	}

	statuses := make([]StatusEntry, 0, total)
	for id := 1; id <= total; id++ {
		status := models.StatusUnanswered
		if correct, ok := verdicts[id]; ok {
			if correct {
				status = models.StatusCorrect
			} else {
				status = models.StatusIncorrect
			}
		} else if id == currentID {
			status = models.StatusCurrent
		}
		statuses = append(statuses, StatusEntry{QuestionID: id, Status: status})
	}

	return ProgressProps{
		CurrentQuestion:   currentID,
		TotalQuestions:    total,
		PercentComplete:   percentComplete(currentID, total),
		PerQuestionStatus: statuses,
	}
}

func percentComplete(currentID, total int) int {
	if total == 0 {
		return 0
	}
	pct := int(math.Round(float64(currentID) / float64(total) * 100))
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
