package store

import (
	"sort"
	"sync"

	"github.com/ad/go-wallet-quiz/internal/models"
)

// MemoryStore is an in-memory ResultStore. It backs tests and the
// --no-persist mode of the CLI shell.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[int]bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[int]bool)}
}

func (s *MemoryStore) Upsert(questionID int, isCorrect bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[questionID] = isCorrect
}

func (s *MemoryStore) GetAll() []models.ResultRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.ResultRecord, 0, len(s.records))
	for id, correct := range s.records {
		out = append(out, models.ResultRecord{QuestionID: id, IsCorrect: correct})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].QuestionID < out[j].QuestionID })
	return out
}

func (s *MemoryStore) GetByQuestionID(questionID int) (models.ResultRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	correct, ok := s.records[questionID]
	if !ok {
		return models.ResultRecord{}, false
	}
	return models.ResultRecord{QuestionID: questionID, IsCorrect: correct}, true
}

func (s *MemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = make(map[int]bool)
}
