package questions

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/ad/go-wallet-quiz/internal/models"
	"gopkg.in/yaml.v3"
)

//go:embed bank.yaml
var embeddedBank []byte

var ErrQuestionNotFound = errors.New("question not found")

// Repository is the static, ordered question sequence. It is immutable after
// load; all lookups are side-effect free.
type Repository struct {
	questions []models.Question
}

// NewRepository loads the embedded question bank.
func NewRepository() (*Repository, error) {
	return load(embeddedBank)
}

// NewRepositoryFromFile loads a question bank from an external YAML file,
// overriding the embedded one.
func NewRepositoryFromFile(path string) (*Repository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read question bank: %w", err)
	}
	return load(data)
}

// NewRepositoryFromQuestions builds a repository from already-parsed
// questions. Used by tests and the validate command.
func NewRepositoryFromQuestions(qs []models.Question) (*Repository, error) {
	if err := Validate(qs); err != nil {
		return nil, err
	}
	cp := make([]models.Question, len(qs))
	copy(cp, qs)
	return &Repository{questions: cp}, nil
}

func load(data []byte) (*Repository, error) {
	var bank struct {
		Questions []models.Question `yaml:"questions"`
	}
	if err := yaml.Unmarshal(data, &bank); err != nil {
		return nil, fmt.Errorf("failed to parse question bank: %w", err)
	}
	if err := Validate(bank.Questions); err != nil {
		return nil, err
	}
	return &Repository{questions: bank.Questions}, nil
}

// Count returns the sequence length N; ids run 1..N.
func (r *Repository) Count() int {
	return len(r.questions)
}

// GetByID returns the question with the given id, or ErrQuestionNotFound
// when id is outside 1..Count().
func (r *Repository) GetByID(id int) (models.Question, error) {
	if id < 1 || id > len(r.questions) {
		return models.Question{}, fmt.Errorf("%w: id %d", ErrQuestionNotFound, id)
	}
	return r.questions[id-1], nil
}

// GetNextID returns the id after the given one. The second return is false
// when id is the last question or out of range.
func (r *Repository) GetNextID(id int) (int, bool) {
	if id < 1 || id >= len(r.questions) {
		return 0, false
	}
	return id + 1, true
}

// GetPrevID returns the id before the given one. The second return is false
// when id is the first question or out of range.
func (r *Repository) GetPrevID(id int) (int, bool) {
	if id <= 1 || id > len(r.questions) {
		return 0, false
	}
	return id - 1, true
}

// All returns a copy of the full sequence in order.
func (r *Repository) All() []models.Question {
	cp := make([]models.Question, len(r.questions))
	copy(cp, r.questions)
	return cp
}
