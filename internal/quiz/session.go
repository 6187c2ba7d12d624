package quiz

import (
	"github.com/ad/go-wallet-quiz/internal/models"
	"github.com/ad/go-wallet-quiz/internal/questions"
	"github.com/ad/go-wallet-quiz/internal/store"
)

// Session is the per-question state machine. It owns the in-progress answer
// state for the question currently on screen and is the only writer to the
// result store. A question moves Unanswered -> Answered on submission; Retry
// re-opens a choice question for another submission without touching the
// stored verdict.
//
// All methods run synchronously on the caller's goroutine; the quiz is a
// single-user, event-at-a-time flow and the Session is not safe for
// concurrent use.
type Session struct {
	repo    *questions.Repository
	results store.ResultStore

	question models.Question

	hasAnswered bool
	isCorrect   bool
	retrying    bool

	feedbackVisible   bool
	feedbackPageIndex int

	selected   []string
	dialogOpen bool

	pendingExplanation string
}

// NewSession mounts the question with the given id.
func NewSession(repo *questions.Repository, results store.ResultStore, startID int) (*Session, error) {
	s := &Session{repo: repo, results: results}
	if err := s.Show(startID); err != nil {
		return nil, err
	}
	return s, nil
}

// Show switches the session to the question with the given id. Per-visit
// state (selection, dialog, feedback visibility and page) always resets;
// hasAnswered/isCorrect are re-derived from the result store, so a previously
// answered question shows its stored verdict without re-opening feedback.
// Returns questions.ErrQuestionNotFound for an out-of-range id, leaving the
// session on the question it was already showing.
func (s *Session) Show(id int) error {
	q, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	s.question = q
	s.selected = nil
	s.retrying = false
	s.dialogOpen = false
	s.pendingExplanation = ""
	s.feedbackVisible = false
	s.feedbackPageIndex = 0
	if rec, ok := s.results.GetByQuestionID(id); ok {
		s.hasAnswered = true
		s.isCorrect = rec.IsCorrect
	} else {
		s.hasAnswered = false
		s.isCorrect = false
	}
	return nil
}

// Question returns the question currently on screen.
func (s *Session) Question() models.Question {
	return s.question
}

// ToggleOption flips one option in the in-progress selection. For a
// single-choice question, selecting an option replaces any previous pick.
// Legal only while the question accepts a submission.
func (s *Session) ToggleOption(optionID string) error {
	if !s.canSubmitChoice() || !s.question.HasOption(optionID) {
		return ErrInvalidSubmission
	}
	for i, id := range s.selected {
		if id == optionID {
			s.selected = append(s.selected[:i], s.selected[i+1:]...)
			return nil
		}
	}
	if s.question.Kind == models.KindChoiceSingle {
		s.selected = s.selected[:0]
	}
	s.selected = append(s.selected, optionID)
	return nil
}

// SubmitChoice grades an explicit selection. Legal only for choice questions
// that are unanswered or in retry, and only with a non-empty selection; in
// every other state it is a no-op returning ErrInvalidSubmission.
func (s *Session) SubmitChoice(selectedIDs []string) error {
	if !s.canSubmitChoice() || len(selectedIDs) == 0 {
		return ErrInvalidSubmission
	}
	correct := EvaluateChoice(selectedIDs, s.question.CorrectAnswers)
	s.selected = append([]string(nil), selectedIDs...)
	s.hasAnswered = true
	s.isCorrect = correct
	s.retrying = false
	s.feedbackVisible = true
	s.feedbackPageIndex = 0
	s.results.Upsert(s.question.ID, correct)
	return nil
}

// Submit grades the selection accumulated through ToggleOption.
func (s *Session) Submit() error {
	return s.SubmitChoice(s.selected)
}

func (s *Session) canSubmitChoice() bool {
	if !s.question.IsChoice() {
		return false
	}
	return !s.hasAnswered || s.retrying
}

// OpenWalletDialog opens the simulated wallet confirmation for a
// sign-or-reject question. Reopening after an answer is allowed: each
// resolved action re-grades and overwrites the stored record.
func (s *Session) OpenWalletDialog() error {
	if s.question.Kind != models.KindSignOrReject {
		return ErrInvalidSubmission
	}
	s.dialogOpen = true
	return nil
}

// CloseWalletDialog discards a pending wallet interaction without grading.
func (s *Session) CloseWalletDialog() {
	s.dialogOpen = false
}

// ResolveWalletAction closes the dialog and grades the user's decision.
// Legal only while the dialog is open. An incorrect answer on a question
// with a wrong-answer explanation arms the one-shot explanation modal.
func (s *Session) ResolveWalletAction(action models.WalletAction) error {
	if s.question.Kind != models.KindSignOrReject || !s.dialogOpen {
		return ErrInvalidSubmission
	}
	if action != models.ActionSign && action != models.ActionReject {
		return ErrInvalidSubmission
	}
	s.dialogOpen = false
	correct := EvaluateSignOrReject(action, s.question.ExpectedAction)
	s.hasAnswered = true
	s.isCorrect = correct
	s.feedbackVisible = true
	s.feedbackPageIndex = 0
	if !correct && s.question.WrongAnswerExplanation != "" {
		s.pendingExplanation = s.question.WrongAnswerExplanation
	}
	s.results.Upsert(s.question.ID, correct)
	return nil
}

// TakeWrongAnswerExplanation pops the armed explanation, if any. The second
// call after a wrong answer returns false: the modal shows once.
func (s *Session) TakeWrongAnswerExplanation() (string, bool) {
	if s.pendingExplanation == "" {
		return "", false
	}
	text := s.pendingExplanation
	s.pendingExplanation = ""
	return text, true
}

// Retry re-opens an answered choice question for another submission. The
// stored record is kept: navigating away mid-retry still shows the previous
// verdict. Sign-or-reject questions have no retry; reopening the dialog
// replaces the prior action instead.
func (s *Session) Retry() error {
	if !s.question.IsChoice() || !s.hasAnswered {
		return ErrInvalidSubmission
	}
	s.retrying = true
	s.selected = nil
	s.feedbackVisible = false
	s.feedbackPageIndex = 0
	return nil
}

// NextFeedbackPage advances the feedback pager, clamped at the last page.
func (s *Session) NextFeedbackPage() {
	if s.feedbackPageIndex < len(s.question.Feedback)-1 {
		s.feedbackPageIndex++
	}
}

// PrevFeedbackPage steps the feedback pager back, clamped at zero.
func (s *Session) PrevFeedbackPage() {
	if s.feedbackPageIndex > 0 {
		s.feedbackPageIndex--
	}
}

// GoNext moves forward. It is gated: an unanswered question blocks forward
// navigation. On the last question it returns done=true and the caller
// routes to the summary instead of a question.
func (s *Session) GoNext() (nextID int, done bool, err error) {
	if !s.hasAnswered {
		return 0, false, ErrNavigationBlocked
	}
	next, ok := s.repo.GetNextID(s.question.ID)
	if !ok {
		return 0, true, nil
	}
	return next, false, s.Show(next)
}

// GoPrev moves back one question; blocked only on the first question.
func (s *Session) GoPrev() (int, error) {
	prev, ok := s.repo.GetPrevID(s.question.ID)
	if !ok {
		return 0, ErrNavigationBlocked
	}
	return prev, s.Show(prev)
}

// Props snapshots the session for the rendering shell. During a retry the
// question presents as unanswered so the shell re-enables the answer form,
// even though the stored verdict still stands.
func (s *Session) Props() QuestionProps {
	return QuestionProps{
		QuestionNumber:    s.question.ID,
		TotalQuestions:    s.repo.Count(),
		Kind:              s.question.Kind,
		Prompt:            s.question.Prompt,
		Context:           s.question.Context,
		Options:           s.question.Options,
		SelectedOptionIDs: append([]string(nil), s.selected...),
		InteractionLabel:  s.question.InteractionLabel,
		WalletKind:        s.question.WalletKind,
		SimulatedSiteKind: s.question.SimulatedSiteKind,
		Transaction:       s.question.Transaction,
		Signature:         s.question.Signature,
		WalletDialogOpen:  s.dialogOpen,
		HasAnswered:       s.hasAnswered && !s.retrying,
		IsCorrect:         s.isCorrect,
		FeedbackVisible:   s.feedbackVisible,
		FeedbackPageIndex: s.feedbackPageIndex,
		FeedbackPages:     s.question.Feedback,
	}
}
