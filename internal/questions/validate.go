package questions

import (
	"fmt"

	"github.com/ad/go-wallet-quiz/internal/models"
)

// Validate checks the structural invariants of a question sequence: ids are
// 1-based and dense, every question carries at least one feedback page, choice
// questions have a non-empty correct set that is a subset of their option ids
// (exactly one for single choice), and wallet questions carry an expected
// action plus a payload. A bank that fails here is rejected at startup.
func Validate(qs []models.Question) error {
	if len(qs) == 0 {
		return fmt.Errorf("question bank is empty")
	}
	for i, q := range qs {
		if q.ID != i+1 {
			return fmt.Errorf("question at position %d has id %d, expected %d", i, q.ID, i+1)
		}
		if q.Prompt == "" {
			return fmt.Errorf("question %d has no prompt", q.ID)
		}
		if len(q.Feedback) == 0 {
			return fmt.Errorf("question %d has no feedback pages", q.ID)
		}
		switch q.Kind {
		case models.KindChoiceSingle, models.KindChoiceMulti:
			if err := validateChoice(q); err != nil {
				return err
			}
		case models.KindSignOrReject:
			if err := validateSignOrReject(q); err != nil {
				return err
			}
		default:
			return fmt.Errorf("question %d has unknown kind %q", q.ID, q.Kind)
		}
	}
	return nil
}

func validateChoice(q models.Question) error {
	if len(q.Options) < 2 {
		return fmt.Errorf("question %d needs at least two options", q.ID)
	}
	seen := make(map[string]bool, len(q.Options))
	for _, opt := range q.Options {
		if opt.ID == "" {
			return fmt.Errorf("question %d has an option without id", q.ID)
		}
		if seen[opt.ID] {
			return fmt.Errorf("question %d has duplicate option id %q", q.ID, opt.ID)
		}
		seen[opt.ID] = true
	}
	if len(q.CorrectAnswers) == 0 {
		return fmt.Errorf("question %d has no correct answers", q.ID)
	}
	if q.Kind == models.KindChoiceSingle && len(q.CorrectAnswers) != 1 {
		return fmt.Errorf("question %d is single-choice but has %d correct answers", q.ID, len(q.CorrectAnswers))
	}
	for _, id := range q.CorrectAnswers {
		if !seen[id] {
			return fmt.Errorf("question %d lists correct answer %q that is not an option", q.ID, id)
		}
	}
	return nil
}

func validateSignOrReject(q models.Question) error {
	if q.ExpectedAction != models.ActionSign && q.ExpectedAction != models.ActionReject {
		return fmt.Errorf("question %d has invalid expected action %q", q.ID, q.ExpectedAction)
	}
	switch q.WalletKind {
	case models.WalletMetaMask, models.WalletSafe, models.WalletTrezor:
	default:
		return fmt.Errorf("question %d has unknown wallet kind %q", q.ID, q.WalletKind)
	}
	if q.Transaction == nil && q.Signature == nil {
		return fmt.Errorf("question %d has neither a transaction nor a signature payload", q.ID)
	}
	if q.InteractionLabel == "" {
		return fmt.Errorf("question %d has no interaction label", q.ID)
	}
	return nil
}
