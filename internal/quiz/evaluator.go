package quiz

import "github.com/ad/go-wallet-quiz/internal/models"

// EvaluateChoice grades a choice submission: correct iff the selected ids and
// the correct ids are equal as sets. Order is irrelevant, duplicates are
// ignored, and there is no partial credit.
func EvaluateChoice(selected, correct []string) bool {
	want := make(map[string]bool, len(correct))
	for _, id := range correct {
		want[id] = true
	}
	got := make(map[string]bool, len(selected))
	for _, id := range selected {
		got[id] = true
	}
	if len(got) != len(want) {
		return false
	}
	for id := range want {
		if !got[id] {
			return false
		}
	}
	return true
}

// EvaluateSignOrReject grades a wallet decision against the expected action.
func EvaluateSignOrReject(action, expected models.WalletAction) bool {
	return action == expected
}
