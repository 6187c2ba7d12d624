package quiz

import "errors"

var (
	// ErrInvalidSubmission marks an answer action that is not legal in the
	// current state: empty selection, re-submitting without a retry,
	// resolving a wallet action with no dialog open. The session state is
	// unchanged when it is returned.
	ErrInvalidSubmission = errors.New("invalid submission")
	// ErrNavigationBlocked is returned by GoNext on an unanswered question
	// and by GoPrev on the first one.
	ErrNavigationBlocked = errors.New("navigation blocked")
)
