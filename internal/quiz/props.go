package quiz

import "github.com/ad/go-wallet-quiz/internal/models"

// QuestionProps is the read-only view of the current session state, consumed
// by whatever shell renders the quiz. The shell holds no quiz state of its
// own; everything it needs to draw one question screen is here.
type QuestionProps struct {
	QuestionNumber int
	TotalQuestions int
	Kind           models.QuestionKind
	Prompt         string
	Context        string

	Options           []models.Option
	SelectedOptionIDs []string

	InteractionLabel  string
	WalletKind        models.WalletKind
	SimulatedSiteKind string
	Transaction       *models.TransactionDetails
	Signature         *models.SignatureDetails
	WalletDialogOpen  bool

	HasAnswered       bool
	IsCorrect         bool
	FeedbackVisible   bool
	FeedbackPageIndex int
	FeedbackPages     []string
}

// StatusEntry is one question's slot in the progress strip.
type StatusEntry struct {
	QuestionID int
	Status     models.QuestionStatus
}

// ProgressProps is the derived progress view.
type ProgressProps struct {
	CurrentQuestion   int
	TotalQuestions    int
	PercentComplete   int
	PerQuestionStatus []StatusEntry
}

// SummaryProps is the end-of-sequence report.
type SummaryProps struct {
	Total     int
	Correct   int
	ShareText string
}
