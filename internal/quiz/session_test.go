package quiz

import (
	"errors"
	"testing"

	"github.com/ad/go-wallet-quiz/internal/models"
	"github.com/ad/go-wallet-quiz/internal/questions"
	"github.com/ad/go-wallet-quiz/internal/store"
)

func testRepo(t *testing.T) *questions.Repository {
	t.Helper()
	repo, err := questions.NewRepositoryFromQuestions([]models.Question{
		{
			ID:     1,
			Kind:   models.KindChoiceSingle,
			Prompt: "Which wallet keeps your key safest?",
			Options: []models.Option{
				{ID: "a", Text: "browser extension"},
				{ID: "b", Text: "hardware wallet"},
				{ID: "c", Text: "exchange account"},
				{ID: "d", Text: "paper under the desk"},
			},
			CorrectAnswers: []string{"b"},
			Feedback:       []string{"page one", "page two", "page three"},
		},
		{
			ID:     2,
			Kind:   models.KindChoiceMulti,
			Prompt: "Which checks do you do every time?",
			Options: []models.Option{
				{ID: "a", Text: "verify address on device"},
				{ID: "b", Text: "check function and amount"},
				{ID: "c", Text: "trust the dApp UI"},
				{ID: "d", Text: "confirm the fee"},
			},
			CorrectAnswers: []string{"a", "b", "d"},
			Feedback:       []string{"only the device screen is honest"},
		},
		{
			ID:               3,
			Kind:             models.KindSignOrReject,
			Prompt:           "Approve unlimited USDC?",
			ExpectedAction:   models.ActionReject,
			WalletKind:       models.WalletMetaMask,
			InteractionLabel: "Approve",
			Transaction: &models.TransactionDetails{
				From:     "0xaaaa",
				To:       "0xbbbb",
				Amount:   "0 ETH",
				Function: "approve(address,uint256)",
				CallData: []string{"0x095ea7b3"},
			},
			WrongAnswerExplanation: "unlimited allowance drains you later",
			Feedback:               []string{"approvals are standing permissions"},
		},
		{
			ID:               4,
			Kind:             models.KindSignOrReject,
			Prompt:           "Send 0.5 ETH to a verified friend?",
			ExpectedAction:   models.ActionSign,
			WalletKind:       models.WalletMetaMask,
			InteractionLabel: "Send",
			Transaction: &models.TransactionDetails{
				From:     "0xaaaa",
				To:       "0xcccc",
				Amount:   "0.5 ETH",
				Function: "transfer",
				CallData: []string{"0x"},
			},
			Feedback: []string{"plain transfer to a verified address"},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	return repo
}

func newTestSession(t *testing.T, startID int) (*Session, *store.MemoryStore) {
	t.Helper()
	st := store.NewMemoryStore()
	sess, err := NewSession(testRepo(t), st, startID)
	if err != nil {
		t.Fatal(err)
	}
	return sess, st
}

func TestMount_OutOfRangeSignalsNotFound(t *testing.T) {
	st := store.NewMemoryStore()
	for _, id := range []int{0, 99} {
		if _, err := NewSession(testRepo(t), st, id); !errors.Is(err, questions.ErrQuestionNotFound) {
			t.Errorf("Expected ErrQuestionNotFound for start id %d, got %v", id, err)
		}
	}
}

func TestSubmitChoice_CorrectAnswer(t *testing.T) {
	sess, st := newTestSession(t, 1)

	if err := sess.SubmitChoice([]string{"b"}); err != nil {
		t.Fatalf("SubmitChoice failed: %v", err)
	}

	props := sess.Props()
	if !props.HasAnswered || !props.IsCorrect {
		t.Errorf("Expected answered+correct, got answered=%t correct=%t", props.HasAnswered, props.IsCorrect)
	}
	if !props.FeedbackVisible || props.FeedbackPageIndex != 0 {
		t.Errorf("Expected feedback visible at page 0, got visible=%t page=%d", props.FeedbackVisible, props.FeedbackPageIndex)
	}
	rec, ok := st.GetByQuestionID(1)
	if !ok || !rec.IsCorrect {
		t.Errorf("Expected stored record {1 true}, got %+v ok=%t", rec, ok)
	}
}

func TestSubmitChoice_WrongAnswer(t *testing.T) {
	sess, st := newTestSession(t, 1)

	if err := sess.SubmitChoice([]string{"a"}); err != nil {
		t.Fatalf("SubmitChoice failed: %v", err)
	}
	if sess.Props().IsCorrect {
		t.Error("Expected incorrect verdict for {a}")
	}
	rec, ok := st.GetByQuestionID(1)
	if !ok || rec.IsCorrect {
		t.Errorf("Expected stored record {1 false}, got %+v ok=%t", rec, ok)
	}
}

func TestSubmitChoice_MultiAnyOrder(t *testing.T) {
	sess, _ := newTestSession(t, 2)

	if err := sess.SubmitChoice([]string{"d", "a", "b"}); err != nil {
		t.Fatalf("SubmitChoice failed: %v", err)
	}
	if !sess.Props().IsCorrect {
		t.Error("Expected {d,a,b} to grade correct regardless of order")
	}

	if err := sess.Retry(); err != nil {
		t.Fatal(err)
	}
	if err := sess.SubmitChoice([]string{"a", "b"}); err != nil {
		t.Fatalf("SubmitChoice failed: %v", err)
	}
	if sess.Props().IsCorrect {
		t.Error("Expected {a,b} to grade incorrect, d is missing")
	}
}

func TestSubmitChoice_EmptySelectionIsNoOp(t *testing.T) {
	sess, st := newTestSession(t, 1)

	if err := sess.SubmitChoice(nil); !errors.Is(err, ErrInvalidSubmission) {
		t.Errorf("Expected ErrInvalidSubmission, got %v", err)
	}
	if sess.Props().HasAnswered {
		t.Error("Empty submission must not change state")
	}
	if _, ok := st.GetByQuestionID(1); ok {
		t.Error("Empty submission must not write a record")
	}
}

func TestSubmitChoice_ResubmitRequiresRetry(t *testing.T) {
	sess, _ := newTestSession(t, 1)

	if err := sess.SubmitChoice([]string{"b"}); err != nil {
		t.Fatal(err)
	}
	if err := sess.SubmitChoice([]string{"a"}); !errors.Is(err, ErrInvalidSubmission) {
		t.Errorf("Expected resubmission without retry to fail, got %v", err)
	}
	if !sess.Props().IsCorrect {
		t.Error("Rejected resubmission must not overwrite the verdict")
	}
}

func TestRetry_KeepsStoredVerdictUntilResubmit(t *testing.T) {
	sess, st := newTestSession(t, 1)

	if err := sess.SubmitChoice([]string{"a"}); err != nil {
		t.Fatal(err)
	}
	if err := sess.Retry(); err != nil {
		t.Fatalf("Retry failed: %v", err)
	}

	props := sess.Props()
	if props.HasAnswered {
		t.Error("Expected the form to present as unanswered during retry")
	}
	if props.FeedbackVisible {
		t.Error("Expected feedback hidden during retry")
	}
	if len(props.SelectedOptionIDs) != 0 {
		t.Errorf("Expected selection cleared, got %v", props.SelectedOptionIDs)
	}
	// the previous verdict survives until a new submission
	if rec, ok := st.GetByQuestionID(1); !ok || rec.IsCorrect {
		t.Errorf("Expected stored record {1 false} during retry, got %+v ok=%t", rec, ok)
	}

	if err := sess.SubmitChoice([]string{"b"}); err != nil {
		t.Fatal(err)
	}
	if rec, ok := st.GetByQuestionID(1); !ok || !rec.IsCorrect {
		t.Errorf("Expected record updated to {1 true}, got %+v ok=%t", rec, ok)
	}
}

func TestRetry_NotForSignOrReject(t *testing.T) {
	sess, _ := newTestSession(t, 3)

	if err := sess.OpenWalletDialog(); err != nil {
		t.Fatal(err)
	}
	if err := sess.ResolveWalletAction(models.ActionReject); err != nil {
		t.Fatal(err)
	}
	if err := sess.Retry(); !errors.Is(err, ErrInvalidSubmission) {
		t.Errorf("Expected retry on sign/reject question to fail, got %v", err)
	}
}

func TestWalletFlow_WrongActionSurfacesExplanationOnce(t *testing.T) {
	sess, st := newTestSession(t, 3)

	if err := sess.OpenWalletDialog(); err != nil {
		t.Fatal(err)
	}
	if err := sess.ResolveWalletAction(models.ActionSign); err != nil {
		t.Fatal(err)
	}

	props := sess.Props()
	if props.IsCorrect {
		t.Error("Signing an expect-reject request must grade incorrect")
	}
	if props.WalletDialogOpen {
		t.Error("Resolving must close the dialog")
	}
	if rec, ok := st.GetByQuestionID(3); !ok || rec.IsCorrect {
		t.Errorf("Expected stored record {3 false}, got %+v ok=%t", rec, ok)
	}

	text, ok := sess.TakeWrongAnswerExplanation()
	if !ok || text == "" {
		t.Fatal("Expected the wrong-answer explanation to surface")
	}
	if _, ok := sess.TakeWrongAnswerExplanation(); ok {
		t.Error("Expected the explanation to be one-shot")
	}
}

func TestWalletFlow_CorrectSign_NoExplanation(t *testing.T) {
	sess, st := newTestSession(t, 4)

	if err := sess.OpenWalletDialog(); err != nil {
		t.Fatal(err)
	}
	if err := sess.ResolveWalletAction(models.ActionSign); err != nil {
		t.Fatal(err)
	}
	if !sess.Props().IsCorrect {
		t.Error("Signing an expect-sign request must grade correct")
	}
	if _, ok := sess.TakeWrongAnswerExplanation(); ok {
		t.Error("Correct answers must not surface an explanation")
	}
	if rec, ok := st.GetByQuestionID(4); !ok || !rec.IsCorrect {
		t.Errorf("Expected stored record {4 true}, got %+v ok=%t", rec, ok)
	}
}

func TestWalletFlow_ResolveWithoutDialogIsNoOp(t *testing.T) {
	sess, st := newTestSession(t, 3)

	if err := sess.ResolveWalletAction(models.ActionReject); !errors.Is(err, ErrInvalidSubmission) {
		t.Errorf("Expected ErrInvalidSubmission with no dialog open, got %v", err)
	}
	if sess.Props().HasAnswered {
		t.Error("Resolving without a dialog must not change state")
	}
	if _, ok := st.GetByQuestionID(3); ok {
		t.Error("Resolving without a dialog must not write a record")
	}
}

func TestWalletFlow_ReopenReplacesVerdict(t *testing.T) {
	sess, st := newTestSession(t, 3)

	if err := sess.OpenWalletDialog(); err != nil {
		t.Fatal(err)
	}
	if err := sess.ResolveWalletAction(models.ActionSign); err != nil {
		t.Fatal(err)
	}
	if err := sess.OpenWalletDialog(); err != nil {
		t.Fatalf("Reopening the dialog after an answer must be allowed: %v", err)
	}
	if err := sess.ResolveWalletAction(models.ActionReject); err != nil {
		t.Fatal(err)
	}

	rec, ok := st.GetByQuestionID(3)
	if !ok || !rec.IsCorrect {
		t.Errorf("Expected the second action to overwrite the record, got %+v ok=%t", rec, ok)
	}
	if got := len(st.GetAll()); got != 1 {
		t.Errorf("Expected one record after re-answer, got %d", got)
	}
}

func TestWalletFlow_CloseDiscardsWithoutRecord(t *testing.T) {
	sess, st := newTestSession(t, 3)

	if err := sess.OpenWalletDialog(); err != nil {
		t.Fatal(err)
	}
	sess.CloseWalletDialog()

	if sess.Props().WalletDialogOpen {
		t.Error("Expected dialog closed")
	}
	if _, ok := st.GetByQuestionID(3); ok {
		t.Error("Walking away from the dialog must not write a record")
	}
}

func TestGoNext_GatedUntilAnswered(t *testing.T) {
	sess, _ := newTestSession(t, 1)

	if _, _, err := sess.GoNext(); !errors.Is(err, ErrNavigationBlocked) {
		t.Errorf("Expected forward navigation blocked on unanswered question, got %v", err)
	}
	if sess.Question().ID != 1 {
		t.Errorf("Blocked navigation must not move, now at %d", sess.Question().ID)
	}

	if err := sess.SubmitChoice([]string{"b"}); err != nil {
		t.Fatal(err)
	}
	next, done, err := sess.GoNext()
	if err != nil || done || next != 2 {
		t.Errorf("Expected GoNext to reach question 2, got next=%d done=%t err=%v", next, done, err)
	}
}

func TestGoNext_LastQuestionRoutesToSummary(t *testing.T) {
	sess, st := newTestSession(t, 4)

	st.Upsert(4, true)
	// re-mount so the stored verdict is picked up
	if err := sess.Show(4); err != nil {
		t.Fatal(err)
	}

	next, done, err := sess.GoNext()
	if err != nil {
		t.Fatalf("GoNext failed: %v", err)
	}
	if !done || next != 0 {
		t.Errorf("Expected summary routing from the last question, got next=%d done=%t", next, done)
	}
	if sess.Question().ID != 4 {
		t.Error("Summary routing must leave the session on the last question")
	}
}

func TestGoPrev_FreeButBlockedAtFirst(t *testing.T) {
	sess, _ := newTestSession(t, 2)

	prev, err := sess.GoPrev()
	if err != nil || prev != 1 {
		t.Errorf("Expected GoPrev to reach question 1 without answering, got %d err=%v", prev, err)
	}
	if _, err := sess.GoPrev(); !errors.Is(err, ErrNavigationBlocked) {
		t.Errorf("Expected GoPrev blocked on question 1, got %v", err)
	}
}

func TestNavigation_ResetsFeedbackAndRederivesVerdict(t *testing.T) {
	sess, _ := newTestSession(t, 1)

	if err := sess.SubmitChoice([]string{"b"}); err != nil {
		t.Fatal(err)
	}
	sess.NextFeedbackPage()
	if sess.Props().FeedbackPageIndex != 1 {
		t.Fatal("Expected feedback pager to advance")
	}

	if _, _, err := sess.GoNext(); err != nil {
		t.Fatal(err)
	}
	if _, err := sess.GoPrev(); err != nil {
		t.Fatal(err)
	}

	props := sess.Props()
	if !props.HasAnswered || !props.IsCorrect {
		t.Error("Expected the stored verdict re-derived on return")
	}
	if props.FeedbackVisible || props.FeedbackPageIndex != 0 {
		t.Errorf("Expected feedback hidden at page 0 on return, got visible=%t page=%d", props.FeedbackVisible, props.FeedbackPageIndex)
	}
}

func TestFeedbackPagination_Clamps(t *testing.T) {
	sess, _ := newTestSession(t, 1)

	if err := sess.SubmitChoice([]string{"b"}); err != nil {
		t.Fatal(err)
	}

	sess.PrevFeedbackPage()
	if got := sess.Props().FeedbackPageIndex; got != 0 {
		t.Errorf("Expected pager clamped at 0, got %d", got)
	}

	for i := 0; i < 10; i++ {
		sess.NextFeedbackPage()
	}
	if got := sess.Props().FeedbackPageIndex; got != 2 {
		t.Errorf("Expected pager clamped at the last page (2), got %d", got)
	}
}

func TestToggleOption_SingleChoiceReplacesSelection(t *testing.T) {
	sess, _ := newTestSession(t, 1)

	if err := sess.ToggleOption("a"); err != nil {
		t.Fatal(err)
	}
	if err := sess.ToggleOption("b"); err != nil {
		t.Fatal(err)
	}
	if got := sess.Props().SelectedOptionIDs; len(got) != 1 || got[0] != "b" {
		t.Errorf("Expected single choice to hold only the latest pick, got %v", got)
	}
}

func TestToggleOption_MultiChoiceAccumulatesAndFlips(t *testing.T) {
	sess, _ := newTestSession(t, 2)

	for _, id := range []string{"a", "b", "d"} {
		if err := sess.ToggleOption(id); err != nil {
			t.Fatal(err)
		}
	}
	if got := sess.Props().SelectedOptionIDs; len(got) != 3 {
		t.Errorf("Expected three selected options, got %v", got)
	}

	if err := sess.ToggleOption("b"); err != nil {
		t.Fatal(err)
	}
	if got := sess.Props().SelectedOptionIDs; len(got) != 2 {
		t.Errorf("Expected toggle to deselect, got %v", got)
	}

	if err := sess.ToggleOption("z"); !errors.Is(err, ErrInvalidSubmission) {
		t.Errorf("Expected unknown option id rejected, got %v", err)
	}
}

func TestMount_AnsweredElsewhereShowsVerdictWithoutFeedback(t *testing.T) {
	repo := testRepo(t)
	st := store.NewMemoryStore()
	st.Upsert(2, false)

	sess, err := NewSession(repo, st, 2)
	if err != nil {
		t.Fatal(err)
	}

	props := sess.Props()
	if !props.HasAnswered || props.IsCorrect {
		t.Errorf("Expected answered+incorrect from the store, got answered=%t correct=%t", props.HasAnswered, props.IsCorrect)
	}
	if props.FeedbackVisible {
		t.Error("Feedback must not auto-show on arrival")
	}
}
