package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ad/go-wallet-quiz/internal/models"
	"github.com/ad/go-wallet-quiz/internal/questions"
	"github.com/ad/go-wallet-quiz/internal/quiz"
)

var startID int

func newPlayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Run the quiz in the terminal",
		RunE:  runPlay,
	}
	cmd.Flags().IntVar(&startID, "start", 1, "question id to start from")
	return cmd
}

func runPlay(cmd *cobra.Command, args []string) error {
	e, err := setup()
	if err != nil {
		return err
	}
	defer e.close()

	out := cmd.OutOrStdout()

	sess, err := quiz.NewSession(e.repo, e.results, startID)
	if err != nil {
		if errors.Is(err, questions.ErrQuestionNotFound) {
			fmt.Fprintf(out, "Question %d not found, the quiz has questions 1..%d.\n", startID, e.repo.Count())
			return nil
		}
		return err
	}

	agg := quiz.NewAggregator(e.repo, e.results)
	rep := quiz.NewReporter(e.repo, e.results)
	in := bufio.NewScanner(cmd.InOrStdin())

	renderQuestion(out, sess, agg)
	for {
		fmt.Fprint(out, "> ")
		if !in.Scan() {
			return in.Err()
		}
		line := strings.TrimSpace(strings.ToLower(in.Text()))

		switch line {
		case "":
		case "quit", "q":
			return nil
		case "help", "?":
			printHelp(out)
		case "submit", "s":
			if err := sess.Submit(); err != nil {
				fmt.Fprintln(out, "Select at least one option first.")
				continue
			}
			renderQuestion(out, sess, agg)
		case "open", "o":
			if err := sess.OpenWalletDialog(); err != nil {
				fmt.Fprintln(out, "This question has no wallet dialog.")
				continue
			}
			renderQuestion(out, sess, agg)
		case "sign", "reject":
			if err := sess.ResolveWalletAction(models.WalletAction(line)); err != nil {
				fmt.Fprintln(out, "Open the wallet dialog first.")
				continue
			}
			if text, ok := sess.TakeWrongAnswerExplanation(); ok {
				fmt.Fprintf(out, "\n!! %s\n", strings.TrimRight(text, "\n"))
			}
			renderQuestion(out, sess, agg)
		case "close":
			sess.CloseWalletDialog()
			renderQuestion(out, sess, agg)
		case "retry", "r":
			if err := sess.Retry(); err != nil {
				fmt.Fprintln(out, "Nothing to retry here.")
				continue
			}
			renderQuestion(out, sess, agg)
		case "more", "m":
			sess.NextFeedbackPage()
			renderQuestion(out, sess, agg)
		case "back", "b":
			sess.PrevFeedbackPage()
			renderQuestion(out, sess, agg)
		case "next", "n":
			_, done, err := sess.GoNext()
			if errors.Is(err, quiz.ErrNavigationBlocked) {
				fmt.Fprintln(out, "Answer this question before moving on.")
				continue
			}
			if err != nil {
				return err
			}
			if done {
				if restart := runSummaryScreen(out, in, rep); !restart {
					return nil
				}
				if err := sess.Show(rep.Restart()); err != nil {
					return err
				}
			}
			renderQuestion(out, sess, agg)
		case "prev", "p":
			if _, err := sess.GoPrev(); err != nil {
				fmt.Fprintln(out, "Already at the first question.")
				continue
			}
			renderQuestion(out, sess, agg)
		default:
			if err := sess.ToggleOption(line); err != nil {
				q := sess.Question()
				if q.HasOption(line) {
					fmt.Fprintln(out, "Already answered, type 'retry' to change your selection.")
				} else {
					fmt.Fprintln(out, "Unknown command, type 'help'.")
				}
				continue
			}
			renderQuestion(out, sess, agg)
		}
	}
}

func renderQuestion(w io.Writer, sess *quiz.Session, agg *quiz.Aggregator) {
	props := sess.Props()

	fmt.Fprintln(w)
	fmt.Fprintln(w, formatProgress(agg.ComputeProgress(props.QuestionNumber)))
	fmt.Fprintf(w, "Question %d of %d: %s\n", props.QuestionNumber, props.TotalQuestions, props.Prompt)
	if props.Context != "" {
		fmt.Fprintln(w, strings.TrimRight(props.Context, "\n"))
	}

	if len(props.Options) > 0 {
		selected := make(map[string]bool, len(props.SelectedOptionIDs))
		for _, id := range props.SelectedOptionIDs {
			selected[id] = true
		}
		for _, opt := range props.Options {
			mark := " "
			if selected[opt.ID] {
				mark = "x"
			}
			fmt.Fprintf(w, "  [%s] %s. %s\n", mark, opt.ID, opt.Text)
		}
	}

	if props.Kind == models.KindSignOrReject {
		if props.WalletDialogOpen {
			q := sess.Question()
			if q.Transaction != nil {
				fmt.Fprintln(w, formatTransaction(q.Transaction, q.WalletKind))
			}
			if q.Signature != nil {
				fmt.Fprintln(w, formatSignature(q.Signature, q.WalletKind))
			}
			fmt.Fprintln(w, "Type 'sign' or 'reject' (or 'close' to walk away).")
		} else {
			fmt.Fprintf(w, "Type 'open' to press %q.\n", props.InteractionLabel)
		}
	}

	if props.HasAnswered {
		fmt.Fprintln(w, formatVerdict(props.IsCorrect))
	}
	if props.FeedbackVisible && len(props.FeedbackPages) > 0 {
		fmt.Fprintf(w, "-- feedback %d/%d --\n", props.FeedbackPageIndex+1, len(props.FeedbackPages))
		fmt.Fprintln(w, strings.TrimRight(props.FeedbackPages[props.FeedbackPageIndex], "\n"))
	}
}

// runSummaryScreen shows the final score and waits for restart or quit.
// Returns true when the user chose to restart.
func runSummaryScreen(w io.Writer, in *bufio.Scanner, rep *quiz.Reporter) bool {
	summary := rep.ComputeSummary()
	fmt.Fprintf(w, "\nQuiz complete: %d of %d correct.\n", summary.Correct, summary.Total)
	fmt.Fprintf(w, "Share it: %s\n", summary.ShareText)
	fmt.Fprintln(w, "Type 'restart' to wipe your results and start over, anything else to quit.")
	fmt.Fprint(w, "> ")
	if !in.Scan() {
		return false
	}
	return strings.TrimSpace(strings.ToLower(in.Text())) == "restart"
}

func printHelp(w io.Writer) {
	fmt.Fprintln(w, `Commands:
  <option id>     toggle an option (choice questions)
  submit, s       grade the current selection
  open, o         open the wallet dialog (sign/reject questions)
  sign / reject   resolve the wallet dialog
  close           dismiss the wallet dialog without answering
  retry, r        clear an answered choice question and try again
  more, m         next feedback page
  back, b         previous feedback page
  next, n / prev, p   navigate questions
  quit, q         leave the quiz`)
}
