package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ad/go-wallet-quiz/internal/quiz"
)

func newProgressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "progress",
		Short: "Show per-question results so far",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup()
			if err != nil {
				return err
			}
			defer e.close()

			agg := quiz.NewAggregator(e.repo, e.results)
			p := agg.ComputeProgress(nextUnanswered(e))
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatProgress(p))
			for _, entry := range p.PerQuestionStatus {
				fmt.Fprintf(out, "  %2d: %s\n", entry.QuestionID, entry.Status)
			}
			return nil
		},
	}
}

// nextUnanswered picks the first question without a stored verdict, so the
// strip marks where the user would resume. Falls back to the last question
// when everything is answered.
func nextUnanswered(e *env) int {
	answered := make(map[int]bool)
	for _, rec := range e.results.GetAll() {
		answered[rec.QuestionID] = true
	}
	for id := 1; id <= e.repo.Count(); id++ {
		if !answered[id] {
			return id
		}
	}
	return e.repo.Count()
}
