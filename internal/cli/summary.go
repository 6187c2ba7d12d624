package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ad/go-wallet-quiz/internal/quiz"
)

func newSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Print the current score",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup()
			if err != nil {
				return err
			}
			defer e.close()

			summary := quiz.NewReporter(e.repo, e.results).ComputeSummary()
			fmt.Fprintf(cmd.OutOrStdout(), "%d of %d correct\n%s\n", summary.Correct, summary.Total, summary.ShareText)
			return nil
		},
	}
}

func newResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Delete all stored results",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup()
			if err != nil {
				return err
			}
			defer e.close()

			quiz.NewReporter(e.repo, e.results).Restart()
			fmt.Fprintln(cmd.OutOrStdout(), "Results cleared.")
			return nil
		},
	}
}
