package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ad/go-wallet-quiz/internal/questions"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [bank.yaml]",
		Short: "Check a question bank against the schema invariants",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				repo *questions.Repository
				err  error
			)
			if len(args) == 1 {
				repo, err = questions.NewRepositoryFromFile(args[0])
			} else {
				repo, err = questions.NewRepository()
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Bank is valid: %d questions.\n", repo.Count())
			return nil
		},
	}
}
