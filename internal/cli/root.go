package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath    string
	dbPath        string
	questionsPath string
	noPersist     bool
)

// Execute runs the CLI.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wallet-quiz",
		Short: "Learn to tell safe wallet-signing requests from malicious ones",
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", os.Getenv("QUIZ_CONFIG"), "path to YAML config")
	cmd.PersistentFlags().StringVar(&dbPath, "db", "", "sqlite file for results (overrides config)")
	cmd.PersistentFlags().StringVar(&questionsPath, "questions", "", "YAML question bank (overrides the embedded one)")
	cmd.PersistentFlags().BoolVar(&noPersist, "no-persist", false, "keep results in memory for this run only")

	cmd.AddCommand(newPlayCmd())
	cmd.AddCommand(newProgressCmd())
	cmd.AddCommand(newSummaryCmd())
	cmd.AddCommand(newResetCmd())
	cmd.AddCommand(newValidateCmd())
	return cmd
}
