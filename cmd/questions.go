package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/planwise/discovery/internal/insights"
	"github.com/planwise/discovery/internal/questions"
)

var questionsCmd = &cobra.Command{
	Use:   "questions [snapshot-file]",
	Short: "List guided questions, optionally filtered by a snapshot",
	Long: `Without arguments, prints the full guided-question catalog. With a
snapshot file, prints only the questions that snapshot triggers, in
priority order.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		list := questions.Catalog
		if len(args) == 1 {
			snap, err := loadSnapshot(args[0])
			if err != nil {
				return err
			}
			list = questions.Active(insights.QuestionFacts(*snap))
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(list); err != nil {
			return fmt.Errorf("encoding questions: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(questionsCmd)
}
