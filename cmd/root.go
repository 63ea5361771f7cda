package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "planwise",
	Short: "Deterministic planning insights from discovery snapshots",
	Long: `Planwise turns a client's discovery work — sorted value cards, financial
goals, life context, and purpose statement — into a strategy profile,
ranked planning focus areas, and prioritized next actions. The same
snapshot always produces the same insights.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".planwise.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
