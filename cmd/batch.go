package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/planwise/discovery/internal/config"
	"github.com/planwise/discovery/internal/insights"
	"github.com/planwise/discovery/internal/progress"
)

var batchOutDir string

var batchCmd = &cobra.Command{
	Use:   "batch <snapshot-dir>",
	Short: "Generate insights for a directory of snapshots",
	Long: `Scores every snapshot file (.json, .yaml, .yml) in the given directory
and writes one insights file per snapshot. Advisors use this to refresh
a whole book of clients after catalog or threshold changes.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		entries, err := os.ReadDir(args[0])
		if err != nil {
			return fmt.Errorf("reading snapshot directory: %w", err)
		}

		var paths []string
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			switch strings.ToLower(filepath.Ext(e.Name())) {
			case ".json", ".yaml", ".yml":
				paths = append(paths, filepath.Join(args[0], e.Name()))
			}
		}
		if len(paths) == 0 {
			return fmt.Errorf("no snapshot files in %s", args[0])
		}

		outDir := batchOutDir
		if outDir == "" {
			outDir = args[0]
		}
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}

		generatedAt := time.Now().UTC()
		reporter := progress.NewReporter()
		reporter.Start(len(paths))

		var failed int
		for i, path := range paths {
			reporter.Update(i+1, filepath.Base(path))

			snap, err := loadSnapshot(path)
			if err != nil {
				fmt.Fprintf(os.Stderr, "skipping %s: %v\n", path, err)
				failed++
				continue
			}

			data, err := encodeInsights(insights.Generate(*snap, generatedAt), cfg)
			if err != nil {
				return err
			}

			outPath := filepath.Join(outDir, insightsFileName(path, cfg.OutputFormat))
			if err := os.WriteFile(outPath, data, 0644); err != nil {
				return fmt.Errorf("writing %s: %w", outPath, err)
			}
		}
		reporter.Finish()

		if failed > 0 {
			return fmt.Errorf("%d of %d snapshots failed to parse", failed, len(paths))
		}
		fmt.Fprintf(os.Stderr, "scored %d snapshots into %s\n", len(paths), outDir)
		return nil
	},
}

// insightsFileName derives the output file name from the snapshot file name.
func insightsFileName(snapshotPath string, format config.OutputFormat) string {
	base := strings.TrimSuffix(filepath.Base(snapshotPath), filepath.Ext(snapshotPath))
	ext := ".json"
	if format == config.FormatYAML {
		ext = ".yaml"
	}
	return base + ".insights" + ext
}

func init() {
	batchCmd.Flags().StringVarP(&batchOutDir, "out-dir", "o", "", "output directory (default alongside snapshots)")
	rootCmd.AddCommand(batchCmd)
}
