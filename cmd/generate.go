package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/planwise/discovery/internal/config"
	"github.com/planwise/discovery/internal/insights"
	"github.com/planwise/discovery/internal/snapshot"
)

var generateOut string

var generateCmd = &cobra.Command{
	Use:   "generate <snapshot-file>",
	Short: "Generate insights from one discovery snapshot",
	Long: `Reads a discovery snapshot (YAML or JSON) and writes the generated
insights. A snapshot too sparse to score produces a null insights
document, not an error.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		snap, err := loadSnapshot(args[0])
		if err != nil {
			return err
		}

		result := insights.Generate(*snap, time.Now().UTC())
		if result == nil && verbose {
			fmt.Fprintf(os.Stderr, "snapshot %s is %d%% complete; below the insights threshold\n",
				args[0], insights.CompletionPercent(*snap))
		}

		data, err := encodeInsights(result, cfg)
		if err != nil {
			return err
		}

		if generateOut == "" {
			_, err = os.Stdout.Write(data)
			return err
		}
		if err := os.WriteFile(generateOut, data, 0644); err != nil {
			return fmt.Errorf("writing %s: %w", generateOut, err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "wrote %s\n", generateOut)
		}
		return nil
	},
}

// loadSnapshot parses a snapshot file, choosing the decoder by extension.
func loadSnapshot(path string) (*snapshot.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot %s: %w", path, err)
	}

	var snap snapshot.Snapshot
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &snap); err != nil {
			return nil, fmt.Errorf("parsing snapshot %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, &snap); err != nil {
			return nil, fmt.Errorf("parsing snapshot %s: %w", path, err)
		}
	}
	return &snap, nil
}

// encodeInsights serializes a result per the configured output format. A nil
// result encodes as an explicit null document.
func encodeInsights(result *insights.DiscoveryInsights, cfg *config.Config) ([]byte, error) {
	if cfg.OutputFormat == config.FormatYAML {
		data, err := yaml.Marshal(result)
		if err != nil {
			return nil, fmt.Errorf("encoding insights: %w", err)
		}
		return data, nil
	}

	var (
		data []byte
		err  error
	)
	if cfg.Pretty {
		data, err = json.MarshalIndent(result, "", "  ")
	} else {
		data, err = json.Marshal(result)
	}
	if err != nil {
		return nil, fmt.Errorf("encoding insights: %w", err)
	}
	return append(data, '\n'), nil
}

func init() {
	generateCmd.Flags().StringVarP(&generateOut, "out", "o", "", "output file (default stdout)")
	rootCmd.AddCommand(generateCmd)
}
