package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/snowball/internal/collect"
	"github.com/pdiddy/snowball/internal/secrets"
	"github.com/pdiddy/snowball/pkg/types"
)

// addCollectFlags registers the flags shared by every command that talks to
// the Semantic Scholar API. Zero values mean "not set"; collectConfig then
// falls back to the query file, the config file, the environment, and the
// documented defaults.
func addCollectFlags(cmd *cobra.Command) {
	cmd.Flags().StringSlice("keywords", nil, "search keywords (default: software,engineering,gender,diversity)")
	cmd.Flags().String("field-of-study", "", "Semantic Scholar field-of-study filter (default \"Computer Science\")")
	cmd.Flags().Int("top-n", 0, "number of seed papers to collect (default 5)")
	cmd.Flags().Duration("pause", 0, "pause after every API response; 0 disables (default 3.5s)")
	cmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 30s)")
	cmd.Flags().String("output-dir", "", "base directory for collected artifacts (default \"output\")")
	cmd.Flags().String("api-key", "", "Semantic Scholar API key")
	cmd.Flags().String("query-file", "", "YAML query file setting keywords, field of study, and top-n")
}

// collectConfig resolves the effective configuration for a command: built-in
// defaults, then the config file and SNOWBALL_* environment, then the query
// file, then explicit flags.
func collectConfig(cmd *cobra.Command) (types.CollectConfig, error) {
	cfg := types.DefaultCollectConfig()

	if viper.IsSet("keywords") {
		cfg.Keywords = viper.GetStringSlice("keywords")
	}
	if v := viper.GetString("field_of_study"); v != "" {
		cfg.FieldOfStudy = v
	}
	if v := viper.GetInt("top_n"); v > 0 {
		cfg.TopN = v
	}
	if viper.IsSet("pause") {
		cfg.Pause = viper.GetDuration("pause")
	}
	if v := viper.GetDuration("timeout"); v > 0 {
		cfg.Timeout = v
	}
	if v := viper.GetString("output_dir"); v != "" {
		cfg.OutputDir = v
	}

	if path, _ := cmd.Flags().GetString("query-file"); path != "" {
		qf, err := collect.ReadQueryFile(path)
		if err != nil {
			return cfg, err
		}
		qf.Apply(&cfg)
	}

	if cmd.Flags().Changed("keywords") {
		cfg.Keywords, _ = cmd.Flags().GetStringSlice("keywords")
	}
	if cmd.Flags().Changed("field-of-study") {
		cfg.FieldOfStudy, _ = cmd.Flags().GetString("field-of-study")
	}
	if cmd.Flags().Changed("top-n") {
		cfg.TopN, _ = cmd.Flags().GetInt("top-n")
	}
	if cmd.Flags().Changed("pause") {
		cfg.Pause, _ = cmd.Flags().GetDuration("pause")
	}
	if cmd.Flags().Changed("timeout") {
		cfg.Timeout, _ = cmd.Flags().GetDuration("timeout")
	}
	if cmd.Flags().Changed("output-dir") {
		cfg.OutputDir, _ = cmd.Flags().GetString("output-dir")
	}

	cfg.APIKey = resolveAPIKey(cmd)

	if len(cfg.Keywords) == 0 {
		return cfg, fmt.Errorf("no search keywords configured")
	}
	if cfg.TopN <= 0 {
		return cfg, fmt.Errorf("top-n must be positive, got %d", cfg.TopN)
	}
	return cfg, nil
}

// resolveAPIKey picks the Semantic Scholar API key: the --api-key flag, then
// the config file or SNOWBALL_API_KEY, then SEMANTIC_SCHOLAR_API_KEY, then
// the .secrets/ directory. An empty result means anonymous access.
func resolveAPIKey(cmd *cobra.Command) string {
	key, _ := cmd.Flags().GetString("api-key")
	if key == "" {
		key = viper.GetString("api_key")
	}
	if key == "" {
		key = os.Getenv("SEMANTIC_SCHOLAR_API_KEY")
	}
	return secretDefault(secrets.SemanticScholarKey, key)
}
