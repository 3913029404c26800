package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/snowball/internal/artifact"
	"github.com/pdiddy/snowball/pkg/types"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the output directory layout",
	Long: `Init creates the "seed papers" and "snowballing papers" directories under
the output directory. Collection commands expect these to exist and fail
otherwise; init is the only command that creates directories.`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().String("output-dir", "", "base directory for collected artifacts (default \"output\")")

	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	out, _ := cmd.Flags().GetString("output-dir")
	if out == "" {
		out = viper.GetString("output_dir")
	}
	if out == "" {
		out = types.DefaultCollectConfig().OutputDir
	}

	for _, dir := range artifact.Dirs(out) {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
		fmt.Fprintf(os.Stdout, "created %s\n", dir)
	}
	fmt.Fprintln(os.Stdout, "Output directories initialized.")
	return nil
}
