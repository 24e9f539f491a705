// Command envgen generates environment covariance matrices from the
// command line: pick a model, a size or a base matrix, tune options via a
// YAML file, and export the result as CSV (matrix) and JSON (artifacts).
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "envgen",
		Short: "Synthesize environment covariance matrices",
		Long: `envgen synthesizes random symmetric PSD "environment covariance"
matrices over N odorant dimensions under a closed set of generative models,
optionally perturbing a base matrix read from CSV.

Run "envgen defaults" to list every recognized option with its default.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			verbose, _ := cmd.Flags().GetBool("verbose")
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			// The library logs its PSD advisory through slog.Default.
			slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
				Level: level,
			})))
		},
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON (for machine consumption)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(
		newVersionCmd(),
		newGenerateCmd(),
		newDefaultsCmd(),
		newModelsCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
