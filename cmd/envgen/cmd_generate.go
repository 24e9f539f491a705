package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/olfenv/envcov"
)

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate an environment covariance matrix",
		Long: `Generate an N×N environment covariance matrix under the chosen model.

Size-driven models (identity, rnd_diag, rnd_diag_const, rnd_diag_rnd,
rnd_product, rnd_corr) take --size N; perturbation models (delta_rnd_diag,
delta_rnd_prod, delta_rnd_unif) take --base matrix.csv instead.

Passing --model defaults prints the option listing, generating nothing.`,
		RunE: runGenerate,
	}

	cmd.Flags().String("model", "", "Generation model name (see 'envgen models'), or 'defaults'")
	cmd.Flags().Int("size", 0, "Matrix dimension N (size-driven models)")
	cmd.Flags().String("base", "", "CSV file holding the base matrix Γ₀ (delta_* models)")
	cmd.Flags().Int64("seed", 0, "Seed for the random stream (omit for a shared unseeded stream)")
	cmd.Flags().String("opts", "", "YAML file with option overrides (see 'envgen defaults')")
	cmd.Flags().StringP("output", "o", "", "Write the matrix CSV here instead of stdout")
	_ = cmd.MarkFlagRequired("model")

	return cmd
}

func runGenerate(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("model")
	jsonOut, _ := cmd.Flags().GetBool("json")

	// The literal "defaults" is a diagnostic mode, not a generation model:
	// print the option listing and stop, no size required.
	if name == "defaults" {
		return printDefaults(jsonOut)
	}

	model, err := envcov.ParseModel(name)
	if err != nil {
		return err
	}

	optsPath, _ := cmd.Flags().GetString("opts")
	opts, err := optionsFromFile(optsPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("seed") {
		seed, _ := cmd.Flags().GetInt64("seed")
		opts = append(opts, envcov.WithSeed(seed))
	}

	var (
		gamma   *mat.SymDense
		details envcov.Details
	)
	basePath, _ := cmd.Flags().GetString("base")
	if basePath != "" {
		base, rerr := readMatrixCSV(basePath)
		if rerr != nil {
			return rerr
		}
		sym, berr := envcov.BaseFromDense(base)
		if berr != nil {
			return berr
		}
		slog.Debug("generating from base", "model", model, "n", sym.SymmetricDim())
		gamma, details, err = envcov.GenerateFrom(model, sym, opts...)
	} else {
		size, _ := cmd.Flags().GetInt("size")
		slog.Debug("generating from size", "model", model, "n", size)
		gamma, details, err = envcov.Generate(model, size, opts...)
	}
	if err != nil {
		return err
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"model":   model.String(),
			"matrix":  matrixRows(gamma),
			"details": detailsForJSON(details),
		})
	}

	out := os.Stdout
	if path, _ := cmd.Flags().GetString("output"); path != "" {
		f, cerr := os.Create(path)
		if cerr != nil {
			return fmt.Errorf("create output: %w", cerr)
		}
		defer f.Close()
		out = f
	}
	return writeMatrixCSV(out, gamma)
}

// detailsForJSON flattens matrix-valued artifacts into row slices so the
// record encodes cleanly.
func detailsForJSON(det envcov.Details) map[string]any {
	out := make(map[string]any, len(det))
	for k, v := range det {
		if m, ok := v.(mat.Matrix); ok {
			out[k] = matrixRows(m)
			continue
		}
		out[k] = v
	}
	return out
}

func matrixRows(m mat.Matrix) [][]float64 {
	r, c := m.Dims()
	rows := make([][]float64, r)
	for i := 0; i < r; i++ {
		rows[i] = make([]float64, c)
		for j := 0; j < c; j++ {
			rows[i][j] = m.At(i, j)
		}
	}
	return rows
}
