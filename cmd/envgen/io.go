package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/olfenv/envcov"
)

// optionFile mirrors the recognized option names ('envgen defaults') in
// YAML. Pointer fields distinguish "omitted" from zero values.
type optionFile struct {
	DiagMu      *float64 `yaml:"diag_mu"`
	DiagSize    *float64 `yaml:"diag_size"`
	OffdiagMu   *float64 `yaml:"offdiag_mu"`
	OffdiagSize *float64 `yaml:"offdiag_size"`
	DeltaSize   *float64 `yaml:"delta_size"`
	NDelta      *int     `yaml:"n_delta"`
	DeltaPos    []int    `yaml:"delta_pos"`
	FactorRows  *int     `yaml:"factor_rows"`
	FactorSize  *float64 `yaml:"factor_size"`
	CorrBeta    *float64 `yaml:"corr_beta"`
}

// optionsFromFile loads a YAML option file into envcov options, validating
// domains up front so the CLI reports errors instead of tripping the
// option-constructor panics reserved for programmer mistakes.
func optionsFromFile(path string) ([]envcov.Option, error) {
	if path == "" {
		return nil, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read options: %w", err)
	}
	var f optionFile
	if err = yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse options: %w", err)
	}

	var opts []envcov.Option
	if f.DiagMu != nil {
		if *f.DiagMu <= 0 {
			return nil, fmt.Errorf("options: diag_mu must be > 0, got %v", *f.DiagMu)
		}
		opts = append(opts, envcov.WithDiagMu(*f.DiagMu))
	}
	if f.DiagSize != nil {
		if *f.DiagSize <= 0 {
			return nil, fmt.Errorf("options: diag_size must be > 0, got %v", *f.DiagSize)
		}
		opts = append(opts, envcov.WithDiagSize(*f.DiagSize))
	}
	if f.OffdiagMu != nil {
		opts = append(opts, envcov.WithOffdiagMu(*f.OffdiagMu))
	}
	if f.OffdiagSize != nil {
		if *f.OffdiagSize <= 0 {
			return nil, fmt.Errorf("options: offdiag_size must be > 0, got %v", *f.OffdiagSize)
		}
		opts = append(opts, envcov.WithOffdiagSize(*f.OffdiagSize))
	}
	if f.DeltaSize != nil {
		opts = append(opts, envcov.WithDeltaSize(*f.DeltaSize))
	}
	if f.NDelta != nil {
		if *f.NDelta < 1 {
			return nil, fmt.Errorf("options: n_delta must be ≥ 1, got %d", *f.NDelta)
		}
		opts = append(opts, envcov.WithNDelta(*f.NDelta))
	}
	if len(f.DeltaPos) > 0 {
		seen := make(map[int]struct{}, len(f.DeltaPos))
		for _, p := range f.DeltaPos {
			if p < 1 {
				return nil, fmt.Errorf("options: delta_pos entries are 1-based, got %d", p)
			}
			if _, dup := seen[p]; dup {
				return nil, fmt.Errorf("options: delta_pos entry %d duplicated", p)
			}
			seen[p] = struct{}{}
		}
		opts = append(opts, envcov.WithDeltaPositions(f.DeltaPos...))
	}
	if f.FactorRows != nil {
		if *f.FactorRows < 1 {
			return nil, fmt.Errorf("options: factor_rows must be ≥ 1, got %d", *f.FactorRows)
		}
		opts = append(opts, envcov.WithFactorRows(*f.FactorRows))
	}
	if f.FactorSize != nil {
		if *f.FactorSize < 0 {
			return nil, fmt.Errorf("options: factor_size must be ≥ 0, got %v", *f.FactorSize)
		}
		opts = append(opts, envcov.WithFactorNoise(*f.FactorSize))
	}
	if f.CorrBeta != nil {
		if *f.CorrBeta <= 0 {
			return nil, fmt.Errorf("options: corr_beta must be > 0, got %v", *f.CorrBeta)
		}
		opts = append(opts, envcov.WithCorrBeta(*f.CorrBeta))
	}

	return opts, nil
}

// readMatrixCSV parses a CSV file of floats into a Dense matrix.
// Ragged rows are rejected; squareness/symmetry are the library's call
// (envcov.BaseFromDense).
func readMatrixCSV(path string) (*mat.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read base: %w", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse base: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("parse base: empty file")
	}

	rows, cols := len(records), len(records[0])
	data := make([]float64, 0, rows*cols)
	for i, rec := range records {
		if len(rec) != cols {
			return nil, fmt.Errorf("parse base: row %d has %d fields, want %d", i+1, len(rec), cols)
		}
		for j, field := range rec {
			v, perr := strconv.ParseFloat(field, 64)
			if perr != nil {
				return nil, fmt.Errorf("parse base: row %d col %d: %w", i+1, j+1, perr)
			}
			data = append(data, v)
		}
	}
	return mat.NewDense(rows, cols, data), nil
}

// writeMatrixCSV writes m row by row with full float precision.
func writeMatrixCSV(out io.Writer, m mat.Matrix) error {
	w := csv.NewWriter(out)
	r, c := m.Dims()
	rec := make([]string, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			rec[j] = strconv.FormatFloat(m.At(i, j), 'g', -1, 64)
		}
		if err := w.Write(rec); err != nil {
			return fmt.Errorf("write matrix: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}
