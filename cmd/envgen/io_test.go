package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestOptionsFromFile(t *testing.T) {
	t.Parallel()

	path := writeTemp(t, "opts.yaml", `
diag_mu: 2.0
diag_size: 0.5
offdiag_mu: -0.1
delta_pos: [1, 3]
factor_rows: 20
corr_beta: 4
`)
	opts, err := optionsFromFile(path)
	if err != nil {
		t.Fatalf("optionsFromFile: %v", err)
	}
	if len(opts) != 6 {
		t.Errorf("expected 6 options, got %d", len(opts))
	}

	// Empty path means no overrides.
	opts, err = optionsFromFile("")
	if err != nil || opts != nil {
		t.Errorf("empty path: expected (nil,nil), got (%v,%v)", opts, err)
	}
}

func TestOptionsFromFileRejectsBadDomains(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		content string
	}{
		{"diag_mu", "diag_mu: 0"},
		{"diag_size", "diag_size: -1"},
		{"offdiag_size", "offdiag_size: 0"},
		{"n_delta", "n_delta: 0"},
		{"delta_pos zero", "delta_pos: [0]"},
		{"delta_pos dup", "delta_pos: [2, 2]"},
		{"factor_rows", "factor_rows: 0"},
		{"factor_size", "factor_size: -0.5"},
		{"corr_beta", "corr_beta: 0"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			path := writeTemp(t, "opts.yaml", tc.content)
			if _, err := optionsFromFile(path); err == nil {
				t.Errorf("%s: expected a domain error", tc.name)
			}
		})
	}
}

func TestMatrixCSVRoundTrip(t *testing.T) {
	t.Parallel()

	src := mat.NewDense(2, 2, []float64{1.5, -0.25, -0.25, 3})

	var buf bytes.Buffer
	if err := writeMatrixCSV(&buf, src); err != nil {
		t.Fatalf("writeMatrixCSV: %v", err)
	}

	path := writeTemp(t, "base.csv", buf.String())
	back, err := readMatrixCSV(path)
	if err != nil {
		t.Fatalf("readMatrixCSV: %v", err)
	}
	if !mat.Equal(src, back) {
		t.Errorf("round trip mismatch:\nwant %v\ngot  %v", mat.Formatted(src), mat.Formatted(back))
	}
}

func TestReadMatrixCSVRejectsRagged(t *testing.T) {
	t.Parallel()

	path := writeTemp(t, "ragged.csv", "1,2\n3\n")
	if _, err := readMatrixCSV(path); err == nil {
		t.Error("ragged rows: expected an error")
	}
}

func TestMatrixRows(t *testing.T) {
	t.Parallel()

	m := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
	rows := matrixRows(m)
	if len(rows) != 2 || len(rows[0]) != 3 || rows[1][2] != 6 {
		t.Errorf("unexpected rows: %v", rows)
	}
}
