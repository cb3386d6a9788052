// Package repeated adjusts paired repeated-measures scores for
// between-participant variability.
package repeated

import (
	"statbook/domain/core"

	"github.com/montanaflynn/stats"
)

// VariableMean returns the arithmetic mean of a non-empty sequence.
func VariableMean(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, core.NewInvalidInputError("values", "must not be empty")
	}

	mean, err := stats.Mean(values)
	if err != nil {
		return 0, core.NewInvalidInputError("values", err.Error())
	}
	return mean, nil
}

// PairedTable holds two equal-length columns of paired scores, one row per
// participant.
type PairedTable struct {
	NameA string
	NameB string
	A     []float64
	B     []float64
}

// Rows returns the number of participants in the table.
func (t PairedTable) Rows() int {
	return len(t.A)
}

// MeanAdjust shifts each participant's pair of scores so that the
// participant mean matches the grand mean of all scores, removing
// between-participant variability. The returned table has the same row
// count, columns renamed with an "Adjusted" suffix, and by construction the
// same grand mean as the input.
func MeanAdjust(t PairedTable) (PairedTable, error) {
	if len(t.A) != len(t.B) {
		return PairedTable{}, core.NewInvalidInputError("columns", "must be equal length")
	}
	if len(t.A) == 0 {
		return PairedTable{}, core.NewInvalidInputError("table", "must not be empty")
	}

	all := make([]float64, 0, 2*len(t.A))
	all = append(all, t.A...)
	all = append(all, t.B...)
	grand, err := stats.Mean(all)
	if err != nil {
		return PairedTable{}, core.NewInvalidInputError("table", err.Error())
	}

	adjA := make([]float64, len(t.A))
	adjB := make([]float64, len(t.B))
	for i := range t.A {
		pMean := (t.A[i] + t.B[i]) / 2
		adj := grand - pMean
		adjA[i] = t.A[i] + adj
		adjB[i] = t.B[i] + adj
	}

	return PairedTable{
		NameA: t.NameA + "Adjusted",
		NameB: t.NameB + "Adjusted",
		A:     adjA,
		B:     adjB,
	}, nil
}
