package factor

import (
	"math"

	"statbook/domain/core"

	"gonum.org/v1/gonum/mat"
)

// LargeResidualThreshold is the conventional cutoff above which an absolute
// residual correlation is flagged as large.
const LargeResidualThreshold = 0.05

// ResidualStats summarizes the observed-minus-implied residuals of a factor
// solution.
type ResidualStats struct {
	// RMS is the root-mean-square residual.
	RMS float64
	// LargeCount is the number of residuals with absolute value above 0.05.
	LargeCount int
	// LargeProportion is LargeCount over the number of residuals.
	LargeProportion float64
	// Residuals holds the strictly-upper-triangular entries, ready for a
	// histogram renderer.
	Residuals []float64
}

// ResidualDiagnostics extracts the strictly-upper-triangular entries of a
// square residual matrix and summarizes them: how many are large, what
// proportion that is, and the root-mean-square residual.
func ResidualDiagnostics(residuals mat.Matrix) (*ResidualStats, error) {
	n, m := residuals.Dims()
	if n != m {
		return nil, core.NewInvalidInputError("residual matrix", "must be square")
	}
	if n < 2 {
		return nil, core.NewInvalidInputError("residual matrix", "needs at least 2 variables")
	}

	flat := make([]float64, 0, n*(n-1)/2)
	large := 0
	sumSq := 0.0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			v := residuals.At(i, j)
			flat = append(flat, v)
			sumSq += v * v
			if math.Abs(v) > LargeResidualThreshold {
				large++
			}
		}
	}

	total := float64(len(flat))
	return &ResidualStats{
		RMS:             math.Sqrt(sumSq / total),
		LargeCount:      large,
		LargeProportion: float64(large) / total,
		Residuals:       flat,
	}, nil
}
