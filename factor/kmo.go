// Package factor provides diagnostics used around factor analysis: the
// Kaiser-Meyer-Olkin measure of sampling adequacy and residual statistics
// for a fitted factor solution.
package factor

import (
	"math"

	"statbook/domain/core"
	"statbook/domain/stats"

	"gonum.org/v1/gonum/mat"
	gstat "gonum.org/v1/gonum/stat"
)

// machineEps is the double-precision machine epsilon, used for the relative
// singular-value cutoff in the pseudo-inverse.
const machineEps = 2.220446049250313e-16

// AdequacyResult bundles the outputs of the KMO computation.
type AdequacyResult struct {
	// KMO is the overall sampling-adequacy statistic in [0, 1].
	KMO float64
	// Band is the classification label for KMO (unacceptable .. marvelous).
	Band string
	// MSA holds the per-variable measures of sampling adequacy.
	MSA []float64
	// AntiImageCov is the anti-image covariance matrix S2·iX·S2.
	AntiImageCov *mat.Dense
	// AntiImageCor is the anti-image correlation matrix with its diagonal
	// replaced by the per-variable MSA values.
	AntiImageCor *mat.Dense
	// ImageCor is the image correlation matrix.
	ImageCor *mat.Dense
}

// SamplingAdequacy computes the KMO statistic from raw data: observations in
// rows, variables in columns. The correlation matrix is computed internally.
func SamplingAdequacy(data mat.Matrix) (*AdequacyResult, error) {
	rows, cols := data.Dims()
	if rows < 2 || cols < 2 {
		return nil, core.NewInvalidInputError("data", "needs at least 2 observations of 2 variables")
	}

	var corr mat.SymDense
	gstat.CorrelationMatrix(&corr, data, nil)
	return SamplingAdequacyFromCorrelation(&corr)
}

// SamplingAdequacyFromCorrelation computes the KMO statistic directly from a
// square correlation matrix.
//
// The anti-image covariance is S2·iX·S2 where iX is the pseudo-inverse of the
// correlation matrix X and S2 the diagonal of reciprocals of iX's diagonal;
// the image covariance is X + AIS − 2·S2. Both are rescaled to correlations
// by the inverse square roots of AIS's diagonal. The overall statistic is
// BB / (AA + BB), where BB sums squared off-diagonal correlations and AA sums
// squared off-diagonal anti-image correlations.
func SamplingAdequacyFromCorrelation(x mat.Matrix) (*AdequacyResult, error) {
	n, m := x.Dims()
	if n != m {
		return nil, core.NewInvalidInputError("correlation matrix", "must be square")
	}
	if n < 2 {
		return nil, core.NewInvalidInputError("correlation matrix", "needs at least 2 variables")
	}

	xd := mat.DenseCopyOf(x)
	if !allFinite(xd) {
		return nil, core.NewSingularMatrixError("correlation matrix has non-finite entries (constant column?)")
	}

	ix, err := pinv(xd)
	if err != nil {
		return nil, err
	}

	// S2: reciprocals of the generalized inverse's diagonal.
	s2diag := make([]float64, n)
	for j := 0; j < n; j++ {
		d := ix.At(j, j)
		if d == 0 {
			return nil, core.NewSingularMatrixError("zero diagonal entry in generalized inverse")
		}
		s2diag[j] = 1 / d
	}
	s2 := mat.NewDiagDense(n, s2diag)

	// Anti-image covariance AIS = S2·iX·S2.
	var tmp, ais mat.Dense
	tmp.Mul(s2, ix)
	ais.Mul(&tmp, s2)

	// Image covariance IS = X + AIS − 2·S2.
	var is, twoS2 mat.Dense
	twoS2.Scale(2, s2)
	is.Add(xd, &ais)
	is.Sub(&is, &twoS2)

	// Rescale by the inverse square roots of AIS's diagonal.
	daiDiag := make([]float64, n)
	for j := 0; j < n; j++ {
		daiDiag[j] = math.Sqrt(ais.At(j, j))
	}
	idai, err := pinv(mat.NewDiagDense(n, daiDiag))
	if err != nil {
		return nil, err
	}

	var air, ir mat.Dense
	tmp.Mul(idai, &ais)
	air.Mul(&tmp, idai)
	tmp.Mul(idai, &is)
	ir.Mul(&tmp, idai)

	// Per-column squared off-diagonal sums for the anti-image correlations
	// (a) and the raw correlations (b).
	a := make([]float64, n)
	b := make([]float64, n)
	var aa, bb float64
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			if i == j {
				continue
			}
			va := air.At(i, j)
			a[j] += va * va
			vb := xd.At(i, j)
			b[j] += vb * vb
		}
		aa += a[j]
		bb += b[j]
	}

	msa := make([]float64, n)
	for j := 0; j < n; j++ {
		if a[j]+b[j] > 0 {
			msa[j] = b[j] / (b[j] + a[j])
		}
		air.Set(j, j, msa[j])
	}

	// An exact identity correlation matrix zeroes both sums; no common
	// variance at all is reported as KMO 0.
	kmo := 0.0
	if aa+bb > 0 {
		kmo = bb / (aa + bb)
	}

	return &AdequacyResult{
		KMO:          kmo,
		Band:         stats.ClassifyAdequacy(kmo),
		MSA:          msa,
		AntiImageCov: &ais,
		AntiImageCor: &air,
		ImageCor:     &ir,
	}, nil
}

// pinv computes the Moore-Penrose pseudo-inverse via SVD, dropping singular
// values below a relative tolerance.
func pinv(a mat.Matrix) (*mat.Dense, error) {
	var svd mat.SVD
	if ok := svd.Factorize(a, mat.SVDThin); !ok {
		return nil, core.NewSingularMatrixError("SVD failed to converge")
	}

	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)
	vals := svd.Values(nil)

	rows, cols := a.Dims()
	maxDim := rows
	if cols > maxDim {
		maxDim = cols
	}
	tol := float64(maxDim) * machineEps * vals[0]

	inv := make([]float64, len(vals))
	rank := 0
	for i, s := range vals {
		if s > tol {
			inv[i] = 1 / s
			rank++
		}
	}
	if rank == 0 {
		return nil, core.NewSingularMatrixError("matrix has effective rank zero")
	}

	// pinv(A) = V · diag(1/σ) · Uᵀ
	var tmp, out mat.Dense
	tmp.Mul(&v, mat.NewDiagDense(len(inv), inv))
	out.Mul(&tmp, u.T())
	return &out, nil
}

func allFinite(m *mat.Dense) bool {
	rows, cols := m.Dims()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v := m.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return false
			}
		}
	}
	return true
}
