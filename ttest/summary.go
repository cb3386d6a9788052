// Package ttest runs two-sample t-tests from summary statistics alone, for
// the common textbook case where only group means, standard deviations and
// sizes are published.
package ttest

import (
	"fmt"
	"math"

	"statbook/domain/core"

	"gonum.org/v1/gonum/stat/distuv"
)

// SummaryResult carries the t statistic, degrees of freedom and two-sided
// significance of a pooled-variance two-sample t-test.
type SummaryResult struct {
	T  float64 `json:"t"`
	DF int     `json:"df"`
	P  float64 `json:"p"`
}

// Report formats the result in the textbook's reporting style.
func (r SummaryResult) Report() string {
	return fmt.Sprintf("t(df=%d) = %.4f, p=%.4f", r.DF, r.T, r.P)
}

// FromSummaryStats runs an independent two-sample t-test assuming equal
// population variances, from group means, standard deviations and sample
// sizes. The two-sided p-value comes from the Student-t distribution with
// n1+n2−2 degrees of freedom.
func FromSummaryStats(x1, x2, sd1, sd2 float64, n1, n2 int) (SummaryResult, error) {
	if n1 < 2 || n2 < 2 {
		return SummaryResult{}, core.NewInvalidInputError("sample sizes", "must be >= 2")
	}
	if sd1 < 0 || sd2 < 0 {
		return SummaryResult{}, core.NewInvalidInputError("standard deviations", "must be >= 0")
	}
	if sd1 == 0 && sd2 == 0 && x1 == x2 {
		return SummaryResult{}, core.NewInvalidInputError("inputs", "zero variance with equal means is indeterminate")
	}

	df := n1 + n2 - 2
	pooledVar := (float64(n1-1)*sd1*sd1 + float64(n2-1)*sd2*sd2) / float64(df)
	se := math.Sqrt(pooledVar * (1/float64(n1) + 1/float64(n2)))

	t := (x1 - x2) / se
	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(df)}
	p := 2 * (1 - tDist.CDF(math.Abs(t)))

	return SummaryResult{T: t, DF: df, P: p}, nil
}
