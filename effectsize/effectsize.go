// Package effectsize converts test statistics into standardized effect sizes.
package effectsize

import (
	"math"

	"statbook/domain/core"
	"statbook/domain/stats"

	"gonum.org/v1/gonum/stat/distuv"
)

// FromT converts a t statistic and its degrees of freedom into the effect
// size r = sqrt(t² / (t² + df)), a value in [0, 1).
func FromT(t, df float64) (float64, error) {
	if df <= 0 {
		return 0, core.NewInvalidInputError("df", "must be > 0")
	}
	return math.Sqrt(t * t / (t*t + df)), nil
}

// RankTestResult carries the effect size derived from a rank test alongside
// the z score it came from and the label of the underlying data.
type RankTestResult struct {
	R         float64 `json:"r"`
	Z         float64 `json:"z"`
	DataLabel string  `json:"data_label"`
}

// FromRankTest converts a fitted rank test's two-sided p-value into the
// effect size r = z / sqrt(N), where z is the standard-normal quantile of
// p/2 and N the total combined sample size. A p-value of exactly 1 yields
// r = 0; p must be strictly positive since the quantile diverges at 0.
func FromRankTest(summary stats.RankTestSummary, n int) (RankTestResult, error) {
	if n <= 0 {
		return RankTestResult{}, core.NewInvalidInputError("n", "must be > 0")
	}
	if summary.PValue <= 0 || summary.PValue > 1 {
		return RankTestResult{}, core.NewInvalidInputError("p-value", "must be in (0, 1]")
	}

	z := distuv.UnitNormal.Quantile(summary.PValue / 2)
	return RankTestResult{
		R:         z / math.Sqrt(float64(n)),
		Z:         z,
		DataLabel: summary.DataLabel,
	}, nil
}
