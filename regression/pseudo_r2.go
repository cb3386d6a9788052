// Package regression provides goodness-of-fit measures for models fit by
// maximum likelihood.
package regression

import (
	"math"

	"statbook/domain/core"
	"statbook/domain/stats"
)

// PseudoR2 bundles the three deviance-based analogues of R² for a logistic
// regression. None has a single canonical definition; all three are reported
// side by side.
type PseudoR2 struct {
	// HosmerLemeshow is 1 − deviance/nullDeviance (McFadden-style).
	HosmerLemeshow float64 `json:"hosmer_lemeshow"`
	// CoxSnell is 1 − exp(−(nullDeviance − deviance)/N).
	CoxSnell float64 `json:"cox_snell"`
	// Nagelkerke rescales Cox-Snell to a [0, 1] ceiling.
	Nagelkerke float64 `json:"nagelkerke"`
}

// LogisticPseudoR2 computes the three pseudo-R² coefficients from a fitted
// logistic regression summary. Values are returned unrounded; display
// rounding is a presentation concern.
func LogisticPseudoR2(fit stats.LogisticFitSummary) (PseudoR2, error) {
	if fit.N <= 0 {
		return PseudoR2{}, core.NewInvalidInputError("fitted-value count", "must be > 0")
	}
	if fit.NullDeviance == 0 {
		return PseudoR2{}, core.NewInvalidInputError("null deviance", "must be nonzero")
	}

	n := float64(fit.N)
	rl := 1 - fit.Deviance/fit.NullDeviance
	rcs := 1 - math.Exp(-(fit.NullDeviance-fit.Deviance)/n)
	rn := rcs / (1 - math.Exp(-fit.NullDeviance/n))

	return PseudoR2{
		HosmerLemeshow: rl,
		CoxSnell:       rcs,
		Nagelkerke:     rn,
	}, nil
}
