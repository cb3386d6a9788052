package stats

// ============================================================================
// MODEL SUMMARIES (read-only views of externally fitted models)
// ============================================================================

// RankTestSummary exposes the fields of a fitted rank test (e.g. Wilcoxon)
// that effect-size conversion reads: the two-sided p-value and a label for
// the data the test was run on. The fitting procedure itself is an external
// collaborator.
type RankTestSummary struct {
	PValue    float64 `json:"p_value"`
	DataLabel string  `json:"data_label"`
}

// LogisticFitSummary exposes the fields of a fitted logistic regression that
// pseudo-R² computation reads. N is the fitted-value count.
type LogisticFitSummary struct {
	Deviance     float64 `json:"deviance"`
	NullDeviance float64 `json:"null_deviance"`
	N            int     `json:"n"`
}

// ============================================================================
// SAMPLING ADEQUACY CLASSIFICATION
// ============================================================================

// AdequacyBand labels a range of overall KMO values, from its lower bound up
// to the next band's lower bound.
type AdequacyBand struct {
	Lower float64 `json:"lower"`
	Label string  `json:"label"`
}

// AdequacyBands is the ordered classification table for the overall KMO
// statistic, lowest bound first.
var AdequacyBands = []AdequacyBand{
	{Lower: 0.0, Label: "unacceptable"},
	{Lower: 0.5, Label: "miserable"},
	{Lower: 0.6, Label: "mediocre"},
	{Lower: 0.7, Label: "middling"},
	{Lower: 0.8, Label: "meritorious"},
	{Lower: 0.9, Label: "marvelous"},
}

// bandEps absorbs floating-point noise at band boundaries: a statistic that
// is mathematically on a bound (the two-variable case is exactly 0.5) may
// arrive a few ulps under it from the matrix pipeline.
const bandEps = 1e-9

// ClassifyAdequacy maps an overall KMO statistic onto its band label via a
// linear scan of the ordered band table.
func ClassifyAdequacy(kmo float64) string {
	label := AdequacyBands[0].Label
	for _, band := range AdequacyBands {
		if kmo >= band.Lower-bandEps {
			label = band.Label
		}
	}
	return label
}
