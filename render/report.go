// Package render turns computation results into display output: plain-text
// report lines, terminal tables, and an HTML histogram page. Computation
// packages never print; everything user-facing is layered here.
package render

import (
	"fmt"
	"strings"

	"statbook/effectsize"
	"statbook/factor"
	"statbook/regression"
	"statbook/repeated"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// bandColors highlights the KMO classification labels: anything below the
// conventional 0.5 floor shows red, the middle bands yellow, the good ones
// green.
var bandColors = map[string]*color.Color{
	"unacceptable": color.New(color.FgRed),
	"miserable":    color.New(color.FgYellow),
	"mediocre":     color.New(color.FgYellow),
	"middling":     color.New(color.FgYellow),
	"meritorious":  color.New(color.FgGreen),
	"marvelous":    color.New(color.FgGreen),
}

// newTableWriter returns a writer that keeps header text verbatim; column
// names like "pictureAdjusted" must not be case-folded.
func newTableWriter() table.Writer {
	tw := table.NewWriter()
	style := tw.Style()
	style.Format.Header = text.FormatDefault
	return tw
}

// EffectSizeLine formats an effect size with its source label.
func EffectSizeLine(label string, r float64) string {
	return fmt.Sprintf("%s: effect size, r = %.3f", label, r)
}

// RankTestLine formats a rank-test effect size with its data label.
func RankTestLine(res effectsize.RankTestResult) string {
	return EffectSizeLine(res.DataLabel, res.R)
}

// AdequacyReport renders the overall KMO statistic, its classification, and
// the per-variable MSA table. Variable names are optional; missing names
// fall back to positional labels.
func AdequacyReport(res *factor.AdequacyResult, names []string) string {
	var sb strings.Builder

	band := res.Band
	if c, ok := bandColors[band]; ok {
		band = c.Sprint(band)
	}
	fmt.Fprintf(&sb, "Kaiser-Meyer-Olkin measure of sampling adequacy\n")
	fmt.Fprintf(&sb, "Overall KMO = %.3f (%s)\n", res.KMO, band)

	tw := newTableWriter()
	tw.AppendHeader(table.Row{"Variable", "MSA"})
	for j, msa := range res.MSA {
		name := fmt.Sprintf("V%d", j+1)
		if j < len(names) && names[j] != "" {
			name = names[j]
		}
		tw.AppendRow(table.Row{name, fmt.Sprintf("%.3f", msa)})
	}
	sb.WriteString(tw.Render())

	return sb.String()
}

// PseudoR2Report renders the three pseudo-R² coefficients rounded to three
// decimal places, the way the textbook reports them.
func PseudoR2Report(r regression.PseudoR2) string {
	var sb strings.Builder
	sb.WriteString("Pseudo R^2 for logistic regression\n")
	fmt.Fprintf(&sb, "Hosmer and Lemeshow R^2  %.3f\n", r.HosmerLemeshow)
	fmt.Fprintf(&sb, "Cox and Snell R^2        %.3f\n", r.CoxSnell)
	fmt.Fprintf(&sb, "Nagelkerke R^2           %.3f\n", r.Nagelkerke)
	return sb.String()
}

// PairedTableReport renders a paired score table with one row per
// participant.
func PairedTableReport(t repeated.PairedTable) string {
	tw := newTableWriter()
	tw.AppendHeader(table.Row{"", t.NameA, t.NameB})
	for i := range t.A {
		tw.AppendRow(table.Row{i + 1, fmt.Sprintf("%.3f", t.A[i]), fmt.Sprintf("%.3f", t.B[i])})
	}
	return tw.Render()
}

// ResidualReport summarizes residual diagnostics in the reporting style used
// alongside a factor solution.
func ResidualReport(s *factor.ResidualStats) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Root mean squared residual = %.4f\n", s.RMS)
	fmt.Fprintf(&sb, "Number of absolute residuals > %.2f = %d\n", factor.LargeResidualThreshold, s.LargeCount)
	fmt.Fprintf(&sb, "Proportion of absolute residuals > %.2f = %.4f\n", factor.LargeResidualThreshold, s.LargeProportion)
	return sb.String()
}
