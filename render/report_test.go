package render

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"statbook/effectsize"
	"statbook/factor"
	"statbook/regression"
	"statbook/repeated"

	"github.com/fatih/color"
	"gonum.org/v1/gonum/mat"
)

func TestAdequacyReport(t *testing.T) {
	color.NoColor = true

	x := mat.NewDense(3, 3, []float64{
		1, 0.5, 0.5,
		0.5, 1, 0.5,
		0.5, 0.5, 1,
	})
	res, err := factor.SamplingAdequacyFromCorrelation(x)
	if err != nil {
		t.Fatalf("SamplingAdequacyFromCorrelation: %v", err)
	}

	out := AdequacyReport(res, []string{"anxiety", "fear", "worry"})
	for _, want := range []string{"Overall KMO = 0.692", "mediocre", "anxiety", "fear", "worry"} {
		if !strings.Contains(out, want) {
			t.Fatalf("report missing %q:\n%s", want, out)
		}
	}
}

func TestAdequacyReport_FallbackNames(t *testing.T) {
	color.NoColor = true

	x := mat.NewDense(2, 2, []float64{1, 0.3, 0.3, 1})
	res, err := factor.SamplingAdequacyFromCorrelation(x)
	if err != nil {
		t.Fatalf("SamplingAdequacyFromCorrelation: %v", err)
	}

	out := AdequacyReport(res, nil)
	if !strings.Contains(out, "V1") || !strings.Contains(out, "V2") {
		t.Fatalf("expected positional variable labels:\n%s", out)
	}
}

func TestPseudoR2Report(t *testing.T) {
	out := PseudoR2Report(regression.PseudoR2{
		HosmerLemeshow: 0.5,
		CoxSnell:       0.181269,
		Nagelkerke:     0.549834,
	})
	for _, want := range []string{"0.500", "0.181", "0.550"} {
		if !strings.Contains(out, want) {
			t.Fatalf("report missing %q:\n%s", want, out)
		}
	}
}

func TestPairedTableReport(t *testing.T) {
	tbl, err := repeated.MeanAdjust(repeated.PairedTable{
		NameA: "picture",
		NameB: "real",
		A:     []float64{10, 20},
		B:     []float64{30, 40},
	})
	if err != nil {
		t.Fatalf("MeanAdjust: %v", err)
	}

	out := PairedTableReport(tbl)
	if !strings.Contains(out, "pictureAdjusted") || !strings.Contains(out, "realAdjusted") {
		t.Fatalf("expected Adjusted column headers:\n%s", out)
	}
}

func TestResidualReport(t *testing.T) {
	m := mat.NewDense(3, 3, []float64{
		0, 0.01, 0.08,
		0.01, 0, -0.02,
		0.08, -0.02, 0,
	})
	res, err := factor.ResidualDiagnostics(m)
	if err != nil {
		t.Fatalf("ResidualDiagnostics: %v", err)
	}

	out := ResidualReport(res)
	if !strings.Contains(out, "Number of absolute residuals > 0.05 = 1") {
		t.Fatalf("unexpected residual report:\n%s", out)
	}
	// The report quotes the same cutoff the computation flags against.
	want := fmt.Sprintf("> %.2f =", factor.LargeResidualThreshold)
	if !strings.Contains(out, want) {
		t.Fatalf("report cutoff drifted from computation threshold:\n%s", out)
	}
}

func TestResidualHistogram(t *testing.T) {
	var buf bytes.Buffer
	err := ResidualHistogram(&buf, []float64{-0.04, -0.01, 0.0, 0.01, 0.02, 0.03, 0.08}, 5)
	if err != nil {
		t.Fatalf("ResidualHistogram: %v", err)
	}
	if !bytes.Contains(buf.Bytes(), []byte("echarts")) {
		t.Fatalf("expected an echarts HTML page, got %d bytes", buf.Len())
	}
}

func TestRankTestLine(t *testing.T) {
	out := RankTestLine(effectsize.RankTestResult{R: -0.5012, DataLabel: "sunday bdi"})
	if !strings.Contains(out, "sunday bdi") || !strings.Contains(out, "-0.501") {
		t.Fatalf("unexpected line: %q", out)
	}
}
