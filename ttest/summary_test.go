package ttest

import (
	"math"
	"testing"

	"statbook/domain/core"
)

func TestFromSummaryStats_EqualGroups(t *testing.T) {
	res, err := FromSummaryStats(5, 5, 2, 2, 10, 10)
	if err != nil {
		t.Fatalf("FromSummaryStats: %v", err)
	}
	if res.T != 0 {
		t.Fatalf("expected t = 0 for identical groups, got %v", res.T)
	}
	if math.Abs(res.P-1) > 1e-12 {
		t.Fatalf("expected p = 1 for identical groups, got %v", res.P)
	}
	if res.DF != 18 {
		t.Fatalf("expected df = 18, got %d", res.DF)
	}
}

func TestFromSummaryStats_WorkedExample(t *testing.T) {
	// pooled variance 4, se = sqrt(0.8), t = 2/sqrt(0.8).
	res, err := FromSummaryStats(5, 3, 2, 2, 10, 10)
	if err != nil {
		t.Fatalf("FromSummaryStats: %v", err)
	}
	wantT := 2 / math.Sqrt(0.8)
	if math.Abs(res.T-wantT) > 1e-9 {
		t.Fatalf("expected t = %v, got %v", wantT, res.T)
	}
	if res.DF != 18 {
		t.Fatalf("expected df = 18, got %d", res.DF)
	}
	// Two-sided p for t ≈ 2.236, df = 18 sits between 0.03 and 0.05.
	if res.P <= 0.03 || res.P >= 0.05 {
		t.Fatalf("expected p in (0.03, 0.05), got %v", res.P)
	}
}

func TestFromSummaryStats_ZeroVarianceDistinctMeans(t *testing.T) {
	res, err := FromSummaryStats(5, 3, 0, 0, 10, 10)
	if err != nil {
		t.Fatalf("FromSummaryStats: %v", err)
	}
	if !math.IsInf(res.T, 1) {
		t.Fatalf("expected t = +Inf, got %v", res.T)
	}
	if res.P != 0 {
		t.Fatalf("expected p = 0, got %v", res.P)
	}
}

func TestFromSummaryStats_InvalidInputs(t *testing.T) {
	if _, err := FromSummaryStats(5, 3, 2, 2, 1, 10); !core.IsInvalidInput(err) {
		t.Fatalf("expected invalid-input error for n1 < 2, got %v", err)
	}
	if _, err := FromSummaryStats(5, 3, 2, 2, 10, 0); !core.IsInvalidInput(err) {
		t.Fatalf("expected invalid-input error for n2 < 2, got %v", err)
	}
	if _, err := FromSummaryStats(5, 3, -1, 2, 10, 10); !core.IsInvalidInput(err) {
		t.Fatalf("expected invalid-input error for negative sd, got %v", err)
	}
	if _, err := FromSummaryStats(4, 4, 0, 0, 10, 10); !core.IsInvalidInput(err) {
		t.Fatalf("expected invalid-input error for the 0/0 indeterminate case, got %v", err)
	}
}

func TestReportFormat(t *testing.T) {
	res := SummaryResult{T: 0, DF: 18, P: 1}
	want := "t(df=18) = 0.0000, p=1.0000"
	if got := res.Report(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}
