package service

import (
	"testing"
)

func TestComputeScoreKnownProfile(t *testing.T) {
	// A retail business in a metro with a 4x growth target, mid budget
	// and a sales team. The exact value is pinned so recalibration is a
	// deliberate act that bumps ScoreVersion.
	in := ScoringInput{
		Industry:         "Retail",
		City:             "Pune",
		AvgCustomerValue: "50k",
		CurrentInquiries: "5",
		DesiredInquiries: "20",
		BudgetRange:      "25k-40k",
		HasSalesTeam:     "yes",
	}

	if got := ComputeScore(in); got != 72 {
		t.Errorf("ComputeScore() = %d, want 72", got)
	}
}

func TestComputeScoreDeterministic(t *testing.T) {
	in := ScoringInput{
		Industry:         "real estate",
		City:             "Mumbai",
		AvgCustomerValue: "₹1,20,000",
		CurrentInquiries: "10",
		DesiredInquiries: "100",
		BudgetRange:      "75k+",
		HasSalesTeam:     "Yes",
	}

	first := ComputeScore(in)
	for i := 0; i < 5; i++ {
		if got := ComputeScore(in); got != first {
			t.Fatalf("ComputeScore() not deterministic: %d != %d", got, first)
		}
	}
}

func TestComputeScoreBounds(t *testing.T) {
	cases := []struct {
		name string
		in   ScoringInput
	}{
		{"empty input", ScoringInput{}},
		{"garbage input", ScoringInput{
			Industry:         "???",
			City:             "nowhere",
			AvgCustomerValue: "not a number",
			CurrentInquiries: "-3",
			DesiredInquiries: "abc",
			BudgetRange:      "whatever",
			HasSalesTeam:     "maybe",
		}},
		{"maximal input", ScoringInput{
			Industry:         "finance",
			City:             "Delhi",
			AvgCustomerValue: "500k",
			CurrentInquiries: "1",
			DesiredInquiries: "50",
			BudgetRange:      "75k+",
			HasSalesTeam:     "yes",
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputeScore(tc.in)
			if got < 0 || got > 100 {
				t.Errorf("ComputeScore() = %d, out of [0,100]", got)
			}
		})
	}
}

func TestComputeScoreOrdering(t *testing.T) {
	weak := ScoringInput{
		Industry:         "unknown",
		City:             "smalltown",
		AvgCustomerValue: "1000",
		CurrentInquiries: "10",
		DesiredInquiries: "10",
		BudgetRange:      "<10k",
		HasSalesTeam:     "no",
	}
	strong := ScoringInput{
		Industry:         "finance",
		City:             "Bangalore",
		AvgCustomerValue: "200k",
		CurrentInquiries: "5",
		DesiredInquiries: "50",
		BudgetRange:      "75k+",
		HasSalesTeam:     "yes",
	}

	if ComputeScore(weak) >= ComputeScore(strong) {
		t.Errorf("weak profile scored %d, strong scored %d; want weak < strong",
			ComputeScore(weak), ComputeScore(strong))
	}
}

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"50k", 50000},
		{"50K", 50000},
		{"75000", 75000},
		{"₹1,20,000", 120000},
		{" 10k ", 10000},
		{"", 0},
		{"abc", 0},
		{"12.5k", 12500},
	}

	for _, tc := range cases {
		if got := parseAmount(tc.in); got != tc.want {
			t.Errorf("parseAmount(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestGrowthPoints(t *testing.T) {
	cases := []struct {
		name             string
		current, desired string
		want             int
	}{
		{"4x growth", "5", "20", 10},
		{"2x growth", "10", "20", 7},
		{"modest growth", "10", "15", 4},
		{"no growth", "20", "20", 2},
		{"shrinking", "20", "10", 2},
		{"no desired", "5", "", 2},
		{"no current", "", "20", 4},
		{"zero current", "0", "20", 4},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := growthPoints(tc.current, tc.desired); got != tc.want {
				t.Errorf("growthPoints(%q, %q) = %d, want %d", tc.current, tc.desired, got, tc.want)
			}
		})
	}
}
