package service

import (
	"strconv"
	"strings"
)

// ScoreVersion identifies the scoring rule set persisted with each
// submission, so historical scores stay interpretable after recalibration.
const ScoreVersion = "v1"

// ScoringInput carries the onboarding answers the score is computed from.
// All fields arrive as the free-text choices the funnel collects.
type ScoringInput struct {
	Industry         string
	City             string
	AvgCustomerValue string
	CurrentInquiries string
	DesiredInquiries string
	BudgetRange      string
	HasSalesTeam     string
}

var industryWeights = map[string]int{
	"real estate": 12,
	"finance":     12,
	"healthcare":  10,
	"education":   10,
	"retail":      10,
	"hospitality": 8,
	"automotive":  8,
}

var metroCities = map[string]bool{
	"mumbai":    true,
	"delhi":     true,
	"bangalore": true,
	"bengaluru": true,
	"pune":      true,
	"hyderabad": true,
	"chennai":   true,
	"kolkata":   true,
	"ahmedabad": true,
}

// ComputeScore derives a lead-quality score in [0,100] from the submitted
// answers. Pure and deterministic: the server persists this value and
// ignores any score claimed by the browser.
func ComputeScore(in ScoringInput) int {
	score := 8

	score += budgetPoints(in.BudgetRange)
	score += valuePoints(parseAmount(in.AvgCustomerValue))
	score += growthPoints(in.CurrentInquiries, in.DesiredInquiries)

	if strings.EqualFold(strings.TrimSpace(in.HasSalesTeam), "yes") {
		score += 10
	} else {
		score += 4
	}

	if w, ok := industryWeights[normalize(in.Industry)]; ok {
		score += w
	} else {
		score += 6
	}

	if metroCities[normalize(in.City)] {
		score += 8
	} else {
		score += 4
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}

func budgetPoints(budgetRange string) int {
	switch normalize(budgetRange) {
	case "<10k":
		return 4
	case "10k-25k":
		return 9
	case "25k-40k":
		return 14
	case "40k-75k":
		return 19
	case "75k+", ">75k":
		return 24
	default:
		return 4
	}
}

func valuePoints(amount float64) int {
	switch {
	case amount >= 100000:
		return 16
	case amount >= 50000:
		return 12
	case amount >= 20000:
		return 9
	case amount >= 5000:
		return 6
	default:
		return 3
	}
}

func growthPoints(current, desired string) int {
	cur, _ := strconv.Atoi(strings.TrimSpace(current))
	des, _ := strconv.Atoi(strings.TrimSpace(desired))

	if des <= 0 {
		return 2
	}
	if cur <= 0 {
		// No existing inquiry flow but wants some: treat as modest growth
		return 4
	}

	ratio := float64(des) / float64(cur)
	switch {
	case ratio >= 4:
		return 10
	case ratio >= 2:
		return 7
	case ratio > 1:
		return 4
	default:
		return 2
	}
}

// parseAmount reads amounts like "50k", "₹1,20,000" or "75000". Returns 0
// when nothing numeric can be read.
func parseAmount(s string) float64 {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.TrimPrefix(s, "₹")
	s = strings.ReplaceAll(s, ",", "")

	multiplier := 1.0
	if strings.HasSuffix(s, "k") {
		multiplier = 1000
		s = strings.TrimSuffix(s, "k")
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v * multiplier
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
