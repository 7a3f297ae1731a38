package services

import (
	"errors"

	"github.com/jobinkurian/parishdesk/internal/models"
)

const (
	ShareLevelLow      = "low"
	ShareLevelBalanced = "balanced"
	ShareLevelHigh     = "high"
)

// Share thresholds for the financial-tips view: below 10% of the
// total a category is "low", above 40% it is "high".
const (
	lowSharePercent  = 10.0
	highSharePercent = 40.0
)

var ErrInvalidAnnualTarget = errors.New("annual target must be positive")

type CategoryShare struct {
	Category string  `json:"category"`
	Amount   int64   `json:"amount"`
	Percent  float64 `json:"percent"`
	Level    string  `json:"level"`
}

type ContributionPlan struct {
	AnnualTarget    int64   `json:"annualTarget"`
	MonthlyAmount   int64   `json:"monthlyAmount"`
	CurrentTotal    int64   `json:"currentTotal"`
	CoveragePercent float64 `json:"coveragePercent"`
}

// ClassifyDuesShares breaks a user's ledger into per-category shares
// of the total, with a threshold level per share. A zero total yields
// all-zero shares marked low.
func ClassifyDuesShares(user models.User) []CategoryShare {
	entries := []struct {
		category string
		amount   int64
	}{
		{"monthlyCollection", user.MonthlyCollection},
		{"cleaning", user.Cleaning},
		{"commonWork", user.CommonWork},
		{"funeralFund", user.FuneralFund},
	}

	total := DuesTotal(user.MonthlyCollection, user.Cleaning, user.CommonWork, user.FuneralFund)

	shares := make([]CategoryShare, 0, len(entries))
	for _, entry := range entries {
		percent := 0.0
		if total > 0 {
			percent = float64(entry.amount) / float64(total) * 100
		}
		shares = append(shares, CategoryShare{
			Category: entry.category,
			Amount:   entry.amount,
			Percent:  percent,
			Level:    classifySharePercent(percent),
		})
	}
	return shares
}

func classifySharePercent(percent float64) string {
	switch {
	case percent < lowSharePercent:
		return ShareLevelLow
	case percent > highSharePercent:
		return ShareLevelHigh
	default:
		return ShareLevelBalanced
	}
}

// BuildContributionPlan spreads an annual giving target over twelve
// months, rounding the monthly amount up so twelve payments always
// reach the target, and reports how far a year at the current monthly
// total would get.
func BuildContributionPlan(currentTotal int64, annualTarget int64) (ContributionPlan, error) {
	if annualTarget <= 0 {
		return ContributionPlan{}, ErrInvalidAnnualTarget
	}
	if currentTotal < 0 {
		currentTotal = 0
	}

	monthly := annualTarget / 12
	if annualTarget%12 != 0 {
		monthly++
	}

	coverage := float64(currentTotal) * 12 / float64(annualTarget) * 100

	return ContributionPlan{
		AnnualTarget:    annualTarget,
		MonthlyAmount:   monthly,
		CurrentTotal:    currentTotal,
		CoveragePercent: coverage,
	}, nil
}
