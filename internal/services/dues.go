package services

import "errors"

var ErrNegativeDues = errors.New("dues amounts must not be negative")

// DuesTotal sums the four ledger categories. The stored total column
// must always equal this value; the repository enforces it on write.
func DuesTotal(monthlyCollection, cleaning, commonWork, funeralFund int64) int64 {
	return monthlyCollection + cleaning + commonWork + funeralFund
}

func ValidateDuesAmounts(amounts ...int64) error {
	for _, amount := range amounts {
		if amount < 0 {
			return ErrNegativeDues
		}
	}
	return nil
}
