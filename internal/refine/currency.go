// internal/refine/currency.go
package refine

import "strings"

// RateTable maps an upper-cased currency code to its rate against USD.
// The table is fixed for the process lifetime; there is no live rate feed.
type RateTable map[string]float64

// NewRateTable normalizes the keys of rates to upper case.
func NewRateTable(rates map[string]float64) RateTable {
	table := make(RateTable, len(rates))
	for code, rate := range rates {
		if rate > 0 {
			table[strings.ToUpper(code)] = rate
		}
	}
	return table
}

// Rate looks up the USD rate for code, case-insensitively.
func (t RateTable) Rate(code string) (float64, bool) {
	rate, ok := t[strings.ToUpper(code)]
	return rate, ok
}

// ToUSD converts amount from the given currency into USD. The second
// return value is false when the code is not in the table; callers must
// treat that as "cannot display a converted price", not a fault. A zero
// amount is the unknown-price sentinel and passes through unchanged.
func (t RateTable) ToUSD(amount float64, code string) (float64, bool) {
	if amount == 0 {
		return 0, true
	}
	rate, ok := t.Rate(code)
	if !ok {
		return 0, false
	}
	return amount * rate, true
}

// Convert converts amount between two currency codes via USD. Unknown
// codes are never guessed or defaulted; either side missing yields ok=false.
func (t RateTable) Convert(amount float64, from, to string) (float64, bool) {
	if amount == 0 {
		return 0, true
	}

	rateFrom, okFrom := t.Rate(from)
	rateTo, okTo := t.Rate(to)
	if !okFrom || !okTo {
		return 0, false
	}

	return amount * rateFrom / rateTo, true
}
