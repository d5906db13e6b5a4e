package entity

import "math"

// LedgerEntry is one row appended to the mileage ledger
type LedgerEntry struct {
	Date        string  `json:"date"` // ISO-8601 date, e.g. 2026-01-31
	Description string  `json:"description"`
	Km          float64 `json:"km"` // negative for commute deductions
}

// RoundedKm returns Km rounded to two decimals
func (e LedgerEntry) RoundedKm() float64 {
	return math.Round(e.Km*100) / 100
}

// LedgerAppendResult reports where an entry landed
type LedgerAppendResult struct {
	Row           int    `json:"row"`
	SavedFilePath string `json:"savedFilePath"`
}
