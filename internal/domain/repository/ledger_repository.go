package repository

import (
	"context"

	"koerplan/internal/domain/entity"
)

// LedgerRepository appends rows to the mileage spreadsheet
type LedgerRepository interface {
	// Append writes one entry to the next free row and saves the workbook.
	// templatePath is the selected template; the ledger lives next to it.
	Append(ctx context.Context, templatePath string, entry entity.LedgerEntry) (*entity.LedgerAppendResult, error)

	// AppendBatch writes all entries in one open/save cycle. Either every
	// entry is saved or none is.
	AppendBatch(ctx context.Context, templatePath string, entries []entity.LedgerEntry) ([]entity.LedgerAppendResult, error)
}
