package usecase

import (
	"context"

	"koerplan/internal/domain/entity"
)

// SaveInput represents one save action
type SaveInput struct {
	LedgerPath string       // selected template, the ledger lives next to it
	Date       string       // ISO-8601 date; empty means today
	Trip       *entity.Trip // trip being saved
}

// SaveResult reports what a save wrote
type SaveResult struct {
	Rows          []int    `json:"rows"`
	SavedFilePath string   `json:"savedFilePath"`
	Snapshots     []string `json:"snapshots"`
	Message       string   `json:"message"`
}

// LedgerUsecase defines the save action
type LedgerUsecase interface {
	Save(ctx context.Context, input *SaveInput) (*SaveResult, error)
}
