// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"koerplan/internal/domain/entity"
)

// SearchInput represents the addresses typed by the user
type SearchInput struct {
	Home        string           `json:"home" validate:"required"`
	Work        string           `json:"work"`
	Destination string           `json:"destination" validate:"required"`
	Mode        entity.RouteMode `json:"-"`
}

// SessionState is a snapshot of what the session currently displays
type SessionState struct {
	Generation uint64               `json:"generation"`
	Searching  bool                 `json:"searching"`
	Inputs     entity.TripAddresses `json:"inputs"`
	Mode       entity.RouteMode     `json:"mode,omitempty"`
	Trip       *entity.Trip         `json:"trip,omitempty"`
	Summary    DistanceSummary      `json:"summary"`
	Error      string               `json:"error,omitempty"`
	LedgerPath string               `json:"ledgerPath,omitempty"`
}

// SessionUsecase coordinates searches and saves for a single user session
type SessionUsecase interface {
	// Search composes a new trip. A result superseded by a newer search is
	// discarded and reported as ErrStaleSearch.
	Search(ctx context.Context, input *SearchInput) (*SessionState, error)
	State(ctx context.Context) *SessionState
	Reset(ctx context.Context) *SessionState
	SelectLedger(ctx context.Context, path string) (*SessionState, error)
	Save(ctx context.Context, date string) (*SaveResult, error)
}
