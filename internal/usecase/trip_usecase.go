package usecase

import (
	"context"

	"koerplan/internal/domain/entity"
)

// ComposeInput represents one search request
type ComposeInput struct {
	Home        string           `json:"home"`
	Work        string           `json:"work"`
	Destination string           `json:"destination"`
	Mode        entity.RouteMode `json:"mode"`
}

// DistanceSummary is the per-leg and net kilometre figures of a trip
type DistanceSummary struct {
	OutboundKm      float64 `json:"outboundKm"`
	ReturnKm        float64 `json:"returnKm"`
	CommuteKm       float64 `json:"commuteKm"`
	ReturnCommuteKm float64 `json:"returnCommuteKm"`
	NetKm           float64 `json:"netKm"`
}

// TripUsecase defines the trip composition use case
type TripUsecase interface {
	// Compose resolves the addresses and routes every leg of the trip.
	// Any abort returns a nil trip and a user-facing AppError.
	Compose(ctx context.Context, input *ComposeInput) (*entity.Trip, error)
}
