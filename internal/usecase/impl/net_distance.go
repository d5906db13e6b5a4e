package impl

import (
	"math"

	"koerplan/internal/domain/entity"
	"koerplan/internal/usecase"
)

// CalculateNetDistance returns the deductible kilometres of a trip. Each
// direction is reduced by its commute leg and clamped at zero; absent legs
// count as zero.
func CalculateNetDistance(trip *entity.Trip) usecase.DistanceSummary {
	if trip == nil {
		return usecase.DistanceSummary{}
	}

	summary := usecase.DistanceSummary{
		OutboundKm:      legKm(trip.Trip),
		ReturnKm:        legKm(trip.ReturnTrip),
		CommuteKm:       legKm(trip.Commute),
		ReturnCommuteKm: legKm(trip.ReturnCommute),
	}
	summary.NetKm = math.Max(0, summary.OutboundKm-summary.CommuteKm) +
		math.Max(0, summary.ReturnKm-summary.ReturnCommuteKm)

	return summary
}

func legKm(route *entity.RouteData) float64 {
	if route == nil {
		return 0
	}

	return route.DistanceKm()
}
