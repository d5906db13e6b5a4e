// Package entity contains the core business objects of the project.
package entity

// RouteMode selects how the outbound and return legs are routed
type RouteMode string

const (
	// RouteModeDirect drives straight from home to the destination
	RouteModeDirect RouteMode = "direct"
	// RouteModeFerry splits each direction at a pair of ferry terminals
	RouteModeFerry RouteMode = "ferry"
)

// IsValid reports whether m is a known mode
func (m RouteMode) IsValid() bool {
	return m == RouteModeDirect || m == RouteModeFerry
}

// TripAddresses holds the addresses as the user typed them
type TripAddresses struct {
	Home        string `json:"home"`
	Work        string `json:"work"`
	Destination string `json:"destination"`
}

// ResolvedAddresses holds the geocoder display names picked for each address
type ResolvedAddresses struct {
	Home        string `json:"home,omitempty"`
	Work        string `json:"work,omitempty"`
	Destination string `json:"destination,omitempty"`
}

// Trip is the working set produced by one search action. Nil legs are absent.
type Trip struct {
	Mode     RouteMode         `json:"mode"`
	Inputs   TripAddresses     `json:"inputs"`
	Resolved ResolvedAddresses `json:"resolved"`

	Trip          *RouteData `json:"trip,omitempty"`
	ReturnTrip    *RouteData `json:"returnTrip,omitempty"`
	Commute       *RouteData `json:"commute,omitempty"`
	ReturnCommute *RouteData `json:"returnCommute,omitempty"`

	// Ferry mode only: the two driving legs of each direction
	FerrySegments       []RouteData `json:"ferrySegments,omitempty"`
	ReturnFerrySegments []RouteData `json:"returnFerrySegments,omitempty"`
}

// HasCommute reports whether any commute deduction leg is present
func (t *Trip) HasCommute() bool {
	return t.Commute != nil || t.ReturnCommute != nil
}

// FerryTerminal is a fixed anchor point used to split a ferry crossing
type FerryTerminal struct {
	Name     string      `json:"name"`
	Location Coordinates `json:"location"`
}

// LegRole names one displayed leg of a trip
type LegRole string

const (
	LegRoleTrip          LegRole = "trip"
	LegRoleReturnTrip    LegRole = "returnTrip"
	LegRoleCommute       LegRole = "commute"
	LegRoleReturnCommute LegRole = "returnCommute"
)

// TripLeg is one displayed leg. In ferry mode a direction is drawn as its
// driving segments rather than the combined route.
type TripLeg struct {
	Role   LegRole
	Dashed bool // commute deductions
	Routes []RouteData
}

// Legs returns the present legs in display order
func (t *Trip) Legs() []TripLeg {
	if t == nil {
		return nil
	}

	legs := make([]TripLeg, 0, 4)
	if t.Trip != nil {
		legs = append(legs, TripLeg{Role: LegRoleTrip, Routes: t.directionRoutes(t.Trip, t.FerrySegments)})
	}
	if t.ReturnTrip != nil {
		legs = append(legs, TripLeg{Role: LegRoleReturnTrip, Routes: t.directionRoutes(t.ReturnTrip, t.ReturnFerrySegments)})
	}
	if t.Commute != nil {
		legs = append(legs, TripLeg{Role: LegRoleCommute, Dashed: true, Routes: []RouteData{*t.Commute}})
	}
	if t.ReturnCommute != nil {
		legs = append(legs, TripLeg{Role: LegRoleReturnCommute, Dashed: true, Routes: []RouteData{*t.ReturnCommute}})
	}

	return legs
}

func (t *Trip) directionRoutes(combined *RouteData, segments []RouteData) []RouteData {
	if t.Mode == RouteModeFerry && len(segments) > 0 {
		return segments
	}

	return []RouteData{*combined}
}
