package dto

import "github.com/trip-microservice/internal/domain"

// TripPlanResponse - the legacy wire shape of POST /api/trips/plan. Kept
// verbatim for the frontend: resolver and provider failures degrade into
// placeholder content inside a success response.
type TripPlanResponse struct {
	Success          bool             `json:"success"`
	TripData         TripData         `json:"tripData"`
	TransportOptions TransportOptions `json:"transportOptions"`
}

// TripData echoes the trip parameters with resolved station codes.
// Codes are null when no station could be determined.
type TripData struct {
	Origin            string      `json:"origin"`
	Destination       string      `json:"destination"`
	OriginStationCode *string     `json:"originStationCode"`
	DestStationCode   *string     `json:"destStationCode"`
	StartDate         string      `json:"startDate"`
	EndDate           string      `json:"endDate,omitempty"`
	Budget            interface{} `json:"budget,omitempty"`
	Preferences       interface{} `json:"preferences,omitempty"`
}

// TransportOptions - one option list per transport mode. Every list is
// non-empty: when real data is unavailable a placeholder option explains why.
type TransportOptions struct {
	Train  []domain.TransportOption `json:"train"`
	Car    []domain.TransportOption `json:"car"`
	Bus    []domain.TransportOption `json:"bus"`
	Flight []domain.TransportOption `json:"flight"`
}

// TripPlanError - legacy error shape of the plan endpoint.
type TripPlanError struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// RecentTripsResponse - archived trip listing.
type RecentTripsResponse struct {
	Trips []domain.TripRecord `json:"trips"`
	Total int                 `json:"total"`
}
