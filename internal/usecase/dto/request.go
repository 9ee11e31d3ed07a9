package dto

// TripPlanRequest - trip planning request body. Origin, Destination and
// StartDate are required; the check is manual in the handler to keep the
// legacy error message exact. Budget and Preferences are echoed verbatim.
type TripPlanRequest struct {
	Origin      string      `json:"origin"`
	Destination string      `json:"destination"`
	StartDate   string      `json:"startDate"` // YYYY-MM-DD
	EndDate     string      `json:"endDate,omitempty"`
	Budget      interface{} `json:"budget,omitempty"`
	Preferences interface{} `json:"preferences,omitempty"`
}

// HasRequiredFields reports whether the three required fields are present.
func (r *TripPlanRequest) HasRequiredFields() bool {
	return r.Origin != "" && r.Destination != "" && r.StartDate != ""
}

// RecentTripsRequest - query parameters for the trip history listing.
type RecentTripsRequest struct {
	Limit int `json:"limit" validate:"omitempty,min=1,max=100"`
}

// FlightOptionsRequest - path parameter for the flight board proxy.
type FlightOptionsRequest struct {
	AirportCode string `json:"airport_code" validate:"required,alphanum,min=3,max=4"`
}
