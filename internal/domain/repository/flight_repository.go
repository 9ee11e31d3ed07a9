package repository

import (
	"context"
	"encoding/json"
)

// FlightRepository - external flight status API keyed by airport code.
// The payload is passed through verbatim, so it stays a RawMessage.
type FlightRepository interface {
	GetAirportFlights(ctx context.Context, airportCode string) (json.RawMessage, error)
}
