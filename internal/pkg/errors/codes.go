package errors

import "net/http"

var (
	ErrMissingTripFields = New(
		"MISSING_TRIP_FIELDS",
		"Please provide origin, destination, and start date",
		http.StatusBadRequest,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInvalidAirportCode = New(
		"INVALID_AIRPORT_CODE",
		"Invalid airport code",
		http.StatusBadRequest,
	)

	ErrProviderUnavailable = New(
		"PROVIDER_UNAVAILABLE",
		"No response received from external API",
		http.StatusInternalServerError,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
