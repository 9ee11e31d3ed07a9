package domain

// TrainRecord - a train normalized from a provider payload. Each provider
// adapter owns its raw response shape and emits this type, so downstream
// formatting never branches on provider field names.
type TrainRecord struct {
	Number          string
	Name            string
	DurationMinutes int
	DepartureTime   string
	ArrivalTime     string
	Distance        string
	// Fare is the explicit lowest fare when the provider supplies one,
	// 0 when only availability strings are available.
	Fare         int
	Availability map[string]string
}

// TrainSearchResult - outcome of a provider search: the normalized records,
// which provider answered, and whether the fallback provider was used.
type TrainSearchResult struct {
	Trains   []TrainRecord
	Source   string
	Fallback bool
}

// TransportOption - the normalized display shape returned to the caller for
// every transport mode. Mode-specific flags are omitted when unset.
type TransportOption struct {
	Service       string            `json:"service"`
	TrainNumber   string            `json:"trainNumber,omitempty"`
	Price         string            `json:"price"`
	Duration      string            `json:"duration"`
	Rating        float64           `json:"rating"`
	Features      []string          `json:"features"`
	Availability  map[string]string `json:"availability,omitempty"`
	DepartureTime string            `json:"departureTime,omitempty"`
	ArrivalTime   string            `json:"arrivalTime,omitempty"`
	Distance      string            `json:"distance,omitempty"`
	Savings       string            `json:"savings,omitempty"`
	Popular       bool              `json:"popular,omitempty"`
	Eco           bool              `json:"eco,omitempty"`
	BestValue     bool              `json:"bestValue,omitempty"`
	Fastest       bool              `json:"fastest,omitempty"`
	Luxury        bool              `json:"luxury,omitempty"`
}
