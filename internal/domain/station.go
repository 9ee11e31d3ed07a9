package domain

import (
	"regexp"
	"strings"
)

// NoStationSentinel is the token the generative resolver is instructed to
// return when a city has no major railway station.
const NoStationSentinel = "NO_STATION"

// stationCodePattern - railway station codes are short uppercase
// identifiers (NDLS, CSMT, MAS, ...).
var stationCodePattern = regexp.MustCompile(`^[A-Z]{2,5}$`)

// stationTable maps normalized city names to railway station codes.
// Loaded once into immutable process-wide state; earlier revisions carried
// diverging copies of this list, this is the canonical union.
var stationTable = map[string]string{
	"mumbai":             "CSMT",
	"delhi":              "NDLS",
	"new delhi":          "NDLS",
	"bangalore":          "SBC",
	"bengaluru":          "SBC",
	"chennai":            "MAS",
	"kolkata":            "HWH",
	"pune":               "PUNE",
	"ahmedabad":          "ADI",
	"hyderabad":          "SC",
	"jaipur":             "JP",
	"lucknow":            "LKO",
	"kanpur":             "CNB",
	"nagpur":             "NGP",
	"indore":             "INDB",
	"bhopal":             "BPL",
	"vadodara":           "BRC",
	"surat":              "ST",
	"rajkot":             "RJT",
	"coimbatore":         "CBE",
	"kochi":              "ERS",
	"thiruvananthapuram": "TVC",
	"guwahati":           "GHY",
	"patna":              "PNBE",
	"ranchi":             "RNC",
	"bhubaneswar":        "BBS",
	"visakhapatnam":      "VSKP",
	"vijayawada":         "BZA",
}

// NormalizeCity lowercases and trims a raw city name for table lookup.
func NormalizeCity(city string) string {
	return strings.ToLower(strings.TrimSpace(city))
}

// StationCodeForCity returns the mapped station code for a known city.
// The hit path never fails and performs no I/O.
func StationCodeForCity(city string) (string, bool) {
	code, ok := stationTable[NormalizeCity(city)]
	return code, ok
}

// IsValidStationCode reports whether a string has the station-code shape.
// Used to reject free-form generative output before trusting it as a code.
func IsValidStationCode(s string) bool {
	return stationCodePattern.MatchString(s)
}
