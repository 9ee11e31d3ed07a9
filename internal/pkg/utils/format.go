package utils

import (
	"fmt"
	"regexp"
	"strconv"
)

const (
	// DefaultFare is shown when no fare can be derived from availability data.
	DefaultFare = 500

	// DefaultDuration is shown when a provider omits the journey duration.
	DefaultDuration = "6h 30m"

	// fareMultiplier scales the first numeral found in an availability
	// string (a seat count, not a price) into a plausible fare.
	fareMultiplier = 10
)

var numeralPattern = regexp.MustCompile(`\d+`)

// FormatFare renders an amount as a rupee string, e.g. "₹500".
func FormatFare(amount int) string {
	return fmt.Sprintf("₹%d", amount)
}

// LowestFare derives a displayed fare from per-class availability strings
// such as "CURR_AVBL-0043", "GNWL111/WL48" or "AVAILABLE-0010". When an
// explicit fare is known it wins; otherwise each entry contributes its first
// numeral scaled by fareMultiplier, or DefaultFare when it has no numeral,
// and the minimum is taken.
func LowestFare(explicitFare int, availability map[string]string) string {
	if explicitFare > 0 {
		return FormatFare(explicitFare)
	}

	lowest := 0
	for _, status := range availability {
		fare := DefaultFare
		if match := numeralPattern.FindString(status); match != "" {
			n, err := strconv.Atoi(match)
			if err != nil || n <= 0 {
				// zero seat counts contribute nothing
				continue
			}
			fare = n * fareMultiplier
		}
		if lowest == 0 || fare < lowest {
			lowest = fare
		}
	}

	if lowest == 0 {
		return FormatFare(DefaultFare)
	}
	return FormatFare(lowest)
}

// FormatDuration converts minutes to an "Hh Mm" string.
func FormatDuration(minutes int) string {
	if minutes <= 0 {
		return DefaultDuration
	}
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}
