package jwt_generator

import (
	"strconv"
	"time"
)

// expiryUnits maps expiry-string suffixes to their length in seconds.
var expiryUnits = map[byte]int64{
	's': 1,
	'm': 60,
	'h': 3600,
	'd': 86400,
	'w': 604800,
}

// ParseExpiry converts strings like "7d" or "12h" into a duration. Input that
// cannot be parsed falls back to the supplied default.
func ParseExpiry(rawExpiry string, fallback time.Duration) time.Duration {
	if len(rawExpiry) < 2 {
		return fallback
	}

	unit, isKnownUnit := expiryUnits[rawExpiry[len(rawExpiry)-1]]
	if !isKnownUnit {
		return fallback
	}

	value, err := strconv.ParseInt(rawExpiry[:len(rawExpiry)-1], 10, 64)
	if err != nil || value <= 0 {
		return fallback
	}

	return time.Duration(value*unit) * time.Second
}
