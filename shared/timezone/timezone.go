package timezone

import (
	"sync/atomic"
	"time"
	_ "time/tzdata" // desktop installs may ship without a zoneinfo database

	"github.com/rs/zerolog/log"
)

var appLocation atomic.Pointer[time.Location]

// Init loads the named IANA location. Unknown or empty names fall back to UTC.
func Init(name string) {
	if name == "" {
		log.Warn().Msg("No timezone configured, using UTC as default")
		appLocation.Store(time.UTC)

		return
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().
			Err(err).
			Str("timezone", name).
			Msg("Failed to load timezone, falling back to UTC. Please use standard timezone names like 'Asia/Tokyo', 'UTC', 'America/New_York'")
		appLocation.Store(time.UTC)

		return
	}

	appLocation.Store(loc)
	log.Info().
		Str("timezone", name).
		Str("location", loc.String()).
		Msg("Application timezone initialized")
}

// GetLocation returns the current application timezone location
func GetLocation() *time.Location {
	if loc := appLocation.Load(); loc != nil {
		return loc
	}

	return time.UTC
}

// Now returns the current time in the application timezone
func Now() time.Time {
	return time.Now().In(GetLocation())
}

// ToAppTime converts a time to the application timezone
func ToAppTime(t time.Time) time.Time {
	return t.In(GetLocation())
}

// Parse parses a time string in the application timezone
func Parse(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, GetLocation())
}

// Format formats a time in the application timezone
func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}
