// Package timezone provides timezone utilities for the application.
//
// Usage Examples:
//
//  1. Initialization at startup:
//     timezone.Init(cfg.App.Timezone)
//
//  2. Current time in app timezone:
//     now := timezone.Now()
//
//  3. Formatting times in app timezone:
//     formatted := timezone.Format(time.Now(), time.RFC3339)
//
// Supported timezone formats:
// - Standard timezone names only: "UTC", "Asia/Tokyo", "America/New_York", "Europe/London"
//
// The timezone is configured via the APP_TIMEZONE environment variable.
// Until Init is called every helper works in UTC.
package timezone
