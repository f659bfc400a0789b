// Package timezone provides time utilities for the application.
//
// Two groups of helpers live here:
//
//  1. Presentation helpers bound to the configured application timezone:
//     now := timezone.Now()                    // Get current time in app timezone
//     appTime := timezone.ToAppTime(someTime)  // Convert any time to app timezone
//     formatted := timezone.Format(time.Now(), "2006-01-02 15:04:05")
//     t, err := timezone.Parse("2006-01-02", "2024-01-01")
//
//  2. UTC helpers used by the scheduling engine. These never read the system
//     clock; "now" is always passed in, usually from a Clock:
//     start := timezone.ToUTC(req.StartTime)
//     day := timezone.StartOfDayUTC(start)
//     hours := timezone.HoursBetween(clock.Now(), booking.StartTime)
//     interval := timezone.NewInterval(start, end)
//
// The timezone is configured via the APP_TIMEZONE environment variable
// and is automatically initialized when the package is imported.
// Use standard IANA timezone database names for reliable cross-platform compatibility.
package timezone
