package cache

import (
	"fmt"
	"time"
)

// DateFormat is the day-granularity format used in report cache keys. Two
// requests that differ only in time of day produce the same key.
const DateFormat = "02-01-2006"

const reportPrefix = "report"

// ReportKey builds the cache key for a report over the given user and
// window. The colon delimiter keeps usernames from colliding with the date
// components.
func ReportKey(username string, start, end time.Time) string {
	return fmt.Sprintf("%s:%s:%s:%s",
		reportPrefix, username, start.Format(DateFormat), end.Format(DateFormat))
}
