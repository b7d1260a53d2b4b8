package culture

import (
	"fmt"
	"time"

	"github.com/araddon/dateparse"
	"github.com/ncruces/go-strftime"
)

// ParseToEpochMillis converts a human-readable date in the local zone to a
// millisecond epoch.
func ParseToEpochMillis(date string) (int64, error) {
	return ParseToEpochMillisIn(date, time.Local)
}

// ParseToEpochMillisIn is ParseToEpochMillis with an explicit location for
// dates that carry no zone. Sub-second precision is dropped.
func ParseToEpochMillisIn(date string, location *time.Location) (int64, error) {
	t, err := dateparse.ParseIn(date, location)
	if err != nil {
		return 0, fmt.Errorf("parsing date: %w", err)
	}

	return t.Unix() * int64(time.Second/time.Millisecond), nil
}

// FormatFromEpochMillis renders a millisecond epoch with a strftime pattern
// such as "%Y-%m-%d %H:%M" in the local zone.
func FormatFromEpochMillis(millis int64, pattern string) string {
	return FormatFromEpochMillisIn(millis, pattern, time.Local)
}

// FormatFromEpochMillisIn is FormatFromEpochMillis in an explicit location.
func FormatFromEpochMillisIn(millis int64, pattern string, location *time.Location) string {
	return strftime.Format(pattern, time.UnixMilli(millis).In(location))
}
