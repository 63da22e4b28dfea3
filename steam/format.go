package steam

import (
	"strconv"
	"time"
)

// FormatTimestamp renders a Unix timestamp in local time with the zone
// abbreviation. Non-positive values fall back to the raw number.
func FormatTimestamp(ts int64) string {
	if ts <= 0 {
		return strconv.FormatInt(ts, 10)
	}
	return time.Unix(ts, 0).Local().Format("2006-01-02 15:04:05 MST")
}
