package estimate

import "time"

// moveDateLayout accepts YYYY-MM-DD as well as unpadded month and day.
const moveDateLayout = "2006-1-2"

// IsPeakSeason reports whether a YYYY-MM-DD move date falls in June, July or August.
// Missing or unparsable dates are treated as off-peak.
func IsPeakSeason(date string) bool {
	if date == "" {
		return false
	}
	d, err := time.Parse(moveDateLayout, date)
	if err != nil {
		return false
	}
	switch d.Month() {
	case time.June, time.July, time.August:
		return true
	default:
		return false
	}
}
