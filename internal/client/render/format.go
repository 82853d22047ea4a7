package render

import "time"

const (
	dayLayout  = "2006-01-02"
	dayDisplay = "Jan 2, 2006"
	timeOutput = "2006-01-02 15:04"
)

// layouts without a zone are read in the display location.
var localLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
	dayLayout,
}

// FormatDay renders an ISO calendar day as "Jan 2, 2006". Anything else
// is returned unchanged.
func FormatDay(day string) string {
	t, err := time.Parse(dayLayout, day)
	if err != nil {
		return day
	}
	return t.Format(dayDisplay)
}

// FormatTime renders an event timestamp in loc. Unparsable values are
// returned unchanged.
func FormatTime(raw string, loc *time.Location) string {
	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return t.In(loc).Format(timeOutput)
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t.Format(timeOutput)
		}
	}
	return raw
}
