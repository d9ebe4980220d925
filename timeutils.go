package bustime

import "time"

// Bustime wire layouts. Predictions carry minute precision; some feeds add
// seconds.
const (
	timeLayout        = "20060102 15:04"
	timeLayoutSeconds = "20060102 15:04:05"
)

// ParseTime parses a Bustime timestamp such as "20160809 14:25". The value
// has no zone marker; it is interpreted in loc, which for CTA data should be
// the agency's local time (America/Chicago). A nil loc means time.Local.
func ParseTime(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(timeLayout, s, loc)
	if err == nil {
		return t, nil
	}
	return time.ParseInLocation(timeLayoutSeconds, s, loc)
}

// GeneratedAt parses the tmstmp field.
func (p Prediction) GeneratedAt(loc *time.Location) (time.Time, error) {
	return ParseTime(p.Timestamp, loc)
}

// PredictedAt parses the prdtm field.
func (p Prediction) PredictedAt(loc *time.Location) (time.Time, error) {
	return ParseTime(p.PredictedTime, loc)
}
