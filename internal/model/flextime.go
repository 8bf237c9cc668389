package model

import (
	"encoding/json"
	"math"
	"time"
)

// Textual layouts accepted for content timestamps, tried in order. The
// colonless offset form is what the Instagram Graph API emits.
var flexTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05-0700",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// FlexTime is a content timestamp as delivered by a source platform.
// Platforms deliver timestamps in one of three representations: epoch seconds
// (integer or fractional), ISO-8601 text, or a native time value. All
// comparisons go through Normalize, never through the raw representation.
// A FlexTime that could not be parsed is invalid rather than an error, so a
// single bad item never aborts a batch.
type FlexTime struct {
	t     time.Time
	valid bool
	raw   string
}

// FlexTimeFrom builds a FlexTime from a native time value.
func FlexTimeFrom(t time.Time) FlexTime {
	return FlexTime{t: t, valid: true}
}

// FlexTimeFromUnix builds a FlexTime from epoch seconds.
// Fractional seconds are preserved.
func FlexTimeFromUnix(sec float64) FlexTime {
	whole, frac := math.Modf(sec)
	return FlexTime{t: time.Unix(int64(whole), int64(frac*float64(time.Second))), valid: true}
}

// FlexTimeFromString builds a FlexTime from ISO-8601 text. Text without an
// offset is treated as UTC wall-clock. Unparseable text yields an invalid
// FlexTime, not an error.
func FlexTimeFromString(s string) FlexTime {
	for _, layout := range flexTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return FlexTime{t: t, valid: true, raw: s}
		}
	}
	return FlexTime{raw: s}
}

// Normalize returns the timestamp as an offset-free UTC wall-clock instant.
// ok is false when the original representation could not be parsed; callers
// skip such items.
func (f FlexTime) Normalize() (time.Time, bool) {
	if !f.valid {
		return time.Time{}, false
	}
	return f.t.UTC(), true
}

// Valid reports whether the timestamp carries a usable instant.
func (f FlexTime) Valid() bool {
	return f.valid
}

// Raw returns the original textual representation, if any. Used for logging
// skipped items.
func (f FlexTime) Raw() string {
	return f.raw
}

// UnmarshalJSON accepts a JSON number (epoch seconds), a JSON string
// (ISO-8601) or null. Unparseable values decode to an invalid FlexTime so
// that decoding a batch never fails on a single timestamp.
func (f *FlexTime) UnmarshalJSON(data []byte) error {
	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		*f = FlexTimeFromUnix(num)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = FlexTimeFromString(s)
		return nil
	}
	*f = FlexTime{}
	return nil
}

// MarshalJSON emits the normalized instant in RFC 3339, or null when invalid.
func (f FlexTime) MarshalJSON() ([]byte, error) {
	t, ok := f.Normalize()
	if !ok {
		return []byte("null"), nil
	}
	return json.Marshal(t.Format(time.RFC3339Nano))
}
