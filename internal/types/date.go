package types

import (
	"encoding/json"
	"errors"
	"strings"
	"time"
)

// ErrDateFormat is returned when a date value has none of the supported shapes.
var ErrDateFormat = errors.New("the date is not in a supported format")

// dateLayouts are the string layouts accepted for entry dates. The legacy
// frontend stored dates as DD-MM-YYYY (and in one place DD/MM/YYYY), newer
// data uses RFC3339 full-date or timestamps.
var dateLayouts = []string{
	"02-01-2006",
	"02/01/2006",
	"2006-01-02",
	time.RFC3339,
}

// ParseDate parses a date string in any of the supported layouts.
// String dates carry no timezone and are parsed as plain calendar dates in UTC.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
	}

	return time.Time{}, ErrDateFormat
}

// Date is a point in time that unmarshals from the heterogeneous date
// representations found in legacy exports: a string in one of the supported
// layouts, or a timestamp object with epoch seconds as produced by the
// previous document store.
//
// A Date that could not be resolved is the zero value. Callers decide
// whether that is an error or a row to skip.
type Date struct {
	time.Time
}

// NewDate returns a Date for the given time.
func NewDate(t time.Time) Date {
	return Date{Time: t}
}

// timestampShape is the document-store timestamp object.
type timestampShape struct {
	Seconds     int64 `json:"seconds"`
	Nanoseconds int64 `json:"nanoseconds"`
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (d *Date) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" {
		return nil
	}

	if strings.HasPrefix(trimmed, `"`) {
		t, err := ParseDate(strings.Trim(trimmed, `"`))
		if err != nil {
			return err
		}

		d.Time = t
		return nil
	}

	var ts timestampShape
	if err := json.Unmarshal(data, &ts); err != nil {
		return ErrDateFormat
	}

	if ts.Seconds == 0 && ts.Nanoseconds == 0 {
		return ErrDateFormat
	}

	d.Time = time.Unix(ts.Seconds, ts.Nanoseconds).In(time.UTC)
	return nil
}

// MarshalJSON implements the json.Marshaler interface.
func (d Date) MarshalJSON() ([]byte, error) {
	return d.Time.MarshalJSON()
}
