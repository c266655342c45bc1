package domain

import (
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Date wraps a calendar date serialized as yyyy-mm-dd, the format the
// backend uses for policy start and end dates.
type Date struct {
	time.Time
}

// NewDate builds a Date from a time, truncating the clock portion.
func NewDate(t time.Time) Date {
	return Date{Time: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// MarshalJSON renders the date as a quoted yyyy-mm-dd string.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`null`), nil
	}
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

// UnmarshalJSON accepts yyyy-mm-dd strings and null.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// String renders the date as yyyy-mm-dd, or empty when unset.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(dateLayout)
}
