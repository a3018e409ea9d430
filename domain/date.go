package domain

import "time"

// dateLayout is the stored calendar-date form, day granularity.
const dateLayout = "2006-01-02"

// Date is a calendar date serialized as YYYY-MM-DD. The zero value ("")
// means "not set". Comparisons ignore time of day.
type Date string

// ParseDate normalizes a date string to the canonical YYYY-MM-DD form. It
// accepts the canonical layout and RFC 3339 timestamps, which the stored
// records historically mixed. An empty input yields the zero Date.
func ParseDate(s string) (Date, error) {
	if s == "" {
		return "", nil
	}
	if t, err := time.Parse(dateLayout, s); err == nil {
		return DateOf(t), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return "", err
	}
	return DateOf(t), nil
}

// DateOf truncates a time to its calendar date.
func DateOf(t time.Time) Date {
	return Date(t.Format(dateLayout))
}

// IsZero reports whether the date is unset.
func (d Date) IsZero() bool { return d == "" }

// Time parses the date. ok is false for unset or malformed values.
func (d Date) Time() (t time.Time, ok bool) {
	if d == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(dateLayout, string(d))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Before reports whether d falls on an earlier day than o. Unset or
// malformed dates are never before anything.
func (d Date) Before(o Date) bool {
	dt, ok := d.Time()
	if !ok {
		return false
	}
	ot, ok := o.Time()
	if !ok {
		return false
	}
	return dt.Before(ot)
}

// Normalize re-parses the date so that mixed historical formats collapse to
// the canonical layout at the boundary where cards are written.
func (d Date) Normalize() (Date, error) {
	return ParseDate(string(d))
}
