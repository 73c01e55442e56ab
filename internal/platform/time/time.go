// Package time contains time related helpers
package time

import "time"

// DateLayout is the wire format for date range bounds
const DateLayout = "2006-01-02"

// Ptr returns a pointer to t or nil if t is zero
func Ptr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

// Window is an inclusive UTC calendar date interval
// a nil bound leaves that side open; the zero Window admits everything
type Window struct {
	Start *time.Time
	End   *time.Time
}

// ParseWindow builds a Window from "2006-01-02" bounds, either may be empty
func ParseWindow(start, end string) (Window, error) {
	var w Window
	if start != "" {
		t, err := time.ParseInLocation(DateLayout, start, time.UTC)
		if err != nil {
			return Window{}, err
		}
		w.Start = &t
	}
	if end != "" {
		t, err := time.ParseInLocation(DateLayout, end, time.UTC)
		if err != nil {
			return Window{}, err
		}
		// inclusive of the whole end day
		t = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
		w.End = &t
	}
	return w, nil
}

// Contains reports whether t falls inside the window
// a nil timestamp only passes a fully open window
func (w Window) Contains(t *time.Time) bool {
	if w.Start == nil && w.End == nil {
		return true
	}
	if t == nil {
		return false
	}
	u := t.UTC()
	if w.Start != nil && u.Before(*w.Start) {
		return false
	}
	if w.End != nil && u.After(*w.End) {
		return false
	}
	return true
}
