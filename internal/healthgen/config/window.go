package config

import (
	"fmt"
	"time"

	"github.com/araddon/dateparse"
)

// WindowCfg is an inclusive calendar date range written as free-form date strings.
type WindowCfg struct {
	Start string `mapstructure:"start"`
	End   string `mapstructure:"end"`
}

// ParseDate accepts any layout dateparse understands and truncates to a UTC calendar day.
func ParseDate(s string) (time.Time, error) {
	t, err := dateparse.ParseAny(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// Parse returns the window bounds. End must not precede Start.
func (w WindowCfg) Parse() (time.Time, time.Time, error) {
	start, err := ParseDate(w.Start)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("window start: %w", err)
	}
	end, err := ParseDate(w.End)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("window end: %w", err)
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("window end %s precedes start %s",
			end.Format("2006-01-02"), start.Format("2006-01-02"))
	}
	return start, end, nil
}
