package synth

import (
	"fmt"
	"regexp"
	"time"
)

type Counts struct {
	Departments int
	Doctors     int
	Patients    int
	Encounters  int
}

// Window is an inclusive range of calendar days.
type Window struct {
	Start time.Time
	End   time.Time
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type Windows struct {
	Hire         Window
	Birth        Window
	Registration Window
	Encounter    Window
	// FollowUp must start after Encounter ends.
	FollowUp Window
}

type Options struct {
	Seed               int64
	Database           string
	Counts             Counts
	MedicationNullRate float64
	Windows            Windows
	Catalog            Catalog
}

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// DefaultOptions reproduces the reference dataset: seed 42, 50 doctors,
// 200 patients, 500 encounters over 10 existing departments.
func DefaultOptions() Options {
	return Options{
		Seed:     42,
		Database: "healthcare_system",
		Counts: Counts{
			Departments: 10,
			Doctors:     50,
			Patients:    200,
			Encounters:  500,
		},
		MedicationNullRate: 0.10,
		Windows: Windows{
			Hire:         Window{day(2010, time.January, 1), day(2023, time.December, 31)},
			Birth:        Window{day(1940, time.January, 1), day(2010, time.December, 31)},
			Registration: Window{day(2018, time.January, 1), day(2024, time.December, 31)},
			Encounter:    Window{day(2023, time.January, 1), day(2024, time.December, 31)},
			FollowUp:     Window{day(2025, time.January, 1), day(2025, time.December, 31)},
		},
		Catalog: DefaultCatalog(),
	}
}

func (o Options) Validate() error {
	if !identRe.MatchString(o.Database) {
		return fmt.Errorf("invalid database name %q", o.Database)
	}
	counts := []struct {
		name string
		n    int
	}{
		{"departments", o.Counts.Departments},
		{"doctors", o.Counts.Doctors},
		{"patients", o.Counts.Patients},
		{"encounters", o.Counts.Encounters},
	}
	for _, c := range counts {
		if c.n < 1 {
			return fmt.Errorf("%s count must be at least 1, got %d", c.name, c.n)
		}
	}
	if o.MedicationNullRate < 0 || o.MedicationNullRate > 1 {
		return fmt.Errorf("medication null rate must be within [0,1], got %v", o.MedicationNullRate)
	}
	windows := []struct {
		name string
		w    Window
	}{
		{"hire", o.Windows.Hire},
		{"birth", o.Windows.Birth},
		{"registration", o.Windows.Registration},
		{"encounter", o.Windows.Encounter},
		{"follow_up", o.Windows.FollowUp},
	}
	for _, w := range windows {
		if w.w.Start.IsZero() || w.w.End.IsZero() {
			return fmt.Errorf("%s window is not set", w.name)
		}
		if w.w.End.Before(w.w.Start) {
			return fmt.Errorf("%s window ends before it starts", w.name)
		}
	}
	if !o.Windows.FollowUp.Start.After(o.Windows.Encounter.End) {
		return fmt.Errorf("follow_up window must start after the encounter window ends")
	}
	return o.Catalog.Validate()
}
