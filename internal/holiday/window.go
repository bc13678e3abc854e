package holiday

import "fmt"

// Window is an inclusive range of calendar years to fetch holidays for.
type Window struct {
	StartYear int
	EndYear   int
}

// Validate checks that both bounds are set and ordered.
func (w Window) Validate() error {
	if w.StartYear <= 0 || w.EndYear <= 0 {
		return fmt.Errorf("start and end year are required")
	}
	if w.StartYear > w.EndYear {
		return fmt.Errorf("start year %d is after end year %d", w.StartYear, w.EndYear)
	}
	return nil
}

// TimeMin returns the inclusive lower bound of the upstream time-range
// query: midnight UTC on January 1st of the start year.
func (w Window) TimeMin() string {
	return fmt.Sprintf("%04d-01-01T00:00:00Z", w.StartYear)
}

// TimeMax returns the exclusive upper bound of the upstream time-range
// query: midnight UTC on January 1st of the year after the end year.
func (w Window) TimeMax() string {
	return fmt.Sprintf("%04d-01-01T00:00:00Z", w.EndYear+1)
}

// Contains reports whether the year falls inside the window, bounds
// included.
func (w Window) Contains(year int) bool {
	return year >= w.StartYear && year <= w.EndYear
}

func (w Window) String() string {
	return fmt.Sprintf("%d-%d", w.StartYear, w.EndYear)
}
