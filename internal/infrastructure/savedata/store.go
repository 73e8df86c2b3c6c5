// Package savedata persists the best result per level.
//
// Every backend applies the same merge rule: the fastest completion time
// and the most stars seen are kept, and the level's star total is always
// overwritten with the latest value.
package savedata

import "math"

// Record is the best result stored for one level
type Record struct {
	BestTime   *float64 `yaml:"time"`
	BestStars  int      `yaml:"stars"`
	TotalStars int      `yaml:"total_stars"`
}

// HasTime returns true if the level has been completed at least once
func (r Record) HasTime() bool {
	return r.BestTime != nil
}

// Store reads and updates level records
type Store interface {
	// Get returns the record for a level, or a zero Record if none exists
	Get(level string) (Record, error)

	// Update merges a completed run into the level's record and returns the result
	Update(level string, seconds float64, stars, total int) (Record, error)

	Close() error
}

// Merge applies a completed run to a record
func Merge(r Record, seconds float64, stars, total int) Record {
	seconds = RoundTime(seconds)
	if r.BestTime == nil || seconds < *r.BestTime {
		t := seconds
		r.BestTime = &t
	}
	if stars > r.BestStars {
		r.BestStars = stars
	}
	r.TotalStars = total
	return r
}

// RoundTime rounds a completion time to hundredths of a second
func RoundTime(seconds float64) float64 {
	return math.Round(seconds*100) / 100
}

func copyRecord(r Record) Record {
	if r.BestTime != nil {
		t := *r.BestTime
		r.BestTime = &t
	}
	return r
}
