package domain

import "time"

// SortReport summarizes one sort of a file.
type SortReport struct {
	Algorithm  string        `json:"algorithm"`
	Count      int           `json:"count"`
	Elapsed    time.Duration `json:"elapsed_ns"`
	InputPath  string        `json:"input_path,omitempty"`
	OutputPath string        `json:"output_path,omitempty"`
	SortedAt   time.Time     `json:"sorted_at"`
}

// ElapsedMS returns the sort duration in (fractional) milliseconds.
func (r SortReport) ElapsedMS() float64 {
	return float64(r.Elapsed) / float64(time.Millisecond)
}
