package report

import (
	"time"
)

// BuildReport summarizes one build run across all instruments.
type BuildReport struct {
	// Date is when the build started.
	Date time.Time

	// OutputDir is where the booklet PDFs were written.
	OutputDir string

	// Results holds one entry per instrument, in build order.
	Results []InstrumentResult
}

// InstrumentResult records the outcome of building one instrument's booklet.
type InstrumentResult struct {
	Instrument string
	Title      string

	// OutputFile is the booklet PDF path. Empty when the build failed
	// before rendering.
	OutputFile string

	IndexPages    int
	ImagePages    int
	AppendixPages int
	Images        int

	// Scale is the shared factor applied to every image.
	Scale float64

	Duration time.Duration

	// Warnings lists images that were skipped, one message each.
	Warnings []string

	// Error is the failure message. Empty means the booklet was built.
	Error string
}

// Pages returns the booklet's total page count, index included.
func (r *InstrumentResult) Pages() int {
	return r.IndexPages + r.ImagePages
}

// Failed reports whether the instrument build failed.
func (r *InstrumentResult) Failed() bool {
	return r.Error != ""
}

// NewBuildReport creates an empty report for a run writing to outputDir.
func NewBuildReport(outputDir string) *BuildReport {
	return &BuildReport{
		Date:      time.Now(),
		OutputDir: outputDir,
	}
}

// Add appends one instrument's result.
func (r *BuildReport) Add(result InstrumentResult) {
	r.Results = append(r.Results, result)
}

// Succeeded returns the number of instruments that built.
func (r *BuildReport) Succeeded() int {
	var n int
	for i := range r.Results {
		if !r.Results[i].Failed() {
			n++
		}
	}
	return n
}

// Failed returns the number of instruments that failed.
func (r *BuildReport) Failed() int {
	return len(r.Results) - r.Succeeded()
}

// WarningCount returns the total number of warnings across instruments.
func (r *BuildReport) WarningCount() int {
	var n int
	for i := range r.Results {
		n += len(r.Results[i].Warnings)
	}
	return n
}
