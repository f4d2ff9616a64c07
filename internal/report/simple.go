package report

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// SimpleWriter outputs human-readable text reports for terminal display.
type SimpleWriter struct {
	baseWriter

	// verbose includes per-image warning messages in the output.
	verbose bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithVerbose enables verbose output with per-image warning details.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write outputs the report in human-readable format.
func (w *SimpleWriter) Write(report *BuildReport) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, report)
	w.writeInstruments(&sb, report)
	w.writeWarnings(&sb, report)

	return w.output.Write([]byte(sb.String()))
}

func (w *SimpleWriter) writeHeader(sb *strings.Builder, report *BuildReport) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("                       BOOKLET BUILD REPORT\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("Date:            %s\n", report.Date.Format("2006-01-02 15:04:05 MST")))
	sb.WriteString(fmt.Sprintf("Output:          %s\n", report.OutputDir))
	sb.WriteString(fmt.Sprintf("Instruments:     %d (%d succeeded, %d failed)\n",
		len(report.Results), report.Succeeded(), report.Failed()))
	if report.WarningCount() > 0 {
		sb.WriteString(fmt.Sprintf("Skipped images:  %d\n", report.WarningCount()))
	}
	sb.WriteString("\n")
}

func (w *SimpleWriter) writeInstruments(sb *strings.Builder, report *BuildReport) {
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("INSTRUMENTS\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	for i := range report.Results {
		r := &report.Results[i]
		if r.Failed() {
			sb.WriteString(fmt.Sprintf("  [!] %-12s FAILED: %s\n", r.Instrument, r.Error))
			continue
		}

		sb.WriteString(fmt.Sprintf("  [+] %-12s %d pages (%d index, %d images",
			r.Instrument, r.Pages(), r.IndexPages, r.ImagePages))
		if r.AppendixPages > 0 {
			sb.WriteString(fmt.Sprintf(", %d appendix", r.AppendixPages))
		}
		sb.WriteString(fmt.Sprintf("), %d images, scale %.3f", r.Images, r.Scale))
		if r.Duration > 0 {
			sb.WriteString(fmt.Sprintf(", %s", r.Duration.Round(time.Millisecond)))
		}
		sb.WriteString("\n")
		if r.OutputFile != "" {
			sb.WriteString(fmt.Sprintf("      -> %s\n", r.OutputFile))
		}
	}
	sb.WriteString("\n")
}

func (w *SimpleWriter) writeWarnings(sb *strings.Builder, report *BuildReport) {
	if report.WarningCount() == 0 || !w.verbose {
		return
	}

	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("SKIPPED IMAGES\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	for i := range report.Results {
		r := &report.Results[i]
		for _, warning := range r.Warnings {
			sb.WriteString(fmt.Sprintf("  [%s] %s\n", r.Instrument, warning))
		}
	}
	sb.WriteString("\n")
}
