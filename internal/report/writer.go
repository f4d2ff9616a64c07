package report

import "io"

// Writer outputs a build report to some destination in some format.
type Writer interface {
	// Write outputs the report. Returns the number of bytes written and
	// any error encountered.
	Write(report *BuildReport) (int, error)
}

// MultiWriter writes the same report to several Writers, for example a
// terminal summary plus a markdown file.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Write outputs the report to all configured Writers. It returns the total
// bytes written and stops on the first error.
func (m *MultiWriter) Write(report *BuildReport) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.Write(report)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// baseWriter provides the shared output destination for report writers.
type baseWriter struct {
	output io.Writer
}

func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}
