package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/nao1215/markdown"
)

// MarkdownWriter outputs build reports as GitHub Flavored Markdown, suitable
// for commit messages, wikis and pull requests.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given
// writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the full report in Markdown format.
func (w *MarkdownWriter) Write(report *BuildReport) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, report)
	w.writeInstruments(md, report)
	w.writeFailures(md, report)
	w.writeWarnings(md, report)

	return len(md.String()), md.Build()
}

func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, report *BuildReport) {
	md.H1("Booklet Build Report")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Date", report.Date.Format("2006-01-02 15:04:05 MST")},
			{"Output Directory", "`" + report.OutputDir + "`"},
			{"Instruments", strconv.Itoa(len(report.Results))},
			{"Succeeded", strconv.Itoa(report.Succeeded())},
			{"Failed", strconv.Itoa(report.Failed())},
		},
	})
	md.PlainText("")

	switch {
	case report.Failed() > 0:
		md.Warningf("%d instrument build(s) failed; see the failures section.", report.Failed())
	case report.WarningCount() > 0:
		md.Note(fmt.Sprintf("%d image(s) were skipped; see the warnings section.", report.WarningCount()))
	default:
		md.Tip("All booklets built cleanly.")
	}
	md.PlainText("")
}

func (w *MarkdownWriter) writeInstruments(md *markdown.Markdown, report *BuildReport) {
	md.H2("Instruments")
	md.PlainText("")

	rows := make([][]string, 0, len(report.Results))
	for i := range report.Results {
		r := &report.Results[i]
		if r.Failed() {
			rows = append(rows, []string{
				r.Instrument, r.Title, "-", "-", "-", "-", "failed",
			})
			continue
		}
		rows = append(rows, []string{
			r.Instrument,
			r.Title,
			strconv.Itoa(r.Pages()),
			strconv.Itoa(r.Images),
			strconv.Itoa(r.AppendixPages),
			fmt.Sprintf("%.3f", r.Scale),
			"`" + r.OutputFile + "`",
		})
	}

	md.Table(markdown.TableSet{
		Header: []string{"Instrument", "Title", "Pages", "Images", "Appendix Pages", "Scale", "Output"},
		Rows:   rows,
	})
	md.PlainText("")
}

func (w *MarkdownWriter) writeFailures(md *markdown.Markdown, report *BuildReport) {
	if report.Failed() == 0 {
		return
	}

	md.H2("Failures")
	md.PlainText("")

	var items []string
	for i := range report.Results {
		r := &report.Results[i]
		if r.Failed() {
			items = append(items, fmt.Sprintf("**%s**: %s", r.Instrument, r.Error))
		}
	}
	md.BulletList(items...)
	md.PlainText("")
}

func (w *MarkdownWriter) writeWarnings(md *markdown.Markdown, report *BuildReport) {
	if report.WarningCount() == 0 {
		return
	}

	md.H2("Warnings")
	md.PlainText("")

	for i := range report.Results {
		r := &report.Results[i]
		if len(r.Warnings) == 0 {
			continue
		}
		md.PlainTextf("**%s** skipped %d image(s):", r.Instrument, len(r.Warnings))
		md.PlainText("")
		md.BulletList(r.Warnings...)
		md.PlainText("")
	}
}
