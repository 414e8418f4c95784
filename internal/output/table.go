package output

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/reglet-dev/fieldset/internal/engine"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorGray   = "\033[90m"
	colorBold   = "\033[1m"
)

// TableFormatter formats run results as a human-readable table.
type TableFormatter struct {
	writer      io.Writer
	EnableColor bool
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{
		writer:      w,
		EnableColor: true, // Default to true, caller can disable
	}
}

// colorize returns the string wrapped in ANSI color codes if enabled.
func (f *TableFormatter) colorize(text, code string) string {
	if !f.EnableColor {
		return text
	}
	return code + text + colorReset
}

// Format writes the run result as a table.
//
//nolint:errcheck // Table formatting errors are non-critical (best-effort terminal output)
func (f *TableFormatter) Format(result *engine.RunResult) error {
	fmt.Fprintln(f.writer, f.colorize(strings.Repeat("─", 80), colorGray))
	fmt.Fprintf(f.writer, "Schema: %s (v%s)\n", f.colorize(result.SchemaName, colorBold), result.SchemaVersion)
	fmt.Fprintf(f.writer, "Run: %s\n", result.RunID)
	fmt.Fprintf(f.writer, "Duration: %s\n", result.Duration.Round(time.Millisecond))
	fmt.Fprintln(f.writer)

	if len(result.Documents) == 0 {
		fmt.Fprintln(f.writer, "No documents validated.")
		return nil
	}

	fmt.Fprintln(f.writer, "Documents:")
	fmt.Fprintln(f.writer, f.colorize(strings.Repeat("─", 80), colorGray))

	for _, doc := range result.Documents {
		f.formatDocument(doc)
	}

	fmt.Fprintln(f.writer, f.colorize(strings.Repeat("─", 80), colorGray))
	fmt.Fprintln(f.writer)

	f.formatSummary(result.Summary)

	return nil
}

//nolint:errcheck // best-effort terminal output
func (f *TableFormatter) formatDocument(doc engine.DocumentResult) {
	fmt.Fprintf(f.writer, "[%s] #%d %s\n", f.statusBadge(doc.Status), doc.Index, doc.Record)

	switch doc.Status {
	case engine.StatusPass:
		for _, line := range strings.Split(doc.Rendered, "\n") {
			fmt.Fprintf(f.writer, "      %s\n", line)
		}
	default:
		fmt.Fprintf(f.writer, "      %s: %s\n", doc.Kind, doc.Message)
	}
}

func (f *TableFormatter) statusBadge(status engine.Status) string {
	switch status {
	case engine.StatusPass:
		return f.colorize("PASS", colorGreen)
	case engine.StatusFail:
		return f.colorize("FAIL", colorRed)
	default:
		return f.colorize("ERR ", colorYellow)
	}
}

//nolint:errcheck // best-effort terminal output
func (f *TableFormatter) formatSummary(summary engine.ResultSummary) {
	fmt.Fprintf(f.writer, "Summary: %d documents, %s passed, %s failed, %s errors\n",
		summary.TotalDocuments,
		f.colorize(fmt.Sprintf("%d", summary.PassedDocuments), colorGreen),
		f.colorize(fmt.Sprintf("%d", summary.FailedDocuments), colorRed),
		f.colorize(fmt.Sprintf("%d", summary.ErrorDocuments), colorYellow),
	)
}
