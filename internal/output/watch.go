package output

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/rodaine/table"

	"github.com/nuwa-protocol/oracleview/internal/report"
)

// RenderWatchFrame writes one frame of watch mode: a summary row for
// the latest request followed by its full report.
func RenderWatchFrame(w io.Writer, r *report.Report, interval time.Duration) {
	ClearScreen(w)
	fmt.Fprintf(w, "Watching latest oracle request (interval: %s, Ctrl+C to exit)\n\n", interval)

	headerFmt := color.New(color.FgCyan, color.Underline).SprintfFunc()
	tbl := table.New("ID", "Status", "Method", "URL", "Updated")
	tbl.WithWriter(w)
	tbl.WithHeaderFormatter(headerFmt)

	method, url := "—", "—"
	if r.Request != nil {
		if r.Request.Method != "" {
			method = r.Request.Method
		}
		if r.Request.URL != "" {
			url = r.Request.URL
		}
	}
	status := r.ResponseStatus
	if status == "" {
		status = "—"
	}
	tbl.AddRow(truncateID(r.ID), status, method, url, r.UpdatedAt)
	tbl.Print()

	RenderReportTerminal(w, r)
}

// RenderWatchError writes a frame for a failed refresh. Watch keeps
// running; the next tick may succeed.
func RenderWatchError(w io.Writer, err error, interval time.Duration) {
	ClearScreen(w)
	fmt.Fprintf(w, "Watching latest oracle request (interval: %s, Ctrl+C to exit)\n\n", interval)
	fmt.Fprintf(w, "%s %v\n", red("✗"), err)
}
