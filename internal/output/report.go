package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/rodaine/table"

	"github.com/nuwa-protocol/oracleview/internal/report"
)

// RenderReportTerminal writes the multi-section report. Sections whose
// underlying data is absent are skipped; nothing here aborts the rest
// of the report.
func RenderReportTerminal(w io.Writer, r *report.Report) {
	section(w, "Oracle Request Object")
	field(w, "ID", r.ID)
	field(w, "Type", r.ObjectType)
	field(w, "Owner", r.Owner)
	if r.CreatedAt != "" {
		field(w, "Created", r.CreatedAt)
	}
	if r.UpdatedAt != "" {
		field(w, "Updated", r.UpdatedAt)
	}

	if r.Amount != "" || r.Requester != "" || r.Oracle != "" {
		section(w, "Request Details")
		if r.Amount != "" {
			field(w, "Amount", r.Amount+" (Gas)")
		}
		if r.Requester != "" {
			field(w, "Requester", r.Requester)
		}
		if r.Oracle != "" {
			field(w, "Oracle", r.Oracle)
		}
	}

	if r.Request != nil {
		section(w, "HTTP Request")
		if r.Request.URL != "" {
			field(w, "URL", r.Request.URL)
		}
		if r.Request.Method != "" {
			field(w, "Method", r.Request.Method)
		}
		renderHeaders(w, r.Request)
		if r.Request.HasBody {
			fmt.Fprintf(w, "\nRequest Body:\n%s\n", r.Request.Body)
		}
	}

	if r.Callback != "" {
		section(w, "Callback Details")
		field(w, "Callback", r.Callback)
	}

	section(w, "Response")
	if r.ResponseStatus != "" {
		field(w, "Status", formatStatus(r.ResponseStatus))
	}
	switch {
	case r.ResponseContent != "":
		fmt.Fprintf(w, "\nResponse Content:\n%s\n", r.ResponseContent)
	case !r.HasResponse:
		fmt.Fprintf(w, "\n%s\n", dim("No response content available"))
	}

	if r.AIContent != "" {
		section(w, "AI Response Content")
		fmt.Fprintf(w, "%s\n", r.AIContent)
	}

	section(w, "End of Oracle Request Details")
}

func renderHeaders(w io.Writer, req *report.HTTPRequest) {
	if !req.HasHeaders {
		return
	}
	fmt.Fprintln(w, "\nHeaders:")
	switch {
	case len(req.Headers) > 0:
		headerFmt := color.New(color.FgCyan, color.Underline).SprintfFunc()
		tbl := table.New("Header", "Value")
		tbl.WithWriter(w)
		tbl.WithHeaderFormatter(headerFmt)
		for _, h := range req.Headers {
			tbl.AddRow(h.Name, h.Value)
		}
		tbl.Print()
	case req.HeadersRaw != "":
		fmt.Fprintln(w, req.HeadersRaw)
	default:
		fmt.Fprintln(w, dim("No headers specified"))
	}
}

// formatStatus colors an HTTP-style status code. A zero status means
// the oracle has not responded yet.
func formatStatus(status string) string {
	switch {
	case status == "0":
		return dim(status)
	case len(status) == 3 && status[0] == '2':
		return green(status)
	default:
		return red(status)
	}
}

// RenderReportJSON writes the machine-readable report.
func RenderReportJSON(w io.Writer, r *report.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
