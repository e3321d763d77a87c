// Package export renders applications as CSV and optionally archives the
// rendered files to S3.
package export

import (
	"bufio"
	"io"
	"strings"
	"time"

	"github.com/rpupo63/job-tracker-backend/models"
)

// Filename is the attachment name offered to browsers.
const Filename = "job_applications.csv"

// TimeLayout is RFC 3339 with millisecond precision.
const TimeLayout = "2006-01-02T15:04:05.000Z07:00"

var Header = []string{
	"Position",
	"Company Name",
	"Platform",
	"Job Link",
	"Contract Type",
	"Work Model",
	"Location",
	"Salary Expectation",
	"Status",
	"CV Version",
	"Notes",
	"Date Applied",
	"Last Updated",
	"Reminder Sent",
}

// WriteCSV writes the header and one row per application in the order given.
// Fields holding a comma, quote or newline are quoted with inner quotes doubled;
// everything else, leading spaces included, is written as is.
func WriteCSV(w io.Writer, apps []*models.Application) error {
	bw := bufio.NewWriter(w)
	writeLine(bw, Header)
	for _, app := range apps {
		writeLine(bw, Row(app))
	}
	return bw.Flush()
}

// writeLine ignores write errors; bufio.Writer keeps the first one for Flush.
func writeLine(bw *bufio.Writer, fields []string) {
	for i, field := range fields {
		if i > 0 {
			bw.WriteByte(',')
		}
		bw.WriteString(quoteField(field))
	}
	bw.WriteByte('\n')
}

func quoteField(field string) string {
	if !strings.ContainsAny(field, ",\"\n") {
		return field
	}
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}

// Row renders the fourteen export columns for app.
func Row(app *models.Application) []string {
	return []string{
		app.Position,
		app.CompanyName,
		deref(app.Platform),
		deref(app.JobLink),
		deref(app.ContractType),
		deref(app.WorkModel),
		deref(app.Location),
		deref(app.SalaryExpectation),
		string(app.Status),
		deref(app.CVVersion),
		deref(app.Notes),
		formatTime(app.DateApplied),
		formatTime(app.LastUpdated),
		yesNo(app.IsReminderSent),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(TimeLayout)
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
