package export

import (
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/psy-tools/gcal-extractor/pkg/models/domain"
)

// Reporter prints a generated report's summary to the console.
type Reporter struct {
	writer io.Writer
}

// NewReporter creates a new console reporter
func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

func (c *Reporter) Handle(generated *domain.GeneratedReport) error {
	tmpl := `
Consultation report {{printf "%04d-%02d" .Summary.Year .Summary.Month}}
Saved to: {{.Path}}

Patients:  {{.Summary.TotalPatients}}
Sessions:  {{.Summary.TotalSessions}}
Calendars: {{.Summary.CalendarCount}}
{{range $name, $stats := .Summary.Calendars}}
=== {{$name}} ===
{{$stats.Patients}} patient(s), {{$stats.Sessions}} session(s)
{{end}}
`
	t, err := template.New("report").Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, generated)
}
