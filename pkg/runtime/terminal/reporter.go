package terminal

import (
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/revlytic/bplan/pkg/models/domain"
)

// Reporter outputs reports to the console in a formatted text form
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

func (c *Reporter) Handle(report *domain.Report) error {
	tmpl := `
{{.Title}} ({{.Period.Years}} year projection)
Period: {{.Period.StartYear}} to {{.Period.EndYear}}
Total Net Income: {{.Currency}} {{printf "%.2f" .TotalNetIncome}}

{{range .Sections}}
=== {{.Title}} ===
{{if .Err}}{{.Err}}
{{else}}{{range $key, $value := .Summary}}
{{$key}}: {{printf "%.2f" $value}}
{{end}}
{{range .Details}}
- {{.Name}}: {{printf "%.2f" .Value}}{{if .Unit}} {{.Unit}}{{end}}
  {{.Description}}
{{end}}{{end}}
{{end}}
`
	t, err := template.New("report").Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, report)
}
