package report

import (
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/mmynk/flatmates/internal/models"
)

const terminalTemplate = `Period: {{.Bill.Period}}
{{range .Shares}}{{.Name}} pays: {{money .Amount}}
{{end}}`

// TerminalReporter prints what each flatmate pays.
type TerminalReporter struct {
	writer io.Writer
	tmpl   *template.Template
}

func NewTerminalReporter(writer io.Writer) *TerminalReporter {
	if writer == nil {
		writer = os.Stdout
	}
	tmpl := template.Must(template.New("split").Funcs(template.FuncMap{
		"money": FormatMoney,
	}).Parse(terminalTemplate))
	return &TerminalReporter{writer: writer, tmpl: tmpl}
}

func (r *TerminalReporter) Write(split *models.Split) error {
	if err := r.tmpl.Execute(r.writer, split); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	return nil
}
