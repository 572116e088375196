package export

import (
	"fmt"
	"html/template"
	"io"

	"mystore/internal/core/types"
	"mystore/internal/domain/reports"
)

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"money": types.Format,
}).Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: Arial, sans-serif; margin: 0; padding: 20px; background-color: #F5F1E6; color: #325E54; }
h1, h2 { color: #2F4F4F; border-bottom: 2px solid #A3BFAA; padding-bottom: 5px; }
.filtro { color: #5A8F7B; font-size: 16px; font-style: italic; margin-bottom: 15px; }
.summary-card { background-color: #5A8F7B; color: #FFFFFF; padding: 20px; border-radius: 12px; text-align: center; margin-bottom: 20px; }
.summary-card h2 { color: #FFFFFF; margin: 0 0 10px 0; border-bottom: none; }
.summary-card p { font-size: 28px; font-weight: bold; margin: 0; }
table { width: 100%; border-collapse: collapse; margin-top: 20px; }
th, td { border: 1px solid #A3BFAA; padding: 10px; text-align: left; }
th { background-color: #2F4F4F; color: #FFFFFF; }
tr:nth-child(even) { background-color: #FFFFFF; }
tr:nth-child(odd) { background-color: #F7F5EF; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<p class="filtro">Filtro aplicado: {{.Summary.Description}}</p>
<div class="summary-card">
<h2>Lucro Total (Período)</h2>
<p>{{money .Summary.PeriodProfit}}</p>
</div>
<h2>Desempenho por Produto</h2>
<table>
<thead>
<tr><th>Produto</th><th>Entrada (Total)</th><th>Saída (Período)</th><th>Estoque (Atual)</th><th>Lucro (Período)</th></tr>
</thead>
<tbody>
{{- range .Summary.Items}}
<tr><td>{{.Name}}</td><td>{{.TotalEntered}} un.</td><td>{{.SoldInPeriod}} un.</td><td>{{.AvailableNow}} un.</td><td>{{money .ProfitInPeriod}}</td></tr>
{{- end}}
</tbody>
</table>
</body>
</html>
`))

// WriteHTML writes the report as a standalone HTML page.
func WriteHTML(w io.Writer, s *reports.Summary) error {
	err := htmlTemplate.Execute(w, struct {
		Title   string
		Summary *reports.Summary
	}{Title: Title, Summary: s})
	if err != nil {
		return fmt.Errorf("export: render html: %w", err)
	}
	return nil
}
