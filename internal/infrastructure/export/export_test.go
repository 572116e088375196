package export

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mystore/internal/core/types"
	"mystore/internal/domain/reports"
)

func summary() *reports.Summary {
	period := reports.Period{Year: 2024, Month: time.March}
	return &reports.Summary{
		Period:       period,
		Description:  period.Description(),
		PeriodProfit: types.MustMoney("30.456"),
		Items: []reports.ItemReport{
			{ProductID: "p1", Name: "Caneta <Azul>", TotalEntered: 100, SoldInPeriod: 10, AvailableNow: 85, ProfitInPeriod: types.MustMoney("30.456")},
			{ProductID: "p2", Name: "Lápis", TotalEntered: 5, AvailableNow: 5, ProfitInPeriod: types.Zero()},
		},
		GeneratedAt: time.Date(2024, time.March, 31, 18, 0, 0, 0, time.UTC),
	}
}

func TestWriteHTML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteHTML(&buf, summary()))
	out := buf.String()

	assert.Contains(t, out, Title)
	assert.Contains(t, out, "Filtro aplicado: Ano: 2024 | Mês: Março")
	assert.Contains(t, out, "R$ 30.46")
	assert.Contains(t, out, "R$ 0.00")
	assert.Contains(t, out, "<td>85 un.</td>")
	assert.Contains(t, out, "Caneta &lt;Azul&gt;", "names are escaped")
}

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePDF(&buf, summary()))

	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	assert.Greater(t, buf.Len(), 500)
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("HTML")
	require.NoError(t, err)
	assert.Equal(t, FormatHTML, f)

	f, err = ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatPDF, f)
	assert.Equal(t, "application/pdf", f.ContentType())

	_, err = ParseFormat("docx")
	assert.Error(t, err)
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "relatorio_todos.pdf", FileName(FormatPDF, reports.Period{}))
	assert.Equal(t, "relatorio_2024.html", FileName(FormatHTML, reports.Period{Year: 2024}))
	assert.Equal(t, "relatorio_2024_03.pdf", FileName(FormatPDF, reports.Period{Year: 2024, Month: time.March}))
}

func TestSaveFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")

	path, err := SaveFile(dir, FormatHTML, summary())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "relatorio_2024_03.html"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Lápis")
}
