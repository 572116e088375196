// Package export renders the period report as a printable document.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"mystore/internal/domain/reports"
)

// Format is an export document type.
type Format string

const (
	FormatHTML Format = "html"
	FormatPDF  Format = "pdf"
)

// ParseFormat accepts "html" or "pdf" in any case; empty means PDF.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatPDF, "":
		return FormatPDF, nil
	case FormatHTML:
		return FormatHTML, nil
	}
	return "", fmt.Errorf("unsupported export format %q", s)
}

// ContentType is the MIME type of f.
func (f Format) ContentType() string {
	if f == FormatHTML {
		return "text/html; charset=utf-8"
	}
	return "application/pdf"
}

// Title is the heading of every exported report.
const Title = "Relatório de Estoque e Lucro"

// Render writes the summary in format f.
func Render(w io.Writer, f Format, s *reports.Summary) error {
	switch f {
	case FormatHTML:
		return WriteHTML(w, s)
	case FormatPDF:
		return WritePDF(w, s)
	}
	return fmt.Errorf("unsupported export format %q", f)
}

// FileName names the export of period p, e.g. "relatorio_2024_03.pdf".
func FileName(f Format, p reports.Period) string {
	name := "relatorio_todos"
	if p.Year != 0 {
		name = fmt.Sprintf("relatorio_%d", p.Year)
		if p.Month != 0 {
			name = fmt.Sprintf("%s_%02d", name, int(p.Month))
		}
	}
	return name + "." + string(f)
}

// SaveFile renders the summary into dir and returns the file path.
func SaveFile(dir string, f Format, s *reports.Summary) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("export: create dir: %w", err)
	}

	path := filepath.Join(dir, FileName(f, s.Period))
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("export: create file: %w", err)
	}

	if err := Render(file, f, s); err != nil {
		_ = file.Close()
		return "", err
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("export: close file: %w", err)
	}
	return path, nil
}
