package export

import (
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/annotationhq/internal/domain"
)

// Format names an export encoding.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
	FormatJSON Format = "json"
)

// ParseFormat accepts "csv", "xlsx" (or "excel") and "json".
func ParseFormat(s string) (Format, error) {
	switch s {
	case "csv":
		return FormatCSV, nil
	case "xlsx", "excel":
		return FormatXLSX, nil
	case "json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("unknown export format %q (want csv, xlsx or json)", s)
}

// ContentType returns the MIME type served for the format.
func (f Format) ContentType() string {
	switch f {
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case FormatJSON:
		return "application/json"
	default:
		return "text/csv"
	}
}

// Write encodes entries in the given format.
func Write(w io.Writer, format Format, entries []*domain.WorkLogEntry, date string) error {
	switch format {
	case FormatCSV:
		return WriteCSV(w, entries)
	case FormatXLSX:
		return WriteXLSX(w, entries, date)
	case FormatJSON:
		return WriteJSON(w, entries, date)
	}
	return fmt.Errorf("unknown export format %q", format)
}

// ToFile writes an export to path, replacing any existing file.
func ToFile(path string, format Format, entries []*domain.WorkLogEntry, date string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s file: %w", format, err)
	}
	if err := Write(f, format, entries, date); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
