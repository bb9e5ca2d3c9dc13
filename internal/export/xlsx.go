package export

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/alexanderramin/annotationhq/internal/domain"
	"github.com/xuri/excelize/v2"
)

const (
	headerFill  = "1F2937"
	headerFont  = "FFFFFF"
	borderColor = "E5E7EB"
	altFill     = "F9FAFB"
	maxColWidth = 50
)

// SheetName returns the worksheet title for a report on date.
func SheetName(date string) string {
	return "Report " + date
}

type sheetStyles struct {
	header     int
	text       int
	textAlt    int
	numeric    int
	numericAlt int
}

func newSheetStyles(f *excelize.File) (sheetStyles, error) {
	border := []excelize.Border{
		{Type: "left", Color: borderColor, Style: 1},
		{Type: "right", Color: borderColor, Style: 1},
		{Type: "top", Color: borderColor, Style: 1},
		{Type: "bottom", Color: borderColor, Style: 1},
	}
	alt := excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{altFill}}
	right := &excelize.Alignment{Horizontal: "right"}

	defs := []*excelize.Style{
		{
			Font:      &excelize.Font{Bold: true, Color: headerFont},
			Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{headerFill}},
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
			Border:    border,
		},
		{Border: border},
		{Border: border, Fill: alt},
		{Border: border, Alignment: right},
		{Border: border, Fill: alt, Alignment: right},
	}
	ids := make([]int, len(defs))
	for i, def := range defs {
		id, err := f.NewStyle(def)
		if err != nil {
			return sheetStyles{}, fmt.Errorf("creating xlsx style: %w", err)
		}
		ids[i] = id
	}
	return sheetStyles{header: ids[0], text: ids[1], textAlt: ids[2], numeric: ids[3], numericAlt: ids[4]}, nil
}

func (s sheetStyles) forCell(col Column, row int) int {
	even := row%2 == 0
	switch {
	case col.Numeric && even:
		return s.numericAlt
	case col.Numeric:
		return s.numeric
	case even:
		return s.textAlt
	default:
		return s.text
	}
}

// cellValue returns the typed value written for an entry cell. Numeric
// columns are stored as numbers.
func cellValue(col Column, e *domain.WorkLogEntry) any {
	switch col.Label {
	case "Images Done":
		return e.ImagesDone
	case "Hours Spent":
		return e.HoursSpent
	default:
		return col.value(e)
	}
}

// widthOf counts a cell toward its column width. Zero and empty values
// do not count.
func widthOf(col Column, e *domain.WorkLogEntry) int {
	switch col.Label {
	case "Images Done":
		if e.ImagesDone == 0 {
			return 0
		}
	case "Hours Spent":
		if e.HoursSpent == 0 {
			return 0
		}
	}
	return utf8.RuneCountInString(col.value(e))
}

// WriteXLSX renders entries into a styled single-sheet workbook.
func WriteXLSX(w io.Writer, entries []*domain.WorkLogEntry, date string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := SheetName(date)
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return fmt.Errorf("naming sheet %q: %w", sheet, err)
	}
	styles, err := newSheetStyles(f)
	if err != nil {
		return err
	}

	widths := make([]int, len(Columns))
	for i, col := range Columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, col.Label); err != nil {
			return fmt.Errorf("writing header %s: %w", cell, err)
		}
		if err := f.SetCellStyle(sheet, cell, cell, styles.header); err != nil {
			return fmt.Errorf("styling header %s: %w", cell, err)
		}
		widths[i] = utf8.RuneCountInString(col.Label)
	}

	for r, e := range entries {
		row := r + 2
		for i, col := range Columns {
			cell, err := excelize.CoordinatesToCellName(i+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, cellValue(col, e)); err != nil {
				return fmt.Errorf("writing cell %s: %w", cell, err)
			}
			if err := f.SetCellStyle(sheet, cell, cell, styles.forCell(col, row)); err != nil {
				return fmt.Errorf("styling cell %s: %w", cell, err)
			}
			widths[i] = max(widths[i], widthOf(col, e))
		}
	}

	for i, width := range widths {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, name, name, float64(min(width+2, maxColWidth))); err != nil {
			return fmt.Errorf("sizing column %s: %w", name, err)
		}
	}

	if err := f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("freezing header: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing xlsx: %w", err)
	}
	return nil
}
