package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexanderramin/annotationhq/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleEntries() []*domain.WorkLogEntry {
	return []*domain.WorkLogEntry{
		{
			ID: 2, Date: "2024-01-15", AnnotatorName: "Bob", ProjectName: "P2", TaskType: "Segmentation",
			ImagesDone: 0, HoursSpent: 2.5, Status: "Blocked",
			Challenges: "labels, \"unclear\"\nsecond line", CreatedAt: "2024-01-15T14:30:00.123456",
		},
		{
			ID: 1, Date: "2024-01-15", AnnotatorName: "Alice", ProjectName: "P1", TaskType: "Bounding Boxes",
			ImagesDone: 50, HoursSpent: 4, Status: "Completed", CreatedAt: "2024-01-15T09:05:12.000001",
		},
	}
}

func TestTimeOfDay(t *testing.T) {
	assert.Equal(t, "09:05", TimeOfDay("2024-01-15T09:05:12.000001"))
	assert.Equal(t, "2024-01-15T09:05", TimeOfDay("2024-01-15T09:05"))
	assert.Equal(t, "", TimeOfDay(""))
}

func TestFormatHours(t *testing.T) {
	assert.Equal(t, "4.0", FormatHours(4))
	assert.Equal(t, "2.25", FormatHours(2.25))
	assert.Equal(t, "0.0", FormatHours(0))
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "annotation_report_2024-01-15.csv", Filename("2024-01-15", "csv"))
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleEntries()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{
		"Date", "Time", "Annotator", "Project", "Task Type", "Images Done", "Hours Spent",
		"Status", "Challenges", "Suggestions", "Extra Notes",
	}, records[0])
	assert.Equal(t, "14:30", records[1][1])
	assert.Equal(t, "labels, \"unclear\"\nsecond line", records[1][8])
	assert.Equal(t, "2.5", records[1][6])
	assert.Equal(t, []string{
		"2024-01-15", "09:05", "Alice", "P1", "Bounding Boxes", "50", "4.0", "Completed", "", "", "",
	}, records[2])
}

func TestWriteCSV_SubmittedNotesRoundTrip(t *testing.T) {
	entry, errs := domain.ValidateSubmission(domain.Submission{
		Date: "2024-01-15", AnnotatorName: "Alice", ProjectName: "P1", TaskType: "QA",
		ImagesDone: "5", Status: "Completed",
		Challenges: "slow tool\r\nlabels unclear", ExtraNotes: "a,b\r\n\"c\"",
	})
	require.Empty(t, errs)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, []*domain.WorkLogEntry{entry}))
	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, Row(entry), records[1])
}

func TestWriteCSV_EmptyHasHeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))
	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestWriteCSV_Deterministic(t *testing.T) {
	var a, b bytes.Buffer
	require.NoError(t, WriteCSV(&a, sampleEntries()))
	require.NoError(t, WriteCSV(&b, sampleEntries()))
	assert.Equal(t, a.String(), b.String())
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, sampleEntries(), "2024-01-15"))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	sheet := "Report 2024-01-15"
	assert.Equal(t, []string{sheet}, f.GetSheetList())

	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, Header(), rows[0])
	assert.Equal(t, "Bob", rows[1][2])
	assert.Equal(t, "14:30", rows[1][1])
	assert.Equal(t, "Alice", rows[2][2])

	images, err := f.GetCellValue(sheet, "F3")
	require.NoError(t, err)
	assert.Equal(t, "50", images)
	cellType, err := f.GetCellType(sheet, "F3")
	require.NoError(t, err)
	assert.NotEqual(t, excelize.CellTypeSharedString, cellType)
	assert.NotEqual(t, excelize.CellTypeInlineString, cellType)
}

func TestWriteXLSX_Styling(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, sampleEntries(), "2024-01-15"))
	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()
	sheet := SheetName("2024-01-15")

	header := styleAt(t, f, sheet, "A1")
	require.NotNil(t, header.Font)
	assert.True(t, header.Font.Bold)
	assert.True(t, hasColor([]string{header.Font.Color}, "FFFFFF"))
	assert.True(t, hasColor(header.Fill.Color, "1F2937"))

	even := styleAt(t, f, sheet, "A2")
	assert.True(t, hasColor(even.Fill.Color, "F9FAFB"))
	require.Len(t, even.Border, 4)
	for _, b := range even.Border {
		assert.True(t, hasColor([]string{b.Color}, "E5E7EB"), b.Type)
	}

	odd := styleAt(t, f, sheet, "A3")
	assert.False(t, hasColor(odd.Fill.Color, "F9FAFB"))

	numeric := styleAt(t, f, sheet, "G3")
	require.NotNil(t, numeric.Alignment)
	assert.Equal(t, "right", numeric.Alignment.Horizontal)

	panes, err := f.GetPanes(sheet)
	require.NoError(t, err)
	assert.True(t, panes.Freeze)
	assert.Equal(t, "A2", panes.TopLeftCell)
}

func TestWriteXLSX_ColumnWidths(t *testing.T) {
	long := &domain.WorkLogEntry{
		Date: "2024-01-15", AnnotatorName: "A", ProjectName: "P", TaskType: "T", Status: "S",
		ImagesDone: 1, ExtraNotes: string(bytes.Repeat([]byte("x"), 120)),
	}
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, []*domain.WorkLogEntry{long}, "2024-01-15"))
	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()
	sheet := SheetName("2024-01-15")

	notes, err := f.GetColWidth(sheet, "K")
	require.NoError(t, err)
	assert.Equal(t, 50.0, notes)

	date, err := f.GetColWidth(sheet, "A")
	require.NoError(t, err)
	assert.Equal(t, 12.0, date)

	annotator, err := f.GetColWidth(sheet, "C")
	require.NoError(t, err)
	assert.Equal(t, float64(len("Annotator")+2), annotator)
}

// hasColor matches hex colors regardless of an alpha prefix or case.
func hasColor(colors []string, want string) bool {
	for _, c := range colors {
		if strings.HasSuffix(strings.ToUpper(c), want) {
			return true
		}
	}
	return false
}

func styleAt(t *testing.T, f *excelize.File, sheet, cell string) *excelize.Style {
	t.Helper()
	id, err := f.GetCellStyle(sheet, cell)
	require.NoError(t, err)
	style, err := f.GetStyle(id)
	require.NoError(t, err)
	return style
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleEntries(), "2024-01-15"))

	var doc struct {
		Date    string `json:"date"`
		Count   int    `json:"count"`
		Entries []struct {
			AnnotatorName string `json:"annotator_name"`
		} `json:"entries"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, 2, doc.Count)
	assert.Equal(t, "Bob", doc.Entries[0].AnnotatorName)
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("excel")
	require.NoError(t, err)
	assert.Equal(t, FormatXLSX, f)

	_, err = ParseFormat("pdf")
	assert.Error(t, err)
}

func TestToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), Filename("2024-01-15", "csv"))
	require.NoError(t, ToFile(path, FormatCSV, sampleEntries(), "2024-01-15"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Alice")

	assert.Error(t, ToFile("/nonexistent/dir/out.csv", FormatCSV, nil, "2024-01-15"))
}
