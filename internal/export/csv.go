package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/alexanderramin/annotationhq/internal/domain"
)

// WriteCSV writes a header row then one row per entry, in the given order.
func WriteCSV(w io.Writer, entries []*domain.WorkLogEntry) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Header()); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, e := range entries {
		if err := cw.Write(Row(e)); err != nil {
			return fmt.Errorf("writing csv row %d: %w", e.ID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
