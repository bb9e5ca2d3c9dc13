package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/alexanderramin/annotationhq/internal/contract"
	"github.com/alexanderramin/annotationhq/internal/domain"
)

type jsonExport struct {
	Date    string               `json:"date"`
	Count   int                  `json:"count"`
	Entries []contract.EntryView `json:"entries"`
}

// WriteJSON writes entries as an indented JSON document.
func WriteJSON(w io.Writer, entries []*domain.WorkLogEntry, date string) error {
	doc := jsonExport{
		Date:    date,
		Count:   len(entries),
		Entries: contract.EntryViews(entries),
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding json export: %w", err)
	}
	return nil
}
