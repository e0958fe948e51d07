package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/Daniromero1410/Mentis/internal/contract"
	"github.com/Daniromero1410/Mentis/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteCatalogEntries outputs catalog questions, dispatching on the configured output format.
func WriteCatalogEntries(entries []schema.CatalogEntry, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			if entries == nil {
				entries = []schema.CatalogEntry{}
			}
			return writeJSON(w, entries)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCatalogCSV(w, entries)
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCatalogTable(w, entries, getMaxItemTextWidth(cfg))
		}, "Wrote table")
	}
	return nil
}

func writeCatalogCSV(w io.Writer, entries []schema.CatalogEntry) error {
	return writeCSVWithHeader(w, []string{"category", "item_number", "item_text"}, func(cw *csv.Writer) error {
		for _, e := range entries {
			if err := cw.Write([]string{string(e.Category), strconv.Itoa(e.ItemNumber), e.ItemText}); err != nil {
				return err
			}
		}
		return nil
	})
}

func writeCatalogTable(w io.Writer, entries []schema.CatalogEntry, maxTextWidth int) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Categoría", "#", "Ítem"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignLeft
	})

	var data [][]string
	for _, e := range entries {
		data = append(data, []string{
			schema.ShortName(e.Category),
			strconv.Itoa(e.ItemNumber),
			contract.TruncateText(e.ItemText, maxTextWidth),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Showing %d catalog items\n", len(entries))
	return err
}
