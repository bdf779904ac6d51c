// Package report prints extracted metadata as text tables, for use without
// a window.
package report

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/table"

	"exifview/internal/geo"
	"exifview/internal/metadata"
)

type Options struct {
	// Color switches to the bright coloured table style.
	Color bool
}

// Dump writes one table per record: every category's pairs in order, then
// the map link when the record carries a readable GPS position.
func Dump(w io.Writer, records []metadata.Record, opts Options) {
	for i, record := range records {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s (%d/%d)\n", record.SourceFile, i+1, len(records))

		t := table.NewWriter()
		t.SetOutputMirror(w)
		if opts.Color {
			t.SetStyle(table.StyleColoredBright)
		} else {
			t.SetStyle(table.StyleDefault)
		}
		t.AppendHeader(table.Row{"Category", "Tag", "Value"})

		total := 0
		for _, category := range record.Categories {
			for _, pair := range category.Pairs {
				t.AppendRow(table.Row{category.Name, pair.Label, pair.Value.String()})
				total++
			}
		}

		if pair, ok := record.Find(metadata.LabelGPSPosition); ok {
			if fix, err := geo.ToDecimalDegrees(pair.Value.String()); err == nil {
				t.AppendRow(table.Row{"Location", "Decimal Degrees", fix.String()})
				t.AppendRow(table.Row{"Location", "Map", geo.MapURI(fix)})
			}
		}

		t.AppendFooter(table.Row{"", "Total", total})
		t.Render()
	}
}
