package viewer

import (
	"strings"

	"exifview/internal/geo"
	"exifview/internal/metadata"
	"exifview/internal/pagination"
	"exifview/internal/ui/builder"
)

const (
	mapWidth  = 480
	mapHeight = 60
)

// CategoryPage describes the page for one category: a two-column grid of
// bold labels and selectable values, inside a scroll when it is too long.
func CategoryPage(c metadata.Category) builder.Spec {
	grid := builder.Spec{
		Kind:  builder.KindGrid,
		Props: make([]builder.Action, 0, pagination.WidgetCount(len(c.Pairs))),
	}
	for row, pair := range c.Pairs {
		grid.Props = append(grid.Props,
			builder.Attach{
				Cell: builder.Cell{Col: 0, Row: row},
				Child: builder.Spec{
					Kind: builder.KindLabel,
					Props: []builder.Action{
						builder.Field{Name: "Text", Value: pair.Label},
						builder.SetStyle{Text: "font-weight: bold; text-align: end"},
					},
				},
			},
			builder.Attach{
				Cell: builder.Cell{Col: 1, Row: row},
				Child: builder.Spec{
					Kind: builder.KindLabel,
					Props: []builder.Action{
						builder.Field{Name: "Text", Value: pair.Value.String()},
						builder.Field{Name: "Selectable", Value: true},
						builder.SetStyle{Text: "wrap: word"},
					},
				},
			},
		)
	}

	if !pagination.NeedsScroll(len(c.Pairs)) {
		return grid
	}
	return builder.Spec{
		Kind:  builder.KindScroll,
		Props: []builder.Action{builder.SetChild{Child: grid}},
	}
}

// LocationPage describes the map link and decimal coordinates for fix.
func LocationPage(fix geo.Fix) []builder.Spec {
	return []builder.Spec{
		{
			Kind: builder.KindLabel,
			Name: "coordinates",
			Props: []builder.Action{
				builder.Field{Name: "Text", Value: fix.String()},
				builder.SetStyle{Text: "font-family: monospace"},
			},
		},
		{
			Kind: builder.KindWeb,
			Name: "map",
			Props: []builder.Action{
				builder.LoadURI{URI: geo.MapURI(fix)},
				builder.SizeHint{Width: mapWidth, Height: mapHeight},
			},
		},
	}
}

// RawLocationPage shows a position the converter could not read.
func RawLocationPage(raw string) []builder.Spec {
	return []builder.Spec{{
		Kind: builder.KindLabel,
		Name: "coordinates",
		Props: []builder.Action{
			builder.Field{Name: "Text", Value: raw},
			builder.SetStyle{Text: "font-style: italic"},
		},
	}}
}

// IconForMIME picks a header icon name from a MIME type.
func IconForMIME(mime string) string {
	major, _, _ := strings.Cut(strings.ToLower(mime), "/")
	switch major {
	case "image", "video", "audio", "text":
		return major
	case "application":
		if strings.HasSuffix(mime, "/pdf") {
			return "document"
		}
		return "application"
	}
	return "file"
}
