package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exifview/internal/ui/builder"
	"exifview/internal/ui/builder/buildertest"
)

func newBuilder() (*builder.Builder, *buildertest.Toolkit) {
	tk := buildertest.NewToolkit()
	return builder.New(tk, builder.NewContext(), nil), tk
}

func label(name, text string) builder.Spec {
	return builder.Spec{
		Kind:  builder.KindLabel,
		Name:  name,
		Props: []builder.Action{builder.Field{Name: "Text", Value: text}},
	}
}

func TestConstructUnknownKind(t *testing.T) {
	b, tk := newBuilder()

	_, err := b.Construct(builder.Spec{Kind: "spinner"})
	require.ErrorIs(t, err, builder.ErrConstruction)
	assert.Empty(t, tk.Created)
}

func TestConstructRejectsDisallowedAction(t *testing.T) {
	b, _ := newBuilder()

	_, err := b.Construct(builder.Spec{
		Kind:  builder.KindLabel,
		Props: []builder.Action{builder.Attach{Child: label("", "x")}},
	})
	assert.ErrorIs(t, err, builder.ErrConstruction)

	_, err = b.Construct(builder.Spec{
		Kind:  builder.KindVBox,
		Props: []builder.Action{builder.PackStart{Child: builder.Spec{Kind: "nope"}}},
	})
	assert.ErrorIs(t, err, builder.ErrConstruction)
}

func TestConstructAppliesPropsThenEventsThenVisibility(t *testing.T) {
	b, _ := newBuilder()
	b.Context().Handle("noop", func(builder.Widget, interface{}, *builder.Context) {})

	w, err := b.Construct(builder.Spec{
		Kind: builder.KindButton,
		Props: []builder.Action{
			builder.Field{Name: "Text", Value: "Next"},
			builder.SetStyle{Text: "importance: high"},
			builder.SetIcon{Icon: builder.IconDescriptor{Name: "media-skip-next"}},
		},
		Events: []builder.Binding{{Event: "clicked", Handler: "noop"}},
	})
	require.NoError(t, err)

	bw := w.(*buildertest.Widget)
	assert.Equal(t, []string{"field:Text", "style", "icon", "connect:clicked", "show"}, bw.Trace)
	assert.Equal(t, builder.ImportanceHigh, bw.Style.Importance)
	assert.Equal(t, "media-skip-next", bw.Icon.Name)
	assert.True(t, bw.Visible())
}

func TestConstructHidden(t *testing.T) {
	b, _ := newBuilder()

	w, err := b.Construct(builder.Spec{Kind: builder.KindSeparator, Hidden: true})
	require.NoError(t, err)
	assert.False(t, w.Visible())
	assert.Equal(t, []string{"hide"}, w.(*buildertest.Widget).Trace)
}

func TestConstructRegistersNamedWidgets(t *testing.T) {
	b, _ := newBuilder()

	root, err := b.Construct(builder.Spec{
		Kind: builder.KindVBox,
		Name: "root",
		Props: []builder.Action{
			builder.PackStart{Child: label("title", "a")},
			builder.PackStart{Child: label("", "anonymous")},
			builder.PackEnd{Child: label("footer", "z")},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"footer", "root", "title"}, b.Context().Names())

	rw := root.(*buildertest.Widget)
	require.Len(t, rw.Start, 2)
	require.Len(t, rw.End, 1)
	assert.Equal(t, "a", rw.Start[0].Text())
	assert.Equal(t, "anonymous", rw.Start[1].Text())
	assert.Equal(t, "z", rw.End[0].Text())

	got, ok := b.Context().Lookup("title")
	require.True(t, ok)
	assert.Same(t, rw.Start[0], got)
}

func TestConstructSameNameLastWins(t *testing.T) {
	b, tk := newBuilder()

	_, err := b.Construct(builder.Spec{
		Kind: builder.KindHBox,
		Props: []builder.Action{
			builder.PackStart{Child: label("dup", "first")},
			builder.PackStart{Child: label("dup", "second")},
		},
	})
	require.NoError(t, err)
	require.Len(t, tk.Created, 3)

	got, ok := b.Context().Lookup("dup")
	require.True(t, ok)
	assert.Same(t, tk.Created[2], got)
	assert.Equal(t, 1, b.Context().Len())
}

func TestConstructGridNormalizesSpans(t *testing.T) {
	b, _ := newBuilder()

	w, err := b.Construct(builder.Spec{
		Kind: builder.KindGrid,
		Props: []builder.Action{
			builder.Attach{Child: label("", "k"), Cell: builder.Cell{Col: 0, Row: 3}},
			builder.Attach{Child: label("", "v"), Cell: builder.Cell{Col: 1, Row: 3, Width: 2, Height: 1}},
		},
	})
	require.NoError(t, err)

	grid := w.(*buildertest.Widget)
	assert.Equal(t, []builder.Cell{
		{Col: 0, Row: 3, Width: 1, Height: 1},
		{Col: 1, Row: 3, Width: 2, Height: 1},
	}, grid.Cells)
}

func TestConstructStackPageTitleDefaultsToName(t *testing.T) {
	b, _ := newBuilder()

	w, err := b.Construct(builder.Spec{
		Kind: builder.KindStack,
		Props: []builder.Action{
			builder.AddPage{Name: "EXIF", Child: label("", "a")},
			builder.AddPage{Name: "gps", Title: "Location", Child: label("", "b")},
		},
	})
	require.NoError(t, err)

	pages := w.(*buildertest.Widget).Pages
	require.Len(t, pages, 2)
	assert.Equal(t, "EXIF", pages[0].Title)
	assert.Equal(t, "Location", pages[1].Title)
}

func TestConstructWebActions(t *testing.T) {
	b, _ := newBuilder()

	w, err := b.Construct(builder.Spec{
		Kind: builder.KindWeb,
		Props: []builder.Action{
			builder.LoadURI{URI: "https://example.org/map"},
			builder.RunScript{Source: "center()"},
			builder.SizeHint{Width: 320, Height: 240},
		},
	})
	require.NoError(t, err)

	web := w.(*buildertest.Widget)
	assert.Equal(t, "https://example.org/map", web.URI)
	assert.Equal(t, []string{"center()"}, web.Scripts)
	assert.Equal(t, float32(320), web.Width)
}

func TestConstructMissingHandler(t *testing.T) {
	b, _ := newBuilder()

	_, err := b.Construct(builder.Spec{
		Kind:   builder.KindButton,
		Events: []builder.Binding{{Event: "clicked", Handler: "missing"}},
	})
	assert.ErrorIs(t, err, builder.ErrConstruction)
}

func TestEventsReachHandlers(t *testing.T) {
	b, _ := newBuilder()

	var (
		calls   int
		source  builder.Widget
		payload interface{}
	)
	b.Context().Handle("next-file", func(w builder.Widget, p interface{}, ctx *builder.Context) {
		calls++
		source = w
		payload = p
		assert.Same(t, b.Context(), ctx)
	})

	w, err := b.Construct(builder.Spec{
		Kind:   builder.KindButton,
		Events: []builder.Binding{{Event: "clicked", Handler: "next-file"}},
	})
	require.NoError(t, err)

	w.(*buildertest.Widget).Emit("clicked", 7)
	assert.Equal(t, 1, calls)
	assert.Same(t, w, source)
	assert.Equal(t, 7, payload)
}

func TestConstructUnsupportedCapability(t *testing.T) {
	b := builder.New(bareToolkit{}, nil, nil)

	_, err := b.Construct(builder.Spec{
		Kind:  builder.KindLabel,
		Props: []builder.Action{builder.SetStyle{Text: "font-weight: bold"}},
	})
	require.ErrorIs(t, err, builder.ErrConstruction)
	assert.Contains(t, err.Error(), builder.ErrUnsupported.Error())
}

func TestConstructBadStyle(t *testing.T) {
	b, _ := newBuilder()

	_, err := b.Construct(builder.Spec{
		Kind:  builder.KindLabel,
		Props: []builder.Action{builder.SetStyle{Text: "colour: red"}},
	})
	assert.ErrorIs(t, err, builder.ErrConstruction)
}

func TestUpdate(t *testing.T) {
	b, _ := newBuilder()

	_, err := b.Construct(builder.Spec{
		Kind:  builder.KindVBox,
		Name:  "root",
		Props: []builder.Action{builder.PackStart{Child: label("position", "0 / 0")}},
	})
	require.NoError(t, err)

	require.NoError(t, b.Update("position", builder.Field{Name: "Text", Value: "2 / 5"}))
	w, _ := b.Context().Lookup("position")
	assert.Equal(t, "2 / 5", w.(*buildertest.Widget).Text())

	assert.Error(t, b.Update("nobody", builder.Field{Name: "Text", Value: "x"}))
	assert.ErrorIs(t, b.Update("position", builder.LoadURI{URI: "x"}), builder.ErrConstruction)
}

func TestUpdateAddsChildrenUnderOwner(t *testing.T) {
	b, _ := newBuilder()

	_, err := b.Construct(builder.Spec{Kind: builder.KindStack, Name: "categories"})
	require.NoError(t, err)

	err = b.Update("categories", builder.AddPage{
		Name:  "EXIF",
		Child: builder.Spec{Kind: builder.KindGrid, Name: "exif-grid"},
	})
	require.NoError(t, err)
	_, ok := b.Context().Lookup("exif-grid")
	require.True(t, ok)

	require.NoError(t, b.Teardown("categories"))
	_, ok = b.Context().Lookup("exif-grid")
	assert.False(t, ok)
}

func TestTeardownForgetsDescendants(t *testing.T) {
	b, _ := newBuilder()

	root, err := b.Construct(builder.Spec{
		Kind: builder.KindVBox,
		Name: "root",
		Props: []builder.Action{
			builder.PackStart{Child: builder.Spec{
				Kind: builder.KindScroll,
				Name: "scroll",
				Props: []builder.Action{builder.SetChild{Child: builder.Spec{
					Kind:  builder.KindGrid,
					Name:  "grid",
					Props: []builder.Action{builder.Attach{Child: label("cell", "v")}},
				}}},
			}},
		},
	})
	require.NoError(t, err)
	require.Equal(t, 4, b.Context().Len())

	require.NoError(t, b.Teardown("root"))

	assert.Equal(t, []string{"root"}, b.Context().Names())
	rw := root.(*buildertest.Widget)
	assert.Equal(t, 1, rw.Cleared)
	assert.Empty(t, rw.Children)
}

func TestTeardownErrors(t *testing.T) {
	b, _ := newBuilder()

	assert.Error(t, b.Teardown("missing"))

	_, err := b.Construct(label("plain", "x"))
	require.NoError(t, err)
	assert.Error(t, b.Teardown("plain"))
}

type bareToolkit struct{}

func (bareToolkit) New(kind builder.Kind) (builder.Widget, error) {
	return &bareWidget{kind: kind}, nil
}

type bareWidget struct {
	kind    builder.Kind
	visible bool
}

func (w *bareWidget) Kind() builder.Kind { return w.kind }
func (w *bareWidget) Show()              { w.visible = true }
func (w *bareWidget) Hide()              { w.visible = false }
func (w *bareWidget) Visible() bool      { return w.visible }
