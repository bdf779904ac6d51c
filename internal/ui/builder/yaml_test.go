package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const headerYAML = `
kind: vbox
name: main
props:
  - pack-start:
      kind: hbox
      props:
        - pack-start: {kind: button, name: prev, props: [{icon: go-previous}], events: {clicked: previous-file}}
        - pack-start: {kind: label, name: file-name, props: [{Text: ""}, {style: "font-weight: bold"}]}
        - pack-end: {kind: icon, props: [{icon: {name: image, size: 32}}]}
  - pack-start:
      kind: stack
      name: categories
      props:
        - page:
            name: first
            child:
              kind: grid
              props:
                - attach: {col: 1, row: 2, child: {kind: label}}
  - pack-end: {kind: web, visible: false, props: [{uri: "https://example.org"}, {size: {width: 200, height: 150}}]}
`

func TestLoadSpec(t *testing.T) {
	spec, err := LoadSpec([]byte(headerYAML))
	require.NoError(t, err)

	assert.Equal(t, KindVBox, spec.Kind)
	assert.Equal(t, "main", spec.Name)
	require.Len(t, spec.Props, 3)

	header := spec.Props[0].(PackStart).Child
	assert.Equal(t, KindHBox, header.Kind)
	require.Len(t, header.Props, 3)

	prev := header.Props[0].(PackStart).Child
	assert.Equal(t, "prev", prev.Name)
	assert.Equal(t, []Action{SetIcon{Icon: IconDescriptor{Name: "go-previous"}}}, prev.Props)
	assert.Equal(t, []Binding{{Event: "clicked", Handler: "previous-file"}}, prev.Events)

	name := header.Props[1].(PackStart).Child
	assert.Equal(t, []Action{Field{Name: "Text", Value: ""}, SetStyle{Text: "font-weight: bold"}}, name.Props)

	icon := header.Props[2].(PackEnd).Child
	assert.Equal(t, []Action{SetIcon{Icon: IconDescriptor{Name: "image", Size: 32}}}, icon.Props)

	page := spec.Props[1].(PackStart).Child.Props[0].(AddPage)
	assert.Equal(t, "first", page.Name)
	attach := page.Child.Props[0].(Attach)
	assert.Equal(t, Cell{Col: 1, Row: 2}, attach.Cell)
	assert.Equal(t, KindLabel, attach.Child.Kind)

	web := spec.Props[2].(PackEnd).Child
	assert.True(t, web.Hidden)
	assert.Equal(t, []Action{LoadURI{URI: "https://example.org"}, SizeHint{Width: 200, Height: 150}}, web.Props)
}

func TestLoadSpecErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"not a mapping", "- kind: label"},
		{"unknown key", "kind: label\ncolour: red"},
		{"unknown kind", "kind: spinner"},
		{"props not a sequence", "kind: label\nprops: {Text: x}"},
		{"multi-key prop", "kind: label\nprops: [{Text: x, Wrapping: 1}]"},
		{"disallowed action", "kind: label\nprops: [{uri: x}]"},
		{"bad child", "kind: scroll\nprops: [{child: {kind: nope}}]"},
		{"events not a mapping", "kind: button\nevents: [clicked]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadSpec([]byte(tt.yaml))
			assert.ErrorIs(t, err, ErrConstruction)
		})
	}
}

func TestParseStyle(t *testing.T) {
	style, err := ParseStyle("font-weight: bold; text-align: right; wrap: word;")
	require.NoError(t, err)
	assert.Equal(t, Style{Bold: true, Align: AlignEnd, Wrap: WrapWord}, style)

	style, err = ParseStyle("font-family: monospace; font-style: italic; importance: danger")
	require.NoError(t, err)
	assert.Equal(t, Style{Italic: true, Monospace: true, Importance: ImportanceDanger}, style)

	style, err = ParseStyle("")
	require.NoError(t, err)
	assert.Equal(t, Style{}, style)

	for _, bad := range []string{"font-weight", "font-weight: heavy", "colour: red", "text-align: justify"} {
		_, err := ParseStyle(bad)
		assert.Error(t, err, bad)
	}
}

func TestKindAllows(t *testing.T) {
	assert.True(t, KindGrid.Allows(ActionAttach))
	assert.False(t, KindLabel.Allows(ActionAttach))
	assert.True(t, KindLabel.Allows(ActionField))
	assert.False(t, Kind("spinner").Allows(ActionField))
	assert.True(t, KindScroll.IsContainer())
	assert.False(t, KindWeb.IsContainer())
	assert.Equal(t, "pack-end", ActionPackEnd.String())
}
