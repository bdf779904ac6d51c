// Package buildertest provides an in-memory builder.Toolkit that records what
// the builder does to each widget.
package buildertest

import (
	"fmt"

	"exifview/internal/ui/builder"
)

type Toolkit struct {
	Created []*Widget
}

func NewToolkit() *Toolkit {
	return &Toolkit{}
}

func (t *Toolkit) New(kind builder.Kind) (builder.Widget, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("no such kind %q", kind)
	}
	w := &Widget{
		kind:     kind,
		Fields:   make(map[string]interface{}),
		handlers: make(map[string][]func(interface{})),
	}
	t.Created = append(t.Created, w)
	return w, nil
}

type Page struct {
	Name  string
	Title string
	Child *Widget
}

// Widget implements every capability interface; the builder's per-kind
// rules decide which ones are reachable.
type Widget struct {
	kind    builder.Kind
	visible bool

	Children []*Widget
	Cells    []builder.Cell
	Start    []*Widget
	End      []*Widget
	Pages    []Page
	Child    *Widget

	URI     string
	Scripts []string
	Style   builder.Style
	Icon    builder.IconDescriptor
	Width   float32
	Height  float32
	Fields  map[string]interface{}
	Cleared int

	// Trace lists the calls made on the widget, in order.
	Trace []string

	handlers map[string][]func(interface{})
}

func (w *Widget) Kind() builder.Kind { return w.kind }

func (w *Widget) Show() {
	w.visible = true
	w.Trace = append(w.Trace, "show")
}

func (w *Widget) Hide() {
	w.visible = false
	w.Trace = append(w.Trace, "hide")
}

func (w *Widget) Visible() bool { return w.visible }

func (w *Widget) Attach(child builder.Widget, cell builder.Cell) error {
	c := child.(*Widget)
	w.Children = append(w.Children, c)
	w.Cells = append(w.Cells, cell)
	w.Trace = append(w.Trace, "attach")
	return nil
}

func (w *Widget) PackStart(child builder.Widget) error {
	c := child.(*Widget)
	w.Start = append(w.Start, c)
	w.Children = append(w.Children, c)
	w.Trace = append(w.Trace, "pack-start")
	return nil
}

func (w *Widget) PackEnd(child builder.Widget) error {
	c := child.(*Widget)
	w.End = append(w.End, c)
	w.Children = append(w.Children, c)
	w.Trace = append(w.Trace, "pack-end")
	return nil
}

func (w *Widget) SetChild(child builder.Widget) error {
	w.Child = child.(*Widget)
	w.Children = []*Widget{w.Child}
	w.Trace = append(w.Trace, "child")
	return nil
}

func (w *Widget) AddPage(name, title string, child builder.Widget) error {
	c := child.(*Widget)
	w.Pages = append(w.Pages, Page{Name: name, Title: title, Child: c})
	w.Children = append(w.Children, c)
	w.Trace = append(w.Trace, "page:"+name)
	return nil
}

func (w *Widget) LoadURI(uri string) error {
	w.URI = uri
	w.Trace = append(w.Trace, "uri")
	return nil
}

func (w *Widget) RunScript(source string) error {
	w.Scripts = append(w.Scripts, source)
	w.Trace = append(w.Trace, "script")
	return nil
}

func (w *Widget) ApplyStyle(style builder.Style) error {
	w.Style = style
	w.Trace = append(w.Trace, "style")
	return nil
}

func (w *Widget) SetIcon(icon builder.IconDescriptor) error {
	w.Icon = icon
	w.Trace = append(w.Trace, "icon")
	return nil
}

func (w *Widget) SetSizeHint(width, height float32) error {
	w.Width, w.Height = width, height
	w.Trace = append(w.Trace, "size")
	return nil
}

func (w *Widget) SetField(name string, value interface{}) error {
	w.Fields[name] = value
	w.Trace = append(w.Trace, "field:"+name)
	return nil
}

func (w *Widget) Connect(event string, callback func(payload interface{})) error {
	w.handlers[event] = append(w.handlers[event], callback)
	w.Trace = append(w.Trace, "connect:"+event)
	return nil
}

func (w *Widget) Clear() {
	w.Children = nil
	w.Cells = nil
	w.Start = nil
	w.End = nil
	w.Pages = nil
	w.Child = nil
	w.Cleared++
	w.Trace = append(w.Trace, "clear")
}

// Emit fires every callback connected to event.
func (w *Widget) Emit(event string, payload interface{}) {
	for _, cb := range w.handlers[event] {
		cb(payload)
	}
}

// Text returns the "Text" field as a string.
func (w *Widget) Text() string {
	s, _ := w.Fields["Text"].(string)
	return s
}
