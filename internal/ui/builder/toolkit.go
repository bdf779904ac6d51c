package builder

import "errors"

// ErrUnsupported is returned by toolkits for actions a widget cannot honour.
var ErrUnsupported = errors.New("unsupported by toolkit")

// Toolkit instantiates concrete widgets.
type Toolkit interface {
	New(kind Kind) (Widget, error)
}

// Widget is the toolkit-neutral handle the builder works with. Structural
// actions are applied through the optional capability interfaces below.
type Widget interface {
	Kind() Kind
	Show()
	Hide()
	Visible() bool
}

type Attacher interface {
	Attach(child Widget, cell Cell) error
}

type Packer interface {
	PackStart(child Widget) error
	PackEnd(child Widget) error
}

type ChildSetter interface {
	SetChild(child Widget) error
}

type URILoader interface {
	LoadURI(uri string) error
}

type ScriptRunner interface {
	RunScript(source string) error
}

type Styler interface {
	ApplyStyle(style Style) error
}

type IconSetter interface {
	SetIcon(icon IconDescriptor) error
}

type PageAdder interface {
	AddPage(name, title string, child Widget) error
}

type SizeHinter interface {
	SetSizeHint(width, height float32) error
}

type FieldSetter interface {
	SetField(name string, value interface{}) error
}

// EventSource emits named events. The callback receives the raw payload.
type EventSource interface {
	Connect(event string, callback func(payload interface{})) error
}

// Clearer destroys every child of a container.
type Clearer interface {
	Clear()
}
