package builder

import "fmt"

// ActionKind identifies one entry of the structural action catalogue.
type ActionKind int

const (
	ActionAttach ActionKind = iota
	ActionPackStart
	ActionPackEnd
	ActionSetChild
	ActionLoadURI
	ActionRunScript
	ActionSetStyle
	ActionSetIcon
	ActionAddPage
	ActionSizeHint
	ActionField
)

var actionNames = map[ActionKind]string{
	ActionAttach:    "attach",
	ActionPackStart: "pack-start",
	ActionPackEnd:   "pack-end",
	ActionSetChild:  "child",
	ActionLoadURI:   "uri",
	ActionRunScript: "script",
	ActionSetStyle:  "style",
	ActionSetIcon:   "icon",
	ActionAddPage:   "page",
	ActionSizeHint:  "size",
	ActionField:     "field",
}

func (a ActionKind) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return fmt.Sprintf("action(%d)", int(a))
}

// Action is one property of a Spec. The set of implementations is closed:
// only the types in this file satisfy it.
type Action interface {
	ActionKind() ActionKind
	action()
}

// Cell is a grid position; Width and Height are spans and default to 1.
type Cell struct {
	Col, Row      int
	Width, Height int
}

func (c Cell) normalized() Cell {
	if c.Width < 1 {
		c.Width = 1
	}
	if c.Height < 1 {
		c.Height = 1
	}
	return c
}

// IconDescriptor names a themed icon and the size to draw it at.
type IconDescriptor struct {
	Name string
	Size float32
}

// Attach places Child in a grid cell.
type Attach struct {
	Child Spec
	Cell  Cell
}

// PackStart adds Child after the previous start-packed children of a box.
type PackStart struct{ Child Spec }

// PackEnd adds Child before the previous end-packed children of a box.
type PackEnd struct{ Child Spec }

// SetChild replaces the single child of a wrapper such as a scroll.
type SetChild struct{ Child Spec }

// LoadURI points a content widget at a URI.
type LoadURI struct{ URI string }

// RunScript hands source text to a widget that embeds a script engine.
type RunScript struct{ Source string }

// SetStyle applies declarations such as "font-weight: bold; text-align: end".
type SetStyle struct{ Text string }

type SetIcon struct{ Icon IconDescriptor }

// AddPage adds a named page to a stack.
type AddPage struct {
	Name  string
	Title string
	Child Spec
}

type SizeHint struct {
	Width, Height float32
}

// Field assigns a widget attribute directly, for anything the catalogue does
// not model.
type Field struct {
	Name  string
	Value interface{}
}

func (Attach) ActionKind() ActionKind    { return ActionAttach }
func (PackStart) ActionKind() ActionKind { return ActionPackStart }
func (PackEnd) ActionKind() ActionKind   { return ActionPackEnd }
func (SetChild) ActionKind() ActionKind  { return ActionSetChild }
func (LoadURI) ActionKind() ActionKind   { return ActionLoadURI }
func (RunScript) ActionKind() ActionKind { return ActionRunScript }
func (SetStyle) ActionKind() ActionKind  { return ActionSetStyle }
func (SetIcon) ActionKind() ActionKind   { return ActionSetIcon }
func (AddPage) ActionKind() ActionKind   { return ActionAddPage }
func (SizeHint) ActionKind() ActionKind  { return ActionSizeHint }
func (Field) ActionKind() ActionKind     { return ActionField }

func (Attach) action()    {}
func (PackStart) action() {}
func (PackEnd) action()   {}
func (SetChild) action()  {}
func (LoadURI) action()   {}
func (RunScript) action() {}
func (SetStyle) action()  {}
func (SetIcon) action()   {}
func (AddPage) action()   {}
func (SizeHint) action()  {}
func (Field) action()     {}

// nested returns the child specs an action carries.
func nested(a Action) []Spec {
	switch a := a.(type) {
	case Attach:
		return []Spec{a.Child}
	case PackStart:
		return []Spec{a.Child}
	case PackEnd:
		return []Spec{a.Child}
	case SetChild:
		return []Spec{a.Child}
	case AddPage:
		return []Spec{a.Child}
	}
	return nil
}
