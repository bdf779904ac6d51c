package builder

// Kind names a widget type the builder can instantiate.
type Kind string

const (
	KindLabel     Kind = "label"
	KindButton    Kind = "button"
	KindImage     Kind = "image"
	KindIcon      Kind = "icon"
	KindLink      Kind = "link"
	KindSeparator Kind = "separator"
	KindGrid      Kind = "grid"
	KindHBox      Kind = "hbox"
	KindVBox      Kind = "vbox"
	KindStack     Kind = "stack"
	KindScroll    Kind = "scroll"
	KindWeb       Kind = "web"
)

// Kinds lists every supported kind.
var Kinds = []Kind{
	KindLabel, KindButton, KindImage, KindIcon, KindLink, KindSeparator,
	KindGrid, KindHBox, KindVBox, KindStack, KindScroll, KindWeb,
}

// allowed is the per-kind set of structural actions. ActionField is accepted
// by every kind and therefore not listed.
var allowed = map[Kind][]ActionKind{
	KindLabel:     {ActionSetStyle, ActionSizeHint},
	KindButton:    {ActionSetStyle, ActionSetIcon, ActionSizeHint},
	KindImage:     {ActionSetIcon, ActionSizeHint},
	KindIcon:      {ActionSetIcon, ActionSizeHint},
	KindLink:      {ActionLoadURI, ActionSetStyle},
	KindSeparator: {ActionSizeHint},
	KindGrid:      {ActionAttach, ActionSizeHint},
	KindHBox:      {ActionPackStart, ActionPackEnd, ActionSizeHint},
	KindVBox:      {ActionPackStart, ActionPackEnd, ActionSizeHint},
	KindStack:     {ActionAddPage, ActionSizeHint},
	KindScroll:    {ActionSetChild, ActionSizeHint},
	KindWeb:       {ActionLoadURI, ActionRunScript, ActionSizeHint},
}

func (k Kind) Valid() bool {
	_, ok := allowed[k]
	return ok
}

// Allows reports whether actions of the given kind may be applied to k.
func (k Kind) Allows(a ActionKind) bool {
	if a == ActionField {
		return k.Valid()
	}
	for _, candidate := range allowed[k] {
		if candidate == a {
			return true
		}
	}
	return false
}

// IsContainer reports whether widgets of this kind own child widgets.
func (k Kind) IsContainer() bool {
	switch k {
	case KindGrid, KindHBox, KindVBox, KindStack, KindScroll:
		return true
	}
	return false
}
