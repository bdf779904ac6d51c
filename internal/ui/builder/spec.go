package builder

import (
	"errors"
	"fmt"
)

// ErrConstruction marks a structural defect in a spec tree. It is fatal: the
// application cannot start with a window it cannot build.
var ErrConstruction = errors.New("widget construction failed")

// Binding connects a widget event to a handler registered in the Context.
type Binding struct {
	Event   string
	Handler string
}

// Spec describes one widget and, through the actions it carries, its
// subtree. It is consumed by Construct and not kept afterwards.
type Spec struct {
	Kind   Kind
	Name   string
	Props  []Action
	Events []Binding
	Hidden bool
}

// Validate checks kinds and per-kind actions for the whole tree.
func (s Spec) Validate() error {
	if !s.Kind.Valid() {
		return constructionError(s, "unknown widget kind")
	}

	for _, action := range s.Props {
		if action == nil {
			return constructionError(s, "nil property")
		}
		if !s.Kind.Allows(action.ActionKind()) {
			return constructionError(s, fmt.Sprintf("property %q not allowed", action.ActionKind()))
		}
		if f, ok := action.(Field); ok && f.Name == "" {
			return constructionError(s, "field property without a name")
		}
		for _, child := range nested(action) {
			if err := child.Validate(); err != nil {
				return err
			}
		}
	}

	for _, b := range s.Events {
		if b.Event == "" || b.Handler == "" {
			return constructionError(s, "incomplete event binding")
		}
	}
	return nil
}

func (s Spec) describe() string {
	if s.Name == "" {
		return fmt.Sprintf("%q", s.Kind)
	}
	return fmt.Sprintf("%q (%s)", s.Kind, s.Name)
}

func constructionError(s Spec, reason string) error {
	return fmt.Errorf("%w: %s: %s", ErrConstruction, s.describe(), reason)
}
