package builder

import (
	"fmt"

	"exifview/internal/logger"
)

// Builder turns Spec trees into live widgets. Widgets are never created any
// other way, so every widget in a window is described by data.
type Builder struct {
	toolkit Toolkit
	ctx     *Context
	logger  logger.Logger
}

func New(toolkit Toolkit, ctx *Context, log logger.Logger) *Builder {
	if ctx == nil {
		ctx = NewContext()
	}
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &Builder{toolkit: toolkit, ctx: ctx, logger: log}
}

func (b *Builder) Context() *Context {
	return b.ctx
}

// Construct validates spec and builds its widget tree. Properties are applied
// in order, then events are wired, then visibility is set. Named widgets are
// registered as they are created; a name already in use is rebound.
func (b *Builder) Construct(spec Spec) (Widget, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return b.construct(spec, "")
}

func (b *Builder) construct(spec Spec, owner string) (Widget, error) {
	w, err := b.toolkit.New(spec.Kind)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConstruction, spec.describe(), err)
	}

	if spec.Name != "" {
		if _, exists := b.ctx.Lookup(spec.Name); exists {
			b.logger.Debug("Builder", "rebinding widget name", map[string]interface{}{
				"name": spec.Name,
				"kind": string(spec.Kind),
			})
		}
		b.ctx.Register(spec.Name, w)
		b.ctx.adopt(owner, spec.Name)
		owner = spec.Name
	}

	for _, action := range spec.Props {
		if err := b.apply(w, action, owner); err != nil {
			return nil, fmt.Errorf("%w: %s: %s: %v", ErrConstruction, spec.describe(), action.ActionKind(), err)
		}
	}

	for _, binding := range spec.Events {
		if err := b.connect(w, binding); err != nil {
			return nil, fmt.Errorf("%w: %s: event %q: %v", ErrConstruction, spec.describe(), binding.Event, err)
		}
	}

	if spec.Hidden {
		w.Hide()
	} else {
		w.Show()
	}

	return w, nil
}

// Update applies further actions to a registered widget, e.g. to change a
// label's text after the page it sits on has been built.
func (b *Builder) Update(name string, actions ...Action) error {
	w, ok := b.ctx.Lookup(name)
	if !ok {
		return fmt.Errorf("no widget named %q", name)
	}

	for _, action := range actions {
		if action == nil || !w.Kind().Allows(action.ActionKind()) {
			return fmt.Errorf("%w: %q (%s): property not allowed", ErrConstruction, w.Kind(), name)
		}
		for _, child := range nested(action) {
			if err := child.Validate(); err != nil {
				return err
			}
		}
		if err := b.apply(w, action, name); err != nil {
			return fmt.Errorf("update %q: %s: %w", name, action.ActionKind(), err)
		}
	}
	return nil
}

// Teardown destroys the children of each root container and forgets every
// named widget below it. The roots themselves stay registered.
func (b *Builder) Teardown(roots ...string) error {
	for _, root := range roots {
		w, ok := b.ctx.Lookup(root)
		if !ok {
			return fmt.Errorf("no widget named %q", root)
		}
		clearer, ok := w.(Clearer)
		if !ok {
			return fmt.Errorf("widget %q (%s) has no children to clear", root, w.Kind())
		}
		clearer.Clear()
		b.ctx.dropDescendants(root)
	}

	b.logger.Debug("Builder", "teardown complete", map[string]interface{}{
		"roots":      roots,
		"registered": b.ctx.Len(),
	})
	return nil
}

func (b *Builder) apply(w Widget, action Action, owner string) error {
	switch a := action.(type) {
	case Attach:
		target, err := capability[Attacher](w, action)
		if err != nil {
			return err
		}
		child, err := b.construct(a.Child, owner)
		if err != nil {
			return err
		}
		return target.Attach(child, a.Cell.normalized())

	case PackStart:
		target, err := capability[Packer](w, action)
		if err != nil {
			return err
		}
		child, err := b.construct(a.Child, owner)
		if err != nil {
			return err
		}
		return target.PackStart(child)

	case PackEnd:
		target, err := capability[Packer](w, action)
		if err != nil {
			return err
		}
		child, err := b.construct(a.Child, owner)
		if err != nil {
			return err
		}
		return target.PackEnd(child)

	case SetChild:
		target, err := capability[ChildSetter](w, action)
		if err != nil {
			return err
		}
		child, err := b.construct(a.Child, owner)
		if err != nil {
			return err
		}
		return target.SetChild(child)

	case AddPage:
		target, err := capability[PageAdder](w, action)
		if err != nil {
			return err
		}
		child, err := b.construct(a.Child, owner)
		if err != nil {
			return err
		}
		title := a.Title
		if title == "" {
			title = a.Name
		}
		return target.AddPage(a.Name, title, child)

	case LoadURI:
		target, err := capability[URILoader](w, action)
		if err != nil {
			return err
		}
		return target.LoadURI(a.URI)

	case RunScript:
		target, err := capability[ScriptRunner](w, action)
		if err != nil {
			return err
		}
		return target.RunScript(a.Source)

	case SetStyle:
		target, err := capability[Styler](w, action)
		if err != nil {
			return err
		}
		style, err := ParseStyle(a.Text)
		if err != nil {
			return err
		}
		return target.ApplyStyle(style)

	case SetIcon:
		target, err := capability[IconSetter](w, action)
		if err != nil {
			return err
		}
		return target.SetIcon(a.Icon)

	case SizeHint:
		target, err := capability[SizeHinter](w, action)
		if err != nil {
			return err
		}
		return target.SetSizeHint(a.Width, a.Height)

	case Field:
		target, err := capability[FieldSetter](w, action)
		if err != nil {
			return err
		}
		return target.SetField(a.Name, a.Value)

	default:
		return fmt.Errorf("unknown action %T", action)
	}
}

func (b *Builder) connect(w Widget, binding Binding) error {
	handler, ok := b.ctx.handler(binding.Handler)
	if !ok {
		return fmt.Errorf("no handler named %q", binding.Handler)
	}
	source, ok := w.(EventSource)
	if !ok {
		return ErrUnsupported
	}

	ctx := b.ctx
	return source.Connect(binding.Event, func(payload interface{}) {
		handler(w, payload, ctx)
	})
}

func capability[T any](w Widget, action Action) (T, error) {
	target, ok := w.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: %s on %s", ErrUnsupported, action.ActionKind(), w.Kind())
	}
	return target, nil
}
