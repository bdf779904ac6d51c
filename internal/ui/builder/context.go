package builder

import "sort"

// Handler reacts to a widget event. It receives the emitting widget, the
// toolkit's payload and the context that owns the widget tree, so it can
// look up other widgets or trigger a rebuild.
type Handler func(w Widget, payload interface{}, ctx *Context)

// Context owns the widget registry and the named handler table for one
// application session. It has a single writer and needs no locking.
type Context struct {
	widgets  map[string]Widget
	children map[string][]string
	handlers map[string]Handler
}

func NewContext() *Context {
	return &Context{
		widgets:  make(map[string]Widget),
		children: make(map[string][]string),
		handlers: make(map[string]Handler),
	}
}

// Register binds name to w. An existing binding is replaced.
func (c *Context) Register(name string, w Widget) {
	c.widgets[name] = w
}

func (c *Context) Lookup(name string) (Widget, bool) {
	w, ok := c.widgets[name]
	return w, ok
}

// Names returns the registered names, sorted.
func (c *Context) Names() []string {
	names := make([]string, 0, len(c.widgets))
	for name := range c.widgets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (c *Context) Len() int {
	return len(c.widgets)
}

// Handle registers a named event handler.
func (c *Context) Handle(name string, h Handler) {
	c.handlers[name] = h
}

func (c *Context) handler(name string) (Handler, bool) {
	h, ok := c.handlers[name]
	return h, ok
}

// adopt records child as a named descendant of owner for bulk teardown.
func (c *Context) adopt(owner, child string) {
	if owner == "" || owner == child {
		return
	}
	c.children[owner] = append(c.children[owner], child)
}

// dropDescendants unregisters every named widget below root, not root itself.
func (c *Context) dropDescendants(root string) {
	c.drop(root, map[string]bool{root: true})
}

func (c *Context) drop(name string, seen map[string]bool) {
	for _, child := range c.children[name] {
		if seen[child] {
			continue
		}
		seen[child] = true
		c.drop(child, seen)
		delete(c.widgets, child)
	}
	delete(c.children, name)
}
