package fyneui

import (
	"fmt"
	"net/url"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"exifview/internal/ui/builder"
)

// Object returns the canvas object backing a widget built by this toolkit.
func Object(w builder.Widget) (fyne.CanvasObject, error) {
	holder, ok := w.(interface{ Object() fyne.CanvasObject })
	if !ok {
		return nil, fmt.Errorf("widget %s was not built by the fyne toolkit", w.Kind())
	}
	return holder.Object(), nil
}

// base wraps every widget in a frame so size hints and visibility apply to
// the same object the parent holds.
type base struct {
	kind   builder.Kind
	frame  *fyne.Container
	size   *sizeLayout
	target interface{}
}

func newBase(kind builder.Kind, content fyne.CanvasObject, target interface{}) base {
	size := &sizeLayout{}
	return base{
		kind:   kind,
		frame:  container.New(size, content),
		size:   size,
		target: target,
	}
}

func (b *base) Kind() builder.Kind        { return b.kind }
func (b *base) Show()                     { b.frame.Show() }
func (b *base) Hide()                     { b.frame.Hide() }
func (b *base) Visible() bool             { return b.frame.Visible() }
func (b *base) Object() fyne.CanvasObject { return b.frame }

func (b *base) SetField(name string, value interface{}) error {
	return setField(b.target, name, value)
}

func (b *base) SetSizeHint(width, height float32) error {
	b.size.hint = fyne.NewSize(width, height)
	b.frame.Refresh()
	return nil
}

func unsupportedEvent(kind builder.Kind, event string) error {
	return fmt.Errorf("%w: event %q on %s", builder.ErrUnsupported, event, kind)
}

type labelWidget struct {
	base
	label *widget.Label
}

func newLabel() *labelWidget {
	label := widget.NewLabel("")
	return &labelWidget{base: newBase(builder.KindLabel, label, label), label: label}
}

func (l *labelWidget) ApplyStyle(style builder.Style) error {
	l.label.TextStyle = textStyle(style)
	if style.Align != builder.AlignDefault {
		l.label.Alignment = textAlign(style.Align)
	}
	if style.Importance != builder.ImportanceDefault {
		l.label.Importance = importance(style.Importance)
	}
	switch style.Wrap {
	case builder.WrapTruncate:
		l.label.Wrapping = fyne.TextWrapOff
		l.label.Truncation = fyne.TextTruncateEllipsis
	case builder.WrapDefault:
	default:
		l.label.Wrapping = textWrap(style.Wrap)
	}
	l.label.Refresh()
	return nil
}

type buttonWidget struct {
	base
	button  *widget.Button
	icons   IconResolver
	clicked []func(interface{})
}

func newButton(icons IconResolver) *buttonWidget {
	b := &buttonWidget{icons: icons}
	b.button = widget.NewButton("", func() {
		for _, cb := range b.clicked {
			cb(nil)
		}
	})
	b.base = newBase(builder.KindButton, b.button, b.button)
	return b
}

func (b *buttonWidget) ApplyStyle(style builder.Style) error {
	if style.Importance != builder.ImportanceDefault {
		b.button.Importance = importance(style.Importance)
		b.button.Refresh()
	}
	return nil
}

func (b *buttonWidget) SetIcon(icon builder.IconDescriptor) error {
	res, err := b.icons(icon.Name)
	if err != nil {
		return err
	}
	b.button.SetIcon(res)
	return nil
}

func (b *buttonWidget) Connect(event string, callback func(payload interface{})) error {
	if event != "clicked" {
		return unsupportedEvent(b.kind, event)
	}
	b.clicked = append(b.clicked, callback)
	return nil
}

type imageWidget struct {
	base
	image *canvas.Image
	icons IconResolver
}

func newImage(icons IconResolver) *imageWidget {
	img := canvas.NewImageFromResource(nil)
	img.FillMode = canvas.ImageFillContain
	return &imageWidget{base: newBase(builder.KindImage, img, img), image: img, icons: icons}
}

func (i *imageWidget) SetIcon(icon builder.IconDescriptor) error {
	res, err := i.icons(icon.Name)
	if err != nil {
		return err
	}
	i.image.Resource = res
	if icon.Size > 0 {
		i.image.SetMinSize(fyne.NewSquareSize(icon.Size))
	}
	i.image.Refresh()
	return nil
}

type iconWidget struct {
	base
	icon  *widget.Icon
	icons IconResolver
}

func newIcon(icons IconResolver) *iconWidget {
	icon := widget.NewIcon(nil)
	return &iconWidget{base: newBase(builder.KindIcon, icon, icon), icon: icon, icons: icons}
}

func (i *iconWidget) SetIcon(icon builder.IconDescriptor) error {
	res, err := i.icons(icon.Name)
	if err != nil {
		return err
	}
	i.icon.SetResource(res)
	if icon.Size > 0 {
		return i.SetSizeHint(icon.Size, icon.Size)
	}
	return nil
}

type linkWidget struct {
	base
	link *widget.Hyperlink
}

func newLink() *linkWidget {
	link := widget.NewHyperlink("", nil)
	return &linkWidget{base: newBase(builder.KindLink, link, link), link: link}
}

func (l *linkWidget) LoadURI(uri string) error {
	return loadLink(l.link, uri)
}

func (l *linkWidget) ApplyStyle(style builder.Style) error {
	l.link.TextStyle = textStyle(style)
	if style.Align != builder.AlignDefault {
		l.link.Alignment = textAlign(style.Align)
	}
	l.link.Refresh()
	return nil
}

func loadLink(link *widget.Hyperlink, uri string) error {
	u, err := url.Parse(uri)
	if err != nil {
		return fmt.Errorf("parse uri: %w", err)
	}
	if link.Text == "" {
		link.SetText(uri)
	}
	link.SetURL(u)
	return nil
}

type separatorWidget struct {
	base
}

func newSeparator() *separatorWidget {
	sep := widget.NewSeparator()
	return &separatorWidget{base: newBase(builder.KindSeparator, sep, sep)}
}

type gridWidget struct {
	base
	grid   *fyne.Container
	layout *gridLayout
}

func newGrid(padding float32) *gridWidget {
	gl := newGridLayout(padding)
	grid := container.New(gl)
	return &gridWidget{base: newBase(builder.KindGrid, grid, grid), grid: grid, layout: gl}
}

func (g *gridWidget) Attach(child builder.Widget, cell builder.Cell) error {
	obj, err := Object(child)
	if err != nil {
		return err
	}
	g.layout.place(obj, cell)
	g.grid.Add(obj)
	return nil
}

func (g *gridWidget) Clear() {
	g.layout.reset()
	g.grid.RemoveAll()
}

// boxWidget keeps start-packed children first and end-packed children last,
// separated by a spacer once anything is packed at the end.
type boxWidget struct {
	base
	box   *fyne.Container
	start []fyne.CanvasObject
	end   []fyne.CanvasObject
}

func newBox(kind builder.Kind) *boxWidget {
	var box *fyne.Container
	if kind == builder.KindHBox {
		box = container.NewHBox()
	} else {
		box = container.NewVBox()
	}
	return &boxWidget{base: newBase(kind, box, box), box: box}
}

func (b *boxWidget) PackStart(child builder.Widget) error {
	obj, err := Object(child)
	if err != nil {
		return err
	}
	b.start = append(b.start, obj)
	b.rebuild()
	return nil
}

func (b *boxWidget) PackEnd(child builder.Widget) error {
	obj, err := Object(child)
	if err != nil {
		return err
	}
	b.end = append(b.end, obj)
	b.rebuild()
	return nil
}

func (b *boxWidget) Clear() {
	b.start, b.end = nil, nil
	b.rebuild()
}

func (b *boxWidget) rebuild() {
	objects := make([]fyne.CanvasObject, 0, len(b.start)+len(b.end)+1)
	objects = append(objects, b.start...)
	if len(b.end) > 0 {
		objects = append(objects, layout.NewSpacer())
		for i := len(b.end) - 1; i >= 0; i-- {
			objects = append(objects, b.end[i])
		}
	}
	b.box.Objects = objects
	b.box.Refresh()
}

type stackWidget struct {
	base
	tabs     *container.AppTabs
	names    map[*container.TabItem]string
	selected []func(interface{})
}

func newStack() *stackWidget {
	s := &stackWidget{names: make(map[*container.TabItem]string)}
	s.tabs = container.NewAppTabs()
	s.tabs.SetTabLocation(container.TabLocationLeading)
	s.tabs.OnSelected = func(item *container.TabItem) {
		name, ok := s.names[item]
		if !ok {
			return
		}
		for _, cb := range s.selected {
			cb(name)
		}
	}
	s.base = newBase(builder.KindStack, s.tabs, s.tabs)
	return s
}

func (s *stackWidget) AddPage(name, title string, child builder.Widget) error {
	obj, err := Object(child)
	if err != nil {
		return err
	}
	item := container.NewTabItem(title, obj)
	s.names[item] = name
	s.tabs.Append(item)
	return nil
}

func (s *stackWidget) Clear() {
	s.names = make(map[*container.TabItem]string)
	s.tabs.SetItems(nil)
}

func (s *stackWidget) Connect(event string, callback func(payload interface{})) error {
	if event != "page-selected" {
		return unsupportedEvent(s.kind, event)
	}
	s.selected = append(s.selected, callback)
	return nil
}

type scrollWidget struct {
	base
	scroll *container.Scroll
}

func newScroll() *scrollWidget {
	scroll := container.NewVScroll(container.NewStack())
	return &scrollWidget{base: newBase(builder.KindScroll, scroll, scroll), scroll: scroll}
}

func (s *scrollWidget) SetChild(child builder.Widget) error {
	obj, err := Object(child)
	if err != nil {
		return err
	}
	s.scroll.Content = obj
	s.scroll.Refresh()
	return nil
}

func (s *scrollWidget) Clear() {
	s.scroll.Content = container.NewStack()
	s.scroll.Refresh()
}

// webWidget stands in for an embedded browser: it shows the loaded URI as
// a link that opens in the system browser. Scripts cannot run.
type webWidget struct {
	base
	link    *widget.Hyperlink
	caption *widget.Label
}

func newWeb() *webWidget {
	link := widget.NewHyperlink("", nil)
	caption := widget.NewLabel("")
	caption.Hide()
	content := container.NewVBox(link, caption)
	return &webWidget{base: newBase(builder.KindWeb, content, link), link: link, caption: caption}
}

func (w *webWidget) LoadURI(uri string) error {
	if err := loadLink(w.link, uri); err != nil {
		return err
	}
	w.caption.SetText(uri)
	w.caption.Show()
	return nil
}

func (w *webWidget) RunScript(string) error {
	return fmt.Errorf("%w: no script engine", builder.ErrUnsupported)
}
