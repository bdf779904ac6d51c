// Package fyneui implements the widget builder's Toolkit on top of fyne.
package fyneui

import (
	"fmt"

	"fyne.io/fyne/v2/theme"

	"exifview/internal/ui/builder"
)

type Toolkit struct {
	icons IconResolver
}

// NewToolkit returns a toolkit resolving icon names with icons, or with
// ThemeIcon when icons is nil.
func NewToolkit(icons IconResolver) *Toolkit {
	if icons == nil {
		icons = ThemeIcon
	}
	return &Toolkit{icons: icons}
}

func (t *Toolkit) New(kind builder.Kind) (builder.Widget, error) {
	switch kind {
	case builder.KindLabel:
		return newLabel(), nil
	case builder.KindButton:
		return newButton(t.icons), nil
	case builder.KindImage:
		return newImage(t.icons), nil
	case builder.KindIcon:
		return newIcon(t.icons), nil
	case builder.KindLink:
		return newLink(), nil
	case builder.KindSeparator:
		return newSeparator(), nil
	case builder.KindGrid:
		return newGrid(theme.Padding()), nil
	case builder.KindHBox, builder.KindVBox:
		return newBox(kind), nil
	case builder.KindStack:
		return newStack(), nil
	case builder.KindScroll:
		return newScroll(), nil
	case builder.KindWeb:
		return newWeb(), nil
	}
	return nil, fmt.Errorf("no fyne widget for kind %q", kind)
}
