package fyneui

import (
	"fmt"
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// IconResolver maps an icon name to a drawable resource.
type IconResolver func(name string) (fyne.Resource, error)

var themeIcons = map[string]func() fyne.Resource{
	"go-previous": theme.NavigateBackIcon,
	"go-next":     theme.NavigateNextIcon,
	"go-first":    theme.MediaSkipPreviousIcon,
	"go-last":     theme.MediaSkipNextIcon,
	"file":        theme.FileIcon,
	"image":       theme.FileImageIcon,
	"video":       theme.FileVideoIcon,
	"audio":       theme.FileAudioIcon,
	"text":        theme.FileTextIcon,
	"application": theme.FileApplicationIcon,
	"folder":      theme.FolderIcon,
	"info":        theme.InfoIcon,
	"warning":     theme.WarningIcon,
	"error":       theme.ErrorIcon,
	"help":        theme.HelpIcon,
	"search":      theme.SearchIcon,
	"location":    theme.HomeIcon,
	"document":    theme.DocumentIcon,
}

// ThemeIcon resolves names against the current fyne theme.
func ThemeIcon(name string) (fyne.Resource, error) {
	icon, ok := themeIcons[name]
	if !ok {
		return nil, fmt.Errorf("unknown icon %q", name)
	}
	return icon(), nil
}

// IconNames lists the names ThemeIcon understands, sorted.
func IconNames() []string {
	names := make([]string, 0, len(themeIcons))
	for name := range themeIcons {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
