package fyneui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"exifview/internal/ui/builder"
)

func textStyle(style builder.Style) fyne.TextStyle {
	return fyne.TextStyle{
		Bold:      style.Bold,
		Italic:    style.Italic,
		Monospace: style.Monospace,
	}
}

func textAlign(align builder.Align) fyne.TextAlign {
	switch align {
	case builder.AlignCenter:
		return fyne.TextAlignCenter
	case builder.AlignEnd:
		return fyne.TextAlignTrailing
	default:
		return fyne.TextAlignLeading
	}
}

func importance(i builder.Importance) widget.Importance {
	switch i {
	case builder.ImportanceLow:
		return widget.LowImportance
	case builder.ImportanceHigh:
		return widget.HighImportance
	case builder.ImportanceDanger:
		return widget.DangerImportance
	case builder.ImportanceWarning:
		return widget.WarningImportance
	case builder.ImportanceSuccess:
		return widget.SuccessImportance
	default:
		return widget.MediumImportance
	}
}

func textWrap(w builder.Wrap) fyne.TextWrap {
	switch w {
	case builder.WrapWord:
		return fyne.TextWrapWord
	case builder.WrapBreak:
		return fyne.TextWrapBreak
	default:
		return fyne.TextWrapOff
	}
}
