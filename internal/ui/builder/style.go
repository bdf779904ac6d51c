package builder

import (
	"fmt"
	"strings"
)

type Align int

const (
	AlignDefault Align = iota
	AlignStart
	AlignCenter
	AlignEnd
)

type Importance int

const (
	ImportanceDefault Importance = iota
	ImportanceLow
	ImportanceMedium
	ImportanceHigh
	ImportanceDanger
	ImportanceWarning
	ImportanceSuccess
)

type Wrap int

const (
	WrapDefault Wrap = iota
	WrapOff
	WrapWord
	WrapBreak
	WrapTruncate
)

// Style is the parsed form of a SetStyle declaration list.
type Style struct {
	Bold       bool
	Italic     bool
	Monospace  bool
	Align      Align
	Importance Importance
	Wrap       Wrap
}

var (
	alignValues = map[string]Align{
		"start": AlignStart, "left": AlignStart,
		"center": AlignCenter,
		"end": AlignEnd, "right": AlignEnd,
	}
	importanceValues = map[string]Importance{
		"low": ImportanceLow, "medium": ImportanceMedium, "high": ImportanceHigh,
		"danger": ImportanceDanger, "warning": ImportanceWarning, "success": ImportanceSuccess,
	}
	wrapValues = map[string]Wrap{
		"off": WrapOff, "word": WrapWord, "break": WrapBreak, "truncate": WrapTruncate,
	}
)

// ParseStyle reads "property: value" declarations separated by semicolons.
func ParseStyle(text string) (Style, error) {
	var style Style

	for _, decl := range strings.Split(text, ";") {
		decl = strings.TrimSpace(decl)
		if decl == "" {
			continue
		}
		prop, value, ok := strings.Cut(decl, ":")
		if !ok {
			return Style{}, fmt.Errorf("style declaration %q has no value", decl)
		}
		prop = strings.ToLower(strings.TrimSpace(prop))
		value = strings.ToLower(strings.TrimSpace(value))

		switch prop {
		case "font-weight":
			switch value {
			case "bold":
				style.Bold = true
			case "normal":
				style.Bold = false
			default:
				return Style{}, fmt.Errorf("font-weight %q", value)
			}
		case "font-style":
			switch value {
			case "italic":
				style.Italic = true
			case "normal":
				style.Italic = false
			default:
				return Style{}, fmt.Errorf("font-style %q", value)
			}
		case "font-family":
			style.Monospace = value == "monospace"
		case "text-align":
			align, ok := alignValues[value]
			if !ok {
				return Style{}, fmt.Errorf("text-align %q", value)
			}
			style.Align = align
		case "importance":
			importance, ok := importanceValues[value]
			if !ok {
				return Style{}, fmt.Errorf("importance %q", value)
			}
			style.Importance = importance
		case "wrap":
			wrap, ok := wrapValues[value]
			if !ok {
				return Style{}, fmt.Errorf("wrap %q", value)
			}
			style.Wrap = wrap
		default:
			return Style{}, fmt.Errorf("unknown style property %q", prop)
		}
	}

	return style, nil
}
