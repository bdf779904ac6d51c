package metadata

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
)

// Top-level keys of the tool's output that are not display categories.
const (
	KeySourceFile = "SourceFile"
	KeyExifTool   = "ExifTool"
)

// Labels of pairs the viewer treats specially.
const (
	LabelMIMEType    = "MIME Type"
	LabelGPSPosition = "GPS Position"
)

// Value is a metadata value exactly as the tool emitted it. Numbers stay
// json.Number so their textual form survives until display.
type Value struct {
	raw interface{}
}

func NewValue(raw interface{}) Value {
	return Value{raw: raw}
}

func (v Value) Raw() interface{} {
	return v.raw
}

// String renders the value for display.
func (v Value) String() string {
	switch val := v.raw.(type) {
	case nil:
		return ""
	case string:
		return val
	case json.Number:
		return val.String()
	case bool:
		if val {
			return "True"
		}
		return "False"
	case []interface{}:
		parts := make([]string, len(val))
		for i, item := range val {
			parts[i] = NewValue(item).String()
		}
		return strings.Join(parts, ", ")
	default:
		data, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprint(val)
		}
		return string(data)
	}
}

// Pair is one displayed entry of a category.
type Pair struct {
	Label string
	Value Value
}

type Category struct {
	Name  string
	Pairs []Pair
}

// Record holds the metadata of one input file. Category and pair order follow
// the order the tool enumerated its keys in.
type Record struct {
	SourceFile string
	Categories []Category
}

// Name is the base name of the file the record describes.
func (r Record) Name() string {
	if r.SourceFile == "" {
		return ""
	}
	return filepath.Base(r.SourceFile)
}

func (r Record) Category(name string) (Category, bool) {
	for _, c := range r.Categories {
		if c.Name == name {
			return c, true
		}
	}
	return Category{}, false
}

// Find returns the first pair with the given label, searching categories in order.
func (r Record) Find(label string) (Pair, bool) {
	for _, c := range r.Categories {
		for _, p := range c.Pairs {
			if p.Label == label {
				return p, true
			}
		}
	}
	return Pair{}, false
}

func (r Record) MIMEType() string {
	if p, ok := r.Find(LabelMIMEType); ok {
		return p.Value.String()
	}
	return ""
}
