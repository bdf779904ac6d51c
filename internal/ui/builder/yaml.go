package builder

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// LoadSpec decodes and validates a YAML spec tree:
//
//	kind: vbox
//	name: main
//	props:
//	  - pack-start: {kind: label, props: [{Text: hello}]}
//	events:
//	  clicked: next-file
//	visible: true
//
// Props is a sequence so that order is kept and actions may repeat. Keys that
// are not catalogue actions become Field assignments.
func LoadSpec(data []byte) (Spec, error) {
	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return Spec{}, fmt.Errorf("%w: %v", ErrConstruction, err)
	}
	if err := spec.Validate(); err != nil {
		return Spec{}, err
	}
	return spec, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *Spec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return nodeError(node, "widget spec must be a mapping")
	}

	*s = Spec{}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		switch key.Value {
		case "kind":
			s.Kind = Kind(value.Value)
		case "name":
			s.Name = value.Value
		case "visible":
			var visible bool
			if err := value.Decode(&visible); err != nil {
				return err
			}
			s.Hidden = !visible
		case "props":
			props, err := decodeProps(value)
			if err != nil {
				return err
			}
			s.Props = props
		case "events":
			events, err := decodeEvents(value)
			if err != nil {
				return err
			}
			s.Events = events
		default:
			return nodeError(key, fmt.Sprintf("unknown spec key %q", key.Value))
		}
	}
	return nil
}

func decodeEvents(node *yaml.Node) ([]Binding, error) {
	if node.Kind != yaml.MappingNode {
		return nil, nodeError(node, "events must be a mapping of event to handler")
	}
	events := make([]Binding, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		events = append(events, Binding{Event: node.Content[i].Value, Handler: node.Content[i+1].Value})
	}
	return events, nil
}

func decodeProps(node *yaml.Node) ([]Action, error) {
	if node.Kind != yaml.SequenceNode {
		return nil, nodeError(node, "props must be a sequence")
	}

	props := make([]Action, 0, len(node.Content))
	for _, item := range node.Content {
		if item.Kind != yaml.MappingNode || len(item.Content) != 2 {
			return nil, nodeError(item, "each prop must be a single-key mapping")
		}
		action, err := decodeAction(item.Content[0].Value, item.Content[1])
		if err != nil {
			return nil, err
		}
		props = append(props, action)
	}
	return props, nil
}

func decodeAction(name string, value *yaml.Node) (Action, error) {
	switch name {
	case "attach":
		var a struct {
			Col    int  `yaml:"col"`
			Row    int  `yaml:"row"`
			Width  int  `yaml:"width"`
			Height int  `yaml:"height"`
			Child  Spec `yaml:"child"`
		}
		if err := value.Decode(&a); err != nil {
			return nil, err
		}
		return Attach{Child: a.Child, Cell: Cell{Col: a.Col, Row: a.Row, Width: a.Width, Height: a.Height}}, nil

	case "pack-start", "pack-end", "child":
		var child Spec
		if err := value.Decode(&child); err != nil {
			return nil, err
		}
		switch name {
		case "pack-start":
			return PackStart{Child: child}, nil
		case "pack-end":
			return PackEnd{Child: child}, nil
		}
		return SetChild{Child: child}, nil

	case "page":
		var a struct {
			Name  string `yaml:"name"`
			Title string `yaml:"title"`
			Child Spec   `yaml:"child"`
		}
		if err := value.Decode(&a); err != nil {
			return nil, err
		}
		return AddPage{Name: a.Name, Title: a.Title, Child: a.Child}, nil

	case "uri":
		return LoadURI{URI: value.Value}, nil

	case "script":
		return RunScript{Source: value.Value}, nil

	case "style":
		return SetStyle{Text: value.Value}, nil

	case "icon":
		if value.Kind == yaml.ScalarNode {
			return SetIcon{Icon: IconDescriptor{Name: value.Value}}, nil
		}
		var icon struct {
			Name string  `yaml:"name"`
			Size float32 `yaml:"size"`
		}
		if err := value.Decode(&icon); err != nil {
			return nil, err
		}
		return SetIcon{Icon: IconDescriptor{Name: icon.Name, Size: icon.Size}}, nil

	case "size":
		var size struct {
			Width  float32 `yaml:"width"`
			Height float32 `yaml:"height"`
		}
		if err := value.Decode(&size); err != nil {
			return nil, err
		}
		return SizeHint{Width: size.Width, Height: size.Height}, nil

	default:
		var v interface{}
		if err := value.Decode(&v); err != nil {
			return nil, err
		}
		return Field{Name: name, Value: v}, nil
	}
}

func nodeError(node *yaml.Node, msg string) error {
	return fmt.Errorf("line %d: %s", node.Line, msg)
}
