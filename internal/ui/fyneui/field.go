package fyneui

import (
	"fmt"
	"reflect"
)

// setField assigns an exported struct field of target by name and refreshes
// target when it can. Numbers convert between numeric kinds so values
// decoded from YAML fit fields such as float32 or fyne.TextAlign.
func setField(target interface{}, name string, value interface{}) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("field %q: target %T is not a struct pointer", name, target)
	}

	field := rv.Elem().FieldByName(name)
	if !field.IsValid() || !field.CanSet() {
		return fmt.Errorf("%T has no settable field %q", target, name)
	}

	if value == nil {
		field.Set(reflect.Zero(field.Type()))
	} else {
		v := reflect.ValueOf(value)
		switch {
		case v.Type().AssignableTo(field.Type()):
			field.Set(v)
		case isNumeric(v.Kind()) && isNumeric(field.Kind()):
			field.Set(v.Convert(field.Type()))
		case v.Kind() == field.Kind() && v.Type().ConvertibleTo(field.Type()):
			field.Set(v.Convert(field.Type()))
		default:
			return fmt.Errorf("%T.%s: cannot assign %T to %s", target, name, value, field.Type())
		}
	}

	if r, ok := target.(interface{ Refresh() }); ok {
		r.Refresh()
	}
	return nil
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
