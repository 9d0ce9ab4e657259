package xconfig

import (
	"fmt"
	"reflect"
)

// defaulter is implemented by config sections that set their own defaults.
type defaulter interface {
	Default()
}

// applyDefaults calls Default() on v and every nested struct, then fills
// zero fields from `default` tags.
func applyDefaults(v reflect.Value) error {
	if v.CanAddr() {
		if d, ok := v.Addr().Interface().(defaulter); ok {
			d.Default()
		}
	}

	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		fieldType := t.Field(i)

		if !field.CanSet() {
			continue
		}

		if field.Kind() == reflect.Struct {
			if err := applyDefaults(field); err != nil {
				return err
			}
			continue
		}

		tag, ok := fieldType.Tag.Lookup("default")
		if !ok || !field.IsZero() {
			continue
		}

		if err := setValue(field, tag); err != nil {
			return fmt.Errorf("field %s: %w", fieldType.Name, err)
		}
	}

	return nil
}
