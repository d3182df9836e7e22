// Package group assembles field configs into an ACF field group.
package group

import (
	"strings"

	"github.com/phobologic/acfgen/internal/model"
)

const (
	labelPlacement = "left"
	titlePrefix    = "Component: "
)

// Key returns the field group key for a component name. Names that differ
// only in case share a key.
func Key(componentName string) string {
	return "group_" + strings.ToLower(componentName) + "_component"
}

// Assemble builds the field group for a component. Field keys are assigned
// here as <groupKey>_<field name>; fields keeps its order and is not modified.
func Assemble(componentName string, fields []model.FieldConfig) model.FieldGroup {
	key := Key(componentName)

	out := make([]model.FieldConfig, len(fields))
	for i, f := range fields {
		f.Key = key + "_" + f.Name
		out[i] = f
	}

	return model.FieldGroup{
		Key:            key,
		Title:          titlePrefix + componentName,
		Fields:         out,
		LabelPlacement: labelPlacement,
		Active:         false,
		Categories:     map[string]string{"component": "component"},
	}
}
