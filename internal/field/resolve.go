// Package field maps component props to ACF field definitions.
package field

import (
	"strings"

	"github.com/phobologic/acfgen/internal/model"
)

// rule maps props matching a predicate to a field type.
type rule struct {
	match  func(p model.Prop) bool
	result model.FieldType
}

var alignNames = map[string]struct{}{
	"align":      {},
	"halign":     {},
	"valign":     {},
	"text-align": {},
}

// nameRules are evaluated in order; the first match wins.
var nameRules = []rule{
	{func(p model.Prop) bool { return strings.HasPrefix(p.Name, "image") }, model.Image},
	{nameIs("button"), model.AdvancedLink},
	{nameIs("body"), model.Wysiwyg},
	{nameIn(alignNames), model.ButtonGroup},
	{nameIs("buttons"), model.Repeater},
	{nameIs("images"), model.Gallery},
}

var typeTable = map[model.PrimitiveType]model.FieldType{
	model.String:  model.Text,
	model.Boolean: model.TrueFalse,
	model.Number:  model.NumberField,
	model.Array:   model.Repeater,
}

func nameIs(name string) func(model.Prop) bool {
	return func(p model.Prop) bool { return p.Name == name }
}

func nameIn(names map[string]struct{}) func(model.Prop) bool {
	return func(p model.Prop) bool {
		_, ok := names[p.Name]
		return ok
	}
}

// Resolve returns the field type for p. Name rules take priority over the
// primitive type table. ok is false when neither applies.
func Resolve(p model.Prop) (ft model.FieldType, ok bool) {
	for _, r := range nameRules {
		if r.match(p) {
			return r.result, true
		}
	}
	ft, ok = typeTable[model.PrimitiveType(strings.ToLower(string(p.Type)))]
	return ft, ok
}
