package field

import (
	"errors"
	"fmt"

	"github.com/phobologic/acfgen/internal/model"
)

// ErrUnmappedType is returned when no rule resolves a prop to a field type.
var ErrUnmappedType = errors.New("unmapped field type")

// UnmappedTypeError reports the prop that could not be resolved.
type UnmappedTypeError struct {
	Prop model.Prop
}

func (e *UnmappedTypeError) Error() string {
	return fmt.Sprintf("prop %q: type %q has no field mapping", e.Prop.Name, e.Prop.Type)
}

func (e *UnmappedTypeError) Unwrap() error { return ErrUnmappedType }

// Build converts a single prop into a field config. The returned config has no
// Key; keys are assigned when the group is assembled.
func Build(p model.Prop) (model.FieldConfig, error) {
	ft, ok := Resolve(p)
	if !ok {
		return model.FieldConfig{}, &UnmappedTypeError{Prop: p}
	}
	return model.FieldConfig{
		Label:    Label(p.Name),
		Name:     p.Name,
		Type:     ft,
		Settings: settingsFor(ft, p.Name),
	}, nil
}

// BuildAll builds fields in declaration order. Every unmapped prop is
// reported, not only the first.
func BuildAll(props []model.Prop) ([]model.FieldConfig, error) {
	fields := make([]model.FieldConfig, 0, len(props))
	var errs []error
	for _, p := range props {
		f, err := Build(p)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		fields = append(fields, f)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return fields, nil
}

// settingsFor returns the type defaults for ft unless a name override
// applies, in which case the override replaces them entirely.
func settingsFor(ft model.FieldType, name string) model.Settings {
	if s, ok := nameSettings(name); ok {
		return s
	}
	return typeSettings(ft)
}

func typeSettings(ft model.FieldType) model.Settings {
	switch ft {
	case model.Wysiwyg:
		return model.Settings{
			{Key: "tabs", Value: "visual"},
			{Key: "toolbar", Value: "simple"},
			{Key: "media_upload", Value: 0},
			{Key: "delay", Value: 1},
		}
	case model.TrueFalse:
		return model.Settings{{Key: "ui", Value: 1}}
	case model.Image, model.Gallery:
		return model.Settings{
			{Key: "return_format", Value: "array"},
			{Key: "preview_size", Value: "thumbnail"},
		}
	case model.Repeater:
		return model.Settings{{Key: "layout", Value: "row"}}
	}
	return nil
}

func nameSettings(name string) (model.Settings, bool) {
	switch name {
	case "valign":
		return choices(
			model.Setting{Key: "start", Value: "Top"},
			model.Setting{Key: "center", Value: "Center"},
			model.Setting{Key: "end", Value: "Bottom"},
		), true
	case "text-align", "halign", "align":
		return choices(
			model.Setting{Key: "left", Value: "Left"},
			model.Setting{Key: "center", Value: "Center"},
			model.Setting{Key: "right", Value: "Right"},
		), true
	}
	return nil, false
}

func choices(opts ...model.Setting) model.Settings {
	return model.Settings{{Key: "choices", Value: model.Settings(opts)}}
}
