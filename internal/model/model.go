// Package model defines core data structures for acfgen.
package model

import (
	"bytes"
	"encoding/json"
)

// PrimitiveType is the declared type of a component prop.
type PrimitiveType string

const (
	String  PrimitiveType = "string"
	Boolean PrimitiveType = "boolean"
	Number  PrimitiveType = "number"
	Array   PrimitiveType = "array"
)

// Prop is a single declared property of a component.
type Prop struct {
	Name string
	Type PrimitiveType
}

// Component is the metadata extracted from one component source file.
type Component struct {
	Name  string
	Path  string
	Props []Prop
}

// FieldType is the ACF widget a field renders as.
type FieldType string

const (
	Image        FieldType = "image"
	AdvancedLink FieldType = "acfe_advanced_link"
	Wysiwyg      FieldType = "wysiwyg"
	ButtonGroup  FieldType = "button_group"
	Repeater     FieldType = "repeater"
	Gallery      FieldType = "gallery"
	Text         FieldType = "text"
	TrueFalse    FieldType = "true_false"
	NumberField  FieldType = "number"
)

// Setting is one key of an ordered settings object.
type Setting struct {
	Key   string
	Value any
}

// Settings is an ordered JSON object. Keys encode in slice order.
type Settings []Setting

// MarshalJSON encodes s as an object, preserving key order.
func (s Settings) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	if err := s.writeMembers(&buf, false); err != nil {
		return nil, err
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (s Settings) writeMembers(buf *bytes.Buffer, leadingComma bool) error {
	for i, kv := range s {
		if i > 0 || leadingComma {
			buf.WriteByte(',')
		}
		if err := writeMember(buf, kv.Key, kv.Value); err != nil {
			return err
		}
	}
	return nil
}

func writeMember(buf *bytes.Buffer, key string, value any) error {
	k, err := json.Marshal(key)
	if err != nil {
		return err
	}
	v, err := json.Marshal(value)
	if err != nil {
		return err
	}
	buf.Write(k)
	buf.WriteByte(':')
	buf.Write(v)
	return nil
}

// FieldConfig is a single ACF field definition.
type FieldConfig struct {
	Key      string
	Label    string
	Name     string
	Type     FieldType
	Settings Settings
}

// MarshalJSON encodes the fixed keys followed by the settings, flattened.
func (f FieldConfig) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	fixed := Settings{
		{Key: "key", Value: f.Key},
		{Key: "label", Value: f.Label},
		{Key: "name", Value: f.Name},
		{Key: "type", Value: f.Type},
	}
	if err := fixed.writeMembers(&buf, false); err != nil {
		return nil, err
	}
	if err := f.Settings.writeMembers(&buf, true); err != nil {
		return nil, err
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// FieldGroup is the complete ACF field group document.
type FieldGroup struct {
	Key            string            `json:"key"`
	Title          string            `json:"title"`
	Fields         []FieldConfig     `json:"fields"`
	LabelPlacement string            `json:"label_placement"`
	Active         bool              `json:"active"`
	Categories     map[string]string `json:"acfe_categories"`
}
