package field

import (
	"errors"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phobologic/acfgen/internal/model"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		prop model.Prop
		want model.FieldType
	}{
		{"image prefix string", model.Prop{Name: "image", Type: model.String}, model.Image},
		{"image prefix number", model.Prop{Name: "imageHero", Type: model.Number}, model.Image},
		{"image prefix array", model.Prop{Name: "image1", Type: model.Array}, model.Image},
		{"images is image prefix", model.Prop{Name: "images", Type: model.Array}, model.Image},
		{"button", model.Prop{Name: "button", Type: model.String}, model.AdvancedLink},
		{"body", model.Prop{Name: "body", Type: model.String}, model.Wysiwyg},
		{"align overrides array", model.Prop{Name: "align", Type: model.Array}, model.ButtonGroup},
		{"halign", model.Prop{Name: "halign", Type: model.String}, model.ButtonGroup},
		{"valign", model.Prop{Name: "valign", Type: model.String}, model.ButtonGroup},
		{"text-align", model.Prop{Name: "text-align", Type: model.String}, model.ButtonGroup},
		{"buttons", model.Prop{Name: "buttons", Type: model.String}, model.Repeater},
		{"string", model.Prop{Name: "title", Type: model.String}, model.Text},
		{"boolean", model.Prop{Name: "flag", Type: model.Boolean}, model.TrueFalse},
		{"number", model.Prop{Name: "count", Type: model.Number}, model.NumberField},
		{"array", model.Prop{Name: "items", Type: model.Array}, model.Repeater},
		{"type case insensitive", model.Prop{Name: "title", Type: "String"}, model.Text},
		{"upper boolean", model.Prop{Name: "flag", Type: "BOOLEAN"}, model.TrueFalse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := Resolve(tt.prop)
			if !ok {
				t.Fatalf("Resolve(%+v) not resolved", tt.prop)
			}
			if got != tt.want {
				t.Errorf("Resolve(%+v) = %q, want %q", tt.prop, got, tt.want)
			}
		})
	}
}

func TestResolveUnmapped(t *testing.T) {
	t.Parallel()

	for _, typ := range []model.PrimitiveType{"object", "func", "", "unknown"} {
		if ft, ok := Resolve(model.Prop{Name: "thing", Type: typ}); ok {
			t.Errorf("Resolve(type %q) = %q, want unresolved", typ, ft)
		}
	}
}

func TestResolveNameRuleBeatsUnmappedType(t *testing.T) {
	t.Parallel()

	ft, ok := Resolve(model.Prop{Name: "imageMeta", Type: "object"})
	require.True(t, ok)
	assert.Equal(t, model.Image, ft)
}

func TestLabel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"halign", "Halign"},
		{"textAlign", "Text Align"},
		{"valign", "Valign"},
		{"image1", "Image1"},
		{"text-align", "Text-align"},
		{"backgroundImageUrl", "Background Image Url"},
		{"item2Count", "Item2 Count"},
		{"Title", "Title"},
		{"x", "X"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			if got := Label(tt.in); got != tt.want {
				t.Errorf("Label(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestBuildValign(t *testing.T) {
	t.Parallel()

	f, err := Build(model.Prop{Name: "valign", Type: model.String})
	require.NoError(t, err)

	assert.Equal(t, model.ButtonGroup, f.Type)
	assert.Equal(t, "Valign", f.Label)
	assert.Equal(t, "valign", f.Name)
	assert.Empty(t, f.Key)
	want := model.Settings{{Key: "choices", Value: model.Settings{
		{Key: "start", Value: "Top"},
		{Key: "center", Value: "Center"},
		{Key: "end", Value: "Bottom"},
	}}}
	assert.Equal(t, want, f.Settings, spew.Sdump(f))
}

func TestBuildAlignChoices(t *testing.T) {
	t.Parallel()

	want := model.Settings{{Key: "choices", Value: model.Settings{
		{Key: "left", Value: "Left"},
		{Key: "center", Value: "Center"},
		{Key: "right", Value: "Right"},
	}}}
	for _, name := range []string{"align", "halign", "text-align"} {
		f, err := Build(model.Prop{Name: name, Type: model.String})
		require.NoError(t, err, name)
		assert.Equal(t, model.ButtonGroup, f.Type, name)
		assert.Equal(t, want, f.Settings, name)
	}
}

func TestBuildTypeSettings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		prop     model.Prop
		wantType model.FieldType
		want     model.Settings
	}{
		{
			model.Prop{Name: "body", Type: model.String},
			model.Wysiwyg,
			model.Settings{
				{Key: "tabs", Value: "visual"},
				{Key: "toolbar", Value: "simple"},
				{Key: "media_upload", Value: 0},
				{Key: "delay", Value: 1},
			},
		},
		{
			model.Prop{Name: "isActive", Type: model.Boolean},
			model.TrueFalse,
			model.Settings{{Key: "ui", Value: 1}},
		},
		{
			model.Prop{Name: "imageHero", Type: model.String},
			model.Image,
			model.Settings{
				{Key: "return_format", Value: "array"},
				{Key: "preview_size", Value: "thumbnail"},
			},
		},
		{
			model.Prop{Name: "buttons", Type: model.Array},
			model.Repeater,
			model.Settings{{Key: "layout", Value: "row"}},
		},
		{
			model.Prop{Name: "slides", Type: model.Array},
			model.Repeater,
			model.Settings{{Key: "layout", Value: "row"}},
		},
		{
			model.Prop{Name: "button", Type: model.String},
			model.AdvancedLink,
			nil,
		},
		{
			model.Prop{Name: "title", Type: model.String},
			model.Text,
			nil,
		},
		{
			model.Prop{Name: "count", Type: model.Number},
			model.NumberField,
			nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.prop.Name, func(t *testing.T) {
			t.Parallel()
			f, err := Build(tt.prop)
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, f.Type)
			assert.Equal(t, tt.want, f.Settings)
		})
	}
}

func TestBuildGallerySettings(t *testing.T) {
	t.Parallel()

	// "images" is caught by the image prefix rule before the gallery rule.
	f, err := Build(model.Prop{Name: "images", Type: model.Array})
	require.NoError(t, err)
	assert.Equal(t, model.Image, f.Type)

	s := typeSettings(model.Gallery)
	assert.Equal(t, model.Settings{
		{Key: "return_format", Value: "array"},
		{Key: "preview_size", Value: "thumbnail"},
	}, s)
}

func TestBuildReturnsFreshSettings(t *testing.T) {
	t.Parallel()

	a, err := Build(model.Prop{Name: "body", Type: model.String})
	require.NoError(t, err)
	b, err := Build(model.Prop{Name: "body", Type: model.String})
	require.NoError(t, err)

	a.Settings[0].Value = "text"
	assert.Equal(t, "visual", b.Settings[0].Value)
}

func TestBuildUnmapped(t *testing.T) {
	t.Parallel()

	_, err := Build(model.Prop{Name: "meta", Type: "object"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnmappedType))

	var ue *UnmappedTypeError
	require.True(t, errors.As(err, &ue))
	assert.Equal(t, "meta", ue.Prop.Name)
	assert.Contains(t, err.Error(), `"object"`)
}

func TestBuildAllPreservesOrder(t *testing.T) {
	t.Parallel()

	props := []model.Prop{
		{Name: "title", Type: model.String},
		{Name: "body", Type: model.String},
		{Name: "isWide", Type: model.Boolean},
	}
	fields, err := BuildAll(props)
	require.NoError(t, err)
	require.Len(t, fields, 3)
	for i, p := range props {
		assert.Equal(t, p.Name, fields[i].Name)
	}
	assert.Equal(t, "Is Wide", fields[2].Label)
}

func TestBuildAllReportsEveryUnmapped(t *testing.T) {
	t.Parallel()

	props := []model.Prop{
		{Name: "title", Type: model.String},
		{Name: "meta", Type: "object"},
		{Name: "onClick", Type: "func"},
	}
	fields, err := BuildAll(props)
	require.Error(t, err)
	assert.Nil(t, fields)
	assert.True(t, errors.Is(err, ErrUnmappedType))
	assert.Contains(t, err.Error(), `"meta"`)
	assert.Contains(t, err.Error(), `"onClick"`)
}

func TestBuildAllEmpty(t *testing.T) {
	t.Parallel()

	fields, err := BuildAll(nil)
	require.NoError(t, err)
	assert.NotNil(t, fields)
	assert.Empty(t, fields)
}
