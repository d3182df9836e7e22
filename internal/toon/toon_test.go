package toon

import (
	"strings"
	"testing"

	"github.com/phobologic/acfgen/internal/model"
)

func TestEncodeValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", `""`},
		{"simple", "hello", "hello"},
		{"leading space", " hello", `" hello"`},
		{"trailing space", "hello ", `"hello "`},
		{"newline", "a\nb", `"a\nb"`},
		{"tab", "a\tb", `"a\tb"`},
		{"true keyword", "true", `"true"`},
		{"False keyword", "False", `"False"`},
		{"null keyword", "null", `"null"`},
		{"integer", "42", "42"},
		{"negative integer", "-1", "-1"},
		{"comma", "a,b", `"a,b"`},
		{"colon", "a:b", `"a:b"`},
		{"quote", `a"b`, `"a\"b"`},
		{"backslash", `a\b`, `"a\\b"`},
		{"generic type", "Record<string, number>", `"Record<string, number>"`},
		{"object literal type", "{ id: number }", `"{ id: number }"`},
		{"dash prefix", "-foo", `"-foo"`},
		{"path", "components/HeroBanner.vue", "components/HeroBanner.vue"},
		{"kebab name", "text-align", "text-align"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := encodeValue(tt.in)
			if got != tt.want {
				t.Errorf("encodeValue(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestEncode(t *testing.T) {
	t.Parallel()

	comps := []model.Component{
		{
			Name: "Card",
			Path: "components/Card.vue",
			Props: []model.Prop{
				{Name: "title", Type: model.String},
				{Name: "buttons", Type: model.Array},
			},
		},
		{
			Name: "HeroBanner",
			Path: "components/HeroBanner.vue",
			Props: []model.Prop{
				{Name: "valign", Type: model.String},
				{Name: "meta", Type: "Record<string, string>"},
			},
		},
	}

	got := Encode("site", comps)
	want := []string{
		"root: site",
		"components[2]{path,name,props,group}:",
		"  components/Card.vue,Card,2,group_card_component",
		"  components/HeroBanner.vue,HeroBanner,2,group_herobanner_component",
		"props[4]{component,prop,type,field}:",
		"  Card,title,string,text",
		"  Card,buttons,array,repeater",
		"  HeroBanner,valign,string,button_group",
		`  HeroBanner,meta,"Record<string, string>",""`,
	}

	lines := strings.Split(got, "\n")
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d:\n%s", len(want), len(lines), got)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d: got %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestEncodeEmpty(t *testing.T) {
	t.Parallel()

	got := Encode(".", nil)
	if !strings.Contains(got, "components[0]{path,name,props,group}:") {
		t.Errorf("expected empty components section, got:\n%s", got)
	}
	if !strings.Contains(got, "props[0]{component,prop,type,field}:") {
		t.Errorf("expected empty props section, got:\n%s", got)
	}
}
