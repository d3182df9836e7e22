// Package toon implements TOON (Token-Oriented Object Notation) encoding of
// component listings.
package toon

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/phobologic/acfgen/internal/field"
	"github.com/phobologic/acfgen/internal/group"
	"github.com/phobologic/acfgen/internal/model"
)

var (
	needsQuoting = regexp.MustCompile(`[,:"\\{}\[\]]`)
	looksNumeric = regexp.MustCompile(`^-?(?:0|[1-9]\d*)(?:\.\d+)?$`)
	keywords     = map[string]struct{}{
		"true":  {},
		"false": {},
		"null":  {},
	}
)

// Encode converts a component listing into TOON. Components are emitted in
// the given order. Props whose type has no field mapping get an empty field
// column.
func Encode(root string, comps []model.Component) string {
	var parts []string

	parts = append(parts, fmt.Sprintf("root: %s", encodeValue(root)))

	compRows := make([][]string, 0, len(comps))
	for i := range comps {
		c := &comps[i]
		compRows = append(compRows, []string{
			c.Path,
			c.Name,
			fmt.Sprintf("%d", len(c.Props)),
			group.Key(c.Name),
		})
	}
	parts = append(parts, formatTabular("components", []string{"path", "name", "props", "group"}, compRows))

	var propRows [][]string
	for i := range comps {
		c := &comps[i]
		for _, p := range c.Props {
			ft, _ := field.Resolve(p)
			propRows = append(propRows, []string{
				c.Name,
				p.Name,
				string(p.Type),
				string(ft),
			})
		}
	}
	parts = append(parts, formatTabular("props", []string{"component", "prop", "type", "field"}, propRows))

	return strings.Join(parts, "\n")
}

func formatTabular(name string, columns []string, rows [][]string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s[%d]{%s}:", name, len(rows), strings.Join(columns, ","))
	for _, row := range rows {
		encoded := make([]string, len(row))
		for i, cell := range row {
			encoded[i] = encodeValue(cell)
		}
		fmt.Fprintf(&b, "\n  %s", strings.Join(encoded, ","))
	}
	return b.String()
}

func encodeValue(value string) string {
	switch {
	case value == "":
		return `""`
	case value != strings.TrimSpace(value), strings.ContainsAny(value, "\n\r\t"):
		return quote(value)
	}
	if _, ok := keywords[strings.ToLower(value)]; ok {
		return quote(value)
	}
	if looksNumeric.MatchString(value) {
		return value
	}
	if needsQuoting.MatchString(value) || strings.HasPrefix(value, "-") {
		return quote(value)
	}
	return value
}

func quote(value string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`, "\r", `\r`, "\t", `\t`)
	return `"` + r.Replace(value) + `"`
}
