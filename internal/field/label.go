package field

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var wordBoundary = regexp.MustCompile(`([a-z0-9])([A-Z])`)

// Label turns a prop name into a human readable label: the first character is
// upper-cased and camelCase words are split with a space. Hyphens are kept.
func Label(name string) string {
	if name == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(name)
	var b strings.Builder
	b.WriteRune(unicode.ToUpper(r))
	b.WriteString(name[size:])
	return wordBoundary.ReplaceAllString(b.String(), "$1 $2")
}
