package lang

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/html"
)

// The html grammar parses the single-file component envelope; script blocks
// are parsed again with the language named by their lang attribute.
func init() {
	Languages["vue"] = &Language{
		Name:       "vue",
		Extensions: []string{".vue"},
		lang:       html.GetLanguage(),
	}
}

// Attributes returns the attributes of an html start_tag node. Attributes
// without a value map to "".
func Attributes(startTag *sitter.Node, source []byte) map[string]string {
	attrs := make(map[string]string)
	for i := 0; i < int(startTag.NamedChildCount()); i++ {
		attr := startTag.NamedChild(i)
		if attr.Type() != "attribute" {
			continue
		}
		var name, value string
		for j := 0; j < int(attr.NamedChildCount()); j++ {
			child := attr.NamedChild(j)
			switch child.Type() {
			case "attribute_name":
				name = NodeText(child, source)
			case "attribute_value":
				value = NodeText(child, source)
			case "quoted_attribute_value":
				value = StringValue(child, source)
			}
		}
		if name != "" {
			attrs[name] = value
		}
	}
	return attrs
}
