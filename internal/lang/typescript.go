package lang

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/typescript/typescript"

	"github.com/phobologic/acfgen/internal/model"
)

func init() {
	Languages["typescript"] = &Language{
		Name:           "typescript",
		Extensions:     []string{".ts", ".mts"},
		lang:           typescript.GetLanguage(),
		AnnotationType: tsAnnotationType,
	}
}

// tsAnnotationType maps a TypeScript type node to a primitive type. Types
// outside the primitive set are returned as their collapsed source text so
// callers can report them.
func tsAnnotationType(node *sitter.Node, source []byte) model.PrimitiveType {
	switch node.Type() {
	case "predefined_type":
		return model.PrimitiveType(NodeText(node, source))
	case "array_type", "tuple_type":
		return model.Array
	case "readonly_type", "parenthesized_type":
		if inner := lastNamedChild(node); inner != nil {
			return tsAnnotationType(inner, source)
		}
	case "generic_type":
		if name := node.ChildByFieldName("name"); name != nil {
			switch NodeText(name, source) {
			case "Array", "ReadonlyArray":
				return model.Array
			}
		}
	case "literal_type":
		return tsLiteralType(node, source)
	case "union_type":
		return tsUnionType(node, source)
	case "object_type":
		return "object"
	case "function_type":
		return "function"
	}
	return model.PrimitiveType(CollapseWhitespace(NodeText(node, source)))
}

func tsLiteralType(node *sitter.Node, source []byte) model.PrimitiveType {
	if node.NamedChildCount() == 0 {
		return model.PrimitiveType(NodeText(node, source))
	}
	switch lit := node.NamedChild(0); lit.Type() {
	case "string", "template_string":
		return model.String
	case "number", "unary_expression":
		return model.Number
	case "true", "false":
		return model.Boolean
	default:
		return model.PrimitiveType(NodeText(lit, source))
	}
}

// tsUnionType resolves a union whose members, ignoring null and undefined,
// all map to the same primitive type.
func tsUnionType(node *sitter.Node, source []byte) model.PrimitiveType {
	var result model.PrimitiveType
	for _, member := range unionMembers(node) {
		if isNullish(member, source) {
			continue
		}
		t := tsAnnotationType(member, source)
		if result == "" {
			result = t
			continue
		}
		if t != result {
			return model.PrimitiveType(CollapseWhitespace(NodeText(node, source)))
		}
	}
	if result == "" {
		return model.PrimitiveType(CollapseWhitespace(NodeText(node, source)))
	}
	return result
}

func unionMembers(node *sitter.Node) []*sitter.Node {
	var members []*sitter.Node
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		if child.Type() == "union_type" {
			members = append(members, unionMembers(child)...)
			continue
		}
		members = append(members, child)
	}
	return members
}

func isNullish(node *sitter.Node, source []byte) bool {
	switch strings.TrimSpace(NodeText(node, source)) {
	case "null", "undefined":
		return true
	}
	return false
}

func lastNamedChild(node *sitter.Node) *sitter.Node {
	n := int(node.NamedChildCount())
	if n == 0 {
		return nil
	}
	return node.NamedChild(n - 1)
}
