package parse

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/phobologic/acfgen/internal/lang"
	"github.com/phobologic/acfgen/internal/model"
)

// Props declarations in order of preference when a script has several.
const (
	fromTypeLiteral = iota
	fromRuntime
	fromOptions
	noDeclaration
)

// errSpreadProps is returned for props declarations built from a spread,
// whose members cannot be known without evaluating the script.
var errSpreadProps = errors.New("cannot resolve spread props")

type scriptInfo struct {
	name  string
	props []model.Prop
	found bool
}

// extractScript parses a script block and returns the component name and the
// props of the most specific declaration found.
func extractScript(ctx context.Context, s script) (scriptInfo, error) {
	l := lang.Languages[s.lang]
	q, err := l.GetQuery()
	if err != nil {
		return scriptInfo{}, err
	}

	tree, err := l.NewParser().ParseCtx(ctx, nil, s.source)
	if err != nil {
		return scriptInfo{}, fmt.Errorf("parsing script: %w", err)
	}
	defer tree.Close()
	root := tree.RootNode()

	qc := sitter.NewQueryCursor()
	defer qc.Close()
	qc.Exec(q, root)

	var (
		info    scriptInfo
		best    = noDeclaration
		declRef string
		decls   = make(map[string]*sitter.Node)
	)

	for {
		match, ok := qc.NextMatch()
		if !ok {
			break
		}
		match = qc.FilterPredicates(match, s.source)

		captures := make(map[string]*sitter.Node, len(match.Captures))
		for _, c := range match.Captures {
			captures[q.CaptureNameForId(c.Index)] = c.Node
		}
		text := func(name string) string {
			if n := captures[name]; n != nil {
				return lang.NodeText(n, s.source)
			}
			return ""
		}

		if node := captures["define.generic"]; node != nil && text("_fn") == "defineProps" {
			switch node.Type() {
			case "object_type", "type_identifier":
			default:
				return scriptInfo{}, fmt.Errorf("props type %s cannot be resolved", lang.CollapseWhitespace(lang.NodeText(node, s.source)))
			}
		}
		if node := captures["define.type"]; node != nil && text("_fn") == "defineProps" && best > fromTypeLiteral {
			best = fromTypeLiteral
			if info.props, err = typeLiteralProps(l, node, s.source); err != nil {
				return scriptInfo{}, err
			}
			declRef = ""
		}
		if node := captures["define.ref"]; node != nil && text("_fn") == "defineProps" && best > fromTypeLiteral {
			best = fromTypeLiteral
			declRef = lang.NodeText(node, s.source)
		}
		if node := captures["define.runtime"]; node != nil && text("_fn") == "defineProps" && best > fromRuntime {
			best = fromRuntime
			if info.props, err = runtimeProps(node, s.source); err != nil {
				return scriptInfo{}, err
			}
		}
		if node := captures["define.options"]; node != nil && text("_fn") == "defineOptions" && info.name == "" {
			info.name = stringPair(node, "name", s.source)
		}
		if node := captures["options.props"]; node != nil && text("_key") == "props" {
			// Only the props option of the component itself counts, not a
			// props key nested in data() or another object.
			if opts := node.Parent().Parent(); isOptionsObject(opts, s.source) {
				if best > fromOptions {
					best = fromOptions
					if info.props, err = runtimeProps(node, s.source); err != nil {
						return scriptInfo{}, err
					}
				}
				if info.name == "" {
					info.name = stringPair(opts, "name", s.source)
				}
			}
		}
		if node := captures["export.object"]; node != nil && info.name == "" {
			info.name = stringPair(node, "name", s.source)
		}
		if name, body := text("decl.name"), captures["decl.body"]; name != "" && body != nil {
			if _, seen := decls[name]; !seen {
				decls[name] = body
			}
		}
	}

	if declRef != "" {
		body, ok := decls[declRef]
		if !ok {
			return scriptInfo{}, fmt.Errorf("props type %s is not declared in the component", declRef)
		}
		if extendsOther(body.Parent()) {
			return scriptInfo{}, fmt.Errorf("props type %s extends other types", declRef)
		}
		if info.props, err = typeLiteralProps(l, body, s.source); err != nil {
			return scriptInfo{}, err
		}
	}

	info.found = best != noDeclaration
	if !info.found && root.HasError() {
		return scriptInfo{}, errors.New("script has syntax errors")
	}
	return info, nil
}

// typeLiteralProps reads the members of an object type or interface body.
// Method members become props of type function so the builder rejects them.
// Index, call and construct signatures name no prop and are an error.
func typeLiteralProps(l *lang.Language, body *sitter.Node, source []byte) ([]model.Prop, error) {
	props := []model.Prop{}
	for i := 0; i < int(body.NamedChildCount()); i++ {
		member := body.NamedChild(i)
		switch member.Type() {
		case "comment":
			continue
		case "property_signature", "method_signature":
		default:
			return nil, fmt.Errorf("cannot resolve props member %q", lang.CollapseWhitespace(lang.NodeText(member, source)))
		}

		nameNode := member.ChildByFieldName("name")
		if nameNode == nil {
			return nil, fmt.Errorf("props member %q has no name", lang.CollapseWhitespace(lang.NodeText(member, source)))
		}
		typ := model.PrimitiveType("function")
		if member.Type() == "property_signature" {
			typ = ""
			if ann := member.ChildByFieldName("type"); ann != nil && l.AnnotationType != nil {
				if t := typeOfAnnotation(ann); t != nil {
					typ = l.AnnotationType(t, source)
				}
			}
		}
		props = append(props, model.Prop{
			Name: keyName(nameNode, source),
			Type: typ,
		})
	}
	return props, nil
}

// extendsOther reports whether an interface declaration inherits members
// from other types.
func extendsOther(decl *sitter.Node) bool {
	if decl == nil {
		return false
	}
	for i := 0; i < int(decl.NamedChildCount()); i++ {
		if decl.NamedChild(i).Type() == "extends_type_clause" {
			return true
		}
	}
	return false
}

// isOptionsObject reports whether obj is a component options object: the
// object exported by default or the argument of defineComponent.
func isOptionsObject(obj *sitter.Node, source []byte) bool {
	if obj == nil || obj.Type() != "object" {
		return false
	}
	parent := obj.Parent()
	if parent == nil {
		return false
	}
	switch parent.Type() {
	case "export_statement":
		return true
	case "arguments":
		call := parent.Parent()
		if call == nil || call.Type() != "call_expression" {
			return false
		}
		fn := call.ChildByFieldName("function")
		return fn != nil && lang.NodeText(fn, source) == "defineComponent"
	}
	return false
}

// typeOfAnnotation unwraps a type_annotation node to the type it holds.
func typeOfAnnotation(ann *sitter.Node) *sitter.Node {
	if ann.Type() != "type_annotation" {
		return ann
	}
	if ann.NamedChildCount() == 0 {
		return nil
	}
	return ann.NamedChild(0)
}

// runtimeProps reads a runtime props declaration: an object of prop
// definitions or an array of prop names.
func runtimeProps(decl *sitter.Node, source []byte) ([]model.Prop, error) {
	props := []model.Prop{}
	for i := 0; i < int(decl.NamedChildCount()); i++ {
		child := decl.NamedChild(i)
		switch child.Type() {
		case "pair":
			key := child.ChildByFieldName("key")
			value := child.ChildByFieldName("value")
			if key == nil || value == nil {
				continue
			}
			props = append(props, model.Prop{
				Name: keyName(key, source),
				Type: runtimeType(value, source),
			})
		case "shorthand_property_identifier":
			props = append(props, model.Prop{Name: lang.NodeText(child, source)})
		case "string":
			props = append(props, model.Prop{Name: lang.StringValue(child, source)})
		case "spread_element":
			return nil, fmt.Errorf("%w %q", errSpreadProps, lang.NodeText(child, source))
		}
	}
	return props, nil
}

// runtimeType maps a runtime prop definition (a constructor, an array of
// constructors or an object with a type key) to a primitive type.
func runtimeType(value *sitter.Node, source []byte) model.PrimitiveType {
	switch value.Type() {
	case "identifier":
		return model.PrimitiveType(strings.ToLower(lang.NodeText(value, source)))
	case "array":
		if value.NamedChildCount() > 0 {
			return runtimeType(value.NamedChild(0), source)
		}
	case "object":
		for i := 0; i < int(value.NamedChildCount()); i++ {
			pair := value.NamedChild(i)
			if pair.Type() != "pair" {
				continue
			}
			key := pair.ChildByFieldName("key")
			if key != nil && keyName(key, source) == "type" {
				if v := pair.ChildByFieldName("value"); v != nil {
					return runtimeType(v, source)
				}
			}
		}
	case "as_expression", "satisfies_expression", "parenthesized_expression":
		if value.NamedChildCount() > 0 {
			return runtimeType(value.NamedChild(0), source)
		}
	case "null":
		return "null"
	}
	return ""
}

// stringPair returns the string value stored under key in an object node.
func stringPair(obj *sitter.Node, key string, source []byte) string {
	if obj.Type() != "object" {
		return ""
	}
	for i := 0; i < int(obj.NamedChildCount()); i++ {
		pair := obj.NamedChild(i)
		if pair.Type() != "pair" {
			continue
		}
		k := pair.ChildByFieldName("key")
		v := pair.ChildByFieldName("value")
		if k == nil || v == nil || keyName(k, source) != key {
			continue
		}
		if v.Type() == "string" {
			return lang.StringValue(v, source)
		}
	}
	return ""
}

// keyName returns an object or type member name, unquoting string keys.
func keyName(node *sitter.Node, source []byte) string {
	if node.Type() == "string" {
		return lang.StringValue(node, source)
	}
	return lang.NodeText(node, source)
}
