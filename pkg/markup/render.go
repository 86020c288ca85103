package markup

import (
	"io"
	"strings"
)

// DefaultIndent is the indentation unit repeated once per level of depth.
const DefaultIndent = "   "

// Role identifies the fragment handed to a Decorator.
type Role uint8

const (
	// RoleTagName is an element name, in opening and closing tags.
	RoleTagName Role = iota + 1
	// RoleAttrKey is an attribute key.
	RoleAttrKey
	// RoleAttrValue is an attribute value, including its surrounding quotes.
	RoleAttrValue
)

func (r Role) String() string {
	switch r {
	case RoleTagName:
		return "tag"
	case RoleAttrKey:
		return "key"
	case RoleAttrValue:
		return "value"
	default:
		return "unknown"
	}
}

// Decorator wraps rendered fragments in presentation markers, such as terminal colors.
// Implementations must return fragment unchanged apart from the added markers.
type Decorator interface {
	Decorate(role Role, fragment string) string
}

// DecoratorFunc adapts a function to the Decorator interface.
type DecoratorFunc func(role Role, fragment string) string

// Decorate calls f(role, fragment).
func (f DecoratorFunc) Decorate(role Role, fragment string) string {
	return f(role, fragment)
}

// Plain is the Decorator that adds nothing.
var Plain Decorator = DecoratorFunc(func(_ Role, fragment string) string { return fragment })

// Renderer turns a tree into indented markup. The zero value indents with DefaultIndent and
// does not decorate.
type Renderer struct {
	// Indent is repeated once per level of depth. Empty means DefaultIndent.
	Indent string
	// Decorator wraps tag names and attributes. Nil means Plain.
	Decorator Decorator
}

// Render returns the markup for n and its renderable descendants, without a trailing newline.
// A nil node renders as the empty string.
//
// Indentation is taken from each node's depth in its whole tree, so rendering a subtree
// keeps the indentation it has inside its tree.
func (r Renderer) Render(n *Node) string {
	if n == nil {
		return ""
	}
	var sb strings.Builder
	r.write(&sb, n)
	return sb.String()
}

// Write renders n to w and returns the number of bytes written.
func (r Renderer) Write(w io.Writer, n *Node) (int, error) {
	return io.WriteString(w, r.Render(n))
}

func (r Renderer) write(sb *strings.Builder, n *Node) {
	indent := strings.Repeat(r.indent(), n.Depth())

	switch n.kind {
	case KindText:
		sb.WriteString(indent)
		sb.WriteString(n.value)

	case KindTag:
		name := r.decorate(RoleTagName, n.name)

		sb.WriteString(indent)
		sb.WriteByte('<')
		sb.WriteString(name)
		r.writeAttributes(sb, n)

		// Children of a void element are kept in the tree but never rendered.
		if n.selfClosing {
			sb.WriteString("/>")
			return
		}
		sb.WriteByte('>')

		if len(n.children) > 0 {
			for _, child := range n.children {
				sb.WriteByte('\n')
				r.write(sb, child)
			}
			sb.WriteByte('\n')
			sb.WriteString(indent)
		}

		sb.WriteString("</")
		sb.WriteString(name)
		sb.WriteByte('>')
	}
}

func (r Renderer) writeAttributes(sb *strings.Builder, n *Node) {
	if n.attrs == nil {
		return
	}
	for pair := n.attrs.Oldest(); pair != nil; pair = pair.Next() {
		sb.WriteByte(' ')
		sb.WriteString(r.decorate(RoleAttrKey, pair.Key))
		sb.WriteByte('=')
		sb.WriteString(r.decorate(RoleAttrValue, `"`+pair.Value+`"`))
	}
}

func (r Renderer) indent() string {
	if r.Indent == "" {
		return DefaultIndent
	}
	return r.Indent
}

func (r Renderer) decorate(role Role, fragment string) string {
	if r.Decorator == nil {
		return fragment
	}
	return r.Decorator.Decorate(role, fragment)
}

// String renders the tree rooted at n without decoration.
func (n *Node) String() string {
	return Renderer{}.Render(n)
}
