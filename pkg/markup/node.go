package markup

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Kind distinguishes the two node variants.
type Kind uint8

const (
	// KindTag is a markup element with a name, attributes and children.
	KindTag Kind = iota + 1
	// KindText is a leaf holding literal text.
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindTag:
		return "tag"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// Attribute is a single key/value pair of a tag.
type Attribute struct {
	Key   string
	Value string
}

// Node is a handle to a tag or text node. Handles are shared: a *Node returned by a builder
// call is the same node the call was made on, and mutations through any handle are visible
// through all of them.
//
// A node is owned by the tag holding it in its children. The parent link is navigational
// only; once the root handle is dropped the whole tree is collected.
type Node struct {
	kind Kind

	// Tag fields. Name and classification never change after Tag returns.
	name        string
	inline      bool
	selfClosing bool
	attrs       *orderedmap.OrderedMap[string, string]
	children    []*Node

	// Text fields.
	value string

	parent *Node
}

// Kind returns the node variant, or 0 for a nil node.
func (n *Node) Kind() Kind {
	if n == nil {
		return 0
	}
	return n.kind
}

// Name returns the tag name. It is empty for text nodes.
func (n *Node) Name() string {
	if n == nil {
		return ""
	}
	return n.name
}

// Value returns the text of a text node. It is empty for tags.
func (n *Node) Value() string {
	if n == nil {
		return ""
	}
	return n.value
}

// IsInline reports whether the tag was classified as an inline element when it was created.
func (n *Node) IsInline() bool {
	return n != nil && n.inline
}

// IsSelfClosing reports whether the tag was classified as a void element when it was created.
func (n *Node) IsSelfClosing() bool {
	return n != nil && n.selfClosing
}

// Parent returns the tag holding n, or nil for a detached node or a root.
func (n *Node) Parent() *Node {
	if n == nil {
		return nil
	}
	return n.parent
}

// Children returns the attached children in order. The slice is a copy; the nodes are not.
func (n *Node) Children() []*Node {
	if n == nil || len(n.children) == 0 {
		return nil
	}
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// Attribute returns the value stored for key.
func (n *Node) Attribute(key string) (string, bool) {
	if n == nil || n.attrs == nil {
		return "", false
	}
	return n.attrs.Get(key)
}

// Attributes returns the attributes in insertion order.
func (n *Node) Attributes() []Attribute {
	if n == nil || n.attrs == nil || n.attrs.Len() == 0 {
		return nil
	}
	out := make([]Attribute, 0, n.attrs.Len())
	for pair := n.attrs.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, Attribute{Key: pair.Key, Value: pair.Value})
	}
	return out
}

// Depth is the number of parent links between n and the root of its tree.
// It is computed on every call by walking the parent links.
func (n *Node) Depth() int {
	depth := 0
	for p := n.Parent(); p != nil; p = p.parent {
		depth++
	}
	return depth
}

// Root returns the topmost ancestor of n, or n itself when it has no parent.
func (n *Node) Root() *Node {
	root := n
	for p := n.Parent(); p != nil; p = p.parent {
		root = p
	}
	return root
}

// Walk visits n and its descendants depth-first, in child order, passing each node's depth
// relative to n. Returning false from fn skips the children of that node.
// Children of self-closing tags are visited too, although they are never rendered.
func Walk(n *Node, fn func(node *Node, depth int) bool) {
	walk(n, 0, fn)
}

func walk(n *Node, depth int, fn func(*Node, int) bool) {
	if n == nil || !fn(n, depth) {
		return
	}
	for _, child := range n.children {
		walk(child, depth+1, fn)
	}
}
