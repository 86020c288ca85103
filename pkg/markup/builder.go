package markup

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Tag creates a detached element. Its inline and self-closing flags are fixed here from
// name and never recomputed.
func Tag(name string) *Node {
	return &Node{
		kind:        KindTag,
		name:        name,
		inline:      IsInline(name),
		selfClosing: IsSelfClosing(name),
	}
}

// Text creates a detached text leaf, to be attached with Child.
func Text(value string) *Node {
	return &Node{
		kind:  KindText,
		value: value,
	}
}

// Text appends a new text leaf to the tag and returns the tag, not the leaf.
// On a text node it does nothing.
func (n *Node) Text(value string) *Node {
	if n.Kind() != KindTag {
		return n
	}
	leaf := Text(value)
	leaf.parent = n
	n.children = append(n.children, leaf)
	return n
}

// Child attaches child as the last child of the tag and returns the tag.
//
// Attaching the same node to the same tag again appends it again. Child does nothing when
// the receiver is not a tag, when child is nil, when child already belongs to another tag,
// or when child is the receiver or one of its ancestors.
func (n *Node) Child(child *Node) *Node {
	if n.Kind() != KindTag || child == nil {
		return n
	}
	if child.parent != nil && child.parent != n {
		return n
	}
	for p := n; p != nil; p = p.parent {
		if p == child {
			return n
		}
	}
	child.parent = n
	n.children = append(n.children, child)
	return n
}

// Attr sets key to value on the tag and returns the tag. When key is already present the
// new value is appended to the existing one, separated by a space, so
//
//	Tag("p").Attr("class", "a").Attr("class", "b")
//
// carries class="a b". On a text node Attr does nothing.
func (n *Node) Attr(key, value string) *Node {
	if n.Kind() != KindTag {
		return n
	}
	if n.attrs == nil {
		n.attrs = orderedmap.New[string, string]()
	}
	if existing, ok := n.attrs.Get(key); ok {
		n.attrs.Set(key, existing+" "+value)
		return n
	}
	n.attrs.Set(key, value)
	return n
}
