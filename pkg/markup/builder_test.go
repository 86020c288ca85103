package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTag_Classification(t *testing.T) {
	img := Tag("img")
	assert.Equal(t, KindTag, img.Kind())
	assert.Equal(t, "img", img.Name())
	assert.True(t, img.IsSelfClosing())
	assert.True(t, img.IsInline())
	assert.Nil(t, img.Parent())
	assert.Empty(t, img.Children())
	assert.Empty(t, img.Attributes())

	div := Tag("div")
	assert.False(t, div.IsSelfClosing())
	assert.False(t, div.IsInline())
}

func TestNode_Text(t *testing.T) {
	li := Tag("li")
	got := li.Text("one").Text("two")

	require.Same(t, li, got, "Text must return the receiver")
	children := li.Children()
	require.Len(t, children, 2)
	for i, want := range []string{"one", "two"} {
		assert.Equal(t, KindText, children[i].Kind())
		assert.Equal(t, want, children[i].Value())
		assert.Same(t, li, children[i].Parent())
	}
}

func TestNode_Text_OnTextIsNoop(t *testing.T) {
	leaf := Text("hello")
	got := leaf.Text("ignored")

	assert.Same(t, leaf, got)
	assert.Empty(t, leaf.Children())
	assert.Equal(t, "hello", leaf.Value())
}

func TestNode_Child(t *testing.T) {
	ul := Tag("ul")
	first := Tag("li")
	second := Tag("li")

	got := ul.Child(first).Child(second)
	require.Same(t, ul, got)

	children := ul.Children()
	require.Len(t, children, 2)
	assert.Same(t, first, children[0])
	assert.Same(t, second, children[1])
	assert.Same(t, ul, first.Parent())
	assert.Same(t, ul, second.Parent())
}

func TestNode_Child_DetachedText(t *testing.T) {
	p := Tag("p").Child(Text("hello"))

	children := p.Children()
	require.Len(t, children, 1)
	assert.Equal(t, "hello", children[0].Value())
	assert.Same(t, p, children[0].Parent())
}

func TestNode_Child_SharedHandle(t *testing.T) {
	// Mutations made after attaching are visible through the parent.
	a := Tag("a")
	li := Tag("li").Child(a)
	a.Attr("href", "/late").Text("Late")

	assert.Equal(t, "<li>\n   <a href=\"/late\">\n      Late\n   </a>\n</li>", li.String())
}

func TestNode_Child_Duplicates(t *testing.T) {
	ul := Tag("ul")
	li := Tag("li")
	ul.Child(li).Child(li)

	assert.Len(t, ul.Children(), 2)
	assert.Same(t, ul, li.Parent())
}

func TestNode_Child_Noops(t *testing.T) {
	t.Run("text receiver", func(t *testing.T) {
		leaf := Text("x")
		child := Tag("span")
		assert.Same(t, leaf, leaf.Child(child))
		assert.Empty(t, leaf.Children())
		assert.Nil(t, child.Parent())
	})

	t.Run("nil child", func(t *testing.T) {
		div := Tag("div")
		assert.Same(t, div, div.Child(nil))
		assert.Empty(t, div.Children())
	})

	t.Run("nil receiver", func(t *testing.T) {
		var n *Node
		assert.Nil(t, n.Child(Tag("div")).Text("x").Attr("k", "v"))
	})

	t.Run("already attached elsewhere", func(t *testing.T) {
		first := Tag("div")
		second := Tag("div")
		span := Tag("span")
		first.Child(span)
		second.Child(span)

		assert.Same(t, first, span.Parent())
		assert.Len(t, first.Children(), 1)
		assert.Empty(t, second.Children())
	})

	t.Run("self", func(t *testing.T) {
		div := Tag("div")
		div.Child(div)
		assert.Empty(t, div.Children())
		assert.Nil(t, div.Parent())
	})

	t.Run("ancestor", func(t *testing.T) {
		outer := Tag("div")
		inner := Tag("section")
		outer.Child(inner)
		inner.Child(outer)

		assert.Empty(t, inner.Children())
		assert.Nil(t, outer.Parent())
		assert.Equal(t, 1, inner.Depth())
	})
}

func TestNode_Attr(t *testing.T) {
	a := Tag("a")
	got := a.Attr("href", "/home").Attr("class", "nav")

	require.Same(t, a, got)
	assert.Equal(t, []Attribute{
		{Key: "href", Value: "/home"},
		{Key: "class", Value: "nav"},
	}, a.Attributes())

	value, ok := a.Attribute("class")
	assert.True(t, ok)
	assert.Equal(t, "nav", value)

	_, ok = a.Attribute("id")
	assert.False(t, ok)
}

func TestNode_Attr_Merges(t *testing.T) {
	a := Tag("a").
		Attr("href", "a").
		Attr("id", "x").
		Attr("href", "b")

	assert.Equal(t, []Attribute{
		{Key: "href", Value: "a b"},
		{Key: "id", Value: "x"},
	}, a.Attributes(), "merged key keeps its original position")
}

func TestNode_Attr_OnTextIsNoop(t *testing.T) {
	leaf := Text("x")
	assert.Same(t, leaf, leaf.Attr("class", "y"))
	assert.Empty(t, leaf.Attributes())
	_, ok := leaf.Attribute("class")
	assert.False(t, ok)
}

func TestNode_Depth(t *testing.T) {
	root := Tag("nav")
	ul := Tag("ul")
	li := Tag("li").Text("leaf")
	root.Child(ul.Child(li))

	assert.Equal(t, 0, root.Depth())
	assert.Equal(t, 1, ul.Depth())
	assert.Equal(t, 2, li.Depth())
	assert.Equal(t, 3, li.Children()[0].Depth())
	assert.Same(t, root, li.Children()[0].Root())
	assert.Same(t, root, root.Root())

	var nilNode *Node
	assert.Equal(t, 0, nilNode.Depth())
	assert.Nil(t, nilNode.Root())
}

func TestWalk(t *testing.T) {
	root := Tag("ul").
		Child(Tag("li").Text("one")).
		Child(Tag("li").Child(Tag("img").Text("hidden")))

	var visited []string
	Walk(root, func(n *Node, depth int) bool {
		label := n.Name()
		if n.Kind() == KindText {
			label = n.Value()
		}
		visited = append(visited, label)
		assert.Equal(t, n.Depth(), depth)
		return true
	})
	assert.Equal(t, []string{"ul", "li", "one", "li", "img", "hidden"}, visited)

	var count int
	Walk(root, func(n *Node, _ int) bool {
		count++
		return n.Name() == "ul"
	})
	assert.Equal(t, 3, count, "returning false prunes the subtree")
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "tag", KindTag.String())
	assert.Equal(t, "text", KindText.String())
	assert.Equal(t, "unknown", Kind(0).String())
}
