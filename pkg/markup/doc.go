/*
Package markup builds in-memory trees of markup elements and text leaves and renders them as
indented, human-readable markup.

A tree is grown in place through a fluent API. Every builder call returns the node it was
invoked on, so chains keep operating on the same element:

	menu := markup.Tag("li").
		Child(markup.Tag("a").Attr("href", "/home").Text("Home"))

	fmt.Println(menu)

prints

	<li>
	   <a href="/home">
	      Home
	   </a>
	</li>

# Nodes

A Node is either a Tag (an element with a name, ordered attributes and ordered children) or a
Text leaf. Whether a tag is inline or self-closing is decided once, when the tag is created,
from a fixed classification of HTML element names (see IsSelfClosing and IsInline).

Calls that do not apply to a node (adding attributes or children to a Text leaf, for instance)
are silent no-ops, so a chain never breaks and no builder call returns an error.

# Rendering

Each node is indented by its depth in the tree. Self-closing tags render as a single
"<name/>" line and never render their children. Tags without children render on one line;
every other tag renders its children one per line between the opening and closing tags.
Text leaves always render on their own line.

A Renderer can decorate tag names, attribute keys and attribute values (for terminal colors)
through a Decorator. Decoration wraps fragments and never changes their text.
*/
package markup
