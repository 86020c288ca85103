package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/emmet/pkg/markup"
)

// GenerateMermaid produces a Mermaid flowchart of a markup tree.
// It applies semantic styling:
// - Element: ["label"]
// - Void element: (("label"))
// - Text: [/"text"/]
// Element labels use abbreviation syntax: nav#main-menu.menu[data-x=1].
// Nodes under a void element are linked with a dotted arrow and styled as hidden, because
// rendering drops them.
func GenerateMermaid(root *markup.Node) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")
	if root == nil {
		return sb.String()
	}

	g := &generator{sb: &sb}
	g.visit(root, "", false)

	if len(g.hidden) > 0 {
		sb.WriteString("\n    %% Overlay Styles\n")
		sb.WriteString("    classDef hidden fill:#eeeeee,stroke:#9e9e9e,stroke-dasharray:4,color:#616161;\n")
		for _, id := range g.hidden {
			sb.WriteString(fmt.Sprintf("    class %s hidden;\n", id))
		}
	}

	return sb.String()
}

type generator struct {
	sb     *strings.Builder
	next   int
	hidden []string
}

// visit numbers nodes in walk order, so a node attached twice is drawn twice, as it is rendered.
func (g *generator) visit(n *markup.Node, parentID string, hidden bool) {
	id := fmt.Sprintf("n%d", g.next)
	g.next++

	opener, closer := "[", "]"
	label := abbreviation(n)
	switch {
	case n.Kind() == markup.KindText:
		opener, closer = "[/", "/]"
		label = n.Value()
	case n.IsSelfClosing():
		opener, closer = "((", "))"
	}
	g.sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", id, opener, sanitizeLabel(label), closer))

	if parentID != "" {
		arrow := "-->"
		if hidden {
			arrow = "-.->"
		}
		g.sb.WriteString(fmt.Sprintf("    %s %s %s\n", parentID, arrow, id))
	}
	if hidden {
		g.hidden = append(g.hidden, id)
	}

	childrenHidden := hidden || n.IsSelfClosing()
	for _, child := range n.Children() {
		g.visit(child, id, childrenHidden)
	}
}

// abbreviation writes a tag as name#id.class[key=value...].
func abbreviation(n *markup.Node) string {
	var sb strings.Builder
	sb.WriteString(n.Name())

	var rest []string
	for _, attr := range n.Attributes() {
		switch attr.Key {
		case "id":
			sb.WriteString("#" + attr.Value)
		case "class":
			for _, class := range strings.Fields(attr.Value) {
				sb.WriteString("." + class)
			}
		default:
			rest = append(rest, attr.Key+"="+attr.Value)
		}
	}
	if len(rest) > 0 {
		sb.WriteString("[" + strings.Join(rest, " ") + "]")
	}
	return sb.String()
}

// sanitizeLabel keeps labels inside Mermaid's double quotes.
func sanitizeLabel(s string) string {
	s = strings.ReplaceAll(s, "\"", "'")
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}
