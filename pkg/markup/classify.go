package markup

import "golang.org/x/net/html/atom"

// selfClosing lists the void HTML elements, rendered without a body or closing tag.
var selfClosing = atomSet(
	atom.Area, atom.Base, atom.Br, atom.Col, atom.Embed, atom.Hr, atom.Img,
	atom.Input, atom.Link, atom.Meta, atom.Source, atom.Track, atom.Wbr,
)

var inline = atomSet(
	atom.A, atom.Abbr, atom.Acronym, atom.B, atom.Bdo, atom.Big, atom.Br,
	atom.Button, atom.Cite, atom.Code, atom.Dfn, atom.Em, atom.I, atom.Img,
	atom.Input, atom.Kbd, atom.Label, atom.Map, atom.Object, atom.Output,
	atom.Q, atom.Samp, atom.Script, atom.Select, atom.Small, atom.Span,
	atom.Strong, atom.Sub, atom.Sup, atom.Textarea, atom.Time, atom.Tt, atom.Var,
)

func atomSet(atoms ...atom.Atom) map[atom.Atom]struct{} {
	set := make(map[atom.Atom]struct{}, len(atoms))
	for _, a := range atoms {
		set[a] = struct{}{}
	}
	return set
}

// lookup interns a tag name. Unknown names, and names that are not lower case, map to the
// zero Atom, which is a member of no table.
func lookup(name string) atom.Atom {
	return atom.Lookup([]byte(name))
}

// IsSelfClosing reports whether name is a void element (img, br, input, ...).
// Unknown names are not self-closing.
func IsSelfClosing(name string) bool {
	_, ok := selfClosing[lookup(name)]
	return ok
}

// IsInline reports whether name is an inline element (a, span, em, ...).
// Unknown names are not inline.
func IsInline(name string) bool {
	_, ok := inline[lookup(name)]
	return ok
}
