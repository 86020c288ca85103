package tui

import (
	"github.com/muesli/termenv"

	"github.com/aretw0/emmet/pkg/markup"
)

// Decorator colors markup fragments with ANSI escape sequences.
// With the Ascii profile it returns every fragment untouched.
type Decorator struct {
	profile termenv.Profile
	theme   Theme
}

// NewDecorator returns a markup.Decorator painting fragments with theme, downsampled to profile.
func NewDecorator(profile termenv.Profile, theme Theme) *Decorator {
	return &Decorator{profile: profile, theme: theme}
}

// Decorate implements markup.Decorator.
func (d *Decorator) Decorate(role markup.Role, fragment string) string {
	if d.profile == termenv.Ascii {
		return fragment
	}

	var style Style
	switch role {
	case markup.RoleTagName:
		style = d.theme.TagName
	case markup.RoleAttrKey:
		style = d.theme.AttrKey
	case markup.RoleAttrValue:
		style = d.theme.AttrValue
	default:
		return fragment
	}

	s := d.profile.String(fragment)
	if style.Color != "" {
		s = s.Foreground(d.profile.Color(style.Color))
	}
	if style.Bold {
		s = s.Bold()
	}
	return s.String()
}
