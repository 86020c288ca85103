package tui

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// ColorMode selects when output is colored.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ErrUnknownColorMode is returned by ParseColorMode for values other than auto, always, never.
var ErrUnknownColorMode = errors.New("unknown color mode")

// ParseColorMode parses a --color flag value. The empty string means ColorAuto.
func ParseColorMode(s string) (ColorMode, error) {
	switch mode := ColorMode(strings.ToLower(strings.TrimSpace(s))); mode {
	case "":
		return ColorAuto, nil
	case ColorAuto, ColorAlways, ColorNever:
		return mode, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownColorMode, s)
	}
}

// ResolveProfile picks the color profile for writing to out.
// Auto colors only terminals and honors NO_COLOR through the environment profile of out;
// always forces at least the 16 color ANSI profile.
func ResolveProfile(mode ColorMode, out *os.File) termenv.Profile {
	switch mode {
	case ColorNever:
		return termenv.Ascii
	case ColorAlways:
		if out != nil {
			if p := termenv.NewOutput(out).EnvColorProfile(); p != termenv.Ascii {
				return p
			}
		}
		return termenv.ANSI
	default:
		if out == nil || !term.IsTerminal(int(out.Fd())) {
			return termenv.Ascii
		}
		return termenv.NewOutput(out).EnvColorProfile()
	}
}
