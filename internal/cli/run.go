package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/aretw0/emmet"
	"github.com/aretw0/emmet/internal/logging"
	"github.com/aretw0/emmet/internal/presentation/compact"
	"github.com/aretw0/emmet/internal/presentation/graph"
	"github.com/aretw0/emmet/internal/presentation/tui"
	"github.com/aretw0/emmet/pkg/markup"
)

// DefaultThemePath is looked up in the working directory when --theme is not given.
const DefaultThemePath = "emmet-theme.yaml"

// RenderOptions contains all the configuration for the render command.
type RenderOptions struct {
	Color     string // auto, always or never
	ThemePath string
	Indent    int
	Minify    bool
	Debug     bool
}

// Render prints root to out according to opts.
func Render(out *os.File, root *markup.Node, opts RenderOptions) error {
	logger := logging.ForDebug(opts.Debug)

	mode, err := tui.ParseColorMode(opts.Color)
	if err != nil {
		return fmt.Errorf("invalid --color: %w", err)
	}

	if opts.Minify {
		if mode == tui.ColorAlways {
			logger.Warn("Colors are disabled when minifying", "color", opts.Color)
		}
		return writeMinified(out, root)
	}

	themePath := opts.ThemePath
	if themePath == "" {
		themePath = DefaultThemePath
	}
	theme, err := tui.LoadTheme(filepath.Clean(themePath))
	if err != nil {
		return fmt.Errorf("error loading theme: %w", err)
	}

	profile := tui.ResolveProfile(mode, out)
	logger.Debug("Resolved output", "color", mode, "profile", profile, "theme", themePath)

	return emmet.Print(out, root,
		emmet.WithLogger(logger),
		emmet.WithIndent(opts.Indent),
		emmet.WithDecorator(tui.NewDecorator(profile, theme)),
	)
}

func writeMinified(w io.Writer, root *markup.Node) error {
	if root == nil {
		return emmet.ErrNilRoot
	}
	minified, err := compact.Minify(root.String())
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, minified)
	return err
}

// Graph prints root as a Mermaid flowchart.
func Graph(w io.Writer, root *markup.Node) error {
	if root == nil {
		return emmet.ErrNilRoot
	}
	_, err := io.WriteString(w, graph.GenerateMermaid(root))
	return err
}
