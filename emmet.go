package emmet

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/aretw0/emmet/internal/logging"
	"github.com/aretw0/emmet/pkg/markup"
)

// Version is the released version of the emmet module and command.
const Version = "0.3.0"

// ErrNilRoot is returned by Print when there is no tree to print.
var ErrNilRoot = errors.New("nil root node")

type printer struct {
	renderer markup.Renderer
	logger   *slog.Logger
}

// Option defines a functional option for configuring Print.
type Option func(*printer)

// WithLogger configures the structured logger. Print logs tree statistics at Debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(p *printer) {
		p.logger = logger
	}
}

// WithDecorator configures how tag names and attributes are decorated (e.g. colored).
func WithDecorator(d markup.Decorator) Option {
	return func(p *printer) {
		p.renderer.Decorator = d
	}
}

// WithIndent sets the indentation width in spaces. Widths below one keep the default.
func WithIndent(width int) Option {
	return func(p *printer) {
		if width > 0 {
			p.renderer.Indent = strings.Repeat(" ", width)
		}
	}
}

// Print renders root to w followed by a newline.
func Print(w io.Writer, root *markup.Node, opts ...Option) error {
	p := &printer{}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = logging.NewNop()
	}

	if root == nil {
		return ErrNilRoot
	}

	var nodes, height int
	markup.Walk(root, func(_ *markup.Node, depth int) bool {
		nodes++
		height = max(height, depth)
		return true
	})

	n, err := io.WriteString(w, p.renderer.Render(root)+"\n")
	if err != nil {
		p.logger.Error("Failed to write markup", "error", err)
		return fmt.Errorf("failed to write markup: %w", err)
	}

	p.logger.Debug("Printed markup tree", "root", root.Name(), "nodes", nodes, "height", height, "bytes", n)
	return nil
}
