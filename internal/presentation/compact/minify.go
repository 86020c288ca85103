// Package compact squeezes rendered markup into its minified form.
package compact

import (
	"fmt"
	"strings"
	"sync"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/html"
)

const mediaType = "text/html"

var (
	minifier *minify.M
	once     sync.Once
)

// getMinifier returns the shared minifier. End tags and attribute quotes are kept so the
// output maps back onto the tree element by element.
func getMinifier() *minify.M {
	once.Do(func() {
		minifier = minify.New()
		minifier.Add(mediaType, &html.Minifier{
			KeepEndTags: true,
			KeepQuotes:  true,
		})
	})
	return minifier
}

// Minify removes the indentation and line breaks of rendered markup, leaving a single line.
// It must be given undecorated markup; color escapes are not markup.
func Minify(rendered string) (string, error) {
	out, err := getMinifier().String(mediaType, rendered)
	if err != nil {
		return "", fmt.Errorf("failed to minify markup: %w", err)
	}
	// The minifier collapses whitespace before inline elements to "\n" when it held a line
	// break; a space is equivalent markup.
	out = strings.ReplaceAll(out, "\r\n", " ")
	out = strings.ReplaceAll(out, "\n", " ")
	return out, nil
}
