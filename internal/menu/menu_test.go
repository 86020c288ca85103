package menu

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/emmet/pkg/markup"
)

func TestBuild(t *testing.T) {
	type line struct {
		depth int
		text  string
	}
	want := []line{
		{0, `<nav class="menu" id="main-menu">`},
		{1, `<ul>`},
		{2, `<li>`},
		{3, `<a href="/home">`},
		{4, `Home`},
		{3, `</a>`},
		{2, `</li>`},
		{2, `<li>`},
		{3, `<a href="/about">`},
		{4, `About`},
		{4, `<img/>`},
		{3, `</a>`},
		{2, `</li>`},
		{2, `<li>`},
		{3, `<h1>`},
		{4, `hello world`},
		{4, `<img/>`},
		{3, `</h1>`},
		{3, `<a href="/services">`},
		{4, `Services`},
		{3, `</a>`},
		{3, `<ul>`},
		{4, `<li>`},
		{5, `<a href="/services/web-development">`},
		{6, `Web Development`},
		{5, `</a>`},
		{4, `</li>`},
		{4, `<li>`},
		{5, `<a href="/services/app-development">`},
		{6, `App Development`},
		{5, `</a>`},
		{4, `</li>`},
		{4, `<li>`},
		{5, `<a href="/services/seo">`},
		{6, `SEO`},
		{5, `</a>`},
		{4, `</li>`},
		{3, `</ul>`},
		{2, `</li>`},
		{2, `<li>`},
		{3, `<a href="/contact">`},
		{4, `Contact`},
		{3, `</a>`},
		{2, `</li>`},
		{1, `</ul>`},
		{0, `</nav>`},
	}

	lines := make([]string, len(want))
	for i, l := range want {
		lines[i] = strings.Repeat(markup.DefaultIndent, l.depth) + l.text
	}

	assert.Equal(t, strings.Join(lines, "\n"), Build().String())
}

func TestBuild_Fresh(t *testing.T) {
	a, b := Build(), Build()
	assert.NotSame(t, a, b)
	assert.Equal(t, a.String(), b.String())
}
