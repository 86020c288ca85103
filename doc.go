/*
Package emmet builds markup trees in Go and prints them as indented, optionally colored markup.

The tree itself lives in package markup; this package is the high-level entry point that
writes a finished tree to an output with logging and decoration configured.

# Usage

	package main

	import (
		"os"

		"github.com/aretw0/emmet"
		"github.com/aretw0/emmet/pkg/markup"
	)

	func main() {
		menu := markup.Tag("ul").
			Attr("class", "menu").
			Child(markup.Tag("li").Child(markup.Tag("a").Attr("href", "/home").Text("Home")))

		if err := emmet.Print(os.Stdout, menu); err != nil {
			panic(err)
		}
	}

Output:

	<ul class="menu">
	   <li>
	      <a href="/home">
	         Home
	      </a>
	   </li>
	</ul>

# Key Features

  - Fluent construction: every builder call returns the node it was called on.
  - Deterministic output: the same tree always prints the same text.
  - Decoration hooks: tag names, attribute keys and values can be colored for terminals
    without changing the printed text.
*/
package emmet
