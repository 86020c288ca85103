// Package menu assembles the navigation menu printed by the emmet command.
package menu

import "github.com/aretw0/emmet/pkg/markup"

// Build returns the main navigation menu.
//
// The about link and the services heading each carry an img; the img renders, the heading
// text stays on its own line.
func Build() *markup.Node {
	return markup.Tag("nav").
		Attr("class", "menu").
		Attr("id", "main-menu").
		Child(
			markup.Tag("ul").
				Child(item(link("/home", "Home"))).
				Child(item(link("/about", "About").Child(markup.Tag("img")))).
				Child(
					markup.Tag("li").
						Child(markup.Tag("h1").Text("hello world").Child(markup.Tag("img"))).
						Child(link("/services", "Services")).
						Child(
							markup.Tag("ul").
								Child(item(link("/services/web-development", "Web Development"))).
								Child(item(link("/services/app-development", "App Development"))).
								Child(item(link("/services/seo", "SEO"))),
						),
				).
				Child(item(link("/contact", "Contact"))),
		)
}

func item(child *markup.Node) *markup.Node {
	return markup.Tag("li").Child(child)
}

func link(href, label string) *markup.Node {
	return markup.Tag("a").Attr("href", href).Text(label)
}
