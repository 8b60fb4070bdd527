package views

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/CreepsoOff/wplace-overlayttpro-website/internal/scroll"
	"github.com/CreepsoOff/wplace-overlayttpro-website/internal/seo"
)

const htmxSrc = "https://unpkg.com/htmx.org@2.0.4/dist/htmx.min.js"

// Assets holds the cache-busted URLs of the embedded static files.
type Assets struct {
	Stylesheet string
	Script     string
	Favicon    string
}

// shell wraps body in the document head and global decoration.
func shell(meta seo.Meta, assets Assets, static bool, body ...g.Node) g.Node {
	return h.Doctype(
		h.HTML(
			h.Lang(meta.Lang),
			h.Class("no-js"),
			head(meta, assets, static),
			h.Body(
				h.Data("nav-offset", formatPx(scroll.NavHeight)),
				g.If(static, h.Data("static", "true")),
				h.Div(h.Class("backdrop"), h.Aria("hidden", "true")),
				g.Group(body),
			),
		),
	)
}

func head(meta seo.Meta, assets Assets, static bool) g.Node {
	return h.Head(
		h.Meta(h.Charset("utf-8")),
		h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
		h.TitleEl(g.Text(meta.Title)),
		h.Meta(h.Name("description"), h.Content(meta.Description)),
		g.If(len(meta.Keywords) > 0, h.Meta(h.Name("keywords"), h.Content(meta.KeywordList()))),
		h.Meta(h.Name("theme-color"), h.Content("#07080d")),
		h.Link(h.Rel("canonical"), h.Href(meta.Canonical)),
		h.Meta(g.Attr("property", "og:title"), h.Content(meta.OG.Title)),
		h.Meta(g.Attr("property", "og:description"), h.Content(meta.OG.Description)),
		h.Meta(g.Attr("property", "og:type"), h.Content(meta.OG.Type)),
		h.Meta(g.Attr("property", "og:url"), h.Content(meta.OG.URL)),
		h.Meta(g.Attr("property", "og:site_name"), h.Content(meta.OG.SiteName)),
		h.Meta(g.Attr("property", "og:locale"), h.Content(meta.OG.Locale)),
		h.Meta(h.Name("twitter:card"), h.Content(meta.Twitter.Card)),
		h.Meta(h.Name("twitter:title"), h.Content(meta.Twitter.Title)),
		h.Meta(h.Name("twitter:description"), h.Content(meta.Twitter.Description)),
		g.If(assets.Favicon != "", h.Link(h.Rel("icon"), h.Type("image/svg+xml"), h.Href(assets.Favicon))),
		h.Link(h.Rel("stylesheet"), h.Href(assets.Stylesheet)),
		g.If(!static, h.Script(h.Src(htmxSrc), h.Defer())),
		h.Script(h.Src(assets.Script), h.Defer()),
		g.Map(meta.JSONLD, func(doc string) g.Node {
			return h.Script(h.Type("application/ld+json"), g.Raw(doc))
		}),
	)
}
