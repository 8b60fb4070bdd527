// Package views renders the landing page and its fragments as gomponents trees.
package views

import (
	"fmt"
	"strconv"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/CreepsoOff/wplace-overlayttpro-website/internal/content"
	"github.com/CreepsoOff/wplace-overlayttpro-website/internal/icons"
	"github.com/CreepsoOff/wplace-overlayttpro-website/internal/layout"
	"github.com/CreepsoOff/wplace-overlayttpro-website/internal/nav"
	"github.com/CreepsoOff/wplace-overlayttpro-website/internal/reveal"
	"github.com/CreepsoOff/wplace-overlayttpro-website/internal/seo"
)

// PageData is everything the landing page needs for one render.
type PageData struct {
	Meta     seo.Meta
	Assets   Assets
	Landing  *content.Landing
	Nav      []nav.RenderedItem
	State    State
	Layout   *layout.Document
	Revealed *reveal.Set
	// Static renders for file hosting: anchors instead of server routes and no htmx.
	Static bool
}

// Page renders the full landing page.
func Page(d PageData) g.Node {
	p := d.Landing.Product
	items := d.Nav
	if d.Static {
		items = make([]nav.RenderedItem, len(d.Nav))
		for i, it := range d.Nav {
			it.Href = it.Anchor
			items[i] = it
		}
	}
	return shell(d.Meta, d.Assets, d.Static,
		navbar(p, items, d.State, d.Static),
		h.Main(
			hero(d),
			features(d),
			highlights(d),
			faqSection(d),
			install(d),
		),
		footer(p, items),
	)
}

func navbar(p content.Product, items []nav.RenderedItem, state State, static bool) g.Node {
	cls := "site-nav"
	toggleHref := state.WithMenu(true).Href("")
	if state.MenuOpen {
		cls += " is-open"
		toggleHref = state.WithMenu(false).Href("")
	}
	brandHref := nav.Href(nav.SectionHome)
	if static {
		toggleHref = "#mobile-menu"
		brandHref = "#" + nav.SectionHome
	}
	return h.Header(
		h.Class(cls),
		g.Attr("data-site-nav"),
		h.Div(
			h.Class("container"),
			h.A(
				h.Class("brand"),
				h.Href(brandHref),
				h.Data("nav-target", nav.SectionHome),
				icons.Icon("layers", "icon"),
				h.Span(g.Text(p.Name)),
			),
			h.Nav(h.Aria("label", "Main"), navLinks("nav-links", items)),
			h.A(
				h.Class("menu-toggle"),
				h.Href(toggleHref),
				g.Attr("data-menu-toggle"),
				h.Aria("controls", "mobile-menu"),
				h.Aria("expanded", strconv.FormatBool(state.MenuOpen)),
				h.Aria("label", "Toggle menu"),
				h.Span(h.Class("icon-open"), icons.Icon("menu", "icon")),
				h.Span(h.Class("icon-close"), icons.Icon("x", "icon")),
			),
		),
		h.Div(
			h.ID("mobile-menu"),
			h.Class("mobile-menu"),
			navLinks("", items),
		),
	)
}

func navLinks(class string, items []nav.RenderedItem) g.Node {
	return h.Ul(
		g.If(class != "", h.Class(class)),
		g.Map(items, func(it nav.RenderedItem) g.Node {
			return h.Li(
				h.A(
					h.Href(it.Href),
					h.Data("nav-target", it.ID),
					g.If(it.Active, h.Aria("current", "true")),
					g.Text(it.Label),
				),
			)
		}),
	)
}

func hero(d PageData) g.Node {
	p := d.Landing.Product
	return h.Section(
		h.ID(nav.SectionHome),
		revealable(d.Layout, d.Revealed, nav.SectionHome, "hero"),
		h.Div(
			h.Class("container"),
			h.H1(
				g.Text(p.Name+" "),
				h.Span(h.Class("gradient-text"), g.Text(p.Tagline)),
			),
			h.P(g.Text(p.Description)),
			h.Div(
				h.Class("actions"),
				externalButton("button button-primary", p.DownloadURL, "download", "Install now"),
				externalButton("button button-ghost", p.RepositoryURL, "github", "View on GitHub"),
			),
		),
	)
}

func features(d PageData) g.Node {
	return h.Section(
		h.ID(nav.SectionFeatures),
		revealable(d.Layout, d.Revealed, nav.SectionFeatures),
		h.Div(
			h.Class("container"),
			sectionHeading("Powerful ", "Features", "Everything you need to create stunning pixel art overlays"),
			h.Div(
				h.Class("feature-grid"),
				g.Group(g.Map(indexed(d.Landing.Features), func(f indexedFeature) g.Node {
					id := layout.FeatureID(f.i)
					return h.Article(
						h.ID(id),
						revealable(d.Layout, d.Revealed, id, "card"),
						h.Span(h.Class("icon-badge"), icons.Icon(f.Icon, "icon")),
						h.H3(g.Text(f.Title)),
						h.P(g.Text(f.Description)),
					)
				})),
			),
		),
	)
}

func highlights(d PageData) g.Node {
	return h.Section(
		h.ID(nav.SectionHighlights),
		revealable(d.Layout, d.Revealed, nav.SectionHighlights),
		h.Div(
			h.Class("container"),
			g.Map(indexed(d.Landing.Highlights), func(f indexedFeature) g.Node {
				id := layout.HighlightID(f.i)
				extra := "highlight"
				if f.i%2 == 1 {
					extra += " is-reversed"
				}
				return h.Div(
					h.ID(id),
					revealable(d.Layout, d.Revealed, id, extra),
					h.Div(
						h.Class("highlight-copy"),
						h.Span(h.Class("icon-badge"), icons.Icon(f.Icon, "icon")),
						h.H3(g.Text(f.Title)),
						h.P(g.Text(f.Description)),
					),
					h.Div(h.Class("highlight-visual"), h.Aria("hidden", "true"), icons.Icon(f.Icon, "icon")),
				)
			}),
		),
	)
}

func faqSection(d PageData) g.Node {
	acc := d.State.Accordion(d.Landing.FAQs)
	items := make([]g.Node, 0, acc.Len())
	for i, f := range d.Landing.FAQs {
		items = append(items, FAQItem(FAQItemData{
			Index:    i,
			FAQ:      f,
			Open:     acc.IsOpen(i),
			State:    d.State,
			Layout:   d.Layout,
			Revealed: d.Revealed,
			Static:   d.Static,
		}))
	}
	return h.Section(
		h.ID(nav.SectionFAQ),
		revealable(d.Layout, d.Revealed, nav.SectionFAQ),
		h.Div(
			h.Class("container"),
			sectionHeading("Frequently Asked ", "Questions", "Everything you need to know about Overlay Pro TT"),
			h.Div(h.Class("faq-list"), g.Group(items)),
		),
	)
}

func install(d PageData) g.Node {
	p := d.Landing.Product
	return h.Section(
		h.ID(nav.SectionInstall),
		revealable(d.Layout, d.Revealed, nav.SectionInstall),
		h.Div(
			h.Class("container"),
			sectionHeading("Get Started in ", "Seconds", "Install "+p.Name+" in three simple steps"),
			h.Ol(
				h.Class("steps"),
				g.Group(g.Map(indexedSteps(d.Landing.Steps), func(s indexedStep) g.Node {
					id := layout.StepID(s.i)
					return h.Li(
						h.ID(id),
						revealable(d.Layout, d.Revealed, id, "card step"),
						h.Span(h.Class("step-number"), g.Text(strconv.Itoa(s.i+1))),
						h.Div(
							h.H3(g.Text(s.Title)),
							g.If(s.BodyHTML != "", g.Raw(s.BodyHTML)),
							g.If(len(s.Links) > 0, h.Div(
								h.Class("step-links"),
								g.Map(s.Links, func(l content.Link) g.Node {
									return externalButton("button button-ghost", l.URL, "", l.Label)
								}),
							)),
						),
					)
				})),
			),
			h.Div(
				h.Class("actions"),
				externalButton("button button-primary", p.DownloadURL, "download", "Install "+p.Name),
			),
		),
	)
}

func footer(p content.Product, items []nav.RenderedItem) g.Node {
	return h.Footer(
		h.Class("site-footer"),
		h.Div(
			h.Class("container"),
			h.Nav(
				h.Aria("label", "Footer"),
				g.Map(items, func(it nav.RenderedItem) g.Node {
					return h.A(h.Href(it.Href), h.Data("nav-target", it.ID), g.Text(it.Label))
				}),
				h.A(h.Href(p.RepositoryURL), h.Target("_blank"), h.Rel("noopener noreferrer"), g.Text("GitHub")),
			),
			h.P(
				g.Textf("© %d %s. Released under the ", p.CopyrightYear, p.Name),
				h.A(h.Href(p.LicenseURL), h.Target("_blank"), h.Rel("noopener noreferrer"), g.Text(p.LicenseName)),
				g.Text(" license."),
			),
			h.P(
				h.Small(
					g.Text("Not affiliated with "),
					h.A(h.Href(p.TargetSiteURL), h.Target("_blank"), h.Rel("noopener noreferrer"), g.Text(p.TargetSiteName)),
					g.Text("."),
				),
			),
		),
	)
}

func sectionHeading(plain, highlighted, lead string) g.Node {
	return h.Div(
		h.Class("section-heading"),
		h.H2(g.Text(plain), h.Span(h.Class("gradient-text"), g.Text(highlighted))),
		h.P(g.Text(lead)),
	)
}

func externalButton(class, href, icon, label string) g.Node {
	return h.A(
		h.Class(class),
		h.Href(href),
		h.Target("_blank"),
		h.Rel("noopener noreferrer"),
		g.If(icon != "", icons.Icon(icon, "icon")),
		h.Span(g.Text(label)),
	)
}

type indexedFeature struct {
	i int
	content.Feature
}

func indexed(fs []content.Feature) []indexedFeature {
	out := make([]indexedFeature, len(fs))
	for i, f := range fs {
		out[i] = indexedFeature{i: i, Feature: f}
	}
	return out
}

type indexedStep struct {
	i int
	content.Step
}

func indexedSteps(steps []content.Step) []indexedStep {
	out := make([]indexedStep, len(steps))
	for i, s := range steps {
		out[i] = indexedStep{i: i, Step: s}
	}
	return out
}

func formatPx(v float64) string {
	return fmt.Sprintf("%g", v)
}
