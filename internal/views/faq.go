package views

import (
	"fmt"
	"strconv"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/CreepsoOff/wplace-overlayttpro-website/internal/content"
	"github.com/CreepsoOff/wplace-overlayttpro-website/internal/faq"
	"github.com/CreepsoOff/wplace-overlayttpro-website/internal/icons"
	"github.com/CreepsoOff/wplace-overlayttpro-website/internal/layout"
	"github.com/CreepsoOff/wplace-overlayttpro-website/internal/reveal"
)

// FAQItemData describes one accordion entry render.
type FAQItemData struct {
	Index    int
	FAQ      content.FAQ
	Open     bool
	State    State
	Layout   *layout.Document
	Revealed *reveal.Set
	Static   bool
}

// FAQFragmentPath is the htmx endpoint that returns entry i toggled from open.
func FAQFragmentPath(i int, open bool) string {
	return fmt.Sprintf("/fragments/faq/%d?open=%t", i, open)
}

// FAQItem renders one entry. It is both part of the page and the htmx swap target, so
// the element id stays stable and htmx can settle the class change into a transition.
func FAQItem(d FAQItemData) g.Node {
	id := layout.FAQID(d.Index)
	answerID := id + "-answer"
	extra := "card faq-item"
	if d.Open {
		extra += " is-open"
	}
	href := d.State.ToggleFAQ(d.Index).Href(id)
	var htmx g.Node
	if d.Static {
		href = "#" + id
	} else {
		htmx = g.Group{
			g.Attr("hx-get", FAQFragmentPath(d.Index, d.Open)),
			g.Attr("hx-target", "#"+id),
			g.Attr("hx-swap", "outerHTML"),
		}
	}
	return h.Div(
		h.ID(id),
		revealable(d.Layout, d.Revealed, id, extra),
		h.Style(fmt.Sprintf("--faq-duration: %dms", faq.TransitionDuration.Milliseconds())),
		h.A(
			h.Class("faq-question"),
			h.Role("button"),
			h.Href(href),
			g.Attr("data-faq-toggle"),
			htmx,
			h.Aria("expanded", strconv.FormatBool(d.Open)),
			h.Aria("controls", answerID),
			h.Span(g.Text(d.FAQ.Question)),
			icons.Icon("chevron-down", "icon"),
		),
		h.Div(
			h.ID(answerID),
			h.Class("faq-answer"),
			h.Role("region"),
			h.Aria("hidden", strconv.FormatBool(!d.Open)),
			h.Div(g.Raw(d.FAQ.AnswerHTML)),
		),
	)
}
