package views

import (
	"strconv"
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/CreepsoOff/wplace-overlayttpro-website/internal/layout"
	"github.com/CreepsoOff/wplace-overlayttpro-website/internal/reveal"
)

// revealable returns the class and data attributes that let site.js observe the element.
// Elements in the first-paint set are rendered already visible.
func revealable(doc *layout.Document, set *reveal.Set, id string, classes ...string) g.Node {
	block, ok := doc.Block(id)
	kind := layout.KindSection
	if ok {
		kind = block.Kind
	}
	opts := layout.RevealOptions(kind)

	cls := append([]string{"reveal"}, classes...)
	visible := set.Has(id)
	if visible {
		cls = append(cls, "is-visible")
	}

	nodes := []g.Node{
		h.Class(strings.Join(cls, " ")),
		h.Data("reveal", string(kind)),
		h.Data("reveal-threshold", strconv.FormatFloat(opts.Threshold, 'f', -1, 64)),
		h.Data("reveal-margin", marginCSS(opts.RootMargin)),
	}
	if visible {
		nodes = append(nodes, h.Data("revealed", "true"))
	}
	if ok && block.Delay > 0 {
		nodes = append(nodes, h.Data("reveal-delay", strconv.Itoa(block.Delay)))
	}
	return g.Group(nodes)
}

// marginCSS renders m in IntersectionObserver rootMargin syntax.
func marginCSS(m reveal.Margin) string {
	px := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) + "px" }
	return strings.Join([]string{px(m.Top), px(m.Right), px(m.Bottom), px(m.Left)}, " ")
}
