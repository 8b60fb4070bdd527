// Package layout estimates where each section and card of the landing page sits in the
// document. The browser owns the real geometry; the estimate is used to decide what is
// already above the fold on first paint and to resolve navigation without JavaScript.
package layout

import (
	"fmt"
	"math"

	"github.com/CreepsoOff/wplace-overlayttpro-website/internal/content"
	"github.com/CreepsoOff/wplace-overlayttpro-website/internal/nav"
	"github.com/CreepsoOff/wplace-overlayttpro-website/internal/reveal"
)

// Kind distinguishes whole sections from the cards inside them.
type Kind string

const (
	KindSection Kind = "section"
	KindCard    Kind = "card"
)

// Breakpoints mirror the CSS grid breakpoints.
const (
	BreakpointMedium = 768
	BreakpointLarge  = 1024
)

// nominal block sizes in CSS pixels
const (
	sectionPadding  = 80
	heroHeight      = 720
	headingHeight   = 160
	featureCard     = 200
	gridGap         = 32
	highlightRow    = 360
	highlightStack  = 560
	highlightGap    = 64
	faqHeading      = 136
	faqRow          = 88
	faqGap          = 16
	installHeading  = 200
	stepRow         = 120
	stepGap         = 24
	installCTA      = 160
	footerHeight    = 200
	cardInsetBottom = 40
)

// Block is one revealable element.
type Block struct {
	id     string
	Kind   Kind
	Rect   reveal.Rect
	Parent string
	// Delay staggers the reveal transition of sibling cards.
	Delay int
}

// ID implements reveal.Target.
func (b Block) ID() string { return b.id }

// Bounds implements reveal.Target.
func (b Block) Bounds() reveal.Rect { return b.Rect }

// Options returns the observation options for the block's kind.
func (b Block) Options() reveal.Options { return RevealOptions(b.Kind) }

// RevealOptions returns the threshold and root margin used for kind.
func RevealOptions(kind Kind) reveal.Options {
	if kind == KindCard {
		return reveal.Options{Threshold: reveal.DefaultThreshold, RootMargin: reveal.Margin{Bottom: -cardInsetBottom}}
	}
	return reveal.Options{Threshold: reveal.DefaultThreshold}
}

// Document is the estimated page geometry at one viewport width.
type Document struct {
	Width  float64
	blocks []Block
	index  map[string]int
}

// Block ids for cards.
func FeatureID(i int) string   { return fmt.Sprintf("feature-%d", i) }
func HighlightID(i int) string { return fmt.Sprintf("highlight-%d", i) }
func FAQID(i int) string       { return fmt.Sprintf("faq-%d", i) }
func StepID(i int) string      { return fmt.Sprintf("step-%d", i) }

// Estimate lays out landing at the given viewport width.
func Estimate(landing *content.Landing, width float64) *Document {
	d := &Document{Width: width, index: map[string]int{}}
	counts := landing.Counts()
	y := 0.0

	d.add(Block{id: nav.SectionHome, Kind: KindSection, Rect: rect(width, y, heroHeight)})
	y += heroHeight

	// feature grid
	cols := columns(width)
	rows := int(math.Ceil(float64(counts.Features) / float64(cols)))
	gridTop := y + sectionPadding + headingHeight
	cardWidth := (width - float64(cols-1)*gridGap) / float64(cols)
	for i := 0; i < counts.Features; i++ {
		row, col := i/cols, i%cols
		d.add(Block{
			id:     FeatureID(i),
			Kind:   KindCard,
			Parent: nav.SectionFeatures,
			Delay:  i * 100,
			Rect: reveal.Rect{
				X:      float64(col) * (cardWidth + gridGap),
				Y:      gridTop + float64(row)*(featureCard+gridGap),
				Width:  cardWidth,
				Height: featureCard,
			},
		})
	}
	featuresHeight := 2*sectionPadding + headingHeight + stacked(rows, featureCard, gridGap)
	d.add(Block{id: nav.SectionFeatures, Kind: KindSection, Rect: rect(width, y, featuresHeight)})
	y += featuresHeight

	// detailed highlights
	row := float64(highlightRow)
	if width < BreakpointLarge {
		row = highlightStack
	}
	top := y + sectionPadding
	for i := 0; i < counts.Highlights; i++ {
		d.add(Block{
			id:     HighlightID(i),
			Kind:   KindCard,
			Parent: nav.SectionHighlights,
			Rect:   rect(width, top+float64(i)*(row+highlightGap), row),
		})
	}
	highlightsHeight := 2*sectionPadding + stacked(counts.Highlights, row, highlightGap)
	d.add(Block{id: nav.SectionHighlights, Kind: KindSection, Rect: rect(width, y, highlightsHeight)})
	y += highlightsHeight

	// faq
	top = y + sectionPadding + faqHeading
	for i := 0; i < counts.FAQs; i++ {
		d.add(Block{
			id:     FAQID(i),
			Kind:   KindCard,
			Parent: nav.SectionFAQ,
			Delay:  i * 100,
			Rect:   rect(width, top+float64(i)*(faqRow+faqGap), faqRow),
		})
	}
	faqHeight := 2*sectionPadding + faqHeading + stacked(counts.FAQs, faqRow, faqGap)
	d.add(Block{id: nav.SectionFAQ, Kind: KindSection, Rect: rect(width, y, faqHeight)})
	y += faqHeight

	// install
	top = y + sectionPadding + installHeading
	for i := 0; i < counts.Steps; i++ {
		d.add(Block{
			id:     StepID(i),
			Kind:   KindCard,
			Parent: nav.SectionInstall,
			Rect:   rect(width, top+float64(i)*(stepRow+stepGap), stepRow),
		})
	}
	installHeight := 2*sectionPadding + installHeading + stacked(counts.Steps, stepRow, stepGap) + installCTA
	d.add(Block{id: nav.SectionInstall, Kind: KindSection, Rect: rect(width, y, installHeight)})
	y += installHeight

	d.add(Block{id: "footer", Kind: KindSection, Rect: rect(width, y, footerHeight)})
	return d
}

func (d *Document) add(b Block) {
	d.index[b.id] = len(d.blocks)
	d.blocks = append(d.blocks, b)
}

// Blocks returns every block in insertion order.
func (d *Document) Blocks() []Block {
	out := make([]Block, len(d.blocks))
	copy(out, d.blocks)
	return out
}

// Block returns the block with id.
func (d *Document) Block(id string) (Block, bool) {
	i, ok := d.index[id]
	if !ok {
		return Block{}, false
	}
	return d.blocks[i], true
}

// ElementTop implements scroll.Document.
func (d *Document) ElementTop(id string) (float64, bool) {
	b, ok := d.Block(id)
	if !ok {
		return 0, false
	}
	return b.Rect.Top(), true
}

// Height returns the estimated document height.
func (d *Document) Height() float64 {
	var bottom float64
	for _, b := range d.blocks {
		bottom = max(bottom, b.Rect.Bottom())
	}
	return bottom
}

// FirstPaint returns the blocks visible in viewport before any scrolling. The hero is
// always included because it animates in on load.
func (d *Document) FirstPaint(viewport reveal.Rect) *reveal.Set {
	set := reveal.NewSet(nav.SectionHome)
	obs := reveal.NewObserver(viewport)
	defer obs.Disconnect()
	for _, b := range d.blocks {
		obs.Observe(b, b.Options(), func(id string) { set.Add(id) })
	}
	return set
}

func columns(width float64) int {
	switch {
	case width >= BreakpointLarge:
		return 3
	case width >= BreakpointMedium:
		return 2
	default:
		return 1
	}
}

func stacked(n int, size, gap float64) float64 {
	if n <= 0 {
		return 0
	}
	return float64(n)*size + float64(n-1)*gap
}

func rect(width, y, height float64) reveal.Rect {
	return reveal.Rect{X: 0, Y: y, Width: width, Height: height}
}
