// Package scroll resolves in-page navigation: it closes the mobile menu and scrolls the
// requested section to just below the fixed navigation bar.
package scroll

// NavHeight is the height of the fixed navigation bar in pixels.
const NavHeight = 80

// Behavior selects how the scroll position changes.
type Behavior string

const (
	// Smooth animates to the target position.
	Smooth Behavior = "smooth"
	// Instant jumps to the target position.
	Instant Behavior = "instant"
)

// Document looks up the document-relative top offset of an element by id.
type Document interface {
	ElementTop(id string) (float64, bool)
}

// Scroller moves the viewport.
type Scroller interface {
	ScrollTo(y float64, behavior Behavior)
}

// Menu is an overlay that has to be dismissed before scrolling.
type Menu interface {
	Close()
}

// Navigator wires a document, a scroller and an optional mobile menu together.
type Navigator struct {
	Document  Document
	Scroller  Scroller
	Menu      Menu
	NavHeight float64
}

// NewNavigator returns a Navigator using the default navigation bar height.
func NewNavigator(doc Document, scroller Scroller, menu Menu) *Navigator {
	return &Navigator{Document: doc, Scroller: scroller, Menu: menu, NavHeight: NavHeight}
}

// NavigateTo closes the menu and scrolls to the section with the given id. It reports
// whether a scroll was issued; unknown ids are a no-op.
func (n *Navigator) NavigateTo(id string) bool {
	if n.Menu != nil {
		n.Menu.Close()
	}
	if n.Document == nil || n.Scroller == nil {
		return false
	}
	top, ok := n.Document.ElementTop(id)
	if !ok {
		return false
	}
	n.Scroller.ScrollTo(Target(top, n.NavHeight), Smooth)
	return true
}

// Target returns the scroll position that puts an element at top just under a bar of
// navHeight. Positions above the document start clamp to zero.
func Target(top, navHeight float64) float64 {
	y := top - navHeight
	if y < 0 {
		return 0
	}
	return y
}

// Position is a Scroller that records the last requested position.
type Position struct {
	Y        float64
	Behavior Behavior
	Moves    int
}

// ScrollTo implements Scroller.
func (p *Position) ScrollTo(y float64, behavior Behavior) {
	p.Y = y
	p.Behavior = behavior
	p.Moves++
}
