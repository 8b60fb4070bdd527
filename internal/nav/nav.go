package nav

import (
	"strings"
)

// Section ids used as in-page anchors.
const (
	SectionHome       = "home"
	SectionFeatures   = "features"
	SectionHighlights = "highlights"
	SectionFAQ        = "faq"
	SectionInstall    = "install"
)

// Sections lists every in-page anchor in document order. Highlights has no nav entry
// but is still a valid navigation target.
var Sections = []string{SectionHome, SectionFeatures, SectionHighlights, SectionFAQ, SectionInstall}

// IsSection reports whether id names a page section.
func IsSection(id string) bool {
	id = normalize(id)
	for _, s := range Sections {
		if s == id {
			return true
		}
	}
	return false
}

// Normalize lower-cases id and strips a leading "#".
func Normalize(id string) string { return normalize(id) }

// Item represents a navigation entry pointing at a page section.
type Item struct {
	ID    string // section id, e.g. "features"
	Label string
}

// RenderedItem is a view model for templates.
type RenderedItem struct {
	ID     string
	Href   string // no-JS fallback route
	Anchor string // "#features"
	Label  string
	Active bool
}

// Main is the primary navigation definition.
var Main = []Item{
	{ID: SectionHome, Label: "Home"},
	{ID: SectionFeatures, Label: "Features"},
	{ID: SectionFAQ, Label: "FAQ"},
	{ID: SectionInstall, Label: "Install"},
}

// Build renders navigation items, marking the current section active.
func Build(current string) []RenderedItem {
	current = normalize(current)
	if current == "" {
		current = SectionHome
	}
	items := make([]RenderedItem, 0, len(Main))
	for _, it := range Main {
		items = append(items, RenderedItem{
			ID:     it.ID,
			Href:   Href(it.ID),
			Anchor: "#" + it.ID,
			Label:  it.Label,
			Active: it.ID == current,
		})
	}
	return items
}

// Href returns the server route that navigates to the section without JavaScript.
func Href(id string) string {
	return "/go/" + normalize(id)
}

func normalize(id string) string {
	id = strings.TrimSpace(id)
	id = strings.TrimPrefix(id, "#")
	return strings.ToLower(id)
}
