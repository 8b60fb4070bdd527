package seo

import (
	"strings"

	"golang.org/x/text/language"

	"github.com/CreepsoOff/wplace-overlayttpro-website/internal/content"
)

type OpenGraph struct {
	Title       string
	Description string
	Type        string
	URL         string
	SiteName    string
	Locale      string
}

type Twitter struct {
	Card        string
	Title       string
	Description string
}

// Meta is everything the document head needs.
type Meta struct {
	Lang        string
	Title       string
	Description string
	Keywords    []string
	Canonical   string
	OG          OpenGraph
	Twitter     Twitter
	JSONLD      []string
}

// KeywordList joins keywords for the meta tag.
func (m Meta) KeywordList() string {
	return strings.Join(m.Keywords, ", ")
}

// ForLanding builds head metadata for the landing page served at baseURL.
func ForLanding(landing *content.Landing, baseURL string, lang language.Tag) Meta {
	p := landing.Product
	canonical := strings.TrimRight(baseURL, "/") + "/"
	title := p.Title
	if title == "" {
		title = p.Name
	}
	return Meta{
		Lang:        lang.String(),
		Title:       title,
		Description: p.Description,
		Keywords:    append([]string(nil), p.Keywords...),
		Canonical:   canonical,
		OG: OpenGraph{
			Title:       title,
			Description: p.Description,
			Type:        "website",
			URL:         canonical,
			SiteName:    p.Name,
			Locale:      ogLocale(lang),
		},
		Twitter: Twitter{
			Card:        "summary",
			Title:       title,
			Description: p.Description,
		},
		JSONLD: []string{
			JSON(SoftwareApplication(p, canonical)),
			JSON(FAQPage(landing.FAQs)),
		},
	}
}

// ogLocale renders a tag as language_REGION, the form Open Graph expects.
func ogLocale(tag language.Tag) string {
	base, _ := tag.Base()
	region, conf := tag.Region()
	if conf != language.Exact {
		return base.String()
	}
	return base.String() + "_" + region.String()
}
