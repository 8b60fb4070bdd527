package seo

import (
	"encoding/json"
	"strings"

	"github.com/CreepsoOff/wplace-overlayttpro-website/internal/content"
)

// JSON marshals v to a compact JSON string. It returns an empty string on error.
func JSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

// SoftwareApplication describes the userscript as a free browser extension.
func SoftwareApplication(p content.Product, pageURL string) map[string]any {
	m := map[string]any{
		"@context":            "https://schema.org",
		"@type":               "SoftwareApplication",
		"name":                p.Name,
		"description":         p.Description,
		"applicationCategory": "BrowserApplication",
		"operatingSystem":     "Any (userscript manager)",
		"offers": map[string]any{
			"@type":         "Offer",
			"price":         "0",
			"priceCurrency": "USD",
		},
	}
	if pageURL != "" {
		m["url"] = pageURL
	}
	if p.DownloadURL != "" {
		m["downloadUrl"] = p.DownloadURL
	}
	if p.RepositoryURL != "" {
		m["sameAs"] = []string{p.RepositoryURL}
	}
	if p.LicenseURL != "" {
		m["license"] = p.LicenseURL
	}
	return m
}

// FAQPage builds schema.org FAQPage from the accordion entries. Answers use the
// markdown source, which is plain enough to read as text.
func FAQPage(faqs []content.FAQ) map[string]any {
	entities := make([]map[string]any, 0, len(faqs))
	for _, f := range faqs {
		entities = append(entities, map[string]any{
			"@type": "Question",
			"name":  f.Question,
			"acceptedAnswer": map[string]any{
				"@type": "Answer",
				"text":  strings.TrimSpace(f.Answer),
			},
		})
	}
	return map[string]any{
		"@context":   "https://schema.org",
		"@type":      "FAQPage",
		"mainEntity": entities,
	}
}
