package content

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/CreepsoOff/wplace-overlayttpro-website/internal/icons"
)

// FieldError names the offending field of an invalid content file.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

func validate(file landingFile) error {
	var result *multierror.Error
	fail := func(field, reason string) {
		result = multierror.Append(result, &FieldError{Field: field, Reason: reason})
	}
	required := func(field, value string) {
		if strings.TrimSpace(value) == "" {
			fail(field, "is required")
		}
	}
	link := func(field, value string) {
		if strings.TrimSpace(value) == "" {
			fail(field, "is required")
			return
		}
		if !isAbsoluteURL(value) {
			fail(field, "must be an absolute http(s) URL")
		}
	}

	p := file.Product
	required("product.name", p.Name)
	required("product.description", p.Description)
	link("product.repository_url", p.RepositoryURL)
	link("product.download_url", p.DownloadURL)
	link("product.target_site_url", p.TargetSiteURL)
	if p.LicenseURL != "" && !isAbsoluteURL(p.LicenseURL) {
		fail("product.license_url", "must be an absolute http(s) URL")
	}
	if p.CopyrightYear < 0 {
		fail("product.copyright_year", "must not be negative")
	}

	checkFeatures := func(section string, features []featureFile) {
		if len(features) == 0 {
			fail(section, "must contain at least one entry")
		}
		for i, f := range features {
			prefix := fmt.Sprintf("%s[%d]", section, i)
			required(prefix+".title", f.Title)
			required(prefix+".description", f.Description)
			if !icons.Has(strings.TrimSpace(f.Icon)) {
				fail(prefix+".icon", fmt.Sprintf("references unknown icon %q", f.Icon))
			}
		}
	}
	checkFeatures("features", file.Features)
	checkFeatures("highlights", file.Highlights)

	if len(file.FAQs) == 0 {
		fail("faqs", "must contain at least one entry")
	}
	for i, f := range file.FAQs {
		required(fmt.Sprintf("faqs[%d].question", i), f.Question)
		required(fmt.Sprintf("faqs[%d].answer", i), f.Answer)
	}

	if len(file.Steps) == 0 {
		fail("steps", "must contain at least one entry")
	}
	for i, s := range file.Steps {
		required(fmt.Sprintf("steps[%d].title", i), s.Title)
		for j, l := range s.Links {
			required(fmt.Sprintf("steps[%d].links[%d].label", i, j), l.Label)
			link(fmt.Sprintf("steps[%d].links[%d].url", i, j), l.URL)
		}
	}

	return result.ErrorOrNil()
}

func isAbsoluteURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
