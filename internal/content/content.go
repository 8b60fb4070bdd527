// Package content loads the static copy of the landing page: product metadata, feature
// grids, FAQ entries and install steps. Content is parsed once and never mutated.
package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed landing.yaml
var defaultLanding []byte

// ErrInvalid wraps every validation failure returned by Parse.
var ErrInvalid = errors.New("content: invalid landing content")

// Landing is the complete page copy.
type Landing struct {
	Product    Product
	Features   []Feature
	Highlights []Feature
	FAQs       []FAQ
	Steps      []Step
}

// Product describes the advertised userscript and its external links.
type Product struct {
	Name           string
	Title          string
	Tagline        string
	Description    string
	Keywords       []string
	RepositoryURL  string
	DownloadURL    string
	TargetSiteURL  string
	TargetSiteName string
	LicenseName    string
	LicenseURL     string
	CopyrightYear  int
}

// Feature is a card in the feature grid or a detailed highlight row.
type Feature struct {
	Icon        string
	Title       string
	Description string
}

// FAQ is one question with its sanitised HTML answer.
type FAQ struct {
	Question   string
	Answer     string // source markdown
	AnswerHTML string
}

// Step is one install instruction with optional action links.
type Step struct {
	Title    string
	Body     string
	BodyHTML string
	Links    []Link
}

// Link is an outbound link. The page never fetches or validates the target.
type Link struct {
	Label string
	URL   string
}

// Counts summarises how many entries each section holds.
type Counts struct {
	Features   int
	Highlights int
	FAQs       int
	Steps      int
}

// Counts returns entry counts per section.
func (l *Landing) Counts() Counts {
	return Counts{
		Features:   len(l.Features),
		Highlights: len(l.Highlights),
		FAQs:       len(l.FAQs),
		Steps:      len(l.Steps),
	}
}

type landingFile struct {
	Product    productFile   `yaml:"product"`
	Features   []featureFile `yaml:"features"`
	Highlights []featureFile `yaml:"highlights"`
	FAQs       []faqFile     `yaml:"faqs"`
	Steps      []stepFile    `yaml:"steps"`
}

type productFile struct {
	Name           string   `yaml:"name"`
	Title          string   `yaml:"title"`
	Tagline        string   `yaml:"tagline"`
	Description    string   `yaml:"description"`
	Keywords       []string `yaml:"keywords"`
	RepositoryURL  string   `yaml:"repository_url"`
	DownloadURL    string   `yaml:"download_url"`
	TargetSiteURL  string   `yaml:"target_site_url"`
	TargetSiteName string   `yaml:"target_site_name"`
	LicenseName    string   `yaml:"license_name"`
	LicenseURL     string   `yaml:"license_url"`
	CopyrightYear  int      `yaml:"copyright_year"`
}

type featureFile struct {
	Icon        string `yaml:"icon"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

type faqFile struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

type stepFile struct {
	Title string     `yaml:"title"`
	Body  string     `yaml:"body"`
	Links []linkFile `yaml:"links"`
}

type linkFile struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

// Default returns the content compiled into the binary.
func Default() (*Landing, error) {
	return Parse(defaultLanding)
}

// LoadFile reads landing content from a YAML file on disk.
func LoadFile(path string) (*Landing, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content %s: %w", path, err)
	}
	return Parse(raw)
}

// Load returns the content at path, or the embedded default when path is empty.
func Load(path string) (*Landing, error) {
	if strings.TrimSpace(path) == "" {
		return Default()
	}
	return LoadFile(path)
}

// Parse decodes, validates and renders landing content.
func Parse(raw []byte) (*Landing, error) {
	var file landingFile
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode content: %w", err)
	}
	if err := validate(file); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return build(file)
}

func build(file landingFile) (*Landing, error) {
	p := file.Product
	landing := &Landing{
		Product: Product{
			Name:           strings.TrimSpace(p.Name),
			Title:          strings.TrimSpace(firstNonEmpty(p.Title, p.Name)),
			Tagline:        strings.TrimSpace(p.Tagline),
			Description:    strings.TrimSpace(p.Description),
			Keywords:       append([]string(nil), p.Keywords...),
			RepositoryURL:  strings.TrimSpace(p.RepositoryURL),
			DownloadURL:    strings.TrimSpace(p.DownloadURL),
			TargetSiteURL:  strings.TrimSpace(p.TargetSiteURL),
			TargetSiteName: strings.TrimSpace(firstNonEmpty(p.TargetSiteName, p.TargetSiteURL)),
			LicenseName:    strings.TrimSpace(p.LicenseName),
			LicenseURL:     strings.TrimSpace(p.LicenseURL),
			CopyrightYear:  p.CopyrightYear,
		},
		Features:   convertFeatures(file.Features),
		Highlights: convertFeatures(file.Highlights),
		FAQs:       make([]FAQ, 0, len(file.FAQs)),
		Steps:      make([]Step, 0, len(file.Steps)),
	}

	for i, f := range file.FAQs {
		answer, err := renderMarkdown(f.Answer)
		if err != nil {
			return nil, fmt.Errorf("render faqs[%d].answer: %w", i, err)
		}
		landing.FAQs = append(landing.FAQs, FAQ{
			Question:   strings.TrimSpace(f.Question),
			Answer:     strings.TrimSpace(f.Answer),
			AnswerHTML: answer,
		})
	}
	for i, s := range file.Steps {
		body, err := renderMarkdown(s.Body)
		if err != nil {
			return nil, fmt.Errorf("render steps[%d].body: %w", i, err)
		}
		links := make([]Link, 0, len(s.Links))
		for _, l := range s.Links {
			links = append(links, Link{Label: strings.TrimSpace(l.Label), URL: strings.TrimSpace(l.URL)})
		}
		landing.Steps = append(landing.Steps, Step{
			Title:    strings.TrimSpace(s.Title),
			Body:     strings.TrimSpace(s.Body),
			BodyHTML: body,
			Links:    links,
		})
	}
	return landing, nil
}

func convertFeatures(in []featureFile) []Feature {
	out := make([]Feature, 0, len(in))
	for _, f := range in {
		out = append(out, Feature{
			Icon:        strings.TrimSpace(f.Icon),
			Title:       strings.TrimSpace(f.Title),
			Description: strings.TrimSpace(f.Description),
		})
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
