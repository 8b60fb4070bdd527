package views

import (
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/CreepsoOff/wplace-overlayttpro-website/internal/content"
	"github.com/CreepsoOff/wplace-overlayttpro-website/internal/faq"
)

// State is the interactive page state carried in the URL when JavaScript is off.
type State struct {
	MenuOpen bool
	OpenFAQ  []int
}

// ParseState reads menu=open and repeated faq=<i> parameters. Malformed or negative
// indices are ignored.
func ParseState(q url.Values) State {
	s := State{MenuOpen: strings.EqualFold(q.Get("menu"), "open")}
	seen := map[int]bool{}
	for _, raw := range q["faq"] {
		for _, part := range strings.Split(raw, ",") {
			i, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil || i < 0 || seen[i] {
				continue
			}
			seen[i] = true
			s.OpenFAQ = append(s.OpenFAQ, i)
		}
	}
	sort.Ints(s.OpenFAQ)
	return s
}

// IsOpen reports whether FAQ entry i is expanded.
func (s State) IsOpen(i int) bool {
	for _, j := range s.OpenFAQ {
		if j == i {
			return true
		}
	}
	return false
}

// WithMenu returns a copy with the menu flag set.
func (s State) WithMenu(open bool) State {
	s.OpenFAQ = append([]int(nil), s.OpenFAQ...)
	s.MenuOpen = open
	return s
}

// ToggleFAQ returns a copy with entry i flipped and every other entry untouched.
func (s State) ToggleFAQ(i int) State {
	out := State{MenuOpen: s.MenuOpen}
	found := false
	for _, j := range s.OpenFAQ {
		if j == i {
			found = true
			continue
		}
		out.OpenFAQ = append(out.OpenFAQ, j)
	}
	if !found {
		out.OpenFAQ = append(out.OpenFAQ, i)
		sort.Ints(out.OpenFAQ)
	}
	return out
}

// Query encodes the state. The zero state encodes to "".
func (s State) Query() string {
	q := url.Values{}
	if s.MenuOpen {
		q.Set("menu", "open")
	}
	for _, i := range s.OpenFAQ {
		q.Add("faq", strconv.Itoa(i))
	}
	return q.Encode()
}

// Href links to the page in state s, scrolled to anchor when non-empty.
func (s State) Href(anchor string) string {
	href := "/"
	if q := s.Query(); q != "" {
		href += "?" + q
	}
	if anchor != "" {
		href += "#" + anchor
	}
	return href
}

// Accordion builds the FAQ accordion for faqs with the entries listed in s open.
func (s State) Accordion(faqs []content.FAQ) *faq.Accordion {
	entries := make([]faq.Entry, len(faqs))
	for i, f := range faqs {
		entries[i] = faq.Entry{Question: f.Question, Answer: f.AnswerHTML}
	}
	acc := faq.New(entries...)
	acc.Restore(s.OpenFAQ)
	return acc
}
