// Package faq holds the open/closed state of FAQ entries. Entries toggle independently;
// opening one never closes another.
package faq

import (
	"errors"
	"time"
)

// TransitionDuration is how long the answer region takes to expand or collapse.
const TransitionDuration = 300 * time.Millisecond

// ErrEntryNotFound is returned for an index outside the accordion.
var ErrEntryNotFound = errors.New("faq: entry not found")

// Entry is one question/answer pair with its own open flag.
type Entry struct {
	Question string
	Answer   string
	open     bool
}

// IsOpen reports whether the answer is expanded.
func (e *Entry) IsOpen() bool { return e.open }

// Toggle flips the entry and returns the new state.
func (e *Entry) Toggle() bool {
	e.open = !e.open
	return e.open
}

// Accordion is an ordered list of independently expandable entries.
type Accordion struct {
	entries []Entry
}

// New builds an accordion with every entry closed.
func New(entries ...Entry) *Accordion {
	a := &Accordion{entries: make([]Entry, len(entries))}
	for i, e := range entries {
		a.entries[i] = Entry{Question: e.Question, Answer: e.Answer}
	}
	return a
}

// Len returns the number of entries.
func (a *Accordion) Len() int { return len(a.entries) }

// Entry returns a copy of entry i.
func (a *Accordion) Entry(i int) (Entry, error) {
	if i < 0 || i >= len(a.entries) {
		return Entry{}, ErrEntryNotFound
	}
	return a.entries[i], nil
}

// Toggle flips entry i and returns its new state.
func (a *Accordion) Toggle(i int) (bool, error) {
	if i < 0 || i >= len(a.entries) {
		return false, ErrEntryNotFound
	}
	return a.entries[i].Toggle(), nil
}

// IsOpen reports whether entry i is expanded. Unknown indexes are closed.
func (a *Accordion) IsOpen(i int) bool {
	if i < 0 || i >= len(a.entries) {
		return false
	}
	return a.entries[i].open
}

// Restore opens exactly the listed entries. Unknown indexes are ignored.
func (a *Accordion) Restore(open []int) {
	for i := range a.entries {
		a.entries[i].open = false
	}
	for _, i := range open {
		if i >= 0 && i < len(a.entries) {
			a.entries[i].open = true
		}
	}
}

// Open returns the indexes of expanded entries in order.
func (a *Accordion) Open() []int {
	var out []int
	for i, e := range a.entries {
		if e.open {
			out = append(out, i)
		}
	}
	return out
}

// HeightTransition describes the answer region animation.
type HeightTransition struct {
	From     float64
	To       float64
	Duration time.Duration
}

// Transition returns the animation for entry i given the answer's natural height, based
// on the entry's current state: open animates 0 → natural, closed animates natural → 0.
func (a *Accordion) Transition(i int, natural float64) (HeightTransition, error) {
	if i < 0 || i >= len(a.entries) {
		return HeightTransition{}, ErrEntryNotFound
	}
	if a.entries[i].open {
		return HeightTransition{From: 0, To: natural, Duration: TransitionDuration}, nil
	}
	return HeightTransition{From: natural, To: 0, Duration: TransitionDuration}, nil
}
