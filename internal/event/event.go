package event

import (
	"fmt"
	"sort"
	"strings"
)

// Event represents one electronic music listing extracted from a region's
// event page. All text fields hold the source's wording verbatim; in
// particular DateText is never parsed into a structured date.
type Event struct {
	Region     string            `json:"region"`
	DateText   string            `json:"date_text"`
	TimeText   string            `json:"time_text,omitempty"`
	Title      string            `json:"title"`
	Venue      string            `json:"venue,omitempty"`
	Genres     []string          `json:"genres,omitempty"`
	Price      string            `json:"price,omitempty"`
	Age        string            `json:"age,omitempty"`
	Organizers []string          `json:"organizers,omitempty"`
	URL        string            `json:"url,omitempty"`
	Links      map[string]string `json:"links,omitempty"`

	// searchText is the lowercase concatenation of every field, used only
	// by Matches. It is never serialized or exposed.
	searchText string
}

// New returns a copy of e with its search text derived from all field text.
// Extractors must construct events through New so that Matches works.
func New(e Event) *Event {
	out := e
	out.searchText = buildSearchText(&out)
	return &out
}

// Matches reports whether the event's text contains term, ignoring case.
// An empty term matches every event.
func (e *Event) Matches(term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	return strings.Contains(e.searchText, term)
}

func buildSearchText(e *Event) string {
	parts := make([]string, 0, 8+len(e.Genres)+len(e.Organizers)+len(e.Links))
	parts = append(parts, e.DateText, e.TimeText, e.Title, e.Venue, e.Price, e.Age)
	parts = append(parts, e.Genres...)
	parts = append(parts, e.Organizers...)
	linkTexts := make([]string, 0, len(e.Links))
	for text := range e.Links {
		linkTexts = append(linkTexts, text)
	}
	sort.Strings(linkTexts)
	parts = append(parts, linkTexts...)

	kept := parts[:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.ToLower(strings.Join(kept, " "))
}

// FormatMarkdown renders the event as a markdown block.
func (e *Event) FormatMarkdown() string {
	lines := []string{
		fmt.Sprintf("## %s", e.Title),
		fmt.Sprintf("**Date:** %s", e.DateText),
	}
	if e.TimeText != "" {
		lines = append(lines, fmt.Sprintf("**Time:** %s", e.TimeText))
	}
	if e.Venue != "" {
		lines = append(lines, fmt.Sprintf("**Venue:** %s", e.Venue))
	}
	if len(e.Genres) > 0 {
		lines = append(lines, fmt.Sprintf("**Genres:** %s", strings.Join(e.Genres, ", ")))
	}
	if e.Price != "" {
		lines = append(lines, fmt.Sprintf("**Price:** %s", e.Price))
	}
	if e.Age != "" {
		lines = append(lines, fmt.Sprintf("**Age:** %s", e.Age))
	}
	if len(e.Organizers) > 0 {
		lines = append(lines, fmt.Sprintf("**Organizers:** %s", strings.Join(e.Organizers, ", ")))
	}
	if e.URL != "" {
		lines = append(lines, fmt.Sprintf("**Link:** %s", e.URL))
	}
	if len(e.Links) > 0 {
		lines = append(lines, "**Additional Links:**")
		texts := make([]string, 0, len(e.Links))
		for text := range e.Links {
			texts = append(texts, text)
		}
		sort.Strings(texts)
		for _, text := range texts {
			lines = append(lines, fmt.Sprintf("  - [%s](%s)", text, e.Links[text]))
		}
	}
	return strings.Join(lines, "\n")
}
