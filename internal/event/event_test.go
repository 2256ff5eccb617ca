package event

import (
	"encoding/json"
	"strings"
	"testing"
)

func sampleEvent() *Event {
	return New(Event{
		Region:     "bayarea",
		DateText:   "Fri: Aug 29",
		TimeText:   "10pm-4am",
		Title:      "Katabatik: Subterranean Frequencies",
		Venue:      "Public Works",
		Genres:     []string{"techno", "industrial"},
		Price:      "$20",
		Age:        "21+",
		Organizers: []string{"Katabatik", "Surface Tension"},
		URL:        "https://ra.co/events/2101933",
		Links:      map[string]string{"FB Event": "https://fb.me/e/Ab3dE"},
	})
}

func TestMatches(t *testing.T) {
	evt := sampleEvent()

	tests := []struct {
		name     string
		term     string
		expected bool
	}{
		{name: "title match", term: "katabatik", expected: true},
		{name: "case-insensitive", term: "SUBTERRANEAN", expected: true},
		{name: "venue match", term: "public works", expected: true},
		{name: "genre match", term: "Techno", expected: true},
		{name: "organizer match", term: "surface tension", expected: true},
		{name: "link text match", term: "fb event", expected: true},
		{name: "date text match", term: "aug 29", expected: true},
		{name: "empty term matches all", term: "", expected: true},
		{name: "whitespace term matches all", term: "   ", expected: true},
		{name: "no match", term: "dubstep", expected: false},
		{name: "url not searchable", term: "ra.co", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := evt.Matches(tt.term); got != tt.expected {
				t.Errorf("Matches(%q) = %v, expected %v", tt.term, got, tt.expected)
			}
		})
	}
}

func TestMatchesWithMissingFields(t *testing.T) {
	evt := New(Event{Region: "la", DateText: "Sat: Aug 30", Title: "Warehouse TBA"})

	if !evt.Matches("warehouse") {
		t.Error("expected title match on sparse event")
	}
	if evt.Matches("techno") {
		t.Error("expected no match for absent text")
	}
}

func TestSearchTextNotSerialized(t *testing.T) {
	data, err := json.Marshal(sampleEvent())
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if strings.Contains(strings.ToLower(string(data)), "searchtext") {
		t.Error("search text must not appear in serialized output")
	}
}

func TestFormatMarkdown(t *testing.T) {
	md := sampleEvent().FormatMarkdown()

	for _, want := range []string{
		"## Katabatik: Subterranean Frequencies",
		"**Date:** Fri: Aug 29",
		"**Time:** 10pm-4am",
		"**Venue:** Public Works",
		"**Genres:** techno, industrial",
		"**Price:** $20",
		"**Age:** 21+",
		"**Organizers:** Katabatik, Surface Tension",
		"**Link:** https://ra.co/events/2101933",
		"- [FB Event](https://fb.me/e/Ab3dE)",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q:\n%s", want, md)
		}
	}
}

func TestFormatMarkdownOmitsEmptyFields(t *testing.T) {
	md := New(Event{Region: "la", DateText: "Sat: Aug 30", Title: "Warehouse TBA"}).FormatMarkdown()

	for _, absent := range []string{"**Time:**", "**Venue:**", "**Price:**", "**Age:**", "**Genres:**", "**Organizers:**", "**Link"} {
		if strings.Contains(md, absent) {
			t.Errorf("markdown should omit %q for sparse event:\n%s", absent, md)
		}
	}
}
