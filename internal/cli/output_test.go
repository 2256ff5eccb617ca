package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/pfrederiksen/hz19-events/internal/drift"
	"github.com/pfrederiksen/hz19-events/internal/event"
	"github.com/pfrederiksen/hz19-events/internal/query"
	"github.com/pfrederiksen/hz19-events/internal/region"
)

var outputRegion = region.Region{Key: "bayarea", SourceID: "eventlisting_BayArea.php", Label: "Bay Area"}

func outputEvents() []*event.Event {
	return []*event.Event{
		event.New(event.Event{Region: "bayarea", DateText: "Fri: Aug 29", Title: "Warehouse Techno", Venue: "Public Works"}),
		event.New(event.Event{Region: "bayarea", DateText: "Sat: Aug 30", Title: "Ambient Tea"}),
	}
}

func TestParseFormat(t *testing.T) {
	for _, valid := range []string{"text", "json", "markdown"} {
		if _, err := parseFormat(valid); err != nil {
			t.Errorf("parseFormat(%q) failed: %v", valid, err)
		}
	}
	if _, err := parseFormat("xml"); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestWriteEventsText(t *testing.T) {
	var buf bytes.Buffer
	page := query.Paginate(outputEvents(), 1, 1)

	if err := WriteEvents(&buf, FormatText, outputRegion, "", page); err != nil {
		t.Fatalf("WriteEvents failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Bay Area", "page 1 of 2", "Warehouse Techno @ Public Works", "--page 2"} {
		if !strings.Contains(out, want) {
			t.Errorf("text output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteEventsTextEmpty(t *testing.T) {
	var buf bytes.Buffer
	page := query.Paginate(nil, 1, 50)

	if err := WriteEvents(&buf, FormatText, outputRegion, "techno", page); err != nil {
		t.Fatalf("WriteEvents failed: %v", err)
	}
	if !strings.Contains(buf.String(), `No events matching "techno"`) {
		t.Errorf("unexpected empty output: %s", buf.String())
	}
}

func TestWriteEventsJSON(t *testing.T) {
	var buf bytes.Buffer
	page := query.Paginate(outputEvents(), 1, 50)

	if err := WriteEvents(&buf, FormatJSON, outputRegion, "", page); err != nil {
		t.Fatalf("WriteEvents failed: %v", err)
	}

	var decoded struct {
		Region      region.Region  `json:"region"`
		Events      []*event.Event `json:"events"`
		TotalEvents int            `json:"total_events"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Region.Key != "bayarea" || len(decoded.Events) != 2 || decoded.TotalEvents != 2 {
		t.Errorf("unexpected decoded output: %+v", decoded)
	}
}

func TestWriteEventsMarkdown(t *testing.T) {
	var buf bytes.Buffer
	page := query.Paginate(outputEvents(), 1, 50)

	if err := WriteEvents(&buf, FormatMarkdown, outputRegion, "techno", page); err != nil {
		t.Fatalf("WriteEvents failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"# Electronic Music Events - Bay Area", "Search: 'techno'", "## Warehouse Techno", "**Venue:** Public Works"} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteRegions(t *testing.T) {
	regions := []region.Region{outputRegion, {Key: "la", SourceID: "eventlisting_LosAngeles.php", Label: "Los Angeles"}}

	var text bytes.Buffer
	if err := WriteRegions(&text, FormatText, regions); err != nil {
		t.Fatalf("WriteRegions text failed: %v", err)
	}
	if !strings.Contains(text.String(), "bayarea") || !strings.Contains(text.String(), "Los Angeles") {
		t.Errorf("unexpected text output: %s", text.String())
	}

	var js bytes.Buffer
	if err := WriteRegions(&js, FormatJSON, regions); err != nil {
		t.Fatalf("WriteRegions json failed: %v", err)
	}
	var decoded []region.Region
	if err := json.Unmarshal(js.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded) != 2 || decoded[0].Key != "bayarea" {
		t.Errorf("unexpected decoded regions: %+v", decoded)
	}
}

func TestWriteSearchReportsFailures(t *testing.T) {
	result := &query.SearchResult{
		Matches: []query.Match{
			{RegionKey: "bayarea", Event: outputEvents()[0]},
		},
		Failed: []query.RegionFailure{
			{RegionKey: "la", Err: "fetching: connection refused"},
		},
	}

	var buf bytes.Buffer
	if err := WriteSearch(&buf, FormatText, "techno", result); err != nil {
		t.Fatalf("WriteSearch failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"bayarea: Fri: Aug 29: Warehouse Techno", "1 region(s) could not be searched", "la: fetching: connection refused"} {
		if !strings.Contains(out, want) {
			t.Errorf("search output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteDrift(t *testing.T) {
	result := &drift.Result{
		Found:   []string{"eventlisting_BayArea.php", "eventlisting_NYC.php"},
		Added:   []string{"eventlisting_NYC.php"},
		Removed: []string{"eventlisting_Seattle.php"},
	}

	var buf bytes.Buffer
	if err := WriteDrift(&buf, FormatText, 18, result); err != nil {
		t.Fatalf("WriteDrift failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Known regions: 18", "found on site: 2", "NEW: eventlisting_NYC.php", "GONE: eventlisting_Seattle.php"} {
		if !strings.Contains(out, want) {
			t.Errorf("drift output missing %q:\n%s", want, out)
		}
	}

	var clean bytes.Buffer
	if err := WriteDrift(&clean, FormatText, 18, &drift.Result{Found: []string{"eventlisting_BayArea.php"}}); err != nil {
		t.Fatalf("WriteDrift failed: %v", err)
	}
	if !strings.Contains(clean.String(), "All regions are up to date.") {
		t.Errorf("expected up-to-date message, got: %s", clean.String())
	}
}
