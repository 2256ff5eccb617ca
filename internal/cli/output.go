package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pfrederiksen/hz19-events/internal/drift"
	"github.com/pfrederiksen/hz19-events/internal/query"
	"github.com/pfrederiksen/hz19-events/internal/region"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText     OutputFormat = "text"
	FormatJSON     OutputFormat = "json"
	FormatMarkdown OutputFormat = "markdown"
)

func parseFormat(s string) (OutputFormat, error) {
	switch OutputFormat(s) {
	case FormatText, FormatJSON, FormatMarkdown:
		return OutputFormat(s), nil
	default:
		return "", fmt.Errorf("invalid format: %s (must be 'text', 'json', or 'markdown')", s)
	}
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// eventsOutput is the JSON envelope for the events command.
type eventsOutput struct {
	Region region.Region `json:"region"`
	Search string        `json:"search,omitempty"`
	*query.Page
}

// WriteEvents writes one region's event page in the requested format.
func WriteEvents(w io.Writer, format OutputFormat, r region.Region, search string, page *query.Page) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, &eventsOutput{Region: r, Search: search, Page: page})
	case FormatMarkdown:
		return writeEventsMarkdown(w, r, search, page)
	default:
		return writeEventsText(w, r, search, page)
	}
}

func writeEventsText(w io.Writer, r region.Region, search string, page *query.Page) error {
	if page.TotalEvents == 0 {
		if search != "" {
			fmt.Fprintf(w, "No events matching %q in %s.\n", search, r.Label)
		} else {
			fmt.Fprintf(w, "No events found in %s.\n", r.Label)
		}
		return nil
	}

	fmt.Fprintf(w, "%s — page %d of %d (%d events)\n", r.Label, page.Page, page.TotalPages(), page.TotalEvents)
	for _, evt := range page.Events {
		fmt.Fprintf(w, "  %s: %s", evt.DateText, evt.Title)
		if evt.Venue != "" {
			fmt.Fprintf(w, " @ %s", evt.Venue)
		}
		fmt.Fprintln(w)
	}
	if page.HasMore {
		fmt.Fprintf(w, "\nUse --page %d to see more events.\n", page.Page+1)
	}
	return nil
}

func writeEventsMarkdown(w io.Writer, r region.Region, search string, page *query.Page) error {
	fmt.Fprintf(w, "# Electronic Music Events - %s\n", r.Label)
	if search != "" {
		fmt.Fprintf(w, "\nSearch: '%s'\n", search)
	}
	fmt.Fprintf(w, "\n**Page %d of %d** (%d total events)\n", page.Page, page.TotalPages(), page.TotalEvents)
	for _, evt := range page.Events {
		fmt.Fprintf(w, "\n%s\n\n---\n", evt.FormatMarkdown())
	}
	if page.HasMore {
		fmt.Fprintf(w, "\n*Use page=%d to see more events*\n", page.Page+1)
	}
	return nil
}

// WriteRegions writes the region list in the requested format.
func WriteRegions(w io.Writer, format OutputFormat, regions []region.Region) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, regions)
	case FormatMarkdown:
		fmt.Fprintln(w, "# Available Regions")
		fmt.Fprintln(w)
		for _, r := range regions {
			fmt.Fprintf(w, "- **%s** - %s\n", r.Key, r.Label)
		}
		return nil
	default:
		for _, r := range regions {
			fmt.Fprintf(w, "%-15s %s\n", r.Key, r.Label)
		}
		return nil
	}
}

// searchOutput is the JSON envelope for the search command.
type searchOutput struct {
	Term string `json:"term"`
	*query.SearchResult
}

// WriteSearch writes a cross-region search result in the requested format.
func WriteSearch(w io.Writer, format OutputFormat, term string, result *query.SearchResult) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, &searchOutput{Term: term, SearchResult: result})
	case FormatMarkdown:
		fmt.Fprintf(w, "# Search Results for '%s'\n\n", term)
		if len(result.Matches) == 0 {
			fmt.Fprintln(w, "No events found matching your search.")
		}
		for _, m := range result.Matches {
			fmt.Fprintf(w, "- **%s** - %s", m.Event.DateText, m.Event.Title)
			if m.Event.Venue != "" {
				fmt.Fprintf(w, " @ %s", m.Event.Venue)
			}
			fmt.Fprintf(w, " _(%s)_\n", m.RegionKey)
		}
		for _, f := range result.Failed {
			fmt.Fprintf(w, "\n**%s**: %s\n", f.RegionKey, f.Err)
		}
		return nil
	default:
		if len(result.Matches) == 0 {
			fmt.Fprintln(w, "No matching events found.")
		}
		for _, m := range result.Matches {
			fmt.Fprintf(w, "%s: %s: %s", m.RegionKey, m.Event.DateText, m.Event.Title)
			if m.Event.Venue != "" {
				fmt.Fprintf(w, " @ %s", m.Event.Venue)
			}
			fmt.Fprintln(w)
		}
		if len(result.Failed) > 0 {
			fmt.Fprintf(w, "\n%d region(s) could not be searched:\n", len(result.Failed))
			for _, f := range result.Failed {
				fmt.Fprintf(w, "  %s: %s\n", f.RegionKey, f.Err)
			}
		}
		return nil
	}
}

// driftOutput is the JSON envelope for the check-regions command.
type driftOutput struct {
	KnownRegions int `json:"known_regions"`
	*drift.Result
}

// WriteDrift writes a region drift check result in the requested format.
func WriteDrift(w io.Writer, format OutputFormat, knownRegions int, result *drift.Result) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, &driftOutput{KnownRegions: knownRegions, Result: result})
	case FormatMarkdown:
		fmt.Fprintln(w, "# Region Check Results")
		fmt.Fprintln(w)
		fmt.Fprintf(w, "**Known regions:** %d\n", knownRegions)
		fmt.Fprintf(w, "**Found on site:** %d\n", len(result.Found))
		if len(result.Added) > 0 {
			fmt.Fprintln(w, "\n## New regions found:")
			for _, id := range result.Added {
				fmt.Fprintf(w, "- %s\n", id)
			}
		}
		if len(result.Removed) > 0 {
			fmt.Fprintln(w, "\n## Regions no longer listed:")
			for _, id := range result.Removed {
				fmt.Fprintf(w, "- %s\n", id)
			}
		}
		if len(result.Added) == 0 && len(result.Removed) == 0 {
			fmt.Fprintln(w, "\nAll regions are up to date.")
		}
		return nil
	default:
		fmt.Fprintf(w, "Known regions: %d, found on site: %d\n", knownRegions, len(result.Found))
		for _, id := range result.Added {
			fmt.Fprintf(w, "  NEW: %s\n", id)
		}
		for _, id := range result.Removed {
			fmt.Fprintf(w, "  GONE: %s\n", id)
		}
		if len(result.Added) == 0 && len(result.Removed) == 0 {
			fmt.Fprintln(w, "All regions are up to date.")
		}
		return nil
	}
}
