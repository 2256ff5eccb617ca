package scraper

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pfrederiksen/hz19-events/internal/event"
	"github.com/pfrederiksen/hz19-events/internal/region"
)

// Extractor turns raw listing markup into an ordered sequence of event
// records. Implementations must preserve source order, default missing
// fields to empty strings, and return an empty slice (not an error) when no
// event blocks can be matched.
type Extractor interface {
	Extract(markup string, r region.Region) ([]*event.Event, error)
}

// minEventCells is the smallest number of table cells a row can have and
// still be an event row. Header rows, spacers, and ads have fewer.
const minEventCells = 6

// Cue patterns for the hand-authored 19hz listing tables. The markup has no
// per-field tags, so rows are matched positively on structure: a date cell
// starting with a weekday abbreviation, a title/venue cell split on "@",
// and so on. Rows that don't match the cues are skipped, never fatal.
var (
	datePattern      = regexp.MustCompile(`(Mon|Tue|Wed|Thu|Fri|Sat|Sun)[^\n]*`)
	timePattern      = regexp.MustCompile(`\(([^)]+)\)`)
	pricePattern     = regexp.MustCompile(`(?i)\$[\d.]+|free|donation`)
	agePattern       = regexp.MustCompile(`(?i)\b(21\+|18\+|All ages|\d+\+)`)
	venueCityPattern = regexp.MustCompile(`\([^)]+\)$`)
	spacePattern     = regexp.MustCompile(`\s+`)
)

// ListingExtractor parses the 19hz region listing table layout.
type ListingExtractor struct {
	baseURL string
}

// NewListingExtractor creates an extractor that resolves relative links
// against baseURL.
func NewListingExtractor(baseURL string) *ListingExtractor {
	if baseURL == "" {
		baseURL = BaseURL
	}
	return &ListingExtractor{baseURL: strings.TrimRight(baseURL, "/")}
}

// Extract walks every table row in the markup and emits one event per row
// matching the listing cues, in document order.
func (x *ListingExtractor) Extract(markup string, r region.Region) ([]*event.Event, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	events := make([]*event.Event, 0)
	doc.Find("tr").Each(func(_ int, row *goquery.Selection) {
		if evt := x.extractRow(row, r); evt != nil {
			events = append(events, evt)
		}
	})
	return events, nil
}

// extractRow parses a single table row, returning nil when the row does not
// match the event cues.
func (x *ListingExtractor) extractRow(row *goquery.Selection, r region.Region) *event.Event {
	cells := row.Find("td")
	if cells.Length() < minEventCells {
		return nil
	}

	dateText, timeText := extractDateTime(cellText(cells.Eq(0)))
	if dateText == "" {
		// No weekday-prefixed date means this isn't an event row.
		return nil
	}

	title, url := x.extractTitle(cells.Eq(1))
	venue := extractVenue(cellText(cells.Eq(1)))
	genres := splitList(cellText(cells.Eq(2)))
	price, age := extractPriceAge(cellText(cells.Eq(3)))
	organizers := splitList(cellText(cells.Eq(4)))
	links := x.extractLinks(cells.Eq(5))

	return event.New(event.Event{
		Region:     r.Key,
		DateText:   dateText,
		TimeText:   timeText,
		Title:      title,
		Venue:      venue,
		Genres:     genres,
		Price:      price,
		Age:        age,
		Organizers: organizers,
		URL:        url,
		Links:      links,
	})
}

// cellText returns the cell's text with tags stripped, entities decoded, and
// intra-field whitespace collapsed to single spaces.
func cellText(sel *goquery.Selection) string {
	return strings.TrimSpace(spacePattern.ReplaceAllString(sel.Text(), " "))
}

// extractDateTime pulls the verbatim date text and the parenthesized time
// from the date/time cell. An empty date marks the row as a non-event.
func extractDateTime(text string) (dateText, timeText string) {
	dateText = datePattern.FindString(text)
	if dateText == "" {
		return "", ""
	}
	if m := timePattern.FindStringSubmatch(text); m != nil {
		timeText = m[1]
	}
	return dateText, timeText
}

// extractTitle pulls the event title and primary URL from the title/venue
// cell. The first anchor wins; otherwise the text before "@" is the title.
func (x *ListingExtractor) extractTitle(cell *goquery.Selection) (title, url string) {
	link := cell.Find("a").First()
	if link.Length() > 0 {
		href, _ := link.Attr("href")
		return cellText(link), x.absoluteURL(href)
	}

	text := cellText(cell)
	if at := strings.Index(text, "@"); at >= 0 {
		text = text[:at]
	}
	return strings.TrimSpace(text), ""
}

// extractVenue pulls the venue from the title/venue cell: the text after
// "@", with any trailing "(City)" qualifier removed.
func extractVenue(text string) string {
	at := strings.Index(text, "@")
	if at < 0 {
		return ""
	}
	venue := strings.TrimSpace(text[at+1:])
	venue = venueCityPattern.ReplaceAllString(venue, "")
	return strings.TrimSpace(venue)
}

// extractPriceAge pulls the price and age restriction from the cost cell.
// Either may be absent.
func extractPriceAge(text string) (price, age string) {
	price = pricePattern.FindString(text)
	age = agePattern.FindString(text)
	return price, age
}

// splitList splits a comma-separated cell into trimmed, non-empty entries.
func splitList(text string) []string {
	var out []string
	for _, part := range strings.Split(text, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// extractLinks pulls every anchor in the links cell into a text → URL map.
func (x *ListingExtractor) extractLinks(cell *goquery.Selection) map[string]string {
	links := make(map[string]string)
	cell.Find("a").Each(func(_ int, a *goquery.Selection) {
		text := cellText(a)
		href, _ := a.Attr("href")
		if url := x.absoluteURL(href); text != "" && url != "" {
			links[text] = url
		}
	})
	if len(links) == 0 {
		return nil
	}
	return links
}

// absoluteURL resolves a site-relative href against the base URL.
func (x *ListingExtractor) absoluteURL(href string) string {
	switch {
	case href == "":
		return ""
	case strings.HasPrefix(href, "http"):
		return href
	case strings.HasPrefix(href, "/"):
		return x.baseURL + href
	default:
		return href
	}
}
