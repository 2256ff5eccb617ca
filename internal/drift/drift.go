package drift

import (
	"context"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/pfrederiksen/hz19-events/internal/region"
	"github.com/pfrederiksen/hz19-events/internal/scraper"
)

// Result is the diff between the regions the live site advertises and the
// compiled-in registry. Empty Added and Removed is the common, healthy case.
type Result struct {
	// Found is every listing identifier advertised on the index page, in
	// document order, deduplicated.
	Found []string `json:"found"`
	// Added are identifiers on the site but not in the registry, sorted.
	Added []string `json:"added"`
	// Removed are registry identifiers no longer on the site, sorted.
	Removed []string `json:"removed"`
}

// Detector compares the live 19hz index page against the region registry.
type Detector struct {
	registry *region.Registry
	fetcher  scraper.Fetcher
	indexURL string
}

// New creates a Detector. An empty indexURL falls back to the site root,
// which is where 19hz links every region listing from.
func New(registry *region.Registry, fetcher scraper.Fetcher, indexURL string) *Detector {
	if indexURL == "" {
		indexURL = scraper.BaseURL
	}
	return &Detector{registry: registry, fetcher: fetcher, indexURL: indexURL}
}

// Check fetches the index page, extracts the listing identifiers it links
// to, and diffs them against the registry. Fetch failures propagate as
// *scraper.NetworkError; the diff itself never fails.
func (d *Detector) Check(ctx context.Context) (*Result, error) {
	markup, err := d.fetcher.Fetch(ctx, d.indexURL)
	if err != nil {
		return nil, err
	}

	found := extractListingIDs(markup)

	foundSet := make(map[string]bool, len(found))
	for _, id := range found {
		foundSet[id] = true
	}
	knownSet := make(map[string]bool, d.registry.Len())
	for _, id := range d.registry.SourceIDs() {
		knownSet[id] = true
	}

	result := &Result{Found: found, Added: []string{}, Removed: []string{}}
	for _, id := range found {
		if !knownSet[id] {
			result.Added = append(result.Added, id)
		}
	}
	for _, id := range d.registry.SourceIDs() {
		if !foundSet[id] {
			result.Removed = append(result.Removed, id)
		}
	}
	sort.Strings(result.Added)
	sort.Strings(result.Removed)
	return result, nil
}

// extractListingIDs pulls the listing page identifiers out of the index
// markup. Same tolerant discipline as the event extractor: positively match
// anchors that point at a listing page, ignore everything else, and return
// nothing (not an error) when the markup matches no cues.
func extractListingIDs(markup string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil
	}

	seen := make(map[string]bool)
	ids := make([]string, 0)
	doc.Find("a[href*='eventlisting']").Each(func(_ int, a *goquery.Selection) {
		href, ok := a.Attr("href")
		if !ok {
			return
		}
		id := sourceIDFromHref(href)
		if id == "" || seen[id] {
			return
		}
		seen[id] = true
		ids = append(ids, id)
	})
	return ids
}

// sourceIDFromHref reduces an href to the bare listing filename: last path
// segment, query string stripped.
func sourceIDFromHref(href string) string {
	segments := strings.Split(href, "/")
	id := segments[len(segments)-1]
	if q := strings.Index(id, "?"); q >= 0 {
		id = id[:q]
	}
	return id
}
