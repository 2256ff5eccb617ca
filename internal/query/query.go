package query

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pfrederiksen/hz19-events/internal/event"
	"github.com/pfrederiksen/hz19-events/internal/region"
	"github.com/pfrederiksen/hz19-events/internal/scraper"
)

// DefaultMaxResults caps SearchAllRegions when the caller doesn't say.
const DefaultMaxResults = 10

// Service answers event queries by wiring the region registry, a page
// fetcher, and an extractor together. It holds no mutable state, so
// concurrent calls are safe.
type Service struct {
	registry  *region.Registry
	fetcher   scraper.Fetcher
	extractor scraper.Extractor
	baseURL   string
	logger    zerolog.Logger
}

// New creates a Service. An empty baseURL falls back to the 19hz site root.
func New(registry *region.Registry, fetcher scraper.Fetcher, extractor scraper.Extractor, baseURL string, logger zerolog.Logger) *Service {
	if baseURL == "" {
		baseURL = scraper.BaseURL
	}
	return &Service{
		registry:  registry,
		fetcher:   fetcher,
		extractor: extractor,
		baseURL:   baseURL,
		logger:    logger,
	}
}

// GetEvents fetches and extracts the events for one region, in source order.
// A non-empty search term filters to events whose text contains it, ignoring
// case, preserving order. Unknown keys and fetch failures propagate to the
// caller.
func (s *Service) GetEvents(ctx context.Context, regionKey, search string) ([]*event.Event, error) {
	r, err := s.registry.Resolve(regionKey)
	if err != nil {
		return nil, err
	}

	markup, err := s.fetcher.Fetch(ctx, r.URL(s.baseURL))
	if err != nil {
		return nil, err
	}

	events, err := s.extractor.Extract(markup, r)
	if err != nil {
		return nil, err
	}
	s.logger.Debug().Str("region", r.Key).Int("events", len(events)).Msg("extracted events")

	if strings.TrimSpace(search) == "" {
		return events, nil
	}
	filtered := make([]*event.Event, 0, len(events))
	for _, evt := range events {
		if evt.Matches(search) {
			filtered = append(filtered, evt)
		}
	}
	return filtered, nil
}

// ListRegions returns every known region in registry order. It never fails.
func (s *Service) ListRegions() []region.Region {
	return s.registry.All()
}

// Match pairs a matching event with the region it came from.
type Match struct {
	RegionKey string       `json:"region"`
	Event     *event.Event `json:"event"`
}

// RegionFailure records a region whose fetch failed during fan-out.
type RegionFailure struct {
	RegionKey string `json:"region"`
	Err       string `json:"error"`
}

// SearchResult is the aggregate of a cross-region search: matches in
// registry order (per-region source order within), plus the regions that
// failed and were skipped.
type SearchResult struct {
	Matches []Match         `json:"matches"`
	Failed  []RegionFailure `json:"failed_regions,omitempty"`
}

// SearchAllRegions fans the search out across every region in registry
// order, accumulating at most maxResults matches. Once the cap is reached no
// further regions are fetched, bounding latency and outbound requests. A
// single region's fetch failure is recorded and skipped; the remaining
// regions are still searched. maxResults < 0 falls back to
// DefaultMaxResults; 0 returns no matches and issues no fetches.
func (s *Service) SearchAllRegions(ctx context.Context, term string, maxResults int) *SearchResult {
	if maxResults < 0 {
		maxResults = DefaultMaxResults
	}

	result := &SearchResult{Matches: make([]Match, 0, maxResults)}
	for _, r := range s.registry.All() {
		if len(result.Matches) >= maxResults {
			break
		}
		events, err := s.GetEvents(ctx, r.Key, term)
		if err != nil {
			s.logger.Warn().Str("region", r.Key).Err(err).Msg("region search failed, skipping")
			result.Failed = append(result.Failed, RegionFailure{RegionKey: r.Key, Err: err.Error()})
			continue
		}
		for _, evt := range events {
			result.Matches = append(result.Matches, Match{RegionKey: r.Key, Event: evt})
			if len(result.Matches) >= maxResults {
				break
			}
		}
	}
	return result
}
