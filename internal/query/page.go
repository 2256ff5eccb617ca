package query

import "github.com/pfrederiksen/hz19-events/internal/event"

// DefaultPageSize is the page size used when the caller doesn't specify one.
const DefaultPageSize = 50

// Page is one window into a region's event sequence.
type Page struct {
	Events      []*event.Event `json:"events"`
	Page        int            `json:"page"`
	PageSize    int            `json:"page_size"`
	TotalEvents int            `json:"total_events"`
	HasMore     bool           `json:"has_more"`
}

// TotalPages returns how many pages the full sequence spans, at least 1.
func (p *Page) TotalPages() int {
	if p.PageSize <= 0 {
		return 1
	}
	pages := (p.TotalEvents + p.PageSize - 1) / p.PageSize
	if pages < 1 {
		return 1
	}
	return pages
}

// Paginate slices events into the requested page. Page numbers below 1 are
// clamped to 1; a page past the end yields an empty page.
func Paginate(events []*event.Event, page, pageSize int) *Page {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	total := len(events)

	window := []*event.Event{}
	if start < total {
		if end > total {
			end = total
		}
		window = events[start:end]
	}

	return &Page{
		Events:      window,
		Page:        page,
		PageSize:    pageSize,
		TotalEvents: total,
		HasMore:     end < total && start < total,
	}
}
