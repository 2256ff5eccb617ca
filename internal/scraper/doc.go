// Package scraper provides HTTP fetching and HTML extraction for 19hz.info
// event listings.
//
// The listing pages are hand-authored HTML without a machine-readable
// schema, so the extractor is a tolerant pattern-matcher: it positively
// matches the structural cues of an event row (a weekday-prefixed date cell,
// a title/venue cell split on "@") and skips everything else. Missing fields
// default to empty strings; markup in which no rows match yields an empty
// sequence rather than an error, which keeps "no events" distinguishable
// from a fetch failure.
package scraper
