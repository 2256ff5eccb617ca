// Package drift detects upstream region changes on 19hz.info.
//
// The region registry is compiled in, but the site adds and retires regions
// without notice. The detector scrapes the master index page for listing
// links and diffs the identifiers it finds against the registry, reporting
// additions and removals so the registry can be updated.
package drift
