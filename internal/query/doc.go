// Package query implements the structured query operations over 19hz
// listings: single-region event fetches with optional text filtering,
// region enumeration, and the capped cross-region search fan-out.
//
// Single-region queries propagate failures to the caller; the cross-region
// fan-out has a lenient contract instead, skipping failed regions and
// reporting them alongside the matches.
package query
