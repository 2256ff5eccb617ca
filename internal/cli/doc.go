// Package cli implements the command-line interface for hz19-events.
//
// The cli package provides the Cobra-based CLI with subcommands for fetching
// a region's events, listing regions, searching across all regions, and
// checking for upstream region drift. Output is available as text, JSON, or
// markdown. It wires the registry, fetcher, extractor, query service, and
// drift detector together from an optional YAML config file.
package cli
