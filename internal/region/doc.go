// Package region defines the static registry of 19hz.info listing regions.
//
// The registry maps short, stable region keys (like "bayarea") to the
// upstream listing page each region lives on. It is compiled in, never
// mutated at runtime, and iterated in a fixed declaration order that the
// query layer relies on for deterministic fan-out.
package region
