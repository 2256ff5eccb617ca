// Package event provides the normalized event record type for 19hz listings.
//
// Events are created fresh on every extraction and never persisted. Each
// event carries a derived lowercase search blob used for case-insensitive
// substring matching; the blob is internal and never serialized.
package event
