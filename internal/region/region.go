package region

import (
	"fmt"
	"strings"
)

// Region is one geographic grouping of 19hz event listings.
type Region struct {
	// Key is the short, lowercase identifier used as API input (e.g. "bayarea").
	// Keys are a stable contract surface and never change.
	Key string `json:"key"`
	// SourceID is the upstream listing page filename (e.g.
	// "eventlisting_BayArea.php"). It may change upstream; the drift
	// detector watches for that.
	SourceID string `json:"source_id"`
	// Label is the human-readable region name.
	Label string `json:"label"`
}

// URL returns the full listing page URL for the region.
func (r Region) URL(baseURL string) string {
	return strings.TrimRight(baseURL, "/") + "/" + r.SourceID
}

// UnknownRegionError reports a region key that is not in the registry.
type UnknownRegionError struct {
	Key       string
	Available []string
}

func (e *UnknownRegionError) Error() string {
	return fmt.Sprintf("unknown region %q (available regions: %s)", e.Key, strings.Join(e.Available, ", "))
}

// Registry is an immutable, ordered set of regions. Iteration order follows
// declaration order, which downstream code relies on for deterministic
// fan-out and output.
type Registry struct {
	regions []Region
	byKey   map[string]Region
}

// NewRegistry builds a registry from the given regions, preserving order.
func NewRegistry(regions []Region) *Registry {
	byKey := make(map[string]Region, len(regions))
	ordered := make([]Region, 0, len(regions))
	for _, r := range regions {
		key := strings.ToLower(r.Key)
		if _, exists := byKey[key]; exists {
			continue
		}
		r.Key = key
		byKey[key] = r
		ordered = append(ordered, r)
	}
	return &Registry{regions: ordered, byKey: byKey}
}

// Default returns the registry of all regions 19hz.info publishes listings for.
func Default() *Registry {
	return NewRegistry(defaultRegions)
}

// Resolve looks up a region by key. Lookup is case-insensitive; a key not in
// the registry returns an *UnknownRegionError.
func (g *Registry) Resolve(key string) (Region, error) {
	r, ok := g.byKey[strings.ToLower(strings.TrimSpace(key))]
	if !ok {
		return Region{}, &UnknownRegionError{Key: key, Available: g.Keys()}
	}
	return r, nil
}

// All returns every region in declaration order. The returned slice is a
// copy; callers may not mutate the registry through it.
func (g *Registry) All() []Region {
	out := make([]Region, len(g.regions))
	copy(out, g.regions)
	return out
}

// Keys returns all region keys in declaration order.
func (g *Registry) Keys() []string {
	keys := make([]string, len(g.regions))
	for i, r := range g.regions {
		keys[i] = r.Key
	}
	return keys
}

// SourceIDs returns all upstream listing page identifiers in declaration order.
func (g *Registry) SourceIDs() []string {
	ids := make([]string, len(g.regions))
	for i, r := range g.regions {
		ids[i] = r.SourceID
	}
	return ids
}

// Len returns the number of regions in the registry.
func (g *Registry) Len() int {
	return len(g.regions)
}

var defaultRegions = []Region{
	{Key: "bayarea", SourceID: "eventlisting_BayArea.php", Label: "San Francisco Bay Area / Northern California"},
	{Key: "la", SourceID: "eventlisting_LosAngeles.php", Label: "Los Angeles / Southern California"},
	{Key: "seattle", SourceID: "eventlisting_Seattle.php", Label: "Seattle"},
	{Key: "atlanta", SourceID: "eventlisting_Atlanta.php", Label: "Atlanta"},
	{Key: "miami", SourceID: "eventlisting_Miami.php", Label: "Miami"},
	{Key: "dc", SourceID: "eventlisting_DC.php", Label: "Washington, DC / Maryland / Virginia"},
	{Key: "texas", SourceID: "eventlisting_Texas.php", Label: "Texas"},
	{Key: "philadelphia", SourceID: "eventlisting_PHL.php", Label: "Philadelphia"},
	{Key: "toronto", SourceID: "eventlisting_Toronto.php", Label: "Toronto"},
	{Key: "iowa", SourceID: "eventlisting_Iowa.php", Label: "Iowa / Nebraska"},
	{Key: "denver", SourceID: "eventlisting_Denver.php", Label: "Denver"},
	{Key: "chicago", SourceID: "eventlisting_CHI.php", Label: "Chicago"},
	{Key: "detroit", SourceID: "eventlisting_Detroit.php", Label: "Detroit"},
	{Key: "massachusetts", SourceID: "eventlisting_Massachusetts.php", Label: "Massachusetts"},
	{Key: "lasvegas", SourceID: "eventlisting_LasVegas.php", Label: "Las Vegas"},
	{Key: "phoenix", SourceID: "eventlisting_Phoenix.php", Label: "Phoenix"},
	{Key: "oregon", SourceID: "eventlisting_ORE.php", Label: "Portland / Oregon"},
	{Key: "bc", SourceID: "eventlisting_BC.php", Label: "Vancouver / British Columbia"},
}
