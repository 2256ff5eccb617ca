package region

import (
	"errors"
	"reflect"
	"testing"
)

func TestResolve(t *testing.T) {
	reg := Default()

	tests := []struct {
		name    string
		key     string
		wantKey string
		wantErr bool
	}{
		{name: "known key", key: "bayarea", wantKey: "bayarea"},
		{name: "uppercase input", key: "BayArea", wantKey: "bayarea"},
		{name: "surrounding whitespace", key: "  toronto ", wantKey: "toronto"},
		{name: "unknown key", key: "not-a-real-region", wantErr: true},
		{name: "empty key", key: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := reg.Resolve(tt.key)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Resolve(%q) expected error, got region %+v", tt.key, r)
				}
				var unknownErr *UnknownRegionError
				if !errors.As(err, &unknownErr) {
					t.Fatalf("expected *UnknownRegionError, got %T: %v", err, err)
				}
				if unknownErr.Key != tt.key {
					t.Errorf("expected error to carry key %q, got %q", tt.key, unknownErr.Key)
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve(%q) failed: %v", tt.key, err)
			}
			if r.Key != tt.wantKey {
				t.Errorf("expected key %q, got %q", tt.wantKey, r.Key)
			}
			if r.SourceID == "" || r.Label == "" {
				t.Errorf("expected populated region, got %+v", r)
			}
		})
	}
}

func TestAllIsStableAndOrdered(t *testing.T) {
	reg := Default()

	first := reg.All()
	second := reg.All()

	if !reflect.DeepEqual(first, second) {
		t.Error("two consecutive All() calls should return identical sequences")
	}

	if len(first) != reg.Len() {
		t.Errorf("expected %d regions, got %d", reg.Len(), len(first))
	}

	// Declaration order is a contract: bayarea leads, la follows.
	if first[0].Key != "bayarea" {
		t.Errorf("expected first region to be bayarea, got %s", first[0].Key)
	}
	if first[1].Key != "la" {
		t.Errorf("expected second region to be la, got %s", first[1].Key)
	}

	seen := make(map[string]bool)
	for _, r := range first {
		if seen[r.Key] {
			t.Errorf("duplicate region key: %s", r.Key)
		}
		seen[r.Key] = true
	}

	// All() returns a copy; mutating it must not affect the registry.
	first[0].Key = "mutated"
	if reg.All()[0].Key != "bayarea" {
		t.Error("mutating the All() result should not affect the registry")
	}
}

func TestURL(t *testing.T) {
	r := Region{Key: "bayarea", SourceID: "eventlisting_BayArea.php", Label: "Bay Area"}

	tests := []struct {
		base     string
		expected string
	}{
		{"https://19hz.info", "https://19hz.info/eventlisting_BayArea.php"},
		{"https://19hz.info/", "https://19hz.info/eventlisting_BayArea.php"},
	}

	for _, tt := range tests {
		if got := r.URL(tt.base); got != tt.expected {
			t.Errorf("URL(%q) = %q, expected %q", tt.base, got, tt.expected)
		}
	}
}

func TestNewRegistryDropsDuplicateKeys(t *testing.T) {
	reg := NewRegistry([]Region{
		{Key: "a", SourceID: "one.php", Label: "First"},
		{Key: "A", SourceID: "two.php", Label: "Shadowed"},
	})

	if reg.Len() != 1 {
		t.Fatalf("expected 1 region, got %d", reg.Len())
	}
	r, err := reg.Resolve("a")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if r.SourceID != "one.php" {
		t.Errorf("expected first declaration to win, got %s", r.SourceID)
	}
}
