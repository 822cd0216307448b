package venn

import (
	"reflect"
	"testing"

	"github.com/vennlab/venn/pkg/errors"
)

func TestRegionKey(t *testing.T) {
	r := Region{Sets: []string{"B", "A"}, Size: 2}
	if got, want := r.Key(), "B,A"; got != want {
		t.Errorf("Key() = %q, want %q", got, want)
	}
	if got, want := r.canonicalKey(), "A,B"; got != want {
		t.Errorf("canonicalKey() = %q, want %q", got, want)
	}
}

func TestValidateRegions(t *testing.T) {
	tests := []struct {
		name     string
		regions  []Region
		wantCode errors.Code
	}{
		{
			name: "valid two sets",
			regions: []Region{
				{Sets: []string{"A"}, Size: 10},
				{Sets: []string{"B"}, Size: 10},
				{Sets: []string{"A", "B"}, Size: 2},
			},
		},
		{
			name:     "empty set list",
			regions:  []Region{{Sets: nil, Size: 1}},
			wantCode: errors.ErrCodeInvalidRegion,
		},
		{
			name: "negative size",
			regions: []Region{
				{Sets: []string{"A"}, Size: -1},
			},
			wantCode: errors.ErrCodeInvalidRegion,
		},
		{
			name: "repeated identifier within region",
			regions: []Region{
				{Sets: []string{"A"}, Size: 1},
				{Sets: []string{"A", "A"}, Size: 1},
			},
			wantCode: errors.ErrCodeInvalidRegion,
		},
		{
			name: "duplicate region in different order",
			regions: []Region{
				{Sets: []string{"A"}, Size: 1},
				{Sets: []string{"B"}, Size: 1},
				{Sets: []string{"A", "B"}, Size: 1},
				{Sets: []string{"B", "A"}, Size: 2},
			},
			wantCode: errors.ErrCodeInvalidRegion,
		},
		{
			name: "overlap references set without singleton",
			regions: []Region{
				{Sets: []string{"A"}, Size: 1},
				{Sets: []string{"A", "B"}, Size: 1},
			},
			wantCode: errors.ErrCodeMissingSingleton,
		},
		{
			name: "invalid identifier",
			regions: []Region{
				{Sets: []string{"A,B"}, Size: 1},
			},
			wantCode: errors.ErrCodeInvalidSetID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateRegions(tt.regions)
			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("validateRegions() error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if got := errors.GetCode(err); got != tt.wantCode {
				t.Errorf("error code = %v, want %v", got, tt.wantCode)
			}
		})
	}
}

func TestFilterEmptySets(t *testing.T) {
	regions := []Region{
		{Sets: []string{"A"}, Size: 0},
		{Sets: []string{"B"}, Size: 5},
		{Sets: []string{"A", "B"}, Size: 0},
		{Sets: []string{"B", "C"}, Size: 1},
		{Sets: []string{"C"}, Size: 3},
	}

	got := filterEmptySets(regions)
	wantKeys := []string{"B", "B,C", "C"}
	if len(got) != len(wantKeys) {
		t.Fatalf("got %d regions, want %d", len(got), len(wantKeys))
	}
	for i, r := range got {
		if r.Key() != wantKeys[i] {
			t.Errorf("region %d = %q, want %q", i, r.Key(), wantKeys[i])
		}
	}
}

func TestFilterEmptySetsNoRemoval(t *testing.T) {
	regions := []Region{
		{Sets: []string{"A"}, Size: 1},
		{Sets: []string{"A", "B"}, Size: 0},
		{Sets: []string{"B"}, Size: 2},
	}
	got := filterEmptySets(regions)
	if !reflect.DeepEqual(got, regions) {
		t.Errorf("filterEmptySets() = %v, want input unchanged", got)
	}
}

func TestSetIDs(t *testing.T) {
	regions := []Region{
		{Sets: []string{"C"}, Size: 1},
		{Sets: []string{"A", "C"}, Size: 1},
		{Sets: []string{"A"}, Size: 1},
	}
	got := setIDs(regions)
	want := []string{"C", "A"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("setIDs() = %v, want %v", got, want)
	}
}

func TestAddMissingPairs(t *testing.T) {
	regions := []Region{
		{Sets: []string{"A"}, Size: 4},
		{Sets: []string{"B"}, Size: 4},
		{Sets: []string{"C"}, Size: 4},
		{Sets: []string{"A", "B"}, Size: 1},
	}

	got := addMissingPairs(regions)
	if len(got) != 6 {
		t.Fatalf("got %d regions, want 6", len(got))
	}

	added := make(map[string]float64)
	for _, r := range got[4:] {
		added[r.canonicalKey()] = r.Size
	}
	for _, key := range []string{"A,C", "B,C"} {
		size, ok := added[key]
		if !ok {
			t.Errorf("missing pair %q was not added", key)
			continue
		}
		if size != 0 {
			t.Errorf("added pair %q has size %v, want 0", key, size)
		}
	}
}

// Synthesized pairs must never land in the caller's backing array, even
// when the input slice has spare capacity.
func TestAddMissingPairsDoesNotAliasInput(t *testing.T) {
	regions := make([]Region, 0, 8)
	regions = append(regions,
		Region{Sets: []string{"A"}, Size: 4},
		Region{Sets: []string{"B"}, Size: 4},
	)

	out := addMissingPairs(regions)
	if len(out) != 3 {
		t.Fatalf("got %d regions, want 3", len(out))
	}

	spare := regions[:3]
	if spare[2].Sets != nil {
		t.Errorf("input backing array written: %+v", spare[2])
	}
}

func TestRegionWeight(t *testing.T) {
	r := Region{Sets: []string{"A"}, Size: 1}
	if got := r.weight(); got != 1 {
		t.Errorf("weight() = %v, want 1", got)
	}
	w := 2.5
	r.Weight = &w
	if got := r.weight(); got != 2.5 {
		t.Errorf("weight() = %v, want 2.5", got)
	}
}
