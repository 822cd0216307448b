package venn

import (
	"sort"
	"strings"

	"github.com/vennlab/venn/pkg/errors"
)

// Region describes the desired area of one diagram region: a single set, or
// the intersection of two or more sets. The order of identifiers within
// Sets is preserved and forms the region's key for later lookups; two
// regions with the same identifiers in any order describe the same region
// and may not both appear in one input.
type Region struct {
	Sets  []string `json:"sets"`
	Size  float64  `json:"size"`
	Label string   `json:"label,omitempty"`

	// Weight scales this region's contribution to the layout loss.
	// Nil means 1.
	Weight *float64 `json:"weight,omitempty"`
}

// Key returns the region's identifier key: its set identifiers joined by
// commas in their original order.
func (r Region) Key() string {
	return strings.Join(r.Sets, ",")
}

// canonicalKey is the order-insensitive form of the key, used to match
// regions by content rather than by identifier order.
func (r Region) canonicalKey() string {
	sets := append([]string(nil), r.Sets...)
	sort.Strings(sets)
	return strings.Join(sets, ",")
}

// weight returns the region's loss weight, defaulting to 1.
func (r Region) weight() float64 {
	if r.Weight == nil {
		return 1
	}
	return *r.Weight
}

// validateRegions checks the caller's input: well-formed set identifiers,
// non-negative sizes, no duplicate identifiers within a region, no two
// regions describing the same set combination, and a singleton region (to
// fix the radius) for every identifier referenced anywhere.
func validateRegions(regions []Region) error {
	seen := make(map[string]bool, len(regions))
	singletons := make(map[string]bool)

	for _, r := range regions {
		if len(r.Sets) == 0 {
			return errors.New(errors.ErrCodeInvalidRegion, "region has no set identifiers")
		}
		if r.Size < 0 {
			return errors.New(errors.ErrCodeInvalidRegion, "region %q has negative size %v", r.Key(), r.Size)
		}

		inRegion := make(map[string]bool, len(r.Sets))
		for _, id := range r.Sets {
			if err := errors.ValidateSetID(id); err != nil {
				return err
			}
			if inRegion[id] {
				return errors.New(errors.ErrCodeInvalidRegion, "region %q repeats set identifier %q", r.Key(), id)
			}
			inRegion[id] = true
		}

		key := r.canonicalKey()
		if seen[key] {
			return errors.New(errors.ErrCodeInvalidRegion, "duplicate region for sets %q", key)
		}
		seen[key] = true

		if len(r.Sets) == 1 {
			singletons[r.Sets[0]] = true
		}
	}

	for _, r := range regions {
		for _, id := range r.Sets {
			if !singletons[id] {
				return errors.New(errors.ErrCodeMissingSingleton,
					"region %q references set %q, which has no singleton region to fix its radius", r.Key(), id)
			}
		}
	}

	return nil
}

// filterEmptySets removes zero-size singleton regions from the input,
// along with every region that references a removed identifier.
func filterEmptySets(regions []Region) []Region {
	removed := make(map[string]bool)
	for _, r := range regions {
		if len(r.Sets) == 1 && r.Size == 0 {
			removed[r.Sets[0]] = true
		}
	}
	if len(removed) == 0 {
		return regions
	}

	kept := make([]Region, 0, len(regions))
outer:
	for _, r := range regions {
		for _, id := range r.Sets {
			if removed[id] {
				continue outer
			}
		}
		kept = append(kept, r)
	}
	return kept
}

// setIDs returns the singleton identifiers in input order.
func setIDs(regions []Region) []string {
	var ids []string
	for _, r := range regions {
		if len(r.Sets) == 1 {
			ids = append(ids, r.Sets[0])
		}
	}
	return ids
}

// addMissingPairs fills in a zero-size region for every pair of sets with
// no declared overlap, so that each circle being placed has overlap
// information against every other.
func addMissingPairs(regions []Region) []Region {
	present := make(map[string]bool, len(regions))
	for _, r := range regions {
		if len(r.Sets) == 2 {
			present[r.canonicalKey()] = true
		}
	}

	// Append to a copy: growing the caller's slice in place could write
	// synthesized pairs into its spare capacity.
	out := append(make([]Region, 0, len(regions)), regions...)

	ids := setIDs(regions)
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			pair := Region{Sets: []string{ids[i], ids[j]}}
			if !present[pair.canonicalKey()] {
				out = append(out, pair)
			}
		}
	}
	return out
}
