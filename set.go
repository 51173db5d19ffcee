// SPDX-License-Identifier: Apache-2.0

package foodb

import (
	"cmp"
	"slices"
)

// A Set holds intervals sorted ascending by low bound and answers
// containment queries against them. Build it once; it exposes no
// mutation beyond [Set.Normalize], so a built Set is safe for
// concurrent readers.
type Set struct {
	intervals []Interval

	// disjoint records that Normalize has run, which is the
	// precondition for answering queries by binary search.
	disjoint bool
}

// NewSet builds a Set from the given intervals, sorting a copy of them
// by low bound. The input slice is not retained.
func NewSet(intervals []Interval) *Set {
	s := &Set{intervals: slices.Clone(intervals)}
	slices.SortFunc(s.intervals, Interval.Compare)
	return s
}

// Len returns the number of stored intervals.
func (s *Set) Len() int {
	return len(s.intervals)
}

// Intervals returns a copy of the stored intervals in sorted order.
func (s *Set) Intervals() []Interval {
	return slices.Clone(s.intervals)
}

// Normalize coalesces overlapping and touching neighbors into the
// minimal disjoint sequence, preserving sorted order. Queries on a
// normalized Set run by binary search instead of linear scan; the two
// strategies answer identically, so Normalize is a performance choice,
// not a correctness requirement.
func (s *Set) Normalize() {
	if len(s.intervals) > 1 {
		out := s.intervals[:1]
		for _, next := range s.intervals[1:] {
			last := &out[len(out)-1]
			merged, err := last.Merge(next)
			if err != nil {
				out = append(out, next)
				continue
			}
			*last = merged
		}
		s.intervals = out
	}
	s.disjoint = true
}

// ContainsAny returns true if v lies within at least one stored
// interval.
func (s *Set) ContainsAny(v uint64) bool {
	if s.disjoint {
		return s.searchContains(v)
	}
	return s.scanContains(v)
}

// scanContains tests v against every interval in turn. Always correct,
// whatever state the set is in.
func (s *Set) scanContains(v uint64) bool {
	for _, i := range s.intervals {
		if i.Contains(v) {
			return true
		}
	}
	return false
}

// searchContains locates the interval with the greatest low bound not
// exceeding v and tests only that one. Correct only once the intervals
// are disjoint and sorted: an unmerged overlap from an earlier interval
// would be missed silently.
func (s *Set) searchContains(v uint64) bool {
	n, exact := slices.BinarySearchFunc(s.intervals, v, func(i Interval, v uint64) int {
		return cmp.Compare(i.Low, v)
	})
	if exact {
		return true
	}
	if n == 0 {
		return false
	}
	return s.intervals[n-1].Contains(v)
}
