// Package depset provides the dependency-set representation shared by
// every pipeline stage. Membership is exact-match on the canonical name;
// enumeration is always sorted so diffs and reports are deterministic.
package depset

import "sort"

// Set is a deduplicated collection of dependency names.
type Set map[string]struct{}

// New creates a set from the given names.
func New(names ...string) Set {
	s := make(Set, len(names))
	for _, name := range names {
		s[name] = struct{}{}
	}
	return s
}

// Add inserts a name into the set.
func (s Set) Add(name string) {
	s[name] = struct{}{}
}

// Contains reports whether name is a member of the set.
func (s Set) Contains(name string) bool {
	_, ok := s[name]
	return ok
}

// Len returns the number of names in the set.
func (s Set) Len() int {
	return len(s)
}

// Names returns the members sorted lexicographically.
func (s Set) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Diff returns the members of s that are not in other.
func (s Set) Diff(other Set) Set {
	result := New()
	for name := range s {
		if !other.Contains(name) {
			result.Add(name)
		}
	}
	return result
}

// Union returns a new set with the members of both s and other.
func (s Set) Union(other Set) Set {
	result := make(Set, len(s)+len(other))
	for name := range s {
		result.Add(name)
	}
	for name := range other {
		result.Add(name)
	}
	return result
}
