// Package keyset provides a deduplicated string set for dotted key
// identifiers, with the set algebra the analyzer is built on.
package keyset

import "sort"

type Set map[string]struct{}

func New(keys ...string) Set {
	s := make(Set, len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}
	return s
}

func (s Set) Add(key string) {
	s[key] = struct{}{}
}

func (s Set) Has(key string) bool {
	_, ok := s[key]
	return ok
}

func (s Set) Len() int {
	return len(s)
}

// Diff returns s − other.
func (s Set) Diff(other Set) Set {
	out := New()
	for k := range s {
		if !other.Has(k) {
			out.Add(k)
		}
	}
	return out
}

func (s Set) Union(other Set) Set {
	out := make(Set, len(s)+len(other))
	for k := range s {
		out.Add(k)
	}
	for k := range other {
		out.Add(k)
	}
	return out
}

func (s Set) Intersect(other Set) Set {
	out := New()
	for k := range s {
		if other.Has(k) {
			out.Add(k)
		}
	}
	return out
}

// Sorted returns the members in lexicographic order, for reproducible output.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
