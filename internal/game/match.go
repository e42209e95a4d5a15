package game

import "sort"

// Matches reports whether a vessel's contents satisfy the required
// fruit multiset. Both sides are compared as multisets: insertion
// order is irrelevant, duplicates count, and the match must be exact
// rather than a subset or superset.
func Matches(contents, required []string) bool {
	if len(contents) != len(required) {
		return false
	}

	got := append([]string(nil), contents...)
	want := append([]string(nil), required...)
	sort.Strings(got)
	sort.Strings(want)

	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
