package aggregate

import (
	"sort"

	"github.com/chrismerck/struct-lint/analyze"
	"github.com/chrismerck/struct-lint/extract"
)

// Entry is one deduplicated struct together with the issues found for it
// and the architecture profile of the artifact it was first observed in.
type Entry struct {
	Key      string
	Artifact string
	MaxAlign uint64
	Struct   extract.StructInfo
	Issues   []analyze.Issue
}

// Set accumulates results across artifacts. The zero value is not usable;
// create one with NewSet. A Set is built up during a scan and drained once
// for reporting; entries are never mutated after insertion.
type Set struct {
	entries map[string]*Entry
}

// NewSet returns an empty result set.
func NewSet() *Set {
	return &Set{entries: make(map[string]*Entry)}
}

// Add records one struct observed in one artifact. The first observation of
// a given layout wins; later duplicates are discarded and Add reports false.
// The stored entry owns its values: the issue slice is copied, and the
// StructInfo arrives by value.
func (s *Set) Add(artifact string, maxAlign uint64, st extract.StructInfo, issues []analyze.Issue) bool {
	key := st.Key()
	if _, ok := s.entries[key]; ok {
		return false
	}
	owned := make([]analyze.Issue, len(issues))
	copy(owned, issues)
	s.entries[key] = &Entry{
		Key:      key,
		Artifact: artifact,
		MaxAlign: maxAlign,
		Struct:   st,
		Issues:   owned,
	}
	return true
}

// Len returns the number of distinct structs.
func (s *Set) Len() int {
	return len(s.entries)
}

// IssueCount returns the total number of issues across all entries.
func (s *Set) IssueCount() int {
	n := 0
	for _, e := range s.entries {
		n += len(e.Issues)
	}
	return n
}

// Entries returns all entries in dedup-key sort order.
func (s *Set) Entries() []*Entry {
	out := make([]*Entry, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}
