package model

import (
	"sort"
)

// RevisionRecord is one SourceMember row of a scratch org
type RevisionRecord struct {
	MemberType      string `json:"MemberType"`
	MemberName      string `json:"MemberName"`
	RevisionCounter int    `json:"RevisionCounter"`
}

// RevisionSnapshot maps component type to component name to revision counter
type RevisionSnapshot map[string]map[string]int

// NewRevisionSnapshot builds a snapshot from records. When the same component
// appears more than once, the last record wins.
func NewRevisionSnapshot(records []RevisionRecord) RevisionSnapshot {
	s := RevisionSnapshot{}
	for _, r := range records {
		s.Set(r.MemberType, r.MemberName, r.RevisionCounter)
	}
	return s
}

func (x RevisionSnapshot) Set(memberType, memberName string, counter int) {
	names, ok := x[memberType]
	if !ok {
		names = map[string]int{}
		x[memberType] = names
	}
	names[memberName] = counter
}

func (x RevisionSnapshot) Get(memberType, memberName string) (int, bool) {
	names, ok := x[memberType]
	if !ok {
		return 0, false
	}
	v, ok := names[memberName]
	return v, ok
}

func (x RevisionSnapshot) Copy() RevisionSnapshot {
	if x == nil {
		return nil
	}
	c := make(RevisionSnapshot, len(x))
	for t, names := range x {
		n := make(map[string]int, len(names))
		for name, v := range names {
			n[name] = v
		}
		c[t] = n
	}
	return c
}

// Apply returns a copy of x where the counters of the given components are
// taken from latest. Components missing in latest are left untouched.
func (x RevisionSnapshot) Apply(latest RevisionSnapshot, changes DesiredChanges) RevisionSnapshot {
	out := x.Copy()
	if out == nil {
		out = RevisionSnapshot{}
	}
	for t, names := range changes {
		for _, name := range names {
			if v, ok := latest.Get(t, name); ok {
				out.Set(t, name, v)
			}
		}
	}
	return out
}

// CompareRevisions reports whether any component in newer is absent from
// older or has a different counter. Components present only in older are
// not considered changes.
func CompareRevisions(older, newer RevisionSnapshot) bool {
	for t, names := range newer {
		for name, v := range names {
			if prev, ok := older.Get(t, name); !ok || prev != v {
				return true
			}
		}
	}
	return false
}

// ChangedComponents returns the exact set of components CompareRevisions
// would report, names sorted per type.
func ChangedComponents(older, newer RevisionSnapshot) DesiredChanges {
	changes := DesiredChanges{}
	for t, names := range newer {
		for name, v := range names {
			if prev, ok := older.Get(t, name); !ok || prev != v {
				changes[t] = append(changes[t], name)
			}
		}
	}
	for t := range changes {
		sort.Strings(changes[t])
	}
	return changes
}

// DesiredChanges maps component type to the component names to retrieve
type DesiredChanges map[string][]string

func (x DesiredChanges) Copy() DesiredChanges {
	if x == nil {
		return nil
	}
	c := make(DesiredChanges, len(x))
	for t, names := range x {
		c[t] = append([]string(nil), names...)
	}
	return c
}

// Count returns the number of components
func (x DesiredChanges) Count() int {
	var n int
	for _, names := range x {
		n += len(names)
	}
	return n
}

// Types returns component types in sorted order
func (x DesiredChanges) Types() []string {
	types := make([]string, 0, len(x))
	for t := range x {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// Subtract returns the components of x that are not in y
func (x DesiredChanges) Subtract(y DesiredChanges) DesiredChanges {
	out := DesiredChanges{}
	for t, names := range x {
		skip := map[string]struct{}{}
		for _, n := range y[t] {
			skip[n] = struct{}{}
		}
		for _, n := range names {
			if _, ok := skip[n]; !ok {
				out[t] = append(out[t], n)
			}
		}
	}
	return out
}
