// Package nameref models a dotted/qualified name as an ordered sequence of
// atomic identifier components (spec.md §3's NameRef) and the
// prefix-affects relation used throughout the slicer as the dependency
// test.
//
// Grounded on original_source/slicer/src/slicer.rs's NameRef/affects and
// its name_components/name_at_point/referenced_names methods. The Rust
// NameRef intentionally excludes the originating node from PartialEq/Hash
// ("we don't care about the node itself, just the name") — component
// identity is preserved here by never comparing the Node field.
package nameref

import sitter "github.com/smacker/go-tree-sitter"

// Classifier tells the package which CST kinds are atomic identifier
// fragments and which are complete qualified names. It is satisfied by
// *langconfig.Config without this package importing langconfig,
// keeping the dependency direction leaf-ward.
type Classifier interface {
	IsIdentifierType(kind string) bool
	IsNameType(kind string) bool
}

// NameRef is an ordered sequence of identifier component texts, e.g.
// ["self", "foo", "bar"] for `self.foo.bar`. Node is carried only for
// callers that need to report a source location back to the user; it
// plays no part in equality or hashing.
type NameRef struct {
	Node       *sitter.Node
	Components []string
}

// Key returns the string used for equality/hashing: components only, per
// the Rust NameRef's explicit Hash/PartialEq impls.
func (n NameRef) Key() string {
	key := ""
	for i, c := range n.Components {
		if i > 0 {
			key += "\x00"
		}
		key += c
	}
	return key
}

// Affects implements the prefix-affects relation (spec.md §3): true iff
// one component sequence is a prefix of the other. It is reflexive and
// symmetric by construction — an "overlap" predicate, not a strict prefix
// test, matching slicer.rs's affects() exactly (zip-and-compare over the
// shorter length, no direction implied).
func (n NameRef) Affects(other NameRef) bool {
	l := len(n.Components)
	if len(other.Components) < l {
		l = len(other.Components)
	}
	for i := 0; i < l; i++ {
		if n.Components[i] != other.Components[i] {
			return false
		}
	}
	return true
}

// Set is a small hash set of NameRef keyed by Key(). It exists because Go
// has no native hash-set-with-custom-equality the way Rust's
// HashSet<NameRef> (backed by the custom Hash impl) does.
type Set struct {
	byKey map[string]NameRef
}

// NewSet builds a Set containing the given refs.
func NewSet(refs ...NameRef) *Set {
	s := &Set{byKey: make(map[string]NameRef, len(refs))}
	for _, r := range refs {
		s.Add(r)
	}
	return s
}

// Add inserts ref if its key is not already present.
func (s *Set) Add(ref NameRef) {
	if _, ok := s.byKey[ref.Key()]; !ok {
		s.byKey[ref.Key()] = ref
	}
}

// Contains reports whether a ref with the same components is present.
func (s *Set) Contains(ref NameRef) bool {
	_, ok := s.byKey[ref.Key()]
	return ok
}

// Len reports the number of distinct name components held.
func (s *Set) Len() int {
	return len(s.byKey)
}

// Values returns the set's members in unspecified order.
func (s *Set) Values() []NameRef {
	out := make([]NameRef, 0, len(s.byKey))
	for _, v := range s.byKey {
		out = append(out, v)
	}
	return out
}

// AnyAffects reports whether any member of s affects (or is affected by)
// any member of other.
func (s *Set) AnyAffects(other []NameRef) bool {
	for _, a := range s.Values() {
		for _, b := range other {
			if a.Affects(b) {
				return true
			}
		}
	}
	return false
}
