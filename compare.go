package mediatype

import (
	"hash/maphash"
	"strings"

	"github.com/indigo-web/mediatype/internal/strutil"
	"github.com/indigo-web/utils/strcomp"
)

// Equal reports whether two media types are the same. Type, subtype and suffix are
// compared case-insensitively, parameters are compared as an unordered set: names
// case-insensitively and values exactly as stored. The charset value is an exception:
// it is always lowercase, and a quoted one equals its unquoted form.
//
// Note that Equal is a coarser relation than Compare and Hash: "a/b; x=1; y=2" and
// "a/b; y=2; x=1" are equal, but neither compare nor hash the same.
func (m MediaType) Equal(other MediaType) bool {
	if m.source.atom && other.source.atom {
		return m.source.text == other.source.text
	}

	otherSuffix, _ := other.Suffix()
	suffix, _ := m.Suffix()

	return strcomp.EqualFold(m.Type(), other.Type()) &&
		strcomp.EqualFold(m.Subtype(), other.Subtype()) &&
		strcomp.EqualFold(suffix, otherSuffix) &&
		m.paramsEqual(other)
}

func (m MediaType) paramsEqual(other MediaType) bool {
	switch m.params.fastEqual(&other.params) {
	case equals:
		return true
	case notEquals:
		return false
	}

	if m.params.kind == paramsMany || other.params.kind == paramsMany {
		return mapsEqual(setOf(m), setOf(other))
	}

	return m.containsAll(other) && other.containsAll(m)
}

func (m MediaType) containsAll(other MediaType) bool {
	it := other.Params()
	for {
		name, value, ok := it.Next()
		if !ok {
			return true
		}

		if !m.hasPair(name, value) {
			return false
		}
	}
}

func (m MediaType) hasPair(name, value string) bool {
	charset := strcomp.EqualFold(name, charsetName)
	if charset {
		value = strutil.Unquote(value)
	}

	it := m.Params()
	for {
		key, val, ok := it.Next()
		if !ok {
			return false
		}

		if charset && strcomp.EqualFold(key, charsetName) {
			val = strutil.Unquote(val)
		}

		if val == value && strcomp.EqualFold(key, name) {
			return true
		}
	}
}

type paramKey struct {
	name, value string
}

// setOf collects the parameters into a set. Names are lowercase already, as the
// parser normalizes them.
func setOf(m MediaType) map[paramKey]struct{} {
	set := make(map[paramKey]struct{}, m.params.Len())
	for name, value := range m.AllParams() {
		if name == charsetName {
			value = strutil.Unquote(value)
		}

		set[paramKey{name, value}] = struct{}{}
	}

	return set
}

func mapsEqual(a, b map[paramKey]struct{}) bool {
	if len(a) != len(b) {
		return false
	}

	for key := range a {
		if _, found := b[key]; !found {
			return false
		}
	}

	return true
}

// EqualString reports whether the string is a media type equal to m. The string is
// parsed (as a media range) only if a plain case-insensitive comparison can't decide.
// Malformed strings are never equal.
func (m MediaType) EqualString(s string) bool {
	switch m.params.kind {
	case paramsNone:
		if strcomp.EqualFold(m.source.text, s) {
			return true
		}

		if strings.IndexByte(s, ';') == -1 {
			return false
		}
	case paramsUTF8:
		// the stored text is exactly "<type>/<subtype>; charset=utf-8" in lowercase,
		// optionally followed by a semicolon
		if strcomp.EqualFold(m.source.text, s) {
			return true
		}
	}

	other, err := ParseRange(s)
	if err != nil {
		return false
	}

	return m.Equal(other)
}

// Compare returns an integer comparing two media types lexicographically by their
// stored text. The result will be 0 if a == b, -1 if a < b, and +1 if a > b.
//
// Compare is a total order consistent with Hash, but not with Equal, as the
// parameters order is significant here.
func Compare(a, b MediaType) int {
	return strings.Compare(a.source.text, b.source.text)
}

// Hash returns a hash of the stored text. It is consistent with Compare, but not with
// Equal: media types with the same parameters in a different order are likely to hash
// differently.
func (m MediaType) Hash(seed maphash.Seed) uint64 {
	return maphash.String(seed, m.source.text)
}
