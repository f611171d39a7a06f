package mediatype

import (
	"github.com/indigo-web/mediatype/internal/strutil"
	"github.com/indigo-web/utils/uf"
)

// maxAtomLen bounds the stack buffer used to look up known media types
// case-insensitively. No constant in the intern table is longer.
const maxAtomLen = 64

// source is the text backing a MediaType. atom is set when text is one of the
// package-level constants rather than a copy owned by the value.
type source struct {
	text string
	atom bool
}

// intern returns the known constant matching s case-insensitively, if there is one.
// Neither lookup allocates: map access keyed by string(bytes) is not materialized.
func intern(s string) (MediaType, bool) {
	if mt, found := atoms[s]; found {
		return mt, true
	}

	if len(s) > maxAtomLen {
		return MediaType{}, false
	}

	var buff [maxAtomLen]byte
	n := copy(buff[:], s)
	if !strutil.LowerASCII(buff[:n]) {
		// already lowercase, so the first lookup was authoritative
		return MediaType{}, false
	}

	mt, found := atoms[string(buff[:n])]
	return mt, found
}

// owned returns an exclusively owned lowercase copy of s.
func owned(s string) source {
	buff := []byte(s)
	strutil.LowerASCII(buff)

	return source{text: uf.B2S(buff)}
}

// ownedWithParams returns an owned copy of s with everything before the semicolon,
// every parameter name and the value of charset lowercased. Other values are kept
// as they are.
func ownedWithParams(s string, ps *params) source {
	buff := []byte(s)
	strutil.LowerASCII(buff[:ps.semicolon])

	for _, p := range ps.pairs() {
		name := buff[p.name.start:p.name.end]
		strutil.LowerASCII(name)

		if uf.B2S(name) == charsetName {
			strutil.LowerASCII(buff[p.value.start:p.value.end])
		}
	}

	return source{text: uf.B2S(buff)}
}
