// Package mediatype parses, represents and compares media types as defined by
// RFC 6838 and used by RFC 7231 in Content-Type and Accept headers.
//
// A MediaType keeps its text once and addresses the type, subtype, suffix and
// parameters by byte offsets into it. Up to three parameters are stored without
// allocating, and so is the ubiquitous "; charset=utf-8".
package mediatype

import (
	"strings"

	"github.com/dchest/uniuri"
	"github.com/indigo-web/utils/strcomp"
)

// MediaType is an immutable parsed media type. The zero value is not a valid media
// type, see IsZero.
//
// MediaType values are safe for concurrent use.
type MediaType struct {
	source source
	slash  int
	// plus is the offset of the last plus sign in the subtype, or 0 if there's none.
	plus   int
	params params
}

// Type returns the top-level type, e.g. "text" for "text/plain".
func (m MediaType) Type() string {
	return m.source.text[:m.slash]
}

// Subtype returns the subtype without the structured syntax suffix, e.g. "vnd.api"
// for "application/vnd.api+json".
func (m MediaType) Subtype() string {
	if m.IsZero() {
		return ""
	}

	end := m.plus
	if end == 0 {
		end = m.paramsStart()
	}

	return m.source.text[m.slash+1 : end]
}

// Suffix returns the structured syntax suffix, e.g. "json" for "application/vnd.api+json".
func (m MediaType) Suffix() (string, bool) {
	if m.plus == 0 {
		return "", false
	}

	return m.source.text[m.plus+1 : m.paramsStart()], true
}

// Essence returns the media type without parameters, e.g. "text/plain" for
// "text/plain; charset=utf-8".
func (m MediaType) Essence() string {
	return m.source.text[:m.paramsStart()]
}

// HasParams tells whether there are any parameters.
func (m MediaType) HasParams() bool {
	return m.params.kind != paramsNone
}

// IsWildcard tells whether the media type is a range, i.e. either */* or type/*.
func (m MediaType) IsWildcard() bool {
	return !m.IsZero() && m.Subtype() == "*"
}

// IsZero reports whether m is the zero value, as returned along with a parse error.
func (m MediaType) IsZero() bool {
	return len(m.source.text) == 0
}

// String returns the stored text: the parsed input with type, subtype, parameter
// names and the charset value lowercased.
func (m MediaType) String() string {
	return m.source.text
}

// Param returns the value of the named parameter as it is stored, i.e. a quoted value
// keeps its quotes. The name is matched case-insensitively.
func (m MediaType) Param(name string) (string, bool) {
	it := m.Params()
	for {
		key, value, ok := it.Next()
		if !ok {
			return "", false
		}

		if strcomp.EqualFold(key, name) {
			return value, true
		}
	}
}

// Charset is a short name for
//
//	m.Param("charset")
func (m MediaType) Charset() (string, bool) {
	return m.Param(charsetName)
}

// Boundary is a short name for
//
//	m.Param("boundary")
func (m MediaType) Boundary() (string, bool) {
	return m.Param(boundaryName)
}

func (m MediaType) paramsStart() int {
	if m.params.kind == paramsNone {
		return len(m.source.text)
	}

	return m.params.semicolon
}

// New builds a media type from its parts and validates the result. Parameters are
// passed as a flat list of names and values, values which aren't tokens are quoted.
func New(typ, subtype string, params ...string) (MediaType, error) {
	if len(params)%2 != 0 {
		return MediaType{}, ErrMissingEqual
	}

	var b strings.Builder
	b.Grow(len(typ) + len(subtype) + 1 + len(params)*8)
	b.WriteString(typ)
	b.WriteByte('/')
	b.WriteString(subtype)

	for i := 0; i < len(params); i += 2 {
		b.WriteString("; ")
		b.WriteString(params[i])
		b.WriteByte('=')
		writeValue(&b, params[i+1])
	}

	return ParseRange(b.String())
}

// Must is a helper that wraps a call returning (MediaType, error) and panics if the
// error is non-nil. It is intended for package variable initializations.
func Must(mt MediaType, err error) MediaType {
	if err != nil {
		panic(err)
	}

	return mt
}

const (
	boundaryName = "boundary"
	boundaryLen  = 30
)

// Multipart returns multipart/<subtype> with a freshly generated random boundary.
func Multipart(subtype string) (MediaType, error) {
	return New("multipart", subtype, boundaryName, uniuri.NewLen(boundaryLen))
}
