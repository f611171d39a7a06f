package mediatype

import "fmt"

// ErrorKind classifies a parse failure.
type ErrorKind uint8

const (
	// MissingSlash means the input ended before the slash separating the type and subtype.
	MissingSlash ErrorKind = iota + 1
	// MissingEqual means a parameter name wasn't followed by an equals sign.
	MissingEqual
	// MissingQuote means a quoted parameter value wasn't closed.
	MissingQuote
	// InvalidToken means a byte not allowed at its position. ParseError.Pos and
	// ParseError.Byte point at it.
	InvalidToken
	// InvalidRange means a top-level wildcard (*/*, possibly with parameters) passed
	// to Parse rather than ParseRange.
	InvalidRange
)

func (e ErrorKind) String() string {
	switch e {
	case MissingSlash:
		return "a slash (/) was missing between the type and subtype"
	case MissingEqual:
		return "an equals sign (=) was missing between a parameter and its value"
	case MissingQuote:
		return "a quote (\") was missing from a parameter value"
	case InvalidToken:
		return "an invalid token was encountered"
	case InvalidRange:
		return "unexpected asterisk"
	default:
		return "unknown parse error"
	}
}

// ParseError is returned by Parse and ParseRange. Pos and Byte are only meaningful
// for InvalidToken: Pos is the offset of the offending byte, or the length of the
// input if a token was required but the input ended.
type ParseError struct {
	Kind ErrorKind
	Pos  int
	Byte byte
}

// newError makes a ParseError carrying only the kind, to be used as a sentinel.
func newError(kind ErrorKind) error {
	return ParseError{Kind: kind}
}

func (p ParseError) Error() string {
	if p.Kind == InvalidToken {
		return fmt.Sprintf("%s, %X at position %d", p.Kind, p.Byte, p.Pos)
	}

	return p.Kind.String()
}

// Is makes errors.Is match on the kind only, so any InvalidToken error matches
// ErrInvalidToken regardless of its position.
func (p ParseError) Is(target error) bool {
	other, ok := target.(ParseError)
	return ok && other.Kind == p.Kind
}

var (
	ErrMissingSlash = newError(MissingSlash)
	ErrMissingEqual = newError(MissingEqual)
	ErrMissingQuote = newError(MissingQuote)
	ErrInvalidToken = newError(InvalidToken)
	ErrInvalidRange = newError(InvalidRange)
)

func invalidToken(pos int, c byte) error {
	return ParseError{
		Kind: InvalidToken,
		Pos:  pos,
		Byte: c,
	}
}
