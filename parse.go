package mediatype

import (
	"github.com/indigo-web/mediatype/internal/httpchars"
	"github.com/indigo-web/utils/strcomp"
)

// Parse parses a media type as it appears in a Content-Type header. Wildcards are
// rejected.
func Parse(s string) (MediaType, error) {
	return parse(s, false)
}

// ParseRange parses a media range as it appears in an Accept header, that is with
// */* and type/* permitted.
func ParseRange(s string) (MediaType, error) {
	return parse(s, true)
}

func parse(s string, wildcard bool) (MediaType, error) {
	if s == "*/*" {
		if wildcard {
			return Any, nil
		}

		return MediaType{}, ErrInvalidRange
	}

	l, err := scan(s, wildcard)
	if err != nil {
		return MediaType{}, err
	}

	var src source

	switch l.params.kind {
	case paramsNone:
		text := s[:l.end]
		if mt, found := intern(text); found {
			return mt, nil
		}

		src = owned(text)
	case paramsUTF8:
		if mt, found := intern(s); found {
			return mt, nil
		}

		src = owned(s)
	default:
		src = ownedWithParams(s, &l.params)
	}

	return MediaType{
		source: src,
		slash:  l.slash,
		plus:   l.plus,
		params: l.params,
	}, nil
}

// layout is the result of a scan: offsets only, no text is retained.
type layout struct {
	slash, plus int
	// end is the length of the text to keep. It is shorter than the input only when
	// the input ends with a semicolon not followed by any parameter.
	end    int
	params params
}

func scan(s string, wildcard bool) (l layout, err error) {
	l.end = len(s)

	// top-level type
	for i := 0; ; i++ {
		if i == len(s) {
			return l, ErrMissingSlash
		}

		c := s[i]
		if c == '/' && i > 0 {
			l.slash = i
			break
		}

		if c == '*' && i == 0 && len(s) > 1 && s[1] == '/' {
			if !wildcard {
				return l, ErrInvalidRange
			}

			// */* followed by parameters. The bare */* never gets here
			switch {
			case len(s) == 2:
				return l, invalidToken(2, 0)
			case s[2] != '*':
				return l, invalidToken(2, s[2])
			}

			l.slash = 1
			break
		}

		if !httpchars.IsToken(c) {
			return l, invalidToken(i, c)
		}
	}

	// subtype
	start := l.slash + 1
	semicolon := -1

subtype:
	for i := start; i < len(s); i++ {
		c := s[i]

		switch {
		case c == '+' && i > start:
			l.plus = i
		case c == ';' && i > start:
			semicolon = i
			break subtype
		case c == '*' && i == start && wildcard:
			// the star must be the whole subtype
			switch {
			case i+1 == len(s):
				return l, nil
			case s[i+1] == ';':
				semicolon = i + 1
				break subtype
			default:
				return l, invalidToken(i+1, s[i+1])
			}
		case httpchars.IsToken(c):
		default:
			return l, invalidToken(i, c)
		}
	}

	if semicolon == -1 {
		if start == len(s) {
			return l, invalidToken(len(s), 0)
		}

		return l, nil
	}

	l.params, err = scanParams(s, semicolon)
	if err == nil && l.params.kind == paramsNone {
		l.end = semicolon
	}

	return l, err
}

func scanParams(s string, semicolon int) (ps params, err error) {
	ps.semicolon = semicolon
	start := semicolon + 1

	for start < len(s) {
		var name, value span

		// name
		if s[start] == ' ' {
			start++
		}

		i := start
		for ; ; i++ {
			if i == len(s) {
				return ps, ErrMissingEqual
			}

			c := s[i]
			if c == '=' && i > start {
				break
			}

			if !httpchars.IsToken(c) {
				return ps, invalidToken(i, c)
			}
		}

		name = span{start, i}
		start = i + 1

		// value
		if start < len(s) && s[start] == '"' {
			if value, start, err = scanQuoted(s, start); err != nil {
				return ps, err
			}
		} else {
			for i = start; i < len(s) && s[i] != ';'; i++ {
				if !httpchars.IsToken(s[i]) {
					return ps, invalidToken(i, s[i])
				}
			}

			if i == start {
				if i == len(s) {
					return ps, invalidToken(i, 0)
				}

				return ps, invalidToken(i, s[i])
			}

			value = span{start, i}
			start = i + 1
		}

		if ps.kind == paramsNone && name.start == semicolon+2 &&
			strcomp.EqualFold(name.of(s), charsetName) &&
			strcomp.EqualFold(value.of(s), utf8Value) {
			ps.kind = paramsUTF8
			continue
		}

		ps.push(pair{name, value})
	}

	return ps, nil
}

// scanQuoted scans a quoted-string starting at the opening quote. The returned span
// includes both quotes, next points past the semicolon ending the parameter (or at
// the end of the input.)
func scanQuoted(s string, quote int) (value span, next int, err error) {
	i := quote + 1

	for ; ; i++ {
		if i == len(s) {
			return value, 0, ErrMissingQuote
		}

		switch c := s[i]; {
		case c == '\\':
			i++
			if i == len(s) {
				return value, 0, ErrMissingQuote
			}

			if !httpchars.IsQuoted(s[i]) {
				return value, 0, invalidToken(i, s[i])
			}
		case c == '"':
			value = span{quote, i + 1}

			for i++; i < len(s); i++ {
				switch s[i] {
				case ';':
					return value, i + 1, nil
				case ' ':
				default:
					return value, 0, invalidToken(i, s[i])
				}
			}

			return value, len(s), nil
		case !httpchars.IsQuoted(c):
			return value, 0, invalidToken(i, c)
		}
	}
}
