package httpchars

// tchar = "!" / "#" / "$" / "%" / "&" / "'" / "+" / "-" / "." / "^" / "_" / "`" / "|" / "~" / DIGIT / ALPHA
//
// The asterisk is deliberately absent: it is only legal as a whole subtype of a media
// range, and the parser handles that case explicitly.
var tchars = [256]bool{
	false, false, false, false, false, false, false, false, false, false, false, false, false, false, false, false,
	false, false, false, false, false, false, false, false, false, false, false, false, false, false, false, false,
	false, true, false, true, true, true, true, true, false, false, false, true, false, true, true, false,
	true, true, true, true, true, true, true, true, true, true, false, false, false, false, false, false,
	false, true, true, true, true, true, true, true, true, true, true, true, true, true, true, true,
	true, true, true, true, true, true, true, true, true, true, true, false, false, false, true, true,
	true, true, true, true, true, true, true, true, true, true, true, true, true, true, true, true,
	true, true, true, true, true, true, true, true, true, true, true, false, true, false, true, false,
	false, false, false, false, false, false, false, false, false, false, false, false, false, false, false, false,
	false, false, false, false, false, false, false, false, false, false, false, false, false, false, false, false,
	false, false, false, false, false, false, false, false, false, false, false, false, false, false, false, false,
	false, false, false, false, false, false, false, false, false, false, false, false, false, false, false, false,
	false, false, false, false, false, false, false, false, false, false, false, false, false, false, false, false,
	false, false, false, false, false, false, false, false, false, false, false, false, false, false, false, false,
	false, false, false, false, false, false, false, false, false, false, false, false, false, false, false, false,
	false, false, false, false, false, false, false, false, false, false, false, false, false, false, false, false,
}

// IsToken reports whether the byte may appear in a type, subtype or parameter name.
func IsToken(c byte) bool {
	return tchars[c]
}

// IsQuoted reports whether the byte may appear inside a quoted parameter value,
// either directly or after a backslash.
func IsQuoted(c byte) bool {
	return c == '\t' || (c > 31 && c != 127)
}

// IsTokenString reports whether the string is a non-empty run of token bytes.
func IsTokenString(str string) bool {
	for i := 0; i < len(str); i++ {
		if !tchars[str[i]] {
			return false
		}
	}

	return len(str) > 0
}
