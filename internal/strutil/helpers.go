package strutil

import "strings"

func LStripWS(str string) string {
	for i := 0; i < len(str); i++ {
		switch str[i] {
		case ' ', '\t':
		default:
			return str[i:]
		}
	}

	return ""
}

func RStripWS(str string) string {
	for i := len(str); i > 0; i-- {
		switch str[i-1] {
		case ' ', '\t':
		default:
			return str[:i]
		}
	}

	return ""
}

// StripWS strips optional whitespace (spaces and horizontal tabs) on both sides.
func StripWS(str string) string {
	return RStripWS(LStripWS(str))
}

// Unquote strips surrounding double quotes and resolves quoted pairs. Strings without
// escapes are returned without copying.
func Unquote(str string) string {
	if len(str) < 2 || str[0] != '"' || str[len(str)-1] != '"' {
		return str
	}

	str = str[1 : len(str)-1]
	if strings.IndexByte(str, '\\') == -1 {
		return str
	}

	var b strings.Builder
	b.Grow(len(str))

	for i := 0; i < len(str); i++ {
		if str[i] == '\\' && i+1 < len(str) {
			i++
		}

		b.WriteByte(str[i])
	}

	return b.String()
}

// LowerASCII lowercases ASCII letters in place and reports whether anything changed.
func LowerASCII(b []byte) (changed bool) {
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c | 0x20
			changed = true
		}
	}

	return changed
}
