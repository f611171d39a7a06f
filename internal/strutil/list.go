package strutil

import (
	"iter"
	"strings"
)

// WalkList iterates over the elements of a comma-separated header value. Commas inside
// quoted strings do not split, empty elements are skipped and every element is
// stripped of surrounding whitespace.
func WalkList(data string) iter.Seq[string] {
	return func(yield func(string) bool) {
		var quoted, escaped bool
		start := 0

		for i := 0; i < len(data); i++ {
			c := data[i]

			switch {
			case escaped:
				escaped = false
			case quoted && c == '\\':
				escaped = true
			case c == '"':
				quoted = !quoted
			case c == ',' && !quoted:
				if elem := StripWS(data[start:i]); len(elem) > 0 && !yield(elem) {
					return
				}

				start = i + 1
			}
		}

		if elem := StripWS(data[start:]); len(elem) > 0 {
			yield(elem)
		}
	}
}

// Join works in the same way as the strings.Join does, except that it operates an iterator
// as opposed to greedy string slice.
func Join(elems iter.Seq[string], sep string) string {
	var b strings.Builder

	for elem := range elems {
		if b.Len() > 0 {
			b.WriteString(sep)
		}

		b.WriteString(elem)
	}

	return b.String()
}
