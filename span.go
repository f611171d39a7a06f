package mediatype

// span is a half-open range of byte offsets. It means nothing on its own and is
// always resolved against the text of the MediaType holding it.
type span struct {
	start, end int
}

func (s span) of(text string) string {
	return text[s.start:s.end]
}

type pair struct {
	name, value span
}

func (p pair) of(text string) (name, value string) {
	return p.name.of(text), p.value.of(text)
}
