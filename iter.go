package mediatype

import "iter"

// ParamIter is a cursor over the parameters of a media type, yielding them in the
// order they were parsed. It doesn't allocate. Obtain a fresh one via
// MediaType.Params to start over.
type ParamIter struct {
	text   string
	params params
	next   int
}

// Params returns an iterator over the parameters.
func (m MediaType) Params() ParamIter {
	return ParamIter{
		text:   m.source.text,
		params: m.params,
	}
}

// Next returns the next parameter. Quoted values are returned with their quotes.
func (p *ParamIter) Next() (name, value string, ok bool) {
	if p.next >= p.params.Len() {
		return "", "", false
	}

	if p.params.kind == paramsUTF8 {
		p.next++
		return charsetName, utf8Value, true
	}

	name, value = p.params.at(p.next).of(p.text)
	p.next++

	return name, value, true
}

// Len returns the number of parameters yet to be returned.
func (p *ParamIter) Len() int {
	return p.params.Len() - p.next
}

// AllParams returns an iterator over name-value pairs of the parameters, as an
// alternative to Params for the range-over-func form.
func (m MediaType) AllParams() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		it := m.Params()
		for {
			name, value, ok := it.Next()
			if !ok || !yield(name, value) {
				return
			}
		}
	}
}
