package mediatype

const (
	charsetName = "charset"
	utf8Value   = "utf-8"
	inlineCap   = 3
)

type paramsKind uint8

const (
	paramsNone paramsKind = iota
	// paramsUTF8 is exactly "; charset=utf-8" right after the semicolon. The text is
	// fully determined by the semicolon offset, so no pairs are stored.
	paramsUTF8
	// paramsInline holds 1..3 pairs in a fixed array.
	paramsInline
	// paramsMany holds 4 or more pairs in a slice.
	paramsMany
)

// params is the parameter storage of a MediaType. Every span refers to the text of
// the MediaType holding it.
type params struct {
	kind      paramsKind
	n         uint8
	semicolon int
	inline    [inlineCap]pair
	many      []pair
}

// utf8Pair materializes the pair of the paramsUTF8 variant from the semicolon offset.
func utf8Pair(semicolon int) pair {
	name := span{semicolon + 2, semicolon + 2 + len(charsetName)}
	value := span{name.end + 1, name.end + 1 + len(utf8Value)}

	return pair{name, value}
}

func (p *params) push(next pair) {
	switch p.kind {
	case paramsNone:
		p.kind = paramsInline
		p.inline[0] = next
		p.n = 1
	case paramsUTF8:
		p.kind = paramsInline
		p.inline[0] = utf8Pair(p.semicolon)
		p.inline[1] = next
		p.n = 2
	case paramsInline:
		if p.n < inlineCap {
			p.inline[p.n] = next
			p.n++
			return
		}

		p.kind = paramsMany
		p.many = make([]pair, 0, 2*inlineCap)
		p.many = append(p.many, p.inline[:]...)
		p.many = append(p.many, next)
		p.inline = [inlineCap]pair{}
		p.n = 0
	case paramsMany:
		p.many = append(p.many, next)
	}
}

// Len returns the number of parameters.
func (p *params) Len() int {
	switch p.kind {
	case paramsUTF8:
		return 1
	case paramsInline:
		return int(p.n)
	case paramsMany:
		return len(p.many)
	default:
		return 0
	}
}

// at returns the i-th pair. It must not be called on paramsNone.
func (p *params) at(i int) pair {
	switch p.kind {
	case paramsUTF8:
		return utf8Pair(p.semicolon)
	case paramsInline:
		return p.inline[i]
	default:
		return p.many[i]
	}
}

// pairs returns the stored pairs. For paramsUTF8 it returns nil, as there is
// nothing stored.
func (p *params) pairs() []pair {
	switch p.kind {
	case paramsInline:
		return p.inline[:p.n]
	case paramsMany:
		return p.many
	default:
		return nil
	}
}

type fastEq uint8

const (
	undetermined fastEq = iota
	equals
	notEquals
)

func (p *params) fastEqual(other *params) fastEq {
	switch {
	case p.kind == paramsNone && other.kind == paramsNone,
		p.kind == paramsUTF8 && other.kind == paramsUTF8:
		return equals
	case p.kind == paramsNone || other.kind == paramsNone:
		return notEquals
	default:
		return undetermined
	}
}
