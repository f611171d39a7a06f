// Package accept implements the Accept header (RFC 7231, section 5.3.2): parsing media
// ranges with their weights and choosing the best of the offered media types.
package accept

import (
	"errors"
	"fmt"
	"iter"

	"github.com/indigo-web/mediatype"
	"github.com/indigo-web/mediatype/config"
	"github.com/indigo-web/mediatype/internal/strutil"
	"github.com/indigo-web/utils/strcomp"
	json "github.com/json-iterator/go"
)

var (
	ErrTooManyRanges = errors.New("too many media ranges")
	ErrTooLong       = errors.New("accept header is too long")
	ErrBadQuality    = errors.New("malformed quality value")
)

const qualityParam = "q"

// Range is a media range along with its weight.
type Range struct {
	mediatype.MediaType
	// Quality is the weight in thousandths, from 0 (not acceptable) to 1000.
	Quality uint16
	// params is the number of media type parameters, i.e. those preceding the weight.
	// Parameters following it are accept extensions and don't take part in matching.
	params int
}

// NewRange makes a range out of an already parsed media type. The q parameter, if
// present, is honored.
func NewRange(mt mediatype.MediaType, defaultQuality uint16) (Range, error) {
	r := Range{
		MediaType: mt,
		Quality:   defaultQuality,
	}

	it := mt.Params()
	for {
		name, value, ok := it.Next()
		if !ok {
			all := mt.Params()
			r.params = all.Len()
			return r, nil
		}

		if name == qualityParam {
			quality, ok := parseQuality(strutil.Unquote(value))
			if !ok {
				return r, fmt.Errorf("%w: %s", ErrBadQuality, value)
			}

			r.Quality = quality
			all := mt.Params()
			r.params = all.Len() - it.Len() - 1
			return r, nil
		}
	}
}

// Parse parses the value of an Accept header. An empty value results in no ranges,
// meaning that any media type is acceptable.
func Parse(header string, cfg *config.Config) ([]Range, error) {
	if len(header) > cfg.Accept.MaxLength {
		return nil, ErrTooLong
	}

	var ranges []Range

	for elem := range strutil.WalkList(header) {
		if len(ranges) >= cfg.Accept.Ranges.Maximal {
			return nil, ErrTooManyRanges
		}

		mt, err := mediatype.ParseRange(elem)
		if err != nil {
			return nil, fmt.Errorf("media range %q: %w", elem, err)
		}

		r, err := NewRange(mt, cfg.Accept.DefaultQuality)
		if err != nil {
			return nil, err
		}

		if ranges == nil {
			ranges = make([]Range, 0, cfg.Accept.Ranges.Default)
		}

		ranges = append(ranges, r)
	}

	return ranges, nil
}

// Specificity ranks how narrow the range is: */* is the broadest, type/* is narrower,
// and a full media type is narrower the more parameters it constrains.
func (r Range) Specificity() int {
	switch {
	case r.Type() == "*":
		return 0
	case r.Subtype() == "*":
		return 1
	default:
		return 2 + r.params
	}
}

// Matches tells whether the media type falls into the range. Every media type
// parameter of the range must be present in mt with the same value.
func (r Range) Matches(mt mediatype.MediaType) bool {
	switch {
	case r.Type() == "*":
	case !strcomp.EqualFold(r.Type(), mt.Type()):
		return false
	case r.Subtype() == "*":
	case !strcomp.EqualFold(r.Subtype(), mt.Subtype()):
		return false
	default:
		suffix, _ := r.Suffix()
		mtSuffix, _ := mt.Suffix()
		if !strcomp.EqualFold(suffix, mtSuffix) {
			return false
		}
	}

	for name, value := range r.mediaParams() {
		actual, found := mt.Param(name)
		if !found || strutil.Unquote(actual) != strutil.Unquote(value) {
			return false
		}
	}

	return true
}

func (r Range) mediaParams() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		it := r.Params()
		for i := 0; i < r.params; i++ {
			name, value, _ := it.Next()
			if !yield(name, value) {
				return
			}
		}
	}
}

// Negotiate returns the offer with the highest weight. The weight of an offer is the
// quality of the most specific range matching it, ties are resolved in favour of the
// earlier offer. No ranges at all means that anything is acceptable.
func Negotiate(ranges []Range, offers ...mediatype.MediaType) (mediatype.MediaType, bool) {
	if len(offers) == 0 {
		return mediatype.MediaType{}, false
	}

	if len(ranges) == 0 {
		return offers[0], true
	}

	best, bestQuality := -1, uint16(0)

	for i, offer := range offers {
		quality, ok := Quality(ranges, offer)
		if ok && quality > bestQuality {
			best, bestQuality = i, quality
		}
	}

	if best == -1 {
		return mediatype.MediaType{}, false
	}

	return offers[best], true
}

// Quality returns the weight of the media type according to the most specific matching
// range. If no range matches, false is returned.
func Quality(ranges []Range, mt mediatype.MediaType) (quality uint16, found bool) {
	specificity := -1

	for _, r := range ranges {
		if s := r.Specificity(); s > specificity && r.Matches(mt) {
			specificity, quality = s, r.Quality
		}
	}

	return quality, specificity != -1
}

// String renders the ranges back into a header value.
func String(ranges []Range) string {
	return strutil.Join(func(yield func(string) bool) {
		for _, r := range ranges {
			if !yield(r.MediaType.String()) {
				return
			}
		}
	}, ", ")
}

type rangeJSON struct {
	Type    string  `json:"type"`
	Quality float64 `json:"q"`
}

// MarshalJSON renders the range as an object, so the weight isn't lost to the
// promoted MediaType.MarshalJSON.
func (r Range) MarshalJSON() ([]byte, error) {
	return json.Marshal(rangeJSON{
		Type:    r.MediaType.String(),
		Quality: float64(r.Quality) / 1000,
	})
}

func (r *Range) UnmarshalJSON(data []byte) error {
	var raw rangeJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if raw.Quality < 0 || raw.Quality > 1 {
		return ErrBadQuality
	}

	mt, err := mediatype.ParseRange(raw.Type)
	if err != nil {
		return err
	}

	quality := uint16(raw.Quality*1000 + 0.5)
	parsed, err := NewRange(mt, quality)
	if err != nil {
		return err
	}

	// an explicit weight in the object takes precedence over the q parameter
	parsed.Quality = quality
	*r = parsed

	return nil
}
