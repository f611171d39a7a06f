// Package charset resolves the charset of a media type into a text encoding. It only
// looks the encoding up, decoding the content is up to the caller.
package charset

import (
	"errors"
	"fmt"

	"github.com/indigo-web/mediatype"
	"github.com/indigo-web/mediatype/config"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
)

var ErrUnknown = errors.New("unknown charset")

// Of returns the encoding of the media type: the one named by its charset parameter,
// the conventional one for the media type, or the configured default.
func Of(mt mediatype.MediaType, cfg *config.Config) (encoding.Encoding, error) {
	name, found := mediatype.DefaultCharset(mt)
	if !found {
		name = cfg.Charset.Default
	}

	return Lookup(name)
}

// Lookup returns the encoding registered under the IANA name or alias.
func Lookup(name string) (encoding.Encoding, error) {
	// the most common case is resolved without consulting the index
	if name == "utf-8" {
		return unicode.UTF8, nil
	}

	enc, err := ianaindex.MIME.Encoding(name)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknown, name)
	}

	return enc, nil
}

// Canonical returns the preferred MIME name of the charset, e.g. "ISO-8859-1" for
// "latin1".
func Canonical(name string) (string, error) {
	enc, err := Lookup(name)
	if err != nil {
		return "", err
	}

	canonical, err := ianaindex.MIME.Name(enc)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrUnknown, name)
	}

	return canonical, nil
}
