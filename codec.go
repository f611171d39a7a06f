package mediatype

import (
	"strings"

	"github.com/indigo-web/mediatype/internal/httpchars"
	"github.com/indigo-web/utils/uf"
	json "github.com/json-iterator/go"
)

// writeValue writes a parameter value, quoting it unless it's a token.
func writeValue(b *strings.Builder, value string) {
	if httpchars.IsTokenString(value) {
		b.WriteString(value)
		return
	}

	b.WriteByte('"')
	for i := 0; i < len(value); i++ {
		switch c := value[i]; c {
		case '"', '\\':
			b.WriteByte('\\')
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
}

func (m MediaType) MarshalText() ([]byte, error) {
	return []byte(m.source.text), nil
}

// UnmarshalText parses the text as a media range, so wildcards are accepted.
func (m *MediaType) UnmarshalText(text []byte) (err error) {
	// the parser never retains its input
	*m, err = ParseRange(uf.B2S(text))
	return err
}

// MarshalJSON renders the media type as a JSON string. The zero value is rendered
// as null.
func (m MediaType) MarshalJSON() ([]byte, error) {
	if m.IsZero() {
		return []byte("null"), nil
	}

	return json.Marshal(m.source.text)
}

func (m *MediaType) UnmarshalJSON(data []byte) error {
	var str *string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}

	if str == nil {
		*m = MediaType{}
		return nil
	}

	return m.UnmarshalText([]byte(*str))
}
