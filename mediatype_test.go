package mediatype

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("interned", func(t *testing.T) {
		mt, err := New("Text", "Plain", "Charset", "UTF-8")
		require.NoError(t, err)
		require.Equal(t, "text/plain; charset=utf-8", mt.String())
		require.True(t, mt.Equal(TextPlainUTF8))
		require.True(t, mt.source.atom)
	})

	t.Run("quoted values", func(t *testing.T) {
		mt, err := New("a", "b", "title", "hello world", "q", `say "hi"`)
		require.NoError(t, err)
		require.Equal(t, `a/b; title="hello world"; q="say \"hi\""`, mt.String())
	})

	t.Run("empty value", func(t *testing.T) {
		mt, err := New("a", "b", "x", "")
		require.NoError(t, err)
		value, _ := mt.Param("x")
		require.Equal(t, `""`, value)
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := New("a", "b", "odd")
		require.ErrorIs(t, err, ErrMissingEqual)

		_, err = New("a b", "c")
		require.ErrorIs(t, err, ErrInvalidToken)

		_, err = New("a", "b", "x", "\x00")
		require.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestMust(t *testing.T) {
	require.Equal(t, "text/html", Must(Parse("text/html")).String())
	require.Panics(t, func() {
		Must(Parse("text"))
	})
}

func TestMultipart(t *testing.T) {
	mt, err := Multipart("form-data")
	require.NoError(t, err)
	require.Equal(t, "multipart", mt.Type())
	require.Equal(t, "form-data", mt.Subtype())

	boundary, ok := mt.Boundary()
	require.True(t, ok)
	require.Len(t, boundary, boundaryLen)

	other, err := Multipart("form-data")
	require.NoError(t, err)
	require.False(t, mt.Equal(other))
}

func TestZeroValue(t *testing.T) {
	var mt MediaType
	require.True(t, mt.IsZero())
	require.Empty(t, mt.Type())
	require.Empty(t, mt.Subtype())
	require.Empty(t, mt.Essence())
	require.Empty(t, mt.String())
	require.False(t, mt.HasParams())
	require.False(t, mt.IsWildcard())
	require.False(t, TextPlain.IsZero())
}

func TestConstants(t *testing.T) {
	for text, mt := range atoms {
		again, err := ParseRange(text)
		require.NoError(t, err, text)
		require.True(t, again.source.atom, text)
		require.True(t, again.Equal(mt), text)
		require.Equal(t, text, mt.String())
	}

	suffix, ok := ImageSVG.Suffix()
	require.True(t, ok)
	require.Equal(t, "xml", suffix)
	require.Equal(t, "svg", ImageSVG.Subtype())
	require.True(t, ApplicationJSONUTF8.HasParams())
}

func TestByExtension(t *testing.T) {
	mt, ok := ByExtension(".html")
	require.True(t, ok)
	require.True(t, mt.Equal(TextHTML))

	mt, ok = ByExtension(".JSON")
	require.True(t, ok)
	require.True(t, mt.Equal(ApplicationJSON))

	_, ok = ByExtension(".unknown")
	require.False(t, ok)
}

func TestDefaultCharset(t *testing.T) {
	charset, ok := DefaultCharset(TextHTML)
	require.True(t, ok)
	require.Equal(t, "utf-8", charset)

	charset, ok = DefaultCharset(mustParse(t, `text/html; charset="ISO-8859-1"`))
	require.True(t, ok)
	require.Equal(t, "iso-8859-1", charset)

	_, ok = DefaultCharset(ImagePNG)
	require.False(t, ok)
}
