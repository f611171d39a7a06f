package mediatype

import (
	"fmt"
	"strings"
	"testing"

	"github.com/dchest/uniuri"
	"github.com/stretchr/testify/require"
)

func TestParamIter(t *testing.T) {
	t.Run("none", func(t *testing.T) {
		it := TextPlain.Params()
		require.Zero(t, it.Len())
		_, _, ok := it.Next()
		require.False(t, ok)
	})

	t.Run("utf-8 shorthand", func(t *testing.T) {
		it := TextPlainUTF8.Params()
		require.Equal(t, 1, it.Len())
		name, value, ok := it.Next()
		require.True(t, ok)
		require.Equal(t, "charset", name)
		require.Equal(t, "utf-8", value)
		require.Zero(t, it.Len())
		_, _, ok = it.Next()
		require.False(t, ok)
	})

	t.Run("len counts down", func(t *testing.T) {
		for _, input := range []string{"a/b;x=1;y=2;z=3", "a/b;p1=1;p2=2;p3=3;p4=4;p5=5"} {
			mt := mustParse(t, input)
			it := mt.Params()
			total := it.Len()

			for i := total; i > 0; i-- {
				require.Equal(t, i, it.Len())
				_, _, ok := it.Next()
				require.True(t, ok)
			}

			require.Zero(t, it.Len())
		}
	})

	t.Run("restartable", func(t *testing.T) {
		mt := mustParse(t, "a/b;x=1;y=2")
		first := collectParams(mt)
		second := collectParams(mt)
		require.Equal(t, first, second)
		require.Equal(t, []wantedParam{{"x", "1"}, {"y", "2"}}, first)
	})

	t.Run("early break", func(t *testing.T) {
		mt := mustParse(t, "a/b;x=1;y=2;z=3;w=4")
		var names []string
		for name := range mt.AllParams() {
			names = append(names, name)
			if name == "y" {
				break
			}
		}

		require.Equal(t, []string{"x", "y"}, names)
	})

	t.Run("random insertion order", func(t *testing.T) {
		for n := 1; n <= 12; n++ {
			var (
				b      strings.Builder
				wanted []wantedParam
			)

			b.WriteString("application/x-random")
			for i := 0; i < n; i++ {
				name := fmt.Sprintf("p%d%s", i, strings.ToLower(uniuri.NewLen(6)))
				value := uniuri.NewLen(8)
				wanted = append(wanted, wantedParam{name, value})
				b.WriteString(";" + name + "=" + value)
			}

			mt := mustParse(t, b.String())
			require.Equal(t, wanted, collectParams(mt))
			all := mt.Params()
			require.Equal(t, n, all.Len())
		}
	})
}

func TestParam(t *testing.T) {
	mt := mustParse(t, `multipart/form-data; Boundary=XyZ; charset="UTF-8"`)

	boundary, ok := mt.Boundary()
	require.True(t, ok)
	require.Equal(t, "XyZ", boundary)

	charset, ok := mt.Charset()
	require.True(t, ok)
	require.Equal(t, `"utf-8"`, charset)

	value, ok := mt.Param("BOUNDARY")
	require.True(t, ok)
	require.Equal(t, "XyZ", value)

	_, ok = mt.Param("filename")
	require.False(t, ok)

	charset, ok = TextHTMLUTF8.Charset()
	require.True(t, ok)
	require.Equal(t, "utf-8", charset)
}
