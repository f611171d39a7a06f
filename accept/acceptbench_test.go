package accept

import (
	"testing"

	"github.com/indigo-web/mediatype"
	"github.com/indigo-web/mediatype/config"
)

func BenchmarkNegotiate(b *testing.B) {
	cfg := config.Default()
	header := "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,*/*;q=0.8"
	offers := []mediatype.MediaType{mediatype.ApplicationJSON, mediatype.TextHTML}

	b.Run("Parse", func(b *testing.B) {
		b.SetBytes(int64(len(header)))
		b.ReportAllocs()

		for i := 0; i < b.N; i++ {
			_, _ = Parse(header, cfg)
		}
	})

	b.Run("Negotiate", func(b *testing.B) {
		ranges, _ := Parse(header, cfg)
		b.ReportAllocs()
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			_, _ = Negotiate(ranges, offers...)
		}
	})
}
