package mediatype

import (
	"github.com/indigo-web/mediatype/internal/strutil"
	"github.com/indigo-web/utils/strcomp"
)

var extensions = map[string]MediaType{
	".avif":  ImageAVIF,
	".bmp":   ImageBMP,
	".css":   TextCSS,
	".csv":   TextCSV,
	".gif":   ImageGIF,
	".htm":   TextHTML,
	".html":  TextHTML,
	".ico":   ImageICO,
	".jpeg":  ImageJPEG,
	".jpg":   ImageJPEG,
	".js":    TextJavaScript,
	".mjs":   TextJavaScript,
	".json":  ApplicationJSON,
	".pdf":   ApplicationPDF,
	".png":   ImagePNG,
	".svg":   ImageSVG,
	".tsv":   TextTSV,
	".txt":   TextPlain,
	".vcf":   TextVCard,
	".wasm":  ApplicationWASM,
	".webp":  ImageWEBP,
	".woff":  FontWOFF,
	".woff2": FontWOFF2,
	".xml":   TextXML,
	".gz":    ApplicationGZIP,
	".sql":   ApplicationSQL,
	".tzif":  ApplicationTZIF,
	".yaml":  ApplicationYAML,
	".yml":   ApplicationYAML,
	".xfdf":  ApplicationXFDF,
	".zip":   ApplicationZIP,
	".zlib":  ApplicationZLIB,
	".zst":   ApplicationZSTD,
	".zstd":  ApplicationZSTD,
}

// ByExtension returns the media type associated with the file extension. The
// extension must include the leading dot and is matched case-insensitively.
func ByExtension(ext string) (MediaType, bool) {
	if mt, found := extensions[ext]; found {
		return mt, true
	}

	for key, mt := range extensions {
		if strcomp.EqualFold(key, ext) {
			return mt, true
		}
	}

	return MediaType{}, false
}

var defaultCharsets = map[string]string{
	"text/css":               "utf-8",
	"text/html":              "utf-8",
	"text/javascript":        "utf-8",
	"text/xml":               "utf-8",
	"text/csv":               "utf-8",
	"text/plain":             "us-ascii",
	"application/json":       "utf-8",
	"application/javascript": "utf-8",
}

// DefaultCharset returns the charset of the media type: the value of its charset
// parameter (unquoted) if present, otherwise the charset conventionally assumed for the type
// (if any.)
func DefaultCharset(mt MediaType) (string, bool) {
	if charset, found := mt.Charset(); found {
		return strutil.Unquote(charset), true
	}

	charset, found := defaultCharsets[mt.Essence()]
	return charset, found
}
