package mediatype

// atom builds a media type backed directly by the constant text. The text must be
// lowercase and valid, otherwise the package fails to initialize.
func atom(text string) MediaType {
	l, err := scan(text, true)
	if err != nil || l.end != len(text) {
		panic("mediatype: bad constant " + text)
	}

	return MediaType{
		source: source{text: text, atom: true},
		slash:  l.slash,
		plus:   l.plus,
		params: l.params,
	}
}

var (
	// Any is the */* media range.
	Any = MediaType{
		source: source{text: "*/*", atom: true},
		slash:  1,
	}

	TextAny         = atom("text/*")
	TextPlain       = atom("text/plain")
	TextPlainUTF8   = atom("text/plain; charset=utf-8")
	TextHTML        = atom("text/html")
	TextHTMLUTF8    = atom("text/html; charset=utf-8")
	TextCSS         = atom("text/css")
	TextCSSUTF8     = atom("text/css; charset=utf-8")
	TextCSV         = atom("text/csv")
	TextCSVUTF8     = atom("text/csv; charset=utf-8")
	TextJavaScript  = atom("text/javascript")
	TextJSUTF8      = atom("text/javascript; charset=utf-8")
	TextXML         = atom("text/xml")
	TextXMLUTF8     = atom("text/xml; charset=utf-8")
	TextEventStream = atom("text/event-stream")
	TextVCard       = atom("text/vcard")
	TextTSV         = atom("text/tab-separated-values")

	ImageAny  = atom("image/*")
	ImageAVIF = atom("image/avif")
	ImageBMP  = atom("image/bmp")
	ImageGIF  = atom("image/gif")
	ImageJPEG = atom("image/jpeg")
	ImagePNG  = atom("image/png")
	ImageSVG  = atom("image/svg+xml")
	ImageICO  = atom("image/vnd.microsoft.icon")
	ImageWEBP = atom("image/webp")

	AudioAny = atom("audio/*")
	VideoAny = atom("video/*")

	FontWOFF  = atom("font/woff")
	FontWOFF2 = atom("font/woff2")

	ApplicationAny            = atom("application/*")
	ApplicationJSON           = atom("application/json")
	ApplicationJSONUTF8       = atom("application/json; charset=utf-8")
	ApplicationJavaScript     = atom("application/javascript")
	ApplicationJavaScriptUTF8 = atom("application/javascript; charset=utf-8")
	ApplicationMsgpack        = atom("application/msgpack")
	ApplicationOctetStream    = atom("application/octet-stream")
	ApplicationPDF            = atom("application/pdf")
	ApplicationXML            = atom("application/xml")
	ApplicationYAML           = atom("application/yaml")
	ApplicationWWWForm        = atom("application/x-www-form-urlencoded")
	ApplicationZIP            = atom("application/zip")
	ApplicationGZIP           = atom("application/gzip")
	ApplicationZLIB           = atom("application/zlib")
	ApplicationZSTD           = atom("application/zstd")
	ApplicationWASM           = atom("application/wasm")
	ApplicationSQL            = atom("application/sql")
	ApplicationTZIF           = atom("application/tzif")
	ApplicationXFDF           = atom("application/vnd.adobe.xfdf")

	MultipartFormData = atom("multipart/form-data")
)

// atoms is the intern table, keyed by the lowercase text. It is never written after
// the package is initialized.
var atoms = buildAtoms(
	Any, TextAny, TextPlain, TextPlainUTF8, TextHTML, TextHTMLUTF8, TextCSS, TextCSSUTF8,
	TextCSV, TextCSVUTF8, TextJavaScript, TextJSUTF8, TextXML, TextXMLUTF8, TextEventStream,
	TextVCard, TextTSV,
	ImageAny, ImageAVIF, ImageBMP, ImageGIF, ImageJPEG, ImagePNG, ImageSVG, ImageICO, ImageWEBP,
	AudioAny, VideoAny, FontWOFF, FontWOFF2,
	ApplicationAny, ApplicationJSON, ApplicationJSONUTF8, ApplicationJavaScript,
	ApplicationJavaScriptUTF8, ApplicationMsgpack, ApplicationOctetStream, ApplicationPDF,
	ApplicationXML, ApplicationYAML, ApplicationWWWForm, ApplicationZIP, ApplicationGZIP,
	ApplicationZLIB, ApplicationZSTD, ApplicationWASM, ApplicationSQL, ApplicationTZIF,
	ApplicationXFDF,
	MultipartFormData,
)

func buildAtoms(mts ...MediaType) map[string]MediaType {
	m := make(map[string]MediaType, len(mts))
	for _, mt := range mts {
		if len(mt.source.text) > maxAtomLen {
			panic("mediatype: constant is too long to be interned: " + mt.source.text)
		}

		m[mt.source.text] = mt
	}

	return m
}
