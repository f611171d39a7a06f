package config

type (
	AcceptRanges struct {
		Default, Maximal int
	}

	Accept struct {
		// Ranges controls the slice of parsed media ranges. Default is its initial capacity,
		// Maximal is the hard limit of ranges a single Accept header may list. Exceeding it
		// results in accept.ErrTooManyRanges.
		Ranges AcceptRanges
		// MaxLength limits the length of an Accept header value in bytes.
		MaxLength int
		// DefaultQuality is the weight of a range with no q parameter, in thousandths.
		// RFC 7231 says it is 1 (i.e. 1000.)
		DefaultQuality uint16
	}

	Charset struct {
		// Default is the charset assumed by charset.Of when a media type carries
		// neither an explicit charset parameter nor a conventional default.
		Default string
	}
)

// Config holds limits and defaults used by the accept, charset and contenttype packages.
//
// You must ALWAYS modify defaults (returned via Default()) and NEVER try to initialize the
// config manually, because most likely this will result in ambiguous errors.
type Config struct {
	Accept  Accept
	Charset Charset
}

// Default returns default config.
func Default() *Config {
	return &Config{
		Accept: Accept{
			Ranges: AcceptRanges{
				Default: 8,
				// browsers rarely send more than a dozen
				Maximal: 64,
			},
			MaxLength:      4 * 1024,
			DefaultQuality: 1000,
		},
		Charset: Charset{
			Default: "us-ascii",
		},
	}
}
