// Package contenttype extracts media types from HTTP requests and guards handlers
// against unsupported request bodies. Both net/http and fasthttp are supported.
package contenttype

import (
	"errors"
	"net/http"

	"github.com/indigo-web/mediatype"
	"github.com/indigo-web/mediatype/accept"
	"github.com/indigo-web/mediatype/config"
	"github.com/indigo-web/utils/uf"
	"github.com/julienschmidt/httprouter"
	"github.com/valyala/fasthttp"
)

var ErrNoContentType = errors.New("no content type")

const (
	headerContentType = "Content-Type"
	headerAccept      = "Accept"
)

// FromRequest parses the Content-Type of the request.
func FromRequest(r *http.Request) (mediatype.MediaType, error) {
	return parseHeader(r.Header.Get(headerContentType))
}

// FromFastHTTP parses the Content-Type of the request. The header bytes aren't retained
// by the result.
func FromFastHTTP(h *fasthttp.RequestHeader) (mediatype.MediaType, error) {
	return parseHeader(uf.B2S(h.ContentType()))
}

func parseHeader(value string) (mediatype.MediaType, error) {
	if len(value) == 0 {
		return mediatype.MediaType{}, ErrNoContentType
	}

	return mediatype.Parse(value)
}

// Negotiate picks the offer the client prefers the most according to its Accept header.
func Negotiate(r *http.Request, cfg *config.Config, offers ...mediatype.MediaType) (mediatype.MediaType, bool) {
	return negotiate(r.Header.Get(headerAccept), cfg, offers)
}

// NegotiateFastHTTP is Negotiate for fasthttp requests.
func NegotiateFastHTTP(h *fasthttp.RequestHeader, cfg *config.Config, offers ...mediatype.MediaType) (mediatype.MediaType, bool) {
	return negotiate(uf.B2S(h.Peek(headerAccept)), cfg, offers)
}

func negotiate(header string, cfg *config.Config, offers []mediatype.MediaType) (mediatype.MediaType, bool) {
	ranges, err := accept.Parse(header, cfg)
	if err != nil {
		// a malformed Accept is treated as absent
		ranges = nil
	}

	return accept.Negotiate(ranges, offers...)
}

// Allowed tells whether the media type matches any of the allowed ones. Wildcards and
// parameters of the allowed media types work the same way as in an Accept header.
func Allowed(mt mediatype.MediaType, allowed ...mediatype.MediaType) bool {
	for _, a := range allowed {
		r, err := accept.NewRange(a, 0)
		if err == nil && r.Matches(mt) {
			return true
		}
	}

	return false
}

func check(value string, allowed []mediatype.MediaType) bool {
	mt, err := parseHeader(value)
	return err == nil && Allowed(mt, allowed...)
}

// Require responds with 415 Unsupported Media Type unless the request body is of one
// of the allowed media types.
func Require(next http.Handler, allowed ...mediatype.MediaType) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !check(r.Header.Get(headerContentType), allowed) {
			http.Error(w, http.StatusText(http.StatusUnsupportedMediaType), http.StatusUnsupportedMediaType)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireHandle is Require for httprouter handles.
func RequireHandle(next httprouter.Handle, allowed ...mediatype.MediaType) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		if !check(r.Header.Get(headerContentType), allowed) {
			http.Error(w, http.StatusText(http.StatusUnsupportedMediaType), http.StatusUnsupportedMediaType)
			return
		}

		next(w, r, ps)
	}
}

// RequireFastHTTP is Require for fasthttp handlers.
func RequireFastHTTP(next fasthttp.RequestHandler, allowed ...mediatype.MediaType) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		if !check(uf.B2S(ctx.Request.Header.ContentType()), allowed) {
			ctx.Error(fasthttp.StatusMessage(fasthttp.StatusUnsupportedMediaType), fasthttp.StatusUnsupportedMediaType)
			return
		}

		next(ctx)
	}
}
