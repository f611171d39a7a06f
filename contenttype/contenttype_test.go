package contenttype

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/indigo-web/mediatype"
	"github.com/indigo-web/mediatype/config"
	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
)

func newRequest(contentType, accept string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{}"))
	if len(contentType) > 0 {
		r.Header.Set("Content-Type", contentType)
	}
	if len(accept) > 0 {
		r.Header.Set("Accept", accept)
	}

	return r
}

func TestFromRequest(t *testing.T) {
	t.Run("present", func(t *testing.T) {
		mt, err := FromRequest(newRequest("Application/JSON; charset=utf-8", ""))
		require.NoError(t, err)
		require.True(t, mt.Equal(mediatype.ApplicationJSONUTF8))
	})

	t.Run("absent", func(t *testing.T) {
		_, err := FromRequest(newRequest("", ""))
		require.ErrorIs(t, err, ErrNoContentType)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := FromRequest(newRequest("json", ""))
		require.ErrorIs(t, err, mediatype.ErrMissingSlash)
	})
}

func TestFromFastHTTP(t *testing.T) {
	var h fasthttp.RequestHeader
	h.SetContentType("Text/HTML; level=1")

	mt, err := FromFastHTTP(&h)
	require.NoError(t, err)
	require.Equal(t, "text/html", mt.Essence())

	// the result must not alias the header buffer
	h.SetContentType("image/png; level=2")
	require.Equal(t, "text/html; level=1", mt.String())

	h.Reset()
	_, err = FromFastHTTP(&h)
	require.ErrorIs(t, err, ErrNoContentType)
}

func TestNegotiate(t *testing.T) {
	cfg := config.Default()
	offers := []mediatype.MediaType{mediatype.ApplicationJSON, mediatype.TextHTML}

	t.Run("net/http", func(t *testing.T) {
		mt, ok := Negotiate(newRequest("", "text/html, application/json;q=0.9"), cfg, offers...)
		require.True(t, ok)
		require.Equal(t, mediatype.TextHTML, mt)

		mt, ok = Negotiate(newRequest("", ""), cfg, offers...)
		require.True(t, ok)
		require.Equal(t, mediatype.ApplicationJSON, mt)

		_, ok = Negotiate(newRequest("", "image/*"), cfg, offers...)
		require.False(t, ok)
	})

	t.Run("fasthttp", func(t *testing.T) {
		var h fasthttp.RequestHeader
		h.Set("Accept", "text/*;q=0.5, application/*;q=0.1")

		mt, ok := NegotiateFastHTTP(&h, cfg, offers...)
		require.True(t, ok)
		require.Equal(t, mediatype.TextHTML, mt)
	})

	t.Run("malformed accept", func(t *testing.T) {
		mt, ok := Negotiate(newRequest("", "text"), cfg, offers...)
		require.True(t, ok)
		require.Equal(t, mediatype.ApplicationJSON, mt)
	})
}

func TestAllowed(t *testing.T) {
	allowed := []mediatype.MediaType{mediatype.ApplicationJSON, mediatype.Must(mediatype.ParseRange("text/*"))}

	for _, tc := range []struct {
		Value string
		Want  bool
	}{
		{"application/json", true},
		{"application/json; charset=utf-8", true},
		{"text/csv", true},
		{"image/png", false},
		{"application/xml", false},
	} {
		t.Run(tc.Value, func(t *testing.T) {
			require.Equal(t, tc.Want, Allowed(mediatype.Must(mediatype.Parse(tc.Value)), allowed...))
		})
	}
}

func TestRequire(t *testing.T) {
	var called int
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called++
		w.WriteHeader(http.StatusNoContent)
	})
	handler := Require(next, mediatype.ApplicationJSON)

	for _, tc := range []struct {
		ContentType string
		Status      int
	}{
		{"application/json", http.StatusNoContent},
		{"Application/Json; charset=utf-8", http.StatusNoContent},
		{"text/plain", http.StatusUnsupportedMediaType},
		{"", http.StatusUnsupportedMediaType},
		{"application", http.StatusUnsupportedMediaType},
	} {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, newRequest(tc.ContentType, ""))
		require.Equal(t, tc.Status, rec.Code, tc.ContentType)
	}

	require.Equal(t, 2, called)
}

func TestRequireHandle(t *testing.T) {
	router := httprouter.New()
	router.POST("/upload/:name", RequireHandle(func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		_, _ = w.Write([]byte(ps.ByName("name")))
	}, mediatype.Must(mediatype.ParseRange("image/*"))))

	t.Run("allowed", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/upload/cat", strings.NewReader("..."))
		r.Header.Set("Content-Type", "image/png")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, r)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "cat", rec.Body.String())
	})

	t.Run("rejected", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/upload/cat", strings.NewReader("..."))
		r.Header.Set("Content-Type", "text/plain")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, r)
		require.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
	})
}

func TestRequireFastHTTP(t *testing.T) {
	handler := RequireFastHTTP(func(ctx *fasthttp.RequestCtx) {
		ctx.SetStatusCode(fasthttp.StatusCreated)
	}, mediatype.ApplicationWWWForm, mediatype.MultipartFormData)

	for _, tc := range []struct {
		ContentType string
		Status      int
	}{
		{"application/x-www-form-urlencoded", fasthttp.StatusCreated},
		{"multipart/form-data; boundary=abc", fasthttp.StatusCreated},
		{"application/json", fasthttp.StatusUnsupportedMediaType},
	} {
		var ctx fasthttp.RequestCtx
		ctx.Request.Header.SetContentType(tc.ContentType)
		handler(&ctx)
		require.Equal(t, tc.Status, ctx.Response.StatusCode(), tc.ContentType)
	}
}
