package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/kidventure/partnerhub/pkg/httpx"
	"github.com/stretchr/testify/require"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func hit(h http.Handler, target, remote string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.RemoteAddr = remote
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestIPKeyExtractor(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.168.1.1:12345"
	require.Equal(t, "192.168.1.1", httpx.IPKeyExtractor(req))

	req.Header.Set("X-Real-IP", "203.0.113.2")
	require.Equal(t, "203.0.113.2", httpx.IPKeyExtractor(req))

	req.Header.Set("X-Forwarded-For", "203.0.113.1, 192.168.1.1")
	require.Equal(t, "203.0.113.1", httpx.IPKeyExtractor(req))
}

func TestCompositeKeyExtractor_SkipsEmpty(t *testing.T) {
	ex := httpx.CompositeKeyExtractor(":", httpx.IPKeyExtractor, httpx.FormFieldKeyExtractor("email"))

	req := httptest.NewRequest(http.MethodGet, "/?email=Contact@Example.com", nil)
	req.RemoteAddr = "10.0.0.1:1"
	require.Equal(t, "10.0.0.1:contact@example.com", ex(req))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:1"
	require.Equal(t, "10.0.0.1", ex(req))
}

func TestRateLimitMiddleware(t *testing.T) {
	t.Run("blocks once the burst is spent", func(t *testing.T) {
		h := httpx.RateLimitByIP(httpx.RateLimitConfig{RequestsPerWindow: 3, Window: time.Minute, Burst: 3})(okHandler)

		for i := range 3 {
			require.Equal(t, http.StatusOK, hit(h, "/", "192.168.1.1:1").Code, "request %d", i+1)
		}

		rec := hit(h, "/", "192.168.1.1:1")
		require.Equal(t, http.StatusTooManyRequests, rec.Code)
		require.NotEmpty(t, rec.Header().Get("Retry-After"))
		require.Equal(t, "3", rec.Header().Get("X-RateLimit-Limit"))
		require.Equal(t, "1m0s", rec.Header().Get("X-RateLimit-Window"))
		require.Contains(t, rec.Body.String(), "rate_limit_exceeded")

		// Other clients have their own bucket.
		require.Equal(t, http.StatusOK, hit(h, "/", "192.168.1.2:1").Code)
	})

	t.Run("keys on form field", func(t *testing.T) {
		h := httpx.RateLimitByIPAndFormField(httpx.RateLimitConfig{RequestsPerWindow: 1, Window: time.Minute, Burst: 1}, "email")(okHandler)

		require.Equal(t, http.StatusOK, hit(h, "/?email=a@x.io", "10.0.0.1:1").Code)
		require.Equal(t, http.StatusTooManyRequests, hit(h, "/?email=a@x.io", "10.0.0.1:1").Code)
		require.Equal(t, http.StatusOK, hit(h, "/?email=b@x.io", "10.0.0.1:1").Code)
	})

	t.Run("empty key passes through", func(t *testing.T) {
		h := httpx.RateLimitMiddleware(httpx.RateLimitConfig{RequestsPerWindow: 1, Window: time.Minute, Burst: 1},
			func(*http.Request) string { return "" })(okHandler)

		for range 3 {
			require.Equal(t, http.StatusOK, hit(h, "/", "10.0.0.1:1").Code)
		}
	})
}

func TestRateLimitFromEnv(t *testing.T) {
	t.Setenv("RATELIMIT_TEST_REQUESTS", "42")
	t.Setenv("RATELIMIT_TEST_WINDOW_SEC", "10")
	t.Setenv("RATELIMIT_TEST_BURST", "-3")

	def := httpx.RateLimitConfig{RequestsPerWindow: 1, Window: time.Minute, Burst: 7}
	got := httpx.RateLimitFromEnv("TEST", def)

	require.Equal(t, 42, got.RequestsPerWindow)
	require.Equal(t, 10*time.Second, got.Window)
	require.Equal(t, 7, got.Burst)
}

func TestRateLimitProfilesAreOrdered(t *testing.T) {
	require.Less(t, httpx.StrictLimit.RequestsPerWindow, httpx.ModerateLimit.RequestsPerWindow)
	require.Less(t, httpx.ModerateLimit.RequestsPerWindow, httpx.LenientLimit.RequestsPerWindow)
	require.Less(t, httpx.LenientLimit.RequestsPerWindow, httpx.PublicLimit.RequestsPerWindow)
}
