package infrastructure

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"net/netip"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPPageFetcher(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok":
			assert.Equal(t, userAgent, r.Header.Get("User-Agent"))
			_, _ = w.Write([]byte("<html>ok</html>"))
		case "/big":
			_, _ = w.Write([]byte(strings.Repeat("x", 100)))
		case "/slow":
			time.Sleep(200 * time.Millisecond)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	fetcher := NewHTTPPageFetcher(100*time.Millisecond, 10, true)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		body, err := NewHTTPPageFetcher(time.Second, 1<<20, true).Fetch(ctx, srv.URL+"/ok")
		require.NoError(t, err)
		assert.Equal(t, "<html>ok</html>", body)
	})

	t.Run("body is capped", func(t *testing.T) {
		body, err := fetcher.Fetch(ctx, srv.URL+"/big")
		require.NoError(t, err)
		assert.Len(t, body, 10)
	})

	t.Run("non-2xx is an error", func(t *testing.T) {
		_, err := fetcher.Fetch(ctx, srv.URL+"/missing")
		assert.ErrorContains(t, err, "404")
	})

	t.Run("timeout", func(t *testing.T) {
		_, err := fetcher.Fetch(ctx, srv.URL+"/slow")
		assert.Error(t, err)
	})

	t.Run("invalid url", func(t *testing.T) {
		_, err := fetcher.Fetch(ctx, "://bad")
		assert.Error(t, err)
	})
}

func TestHTTPPageFetcher_RefusesNonPublicHosts(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte("<html>internal</html>"))
	}))
	defer srv.Close()

	fetcher := NewHTTPPageFetcher(time.Second, 1<<20, false)

	for _, pageURL := range []string{
		srv.URL + "/admin",
		"http://localhost:" + strconv.Itoa(srv.Listener.Addr().(*net.TCPAddr).Port) + "/",
	} {
		_, err := fetcher.Fetch(context.Background(), pageURL)
		assert.ErrorIs(t, err, ErrForbiddenHost, pageURL)
	}
	assert.Zero(t, hits.Load())
}

func TestIsPublic(t *testing.T) {
	tests := map[string]bool{
		"93.184.216.34":   true,
		"2606:4700::1111": true,
		"127.0.0.1":       false,
		"10.1.2.3":        false,
		"172.16.0.1":      false,
		"192.168.1.1":     false,
		"169.254.169.254": false,
		"0.0.0.0":         false,
		"::1":             false,
		"fd00::1":         false,
		"fe80::1":         false,
		"::ffff:10.0.0.1": false,
		"224.0.0.1":       false,
	}
	for addr, want := range tests {
		t.Run(addr, func(t *testing.T) {
			assert.Equal(t, want, isPublic(netip.MustParseAddr(addr)))
		})
	}
}
