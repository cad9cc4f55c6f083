package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	wikifetch "github.com/WhiteElephant-abc/minecraft-wiki-fetch-api"
	wikihttp "github.com/WhiteElephant-abc/minecraft-wiki-fetch-api/http"
)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, wikihttp.DefaultUserAgent, r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte("<html>page</html>"))
	}))
	defer srv.Close()

	f := wikihttp.NewFetcher()
	defer f.Close()

	markup, err := f.Fetch(context.Background(), srv.URL+"/w/Diamond")

	require.NoError(t, err)
	assert.Equal(t, "<html>page</html>", markup)
}

func TestFetcher_Fetch_NotFound(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	f := wikihttp.NewFetcher(wikihttp.WithRetryDelays(nil))
	defer f.Close()

	_, err := f.Fetch(context.Background(), srv.URL+"/w/Nope")

	require.Error(t, err)
	assert.Equal(t, wikifetch.ENOTFOUND, wikifetch.ErrorCode(err))
}

func TestFetcher_Fetch_RetriesTransientFailures(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	f := wikihttp.NewFetcher(wikihttp.WithRetryDelays([]time.Duration{time.Millisecond}))
	defer f.Close()

	markup, err := f.Fetch(context.Background(), srv.URL+"/w/Diamond")

	require.NoError(t, err)
	assert.Equal(t, "ok", markup)
	assert.Equal(t, int32(2), calls.Load())
}

func TestFetcher_Fetch_ExhaustedRetries(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	f := wikihttp.NewFetcher(wikihttp.WithRetryDelays([]time.Duration{time.Millisecond, time.Millisecond}))
	defer f.Close()

	_, err := f.Fetch(context.Background(), srv.URL+"/w/Diamond")

	require.Error(t, err)
	assert.Equal(t, wikifetch.EUNAVAILABLE, wikifetch.ErrorCode(err))
	assert.Equal(t, int32(3), calls.Load())
}

func TestFetcher_Fetch_NotFoundIsNotRetried(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	f := wikihttp.NewFetcher(wikihttp.WithRetryDelays([]time.Duration{time.Millisecond}))
	defer f.Close()

	_, err := f.Fetch(context.Background(), srv.URL+"/w/Nope")

	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestFetcher_Fetch_WithLimiter(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	f := wikihttp.NewFetcher(wikihttp.WithLimiter(wikihttp.NewDomainLimiter(1000)))
	defer f.Close()

	for i := 0; i < 3; i++ {
		_, err := f.Fetch(context.Background(), srv.URL+"/w/Diamond")
		require.NoError(t, err)
	}
}

func TestFetcher_Fetch_CanceledContext(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f := wikihttp.NewFetcher()
	defer f.Close()

	_, err := f.Fetch(ctx, srv.URL+"/w/Diamond")

	assert.Error(t, err)
}
