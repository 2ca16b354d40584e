package service

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m, goleak.IgnoreTopFunction("internal/poll.runtime_pollWait"))
}

func newTestPreloader(t *testing.T, baseURL string, timeout time.Duration, concurrency int) AssetPreloader {
	t.Helper()
	p, err := NewHTTPAssetPreloader(
		&http.Client{Transport: &http.Transport{DisableKeepAlives: true}},
		PreloaderConfig{BaseURL: baseURL, Timeout: timeout, Concurrency: concurrency},
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
	require.NoError(t, err)
	return p
}

func TestHTTPAssetPreloader_Preload(t *testing.T) {
	t.Run("Success_FetchesEveryAsset", func(t *testing.T) {
		var (
			mu   sync.Mutex
			seen []string
		)
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			mu.Lock()
			seen = append(seen, r.URL.Path)
			mu.Unlock()
			_, _ = w.Write([]byte("png"))
		}))
		defer server.Close()

		p := newTestPreloader(t, server.URL, time.Second, 2)

		err := p.Preload(context.Background(), []string{"/a.png", "/b.png", "/c.png"})

		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"/a.png", "/b.png", "/c.png"}, seen)
	})

	t.Run("Success_FailuresCountAsSettled", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		p := newTestPreloader(t, server.URL, time.Second, 2)

		assert.NoError(t, p.Preload(context.Background(), []string{"/missing.png", "::bad"}))
	})

	t.Run("Success_TimeoutBoundsSlowAssets", func(t *testing.T) {
		release := make(chan struct{})
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-release:
			case <-r.Context().Done():
			}
		}))
		defer server.Close()
		defer close(release)

		p := newTestPreloader(t, server.URL, 50*time.Millisecond, 2)

		start := time.Now()
		err := p.Preload(context.Background(), []string{"/slow.png"})

		assert.NoError(t, err)
		assert.Less(t, time.Since(start), 2*time.Second)
	})

	t.Run("Success_ConcurrencyIsBounded", func(t *testing.T) {
		var inFlight, peak int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			n := atomic.AddInt32(&inFlight, 1)
			for {
				p := atomic.LoadInt32(&peak)
				if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
					break
				}
			}
			time.Sleep(20 * time.Millisecond)
			atomic.AddInt32(&inFlight, -1)
		}))
		defer server.Close()

		p := newTestPreloader(t, server.URL, time.Second, 2)

		require.NoError(t, p.Preload(context.Background(), []string{"/1", "/2", "/3", "/4", "/5"}))
		assert.LessOrEqual(t, atomic.LoadInt32(&peak), int32(2))
	})

	t.Run("Error_CancelledContext", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		defer server.Close()

		p := newTestPreloader(t, server.URL, time.Second, 2)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		assert.ErrorIs(t, p.Preload(ctx, []string{"/a.png"}), context.Canceled)
	})
}

func TestNewHTTPAssetPreloader_InvalidBaseURL(t *testing.T) {
	_, err := NewHTTPAssetPreloader(nil, PreloaderConfig{BaseURL: "://bad"}, slog.Default())
	assert.Error(t, err)
}
