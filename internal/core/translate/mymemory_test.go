package translate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMyMemoryClient_Translate(t *testing.T) {
	ctx := context.Background()

	t.Run("successful translation", func(t *testing.T) {
		var gotQuery, gotLangPair string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.Query().Get("q")
			gotLangPair = r.URL.Query().Get("langpair")
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"responseData":{"translatedText":"boat"}}`))
		}))
		defer srv.Close()

		client := NewMyMemoryClient(srv.URL, time.Second)
		translation, ok := client.Translate(ctx, "艇")
		require.True(t, ok)
		assert.Equal(t, "boat", translation)
		assert.Equal(t, "艇", gotQuery)
		assert.Equal(t, "zh-CN|en-US", gotLangPair)
	})

	t.Run("non-2xx status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer srv.Close()

		client := NewMyMemoryClient(srv.URL, time.Second)
		_, ok := client.Translate(ctx, "艇")
		assert.False(t, ok)
	})

	t.Run("malformed payload", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`not json at all`))
		}))
		defer srv.Close()

		client := NewMyMemoryClient(srv.URL, time.Second)
		_, ok := client.Translate(ctx, "艇")
		assert.False(t, ok)
	})

	t.Run("empty translation treated as missing", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"responseData":{"translatedText":""}}`))
		}))
		defer srv.Close()

		client := NewMyMemoryClient(srv.URL, time.Second)
		_, ok := client.Translate(ctx, "艇")
		assert.False(t, ok)
	})

	t.Run("slow provider hits the timeout", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer srv.Close()

		client := NewMyMemoryClient(srv.URL, 20*time.Millisecond)
		start := time.Now()
		_, ok := client.Translate(ctx, "艇")
		assert.False(t, ok)
		assert.Less(t, time.Since(start), 150*time.Millisecond)
	})

	t.Run("canceled context abandons the call", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer srv.Close()

		canceledCtx, cancel := context.WithCancel(ctx)
		cancel()

		client := NewMyMemoryClient(srv.URL, time.Second)
		_, ok := client.Translate(canceledCtx, "艇")
		assert.False(t, ok)
	})

	t.Run("unreachable host", func(t *testing.T) {
		client := NewMyMemoryClient("http://127.0.0.1:1", 100*time.Millisecond)
		_, ok := client.Translate(ctx, "艇")
		assert.False(t, ok)
	})
}
