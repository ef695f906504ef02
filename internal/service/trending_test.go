package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const popularSearchesHTML = `<!DOCTYPE html>
<html>
<body>
	<nav><a href="/license/">License</a></nav>
	<ul>
		<li><a href="/search/nature/">Nature</a></li>
		<li><a href="/search/business/">Business</a></li>
		<li><a href="/search/nature/">nature</a></li>
		<li><a href="/search/sky/"> Sky </a></li>
		<li><a href="/search/empty/"></a></li>
	</ul>
</body>
</html>`

func newTestTrending(srv *httptest.Server, ttl time.Duration) *TrendingService {
	return &TrendingService{
		httpClient: srv.Client(),
		baseURL:    srv.URL,
		cache:      NewTrendingCache(ttl),
	}
}

func TestTrendingPopularExtractsQueries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/popular-searches/", r.URL.Path)
		w.Write([]byte(popularSearchesHTML))
	}))
	defer srv.Close()

	s := newTestTrending(srv, time.Hour)
	queries, err := s.Popular(context.Background())
	require.NoError(t, err)

	// Non-search links, duplicates and empty anchors are dropped.
	assert.Equal(t, []string{"Nature", "Business", "Sky"}, queries)
}

func TestTrendingPopularUsesCache(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte(popularSearchesHTML))
	}))
	defer srv.Close()

	s := newTestTrending(srv, time.Hour)

	_, err := s.Popular(context.Background())
	require.NoError(t, err)
	_, err = s.Popular(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, hits)
}

func TestTrendingPopularErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	s := newTestTrending(srv, time.Hour)
	_, err := s.Popular(context.Background())
	assert.Error(t, err)
}

func TestTrendingSuggestionsSwallowErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	s := newTestTrending(srv, time.Hour)
	assert.Nil(t, s.Suggestions(context.Background(), 3))
}

func TestTrendingSuggestionsLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(popularSearchesHTML))
	}))
	defer srv.Close()

	s := newTestTrending(srv, time.Hour)
	assert.Equal(t, []string{"Nature", "Business"}, s.Suggestions(context.Background(), 2))
}

func TestTrendingCacheExpiry(t *testing.T) {
	c := NewTrendingCache(10 * time.Millisecond)
	c.Set([]string{"nature"})

	assert.Equal(t, []string{"nature"}, c.Get())

	time.Sleep(20 * time.Millisecond)
	assert.Nil(t, c.Get())
}
