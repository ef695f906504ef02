package service

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/set-night/pixelbot/internal/config"
)

// TrendingService scrapes Pexels' popular-searches page for query ideas.
// Results are cached; a scrape failure just means no suggestions.
type TrendingService struct {
	httpClient *http.Client
	baseURL    string
	cache      *TrendingCache
}

func NewTrendingService() *TrendingService {
	return &TrendingService{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    "https://www.pexels.com",
		cache:      NewTrendingCache(config.TrendingCacheTTL),
	}
}

func (s *TrendingService) Popular(ctx context.Context) ([]string, error) {
	if cached := s.cache.Get(); cached != nil {
		return cached, nil
	}

	req, err := http.NewRequestWithContext(ctx, "GET", s.baseURL+"/popular-searches/", nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch popular searches: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("popular searches returned status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse popular searches: %w", err)
	}

	seen := make(map[string]struct{})
	queries := make([]string, 0, config.TrendingLimit)
	doc.Find(`a[href*="/search/"]`).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		text := strings.TrimSpace(sel.Text())
		if text == "" {
			return true
		}
		key := strings.ToLower(text)
		if _, dup := seen[key]; dup {
			return true
		}
		seen[key] = struct{}{}
		queries = append(queries, text)
		return len(queries) < config.TrendingLimit
	})

	s.cache.Set(queries)
	return queries, nil
}

// Suggestions returns up to n trending queries, swallowing scrape errors.
func (s *TrendingService) Suggestions(ctx context.Context, n int) []string {
	queries, err := s.Popular(ctx)
	if err != nil || len(queries) == 0 {
		return nil
	}
	if len(queries) > n {
		queries = queries[:n]
	}
	return queries
}
