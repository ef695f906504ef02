package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/set-night/pixelbot/internal/config"
	"github.com/set-night/pixelbot/internal/domain"
)

type PexelsService struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewPexelsService(apiKey string) *PexelsService {
	return &PexelsService{
		apiKey:     apiKey,
		baseURL:    "https://api.pexels.com",
		httpClient: &http.Client{Timeout: config.ProviderTimeout},
	}
}

// SearchPhotos queries the photo search endpoint. A response with zero
// candidates is not an error.
func (s *PexelsService) SearchPhotos(ctx context.Context, query string, orientation domain.Orientation, perPage int) ([]domain.MediaResult, error) {
	body, err := s.search(ctx, "/v1/search", query, orientation, perPage)
	if err != nil {
		return nil, err
	}

	var result struct {
		Photos []struct {
			ID           int64  `json:"id"`
			URL          string `json:"url"`
			Photographer string `json:"photographer"`
			Src          struct {
				Large string `json:"large"`
			} `json:"src"`
		} `json:"photos"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("parse photos: %w", err)
	}

	items := make([]domain.MediaResult, 0, len(result.Photos))
	for _, p := range result.Photos {
		items = append(items, domain.MediaResult{
			ID:      p.ID,
			URL:     p.Src.Large,
			Author:  p.Photographer,
			PageURL: p.URL,
		})
	}
	return items, nil
}

// SearchVideos queries the video search endpoint. Each candidate carries
// several encodings; the first video file is its representative URL.
func (s *PexelsService) SearchVideos(ctx context.Context, query string, orientation domain.Orientation, perPage int) ([]domain.MediaResult, error) {
	body, err := s.search(ctx, "/videos/search", query, orientation, perPage)
	if err != nil {
		return nil, err
	}

	var result struct {
		Videos []struct {
			ID   int64  `json:"id"`
			URL  string `json:"url"`
			User struct {
				Name string `json:"name"`
			} `json:"user"`
			VideoFiles []struct {
				Link string `json:"link"`
			} `json:"video_files"`
		} `json:"videos"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("parse videos: %w", err)
	}

	items := make([]domain.MediaResult, 0, len(result.Videos))
	for _, v := range result.Videos {
		if len(v.VideoFiles) == 0 {
			continue
		}
		items = append(items, domain.MediaResult{
			ID:      v.ID,
			URL:     v.VideoFiles[0].Link,
			Author:  v.User.Name,
			PageURL: v.URL,
		})
	}
	return items, nil
}

func (s *PexelsService) search(ctx context.Context, path, query string, orientation domain.Orientation, perPage int) ([]byte, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("orientation", string(orientation))
	params.Set("per_page", strconv.Itoa(perPage))

	req, err := http.NewRequestWithContext(ctx, "GET", s.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("pexels returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	return body, nil
}
