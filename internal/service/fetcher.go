package service

import (
	"context"
	"fmt"

	"github.com/set-night/pixelbot/internal/config"
	"github.com/set-night/pixelbot/internal/domain"
)

// MediaSearcher is the provider surface the fetcher depends on.
type MediaSearcher interface {
	SearchPhotos(ctx context.Context, query string, orientation domain.Orientation, perPage int) ([]domain.MediaResult, error)
	SearchVideos(ctx context.Context, query string, orientation domain.Orientation, perPage int) ([]domain.MediaResult, error)
}

// Fetcher performs deduplicated lookups: one provider round trip, then
// local filtering against the caller's exclusion set. It returns fewer
// than the requested count (possibly zero) when the provider has no fresh
// candidates; that is a valid outcome, not an error.
type Fetcher struct {
	provider MediaSearcher
}

func NewFetcher(provider MediaSearcher) *Fetcher {
	return &Fetcher{provider: provider}
}

func (f *Fetcher) Fetch(ctx context.Context, req domain.FetchRequest) ([]domain.MediaResult, error) {
	// The provider has no server-side exclusion, so over-request by the
	// size of the exclusion set and filter locally. Capped at the provider
	// page limit, which makes capacity a best-effort bound for sessions
	// that have already seen close to a full page.
	perPage := req.Count + len(req.Exclude)
	if perPage > config.PexelsMaxPerPage {
		perPage = config.PexelsMaxPerPage
	}

	var (
		candidates []domain.MediaResult
		err        error
	)
	switch req.Kind {
	case domain.MediaKindVideo:
		candidates, err = f.provider.SearchVideos(ctx, req.Query, req.Orientation, perPage)
	default:
		candidates, err = f.provider.SearchPhotos(ctx, req.Query, req.Orientation, perPage)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s %q: %v", domain.ErrProviderUnavailable, req.Kind, req.Query, err)
	}

	results := make([]domain.MediaResult, 0, req.Count)
	for _, c := range candidates {
		if _, seen := req.Exclude[c.ID]; seen {
			continue
		}
		results = append(results, c)
		if len(results) == req.Count {
			break
		}
	}
	return results, nil
}
