package service

import (
	"context"
	"testing"

	"github.com/set-night/pixelbot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDelivery struct {
	queryPrompts       int
	orientationPrompts int
	images             []domain.MediaResult
	videos             []domain.MediaResult
	notices            []string
	imageErr           error
	videoErr           error
}

func (d *fakeDelivery) PromptQuery(context.Context, int64)       { d.queryPrompts++ }
func (d *fakeDelivery) PromptOrientation(context.Context, int64) { d.orientationPrompts++ }

func (d *fakeDelivery) SendImage(_ context.Context, _ int64, item domain.MediaResult) error {
	if d.imageErr != nil {
		return d.imageErr
	}
	d.images = append(d.images, item)
	return nil
}

func (d *fakeDelivery) SendVideo(_ context.Context, _ int64, item domain.MediaResult) error {
	if d.videoErr != nil {
		return d.videoErr
	}
	d.videos = append(d.videos, item)
	return nil
}

func (d *fakeDelivery) Notify(_ context.Context, _ int64, text string) {
	d.notices = append(d.notices, text)
}

func newTestEngine(provider *fakeSearcher) (*Engine, *SessionStore, *fakeDelivery) {
	store := NewSessionStore()
	delivery := &fakeDelivery{}
	engine := NewEngine(store, NewFetcher(provider), nil, nil, delivery)
	return engine, store, delivery
}

func snapshot(store *SessionStore, chatID int64) domain.Session {
	var snap domain.Session
	store.Do(chatID, func(s *domain.Session) {
		snap = *s
	})
	return snap
}

const chatID = int64(42)

func TestEngineStartPromptsForQuery(t *testing.T) {
	engine, store, delivery := newTestEngine(&fakeSearcher{})

	engine.Start(context.Background(), chatID)

	assert.Equal(t, 1, delivery.queryPrompts)
	assert.Equal(t, domain.StateAwaitingQuery, snapshot(store, chatID).State)
}

func TestEngineTextSavesQuery(t *testing.T) {
	engine, store, delivery := newTestEngine(&fakeSearcher{})

	engine.Text(context.Background(), chatID, "  sunset  ")

	s := snapshot(store, chatID)
	assert.Equal(t, "sunset", s.Query)
	assert.Equal(t, domain.StateAwaitingOrientation, s.State)
	assert.Empty(t, s.SeenImages)
	assert.Empty(t, s.SeenVideos)
	assert.Equal(t, 1, delivery.orientationPrompts)
}

func TestEngineTextIgnoredWhileAwaitingOrientation(t *testing.T) {
	engine, store, delivery := newTestEngine(&fakeSearcher{})

	engine.Text(context.Background(), chatID, "sunset")
	engine.Text(context.Background(), chatID, "something else")

	s := snapshot(store, chatID)
	assert.Equal(t, "sunset", s.Query)
	assert.Equal(t, 1, delivery.orientationPrompts)
}

func TestEngineSelectDeliversAndDeduplicates(t *testing.T) {
	provider := &fakeSearcher{photos: media(101, 102, 103)}
	engine, store, delivery := newTestEngine(provider)
	sel := domain.Selection{Kind: domain.MediaKindImage, Orientation: domain.OrientationLandscape}

	engine.Text(context.Background(), chatID, "sunset")
	engine.Select(context.Background(), chatID, sel)

	require.Len(t, delivery.images, 1)
	assert.Equal(t, int64(101), delivery.images[0].ID)
	assert.Equal(t, idSet(101), snapshot(store, chatID).SeenImages)

	// Same stable provider list on the second selection.
	engine.Select(context.Background(), chatID, sel)

	require.Len(t, delivery.images, 2)
	assert.Equal(t, int64(102), delivery.images[1].ID)
	s := snapshot(store, chatID)
	assert.Equal(t, idSet(101, 102), s.SeenImages)
	assert.Equal(t, domain.StateAwaitingOrientation, s.State)
}

func TestEngineSeenSetsAreTrackedPerKind(t *testing.T) {
	provider := &fakeSearcher{
		photos: media(101),
		videos: media(101, 202),
	}
	engine, store, delivery := newTestEngine(provider)

	engine.Text(context.Background(), chatID, "sunset")
	engine.Select(context.Background(), chatID, domain.Selection{Kind: domain.MediaKindImage, Orientation: domain.OrientationPortrait})
	engine.Select(context.Background(), chatID, domain.Selection{Kind: domain.MediaKindVideo, Orientation: domain.OrientationPortrait})

	// The same provider id across kinds does not collide.
	require.Len(t, delivery.images, 1)
	require.Len(t, delivery.videos, 1)
	assert.Equal(t, int64(101), delivery.videos[0].ID)

	s := snapshot(store, chatID)
	assert.Equal(t, idSet(101), s.SeenImages)
	assert.Equal(t, idSet(101), s.SeenVideos)
}

func TestEngineSelectEmptyResultStaysAwaitingOrientation(t *testing.T) {
	engine, store, delivery := newTestEngine(&fakeSearcher{})

	engine.Text(context.Background(), chatID, "sunset")
	engine.Select(context.Background(), chatID, domain.Selection{Kind: domain.MediaKindImage, Orientation: domain.OrientationPortrait})

	require.Len(t, delivery.notices, 1)
	assert.Contains(t, delivery.notices[0], "не найдены")
	s := snapshot(store, chatID)
	assert.Equal(t, domain.StateAwaitingOrientation, s.State)
	assert.Empty(t, s.SeenImages)
}

func TestEngineSelectProviderErrorReportsNoResults(t *testing.T) {
	provider := &fakeSearcher{err: assert.AnError}
	engine, store, delivery := newTestEngine(provider)

	engine.Text(context.Background(), chatID, "sunset")
	engine.Select(context.Background(), chatID, domain.Selection{Kind: domain.MediaKindVideo, Orientation: domain.OrientationPortrait})

	require.Len(t, delivery.notices, 1)
	assert.Contains(t, delivery.notices[0], "не найдены")
	assert.Empty(t, delivery.videos)

	s := snapshot(store, chatID)
	assert.Equal(t, domain.StateAwaitingOrientation, s.State)
	assert.Empty(t, s.SeenVideos, "exclusion sets stay unchanged on provider failure")
}

func TestEngineDeliveryFailureIsIsolated(t *testing.T) {
	tests := []struct {
		name string
		kind domain.MediaKind
	}{
		{name: "video", kind: domain.MediaKindVideo},
		{name: "image", kind: domain.MediaKindImage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &fakeSearcher{photos: media(101), videos: media(201)}
			engine, store, delivery := newTestEngine(provider)
			delivery.imageErr = assert.AnError
			delivery.videoErr = assert.AnError

			engine.Text(context.Background(), chatID, "sunset")
			engine.Select(context.Background(), chatID, domain.Selection{Kind: tt.kind, Orientation: domain.OrientationPortrait})

			require.Len(t, delivery.notices, 1)
			assert.Contains(t, delivery.notices[0], "Не удалось отправить")

			s := snapshot(store, chatID)
			assert.Empty(t, s.Seen(tt.kind), "failed delivery is not marked seen")
			assert.Equal(t, domain.StateAwaitingOrientation, s.State)
			// The user is re-prompted and can retry.
			assert.Equal(t, 2, delivery.orientationPrompts)
		})
	}
}

func TestEngineNewQueryResets(t *testing.T) {
	provider := &fakeSearcher{photos: media(101)}
	engine, store, delivery := newTestEngine(provider)

	engine.Text(context.Background(), chatID, "sunset")
	engine.Select(context.Background(), chatID, domain.Selection{Kind: domain.MediaKindImage, Orientation: domain.OrientationLandscape})
	engine.NewQuery(context.Background(), chatID)

	s := snapshot(store, chatID)
	assert.Equal(t, domain.StateAwaitingQuery, s.State)
	assert.Empty(t, s.Query)
	assert.Equal(t, 1, delivery.queryPrompts)

	// A fresh query starts deduplication over.
	engine.Text(context.Background(), chatID, "mountains")
	engine.Select(context.Background(), chatID, domain.Selection{Kind: domain.MediaKindImage, Orientation: domain.OrientationLandscape})

	require.Len(t, delivery.images, 2)
	assert.Equal(t, int64(101), delivery.images[1].ID)
}

func TestEngineSelectIgnoredWithoutQuery(t *testing.T) {
	provider := &fakeSearcher{photos: media(101)}
	engine, _, delivery := newTestEngine(provider)

	// Stale keyboard tap before any query was saved.
	engine.Select(context.Background(), chatID, domain.Selection{Kind: domain.MediaKindImage, Orientation: domain.OrientationPortrait})

	assert.Empty(t, delivery.images)
	assert.Empty(t, delivery.notices)
	assert.Zero(t, provider.calls)
}
