package app

import (
	"context"
	"fmt"

	"github.com/vtorres/timeline-cli/internal/feed"
	"github.com/vtorres/timeline-cli/internal/registry"
)

type RegistryClient interface {
	ListCollectionAssets(ctx context.Context, collectionID string) ([]registry.Asset, error)
}

type Repository interface {
	SaveAssets(ctx context.Context, collectionID string, assets []registry.Asset) error
	ListAssets(ctx context.Context, collectionID string) ([]registry.Asset, error)
}

// Service fetches the configured collection from the registry and keeps a
// local snapshot so the timeline has something to show before the first
// fetch completes.
type Service struct {
	client       RegistryClient
	repo         Repository
	collectionID string
}

func NewService(client RegistryClient, repo Repository, collectionID string) *Service {
	return &Service{client: client, repo: repo, collectionID: collectionID}
}

// FetchTimeline pulls the full collection, orders it newest-first and
// caches the snapshot. Filtering and paging happen downstream over the
// returned list; the registry is never asked to narrow.
func (s *Service) FetchTimeline(ctx context.Context) ([]registry.Asset, error) {
	assets, err := s.client.ListCollectionAssets(ctx, s.collectionID)
	if err != nil {
		return nil, fmt.Errorf("fetch assets from registry: %w", err)
	}

	feed.SortTimeline(assets)

	if s.repo != nil {
		if err := s.repo.SaveAssets(ctx, s.collectionID, assets); err != nil {
			return nil, fmt.Errorf("save assets to cache: %w", err)
		}
	}
	return assets, nil
}

func (s *Service) ListCached(ctx context.Context) ([]registry.Asset, error) {
	if s.repo == nil {
		return nil, nil
	}
	assets, err := s.repo.ListAssets(ctx, s.collectionID)
	if err != nil {
		return nil, fmt.Errorf("load assets from cache: %w", err)
	}
	feed.SortTimeline(assets)
	return assets, nil
}
