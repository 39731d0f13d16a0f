package mock

import (
	"context"

	"github.com/fwojciec/artparse"
)

var _ artparse.ArtworkService = (*ArtworkService)(nil)

// ArtworkService is a mock implementation of artparse.ArtworkService.
type ArtworkService struct {
	ReplaceArtworksFn        func(ctx context.Context, source string, artworks []*artparse.Artwork) error
	FindArtworkByIDFn        func(ctx context.Context, id string) (*artparse.Artwork, error)
	FindArtworksFn           func(ctx context.Context, filter artparse.ArtworkFilter) ([]*artparse.Artwork, error)
	DeleteArtworksBySourceFn func(ctx context.Context, source string) error
	ListSourcesFn            func(ctx context.Context) ([]*artparse.SourceSummary, error)
}

func (s *ArtworkService) ReplaceArtworks(ctx context.Context, source string, artworks []*artparse.Artwork) error {
	return s.ReplaceArtworksFn(ctx, source, artworks)
}

func (s *ArtworkService) FindArtworkByID(ctx context.Context, id string) (*artparse.Artwork, error) {
	return s.FindArtworkByIDFn(ctx, id)
}

func (s *ArtworkService) FindArtworks(ctx context.Context, filter artparse.ArtworkFilter) ([]*artparse.Artwork, error) {
	return s.FindArtworksFn(ctx, filter)
}

func (s *ArtworkService) DeleteArtworksBySource(ctx context.Context, source string) error {
	return s.DeleteArtworksBySourceFn(ctx, source)
}

func (s *ArtworkService) ListSources(ctx context.Context) ([]*artparse.SourceSummary, error) {
	return s.ListSourcesFn(ctx)
}
