package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/artparse"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ artparse.ArtworkService = (*ArtworkService)(nil)

const artworkColumns = "id, source, position, name, link, image, image_hash, extensions, created_at"

// ArtworkService implements artparse.ArtworkService using SQLite.
type ArtworkService struct {
	db *DB
}

// NewArtworkService creates a new ArtworkService.
func NewArtworkService(db *DB) *ArtworkService {
	return &ArtworkService{db: db}
}

// hashImage returns the hex xxHash of an image value. Data URIs can be
// large, so lookups by image go through the hash index first.
func hashImage(image string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(image))
}

// ReplaceArtworks stores artworks under source in document order, replacing
// anything previously stored for it. ID, Source, Position, ImageHash and
// CreatedAt are set on each artwork.
func (s *ArtworkService) ReplaceArtworks(ctx context.Context, source string, artworks []*artparse.Artwork) error {
	if source == "" {
		return artparse.Errorf(artparse.EINVALID, "artwork source required")
	}
	for _, a := range artworks {
		if err := a.Validate(); err != nil {
			return err
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM artworks WHERE source = ?", source); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO artworks (`+artworkColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	now := time.Now().UTC().Truncate(time.Second)
	for i, a := range artworks {
		extensions, err := encodeExtensions(a.Extensions)
		if err != nil {
			return err
		}

		a.ID = uuid.New().String()
		a.Source = source
		a.Position = i
		a.ImageHash = hashImage(a.Image)
		a.CreatedAt = now

		if _, err := stmt.ExecContext(ctx, a.ID, a.Source, a.Position, a.Name, a.Link, a.Image,
			a.ImageHash, extensions, a.CreatedAt.Format(time.RFC3339)); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindArtworkByID retrieves an artwork by ID.
func (s *ArtworkService) FindArtworkByID(ctx context.Context, id string) (*artparse.Artwork, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+artworkColumns+" FROM artworks WHERE id = ?", id)

	a, err := scanArtwork(row)
	if err == sql.ErrNoRows {
		return nil, artparse.Errorf(artparse.ENOTFOUND, "artwork not found")
	}
	if err != nil {
		return nil, err
	}

	return a, nil
}

// FindArtworks retrieves artworks matching the filter, ordered by source and
// position.
func (s *ArtworkService) FindArtworks(ctx context.Context, filter artparse.ArtworkFilter) ([]*artparse.Artwork, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + artworkColumns + " FROM artworks WHERE 1=1")

	if filter.Source != nil {
		query.WriteString(" AND source = ?")
		args = append(args, *filter.Source)
	}
	if filter.Name != nil {
		query.WriteString(" AND name = ?")
		args = append(args, *filter.Name)
	}
	if filter.Image != nil {
		query.WriteString(" AND image_hash = ? AND image = ?")
		args = append(args, hashImage(*filter.Image), *filter.Image)
	}

	query.WriteString(" ORDER BY source ASC, position ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	artworks := make([]*artparse.Artwork, 0)
	for rows.Next() {
		a, err := scanArtwork(rows)
		if err != nil {
			return nil, err
		}
		artworks = append(artworks, a)
	}

	return artworks, rows.Err()
}

// DeleteArtworksBySource removes all artworks stored for a source.
func (s *ArtworkService) DeleteArtworksBySource(ctx context.Context, source string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM artworks WHERE source = ?", source)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return artparse.Errorf(artparse.ENOTFOUND, "source %q not found", source)
	}

	return nil
}

// ListSources returns every source with its artwork count, ordered by name.
func (s *ArtworkService) ListSources(ctx context.Context) ([]*artparse.SourceSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT source, COUNT(*)
		FROM artworks
		GROUP BY source
		ORDER BY source ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sources := make([]*artparse.SourceSummary, 0)
	for rows.Next() {
		var summary artparse.SourceSummary
		if err := rows.Scan(&summary.Source, &summary.Count); err != nil {
			return nil, err
		}
		sources = append(sources, &summary)
	}

	return sources, rows.Err()
}

// scanner is implemented by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanArtwork(row scanner) (*artparse.Artwork, error) {
	var a artparse.Artwork
	var extensions, createdAt string

	if err := row.Scan(&a.ID, &a.Source, &a.Position, &a.Name, &a.Link, &a.Image,
		&a.ImageHash, &extensions, &createdAt); err != nil {
		return nil, err
	}

	var err error
	if a.Extensions, err = decodeExtensions(extensions); err != nil {
		return nil, err
	}
	if a.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}

	return &a, nil
}

// encodeExtensions stores extensions as a JSON array, or '' when absent.
func encodeExtensions(extensions []string) (string, error) {
	if len(extensions) == 0 {
		return "", nil
	}
	b, err := json.Marshal(extensions)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decodeExtensions(value string) ([]string, error) {
	if value == "" {
		return nil, nil
	}
	var extensions []string
	if err := json.Unmarshal([]byte(value), &extensions); err != nil {
		return nil, fmt.Errorf("failed to parse extensions: %w", err)
	}
	return extensions, nil
}
