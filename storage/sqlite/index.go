package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/poiesic/peermatch/core"
	"github.com/poiesic/peermatch/storage"
)

// Index implements storage.SearchIndex over a SQLite FTS5 database.
// The base table holds one row per profile; the FTS table carries the
// postings. Profile ids are stored as int64 two's-complement.
type Index struct {
	db       *sql.DB
	path     string
	logger   *slog.Logger
	synonyms map[string][]string
}

var _ storage.SearchIndex = (*Index)(nil)

// Option configures an Index.
type Option func(*Index) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(ix *Index) error {
		if logger == nil {
			logger = slog.Default()
		}
		ix.logger = logger
		return nil
	}
}

// WithSynonyms replaces the default query expansion map.
// Pass an empty map to disable expansion.
func WithSynonyms(synonyms map[string][]string) Option {
	return func(ix *Index) error {
		if synonyms == nil {
			return ErrSynonymsRequired
		}
		ix.synonyms = synonyms
		return nil
	}
}

// Open migrates and opens the index database at path, creating parent
// directories and the file as needed.
func Open(path string, opts ...Option) (*Index, error) {
	if path == "" {
		return nil, ErrPathRequired
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create index directory: %w", err)
		}
	}

	// Migrations run on their own connection before the query pool opens
	mm, err := NewMigrationManager(path)
	if err != nil {
		return nil, err
	}
	if err := mm.Up(); err != nil {
		mm.Close()
		return nil, err
	}
	if err := mm.Close(); err != nil {
		return nil, err
	}

	db, err := sql.Open(DriverName, path)
	if err != nil {
		return nil, fmt.Errorf("failed to open index database: %w", err)
	}

	// WAL keeps readers unblocked during index writes
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	// Single writer; SQLite serializes writes anyway
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	ix := &Index{
		db:       db,
		path:     path,
		logger:   slog.Default(),
		synonyms: DefaultSynonyms(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(ix); err != nil {
			db.Close()
			return nil, err
		}
	}

	return ix, nil
}

// ResetSchema drops and recreates the index schema, discarding all
// indexed documents. Used by reindex before replaying profiles.
func ResetSchema(path string) error {
	mm, err := NewMigrationManager(path)
	if err != nil {
		return err
	}
	defer mm.Close()
	return mm.Reset()
}

// SchemaVersion reports the applied migration version of the index at path.
func SchemaVersion(path string) (uint, bool, error) {
	mm, err := NewMigrationManager(path)
	if err != nil {
		return 0, false, err
	}
	defer mm.Close()
	return mm.Version()
}

// Close releases the underlying database.
func (ix *Index) Close() error {
	return ix.db.Close()
}

// Index inserts or fully replaces the document for a profile. The old
// postings are deleted before reinserting, so repeated identical calls
// are idempotent.
func (ix *Index) Index(ctx context.Context, doc *core.SearchDocument) error {
	tx, err := ix.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", storage.ErrTransactionFailed, err)
	}
	defer tx.Rollback()

	id := int64(doc.ProfileId)
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO search_documents (profile_id, email, full_name, content, updated_at, indexed_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(profile_id) DO UPDATE SET
			email = excluded.email,
			full_name = excluded.full_name,
			content = excluded.content,
			updated_at = excluded.updated_at,
			indexed_at = excluded.indexed_at`,
		id, doc.Email, doc.FullName, doc.Content, doc.UpdatedAt, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to upsert document: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM search_fts WHERE profile_id = ?`, id); err != nil {
		return fmt.Errorf("failed to clear postings: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO search_fts (profile_id, email, full_name, content) VALUES (?, ?, ?, ?)`,
		id, doc.Email, doc.FullName, doc.Content); err != nil {
		return fmt.Errorf("failed to insert postings: %w", err)
	}

	return tx.Commit()
}

// Remove deletes a profile's document and postings.
// Removing a missing profile is a no-op.
func (ix *Index) Remove(ctx context.Context, profileID core.ID) error {
	tx, err := ix.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", storage.ErrTransactionFailed, err)
	}
	defer tx.Rollback()

	id := int64(profileID)
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM search_fts WHERE profile_id = ?`, id); err != nil {
		return fmt.Errorf("failed to remove postings: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM search_documents WHERE profile_id = ?`, id); err != nil {
		return fmt.Errorf("failed to remove document: %w", err)
	}

	return tx.Commit()
}

// Search runs the expanded, quoted query against the FTS table and ranks
// the matches by occurrence count of the raw query terms, most hits
// first. Ties keep the engine's BM25 order.
func (ix *Index) Search(ctx context.Context, query string, limit int) ([]*core.SearchCandidate, error) {
	rawTerms := strings.Fields(strings.ToLower(query))
	if len(rawTerms) == 0 {
		return nil, nil
	}
	if limit < 0 {
		limit = 0
	}

	match := toMatchExpression(ExpandQuery(query, ix.synonyms))
	ix.logger.Debug("keyword search", "match", match, "limit", limit)

	rows, err := ix.db.QueryContext(ctx, `
		SELECT profile_id, email, full_name, content,
		       snippet(search_fts, 3, '<mark>', '</mark>', '...', 30)
		FROM search_fts
		WHERE search_fts MATCH ?
		ORDER BY rank
		LIMIT ?`, match, limit)
	if err != nil {
		return nil, fmt.Errorf("search query failed: %w", err)
	}
	defer rows.Close()

	var candidates []*core.SearchCandidate
	for rows.Next() {
		var id int64
		var email, fullName, content, snip string
		if err := rows.Scan(&id, &email, &fullName, &content, &snip); err != nil {
			return nil, fmt.Errorf("failed to scan search row: %w", err)
		}
		candidates = append(candidates, &core.SearchCandidate{
			ProfileId: core.ID(id),
			Email:     email,
			FullName:  fullName,
			Snippet:   snip,
			Score:     occurrenceScore(content, rawTerms),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read search rows: %w", err)
	}

	slices.SortStableFunc(candidates, func(a, b *core.SearchCandidate) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		}
		return 0
	})

	return candidates, nil
}

// Stats describes the current index contents.
func (ix *Index) Stats(ctx context.Context) (*core.IndexStats, error) {
	stats := &core.IndexStats{Path: ix.path}

	if err := ix.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM search_documents`).Scan(&stats.IndexedProfiles); err != nil {
		return nil, fmt.Errorf("failed to count documents: %w", err)
	}

	var last sql.NullTime
	err := ix.db.QueryRowContext(ctx,
		`SELECT indexed_at FROM search_documents ORDER BY indexed_at DESC LIMIT 1`).Scan(&last)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to read last index time: %w", err)
	}
	if last.Valid {
		stats.LastIndexedAt = last.Time.UTC()
	}

	return stats, nil
}
