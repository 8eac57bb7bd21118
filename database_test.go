package peermatch

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/peermatch/core"
	"github.com/poiesic/peermatch/search"
)

func newTestDatabase(t *testing.T, opts ...DatabaseOption) *Database {
	t.Helper()

	db, err := NewDatabase(t.TempDir(), opts...)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func sampleProfile(email, name, skill string) *core.Profile {
	return &core.Profile{
		Email:    email,
		FullName: name,
		Major:    "Computer Science",
		Program:  "BSc",
		Year:     "Junior",
		TechnicalSkills: []core.TechnicalSkill{
			{Name: skill, Proficiency: core.SkillAdvanced},
		},
	}
}

func TestNewDatabase(t *testing.T) {
	t.Run("create new database", func(t *testing.T) {
		dataDir := filepath.Join(t.TempDir(), "test_db")
		db, err := NewDatabase(dataDir)
		require.NoError(t, err)
		require.NotNil(t, db)
		defer db.Close()

		// Verify components are initialized
		assert.NotNil(t, db.Repositories())
		assert.NotNil(t, db.SearchIndex())
		assert.NotNil(t, db.EmbeddingStore())
		assert.NotNil(t, db.logger)

		// Both stores land under the data directory
		_, err = os.Stat(ProfileStorePath(dataDir))
		assert.NoError(t, err)
		_, err = os.Stat(SearchIndexPath(dataDir))
		assert.NoError(t, err)
	})

	t.Run("error with invalid path", func(t *testing.T) {
		// A plain file where the data directory should be
		tmpFile := filepath.Join(t.TempDir(), "not_a_dir")
		err := os.WriteFile(tmpFile, []byte("test"), 0644)
		require.NoError(t, err)

		db, err := NewDatabase(tmpFile)
		assert.Error(t, err)
		assert.Nil(t, db)
	})

	t.Run("without embedding", func(t *testing.T) {
		db := newTestDatabase(t, WithoutEmbedding())

		assert.False(t, db.EmbeddingStore().Available())
		assert.Equal(t, core.Capabilities{
			KeywordSearch:  true,
			SemanticSearch: false,
			HybridSearch:   false,
		}, db.Capabilities())
	})

	t.Run("default provider enables semantic search", func(t *testing.T) {
		db := newTestDatabase(t)

		assert.True(t, db.EmbeddingStore().Available())
		assert.Equal(t, core.Capabilities{
			KeywordSearch:  true,
			SemanticSearch: true,
			HybridSearch:   true,
		}, db.Capabilities())
	})

	t.Run("rejects an invalid search config", func(t *testing.T) {
		db, err := NewDatabase(t.TempDir(), WithSearchConfig(search.Config{
			KeywordWeight:  -1,
			SemanticWeight: 0.6,
			AgreementBoost: 1.2,
		}))
		assert.Error(t, err)
		assert.Nil(t, db)
	})

	t.Run("custom search config reaches the searcher", func(t *testing.T) {
		config := search.Config{
			KeywordWeight:  0.5,
			SemanticWeight: 0.5,
			AgreementBoost: 1.1,
		}
		db := newTestDatabase(t, WithoutEmbedding(), WithSearchConfig(config))

		searcher, err := db.Searcher()
		require.NoError(t, err)
		require.NotNil(t, searcher)
		assert.Equal(t, config, db.searchConfig)
	})
}

func TestDatabase_Close(t *testing.T) {
	db, err := NewDatabase(t.TempDir(), WithoutEmbedding())
	require.NoError(t, err)
	require.NotNil(t, db)

	err = db.Close()
	assert.NoError(t, err)
}

func TestDatabase_FactoryMethods(t *testing.T) {
	db := newTestDatabase(t, WithoutEmbedding())

	t.Run("can create searcher", func(t *testing.T) {
		searcher, err := db.Searcher()
		require.NoError(t, err)
		require.NotNil(t, searcher)
	})

	t.Run("can create scorer", func(t *testing.T) {
		scorer, err := db.Scorer()
		require.NoError(t, err)
		require.NotNil(t, scorer)
	})

	t.Run("can create learner", func(t *testing.T) {
		learner, err := db.Learner()
		require.NoError(t, err)
		require.NotNil(t, learner)
	})

	t.Run("can create finder", func(t *testing.T) {
		finder, err := db.Finder()
		require.NoError(t, err)
		require.NotNil(t, finder)
	})

	t.Run("can create ingestion pipeline", func(t *testing.T) {
		pipeline, err := db.Pipeline()
		require.NoError(t, err)
		require.NotNil(t, pipeline)
		pipeline.Close()
	})

	t.Run("can create backfiller", func(t *testing.T) {
		backfiller, err := db.Backfiller(io.Discard)
		require.NoError(t, err)
		require.NotNil(t, backfiller)
	})
}

func TestDatabase_IngestAndSearch(t *testing.T) {
	ctx := context.Background()
	db := newTestDatabase(t, WithoutEmbedding())

	pipeline, err := db.Pipeline()
	require.NoError(t, err)
	defer pipeline.Close()

	require.NoError(t, pipeline.Ingest(ctx, sampleProfile("ada@university.edu", "Ada Lovelace", "Fortran")))
	require.NoError(t, pipeline.Ingest(ctx, sampleProfile("grace@university.edu", "Grace Hopper", "COBOL")))
	pipeline.Flush()

	searcher, err := db.Searcher()
	require.NoError(t, err)

	response, err := searcher.Search(ctx, "fortran", 5, false)
	require.NoError(t, err)
	require.Len(t, response.Hits, 1)
	assert.Equal(t, "ada@university.edu", response.Hits[0].Email)
}

func TestDatabase_Stats(t *testing.T) {
	ctx := context.Background()
	db := newTestDatabase(t, WithoutEmbedding())

	pipeline, err := db.Pipeline()
	require.NoError(t, err)
	defer pipeline.Close()

	require.NoError(t, pipeline.Ingest(ctx, sampleProfile("ada@university.edu", "Ada Lovelace", "Fortran")))
	require.NoError(t, pipeline.Ingest(ctx, sampleProfile("grace@university.edu", "Grace Hopper", "Fortran")))
	pipeline.Flush()

	stats, err := db.Stats(ctx)
	require.NoError(t, err)

	assert.EqualValues(t, 2, stats.ActiveProfiles)
	assert.EqualValues(t, 2, stats.TotalProfiles)
	assert.EqualValues(t, 2, stats.Index.IndexedProfiles)
	assert.False(t, stats.Embeddings.Available)
	assert.EqualValues(t, 0, stats.Embeddings.TotalEmbeddings)

	require.NotEmpty(t, stats.TopSkills)
	assert.Equal(t, "Fortran", stats.TopSkills[0].Name)
	assert.EqualValues(t, 2, stats.TopSkills[0].Count)
}
