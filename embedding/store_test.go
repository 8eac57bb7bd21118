package embedding

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/peermatch/ai"
	"github.com/poiesic/peermatch/ai/mock"
	"github.com/poiesic/peermatch/core"
	"github.com/poiesic/peermatch/storage"
	"github.com/poiesic/peermatch/storage/badger"
)

func newTestStore(t *testing.T, embedder ai.Embedder, opts ...Option) (*Store, *badger.Repositories) {
	t.Helper()

	repos, err := badger.OpenRepositories("", true)
	require.NoError(t, err)
	t.Cleanup(func() { repos.Close() })

	store, err := NewStore(repos.Embeddings, repos.Profiles, embedder, opts...)
	require.NoError(t, err)
	return store, repos
}

func seedProfile(t *testing.T, repos *badger.Repositories, email, name string, mutate func(*core.Profile)) *core.Profile {
	t.Helper()

	p := &core.Profile{
		FullName: name,
		Email:    email,
		Year:     "Junior",
		Program:  "BSc",
		Major:    "Computer Science",
	}
	if mutate != nil {
		mutate(p)
	}
	stored, err := repos.Profiles.UpsertProfiles(context.Background(), p)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	return stored[0]
}

func seedEmbedding(t *testing.T, repos *badger.Repositories, id core.ID, email, name string, vector []float32) {
	t.Helper()

	err := repos.Embeddings.UpsertEmbedding(context.Background(), &core.EmbeddingRecord{
		ProfileId:   id,
		Email:       email,
		FullName:    name,
		Vector:      vector,
		ContentHash: core.HashText(name),
	})
	require.NoError(t, err)
}

func TestNewStore(t *testing.T) {
	repos, err := badger.OpenRepositories("", true)
	require.NoError(t, err)
	defer repos.Close()

	embedder := mock.NewMockEmbedder()

	t.Run("valid configuration", func(t *testing.T) {
		store, err := NewStore(repos.Embeddings, repos.Profiles, embedder)
		require.NoError(t, err)
		assert.NotNil(t, store)
		assert.True(t, store.Available())
	})

	t.Run("nil embedder is allowed", func(t *testing.T) {
		store, err := NewStore(repos.Embeddings, repos.Profiles, nil)
		require.NoError(t, err)
		assert.False(t, store.Available())
	})

	t.Run("nil embedding repository", func(t *testing.T) {
		_, err := NewStore(nil, repos.Profiles, embedder)
		assert.Equal(t, ErrEmbeddingRepositoryRequired, err)
	})

	t.Run("nil profile repository", func(t *testing.T) {
		_, err := NewStore(repos.Embeddings, nil, embedder)
		assert.Equal(t, ErrProfileRepositoryRequired, err)
	})

	t.Run("nil logger falls back to default", func(t *testing.T) {
		store, err := NewStore(repos.Embeddings, repos.Profiles, embedder, WithLogger(nil))
		require.NoError(t, err)
		assert.NotNil(t, store)
	})

	t.Run("invalid cache size", func(t *testing.T) {
		_, err := NewStore(repos.Embeddings, repos.Profiles, embedder, WithCacheSize(0))
		assert.ErrorIs(t, err, ErrInvalidCacheSize)
	})

	t.Run("invalid config", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Threshold = 0
		_, err := NewStore(repos.Embeddings, repos.Profiles, embedder, WithConfig(cfg))
		assert.Error(t, err)
	})
}

func TestConfigValidate(t *testing.T) {
	valid := DefaultConfig()
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"zero threshold", func(c *Config) { c.Threshold = 0 }, "Threshold"},
		{"threshold above one", func(c *Config) { c.Threshold = 1.5 }, "Threshold"},
		{"negative widening step", func(c *Config) { c.WideningStep = -0.1 }, "WideningStep"},
		{"widening step above threshold", func(c *Config) { c.WideningStep = 0.5 }, "WideningStep"},
		{"negative min results", func(c *Config) { c.MinResults = -1 }, "MinResults"},
		{"zero max results", func(c *Config) { c.MaxResults = 0 }, "MaxResults"},
		{"max below min", func(c *Config) { c.MaxResults = 2 }, "MaxResults"},
		{"zero content length", func(c *Config) { c.MaxContentLen = 0 }, "MaxContentLen"},
		{"zero query timeout", func(c *Config) { c.QueryTimeout = 0 }, "QueryTimeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestUpsert_SkipsProviderOnIdenticalContent(t *testing.T) {
	ctx := context.Background()

	var calls int
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		calls++
		return []float32{1, 0, 0}, nil
	}

	store, repos := newTestStore(t, embedder)
	profile := seedProfile(t, repos, "alice@university.edu", "Alice Chen", nil)

	doc := core.SearchDocument{
		ProfileId: profile.Id,
		Email:     profile.Email,
		FullName:  profile.FullName,
		Content:   "Name: Alice Chen Major: Computer Science",
	}

	require.NoError(t, store.Upsert(ctx, doc))
	require.Equal(t, 1, calls)

	first, err := repos.Embeddings.GetEmbedding(ctx, profile.Id)
	require.NoError(t, err)
	assert.Equal(t, core.HashText(doc.Content), first.ContentHash)
	assert.Equal(t, []float32{1, 0, 0}, first.Vector)
	assert.False(t, first.CreatedAt.IsZero())

	// Identical content must not reach the provider again.
	require.NoError(t, store.Upsert(ctx, doc))
	require.NoError(t, store.Upsert(ctx, doc))
	assert.Equal(t, 1, calls)

	// Changed content re-embeds but keeps the original CreatedAt.
	time.Sleep(2 * time.Millisecond)
	doc.Content = "Name: Alice Chen Major: Computer Science Courses: Algorithms"
	require.NoError(t, store.Upsert(ctx, doc))
	assert.Equal(t, 2, calls)

	second, err := repos.Embeddings.GetEmbedding(ctx, profile.Id)
	require.NoError(t, err)
	assert.Equal(t, core.HashText(doc.Content), second.ContentHash)
	assert.True(t, second.CreatedAt.Equal(first.CreatedAt))
	assert.True(t, second.UpdatedAt.After(first.UpdatedAt))
}

func TestUpsert_TruncatesLongContent(t *testing.T) {
	ctx := context.Background()

	var got string
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		got = text
		return []float32{1, 0, 0}, nil
	}

	cfg := DefaultConfig()
	cfg.MaxContentLen = 10
	store, repos := newTestStore(t, embedder, WithConfig(cfg))
	profile := seedProfile(t, repos, "bob@university.edu", "Bob Diaz", nil)

	doc := core.SearchDocument{
		ProfileId: profile.Id,
		Email:     profile.Email,
		FullName:  profile.FullName,
		Content:   strings.Repeat("x", 50),
	}
	require.NoError(t, store.Upsert(ctx, doc))

	assert.Equal(t, strings.Repeat("x", 10), got)

	record, err := repos.Embeddings.GetEmbedding(ctx, profile.Id)
	require.NoError(t, err)
	assert.Equal(t, core.HashText(strings.Repeat("x", 10)), record.ContentHash)
}

func TestUpsert_Unavailable(t *testing.T) {
	store, repos := newTestStore(t, nil)
	profile := seedProfile(t, repos, "carol@university.edu", "Carol Wu", nil)

	err := store.Upsert(context.Background(), core.BuildSearchDocument(profile))
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestUpsert_ProviderError(t *testing.T) {
	ctx := context.Background()

	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		return nil, assert.AnError
	}

	store, repos := newTestStore(t, embedder)
	profile := seedProfile(t, repos, "dave@university.edu", "Dave Kim", nil)

	err := store.Upsert(ctx, core.BuildSearchDocument(profile))
	assert.ErrorIs(t, err, assert.AnError)

	_, err = repos.Embeddings.GetEmbedding(ctx, profile.Id)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestQuery_Unavailable(t *testing.T) {
	store, _ := newTestStore(t, nil)

	_, err := store.Query(context.Background(), "machine learning", 5)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestQuery_BlankText(t *testing.T) {
	var calls int
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		calls++
		return []float32{1, 0, 0}, nil
	}

	store, _ := newTestStore(t, embedder)

	for _, query := range []string{"", "   ", "\t\n"} {
		candidates, err := store.Query(context.Background(), query, 5)
		require.NoError(t, err)
		assert.Empty(t, candidates)
	}
	assert.Equal(t, 0, calls)
}

func TestQuery_RankingAndSnippets(t *testing.T) {
	ctx := context.Background()

	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		return []float32{1, 0, 0}, nil
	}

	store, repos := newTestStore(t, embedder)

	alice := seedProfile(t, repos, "alice@university.edu", "Alice Chen", func(p *core.Profile) {
		p.TechnicalSkills = []core.TechnicalSkill{{Name: "Python"}, {Name: "Go"}}
		p.Courses = []string{"Algorithms", "Databases"}
		p.AcademicInterests = []string{"Machine Learning"}
	})
	bob := seedProfile(t, repos, "bob@university.edu", "Bob Diaz", nil)

	seedEmbedding(t, repos, alice.Id, alice.Email, alice.FullName, []float32{1, 0, 0})
	seedEmbedding(t, repos, bob.Id, bob.Email, bob.FullName, []float32{0.8, 0.6, 0})
	// Orthogonal vector stays below the widened floor.
	seedEmbedding(t, repos, 999, "zed@university.edu", "Zed Moss", []float32{0, 1, 0})

	candidates, err := store.Query(ctx, "computer science student", 5)
	require.NoError(t, err)
	require.Len(t, candidates, 2)

	assert.Equal(t, alice.Id, candidates[0].ProfileId)
	assert.Equal(t, alice.Email, candidates[0].Email)
	assert.Equal(t, "Alice Chen", candidates[0].FullName)
	assert.InDelta(t, 1.0, candidates[0].Score, 0.001)
	assert.Equal(t, "Major: Computer Science. Skills: Python, Go. Courses: Algorithms, Databases. Interests: Machine Learning...", candidates[0].Snippet)

	assert.Equal(t, bob.Id, candidates[1].ProfileId)
	assert.InDelta(t, 0.8, candidates[1].Score, 0.001)
	assert.Equal(t, "Major: Computer Science...", candidates[1].Snippet)
}

func TestQuery_WidensBelowThreshold(t *testing.T) {
	ctx := context.Background()

	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		return []float32{1, 0, 0}, nil
	}

	store, repos := newTestStore(t, embedder)

	// One primary match and two matches inside the widened band
	// [0.27, 0.32) for the default config.
	seedEmbedding(t, repos, 1, "a@university.edu", "A", []float32{1, 0, 0})
	seedEmbedding(t, repos, 2, "b@university.edu", "B", []float32{0.30, 0.954, 0})
	seedEmbedding(t, repos, 3, "c@university.edu", "C", []float32{0.28, 0.96, 0})
	seedEmbedding(t, repos, 4, "d@university.edu", "D", []float32{0.1, 0.99, 0})

	candidates, err := store.Query(ctx, "anything", 6)
	require.NoError(t, err)
	require.Len(t, candidates, 3)

	assert.Equal(t, core.ID(1), candidates[0].ProfileId)
	assert.Equal(t, core.ID(2), candidates[1].ProfileId)
	assert.Equal(t, core.ID(3), candidates[2].ProfileId)
	for _, c := range candidates {
		assert.GreaterOrEqual(t, c.Score, 0.27)
	}
}

func TestQuery_CapsResults(t *testing.T) {
	ctx := context.Background()

	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		return []float32{1, 0, 0}, nil
	}

	store, repos := newTestStore(t, embedder)

	for i := 1; i <= 8; i++ {
		seedEmbedding(t, repos, core.ID(i), "p@university.edu", "P",
			[]float32{1, float32(i) * 0.01, 0})
	}

	// topk beyond MaxResults is capped to MaxResults.
	candidates, err := store.Query(ctx, "anything", 10)
	require.NoError(t, err)
	assert.Len(t, candidates, 6)
	assert.Equal(t, core.ID(1), candidates[0].ProfileId)

	candidates, err = store.Query(ctx, "anything", 2)
	require.NoError(t, err)
	assert.Len(t, candidates, 2)
}

func TestQuery_CachesQueryVectors(t *testing.T) {
	ctx := context.Background()

	var calls int
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		calls++
		return []float32{1, 0, 0}, nil
	}

	store, _ := newTestStore(t, embedder)

	_, err := store.Query(ctx, "machine learning", 5)
	require.NoError(t, err)
	_, err = store.Query(ctx, "machine learning", 5)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)

	_, err = store.Query(ctx, "distributed systems", 5)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestQuery_ProviderError(t *testing.T) {
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		return nil, assert.AnError
	}

	store, _ := newTestStore(t, embedder)

	_, err := store.Query(context.Background(), "machine learning", 5)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestQuery_EmptyProviderVector(t *testing.T) {
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		return []float32{}, nil
	}

	store, _ := newTestStore(t, embedder)

	_, err := store.Query(context.Background(), "machine learning", 5)
	assert.ErrorIs(t, err, ErrEmptyVector)
}

func TestRemove(t *testing.T) {
	ctx := context.Background()

	store, repos := newTestStore(t, mock.NewMockEmbedder())
	seedEmbedding(t, repos, 7, "g@university.edu", "G", []float32{1, 0, 0})

	require.NoError(t, store.Remove(ctx, 7))

	_, err := repos.Embeddings.GetEmbedding(ctx, 7)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	// Removing an absent record is a no-op.
	assert.NoError(t, store.Remove(ctx, 7))
}

func TestStats(t *testing.T) {
	ctx := context.Background()

	t.Run("empty store with embedder", func(t *testing.T) {
		store, _ := newTestStore(t, mock.NewMockEmbedder())

		stats, err := store.Stats(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(0), stats.TotalEmbeddings)
		assert.True(t, stats.LatestUpdate.IsZero())
		assert.True(t, stats.Available)
	})

	t.Run("no embedder", func(t *testing.T) {
		store, _ := newTestStore(t, nil)

		stats, err := store.Stats(ctx)
		require.NoError(t, err)
		assert.False(t, stats.Available)
	})

	t.Run("with records", func(t *testing.T) {
		store, repos := newTestStore(t, mock.NewMockEmbedder())
		seedEmbedding(t, repos, 1, "a@university.edu", "A", []float32{1, 0, 0})
		seedEmbedding(t, repos, 2, "b@university.edu", "B", []float32{0, 1, 0})

		stats, err := store.Stats(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(2), stats.TotalEmbeddings)
		assert.False(t, stats.LatestUpdate.IsZero())
	})
}

func TestQuery_MissingProfileSnippetFallback(t *testing.T) {
	ctx := context.Background()

	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		return []float32{1, 0, 0}, nil
	}

	store, repos := newTestStore(t, embedder)

	// No profile backs this embedding record.
	seedEmbedding(t, repos, 4242, "ghost@university.edu", "Ghost", []float32{1, 0, 0})

	candidates, err := store.Query(ctx, "anything", 5)
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "Profile 4242", candidates[0].Snippet)
}
