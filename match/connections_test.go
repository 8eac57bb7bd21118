package match

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/peermatch/core"
)

// rawSwipe records feedback toward an arbitrary email, bypassing the
// seeded profiles. Used for tombstoned or never-ingested targets.
func (e *matchEnv) rawSwipe(t *testing.T, from *core.Profile, toEmail string, kind core.FeedbackKind, sessionID string) {
	t.Helper()

	_, err := e.repos.Feedback.AddFeedback(context.Background(), &core.SwipeFeedback{
		UserId:           from.Id,
		UserEmail:        from.Email,
		MatchedUserId:    core.IDFromEmail(toEmail),
		MatchedUserEmail: toEmail,
		Feedback:         kind,
		SessionId:        sessionID,
	})
	require.NoError(t, err)
}

func TestConnections(t *testing.T) {
	env := newMatchEnv(t)
	ctx := context.Background()
	alice, bob, carol, dana := seedCohort(t, env)

	env.swipe(t, alice, bob, core.FeedbackLike, "session_20250110_090000_1")
	env.swipe(t, alice, dana, core.FeedbackDislike, "session_20250110_090000_1")
	env.swipe(t, carol, alice, core.FeedbackLike, "session_20250110_100000_3")
	env.swipe(t, bob, alice, core.FeedbackLike, "session_20250110_110000_2")

	t.Run("nil user", func(t *testing.T) {
		_, err := env.finder.Connections(ctx, nil, ConnectionOptions{})
		assert.Equal(t, ErrUserRequired, err)
	})

	t.Run("both directions with flags and stats", func(t *testing.T) {
		list, err := env.finder.Connections(ctx, alice, ConnectionOptions{})
		require.NoError(t, err)
		require.Len(t, list.Connections, 2)

		mutual := list.Connections[0]
		assert.Equal(t, bob.Email, mutual.Profile.Email)
		assert.True(t, mutual.LikedByMe)
		assert.True(t, mutual.LikedMe)
		assert.True(t, mutual.Mutual)
		assert.InDelta(t, 1.0, mutual.Similarity.Score, 0.0001)

		admirer := list.Connections[1]
		assert.Equal(t, carol.Email, admirer.Profile.Email)
		assert.False(t, admirer.LikedByMe)
		assert.True(t, admirer.LikedMe)
		assert.False(t, admirer.Mutual)
		assert.InDelta(t, 0.69, admirer.Similarity.Score, 0.0001)

		assert.Equal(t, core.ConnectionStats{
			LikedByMe:     1,
			LikedMe:       2,
			MutualMatches: 1,
		}, list.Stats)
	})

	t.Run("dislikes are not connections", func(t *testing.T) {
		list, err := env.finder.Connections(ctx, alice, ConnectionOptions{})
		require.NoError(t, err)
		for _, c := range list.Connections {
			assert.NotEqual(t, dana.Email, c.Profile.Email)
		}
	})
}

func TestConnections_MutualSortsFirst(t *testing.T) {
	env := newMatchEnv(t)
	ctx := context.Background()
	alice, _, carol, dana := seedCohort(t, env)

	// dana is mutual but barely similar; carol is close but one-sided.
	env.swipe(t, alice, dana, core.FeedbackLike, "")
	env.swipe(t, dana, alice, core.FeedbackLike, "")
	env.swipe(t, carol, alice, core.FeedbackLike, "")

	list, err := env.finder.Connections(ctx, alice, ConnectionOptions{})
	require.NoError(t, err)
	require.Len(t, list.Connections, 2)

	assert.Equal(t, dana.Email, list.Connections[0].Profile.Email)
	assert.True(t, list.Connections[0].Mutual)
	assert.InDelta(t, 0.10, list.Connections[0].Similarity.Score, 0.0001)

	assert.Equal(t, carol.Email, list.Connections[1].Profile.Email)
	assert.False(t, list.Connections[1].Mutual)
	assert.InDelta(t, 0.69, list.Connections[1].Similarity.Score, 0.0001)
}

func TestConnections_FreshOnly(t *testing.T) {
	env := newMatchEnv(t)
	ctx := context.Background()
	alice, bob, carol, _ := seedCohort(t, env)
	eve := env.seedProfile(t, "eve@university.edu", "Eve Park", nil)

	env.swipe(t, alice, eve, core.FeedbackLike, "session_20250101_090000_1")
	env.swipe(t, alice, bob, core.FeedbackLike, "session_20250115_090000_1")
	env.swipe(t, carol, alice, core.FeedbackLike, "session_20250115_100000_3")
	env.swipe(t, bob, alice, core.FeedbackLike, "session_20250115_110000_2")

	t.Run("session restricts to that session's likes", func(t *testing.T) {
		list, err := env.finder.Connections(ctx, alice, ConnectionOptions{
			FreshOnly: true,
			SessionId: "session_20250115_090000_1",
		})
		require.NoError(t, err)
		require.Len(t, list.Connections, 1)

		conn := list.Connections[0]
		assert.Equal(t, bob.Email, conn.Profile.Email)
		assert.True(t, conn.LikedByMe)
		assert.True(t, conn.LikedMe)
		assert.True(t, conn.Mutual)

		assert.Equal(t, core.ConnectionStats{
			LikedByMe:     1,
			LikedMe:       2,
			MutualMatches: 1,
		}, list.Stats)
	})

	t.Run("without session all own likes count", func(t *testing.T) {
		list, err := env.finder.Connections(ctx, alice, ConnectionOptions{FreshOnly: true})
		require.NoError(t, err)
		require.Len(t, list.Connections, 2)

		// Mutual bob ahead of one-sided eve; carol's like is excluded.
		assert.Equal(t, bob.Email, list.Connections[0].Profile.Email)
		assert.Equal(t, eve.Email, list.Connections[1].Profile.Email)
		assert.False(t, list.Connections[1].LikedMe)

		assert.Equal(t, core.ConnectionStats{
			LikedByMe:     2,
			LikedMe:       2,
			MutualMatches: 1,
		}, list.Stats)
	})
}

func TestConnections_SkipsMissingProfiles(t *testing.T) {
	env := newMatchEnv(t)
	ctx := context.Background()
	alice, bob, _, _ := seedCohort(t, env)

	env.swipe(t, alice, bob, core.FeedbackLike, "")
	env.rawSwipe(t, alice, "ghost@university.edu", core.FeedbackLike, "")

	list, err := env.finder.Connections(ctx, alice, ConnectionOptions{})
	require.NoError(t, err)
	require.Len(t, list.Connections, 1)
	assert.Equal(t, bob.Email, list.Connections[0].Profile.Email)

	// The ghost is still a like the user spent, so it stays in the count.
	assert.Equal(t, 2, list.Stats.LikedByMe)
}

func TestConnections_DedupesRepeatSwipes(t *testing.T) {
	env := newMatchEnv(t)
	ctx := context.Background()
	alice, bob, _, _ := seedCohort(t, env)

	env.swipe(t, alice, bob, core.FeedbackLike, "session_20250110_090000_1")
	env.rawSwipe(t, alice, "BOB@UNIVERSITY.EDU", core.FeedbackLike, "session_20250111_090000_1")

	list, err := env.finder.Connections(ctx, alice, ConnectionOptions{})
	require.NoError(t, err)
	require.Len(t, list.Connections, 1)
	assert.Equal(t, 1, list.Stats.LikedByMe)
}

func TestConnections_RecomputesWithCurrentWeights(t *testing.T) {
	env := newMatchEnv(t)
	ctx := context.Background()
	alice, _, carol, _ := seedCohort(t, env)

	env.swipe(t, alice, carol, core.FeedbackLike, "")

	require.NoError(t, env.repos.Weights.PutWeights(ctx, &core.FeatureWeights{
		UserId:  alice.Id,
		Weights: map[string]float64{core.FeatureAcademicCourses: 1.0},
	}))

	list, err := env.finder.Connections(ctx, alice, ConnectionOptions{})
	require.NoError(t, err)
	require.Len(t, list.Connections, 1)

	// Course overlap alone: jaccard 0.5 rather than the default-weight 0.69.
	assert.InDelta(t, 0.5, list.Connections[0].Similarity.Score, 0.0001)
}

func TestConnections_EmptyHistory(t *testing.T) {
	env := newMatchEnv(t)
	alice, _, _, _ := seedCohort(t, env)

	list, err := env.finder.Connections(context.Background(), alice, ConnectionOptions{})
	require.NoError(t, err)
	assert.Empty(t, list.Connections)
	assert.Equal(t, core.ConnectionStats{}, list.Stats)
}
