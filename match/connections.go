package match

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/poiesic/peermatch/core"
	"github.com/poiesic/peermatch/storage"
)

// ConnectionOptions controls a connection listing. FreshOnly restricts the
// listing to profiles the user liked, filtered to SessionId's swipes when
// a session is given.
type ConnectionOptions struct {
	FreshOnly bool
	SessionId string
}

// Connections lists the user's swipe connections: profiles they liked,
// profiles that liked them, or both. Every connection carries direction
// flags and a similarity recomputed with the user's current weights.
// Connections whose profile no longer exists are skipped.
func (f *Finder) Connections(ctx context.Context, user *core.Profile, opts ConnectionOptions) (*core.ConnectionList, error) {
	if user == nil {
		return nil, ErrUserRequired
	}

	liked, err := f.likedEmails(ctx, user.Id, opts)
	if err != nil {
		return nil, err
	}
	likedBy, err := f.likedByEmails(ctx, user.Id)
	if err != nil {
		return nil, err
	}

	likedSet := toLookup(liked)
	likedBySet := toLookup(likedBy)

	// A fresh listing shows only this user's likes; otherwise both
	// directions union, the user's likes first.
	emails := liked
	if !opts.FreshOnly {
		for _, email := range likedBy {
			if !likedSet[email] {
				emails = append(emails, email)
			}
		}
	}

	weights, err := f.learner.WeightsFor(ctx, user.Id)
	if err != nil {
		return nil, err
	}

	connections := make([]core.Connection, 0, len(emails))
	for _, email := range emails {
		profile, err := f.profiles.GetProfileByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				f.logger.Debug("skipping connection without profile", "email", email)
				continue
			}
			return nil, fmt.Errorf("loading connection profile: %w", err)
		}

		conn := core.Connection{
			Profile:   profile,
			LikedByMe: likedSet[email],
			LikedMe:   likedBySet[email],
		}
		conn.Mutual = conn.LikedByMe && conn.LikedMe

		sim, err := f.scorer.Score(user, profile, weights)
		if err != nil {
			f.logger.Warn("similarity recompute failed",
				"user", user.Id, "connection", profile.Id, "err", err)
			sim = core.Similarity{}
		}
		conn.Similarity = sim

		connections = append(connections, conn)
	}

	sort.SliceStable(connections, func(i, j int) bool {
		if connections[i].Mutual != connections[j].Mutual {
			return connections[i].Mutual
		}
		return connections[i].Similarity.Score > connections[j].Similarity.Score
	})

	mutual := 0
	for _, c := range connections {
		if c.Mutual {
			mutual++
		}
	}

	return &core.ConnectionList{
		Connections: connections,
		Stats: core.ConnectionStats{
			LikedByMe:     len(liked),
			LikedMe:       len(likedBy),
			MutualMatches: mutual,
		},
	}, nil
}

// likedEmails returns the unique emails the user swiped like on, in
// first-swipe order. Session filtering applies only to this direction.
func (f *Finder) likedEmails(ctx context.Context, userID core.ID, opts ConnectionOptions) ([]string, error) {
	var events []*core.SwipeFeedback
	var err error
	if opts.FreshOnly && opts.SessionId != "" {
		events, err = f.learner.feedback.GetFeedbackBySession(ctx, userID, opts.SessionId)
	} else {
		events, err = f.learner.feedback.GetFeedbackByUser(ctx, userID)
	}
	if err != nil {
		return nil, fmt.Errorf("loading swipe history: %w", err)
	}

	var emails []string
	seen := make(map[string]bool)
	for _, ev := range events {
		if ev.Feedback != core.FeedbackLike {
			continue
		}
		email := normalizeEmail(ev.MatchedUserEmail)
		if email == "" || seen[email] {
			continue
		}
		seen[email] = true
		emails = append(emails, email)
	}
	return emails, nil
}

// likedByEmails returns the unique emails of users who liked this user,
// in swipe order.
func (f *Finder) likedByEmails(ctx context.Context, userID core.ID) ([]string, error) {
	events, err := f.learner.feedback.GetFeedbackForTarget(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("loading received swipes: %w", err)
	}

	var emails []string
	seen := make(map[string]bool)
	for _, ev := range events {
		if ev.Feedback != core.FeedbackLike {
			continue
		}
		email := normalizeEmail(ev.UserEmail)
		if email == "" || seen[email] {
			continue
		}
		seen[email] = true
		emails = append(emails, email)
	}
	return emails, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func toLookup(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
