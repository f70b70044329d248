package store

import (
	"context"
	"fmt"
	"math"
)

func progressKey(username string) string { return progressPrefix + username }

// Progress returns the lesson completion map for username, empty when
// nothing has been recorded.
func (s *Store) Progress(ctx context.Context, username string) (map[string]bool, error) {
	p, err := load[map[string]bool](ctx, s, progressKey(username))
	if err != nil {
		return nil, err
	}
	if p == nil {
		p = map[string]bool{}
	}
	return p, nil
}

// ToggleLesson flips the completion flag for lessonID (absent counts as not
// completed) and returns the full new map. Tracking progress requires a
// logged-in user.
func (s *Store) ToggleLesson(ctx context.Context, username, lessonID string) (map[string]bool, error) {
	if username == "" {
		return nil, fmt.Errorf("%w: log in to track progress", ErrNotAuthenticated)
	}
	p, err := s.Progress(ctx, username)
	if err != nil {
		return nil, err
	}
	p[lessonID] = !p[lessonID]
	if err := save(ctx, s, progressKey(username), p); err != nil {
		return nil, err
	}
	return p, nil
}

// PercentComplete reports rounded completion out of totalLessons, 0 when the
// catalog is empty. Only entries toggled on count.
func (s *Store) PercentComplete(ctx context.Context, username string, totalLessons int) (int, error) {
	if totalLessons <= 0 {
		return 0, nil
	}
	p, err := s.Progress(ctx, username)
	if err != nil {
		return 0, err
	}
	done := 0
	for _, completed := range p {
		if completed {
			done++
		}
	}
	return int(math.Round(float64(done) / float64(totalLessons) * 100)), nil
}
