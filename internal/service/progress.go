package service

import "context"

// Progress returns the logged-in user's lesson completion map; logged out,
// there is nothing tracked.
func (s *Service) Progress(ctx context.Context) (map[string]bool, error) {
	user, err := s.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	if user == "" {
		return map[string]bool{}, nil
	}
	return s.store.Progress(ctx, user)
}

// ToggleLesson flips a lesson's completion flag for the logged-in user. With
// no session the store rejects it and the UI redirects to login.
func (s *Service) ToggleLesson(ctx context.Context, lessonID string) (map[string]bool, error) {
	user, err := s.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	return s.store.ToggleLesson(ctx, user, lessonID)
}

// PercentComplete reports the logged-in user's rounded completion out of
// totalLessons; 0 when logged out.
func (s *Service) PercentComplete(ctx context.Context, totalLessons int) (int, error) {
	user, err := s.CurrentUser(ctx)
	if err != nil {
		return 0, err
	}
	if user == "" {
		return 0, nil
	}
	return s.store.PercentComplete(ctx, user, totalLessons)
}
