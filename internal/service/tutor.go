package service

import (
	"context"
	"strings"

	"studysite/internal/model"
	"studysite/internal/store"
)

// UpsertTutorProfile creates or updates the logged-in user's tutoring card.
// The caller must hold a tutor account.
func (s *Service) UpsertTutorProfile(ctx context.Context, data model.TutorProfile) (*model.TutorProfile, error) {
	user, err := s.requireUser(ctx)
	if err != nil {
		return nil, err
	}
	account, err := s.store.FindAccount(ctx, user)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(data.Name) == "" {
		data.Name = account.Username
	}
	return s.store.UpsertTutorProfile(ctx, account.Username, account.Role, data)
}

// RemoveTutorProfile deletes the logged-in user's card; absent is a no-op.
func (s *Service) RemoveTutorProfile(ctx context.Context) error {
	user, err := s.requireUser(ctx)
	if err != nil {
		return err
	}
	return s.store.RemoveTutorProfile(ctx, user)
}

func (s *Service) TutorProfiles(ctx context.Context) ([]model.TutorProfile, error) {
	return s.store.TutorProfiles(ctx)
}

// BookTutor records a booking for the logged-in user; one booking per tutor
// per user.
func (s *Service) BookTutor(ctx context.Context, tutorID string) (*model.Booking, error) {
	user, err := s.requireUser(ctx)
	if err != nil {
		return nil, err
	}
	return s.store.Book(ctx, tutorID, user)
}

func (s *Service) Bookings(ctx context.Context) ([]model.Booking, error) {
	return s.store.Bookings(ctx)
}

// SeedTutors installs the starter tutor catalog on an empty site.
func (s *Service) SeedTutors(ctx context.Context) error {
	return s.store.SeedTutorProfiles(ctx, store.StarterTutorProfiles)
}
