package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"studysite/internal/model"
)

func (s *Store) TutorProfiles(ctx context.Context) ([]model.TutorProfile, error) {
	return load[[]model.TutorProfile](ctx, s, keyTutors)
}

// UpsertTutorProfile creates owner's tutoring card or updates it in place.
// Only tutor-role accounts may hold one, and an owner never holds two: an
// update keeps the existing id and rating.
func (s *Store) UpsertTutorProfile(ctx context.Context, owner, role string, data model.TutorProfile) (*model.TutorProfile, error) {
	if role != model.RoleTutor {
		return nil, fmt.Errorf("%w: only tutor accounts can offer tutoring", ErrForbidden)
	}
	profiles, err := s.TutorProfiles(ctx)
	if err != nil {
		return nil, err
	}
	for i := range profiles {
		if profiles[i].Owner == owner {
			data.ID = profiles[i].ID
			data.Owner = owner
			data.Rating = profiles[i].Rating
			profiles[i] = data
			if err := save(ctx, s, keyTutors, profiles); err != nil {
				return nil, err
			}
			return &profiles[i], nil
		}
	}
	data.ID = uuid.New().String()
	data.Owner = owner
	data.Rating = 0
	profiles = append(profiles, data)
	if err := save(ctx, s, keyTutors, profiles); err != nil {
		return nil, err
	}
	return &profiles[len(profiles)-1], nil
}

// RemoveTutorProfile deletes owner's profile; absent is a no-op.
func (s *Store) RemoveTutorProfile(ctx context.Context, owner string) error {
	profiles, err := s.TutorProfiles(ctx)
	if err != nil {
		return err
	}
	for i := range profiles {
		if profiles[i].Owner == owner {
			return save(ctx, s, keyTutors, append(profiles[:i], profiles[i+1:]...))
		}
	}
	return nil
}

// SeedTutorProfiles writes a starter catalog, but only when no profiles
// exist yet.
func (s *Store) SeedTutorProfiles(ctx context.Context, seed []model.TutorProfile) error {
	profiles, err := s.TutorProfiles(ctx)
	if err != nil {
		return err
	}
	if len(profiles) > 0 {
		return nil
	}
	return save(ctx, s, keyTutors, seed)
}

// StarterTutorProfiles is the catalog shown before any tutor account has
// created a card of their own.
var StarterTutorProfiles = []model.TutorProfile{
	{ID: "t1", Name: "Alex Chen", Subjects: "Chemistry, AP Chem", Rate: "$30/hr", Rating: 4.8, Email: "alex@example.com"},
	{ID: "t2", Name: "Morgan Patel", Subjects: "General Chemistry, Stoichiometry", Rate: "$25/hr", Rating: 4.6, Email: "morgan@example.com"},
}

func (s *Store) Bookings(ctx context.Context) ([]model.Booking, error) {
	return load[[]model.Booking](ctx, s, keyBookings)
}

// Book records a booking with the tutor behind tutorID. De-duplication keys
// on the tutor's display name, not the profile id, so two profiles sharing a
// name count as one booking target.
func (s *Store) Book(ctx context.Context, tutorID, user string) (*model.Booking, error) {
	profiles, err := s.TutorProfiles(ctx)
	if err != nil {
		return nil, err
	}
	var tutor *model.TutorProfile
	for i := range profiles {
		if profiles[i].ID == tutorID {
			tutor = &profiles[i]
			break
		}
	}
	if tutor == nil {
		return nil, fmt.Errorf("%w: no tutor %s", ErrNotFound, tutorID)
	}
	bookings, err := s.Bookings(ctx)
	if err != nil {
		return nil, err
	}
	for _, b := range bookings {
		if b.Tutor == tutor.Name && b.User == user {
			return nil, fmt.Errorf("%w: you already have a booking with %s", ErrDuplicate, tutor.Name)
		}
	}
	b := model.Booking{Tutor: tutor.Name, Time: time.Now(), User: user}
	if err := save(ctx, s, keyBookings, append(bookings, b)); err != nil {
		return nil, err
	}
	return &b, nil
}
