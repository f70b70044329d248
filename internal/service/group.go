package service

import (
	"context"
	"fmt"
	"strings"

	"studysite/internal/model"
	"studysite/internal/store"
)

// CreateGroup makes the logged-in user the owner and sole initial member.
func (s *Service) CreateGroup(ctx context.Context, name, subject string, meeting *model.Meeting) (*model.Group, error) {
	user, err := s.requireUser(ctx)
	if err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: please enter a group name", store.ErrValidation)
	}
	return s.store.CreateGroup(ctx, user, name, strings.TrimSpace(subject), meeting)
}

// JoinGroup adds the logged-in user to the group. The second return reports
// whether the membership is new; joining a group already joined is a no-op.
func (s *Service) JoinGroup(ctx context.Context, groupID string) (*model.Group, bool, error) {
	user, err := s.requireUser(ctx)
	if err != nil {
		return nil, false, err
	}
	return s.store.JoinGroup(ctx, groupID, user)
}

func (s *Service) DeleteGroup(ctx context.Context, groupID string) error {
	user, err := s.requireUser(ctx)
	if err != nil {
		return err
	}
	return s.store.DeleteGroup(ctx, groupID, user)
}

func (s *Service) Groups(ctx context.Context) ([]model.Group, error) {
	return s.store.Groups(ctx)
}

func (s *Service) UpcomingGroups(ctx context.Context, withinDays int) ([]model.Group, error) {
	return s.store.UpcomingGroups(ctx, withinDays)
}
