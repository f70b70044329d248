package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"studysite/internal/model"
)

// Groups returns every stored group. A record written without a members
// array reads as having no members.
func (s *Store) Groups(ctx context.Context) ([]model.Group, error) {
	groups, err := load[[]model.Group](ctx, s, keyGroups)
	if err != nil {
		return nil, err
	}
	for i := range groups {
		if groups[i].Members == nil {
			groups[i].Members = []string{}
		}
	}
	return groups, nil
}

// UpcomingGroups keeps only groups whose meeting falls within the next
// withinDays days. Groups without a scheduled meeting are excluded here but
// included by Groups.
func (s *Store) UpcomingGroups(ctx context.Context, withinDays int) ([]model.Group, error) {
	groups, err := s.Groups(ctx)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	limit := now.Add(time.Duration(withinDays) * 24 * time.Hour)
	var out []model.Group
	for _, g := range groups {
		at, ok := meetingAt(g.Meeting)
		if !ok {
			continue
		}
		if !at.Before(now) && !at.After(limit) {
			out = append(out, g)
		}
	}
	return out, nil
}

func meetingAt(m *model.Meeting) (time.Time, bool) {
	if m == nil || m.Date == "" {
		return time.Time{}, false
	}
	layout := "2006-01-02"
	value := m.Date
	if m.Time != "" {
		layout += " 15:04"
		value += " " + m.Time
	}
	at, err := time.ParseInLocation(layout, value, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return at, true
}

// CreateGroup allocates a fresh id and stores the group with owner as its
// only member. Group names are unique under case-insensitive comparison.
func (s *Store) CreateGroup(ctx context.Context, owner, name, subject string, meeting *model.Meeting) (*model.Group, error) {
	groups, err := s.Groups(ctx)
	if err != nil {
		return nil, err
	}
	for _, g := range groups {
		if strings.EqualFold(g.Name, name) {
			return nil, fmt.Errorf("%w: a group named %q already exists", ErrDuplicate, name)
		}
	}
	g := model.Group{
		ID:      uuid.New().String(),
		Name:    name,
		Subject: subject,
		Owner:   owner,
		Members: []string{owner},
		Meeting: meeting,
	}
	if err := save(ctx, s, keyGroups, append(groups, g)); err != nil {
		return nil, err
	}
	return &g, nil
}

// JoinGroup adds username to the group's members. Joining twice is a
// successful no-op; the second return reports whether the membership is new
// so the caller can say "already joined".
func (s *Store) JoinGroup(ctx context.Context, groupID, username string) (*model.Group, bool, error) {
	groups, err := s.Groups(ctx)
	if err != nil {
		return nil, false, err
	}
	for i := range groups {
		if groups[i].ID != groupID {
			continue
		}
		for _, m := range groups[i].Members {
			if m == username {
				return &groups[i], false, nil
			}
		}
		groups[i].Members = append(groups[i].Members, username)
		if err := save(ctx, s, keyGroups, groups); err != nil {
			return nil, false, err
		}
		return &groups[i], true, nil
	}
	return nil, false, fmt.Errorf("%w: no group %s", ErrNotFound, groupID)
}

// DeleteGroup removes the group. Only its owner may.
func (s *Store) DeleteGroup(ctx context.Context, groupID, requester string) error {
	groups, err := s.Groups(ctx)
	if err != nil {
		return err
	}
	for i := range groups {
		if groups[i].ID != groupID {
			continue
		}
		if groups[i].Owner != requester {
			return fmt.Errorf("%w: only the owner can delete a group", ErrForbidden)
		}
		return save(ctx, s, keyGroups, append(groups[:i], groups[i+1:]...))
	}
	return fmt.Errorf("%w: no group %s", ErrNotFound, groupID)
}
