package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"studysite/internal/model"
)

func (s *Store) Accounts(ctx context.Context) ([]model.Account, error) {
	return load[[]model.Account](ctx, s, keyAccounts)
}

// FindAccount matches username case-insensitively and returns the stored
// record with its canonical casing.
func (s *Store) FindAccount(ctx context.Context, username string) (*model.Account, error) {
	accounts, err := s.Accounts(ctx)
	if err != nil {
		return nil, err
	}
	for i := range accounts {
		if strings.EqualFold(accounts[i].Username, username) {
			return &accounts[i], nil
		}
	}
	return nil, fmt.Errorf("%w: no account %q", ErrNotFound, username)
}

// CreateAccount appends a new account. Usernames are unique under
// case-insensitive comparison.
func (s *Store) CreateAccount(ctx context.Context, a model.Account) error {
	accounts, err := s.Accounts(ctx)
	if err != nil {
		return err
	}
	for _, existing := range accounts {
		if strings.EqualFold(existing.Username, a.Username) {
			return fmt.Errorf("%w: that username is already taken", ErrDuplicate)
		}
	}
	if a.Role == "" {
		a.Role = model.RoleStudent
	}
	return save(ctx, s, keyAccounts, append(accounts, a))
}

// Authenticate pairs a case-insensitive username match with an exact
// password match. The asymmetry is deliberate: usernames are forgiving,
// passwords are not.
func (s *Store) Authenticate(ctx context.Context, username, password string) (*model.Account, error) {
	accounts, err := s.Accounts(ctx)
	if err != nil {
		return nil, err
	}
	for i := range accounts {
		if strings.EqualFold(accounts[i].Username, username) && accounts[i].Password == password {
			return &accounts[i], nil
		}
	}
	return nil, fmt.Errorf("%w: invalid username or password", ErrNotFound)
}

// DeleteAccount removes the account. The account's groups, bookings, tutor
// profile, progress, and any live session for it are left in place; a
// session then dangles until logout.
func (s *Store) DeleteAccount(ctx context.Context, username string) error {
	accounts, err := s.Accounts(ctx)
	if err != nil {
		return err
	}
	kept := make([]model.Account, 0, len(accounts))
	for _, a := range accounts {
		if !strings.EqualFold(a.Username, username) {
			kept = append(kept, a)
		}
	}
	if len(kept) == len(accounts) {
		return fmt.Errorf("%w: no account %q", ErrNotFound, username)
	}
	return save(ctx, s, keyAccounts, kept)
}

// ClearAccounts removes every account.
func (s *Store) ClearAccounts(ctx context.Context) error {
	return save(ctx, s, keyAccounts, []model.Account{})
}

// ExportAccounts returns the stored accounts collection verbatim, as the
// admin screen downloads it.
func (s *Store) ExportAccounts(ctx context.Context) (string, error) {
	raw, ok, err := s.kv.Get(ctx, keyAccounts)
	if err != nil {
		return "", err
	}
	if !ok {
		return "[]", nil
	}
	return raw, nil
}

// ImportAccounts replaces the whole accounts collection, not merging. Every
// element must carry string-typed username and password fields; anything
// else rejects the import and changes nothing.
func (s *Store) ImportAccounts(ctx context.Context, data []byte) (int, error) {
	var records []map[string]json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		return 0, fmt.Errorf("%w: JSON is not an array of objects", ErrInvalidImport)
	}
	accounts := make([]model.Account, 0, len(records))
	for _, rec := range records {
		username, ok := stringField(rec, "username")
		if !ok {
			return 0, fmt.Errorf("%w: every record needs a string username", ErrInvalidImport)
		}
		password, ok := stringField(rec, "password")
		if !ok {
			return 0, fmt.Errorf("%w: every record needs a string password", ErrInvalidImport)
		}
		role, _ := stringField(rec, "role")
		if role != model.RoleTutor {
			role = model.RoleStudent
		}
		accounts = append(accounts, model.Account{Username: username, Password: password, Role: role})
	}
	if err := save(ctx, s, keyAccounts, accounts); err != nil {
		return 0, err
	}
	return len(accounts), nil
}

// stringField requires a JSON string; null and other types don't count.
func stringField(rec map[string]json.RawMessage, name string) (string, bool) {
	raw, ok := rec[name]
	if !ok || len(raw) == 0 || raw[0] != '"' {
		return "", false
	}
	var v string
	if err := json.Unmarshal(raw, &v); err != nil {
		return "", false
	}
	return v, true
}
