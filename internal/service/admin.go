package service

import (
	"context"

	"studysite/internal/model"
)

// Admin screen operations over the accounts collection. The admin page is a
// thin viewer; these delegate straight to the accounts store.

func (s *Service) Accounts(ctx context.Context) ([]model.Account, error) {
	return s.store.Accounts(ctx)
}

// ExportAccounts returns the stored accounts JSON verbatim for download.
func (s *Service) ExportAccounts(ctx context.Context) (string, error) {
	return s.store.ExportAccounts(ctx)
}

// ImportAccounts replaces the accounts collection wholesale and reports how
// many records were imported.
func (s *Service) ImportAccounts(ctx context.Context, data []byte) (int, error) {
	return s.store.ImportAccounts(ctx, data)
}

// DeleteAccount removes one account without cascading; the account's
// records elsewhere, and any live session for it, are left dangling.
func (s *Service) DeleteAccount(ctx context.Context, username string) error {
	return s.store.DeleteAccount(ctx, username)
}

func (s *Service) ClearAccounts(ctx context.Context) error {
	return s.store.ClearAccounts(ctx)
}
