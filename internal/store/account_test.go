package store_test

import (
	"context"
	"errors"
	"testing"

	"studysite/internal/kvstore"
	"studysite/internal/model"
	"studysite/internal/store"
)

func newStore(t *testing.T) (*store.Store, *kvstore.Memory) {
	t.Helper()
	kv := kvstore.NewMemory()
	return store.New(kv), kv
}

func mustCreate(t *testing.T, st *store.Store, username, password, role string) {
	t.Helper()
	err := st.CreateAccount(context.Background(), model.Account{Username: username, Password: password, Role: role})
	if err != nil {
		t.Fatalf("create %s: %v", username, err)
	}
}

func TestCreateAccountDuplicate(t *testing.T) {
	ctx := context.Background()
	st, _ := newStore(t)

	mustCreate(t, st, "alice", "secret1", "")

	// same name, any casing
	for _, name := range []string{"alice", "Alice", "ALICE"} {
		err := st.CreateAccount(ctx, model.Account{Username: name, Password: "other12"})
		if !errors.Is(err, store.ErrDuplicate) {
			t.Errorf("username %q: expected ErrDuplicate, got %v", name, err)
		}
	}

	accounts, err := st.Accounts(ctx)
	if err != nil {
		t.Fatalf("accounts: %v", err)
	}
	if len(accounts) != 1 {
		t.Errorf("expected 1 surviving account, got %d", len(accounts))
	}
}

func TestCreateAccountDefaultRole(t *testing.T) {
	ctx := context.Background()
	st, _ := newStore(t)

	mustCreate(t, st, "alice", "secret1", "")
	a, err := st.FindAccount(ctx, "alice")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if a.Role != model.RoleStudent {
		t.Errorf("role: got %q", a.Role)
	}
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	st, _ := newStore(t)
	mustCreate(t, st, "Alice", "Secret1", "")

	// username matching is case-insensitive
	a, err := st.Authenticate(ctx, "alice", "Secret1")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if a.Username != "Alice" {
		t.Errorf("expected canonical casing, got %q", a.Username)
	}

	// password matching is not
	if _, err := st.Authenticate(ctx, "alice", "secret1"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("case-shifted password: expected ErrNotFound, got %v", err)
	}
	if _, err := st.Authenticate(ctx, "nobody", "Secret1"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("unknown user: expected ErrNotFound, got %v", err)
	}
}

func TestDeleteAccount(t *testing.T) {
	ctx := context.Background()
	st, _ := newStore(t)
	mustCreate(t, st, "alice", "secret1", "")
	mustCreate(t, st, "bob", "secret2", "")

	if err := st.DeleteAccount(ctx, "Alice"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := st.FindAccount(ctx, "alice"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
	if err := st.DeleteAccount(ctx, "alice"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("second delete: expected ErrNotFound, got %v", err)
	}

	accounts, _ := st.Accounts(ctx)
	if len(accounts) != 1 || accounts[0].Username != "bob" {
		t.Errorf("remaining accounts: %+v", accounts)
	}
}

func TestExportAccounts(t *testing.T) {
	ctx := context.Background()
	st, kv := newStore(t)

	// empty store exports an empty array
	raw, err := st.ExportAccounts(ctx)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if raw != "[]" {
		t.Errorf("empty export: got %q", raw)
	}

	// export is the stored text verbatim, field order and all
	stored := `[{"username":"alice","password":"secret1","role":"student"}]`
	if err := kv.Set(ctx, "accounts", stored); err != nil {
		t.Fatalf("set: %v", err)
	}
	raw, err = st.ExportAccounts(ctx)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if raw != stored {
		t.Errorf("export: got %q", raw)
	}
}

func TestImportAccountsReplacesWholesale(t *testing.T) {
	ctx := context.Background()
	st, _ := newStore(t)
	mustCreate(t, st, "olduser", "oldpass1", "")

	n, err := st.ImportAccounts(ctx, []byte(`[
		{"username":"alice","password":"secret1"},
		{"username":"tutor1","password":"secret2","role":"tutor"}
	]`))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if n != 2 {
		t.Errorf("count: got %d", n)
	}

	accounts, _ := st.Accounts(ctx)
	if len(accounts) != 2 {
		t.Fatalf("expected olduser gone, got %+v", accounts)
	}
	if accounts[0].Username != "alice" || accounts[0].Role != model.RoleStudent {
		t.Errorf("first: %+v", accounts[0])
	}
	if accounts[1].Role != model.RoleTutor {
		t.Errorf("second: %+v", accounts[1])
	}
}

func TestImportAccountsInvalid(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		data string
	}{
		{"not json", "nope"},
		{"not an array", `{"username":"alice","password":"secret1"}`},
		{"missing password", `[{"username":"alice"}]`},
		{"numeric username", `[{"username":42,"password":"secret1"}]`},
		{"null password", `[{"username":"alice","password":null}]`},
		{"array element", `["alice"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, _ := newStore(t)
			mustCreate(t, st, "keepme", "secret1", "")

			if _, err := st.ImportAccounts(ctx, []byte(tt.data)); !errors.Is(err, store.ErrInvalidImport) {
				t.Fatalf("expected ErrInvalidImport, got %v", err)
			}
			// a rejected import changes nothing
			accounts, _ := st.Accounts(ctx)
			if len(accounts) != 1 || accounts[0].Username != "keepme" {
				t.Errorf("accounts after failed import: %+v", accounts)
			}
		})
	}
}

func TestAccountsCorruptStore(t *testing.T) {
	ctx := context.Background()
	st, kv := newStore(t)
	if err := kv.Set(ctx, "accounts", "not an array at all"); err != nil {
		t.Fatalf("set: %v", err)
	}

	accounts, err := st.Accounts(ctx)
	if err != nil {
		t.Fatalf("expected recovery, got %v", err)
	}
	if len(accounts) != 0 {
		t.Errorf("expected empty collection, got %+v", accounts)
	}

	// and registration still works on top of it
	mustCreate(t, st, "alice", "secret1", "")
}
