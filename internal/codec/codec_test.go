package codec_test

import (
	"context"
	"errors"
	"testing"

	"studysite/internal/codec"
	"studysite/internal/kvstore"
	"studysite/internal/model"
)

func TestLoadAbsentKey(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemory()

	accounts, err := codec.Load[[]model.Account](ctx, kv, "accounts")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if accounts != nil {
		t.Errorf("expected zero value, got %v", accounts)
	}
}

func TestSaveLoad(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemory()

	in := []model.Account{{Username: "alice", Password: "secret1", Role: "student"}}
	if err := codec.Save(ctx, kv, "accounts", in); err != nil {
		t.Fatalf("save: %v", err)
	}
	out, err := codec.Load[[]model.Account](ctx, kv, "accounts")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(out) != 1 || out[0] != in[0] {
		t.Errorf("got %+v", out)
	}
}

func TestLoadCorrupt(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		raw  string
	}{
		{"not json", "}{ definitely not json"},
		{"wrong shape", `{"username":"alice"}`},
		{"number", "42"},
		{"truncated", `[{"username":"ali`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := kvstore.NewMemory()
			if err := kv.Set(ctx, "accounts", tt.raw); err != nil {
				t.Fatalf("set: %v", err)
			}
			out, err := codec.Load[[]model.Account](ctx, kv, "accounts")
			if !errors.Is(err, codec.ErrCorrupt) {
				t.Fatalf("expected ErrCorrupt, got %v", err)
			}
			if out != nil {
				t.Errorf("expected zero value alongside the error, got %v", out)
			}
		})
	}
}
