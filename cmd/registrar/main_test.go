package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"pushreg/config"
	"pushreg/internal/infra/kvstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestNewKeyValueStore_OpensSQLite(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	cfg := &config.RegistrationConfig{StorePath: filepath.Join(t.TempDir(), "state.db")}

	store := newKeyValueStore(lc, cfg, slog.New(slog.DiscardHandler))
	assert.IsType(t, &kvstore.SQLiteStore{}, store)

	lc.RequireStart()
	require.NoError(t, store.Set(context.Background(), "k", "v"))
	lc.RequireStop()
}

func TestNewKeyValueStore_FallsBackToMemoryWhenUnopenable(t *testing.T) {
	// A regular file where the store directory should be makes the path unopenable.
	blocker := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	lc := fxtest.NewLifecycle(t)
	cfg := &config.RegistrationConfig{StorePath: filepath.Join(blocker, "pushreg", "state.db")}

	store := newKeyValueStore(lc, cfg, slog.New(slog.DiscardHandler))
	require.IsType(t, &kvstore.MemoryStore{}, store)

	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "k", "v"))
	got, err := store.Get(ctx, "k", "")
	require.NoError(t, err)
	assert.Equal(t, "v", got)

	lc.RequireStart()
	lc.RequireStop()
}
