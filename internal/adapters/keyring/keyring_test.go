package keyring

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestKeyring(t *testing.T, run runFunc) *Keyring {
	t.Helper()

	k := New(t.TempDir())
	if run != nil {
		k.run = run
	}
	return k
}

func passUnavailable(_ context.Context, _ string, _ ...string) (string, string, error) {
	return "", "", ErrPassUnavailable
}

func TestGetPrefersPass(t *testing.T) {
	k := newTestKeyring(t, func(_ context.Context, _ string, args ...string) (string, string, error) {
		require.Equal(t, []string{"show", passEntry}, args)
		return "aam_k1_frompass\n", "", nil
	})

	value, err := k.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "aam_k1_frompass", value)
}

func TestSetFallsBackToFileWhenPassUnavailable(t *testing.T) {
	k := newTestKeyring(t, passUnavailable)
	ctx := context.Background()

	require.NoError(t, k.Set(ctx, "aam_k1_filed"))

	value, err := k.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "aam_k1_filed", value)

	info, err := os.Stat(filepath.Join(k.root, keyFileName))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(keyFileMode), info.Mode().Perm())
}

func TestSetRejectsEmptyKey(t *testing.T) {
	k := newTestKeyring(t, passUnavailable)

	require.Error(t, k.Set(context.Background(), "   "))
}

func TestGetReportsBothBackendsWhenNeitherHasKey(t *testing.T) {
	k := newTestKeyring(t, passUnavailable)

	_, err := k.Get(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPassUnavailable)
	assert.Contains(t, err.Error(), "file lookup failed")
}

func TestDeleteRemovesFileFallback(t *testing.T) {
	k := newTestKeyring(t, passUnavailable)
	ctx := context.Background()

	require.NoError(t, k.Set(ctx, "aam_k1_gone"))
	require.NoError(t, k.Delete(ctx))

	_, err := k.Get(ctx)
	require.Error(t, err)
}

func TestCancelledContextSkipsFallback(t *testing.T) {
	k := newTestKeyring(t, func(ctx context.Context, _ string, _ ...string) (string, string, error) {
		return "", "", ctx.Err()
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := k.Get(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, errors.Is(err, os.ErrNotExist))
}
