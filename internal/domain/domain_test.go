package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAPIKeyShapes(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantKeyID string
		wantErr   bool
	}{
		{name: "well formed", raw: "aam_k1_s3cr3t", wantKeyID: "k1"},
		{name: "secret with underscores", raw: "aam_k1_se_cr_et", wantKeyID: "k1"},
		{name: "wrong prefix", raw: "sk_k1_s3cr3t", wantErr: true},
		{name: "missing secret", raw: "aam_k1_", wantErr: true},
		{name: "missing key id", raw: "aam__s3cr3t", wantErr: true},
		{name: "no separators", raw: "aamk1s3cr3t", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := ParseAPIKey(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				// Shape errors still return a usable key; the server decides.
				assert.Equal(t, tt.raw, key.Value())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantKeyID, key.KeyID)
			assert.Equal(t, tt.raw, key.Value())
		})
	}
}

func TestParseAPIKeyEmptyIsError(t *testing.T) {
	_, err := ParseAPIKey("  ")
	require.ErrorIs(t, err, ErrAPIKeyEmpty)
}

func TestAPIKeyRedactedNeverContainsSecret(t *testing.T) {
	key, err := ParseAPIKey("aam_k1_topsecret")
	require.NoError(t, err)

	assert.Equal(t, "aam_k1_****", key.Redacted())
	assert.NotContains(t, key.Redacted(), "topsecret")
}

func TestResolutionRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     ResolutionRequest
		wantErr string
	}{
		{name: "resolved with note", req: ResolutionRequest{Status: ResolutionResolved, ResolutionNote: "fixed in 1.4.2"}},
		{name: "archived with note", req: ResolutionRequest{Status: ResolutionArchived, ResolutionNote: "duplicate of ISS-12"}},
		{name: "empty note", req: ResolutionRequest{Status: ResolutionResolved}, wantErr: "resolution note is required"},
		{name: "whitespace note", req: ResolutionRequest{Status: ResolutionResolved, ResolutionNote: "   "}, wantErr: "resolution note is required"},
		{name: "unknown status", req: ResolutionRequest{Status: "closed", ResolutionNote: "done"}, wantErr: "resolution status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCursorRepresentation(t *testing.T) {
	assert.True(t, Cursor{}.IsZero())

	since := SinceCursor(time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC))
	assert.False(t, since.IsZero())
	assert.False(t, since.HasToken())

	token := TokenCursor("c42")
	assert.True(t, token.HasToken())
	assert.False(t, token.IsZero())
}
