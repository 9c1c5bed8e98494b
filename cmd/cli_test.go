package cmd

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionPrintsBuildVersion(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "dev")
}

func TestResolveRequiresNoteFlag(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "resolve", "i1", "--status", "resolved")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag(s) \"note\" not set")
}

func TestResolveRejectsBlankNoteBeforeAnyRequest(t *testing.T) {
	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	home := t.TempDir()
	t.Setenv("AAM_BASE_URL", server.URL)
	t.Setenv("AAM_API_KEY", "aam_k1_secret")

	_, _, err := executeCLI(t, home, "resolve", "i1", "--status", "resolved", "--note", "   ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "resolution note is required")
	assert.Zero(t, calls.Load())
}

func TestProjectPrintsConfirmedIdentity(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/agent/v1/project", r.URL.Path)
		require.Equal(t, "aam_k1_secret", r.Header.Get("X-Api-Key"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"project":{"id":"p1","name":"Checkout"}}`))
	}))
	defer server.Close()

	home := t.TempDir()
	t.Setenv("AAM_BASE_URL", server.URL)
	t.Setenv("AAM_API_KEY", "aam_k1_secret")

	stdout, _, err := executeCLI(t, home, "project")
	require.NoError(t, err)
	assert.Contains(t, stdout, "p1")
	assert.Contains(t, stdout, "Checkout")
}

func TestProjectScopeMismatchFails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"project":{"id":"p2","name":"Other"}}`))
	}))
	defer server.Close()

	home := t.TempDir()
	t.Setenv("AAM_BASE_URL", server.URL)
	t.Setenv("AAM_API_KEY", "aam_k1_secret")
	t.Setenv("AAM_PROJECT_ID", "p1")

	_, _, err := executeCLI(t, home, "project")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "p1")
	assert.Contains(t, err.Error(), "p2")
}

func TestProjectWithoutAnyKeyFailsLocally(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "project")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no API key configured")
}

func TestRunStopsOnRejectedCredentials(t *testing.T) {
	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	home := t.TempDir()
	t.Setenv("AAM_BASE_URL", server.URL)
	t.Setenv("AAM_API_KEY", "aam_k1_revoked")

	_, _, err := executeCLI(t, home, "run")
	require.Error(t, err)
	// Rejected credentials are fatal: exactly one request, no retry,
	// and no polling afterwards.
	assert.EqualValues(t, 1, calls.Load())
}

func TestIssuePromptPrintsServerText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/agent/v1/issues/i1/prompt", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"prompt":"Reproduce the failure, then propose a fix."}`))
	}))
	defer server.Close()

	home := t.TempDir()
	t.Setenv("AAM_BASE_URL", server.URL)
	t.Setenv("AAM_API_KEY", "aam_k1_secret")

	stdout, _, err := executeCLI(t, home, "issue", "prompt", "i1")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Reproduce the failure")
}

func TestIssueShowJSONOutput(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/agent/v1/issues/i1":
			_, _ = w.Write([]byte(`{"issue":{"id":"i1","title":"Checkout 500s","status":"open"}}`))
		case "/agent/v1/issues/i1/activities":
			_, _ = w.Write([]byte(`{"activities":[{"id":"a1","timestamp":"2026-08-20T09:00:00Z","kind":"issue_created","issueId":"i1"}]}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	home := t.TempDir()
	t.Setenv("AAM_BASE_URL", server.URL)
	t.Setenv("AAM_API_KEY", "aam_k1_secret")

	stdout, _, err := executeCLI(t, home, "issue", "show", "i1", "--json")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(stdout)))
	assert.Contains(t, stdout, "\"ID\": \"i1\"")
	assert.Contains(t, stdout, "Checkout 500s")
	assert.Contains(t, stdout, "issue_created")
}

func TestIssueImageWritesFile(t *testing.T) {
	raw := []byte{0x89, 'P', 'N', 'G'}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/agent/v1/issues/i1/images/img-7", r.URL.Path)
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(raw)
	}))
	defer server.Close()

	home := t.TempDir()
	t.Setenv("AAM_BASE_URL", server.URL)
	t.Setenv("AAM_API_KEY", "aam_k1_secret")

	target := filepath.Join(t.TempDir(), "shot.png")
	_, _, err := executeCLI(t, home, "issue", "image", "i1", "img-7", "-o", target)
	require.NoError(t, err)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, raw, data)
}

func TestResolveSubmitsNoteAndStatus(t *testing.T) {
	var body []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/agent/v1/issues/i1/resolve", r.URL.Path)
		buf := &bytes.Buffer{}
		_, _ = buf.ReadFrom(r.Body)
		body = buf.Bytes()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"issue":{"id":"i1","title":"Checkout 500s","status":"resolved"}}`))
	}))
	defer server.Close()

	home := t.TempDir()
	t.Setenv("AAM_BASE_URL", server.URL)
	t.Setenv("AAM_API_KEY", "aam_k1_secret")

	stdout, _, err := executeCLI(t, home,
		"resolve", "i1", "--status", "resolved", "--note", "fixed by tightening the retry budget")
	require.NoError(t, err)
	assert.Contains(t, stdout, "marked resolved")
	assert.JSONEq(t, `{"status":"resolved","resolutionNote":"fixed by tightening the retry budget"}`, string(body))
}

func TestAuthSetThenProjectUsesStoredKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "aam_k9_fromfile", r.Header.Get("X-Api-Key"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"project":{"id":"p1","name":"Checkout"}}`))
	}))
	defer server.Close()

	home := t.TempDir()
	t.Setenv("AAM_BASE_URL", server.URL)
	t.Setenv("AAM_API_KEY", "")
	// Force the file fallback so the test does not depend on pass(1).
	t.Setenv("PATH", "")

	stdout, _, err := executeCLI(t, home, "auth", "set", "--key", "aam_k9_fromfile")
	require.NoError(t, err)
	assert.Contains(t, stdout, "aam_k9_****")
	assert.NotContains(t, stdout, "fromfile")

	stdout, _, err = executeCLI(t, home, "project")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Checkout")

	_, _, err = executeCLI(t, home, "auth", "remove")
	require.NoError(t, err)

	_, _, err = executeCLI(t, home, "project")
	require.Error(t, err)
}

func executeCLI(t *testing.T, home string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", home)

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}
