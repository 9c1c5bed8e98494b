package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/aamhq/aam-agent/internal/adapters/keyring"
	statestore "github.com/aamhq/aam-agent/internal/adapters/statestore/toml"
	"github.com/aamhq/aam-agent/internal/adapters/tracker"
	"github.com/aamhq/aam-agent/internal/domain"
	"github.com/aamhq/aam-agent/internal/ports"
)

const (
	defaultBaseURL = "https://api.aamhq.io"
	configDirName  = ".aam"
)

type app struct {
	cfg      *viper.Viper
	keyStore ports.KeyStore
	now      func() time.Time
}

func wireApp() (*app, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	cfg := viper.New()
	cfg.SetConfigName("config")
	cfg.SetConfigType("toml")
	cfg.AddConfigPath(filepath.Join(homeDir, configDirName))
	cfg.SetEnvPrefix("AAM")
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	cfg.SetDefault("base_url", defaultBaseURL)
	cfg.SetDefault("poll_interval", 10*time.Second)
	cfg.SetDefault("request_timeout", 15*time.Second)
	cfg.SetDefault("page_limit", 100)
	cfg.SetDefault("max_attempts", 5)
	cfg.SetDefault("seen_capacity", 0)
	cfg.SetDefault("since", "")
	cfg.SetDefault("project_id", "")
	cfg.SetDefault("api_key", "")

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	return &app{
		cfg:      cfg,
		keyStore: keyring.New(filepath.Join(homeDir, configDirName)),
		now:      time.Now,
	}, nil
}

// resolveAPIKey prefers the explicit config/env value and falls back
// to the keyring populated by `aam auth set`.
func (a *app) resolveAPIKey(ctx context.Context) (string, error) {
	if raw := a.cfg.GetString("api_key"); raw != "" {
		return raw, nil
	}

	raw, err := a.keyStore.Get(ctx)
	if err != nil {
		return "", &domain.AuthError{
			Reason: "no API key configured: set AAM_API_KEY or run `aam auth set`",
		}
	}

	return raw, nil
}

func (a *app) buildClient(ctx context.Context) (*tracker.Client, string, error) {
	rawKey, err := a.resolveAPIKey(ctx)
	if err != nil {
		return nil, "", err
	}

	// Shape problems are advisory here; the server stays the
	// authority on whether the key is usable.
	key, _ := domain.ParseAPIKey(rawKey)

	client := tracker.NewClient(tracker.Config{
		BaseURL:        a.cfg.GetString("base_url"),
		APIKey:         key,
		RequestTimeout: a.cfg.GetDuration("request_timeout"),
		MaxAttempts:    a.cfg.GetInt("max_attempts"),
		InitialBackoff: a.cfg.GetDuration("initial_backoff"),
	})

	return client, rawKey, nil
}

func (a *app) buildCursorStore() (*statestore.Store, error) {
	store, err := statestore.NewStore(viper.New())
	if err != nil {
		return nil, fmt.Errorf("wire cursor store: %w", err)
	}
	return store, nil
}

func (a *app) expectedProject() domain.ProjectID {
	return domain.ProjectID(a.cfg.GetString("project_id"))
}
