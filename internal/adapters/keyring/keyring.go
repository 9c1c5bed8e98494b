// Package keyring stores the agent's API key. It prefers the pass(1)
// password manager and falls back to an owner-only file under the
// agent's state directory when pass is unavailable.
package keyring

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"

	"github.com/aamhq/aam-agent/internal/ports"
)

const (
	passEntry    = "aam/agent/api_key"
	keyFileName  = "api_key"
	keyFileMode  = 0o600
	keyDirMode   = 0o700
)

var ErrPassUnavailable = errors.New("pass command unavailable")

type runFunc func(ctx context.Context, input string, args ...string) (stdout string, stderr string, err error)

type Keyring struct {
	root string
	run  runFunc
	mu   sync.RWMutex
}

var _ ports.KeyStore = (*Keyring)(nil)

func New(root string) *Keyring {
	return &Keyring{root: filepath.Clean(root), run: runPassCommand}
}

func (k *Keyring) Get(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	value, passErr := k.passGet(ctx)
	if passErr == nil {
		return value, nil
	}
	if shouldSkipFallback(passErr) {
		return "", passErr
	}

	value, fileErr := k.fileGet()
	if fileErr == nil {
		return value, nil
	}
	return "", fmt.Errorf("pass lookup failed: %w; file lookup failed: %w", passErr, fileErr)
}

func (k *Keyring) Set(ctx context.Context, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(value) == "" {
		return errors.New("api key is empty")
	}

	passErr := k.passSet(ctx, value)
	if passErr == nil {
		return nil
	}
	if shouldSkipFallback(passErr) {
		return passErr
	}

	if fileErr := k.fileSet(value); fileErr != nil {
		return fmt.Errorf("pass insert failed: %w; file write failed: %w", passErr, fileErr)
	}
	return nil
}

func (k *Keyring) Delete(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	passErr := k.passDelete(ctx)
	if passErr != nil && shouldSkipFallback(passErr) {
		return passErr
	}

	fileErr := k.fileDelete()
	if passErr != nil && fileErr != nil {
		return fmt.Errorf("pass delete failed: %w; file delete failed: %w", passErr, fileErr)
	}
	return nil
}

func (k *Keyring) passGet(ctx context.Context) (string, error) {
	stdout, stderr, err := k.run(ctx, "", "show", passEntry)
	if err != nil {
		return "", passError("get", err, stderr)
	}
	stdout = strings.TrimSuffix(stdout, "\n")
	stdout = strings.TrimSuffix(stdout, "\r")
	return stdout, nil
}

func (k *Keyring) passSet(ctx context.Context, value string) error {
	_, stderr, err := k.run(ctx, value+"\n", "insert", "-m", "-f", passEntry)
	if err != nil {
		return passError("set", err, stderr)
	}
	return nil
}

func (k *Keyring) passDelete(ctx context.Context) error {
	_, stderr, err := k.run(ctx, "", "rm", "-f", passEntry)
	if err != nil {
		return passError("delete", err, stderr)
	}
	return nil
}

func (k *Keyring) fileGet() (string, error) {
	k.mu.RLock()
	defer k.mu.RUnlock()

	data, err := os.ReadFile(k.keyPath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("no stored api key: %w", err)
		}
		return "", fmt.Errorf("read api key file: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

func (k *Keyring) fileSet(value string) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	if err := os.MkdirAll(k.root, keyDirMode); err != nil {
		return fmt.Errorf("create keyring directory: %w", err)
	}
	if err := os.WriteFile(k.keyPath(), []byte(value+"\n"), keyFileMode); err != nil {
		return fmt.Errorf("write api key file: %w", err)
	}
	return nil
}

func (k *Keyring) fileDelete() error {
	k.mu.Lock()
	defer k.mu.Unlock()

	err := os.Remove(k.keyPath())
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete api key file: %w", err)
	}
	return nil
}

func (k *Keyring) keyPath() string {
	return filepath.Join(k.root, keyFileName)
}

func shouldSkipFallback(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

func runPassCommand(ctx context.Context, input string, args ...string) (string, string, error) {
	path, err := exec.LookPath("pass")
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", "", ErrPassUnavailable
		}
		return "", "", fmt.Errorf("locate pass command: %w", err)
	}

	cmd := exec.CommandContext(ctx, path, args...)
	if input != "" {
		cmd.Stdin = strings.NewReader(input)
	}

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err = cmd.Run()
	return stdout.String(), strings.TrimSpace(stderr.String()), err
}

func passError(op string, err error, stderr string) error {
	if stderr == "" {
		return fmt.Errorf("pass %s: %w", op, err)
	}
	return fmt.Errorf("pass %s: %w: %s", op, err, stderr)
}
