package ports

import "context"

// KeyStore holds the agent's API key when it is not supplied through
// the environment or config file.
type KeyStore interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, value string) error
	Delete(ctx context.Context) error
}
