package domain

import (
	"errors"
	"fmt"
	"strings"
)

const apiKeyPrefix = "aam"

var ErrAPIKeyEmpty = errors.New("api key is empty")

// APIKey is an AAM agent credential of the form aam_<keyId>_<secret>.
// The shape check is advisory; the server remains the authority on
// whether the key is valid.
type APIKey struct {
	KeyID string
	raw   string
}

// ParseAPIKey accepts any non-empty key and reports a shape error when
// the key does not look like an AAM key. Callers treat a shape error on
// a non-empty key as a warning, not a failure.
func ParseAPIKey(raw string) (APIKey, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return APIKey{}, ErrAPIKeyEmpty
	}

	key := APIKey{raw: trimmed}

	parts := strings.SplitN(trimmed, "_", 3)
	if len(parts) != 3 || parts[0] != apiKeyPrefix || parts[1] == "" || parts[2] == "" {
		return key, fmt.Errorf("api key does not match %s_<keyId>_<secret> shape", apiKeyPrefix)
	}

	key.KeyID = parts[1]
	return key, nil
}

func (k APIKey) Value() string {
	return k.raw
}

// Redacted is safe for logs and error messages.
func (k APIKey) Redacted() string {
	if k.KeyID == "" {
		return "****"
	}
	return fmt.Sprintf("%s_%s_****", apiKeyPrefix, k.KeyID)
}
