package toml

import (
	"fmt"
	"time"

	"github.com/aamhq/aam-agent/internal/domain"
)

const currentSchemaVersion = 1

type stateSchema struct {
	Version int          `toml:"version"`
	Cursor  cursorSchema `toml:"cursor"`
}

func (s *stateSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s stateSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported state schema version %d (current %d)", s.Version, currentSchemaVersion)
	}
	return nil
}

type cursorSchema struct {
	Token     string `toml:"token,omitempty"`
	Since     string `toml:"since,omitempty"`
	UpdatedAt string `toml:"updated_at,omitempty"`
}

func toCursorSchema(cursor domain.Cursor, now time.Time) cursorSchema {
	schema := cursorSchema{
		Token:     cursor.Token,
		UpdatedAt: now.Format(time.RFC3339),
	}
	if !cursor.Since.IsZero() {
		schema.Since = cursor.Since.UTC().Format(time.RFC3339)
	}
	return schema
}

func (c cursorSchema) toDomain() (domain.Cursor, error) {
	cursor := domain.Cursor{Token: c.Token}
	if c.Since != "" {
		since, err := time.Parse(time.RFC3339, c.Since)
		if err != nil {
			return domain.Cursor{}, fmt.Errorf("parse state since timestamp: %w", err)
		}
		cursor.Since = since
	}
	return cursor, nil
}
