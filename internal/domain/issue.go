package domain

import (
	"fmt"
	"strings"
	"time"
)

type IssueID string

type IssueStatus string

const (
	IssueStatusOpen     IssueStatus = "open"
	IssueStatusResolved IssueStatus = "resolved"
	IssueStatusArchived IssueStatus = "archived"
)

// Issue is read-only from the agent's perspective; only Status moves,
// and only through a Resolution.
type Issue struct {
	ID          IssueID
	Title       string
	Description string
	Status      IssueStatus
	Priority    string
	Reporter    string
	ImageIDs    []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type ResolutionStatus string

const (
	ResolutionResolved ResolutionStatus = "resolved"
	ResolutionArchived ResolutionStatus = "archived"
)

// ResolutionRequest is the terminal state transition for an issue. It
// must pass Validate before any network call is made.
type ResolutionRequest struct {
	Status         ResolutionStatus
	ResolutionNote string
}

func (r ResolutionRequest) Validate() error {
	switch r.Status {
	case ResolutionResolved, ResolutionArchived:
	default:
		return fmt.Errorf("resolution status must be %q or %q, got %q", ResolutionResolved, ResolutionArchived, r.Status)
	}

	if strings.TrimSpace(r.ResolutionNote) == "" {
		return fmt.Errorf("resolution note is required")
	}

	return nil
}
