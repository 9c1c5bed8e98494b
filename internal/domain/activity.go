package domain

import "time"

type ActivityID string

type ActivityKind string

const (
	ActivityIssueCreated   ActivityKind = "issue_created"
	ActivityIssueUpdated   ActivityKind = "issue_updated"
	ActivityIssueCommented ActivityKind = "issue_commented"
)

// Activity is a single event from the project activity stream. ID is
// globally unique and serves as the idempotency key: the server delivers
// at-least-once, so the same ID may reappear across pages.
type Activity struct {
	ID        ActivityID
	Timestamp time.Time
	Kind      ActivityKind
	IssueID   IssueID
}

// Page is one fetch of the activity stream. An empty NextCursor means
// the stream head was reached; more activities may still appear later.
type Page struct {
	Activities []Activity
	NextCursor string
}
