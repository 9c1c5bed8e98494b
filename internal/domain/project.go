package domain

type ProjectID string

// Project identifies the remote project scope the agent is bound to.
// Fetched once by the scope guard and immutable for the run.
type Project struct {
	ID   ProjectID
	Name string
}
