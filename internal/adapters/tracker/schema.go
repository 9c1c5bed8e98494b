package tracker

import (
	"time"

	"github.com/aamhq/aam-agent/internal/domain"
)

type projectResponse struct {
	Project struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"project"`
}

type activityPayload struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Kind      string    `json:"kind"`
	IssueID   string    `json:"issueId"`
}

func (a activityPayload) toDomain() domain.Activity {
	return domain.Activity{
		ID:        domain.ActivityID(a.ID),
		Timestamp: a.Timestamp,
		Kind:      domain.ActivityKind(a.Kind),
		IssueID:   domain.IssueID(a.IssueID),
	}
}

type activityPageResponse struct {
	Activities []activityPayload `json:"activities"`
	Page       struct {
		NextCursor string `json:"nextCursor"`
	} `json:"page"`
}

type issueResponse struct {
	Issue issuePayload `json:"issue"`
}

type issuePayload struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority"`
	Reporter    string    `json:"reporter"`
	ImageIDs    []string  `json:"imageIds"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (i issuePayload) toDomain() domain.Issue {
	return domain.Issue{
		ID:          domain.IssueID(i.ID),
		Title:       i.Title,
		Description: i.Description,
		Status:      domain.IssueStatus(i.Status),
		Priority:    i.Priority,
		Reporter:    i.Reporter,
		ImageIDs:    i.ImageIDs,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}

type resolvePayload struct {
	Status         string `json:"status"`
	ResolutionNote string `json:"resolutionNote"`
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
