// Package tracker is the HTTP adapter for the AAM agent API. It owns
// request building, outcome classification, and bounded retries; the
// application layer only sees domain values and terminal errors.
package tracker

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/aamhq/aam-agent/internal/domain"
	"github.com/aamhq/aam-agent/internal/logging"
	"github.com/aamhq/aam-agent/internal/ports"
)

const (
	apiKeyHeader     = "X-Api-Key"
	maxResponseBytes = 4 << 20

	invalidCursorCode = "invalid_cursor"
)

// APIError wraps a non-2xx response. Code carries the server's
// machine-readable error code when the body had one.
type APIError struct {
	StatusCode int
	Code       string
	Body       string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("api error: status=%d code=%s", e.StatusCode, e.Code)
	}
	return fmt.Sprintf("api error: status=%d body=%s", e.StatusCode, e.Body)
}

// Transient reports whether retrying the same request could succeed.
// Only server-side failures qualify; 4xx responses are the caller's
// fault and retrying them cannot help.
func (e *APIError) Transient() bool {
	return e.StatusCode >= http.StatusInternalServerError
}

type Config struct {
	BaseURL        string
	APIKey         domain.APIKey
	RequestTimeout time.Duration
	MaxAttempts    int
	// InitialBackoff overrides the first retry delay; zero keeps the
	// default. Tests shrink it to keep retries fast.
	InitialBackoff time.Duration
}

type Client struct {
	baseURL    string
	apiKey     domain.APIKey
	httpClient *http.Client
	timeout    time.Duration
	retry      retryPolicy
}

var _ ports.TrackerClient = (*Client)(nil)

func NewClient(cfg Config) *Client {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{},
		timeout:    timeout,
		retry:      newRetryPolicy(cfg.MaxAttempts, cfg.InitialBackoff, logging.WithComponent("tracker")),
	}
}

func (c *Client) FetchProject(ctx context.Context) (domain.Project, error) {
	var resp projectResponse
	if err := c.get(ctx, "/agent/v1/project", nil, &resp); err != nil {
		return domain.Project{}, fmt.Errorf("fetch project identity: %w", err)
	}

	return domain.Project{
		ID:   domain.ProjectID(resp.Project.ID),
		Name: resp.Project.Name,
	}, nil
}

func (c *Client) FetchActivityPage(ctx context.Context, limit int, cursor domain.Cursor) (domain.Page, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	switch {
	case cursor.HasToken():
		query.Set("cursor", cursor.Token)
	case !cursor.Since.IsZero():
		query.Set("since", cursor.Since.UTC().Format(time.RFC3339))
	}

	var resp activityPageResponse
	if err := c.get(ctx, "/agent/v1/activities", query, &resp); err != nil {
		return domain.Page{}, fmt.Errorf("fetch activity page: %w", err)
	}

	page := domain.Page{
		Activities: make([]domain.Activity, 0, len(resp.Activities)),
		NextCursor: resp.Page.NextCursor,
	}
	for _, a := range resp.Activities {
		page.Activities = append(page.Activities, a.toDomain())
	}
	return page, nil
}

func (c *Client) FetchIssue(ctx context.Context, id domain.IssueID) (domain.Issue, error) {
	var resp issueResponse
	if err := c.get(ctx, issuePath(id), nil, &resp); err != nil {
		return domain.Issue{}, fmt.Errorf("fetch issue %s: %w", id, mapNotFound(err))
	}
	// A 2xx body without the issue envelope is a malformed response,
	// not an empty issue.
	if resp.Issue.ID == "" {
		return domain.Issue{}, fmt.Errorf("fetch issue %s: response missing issue object", id)
	}
	return resp.Issue.toDomain(), nil
}

func (c *Client) FetchIssueActivities(ctx context.Context, id domain.IssueID) ([]domain.Activity, error) {
	var resp struct {
		Activities []activityPayload `json:"activities"`
	}
	if err := c.get(ctx, issuePath(id)+"/activities", nil, &resp); err != nil {
		return nil, fmt.Errorf("fetch activities for issue %s: %w", id, mapNotFound(err))
	}

	activities := make([]domain.Activity, 0, len(resp.Activities))
	for _, a := range resp.Activities {
		activities = append(activities, a.toDomain())
	}
	return activities, nil
}

func (c *Client) FetchIssuePrompt(ctx context.Context, id domain.IssueID) (string, error) {
	var resp struct {
		Prompt string `json:"prompt"`
	}
	if err := c.get(ctx, issuePath(id)+"/prompt", nil, &resp); err != nil {
		return "", fmt.Errorf("fetch prompt for issue %s: %w", id, mapNotFound(err))
	}
	return resp.Prompt, nil
}

func (c *Client) FetchIssueImage(ctx context.Context, issueID domain.IssueID, imageID string) ([]byte, error) {
	var data []byte
	err := c.retry.run(ctx, "fetch issue image", func() error {
		var err error
		data, err = c.doRaw(ctx, http.MethodGet, issuePath(issueID)+"/images/"+url.PathEscape(imageID), nil, nil)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("fetch image %s for issue %s: %w", imageID, issueID, mapNotFound(err))
	}
	return data, nil
}

// ResolveIssue has side effects on the remote system. The retry policy
// still only retries transient outcomes with a bounded budget; an
// exhausted budget means unknown outcome, and the caller must not loop.
func (c *Client) ResolveIssue(ctx context.Context, id domain.IssueID, req domain.ResolutionRequest) error {
	body := resolvePayload{
		Status:         string(req.Status),
		ResolutionNote: req.ResolutionNote,
	}
	err := c.retry.run(ctx, "resolve issue", func() error {
		return c.do(ctx, http.MethodPost, issuePath(id)+"/resolve", nil, body, nil)
	})
	if err != nil {
		return fmt.Errorf("resolve issue %s: %w", id, mapNotFound(err))
	}
	return nil
}

func (c *Client) get(ctx context.Context, endpoint string, query url.Values, out any) error {
	return c.retry.run(ctx, endpoint, func() error {
		return c.do(ctx, http.MethodGet, endpoint, query, nil, out)
	})
}

// do performs a single classified attempt: success, a *APIError whose
// Transient method drives the retry policy, or a wrapped sentinel for
// the recognized invalid-cursor and auth signals.
func (c *Client) do(ctx context.Context, method, endpoint string, query url.Values, body, out any) error {
	var payload []byte
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s request body: %w", endpoint, err)
		}
		payload = encoded
	}

	data, err := c.doRaw(ctx, method, endpoint, query, payload)
	if err != nil {
		return err
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s response: %w", endpoint, err)
	}
	return nil
}

func (c *Client) doRaw(ctx context.Context, method, endpoint string, query url.Values, body []byte) ([]byte, error) {
	requestCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	target := c.baseURL + endpoint
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(requestCtx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("create %s request: %w", endpoint, err)
	}
	req.Header.Set(apiKeyHeader, c.apiKey.Value())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, endpoint, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read %s response: %w", endpoint, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, classifyStatus(resp.StatusCode, data)
	}
	return data, nil
}

func classifyStatus(status int, body []byte) error {
	apiErr := &APIError{StatusCode: status, Body: string(body)}

	var parsed errorResponse
	if err := json.Unmarshal(body, &parsed); err == nil {
		apiErr.Code = parsed.Error.Code
	}

	switch {
	case status == http.StatusBadRequest && apiErr.Code == invalidCursorCode:
		return fmt.Errorf("%w: %w", domain.ErrInvalidCursor, apiErr)
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return &domain.AuthError{Reason: fmt.Sprintf("server rejected credentials (status %d)", status)}
	}
	return apiErr
}

func mapNotFound(err error) error {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %w", domain.ErrIssueNotFound, err)
	}
	return err
}

func issuePath(id domain.IssueID) string {
	return "/agent/v1/issues/" + url.PathEscape(string(id))
}
