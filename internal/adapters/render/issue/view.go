package issue

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/aamhq/aam-agent/internal/application"
	"github.com/aamhq/aam-agent/internal/domain"
)

type RenderOptions struct {
	Now time.Time
}

func renderView(detail application.IssueDetail, opts RenderOptions, s styles) string {
	issue := detail.Issue

	lines := []string{
		s.title.Render(fmt.Sprintf("%s  %s", issue.ID, issue.Title)),
		s.header.Render(headerLine(issue, opts.Now)),
	}

	lines = append(lines, fieldLines(issue, s)...)

	if body := strings.TrimSpace(issue.Description); body != "" {
		lines = append(lines, s.section.Render(s.body.Render(body)))
	}

	lines = append(lines, s.section.Render(renderHistory(detail.Activities, opts, s)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func headerLine(issue domain.Issue, now time.Time) string {
	age := formatRelative(issue.CreatedAt, now)
	if age == "" {
		return fmt.Sprintf("reported by %s", reporterLabel(issue.Reporter))
	}
	return fmt.Sprintf("reported by %s, %s", reporterLabel(issue.Reporter), age)
}

func reporterLabel(reporter string) string {
	if strings.TrimSpace(reporter) == "" {
		return "unknown"
	}
	return reporter
}

func fieldLines(issue domain.Issue, s styles) []string {
	lines := []string{
		lipgloss.JoinHorizontal(lipgloss.Top,
			s.fieldKey.Render("status:"), " ", statusStyle(issue.Status, s).Render(string(issue.Status))),
	}

	if issue.Priority != "" {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
			s.fieldKey.Render("priority:"), " ", s.fieldValue.Render(issue.Priority)))
	}

	if len(issue.ImageIDs) > 0 {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
			s.fieldKey.Render("images:"), " ", s.fieldValue.Render(strings.Join(issue.ImageIDs, ", "))))
	}

	return lines
}

func statusStyle(status domain.IssueStatus, s styles) lipgloss.Style {
	switch status {
	case domain.IssueStatusResolved, domain.IssueStatusArchived:
		return s.statusDone
	default:
		return s.statusOpen
	}
}

func renderHistory(activities []domain.Activity, opts RenderOptions, s styles) string {
	if len(activities) == 0 {
		return s.empty.Render("No activity recorded.")
	}

	lines := []string{s.header.Render(fmt.Sprintf("activity: %d", len(activities)))}
	for _, activity := range activities {
		lines = append(lines, activityLine(activity, opts, s))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func activityLine(activity domain.Activity, opts RenderOptions, s styles) string {
	when := formatRelative(activity.Timestamp, opts.Now)
	if when == "" {
		when = activity.Timestamp.Format("15:04 on 02 Jan")
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.kind.Render(kindLabel(activity.Kind)),
		" ",
		s.timestamp.Render(when),
	)
}

func kindLabel(kind domain.ActivityKind) string {
	switch kind {
	case domain.ActivityIssueCreated:
		return "created"
	case domain.ActivityIssueUpdated:
		return "updated"
	case domain.ActivityIssueCommented:
		return "commented"
	default:
		return string(kind)
	}
}

func formatRelative(at, now time.Time) string {
	if at.IsZero() || now.IsZero() || at.After(now) {
		return ""
	}

	elapsed := now.Sub(at)
	if elapsed < time.Minute {
		return "just now"
	}
	if elapsed < time.Hour {
		minutes := int(elapsed.Minutes())
		return fmt.Sprintf("%d %s ago", minutes, plural(minutes, "minute"))
	}
	if elapsed < 24*time.Hour {
		hours := int(elapsed.Hours())
		return fmt.Sprintf("%d %s ago", hours, plural(hours, "hour"))
	}

	days := int(math.Floor(elapsed.Hours() / 24))
	return fmt.Sprintf("%d %s ago", days, plural(days, "day"))
}

func plural(n int, unit string) string {
	if n == 1 {
		return unit
	}
	return unit + "s"
}
