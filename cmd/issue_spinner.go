package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aamhq/aam-agent/internal/application"
	"github.com/aamhq/aam-agent/internal/domain"
)

// issueDetailMsg carries the fetch outcome into the spinner model; the
// detail rides the message so the final model holds the result.
type issueDetailMsg struct {
	detail application.IssueDetail
	err    error
}

type issueFetchModel struct {
	spinner spinner.Model
	label   lipgloss.Style
	issueID domain.IssueID
	fetch   tea.Cmd
	detail  application.IssueDetail
	err     error
	done    bool
}

func newIssueFetchModel(issueID domain.IssueID, fetch tea.Cmd) issueFetchModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.MiniDot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("39"))),
	)

	return issueFetchModel{
		spinner: s,
		label:   lipgloss.NewStyle().Faint(true),
		issueID: issueID,
		fetch:   fetch,
	}
}

func (m issueFetchModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetch)
}

func (m issueFetchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case issueDetailMsg:
		m.done = true
		m.detail = msg.detail
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m issueFetchModel) View() string {
	if m.done {
		return ""
	}

	return fmt.Sprintf("%s %s", m.spinner.View(),
		m.label.Render(fmt.Sprintf("fetching issue %s...", m.issueID)))
}

// fetchIssueDetail runs the detail fetch behind a terminal spinner and
// returns what the fetch produced.
func fetchIssueDetail(ctx context.Context, out io.Writer, fetcher *application.Fetcher, id domain.IssueID) (application.IssueDetail, error) {
	fetchCmd := func() tea.Msg {
		detail, err := fetcher.Detail(ctx, id)
		return issueDetailMsg{detail: detail, err: err}
	}

	p := tea.NewProgram(
		newIssueFetchModel(id, fetchCmd),
		tea.WithInput(nil),
		tea.WithOutput(out),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return application.IssueDetail{}, err
	}

	result, ok := finalModel.(issueFetchModel)
	if !ok {
		return application.IssueDetail{}, fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}

	return result.detail, result.err
}
