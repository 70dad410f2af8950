package tui

import (
	"time"

	"reelsmith/types"

	tea "github.com/charmbracelet/bubbletea"
)

// checkHealth creates a command that probes the render API
func checkHealth(client *RenderClient) tea.Cmd {
	return func() tea.Msg {
		return HealthCheckMsg{Err: client.Health()}
	}
}

// submitRender creates a command that queues the demo render job
func submitRender(client *RenderClient, req types.RenderRequest) tea.Cmd {
	return func() tea.Msg {
		id, err := client.SubmitRender(req)
		return JobSubmittedMsg{JobID: id, Err: err}
	}
}

// pollJob creates a command that fetches the job snapshot
func pollJob(client *RenderClient, jobID string) tea.Cmd {
	return func() tea.Msg {
		status, err := client.GetJob(jobID)
		return JobStatusMsg{Status: status, Err: err}
	}
}

// tickCmd creates a command that ticks every 500ms for polling
func tickCmd() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg{Time: t}
	})
}
