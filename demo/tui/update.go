package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model interface
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case HealthCheckMsg:
		return m.handleHealthCheck(msg)
	case JobSubmittedMsg:
		return m.handleJobSubmitted(msg)
	case JobStatusMsg:
		return m.handleJobStatus(msg)
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "r", "R":
		if m.Connected && !m.Submitted {
			m.Submitted = true
			return m, submitRender(m.Client, m.Request)
		}
	}
	return m, nil
}

// handleHealthCheck processes the connectivity probe
func (m Model) handleHealthCheck(msg HealthCheckMsg) (tea.Model, tea.Cmd) {
	m.Connected = msg.Err == nil
	return m, nil
}

// handleJobSubmitted processes the queue acknowledgement
func (m Model) handleJobSubmitted(msg JobSubmittedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.Err = msg.Err
		return m, nil
	}
	m.JobID = msg.JobID
	return m, pollJob(m.Client, m.JobID)
}

// handleJobStatus processes a job snapshot
func (m Model) handleJobStatus(msg JobStatusMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.Err = msg.Err
		return m, nil
	}
	m.Status = msg.Status
	return m, nil
}

// handleTick polls the job (or re-probes health) on every tick
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{tickCmd()}
	if m.JobID != "" {
		cmds = append(cmds, pollJob(m.Client, m.JobID))
	} else if !m.Connected {
		cmds = append(cmds, checkHealth(m.Client))
	}
	return m, tea.Batch(cmds...)
}
