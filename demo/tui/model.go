package tui

import (
	"fmt"

	"reelsmith/jobs"
	"reelsmith/types"

	tea "github.com/charmbracelet/bubbletea"
)

// Model represents the TUI client state (thin client over the render API)
type Model struct {
	Client  *RenderClient
	Request types.RenderRequest

	// Local UI state (synced from the server)
	JobID     string
	Status    *jobs.Status
	Submitted bool
	Err       error

	// Connection status
	Connected bool
}

// NewModel creates a new TUI model
func NewModel(serverURL string, req types.RenderRequest) Model {
	return Model{
		Client:  NewRenderClient(serverURL),
		Request: req,
	}
}

// Init implements tea.Model interface
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		checkHealth(m.Client),
		tickCmd(),
	)
}

// getStateText returns the appropriate state message
func (m Model) getStateText() string {
	if !m.Connected {
		return ErrorStyle.Render("❌ Not connected to render server")
	}
	if m.Err != nil {
		return ErrorStyle.Render(fmt.Sprintf("❌ Error: %v", m.Err))
	}
	if !m.Submitted {
		return HighlightStyle.Render("👋 Ready to render!") + "\n\n" +
			InfoStyle.Render("Press 'r' to submit the demo render")
	}
	if m.Status == nil {
		return StatusStyle.Render("📤 Submitting render job...")
	}

	switch m.Status.State {
	case jobs.StateQueued:
		return StatusStyle.Render("⏳ Queued...")
	case jobs.StateFetching:
		return StatusStyle.Render("🖼️  Fetching background assets...")
	case jobs.StateRendering:
		return StatusStyle.Render(fmt.Sprintf("🎨 Rendering frames %d/%d...",
			m.Status.FrameDone, m.Status.FrameTotal))
	case jobs.StateEncoding:
		return StatusStyle.Render("🎞️  Encoding MP4...")
	case jobs.StateUploading:
		return StatusStyle.Render("📤 Uploading artifacts...")
	case jobs.StateComplete:
		return HighlightStyle.Render("✅ COMPLETE")
	case jobs.StateError:
		return ErrorStyle.Render(fmt.Sprintf("❌ Render failed: %s", m.Status.Error))
	default:
		return ""
	}
}
