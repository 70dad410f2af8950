package tui

import (
	"fmt"
	"strings"

	"reelsmith/jobs"
)

// View implements tea.Model interface
func (m Model) View() string {
	var b strings.Builder

	// Title
	b.WriteString(TitleStyle.Render("🎬 Reelsmith Render Demo"))
	b.WriteString("\n\n")

	// Current state
	b.WriteString(m.getStateText())
	b.WriteString("\n\n")

	// Request summary
	reqInfo := fmt.Sprintf("📝 Text: %q", m.Request.Text)
	if m.Request.Author != "" {
		reqInfo += fmt.Sprintf(" | Author: %s", m.Request.Author)
	}
	b.WriteString(InfoStyle.Render(reqInfo))
	b.WriteString("\n")

	if m.JobID != "" {
		b.WriteString(InfoStyle.Render(fmt.Sprintf("🆔 Job: %s", m.JobID)))
		b.WriteString("\n")
	}

	// Logs from the server
	if m.Status != nil && len(m.Status.Logs) > 0 {
		b.WriteString("\n")
		b.WriteString(InfoStyle.Render("📝 Recent Activity:"))
		b.WriteString("\n")
		logs := m.Status.Logs
		if len(logs) > 10 {
			logs = logs[len(logs)-10:]
		}
		for _, entry := range logs {
			line := fmt.Sprintf("   [%s] %s", entry.Timestamp.Format("15:04:05"), entry.Message)
			b.WriteString(InfoStyle.Render(line))
			b.WriteString("\n")
		}
	}

	// Result
	if m.Status != nil && m.Status.State == jobs.StateComplete {
		result := HighlightStyle.Render("Render Result") + "\n\n" +
			fmt.Sprintf("Output: %s\n", StatusStyle.Render(m.Status.OutputPath))
		if m.Status.ArtifactKey != "" {
			result += fmt.Sprintf("S3 key: %s\n", m.Status.ArtifactKey)
		}
		if m.Status.VideoID != "" {
			result += fmt.Sprintf("YouTube: https://youtube.com/shorts/%s\n", m.Status.VideoID)
		}
		b.WriteString("\n")
		b.WriteString(BoxStyle.Render(result))
		b.WriteString("\n")
	}

	// Help text
	b.WriteString("\n")
	if !m.Submitted {
		b.WriteString(InfoStyle.Render("Press 'r' to render | Press 'q' or Ctrl+C to quit"))
	} else {
		b.WriteString(InfoStyle.Render("Press 'q' or Ctrl+C to quit"))
	}

	return b.String()
}
