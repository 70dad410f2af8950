package main

import (
	"flag"
	"fmt"
	"os"

	"reelsmith/config"
	"reelsmith/demo/tui"
	"reelsmith/types"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	serverURL := flag.String("server", config.GetEnvOrDefault("RENDER_SERVER_URL", "http://localhost:8080"), "render API base URL")
	text := flag.String("text", "The best time to plant a tree was 20 years ago.", "quote text to render")
	author := flag.String("author", "Proverb", "author line")
	duration := flag.Float64("duration", 10, "clip duration in seconds")
	template := flag.String("template", "classic", "visual template")
	animation := flag.String("animation", "typewriter", "text animation")
	flag.Parse()

	req := types.RenderRequest{
		Text:      *text,
		Author:    *author,
		Duration:  *duration,
		Template:  *template,
		Animation: *animation,
	}

	program := tea.NewProgram(tui.NewModel(*serverURL, req))
	if _, err := program.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
