// Package main is the terminal chat client.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/qrtz-ai/chat-gateway/internal/config"
	"github.com/qrtz-ai/chat-gateway/internal/tui"
)

func main() {
	cfg := config.Load()

	client := tui.NewClient(cfg.ServerURL)
	m := tui.NewModel(client.Send)

	if _, err := tea.NewProgram(m).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error running chat: %v\n", err)
		os.Exit(1)
	}
}
