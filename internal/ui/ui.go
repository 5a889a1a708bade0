// File: internal/ui/ui.go
// Brief: Browser program lifecycle.

package ui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the pod browser and blocks until the operator quits or ctx is
// cancelled.
func Run(ctx context.Context, source PodSource, namespace string) error {
	program := tea.NewProgram(NewApp(source, namespace), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run pod browser: %w", err)
	}
	return nil
}
