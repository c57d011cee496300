package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tinytelemetry/pomo/internal/model"
)

// Run drives m as a Bubble Tea program until the user quits or ctx is
// cancelled. Bubble Tea owns raw mode and the cursor and restores both on
// every exit path, including signals and panics. The session summary is
// returned even when the program ends with an error.
func Run(ctx context.Context, m *Model, opts ...tea.ProgramOption) (model.Session, error) {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	p := tea.NewProgram(m, opts...)

	final, err := p.Run()
	if fm, ok := final.(*Model); ok && fm != nil {
		m = fm
	}
	return m.Session(), err
}
