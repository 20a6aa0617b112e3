package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ob-cheng/Guest-Pass/internal/application"
	"github.com/ob-cheng/Guest-Pass/internal/domain/port/driven"
)

// Run starts the interactive form in the alternate screen and blocks until
// the user quits or ctx is cancelled.
func Run(
	ctx context.Context,
	store *application.FormStore,
	passSvc *application.PassService,
	qrText driven.QRTextRenderer,
	opts ...tea.ProgramOption,
) error {
	m := NewModel(ctx, store, passSvc, qrText)
	defer m.Close()

	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	if _, err := tea.NewProgram(m, opts...).Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run terminal ui: %w", err)
	}
	return nil
}
