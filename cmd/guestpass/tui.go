package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ob-cheng/Guest-Pass/internal/adapter/driving/tui"
	"github.com/ob-cheng/Guest-Pass/internal/application"
	"github.com/ob-cheng/Guest-Pass/internal/config"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Build a guest pass interactively in the terminal",
	Long: `Launch the terminal form. It follows the same rules as the web page:
ticking "open network" clears and hides the password, and the card shows
the QR code drawn with block characters.`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func runTUI(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Log output would tear the alternate screen.
	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))

	renderer := newRenderer(cfg)
	passSvc := application.NewPassService(renderer, quiet)
	store := application.NewFormStore(application.NewFormState())

	return tui.Run(cmd.Context(), store, passSvc, renderer)
}
