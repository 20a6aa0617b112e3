// Guestpass serves a small web app that turns Wi-Fi credentials into a
// printable guest card with a scannable QR code.
//
// Usage:
//
//	guestpass [command] [flags]
//
// Running without arguments starts the web server. See 'guestpass --help'
// for the other commands.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ob-cheng/Guest-Pass/internal/adapter/driven/qrcode"
	"github.com/ob-cheng/Guest-Pass/internal/config"
	"github.com/ob-cheng/Guest-Pass/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "guestpass",
	Short: "Wi-Fi guest pass generator",
	Long: `Guest Pass turns Wi-Fi credentials into a shareable card with a QR code
that phones can scan to join the network.

If no command is specified, the web server starts.`,
	Version:       version.Full(),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd, args)
	},
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "guestpass %s\n", version.Full())
	},
}

// newRenderer builds the QR renderer from the configured image geometry.
func newRenderer(cfg *config.Config) *qrcode.Renderer {
	opts := qrcode.DefaultOptions()
	opts.Size = cfg.QRSize
	opts.Margin = cfg.QRMargin
	return qrcode.NewRenderer(opts)
}
