package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ob-cheng/Guest-Pass/internal/application"
	"github.com/ob-cheng/Guest-Pass/internal/config"
	"github.com/ob-cheng/Guest-Pass/internal/domain/model"
)

// Encode command flags
var (
	encodeSSID       string
	encodePassword   string
	encodeEncryption string
	encodeHidden     bool
	encodePNG        string
)

func init() {
	encodeCmd.Flags().StringVar(&encodeSSID, "ssid", "", "Network name (required)")
	encodeCmd.Flags().StringVar(&encodePassword, "password", "", "Network password")
	encodeCmd.Flags().StringVar(&encodeEncryption, "encryption", string(model.DefaultEncryption), "Security: WPA, WEP or nopass")
	encodeCmd.Flags().BoolVar(&encodeHidden, "hidden", false, "Network does not broadcast its SSID")
	encodeCmd.Flags().StringVar(&encodePNG, "png", "", "Write the QR code to this PNG file instead of the terminal")
	_ = encodeCmd.MarkFlagRequired("ssid")
}

var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Print the Wi-Fi QR payload and code",
	Long: `Encode Wi-Fi credentials into the WIFI: payload understood by phone cameras.

The payload is printed on the first line, followed by the QR code drawn with
block characters. With --png the image is written to a file instead.`,
	Example: `  # Print the QR code in the terminal
  guestpass encode --ssid "Cafe Guest" --password hunter2

  # Write an open network's QR code to a file
  guestpass encode --ssid Lobby --encryption nopass --png lobby.png`,
	Args: cobra.NoArgs,
	RunE: runEncode,
}

func runEncode(cmd *cobra.Command, _ []string) error {
	enc, err := model.ParseEncryption(encodeEncryption)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	renderer := newRenderer(cfg)
	passSvc := application.NewPassService(renderer, slog.Default())

	pass, err := passSvc.Generate(cmd.Context(), model.WifiCredential{
		SSID:       encodeSSID,
		Password:   encodePassword,
		Encryption: enc,
		Hidden:     encodeHidden,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, pass.Payload)

	if encodePNG != "" {
		if err := os.WriteFile(encodePNG, pass.PNG, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", encodePNG, err)
		}
		fmt.Fprintf(out, "QR code written to %s\n", encodePNG)
		return nil
	}

	text, err := renderer.Text(pass.Payload)
	if err != nil {
		return fmt.Errorf("render terminal qr code: %w", err)
	}
	fmt.Fprint(out, text)
	return nil
}
