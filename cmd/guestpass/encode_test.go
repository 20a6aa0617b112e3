package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("GUESTPASS_CONFIG_FILE", "")
	t.Setenv("GUESTPASS_QR_SIZE", "128")

	// Flag values persist on the package-level command between runs.
	t.Cleanup(func() {
		encodeSSID, encodePassword, encodeEncryption = "", "", "WPA"
		encodeHidden, encodePNG = false, ""
	})

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestEncode_PrintsPayloadAndQR(t *testing.T) {
	out, err := executeRoot(t, "encode", "--ssid", "Net", "--password", "abc", "--encryption", "WEP", "--hidden")

	require.NoError(t, err)
	lines := strings.SplitN(out, "\n", 2)
	assert.Equal(t, "WIFI:T:WEP;S:Net;P:abc;H:true;;", lines[0])
	assert.Contains(t, lines[1], "█")
}

func TestEncode_WritesPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pass.png")

	out, err := executeRoot(t, "encode", "--ssid", "Guest", "--encryption", "nopass", "--png", path)

	require.NoError(t, err)
	assert.Contains(t, out, "WIFI:T:nopass;S:Guest;;")

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 128, img.Bounds().Dx())
}

func TestEncode_MissingPassword(t *testing.T) {
	_, err := executeRoot(t, "encode", "--ssid", "Net")

	require.Error(t, err)
	assert.Equal(t, "Password is required for secure networks", err.Error())
}

func TestEncode_UnknownEncryption(t *testing.T) {
	_, err := executeRoot(t, "encode", "--ssid", "Net", "--encryption", "WPA3")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown encryption")
}

func TestVersionCommand(t *testing.T) {
	out, err := executeRoot(t, "version")

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "guestpass "))
}
