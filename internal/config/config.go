// Package config loads application configuration from environment variables,
// optionally layered over a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration.
type Config struct {
	ListenAddr   string `yaml:"listen_addr"`
	DBPath       string `yaml:"db_path"`
	QRSize       int    `yaml:"qr_size"`
	QRMargin     int    `yaml:"qr_margin"`
	MDNSEnabled  bool   `yaml:"mdns_enabled"`
	MDNSInstance string `yaml:"mdns_instance"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		ListenAddr:   "127.0.0.1:8080",
		DBPath:       "guestpass.db",
		QRSize:       400,
		QRMargin:     2,
		MDNSEnabled:  false,
		MDNSInstance: "Guest Pass",
	}
}

// Load returns a validated Config. Values come from, in increasing priority:
// the defaults, the YAML file named by GUESTPASS_CONFIG_FILE (if set), and the
// variables GUESTPASS_LISTEN_ADDR, GUESTPASS_DB_PATH, GUESTPASS_QR_SIZE,
// GUESTPASS_QR_MARGIN, GUESTPASS_MDNS_ENABLED and GUESTPASS_MDNS_INSTANCE.
func Load() (*Config, error) {
	cfg := Default()

	if path, ok := os.LookupEnv("GUESTPASS_CONFIG_FILE"); ok && path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return nil, err
		}
	}

	if v, ok := os.LookupEnv("GUESTPASS_LISTEN_ADDR"); ok {
		cfg.ListenAddr = v
	}

	if v, ok := os.LookupEnv("GUESTPASS_DB_PATH"); ok {
		cfg.DBPath = v
	}

	if v, ok := os.LookupEnv("GUESTPASS_QR_SIZE"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("GUESTPASS_QR_SIZE has invalid integer %q: %w", v, err)
		}
		cfg.QRSize = n
	}

	if v, ok := os.LookupEnv("GUESTPASS_QR_MARGIN"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("GUESTPASS_QR_MARGIN has invalid integer %q: %w", v, err)
		}
		cfg.QRMargin = n
	}

	if v, ok := os.LookupEnv("GUESTPASS_MDNS_ENABLED"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("GUESTPASS_MDNS_ENABLED has invalid boolean %q: %w", v, err)
		}
		cfg.MDNSEnabled = b
	}

	if v, ok := os.LookupEnv("GUESTPASS_MDNS_INSTANCE"); ok && v != "" {
		cfg.MDNSInstance = v
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read GUESTPASS_CONFIG_FILE %q: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse GUESTPASS_CONFIG_FILE %q: %w", path, err)
	}

	return nil
}

func (c *Config) validate() error {
	var errs []error

	if c.ListenAddr == "" {
		errs = append(errs, errors.New("GUESTPASS_LISTEN_ADDR must not be empty"))
	}
	if c.QRSize < 64 || c.QRSize > 2048 {
		errs = append(errs, fmt.Errorf("GUESTPASS_QR_SIZE must be between 64 and 2048, got %d", c.QRSize))
	}
	if c.QRMargin < 0 || c.QRMargin > 16 {
		errs = append(errs, fmt.Errorf("GUESTPASS_QR_MARGIN must be between 0 and 16, got %d", c.QRMargin))
	}

	return errors.Join(errs...)
}
