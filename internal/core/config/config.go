package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// DefaultReceiptTemplate renders the held cart as a plain-text receipt.
const DefaultReceiptTemplate = `SEN ĐÁ SHOP — PHIẾU GIỎ HÀNG
Giỏ hàng #{{cart_id}} — {{generated_at}}

{{#items}}
{{quantity}} x {{name}} ({{unit_price}}) = {{line_total}}
{{/items}}
{{^items}}
Giỏ hàng đang trống.
{{/items}}
Tổng cộng: {{total}}`

const (
	defaultAPIBaseURL = "http://localhost:8000"
	defaultTimeout    = 10 * time.Second
)

type Config struct {
	APIBaseURL      string
	Timeout         time.Duration
	ReceiptTemplate string
}

type tomlConfig struct {
	APIBaseURL     string `toml:"api_base_url"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// Load reads config from ~/.config/senda/
func Load() (*Config, error) {
	cfg := &Config{
		APIBaseURL:      defaultAPIBaseURL,
		Timeout:         defaultTimeout,
		ReceiptTemplate: DefaultReceiptTemplate,
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, nil // Use defaults
	}

	configDir := filepath.Join(home, ".config", "senda")
	tomlPath := filepath.Join(configDir, "config.toml")
	templatePath := filepath.Join(configDir, "receipt_template.txt")

	// Load TOML config if it exists
	if _, err := os.Stat(tomlPath); err == nil {
		var tc tomlConfig
		if _, err := toml.DecodeFile(tomlPath, &tc); err == nil {
			if tc.APIBaseURL != "" {
				cfg.APIBaseURL = tc.APIBaseURL
			}
			if tc.TimeoutSeconds > 0 {
				cfg.Timeout = time.Duration(tc.TimeoutSeconds) * time.Second
			}
		}
	}

	// If custom receipt template exists, use it
	if data, err := os.ReadFile(templatePath); err == nil {
		cfg.ReceiptTemplate = string(data)
	}

	return cfg, nil
}

// DefaultDBPath returns the default location of the session database.
func DefaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".config", "senda", "senda.db")
}
