// Package config carries the monitor's tunable settings.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds everything tunable about a run. The webhook URL is not part of
// the file; it comes from the environment only.
type Config struct {
	BoardURL       string   `yaml:"board_url"`
	Keywords       []string `yaml:"keywords"`
	RowSelectors   []string `yaml:"row_selectors"`
	UserAgent      string   `yaml:"user_agent"`
	TimeoutSeconds int      `yaml:"timeout_seconds"`
}

// Default returns the stock Seoul Metro board settings.
func Default() Config {
	return Config{
		BoardURL:       "http://www.seoulmetro.co.kr/kr/board.do?menuIdx=546",
		Keywords:       []string{"특정 장애인 단체 집회시위", "장애인", "집회", "시위"},
		RowSelectors:   []string{"table tr", ".board-list tr", "#board-list tr", "tbody tr"},
		UserAgent:      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36",
		TimeoutSeconds: 30,
	}
}

// Load reads settings from a YAML file, keeping defaults for anything unset.
// An empty path returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config file: %w", err)
	}

	return cfg, nil
}

// Timeout returns the shared HTTP timeout for board and webhook requests.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
