package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "http://www.seoulmetro.co.kr/kr/board.do?menuIdx=546", cfg.BoardURL)
	assert.Equal(t, []string{"특정 장애인 단체 집회시위", "장애인", "집회", "시위"}, cfg.Keywords)
	assert.Equal(t, []string{"table tr", ".board-list tr", "#board-list tr", "tbody tr"}, cfg.RowSelectors)
	assert.Contains(t, cfg.UserAgent, "Mozilla/5.0")
	assert.Equal(t, 30*time.Second, cfg.Timeout())
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	contents := `board_url: https://example.com/board
keywords:
  - 파업
timeout_seconds: 10
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/board", cfg.BoardURL)
	assert.Equal(t, []string{"파업"}, cfg.Keywords)
	assert.Equal(t, 10*time.Second, cfg.Timeout())
	// Anything the file leaves out keeps its default.
	assert.Equal(t, Default().RowSelectors, cfg.RowSelectors)
	assert.Equal(t, Default().UserAgent, cfg.UserAgent)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("keywords: [unclosed"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}
