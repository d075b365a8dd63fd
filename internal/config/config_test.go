package config

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	l := cfg.LayoutSpec()
	assert.Equal(t, image.Pt(10, 295), l.Origin)
	assert.Equal(t, 123, l.CellSize)
	assert.Equal(t, color.NRGBA{A: 0xff}, cfg.FontSpec().Color)
	assert.Equal(t, "you", cfg.SampleOptions().SelfSentinel)
	assert.False(t, cfg.QR.Enabled)
}

func TestLoadEmptyPath(t *testing.T) {
	t.Setenv("BINGO_ADDR", "")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestConfig_SaveLoad(t *testing.T) {
	t.Setenv("BINGO_ADDR", "")
	path := filepath.Join(t.TempDir(), "bingo.yaml")

	cfg := DefaultConfig()
	cfg.Seed = 99
	cfg.SelfSentinel = "du"
	cfg.IncludeOwnPool = true
	cfg.Font.Color = "#336699"
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	t.Setenv("BINGO_ADDR", ":9999")
	path := filepath.Join(t.TempDir(), "bingo.yaml")
	require.NoError(t, os.WriteFile(path, []byte("template: blank_sheet.png\nfont:\n  size: 18\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "blank_sheet.png", cfg.Template)
	assert.Equal(t, 18.0, cfg.Font.Size)
	assert.Equal(t, "#000000", cfg.Font.Color)
	assert.Equal(t, 123, cfg.Layout.CellSize)
	assert.Equal(t, ":9999", cfg.Server.Address)
}

func TestLoadRejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]string{
		"color.yaml":  "font:\n  color: nope\n",
		"size.yaml":   "font:\n  size: 0\n",
		"margin.yaml": "layout:\n  margin: 80\n",
		"qr.yaml":     "qr:\n  enabled: true\n  size: 0\n",
		"syntax.yaml": "font: [",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
			_, err := Load(path)
			assert.Error(t, err)
		})
	}

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
