package config

import (
	"fmt"
	"image"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	imagepkg "github.com/youruser/bingoapp/internal/image"
	"github.com/youruser/bingoapp/internal/sheet"
)

// Config is the on-disk configuration of the generator.
type Config struct {
	// Phrases is a JSON or YAML pool file; empty uses the bundled pool.
	Phrases string `yaml:"phrases"`
	// Template is an image path or URL; empty draws a blank grid.
	Template  string `yaml:"template"`
	OutputDir string `yaml:"output_dir"`
	// Seed fixes sampling. Zero picks a time based seed per run.
	Seed           int64  `yaml:"seed"`
	SelfSentinel   string `yaml:"self_sentinel"`
	IncludeOwnPool bool   `yaml:"include_own_pool"`

	Font   FontConfig   `yaml:"font"`
	Layout LayoutConfig `yaml:"layout"`
	QR     QRConfig     `yaml:"qr"`
	Server ServerConfig `yaml:"server"`
}

type FontConfig struct {
	Path  string  `yaml:"path"`
	Size  float64 `yaml:"size"`
	DPI   float64 `yaml:"dpi"`
	Color string  `yaml:"color"`
}

type LayoutConfig struct {
	OriginX  int `yaml:"origin_x"`
	OriginY  int `yaml:"origin_y"`
	CellSize int `yaml:"cell_size"`
	Margin   int `yaml:"margin"`
}

// QRConfig controls the optional QR stamp carrying the sheet id.
type QRConfig struct {
	Enabled bool `yaml:"enabled"`
	Size    int  `yaml:"size"`
	X       int  `yaml:"x"`
	Y       int  `yaml:"y"`
}

type ServerConfig struct {
	Address string `yaml:"address"`
}

func DefaultConfig() Config {
	l := imagepkg.DefaultLayout()
	return Config{
		OutputDir:    ".",
		SelfSentinel: sheet.DefaultSelfSentinel,
		Font: FontConfig{
			Size:  20,
			DPI:   72,
			Color: "#000000",
		},
		Layout: LayoutConfig{
			OriginX:  l.Origin.X,
			OriginY:  l.Origin.Y,
			CellSize: l.CellSize,
			Margin:   l.Margin,
		},
		QR: QRConfig{
			Size: 120,
			X:    10,
			Y:    10,
		},
		Server: ServerConfig{Address: ":8080"},
	}
}

// Load reads path on top of DefaultConfig. A missing file is not an error
// when path is empty; BINGO_ADDR overrides the server address.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}
	if addr := strings.TrimSpace(os.Getenv("BINGO_ADDR")); addr != "" {
		cfg.Server.Address = addr
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Font.Size <= 0 {
		return fmt.Errorf("font.size must be positive")
	}
	if _, err := imagepkg.ParseHexColor(c.Font.Color); err != nil {
		return fmt.Errorf("font.color: %w", err)
	}
	if err := c.LayoutSpec().Validate(); err != nil {
		return fmt.Errorf("layout: %w", err)
	}
	if c.QR.Enabled && c.QR.Size <= 0 {
		return fmt.Errorf("qr.size must be positive when qr is enabled")
	}
	return nil
}

func (c Config) LayoutSpec() imagepkg.Layout {
	return imagepkg.Layout{
		Origin:   image.Pt(c.Layout.OriginX, c.Layout.OriginY),
		CellSize: c.Layout.CellSize,
		Margin:   c.Layout.Margin,
	}
}

// FontSpec converts the font section; the color was checked by Validate.
func (c Config) FontSpec() imagepkg.FontConfig {
	col, _ := imagepkg.ParseHexColor(c.Font.Color)
	return imagepkg.FontConfig{
		Path:  c.Font.Path,
		Size:  c.Font.Size,
		DPI:   c.Font.DPI,
		Color: col,
	}
}

func (c Config) SampleOptions() sheet.Options {
	return sheet.Options{
		SelfSentinel:   c.SelfSentinel,
		IncludeOwnPool: c.IncludeOwnPool,
	}
}

// Save writes the config as YAML.
func (c Config) Save(path string) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}
