package generator

import (
	"fmt"
	"image"
	"image/color"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/image/font"

	"github.com/youruser/bingoapp/internal/config"
	imagepkg "github.com/youruser/bingoapp/internal/image"
	"github.com/youruser/bingoapp/internal/phrases"
	"github.com/youruser/bingoapp/internal/sheet"
)

// Generator turns a player list into rendered sheets.
// It is safe for concurrent use; rendering is serialized on the font face.
type Generator struct {
	pool     phrases.Pool
	template image.Image
	layout   imagepkg.Layout
	color    color.NRGBA
	opts     sheet.Options
	qr       config.QRConfig
	log      *zap.Logger

	mu   sync.Mutex
	face font.Face
}

// New loads the pool, template and font named by cfg.
func New(cfg config.Config, log *zap.Logger) (*Generator, error) {
	if log == nil {
		log = zap.NewNop()
	}
	pool, err := phrases.LoadPoolFromFile(cfg.Phrases)
	if err != nil {
		return nil, err
	}
	layout := cfg.LayoutSpec()
	tmpl, err := imagepkg.LoadTemplate(cfg.Template, layout)
	if err != nil {
		return nil, err
	}
	fc := cfg.FontSpec()
	face, err := imagepkg.LoadFace(fc)
	if err != nil {
		return nil, err
	}
	log.Debug("generator ready",
		zap.Strings("categories", pool.Keys()),
		zap.Stringer("template", tmpl.Bounds()),
		zap.Float64("font_size", fc.Size))
	return &Generator{
		pool:     pool,
		template: tmpl,
		layout:   layout,
		color:    fc.Color,
		opts:     cfg.SampleOptions(),
		qr:       cfg.QR,
		log:      log,
		face:     face,
	}, nil
}

func (g *Generator) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.face.Close()
}

func (g *Generator) Pool() phrases.Pool { return g.pool }

// ResolveSeed returns seed, or a time based one when seed is zero.
func ResolveSeed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}

// SheetID identifies a sheet well enough to draw it again.
func SheetID(player string, seed int64) string {
	return fmt.Sprintf("%s#%d", player, seed)
}

// Sample draws one sheet per player with a sampler seeded by seed.
func (g *Generator) Sample(players []string, seed int64) ([]sheet.Sheet, error) {
	sheets, err := sheet.NewSampler(seed, g.opts).Sample(g.pool, players)
	if err != nil {
		return nil, err
	}
	for _, s := range sheets {
		g.log.Debug("sampled sheet", zap.String("player", s.Player), zap.Int64("seed", seed))
	}
	return sheets, nil
}

// Render draws s onto a fresh copy of the template.
func (g *Generator) Render(s sheet.Sheet, seed int64) (*image.NRGBA, error) {
	g.mu.Lock()
	out, err := imagepkg.RenderSheet(g.template, s.Phrases(), g.layout, g.face, g.color)
	g.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("rendering sheet for %s: %w", s.Player, err)
	}
	if g.qr.Enabled {
		out, err = imagepkg.StampQR(out, SheetID(s.Player, seed), g.qr.Size, image.Pt(g.qr.X, g.qr.Y))
		if err != nil {
			return nil, fmt.Errorf("stamping qr for %s: %w", s.Player, err)
		}
	}
	return out, nil
}

// Generate samples, renders and writes one <player>.png per player into dir.
// Nothing is written unless every sheet rendered.
func (g *Generator) Generate(players []string, seed int64, dir string) ([]string, error) {
	sheets, err := g.Sample(players, seed)
	if err != nil {
		return nil, err
	}
	outputs := make([]imagepkg.Output, 0, len(sheets))
	for _, s := range sheets {
		img, err := g.Render(s, seed)
		if err != nil {
			return nil, err
		}
		outputs = append(outputs, imagepkg.Output{Name: s.Player, Image: img})
	}
	written, err := imagepkg.WriteAll(dir, outputs)
	if err != nil {
		return nil, err
	}
	for _, p := range written {
		g.log.Info("wrote sheet", zap.String("path", p))
	}
	return written, nil
}
