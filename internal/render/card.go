// Package render draws the shareable result image for a score card.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/terra-clan/trial-scorecard/internal/config"
	"github.com/terra-clan/trial-scorecard/internal/models"
)

var (
	colorTitle    = color.RGBA{0xff, 0xff, 0xff, 0xff}
	colorLabel    = color.RGBA{0xc5, 0xc2, 0x9e, 0xff}
	colorValue    = color.RGBA{0xff, 0xff, 0xff, 0xff}
	colorOverrun  = color.RGBA{0xff, 0x16, 0x16, 0xff}
	colorDepleted = color.RGBA{0x66, 0x66, 0x66, 0xff}
	colorShadow   = color.RGBA{0x00, 0x00, 0x00, 0xff}
)

// Spacing between row items, in pixels at the default row size
const (
	gapLabelValue = 5
	gapTimeValue  = 10
	gapBonusValue = 6
	gapItem       = 20
	gapIcon       = 6
	rowPadding    = 81
	edgePadding   = 10
	depletedLevel = 0.4
)

// Renderer draws score cards. A Renderer holds font caches and is not safe
// for concurrent use.
type Renderer struct {
	cfg       config.RenderConfig
	titleFace font.Face
	rowFace   font.Face
	upper     cases.Caser
}

// NewRenderer loads the card fonts
func NewRenderer(cfg config.RenderConfig) (*Renderer, error) {
	titleFace, err := loadFace(gobold.TTF, cfg.TitleSize)
	if err != nil {
		return nil, fmt.Errorf("failed to load title font: %w", err)
	}

	rowFace, err := loadFace(gomedium.TTF, cfg.RowSize)
	if err != nil {
		return nil, fmt.Errorf("failed to load row font: %w", err)
	}

	return &Renderer{
		cfg:       cfg,
		titleFace: titleFace,
		rowFace:   rowFace,
		upper:     cases.Upper(language.Und),
	}, nil
}

func loadFace(ttf []byte, size float64) (font.Face, error) {
	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// Title returns the card heading for a trial
func (r *Renderer) Title(t models.Trial) string {
	return r.upper.String("COMPLETED: " + t.Display())
}

// rowItem is one run of text or the icon on the value row
type rowItem struct {
	text  string
	color color.Color
	icon  bool
	gap   int // space after the item
}

func (r *Renderer) rowItems(card models.ScoreCard) []rowItem {
	timeColor := colorValue
	if card.Overrun {
		timeColor = colorOverrun
	}
	vitalityColor := colorValue
	if card.Depleted() {
		vitalityColor = colorDepleted
	}

	return []rowItem{
		{text: "Final Score", color: colorLabel, gap: r.scale(gapLabelValue)},
		{text: card.ScoreText(), color: colorValue, gap: r.scale(gapItem)},
		{text: "Total Time", color: colorLabel, gap: r.scale(gapTimeValue)},
		{text: card.TimeText, color: timeColor, gap: r.scale(gapItem)},
		{text: "Vitality Bonus", color: colorLabel, gap: r.scale(gapBonusValue)},
		{text: fmt.Sprintf("%d", card.VitalityBonus), color: colorValue, gap: r.scale(gapItem)},
		{icon: true, gap: r.scale(gapIcon)},
		{text: card.VitalityText(), color: vitalityColor},
	}
}

// scale converts a spacing at the default row size to the configured size
func (r *Renderer) scale(px int) int {
	return int(math.Round(float64(px) * r.cfg.RowSize / config.DefaultRender().RowSize))
}

func (r *Renderer) iconSize() int {
	return r.scale(40)
}

func (r *Renderer) itemWidth(it rowItem) int {
	if it.icon {
		return r.iconSize()
	}
	return font.MeasureString(r.rowFace, it.text).Ceil()
}

// Render draws the card onto a transparent image
func (r *Renderer) Render(card models.ScoreCard) *image.RGBA {
	title := r.Title(card.Trial)
	titleWidth := font.MeasureString(r.titleFace, title).Ceil()

	items := r.rowItems(card)
	rowWidth := 0
	for _, it := range items {
		rowWidth += r.itemWidth(it) + it.gap
	}

	width := max(titleWidth, rowWidth+r.scale(rowPadding)) + r.scale(edgePadding)
	height := r.cfg.CardHeight
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	titleY := height * 65 / 160
	rowY := height * 120 / 160
	shadow := max(1, r.scale(2))

	drawText(img, r.titleFace, title, (width-titleWidth)/2, titleY, colorTitle, shadow)

	x := (width - rowWidth) / 2
	for _, it := range items {
		if it.icon {
			size := r.iconSize()
			top := rowY - size + size/4
			drawIcon(img, image.Rect(x, top, x+size, top+size), card.Depleted())
		} else {
			drawText(img, r.rowFace, it.text, x, rowY, it.color, shadow)
		}
		x += r.itemWidth(it) + it.gap
	}

	return img
}

// Encode writes the card as PNG
func (r *Renderer) Encode(w io.Writer, card models.ScoreCard) error {
	if err := png.Encode(w, r.Render(card)); err != nil {
		return fmt.Errorf("failed to encode card: %w", err)
	}
	return nil
}

// WriteFile renders the card into dir under its download name and returns the path
func (r *Renderer) WriteFile(dir string, card models.ScoreCard) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output dir: %w", err)
	}

	path := filepath.Join(dir, safeFilename(card.Filename()))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create card file: %w", err)
	}
	defer f.Close()

	if err := r.Encode(f, card); err != nil {
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to write card file: %w", err)
	}

	slog.Info("card written", "path", path, "trial", card.Trial.Name, "score", card.Score)
	return path, nil
}

// safeFilename keeps a trial name from escaping the output directory
func safeFilename(name string) string {
	return strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' || r == os.PathSeparator {
			return '_'
		}
		return r
	}, name)
}

func drawText(dst draw.Image, face font.Face, text string, x, y int, c color.Color, shadow int) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(colorShadow),
		Face: face,
		Dot:  fixed.P(x+shadow, y+shadow),
	}
	d.DrawString(text)

	d.Src = image.NewUniform(c)
	d.Dot = fixed.P(x, y)
	d.DrawString(text)
}
