// Package ogimage renders the social sharing cards linked from page metadata.
//
// Every card is a 1200x630 PNG with the brand background, an accent bar, the
// wordmark, and the page title. The site references them as static assets;
// this tool regenerates them when copy or branding changes.
package ogimage

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"

	"github.com/murmurhq/website/internal/platform/branding"
	"github.com/murmurhq/website/internal/platform/dictionary"
	"github.com/murmurhq/website/internal/services/site/blog"
	"github.com/murmurhq/website/internal/services/site/platform/i18n"
)

// Card dimensions expected by the Open Graph crawlers the site targets.
const (
	Width  = 1200
	Height = 630
)

const (
	margin        = 80.0
	accentHeight  = 14.0
	maxTitleLines = 3
)

// Config holds configuration for card generation.
type Config struct {
	Out  string
	Font string
	Post string
}

// Faces carries the typefaces a card is drawn with. Small steps in when the
// title needs more than three lines at the regular size.
type Faces struct {
	Brand font.Face
	Title font.Face
	Small font.Face
}

// Card pairs one output file with the title drawn on it.
type Card struct {
	Name  string
	Title string
}

// ParseConfig parses flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := Config{Out: "assets/og"}
	fs.StringVar(&cfg.Out, "out", cfg.Out, "output directory for card PNGs")
	fs.StringVar(&cfg.Font, "font", cfg.Font, "TTF font file used for all card text")
	fs.StringVar(&cfg.Post, "post", cfg.Post, "render cards for a single post slug instead of every published post")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run renders every card into cfg.Out. A nil faces loads them from cfg.Font.
func Run(cfg Config, out io.Writer, faces *Faces) error {
	if out == nil {
		return errors.New("output is required")
	}
	if faces == nil {
		if cfg.Font == "" {
			return errors.New("font file is required")
		}
		loaded, err := LoadFaces(cfg.Font)
		if err != nil {
			return err
		}
		faces = &loaded
	}

	cards, err := Cards(cfg.Post)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(cfg.Out, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", cfg.Out, err)
	}
	for _, card := range cards {
		img, err := Render(*faces, card.Title)
		if err != nil {
			return fmt.Errorf("render %s: %w", card.Name, err)
		}
		path := filepath.Join(cfg.Out, card.Name)
		if err := gg.SavePNG(path, img); err != nil {
			return fmt.Errorf("save %s: %w", path, err)
		}
		if _, err := fmt.Fprintf(out, "wrote %s\n", path); err != nil {
			return err
		}
	}
	return nil
}

// Cards lists the cards to render: the default card per locale, plus one per
// published post per locale. A non-empty slug restricts the post cards to
// that post, drafts included so editors can stage share images.
func Cards(slug string) ([]Card, error) {
	var cards []Card
	for _, locale := range dictionary.Supported {
		cards = append(cards, Card{
			Name:  "card-" + locale + ".png",
			Title: i18n.Landing(locale).Title,
		})
	}

	var posts []blog.Post
	if slug != "" {
		post, ok := blog.BySlug(slug)
		if !ok {
			return nil, fmt.Errorf("unknown post %q", slug)
		}
		posts = []blog.Post{post}
	} else {
		posts = blog.Posts()
	}
	for _, post := range posts {
		for _, locale := range dictionary.Supported {
			cards = append(cards, Card{
				Name:  "card-" + post.Slug + "-" + locale + ".png",
				Title: post.LocalizedTitle(locale),
			})
		}
	}
	return cards, nil
}

// Render draws one card. Titles wrap at the content width; when the regular
// face needs more than three lines and a small face is available, the title
// drops one size step instead.
func Render(faces Faces, title string) (image.Image, error) {
	if faces.Brand == nil || faces.Title == nil {
		return nil, errors.New("brand and title faces are required")
	}

	dc := gg.NewContext(Width, Height)
	dc.SetHexColor(branding.InkHex)
	dc.Clear()

	dc.SetHexColor(branding.GreenHex)
	dc.DrawRectangle(0, Height-accentHeight, Width, accentHeight)
	dc.Fill()

	dc.SetFontFace(faces.Brand)
	dc.SetHexColor(branding.GreenHex)
	dc.DrawString(branding.AppName, margin, 140)

	maxWidth := float64(Width) - 2*margin
	dc.SetFontFace(faces.Title)
	lines := dc.WordWrap(title, maxWidth)
	if len(lines) > maxTitleLines && faces.Small != nil {
		dc.SetFontFace(faces.Small)
		lines = dc.WordWrap(title, maxWidth)
	}

	dc.SetHexColor(branding.PaperHex)
	y := 300.0
	lineHeight := dc.FontHeight() * 1.35
	for _, line := range lines {
		dc.DrawString(line, margin, y)
		y += lineHeight
	}
	return dc.Image(), nil
}

// WrapTitle reports how a title breaks into lines at the given width for a
// face, using the same measurement Render uses.
func WrapTitle(face font.Face, title string, maxWidth float64) []string {
	dc := gg.NewContext(1, 1)
	dc.SetFontFace(face)
	return dc.WordWrap(strings.TrimSpace(title), maxWidth)
}

// LoadFaces parses a TTF file into the three card faces.
func LoadFaces(path string) (Faces, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Faces{}, fmt.Errorf("read font file: %w", err)
	}
	parsed, err := truetype.Parse(raw)
	if err != nil {
		return Faces{}, fmt.Errorf("parse font: %w", err)
	}
	face := func(size float64) font.Face {
		return truetype.NewFace(parsed, &truetype.Options{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingNone,
		})
	}
	return Faces{Brand: face(44), Title: face(76), Small: face(58)}, nil
}
