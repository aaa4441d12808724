// Package iconsgen regenerates the application icon set from master logo art.
//
// The master art carries the logo microphone in the original green. The tool
// recolors those pixels to a target color, keeping everything else untouched,
// then resamples the result to every requested icon size.
package iconsgen

import (
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/murmurhq/website/internal/platform/branding"
)

const defaultSizes = "16,32,48,128,256,512"

// Config holds configuration for icon generation.
type Config struct {
	Src   string
	Out   string
	Color string
	Sizes []int
}

// ParseConfig parses flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := Config{Out: "assets/icons", Color: branding.GreenHex}
	sizes := defaultSizes

	fs.StringVar(&cfg.Src, "src", cfg.Src, "master logo PNG to recolor and resize")
	fs.StringVar(&cfg.Out, "out", cfg.Out, "output directory for icon-<size>.png files")
	fs.StringVar(&cfg.Color, "color", cfg.Color, "hex color applied to the logo microphone")
	fs.StringVar(&sizes, "sizes", sizes, "comma-separated icon sizes in pixels")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	parsed, err := parseSizes(sizes)
	if err != nil {
		return Config{}, err
	}
	cfg.Sizes = parsed
	return cfg, nil
}

// Run recolors the master art and writes one PNG per configured size. The
// first failure aborts the run.
func Run(cfg Config, out io.Writer) error {
	if out == nil {
		return errors.New("output is required")
	}
	if cfg.Src == "" {
		return errors.New("source image is required")
	}
	if cfg.Out == "" {
		return errors.New("output directory is required")
	}
	if len(cfg.Sizes) == 0 {
		return errors.New("at least one size is required")
	}
	target, err := ParseHexColor(cfg.Color)
	if err != nil {
		return err
	}

	src, err := imaging.Open(cfg.Src)
	if err != nil {
		return fmt.Errorf("open source image: %w", err)
	}
	recolored := Recolor(src, target)

	if err := os.MkdirAll(cfg.Out, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", cfg.Out, err)
	}
	for _, size := range cfg.Sizes {
		icon := imaging.Resize(recolored, size, size, imaging.Lanczos)
		path := filepath.Join(cfg.Out, fmt.Sprintf("icon-%d.png", size))
		if err := imaging.Save(icon, path); err != nil {
			return fmt.Errorf("save %s: %w", path, err)
		}
		if _, err := fmt.Fprintf(out, "wrote %s\n", path); err != nil {
			return err
		}
	}
	return nil
}

// Recolor replaces every logo-green pixel with the target color, preserving
// the pixel's alpha. All other pixels pass through unchanged.
func Recolor(src image.Image, target color.NRGBA) *image.NRGBA {
	bounds := src.Bounds()
	out := image.NewNRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			pixel := color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA)
			if isLogoGreen(pixel) {
				pixel = color.NRGBA{R: target.R, G: target.G, B: target.B, A: pixel.A}
			}
			out.SetNRGBA(x, y, pixel)
		}
	}
	return out
}

// isLogoGreen classifies a pixel as part of the logo microphone: strongly
// green and clearly dominant over the red and blue channels.
func isLogoGreen(pixel color.NRGBA) bool {
	green := float64(pixel.G)
	return pixel.G > 150 && green > 1.3*float64(pixel.R) && green > 1.3*float64(pixel.B)
}

// ParseHexColor parses a #rrggbb or rrggbb color into an opaque NRGBA.
func ParseHexColor(value string) (color.NRGBA, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(value), "#")
	if len(trimmed) != 6 {
		return color.NRGBA{}, fmt.Errorf("color %q must be 6 hex digits", value)
	}
	raw, err := hex.DecodeString(trimmed)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("color %q is not valid hex: %w", value, err)
	}
	return color.NRGBA{R: raw[0], G: raw[1], B: raw[2], A: 255}, nil
}

func parseSizes(value string) ([]int, error) {
	parts := strings.Split(value, ",")
	sizes := make([]int, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		size, err := strconv.Atoi(trimmed)
		if err != nil {
			return nil, fmt.Errorf("size %q is not a number", trimmed)
		}
		if size <= 0 {
			return nil, fmt.Errorf("size %d must be positive", size)
		}
		sizes = append(sizes, size)
	}
	if len(sizes) == 0 {
		return nil, errors.New("at least one size is required")
	}
	return sizes, nil
}
