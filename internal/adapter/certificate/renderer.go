// Package certificate renders completion certificates as PNG files.
package certificate

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/heartmarshall/fairplay-backend/internal/domain"
)

const (
	width  = 1100
	height = 850
	margin = 50
)

var (
	frameColor  = color.NRGBA{R: 0x1f, G: 0x4e, B: 0xa8, A: 0xff}
	textColor   = color.NRGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xff}
	unsafeChars = regexp.MustCompile(`[^A-Za-z0-9_-]+`)
)

// Renderer draws certificates into a directory on local disk.
type Renderer struct {
	dir     string
	regular *truetype.Font
	bold    *truetype.Font
}

// NewRenderer prepares dir and parses the bundled Go fonts.
func NewRenderer(dir string) (*Renderer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create certificate dir: %w", err)
	}
	regular, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse regular font: %w", err)
	}
	bold, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse bold font: %w", err)
	}
	return &Renderer{dir: dir, regular: regular, bold: bold}, nil
}

// Render writes the certificate image and returns its file name relative to
// the renderer directory.
func (r *Renderer) Render(ctx context.Context, c domain.CertificateContent) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	dc := gg.NewContext(width, height)
	dc.SetColor(color.White)
	dc.Clear()

	dc.SetColor(frameColor)
	dc.SetLineWidth(6)
	dc.DrawRectangle(margin, margin, width-2*margin, height-2*margin)
	dc.Stroke()

	cx := float64(width) / 2
	lines := []struct {
		text string
		face font.Face
		y    float64
	}{
		{"Certificate of Completion", r.face(r.bold, 48), 200},
		{"This is to certify that", r.face(r.regular, 28), 290},
		{c.FullName, r.face(r.bold, 40), 360},
		{"has successfully completed the module", r.face(r.regular, 28), 430},
		{c.ModuleName, r.face(r.bold, 34), 500},
		{fmt.Sprintf("with a score of %d", c.Score), r.face(r.regular, 24), 560},
		{"Dated: " + c.IssuedAt.UTC().Format("January 02, 2006"), r.face(r.regular, 20), 700},
	}
	dc.SetColor(textColor)
	for _, l := range lines {
		dc.SetFontFace(l.face)
		dc.DrawStringAnchored(l.text, cx, l.y, 0.5, 0.5)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return "", fmt.Errorf("encode certificate: %w", err)
	}

	name := fileName(c)
	if err := os.WriteFile(filepath.Join(r.dir, name), buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("write certificate: %w", err)
	}
	return name, nil
}

// Path resolves a stored certificate name to a file inside the renderer
// directory. Names that try to leave the directory are rejected.
func (r *Renderer) Path(name string) (string, error) {
	clean := filepath.Base(name)
	if clean != name || clean == "." || clean == string(filepath.Separator) {
		return "", fmt.Errorf("certificate file %q: %w", name, domain.ErrNotFound)
	}
	p := filepath.Join(r.dir, clean)
	if _, err := os.Stat(p); err != nil {
		return "", fmt.Errorf("certificate file %q: %w", name, domain.ErrNotFound)
	}
	return p, nil
}

// Remove deletes a rendered certificate. A file that is already gone is not
// an error.
func (r *Renderer) Remove(name string) error {
	clean := filepath.Base(name)
	if clean != name || clean == "." || clean == string(filepath.Separator) {
		return fmt.Errorf("certificate file %q: %w", name, domain.ErrNotFound)
	}
	if err := os.Remove(filepath.Join(r.dir, clean)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove certificate: %w", err)
	}
	return nil
}

// face builds a fresh face per call; truetype faces are not safe for
// concurrent use.
func (r *Renderer) face(f *truetype.Font, size float64) font.Face {
	return truetype.NewFace(f, &truetype.Options{Size: size, DPI: 72, Hinting: font.HintingNone})
}

func fileName(c domain.CertificateContent) string {
	module := strings.Trim(unsafeChars.ReplaceAllString(c.ModuleName, "_"), "_")
	if module == "" {
		module = "module"
	}
	return fmt.Sprintf("%s_%s_%s.png", c.UserID, module, c.IssuedAt.UTC().Format("20060102150405"))
}
