package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/fogleman/gg"
	"github.com/jung-kurt/gofpdf"

	"github.com/rough-gfx/rough"
	"github.com/rough-gfx/rough/canvas"
)

func renderScene(logger *charmlog.Logger, scenePath, output string) error {
	start := time.Now()
	s, err := loadScene(scenePath)
	if err != nil {
		return err
	}

	base := rough.NewOptions()
	if err := s.Options.apply(base); err != nil {
		return fmt.Errorf("scene options: %w", err)
	}

	gen := rough.NewGenerator(base)
	drawables := make([]*rough.Drawable, 0, len(s.Shapes))
	for i := range s.Shapes {
		d, err := s.Shapes[i].drawable(gen, base)
		if err != nil {
			return err
		}
		logger.Debug("generated shape", "kind", d.Shape, "sets", len(d.Sets))
		drawables = append(drawables, d)
	}

	switch ext := filepath.Ext(output); ext {
	case ".png":
		err = renderPNG(s, drawables, output)
	case ".pdf":
		err = renderPDF(s, drawables, output)
	case ".svg":
		err = renderSVG(s, drawables, output)
	default:
		return fmt.Errorf("unsupported output format %q", ext)
	}
	if err != nil {
		return err
	}
	logger.Infof("Rendered %d shapes to %s (%s)", len(drawables), output, time.Since(start).Round(time.Millisecond))
	return nil
}

func renderPNG(s *scene, drawables []*rough.Drawable, output string) error {
	dc := gg.NewContext(int(s.Width), int(s.Height))
	bg, err := parseColor(s.Background)
	if err != nil {
		return fmt.Errorf("scene background: %w", err)
	}
	if bg != nil {
		dc.SetColor(bg)
		dc.Clear()
	}
	for _, d := range drawables {
		canvas.Draw(dc, d)
	}
	return dc.SavePNG(output)
}

func renderPDF(s *scene, drawables []*rough.Drawable, output string) error {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: s.Width, Ht: s.Height},
	})
	pdf.AddPage()
	for _, d := range drawables {
		canvas.DrawPDF(pdf, d)
	}
	return pdf.OutputFileAndClose(output)
}

func renderSVG(s *scene, drawables []*rough.Drawable, output string) error {
	f, err := os.Create(output)
	if err != nil {
		return err
	}
	if err := canvas.WriteSVG(f, s.Width, s.Height, drawables...); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
