package pdf

import (
	"fmt"

	"github.com/signintech/gopdf"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/hailam/docpad/internal/ports"
)

const (
	fontFamily = "goregular"
	fontSize   = 14

	// Placeholder is the single string drawn on the page.
	Placeholder = "Sample"
)

func New() ports.SkeletonBuilder {
	return &PDFBuilder{}
}

// PDFBuilder writes a single-page PDF with one line of text.
type PDFBuilder struct{}

// Build writes the page, its font and the cross-reference table to outPath.
func (g *PDFBuilder) Build(outPath string) error {
	pdf := gopdf.GoPdf{}
	pdf.Start(gopdf.Config{PageSize: *gopdf.PageSizeA4})
	pdf.AddPage()

	if err := pdf.AddTTFFontData(fontFamily, goregular.TTF); err != nil {
		return fmt.Errorf("failed to load font: %w", err)
	}
	if err := pdf.SetFont(fontFamily, "", fontSize); err != nil {
		return fmt.Errorf("failed to set font: %w", err)
	}
	// gopdf measures from the top-left corner.
	pdf.SetXY(100, 92)
	if err := pdf.Text(Placeholder); err != nil {
		return fmt.Errorf("failed to draw text: %w", err)
	}

	if err := pdf.WritePdf(outPath); err != nil {
		return fmt.Errorf("failed to write PDF '%s': %w", outPath, err)
	}
	return nil
}
