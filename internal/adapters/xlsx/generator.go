package xlsx

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/hailam/docpad/internal/ports"
)

const (
	// MediaDir is where Excel keeps binary parts; the padding entry goes there.
	MediaDir = "xl/media"
	// Sheet is the name of the only worksheet.
	Sheet = "Sheet1"
	// Cell is the populated cell.
	Cell        = "A1"
	Placeholder = "Sample"
)

type XlsxBuilder struct{}

func New() ports.SkeletonBuilder {
	return &XlsxBuilder{}
}

// Build writes a workbook with one sheet and one populated cell.
func (g *XlsxBuilder) Build(path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if name := f.GetSheetName(0); name != Sheet {
		if err := f.SetSheetName(name, Sheet); err != nil {
			return fmt.Errorf("failed to rename sheet: %w", err)
		}
	}
	if err := f.SetCellValue(Sheet, Cell, Placeholder); err != nil {
		return fmt.Errorf("failed to set %s!%s: %w", Sheet, Cell, err)
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save xlsx file: %w", err)
	}
	return nil
}
