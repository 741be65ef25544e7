package utils

import (
	"github.com/hailam/docpad/internal/ports"
	"github.com/hailam/docpad/internal/utils"
)

// UtilSizeParser adapts the utils.ParseSize function to the ports.SizeParser interface.
type UtilSizeParser struct{}

// NewUtilSizeParser creates a new size parser adapter.
func NewUtilSizeParser() ports.SizeParser {
	return &UtilSizeParser{}
}

// Parse accepts <number>[KB|MB]; a bare number is read as megabytes.
func (p *UtilSizeParser) Parse(spec string) (int64, error) {
	return utils.ParseSize(spec)
}
