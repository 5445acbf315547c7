package render

import (
	"github.com/tokendelve/excavator/pkg/dungeon"
	"github.com/tokendelve/excavator/pkg/errors"
)

// Format names for output artifacts.
const (
	FormatText = "txt"
	FormatJSON = "json"
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatDOT  = "dot"
)

// ValidFormats is the set of supported artifact formats.
var ValidFormats = map[string]bool{
	FormatText: true,
	FormatJSON: true,
	FormatSVG:  true,
	FormatPNG:  true,
	FormatDOT:  true,
}

// ValidateFormat checks that a format name is supported.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: txt, json, svg, png, dot)", format)
	}
	return nil
}

// ValidateFormats checks that all format names are supported.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// Artifact renders d in the named format with each sink's defaults.
// Terminal styling is never applied here; artifacts are meant for files and
// HTTP responses.
func Artifact(d *dungeon.Dungeon, format string) ([]byte, error) {
	switch format {
	case FormatText:
		return Text(d), nil
	case FormatJSON:
		return JSON(d)
	case FormatSVG:
		return SVG(d), nil
	case FormatPNG:
		return PNG(d)
	case FormatDOT:
		return []byte(DOT(d)), nil
	default:
		return nil, ValidateFormat(format)
	}
}
