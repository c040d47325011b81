// Package fonts loads text faces for the window frontend.
//
// Loading never fails outright: a missing or broken font file falls back to
// the embedded Go Regular face, and that to a fixed bitmap face.
package fonts

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Source tells where a loaded face came from.
type Source int

const (
	SourceFile     Source = iota // The requested font file
	SourceEmbedded               // Embedded Go Regular
	SourceBitmap                 // basicfont 7x13
)

// String returns a short name for the source.
func (s Source) String() string {
	switch s {
	case SourceFile:
		return "file"
	case SourceEmbedded:
		return "embedded"
	default:
		return "bitmap"
	}
}

// Parse builds a face of the given point size from TrueType or OpenType data.
func Parse(data []byte, size float64) (font.Face, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create face: %w", err)
	}
	return face, nil
}

// Load returns a face read from path at the given size. The returned face is
// always usable; a non-nil error explains why a fallback was used.
// An empty path goes straight to the embedded face without an error.
func Load(path string, size float64) (font.Face, Source, error) {
	var fileErr error
	if path != "" {
		face, err := loadFile(path, size)
		if err == nil {
			return face, SourceFile, nil
		}
		fileErr = err
	}

	face, err := Parse(goregular.TTF, size)
	if err == nil {
		return face, SourceEmbedded, fileErr
	}
	return basicfont.Face7x13, SourceBitmap, errors.Join(fileErr, err)
}

func loadFile(path string, size float64) (font.Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	face, err := Parse(data, size)
	if err != nil {
		return nil, fmt.Errorf("font %s: %w", path, err)
	}
	return face, nil
}
