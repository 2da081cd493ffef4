package text

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Faces hands out font.Face values for the engine's default typeface,
// one per requested pixel size. Faces are cached; a size is prepared at
// most once.
type Faces struct {
	font  *opentype.Font
	faces map[float64]font.Face
}

// NewFaces parses the embedded default typeface.
func NewFaces() (*Faces, error) {
	ft, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse default font: %w", err)
	}
	return &Faces{font: ft, faces: map[float64]font.Face{}}, nil
}

// Face returns a face rendering at sizePx pixels.
func (f *Faces) Face(sizePx float64) (font.Face, error) {
	if face, ok := f.faces[sizePx]; ok {
		return face, nil
	}
	face, err := opentype.NewFace(f.font, &opentype.FaceOptions{
		Size: sizePx, DPI: 72, Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("face at %gpx: %w", sizePx, err)
	}
	f.faces[sizePx] = face
	return face, nil
}

// Measure reports the advance width of s in pixels for the given face.
func Measure(face font.Face, s string) float64 {
	return float64(font.MeasureString(face, s)) / 64
}
