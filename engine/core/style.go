package core

import "github.com/hubastard/sketch/engine/colors"

// Style holds the drawing state implicitly consulted by the primitives.
// It is reset to defaults at the start of every frame so that one
// frame's mutations never leak into the next.
type Style struct {
	Stroke       colors.Color
	HasStroke    bool
	StrokeWeight float64
	TextSize     float64
}

const (
	defaultStrokeWeight = 1.0
	defaultTextSize     = 12.0
)

func defaultStyle() Style {
	return Style{StrokeWeight: defaultStrokeWeight, TextSize: defaultTextSize}
}
