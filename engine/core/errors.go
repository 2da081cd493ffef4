package core

import (
	"errors"
	"fmt"
)

// ErrNotDrawing reports a drawing primitive invoked outside the draw
// phase, i.e. anywhere but inside the Draw callback.
var ErrNotDrawing = errors.New("only allowed while drawing")

func phaseErr(op string) error {
	return fmt.Errorf("%s: %w", op, ErrNotDrawing)
}
