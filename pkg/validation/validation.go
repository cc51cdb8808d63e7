// Package validation checks numbers and settings that cross into the game
// core from configuration files, the environment and the game loop.
package validation

import (
	"errors"
	"fmt"
	"math"
	"regexp"
)

// Limits for configurable values
const (
	MaxBoardSize     = 100000.0
	MaxGridCells     = 10000
	MaxWallThickness = 10000.0
)

// Sentinel errors, wrapped with details by the validators
var (
	ErrInvalidDeltaTime = errors.New("invalid delta time")
	ErrInvalidBoardSize = errors.New("invalid board size")
	ErrInvalidRectangle = errors.New("invalid rectangle")
	ErrInvalidSpeed     = errors.New("invalid speed")
	ErrInvalidLayout    = errors.New("invalid block layout")
	ErrInvalidColor     = errors.New("invalid color")
)

var validHexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}([0-9a-fA-F]{2})?$`)

// ValidateDeltaTime accepts any finite, non-negative step in seconds.
// Zero is a valid no-motion step.
func ValidateDeltaTime(dt float64) error {
	if math.IsNaN(dt) || math.IsInf(dt, 0) {
		return fmt.Errorf("%w: %v is not finite", ErrInvalidDeltaTime, dt)
	}
	if dt < 0 {
		return fmt.Errorf("%w: %v is negative", ErrInvalidDeltaTime, dt)
	}
	return nil
}

// ValidateBoardSize checks the side length of the square playfield
func ValidateBoardSize(size float64) error {
	if !isFinite(size) || size <= 0 {
		return fmt.Errorf("%w: %v must be a positive number", ErrInvalidBoardSize, size)
	}
	if size > MaxBoardSize {
		return fmt.Errorf("%w: %v exceeds %v", ErrInvalidBoardSize, size, MaxBoardSize)
	}
	return nil
}

// ValidateWallThickness checks the thickness of the boundary walls
func ValidateWallThickness(thickness float64) error {
	if !isFinite(thickness) || thickness <= 0 || thickness > MaxWallThickness {
		return fmt.Errorf("%w: wall thickness %v must be in (0, %v]", ErrInvalidRectangle, thickness, MaxWallThickness)
	}
	return nil
}

// ValidateRectangle checks that a box has finite coordinates and a
// non-negative size
func ValidateRectangle(name string, x, y, w, h float64) error {
	for _, v := range []float64{x, y, w, h} {
		if !isFinite(v) {
			return fmt.Errorf("%w: %s has a non-finite coordinate", ErrInvalidRectangle, name)
		}
	}
	if w < 0 || h < 0 {
		return fmt.Errorf("%w: %s has negative size %vx%v", ErrInvalidRectangle, name, w, h)
	}
	return nil
}

// ValidateSpeed checks a velocity component or magnitude
func ValidateSpeed(name string, v float64) error {
	if !isFinite(v) {
		return fmt.Errorf("%w: %s is not finite", ErrInvalidSpeed, name)
	}
	return nil
}

// ValidateGrid checks the row/column layout of the block field
func ValidateGrid(rows, columns int, blockW, blockH, gap float64) error {
	if rows < 0 || columns < 0 {
		return fmt.Errorf("%w: %dx%d grid has a negative dimension", ErrInvalidLayout, rows, columns)
	}
	if rows*columns > MaxGridCells {
		return fmt.Errorf("%w: %dx%d grid exceeds %d blocks", ErrInvalidLayout, rows, columns, MaxGridCells)
	}
	if !isFinite(blockW) || !isFinite(blockH) || blockW < 0 || blockH < 0 {
		return fmt.Errorf("%w: block size %vx%v", ErrInvalidLayout, blockW, blockH)
	}
	if !isFinite(gap) || gap < 0 {
		return fmt.Errorf("%w: gap %v must be non-negative", ErrInvalidLayout, gap)
	}
	return nil
}

// ValidateHexColor checks a #RRGGBB or #RRGGBBAA color string
func ValidateHexColor(c string) error {
	if !validHexColor.MatchString(c) {
		return fmt.Errorf("%w: %q is not #RRGGBB or #RRGGBBAA", ErrInvalidColor, c)
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
