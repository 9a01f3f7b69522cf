// Package core provides the board geometry and the small set of types the
// game loop shares with the platform layer: commands in, cell grids out.
// It has no external dependencies so game logic stays pure and testable.
package core

import (
	"errors"
	"fmt"
	"strings"
)

// Direction is one of the four grid headings.
type Direction uint8

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists all headings in clockwise order starting at Up.
var Directions = [4]Direction{Up, Right, Down, Left}

// Opposite returns the 180° reversal of d. Opposite(Opposite(d)) == d.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Right:
		return Left
	case Down:
		return Up
	default:
		return Right
	}
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "unknown"
	}
}

// ParseDirection parses a direction name as produced by String.
func ParseDirection(s string) (Direction, error) {
	for _, d := range Directions {
		if strings.EqualFold(s, d.String()) {
			return d, nil
		}
	}
	return Up, fmt.Errorf("core: unknown direction %q", s)
}

// offset returns the signed unit step for d.
func (d Direction) offset() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Right:
		return 1, 0
	case Down:
		return 0, 1
	default:
		return -1, 0
	}
}

// Point is a cell on the board. Coordinates are unsigned; (0, 0) is the
// top-left corner.
type Point struct {
	X, Y uint16
}

// NewPoint creates a point.
func NewPoint(x, y uint16) Point {
	return Point{X: x, Y: y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// ErrBoundary is matched by every BoundaryFault.
var ErrBoundary = errors.New("core: transform leaves the board")

// BoundaryFault describes a transform that would make a coordinate
// negative. Transform panics with it; callers are expected to bounds-check
// before moving, so seeing one means the caller's collision logic is wrong.
type BoundaryFault struct {
	From  Point
	Dir   Direction
	Times uint16
}

func (f *BoundaryFault) Error() string {
	return fmt.Sprintf("core: transforming %s %s by %d would result in a negative coordinate", f.From, f.Dir, f.Times)
}

// Is reports whether target is ErrBoundary.
func (f *BoundaryFault) Is(target error) bool {
	return target == ErrBoundary
}

// TryTransform returns the point times cells away in direction d, or a
// *BoundaryFault if that would cross x = 0 or y = 0.
func (p Point) TryTransform(d Direction, times uint16) (Point, error) {
	dx, dy := d.offset()
	x, okX := shift(p.X, dx, times)
	y, okY := shift(p.Y, dy, times)
	if !okX || !okY {
		return p, &BoundaryFault{From: p, Dir: d, Times: times}
	}
	return Point{X: x, Y: y}, nil
}

// Transform is TryTransform that halts on a boundary fault.
func (p Point) Transform(d Direction, times uint16) Point {
	next, err := p.TryTransform(d, times)
	if err != nil {
		panic(err)
	}
	return next
}

// shift applies sign*times to v, refusing to go below zero.
func shift(v uint16, sign int, times uint16) (uint16, bool) {
	switch {
	case sign < 0:
		if times > v {
			return v, false
		}
		return v - times, true
	case sign > 0:
		return v + times, true
	default:
		return v, true
	}
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
