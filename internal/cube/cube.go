// Package cube provides a 2x2 pocket cube model as a flat 24-sticker state.
//
// Stickers are numbered 0-23 in six blocks of four, one block per face,
// in the order Front, Right, Back, Left, Up, Down. Within a face the
// order is top-left, top-right, bottom-left, bottom-right. A move never
// changes a slot's identity, only the color occupying it.
package cube

import "github.com/seamusw/pocketcube/pkg/types"

// Color represents a sticker color, stored as its single-letter code.
type Color byte

const (
	White  Color = 'w' // Front face when solved
	Orange Color = 'o' // Right face when solved
	Yellow Color = 'y' // Back face when solved
	Red    Color = 'r' // Left face when solved
	Blue   Color = 'b' // Up face when solved
	Green  Color = 'g' // Down face when solved
)

func (c Color) String() string {
	return string(byte(c))
}

// ParseColor returns the Color for a single-letter code.
func ParseColor(s string) (Color, bool) {
	if len(s) != 1 {
		return 0, false
	}
	switch c := Color(s[0]); c {
	case White, Orange, Yellow, Red, Blue, Green:
		return c, true
	default:
		return 0, false
	}
}

// Colors lists the six colors in face order (F, R, B, L, U, D when solved).
var Colors = []Color{White, Orange, Yellow, Red, Blue, Green}

// State is the full sticker configuration of the cube. It is a value
// type and comparable, so it can be used directly as a map key.
type State [24]Color

var solvedState = func() State {
	var s State
	for f, c := range Colors {
		for i := 0; i < 4; i++ {
			s[f*4+i] = c
		}
	}
	return s
}()

// Solved returns the canonical solved state: each face monochromatic.
func Solved() State {
	return solvedState
}

// IsSolved returns true if the state equals the solved state.
func (s State) IsSolved() bool {
	return s == solvedState
}

// Apply returns the state after applying a single move. The receiver is
// not modified.
func (s State) Apply(m types.Move) State {
	return s.Permute(PermFor(m))
}

// ApplyAll returns the state after applying a sequence of moves in order.
func (s State) ApplyAll(moves []types.Move) State {
	for _, m := range moves {
		s = s.Apply(m)
	}
	return s
}

// ColorCounts returns how many stickers carry each color. A well-formed
// state has exactly four of each.
func (s State) ColorCounts() map[Color]int {
	counts := make(map[Color]int, 6)
	for _, c := range s {
		counts[c]++
	}
	return counts
}

// SlotOffset returns the index of the first sticker of a face.
func SlotOffset(f types.Face) int {
	return faceIndex(f) * 4
}
