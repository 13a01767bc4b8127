// Package notation converts between text and the internal cube types:
// move tokens, move sequences, and the bracketed sticker layout.
package notation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/seamusw/pocketcube/internal/cube"
	"github.com/seamusw/pocketcube/pkg/types"
)

// Sentinel errors for the notation package.
var (
	ErrInvalidNotation = errors.New("notation: invalid move notation")
	ErrMalformedState  = errors.New("notation: malformed cube state")
)

// ParseMove parses a single move token into a Move.
// Examples: F, F', F2 (lowercase faces and a backtick prime are accepted).
func ParseMove(s string) (types.Move, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return types.Move{}, fmt.Errorf("%w: empty token", ErrInvalidNotation)
	}

	var face types.Face
	switch s[0] {
	case 'F', 'f':
		face = types.FaceF
	case 'R', 'r':
		face = types.FaceR
	case 'B', 'b':
		face = types.FaceB
	case 'L', 'l':
		face = types.FaceL
	case 'U', 'u':
		face = types.FaceU
	case 'D', 'd':
		face = types.FaceD
	default:
		return types.Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}

	turn := types.TurnCW
	if len(s) > 1 {
		switch s[1:] {
		case "'", "`":
			turn = types.TurnCCW
		case "2":
			turn = types.Turn180
		default:
			return types.Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
		}
	}

	return types.Move{Face: face, Turn: turn}, nil
}

// ParseSequence parses a move-sequence string like "R U R' F" into
// moves. A prime glued to the next token ("R'U") still splits
// correctly. Any unrecognized token is an error.
func ParseSequence(s string) ([]types.Move, error) {
	s = strings.ReplaceAll(s, "'", "' ")
	parts := strings.Fields(s)

	moves := make([]types.Move, 0, len(parts))
	for _, part := range parts {
		m, err := ParseMove(part)
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// FormatSequence formats moves as a space-separated notation string.
func FormatSequence(moves []types.Move) string {
	if len(moves) == 0 {
		return ""
	}
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}
	return strings.Join(parts, " ")
}

// ParseState parses the bracketed sticker layout into a cube state.
// Input: "[w,w,w,w],[o,o,o,o],[y,y,y,y],[r,r,r,r],[b,b,b,b],[g,g,g,g]"
// with faces in F, R, B, L, U, D order. The input must decompose into
// exactly 24 known color tokens with four stickers of each color.
func ParseState(s string) (cube.State, error) {
	cleaned := strings.NewReplacer("[", "", "]", "", " ", "").Replace(s)
	tokens := strings.Split(cleaned, ",")
	if len(tokens) != 24 {
		return cube.State{}, fmt.Errorf("%w: expected 24 stickers, got %d", ErrMalformedState, len(tokens))
	}

	var state cube.State
	for i, tok := range tokens {
		c, ok := cube.ParseColor(tok)
		if !ok {
			return cube.State{}, fmt.Errorf("%w: unknown color %q at sticker %d", ErrMalformedState, tok, i)
		}
		state[i] = c
	}

	// Wrong counts can never be solved; reject them here rather than
	// letting a search silently exhaust its depth bound.
	for c, n := range state.ColorCounts() {
		if n != 4 {
			return cube.State{}, fmt.Errorf("%w: color %s appears %d times, want 4", ErrMalformedState, c, n)
		}
	}

	return state, nil
}

// FormatState renders a state in the bracketed sticker layout, the
// exact inverse of ParseState.
func FormatState(s cube.State) string {
	var b strings.Builder
	for f := 0; f < 6; f++ {
		if f > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('[')
		for i := 0; i < 4; i++ {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteByte(byte(s[f*4+i]))
		}
		b.WriteByte(']')
	}
	return b.String()
}
