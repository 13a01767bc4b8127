package cube

import "github.com/seamusw/pocketcube/pkg/types"

// Perm is a total permutation of the 24 sticker slots. Applying it
// produces new[i] = old[p[i]]: entry i names the slot whose color slot i
// inherits.
type Perm [24]uint8

// basePerms holds the hand-authored quarter-turn permutation for each
// face, indexed in F, R, B, L, U, D order. These six arrays encode the
// physical adjacency of faces on the pocket cube; everything else is
// derived from them.
var basePerms = [6]Perm{
	// F
	{2, 0, 3, 1, 16, 17, 6, 7, 8, 9, 10, 11, 12, 13, 4, 5, 14, 15, 21, 20, 18, 19, 22, 23},
	// R
	{0, 9, 2, 11, 6, 4, 7, 5, 19, 8, 17, 10, 12, 13, 14, 15, 16, 3, 18, 1, 20, 21, 22, 23},
	// B
	{0, 1, 2, 3, 4, 5, 14, 15, 10, 8, 11, 9, 23, 22, 12, 13, 6, 17, 7, 19, 20, 21, 18, 16},
	// L
	{20, 1, 22, 3, 4, 5, 6, 7, 8, 9, 10, 11, 14, 12, 15, 13, 2, 17, 0, 19, 18, 21, 16, 23},
	// U
	{12, 13, 2, 3, 0, 1, 6, 7, 4, 5, 10, 11, 8, 9, 14, 15, 17, 19, 16, 18, 20, 21, 22, 23},
	// D
	{0, 1, 15, 14, 4, 5, 2, 3, 8, 9, 6, 7, 12, 13, 10, 11, 16, 17, 18, 19, 22, 20, 23, 21},
}

// permTable holds the quarter, half and inverse turn for each face.
// Built once at startup and never mutated. The half turn is the base
// permutation composed with itself; the inverse is three applications,
// which equals the true inverse because every face turn has order 4.
var permTable = buildPermTable()

func buildPermTable() [6][3]Perm {
	var t [6][3]Perm
	for f, p := range basePerms {
		p2 := compose(p, p)
		p3 := compose(p, p2)
		t[f] = [3]Perm{p, p2, p3}
	}
	return t
}

// compose returns the permutation equivalent to applying p and then q.
func compose(p, q Perm) Perm {
	var r Perm
	for i := range r {
		r[i] = p[q[i]]
	}
	return r
}

// PermFor returns the resolved permutation for a move. The returned
// pointer refers to the shared immutable table and must not be written.
func PermFor(m types.Move) *Perm {
	return &permTable[faceIndex(m.Face)][turnIndex(m.Turn)]
}

// Permute returns the state after applying an already-resolved
// permutation. Total: any Perm is accepted.
func (s State) Permute(p *Perm) State {
	var out State
	for i := range out {
		out[i] = s[p[i]]
	}
	return out
}

func faceIndex(f types.Face) int {
	switch f {
	case types.FaceF:
		return 0
	case types.FaceR:
		return 1
	case types.FaceB:
		return 2
	case types.FaceL:
		return 3
	case types.FaceU:
		return 4
	case types.FaceD:
		return 5
	default:
		return 0
	}
}

func turnIndex(t types.Turn) int {
	switch t {
	case types.TurnCW:
		return 0
	case types.Turn180:
		return 1
	case types.TurnCCW:
		return 2
	default:
		return 0
	}
}

// allMoves is the fixed move expansion order: each face's quarter turn,
// half turn, then inverse, faces in F, R, B, L, U, D order. Search
// results are deterministic because this order is stable.
var allMoves = func() []types.Move {
	moves := make([]types.Move, 0, 18)
	for _, f := range types.Faces {
		moves = append(moves,
			types.Move{Face: f, Turn: types.TurnCW},
			types.Move{Face: f, Turn: types.Turn180},
			types.Move{Face: f, Turn: types.TurnCCW},
		)
	}
	return moves
}()

// AllMoves returns the 18 available moves in their fixed expansion
// order. Callers must not modify the returned slice.
func AllMoves() []types.Move {
	return allMoves
}
