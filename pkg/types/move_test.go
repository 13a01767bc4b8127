package types

import "testing"

func TestNotation(t *testing.T) {
	cases := []struct {
		move Move
		want string
	}{
		{Move{Face: FaceR, Turn: TurnCW}, "R"},
		{Move{Face: FaceR, Turn: TurnCCW}, "R'"},
		{Move{Face: FaceR, Turn: Turn180}, "R2"},
		{Move{Face: FaceD, Turn: TurnCCW}, "D'"},
	}
	for _, c := range cases {
		if got := c.move.Notation(); got != c.want {
			t.Errorf("Notation() = %q, want %q", got, c.want)
		}
	}
}

func TestInverse(t *testing.T) {
	cw := Move{Face: FaceF, Turn: TurnCW}
	if cw.Inverse().Turn != TurnCCW {
		t.Error("Inverse of CW should be CCW")
	}
	ccw := Move{Face: FaceF, Turn: TurnCCW}
	if ccw.Inverse().Turn != TurnCW {
		t.Error("Inverse of CCW should be CW")
	}
	half := Move{Face: FaceF, Turn: Turn180}
	if half.Inverse() != half {
		t.Error("Half turn should be its own inverse")
	}
}

func TestInverseSequence(t *testing.T) {
	seq := []Move{
		{Face: FaceR, Turn: TurnCW},
		{Face: FaceU, Turn: Turn180},
		{Face: FaceF, Turn: TurnCCW},
	}
	inv := InverseSequence(seq)

	want := []Move{
		{Face: FaceF, Turn: TurnCW},
		{Face: FaceU, Turn: Turn180},
		{Face: FaceR, Turn: TurnCCW},
	}
	if len(inv) != len(want) {
		t.Fatalf("Length mismatch: %d vs %d", len(inv), len(want))
	}
	for i := range want {
		if inv[i] != want[i] {
			t.Errorf("InverseSequence[%d] = %v, want %v", i, inv[i], want[i])
		}
	}
}
