package board

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseFENRoundTrip(t *testing.T) {
	fens := []string{
		StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"8/8/8/8/k2Pp2R/8/8/4K3 b - d3 0 1",
	}

	for _, fen := range fens {
		pos, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}
		if got := pos.ToFEN(); got != fen {
			t.Errorf("round trip mismatch: ParseFEN(%q).ToFEN() = %q", fen, got)
		}
	}
}

func TestFlipIsAnInvolution(t *testing.T) {
	pos, err := ParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	before := pos.Copy()
	pos.flip()
	pos.flip()

	if diff := cmp.Diff(before, pos, cmp.AllowUnexported(Position{}, Board{})); diff != "" {
		t.Errorf("flip(flip(pos)) != pos (-before +after):\n%s", diff)
	}
}

func TestBlackToMoveFENIsStoredMoverRelative(t *testing.T) {
	// After parsing with black to move, black's pawns should occupy the
	// same relative bitboard shape white's pawns occupy in the mirror
	// image of the starting position: advancing "north" in the stored
	// representation regardless of actual color.
	pos, err := ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b KQkq - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	if pos.Pieces[Black][Pawn] != Rank2 {
		t.Errorf("expected black pawns on relative rank 2, got %s", pos.Pieces[Black][Pawn])
	}
	if pos.Pieces[White][Pawn] != Rank7 {
		t.Errorf("expected white pawns on relative rank 7, got %s", pos.Pieces[White][Pawn])
	}
}

func TestMakeRestoresViaSnapshot(t *testing.T) {
	pos := NewPosition()
	snapshot := pos.Copy()

	m := NewMove(E2, E4)
	pos.Make(m)

	if cmp.Equal(snapshot, pos, cmp.AllowUnexported(Position{}, Board{})) {
		t.Fatal("expected position to change after Make")
	}

	restored := snapshot
	if diff := cmp.Diff(restored, NewPosition(), cmp.AllowUnexported(Position{}, Board{})); diff != "" {
		t.Errorf("snapshot diverged from a fresh starting position (-snapshot +fresh):\n%s", diff)
	}
}

func TestDisjointPieceBitboards(t *testing.T) {
	pos, err := ParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	var seen Bitboard
	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			bb := pos.Pieces[c][pt]
			if bb&seen != 0 {
				t.Fatalf("piece bitboards overlap for color=%v pt=%v", c, pt)
			}
			seen |= bb
		}
	}
}
