package board

import "testing"

func TestCheckmate(t *testing.T) {
	// White: Ka1, Ra8. Black: Kh8, pawns g7/h7 blocking escape.
	// Black to move, already checkmated.
	pos, err := ParseFEN("R6k/6pp/8/8/8/8/8/K7 b - - 0 1")
	if err != nil {
		t.Fatal("error parsing FEN:", err)
	}

	if !pos.InCheck() {
		t.Error("expected side to move to be in check")
	}
	if !pos.IsCheckmate() {
		t.Error("expected checkmate but got false")
	}
}

func TestNotCheckmate(t *testing.T) {
	// Black king on h8 is attacked by the rook on g8, but can capture it.
	pos, err := ParseFEN("6Rk/8/8/8/8/8/8/K7 b - - 0 1")
	if err != nil {
		t.Fatal("error parsing FEN:", err)
	}

	if pos.IsCheckmate() {
		t.Error("expected not checkmate, king can capture the checking rook")
	}
}

func TestStalemate(t *testing.T) {
	// Classic stalemate: black king on a8 has no legal move and is not in check.
	pos, err := ParseFEN("k7/2Q5/1K6/8/8/8/8/8 b - - 0 1")
	if err != nil {
		t.Fatal("error parsing FEN:", err)
	}

	if pos.InCheck() {
		t.Error("expected side to move not to be in check")
	}
	if !pos.IsStalemate() {
		t.Error("expected stalemate but got false")
	}
}
