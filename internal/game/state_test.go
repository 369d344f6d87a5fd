package game

import (
	"testing"

	"github.com/croatoan/tucants/internal/board"
)

func TestNodeKindDerivation(t *testing.T) {
	s := NewGame(board.White)
	if got := s.Kind(); got != MaxNode {
		t.Errorf("Kind() = %v, want MaxNode (own turn)", got)
	}

	s.Position.Turn = board.Black
	if got := s.Kind(); got != MinNode {
		t.Errorf("Kind() = %v, want MinNode", got)
	}

	s.ChanceNode = true
	if got := s.Kind(); got != ChanceNode {
		t.Errorf("Kind() = %v, want ChanceNode (overrides turn)", got)
	}
}

func TestFoodAmount(t *testing.T) {
	s := NewGame(board.White)
	s.Position.Score[board.White] = 3
	s.Position.Score[board.Black] = 1
	s.OpponentCaptures = 2
	s.PlayerCaptures = 1

	white, black := s.FoodAmount()
	wantWhite := s.Position.Score[board.White] - s.Position.AntsRemoved(board.White) + s.OpponentCaptures
	wantBlack := s.Position.Score[board.Black] - s.Position.AntsRemoved(board.Black) + s.PlayerCaptures
	if white != wantWhite {
		t.Errorf("white food = %d, want %d", white, wantWhite)
	}
	if black != wantBlack {
		t.Errorf("black food = %d, want %d", black, wantBlack)
	}
}
