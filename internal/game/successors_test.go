package game

import (
	"math"
	"testing"

	"github.com/croatoan/tucants/internal/board"
)

// TestChanceResolutionSingleFood verifies that a capture landing on one
// Food cell produces a Chance parent with exactly two children at 1/3
// ("eat") and 2/3 ("miss").
func TestChanceResolutionSingleFood(t *testing.T) {
	s := NewGame(board.White)
	s.Position.Board = board.Blank()
	s.Position.Board.Set(2, 1, board.White)
	s.Position.Board.Set(3, 2, board.Black)
	s.Position.Board.Set(4, 3, board.Food)
	s.Position.Turn = board.White

	succs := Successors(s)
	if len(succs) != 1 {
		t.Fatalf("len(successors) = %d, want 1 (single capture available)", len(succs))
	}
	if succs[0].State.Kind() != ChanceNode {
		t.Fatalf("successor kind = %v, want ChanceNode", succs[0].State.Kind())
	}

	children := Successors(succs[0].State)
	if len(children) != 2 {
		t.Fatalf("len(chance children) = %d, want 2", len(children))
	}

	var probSum float64
	sawEat, sawMiss := false, false
	for _, c := range children {
		probSum += c.Probability
		switch c.State.FoodObtained {
		case 1:
			sawEat = true
			if math.Abs(c.Probability-1.0/3.0) > 1e-9 {
				t.Errorf("eat probability = %v, want 1/3", c.Probability)
			}
		case 0:
			sawMiss = true
			if math.Abs(c.Probability-2.0/3.0) > 1e-9 {
				t.Errorf("miss probability = %v, want 2/3", c.Probability)
			}
		default:
			t.Errorf("unexpected food_obtained = %d", c.State.FoodObtained)
		}
		if c.State.ChanceNode {
			t.Error("chance children must not themselves be chance nodes")
		}
	}
	if !sawEat || !sawMiss {
		t.Error("expected both an eat and a miss child")
	}
	if math.Abs(probSum-1.0) > 1e-9 {
		t.Errorf("probabilities sum to %v, want 1", probSum)
	}
}

// TestChanceResolutionDoubleFood verifies that a path crossing two
// Food cells produces three children at 4/9, 4/9, 1/9.
func TestChanceResolutionDoubleFood(t *testing.T) {
	s := NewGame(board.White)
	s.Position.Board = board.Blank()
	s.Position.Board.Set(2, 1, board.White)
	s.Position.Board.Set(3, 2, board.Black)
	s.Position.Board.Set(4, 3, board.Food)
	s.Position.Board.Set(5, 4, board.Black)
	s.Position.Board.Set(6, 5, board.Food)
	s.Position.Turn = board.White

	succs := Successors(s)
	if len(succs) != 1 {
		t.Fatalf("len(successors) = %d, want 1", len(succs))
	}
	children := Successors(succs[0].State)
	if len(children) != 3 {
		t.Fatalf("len(chance children) = %d, want 3", len(children))
	}

	wantProb := map[int]float64{0: 4.0 / 9.0, 1: 4.0 / 9.0, 2: 1.0 / 9.0}
	seen := map[int]bool{}
	var probSum float64
	for _, c := range children {
		probSum += c.Probability
		want, ok := wantProb[c.State.FoodObtained]
		if !ok {
			t.Fatalf("unexpected food_obtained = %d", c.State.FoodObtained)
		}
		if math.Abs(c.Probability-want) > 1e-9 {
			t.Errorf("food_obtained=%d probability = %v, want %v", c.State.FoodObtained, c.Probability, want)
		}
		seen[c.State.FoodObtained] = true
	}
	for k := range wantProb {
		if !seen[k] {
			t.Errorf("missing child with food_obtained = %d", k)
		}
	}
	if math.Abs(probSum-1.0) > 1e-9 {
		t.Errorf("probabilities sum to %v, want 1", probSum)
	}
}

// TestNonChanceSuccessorTurnFlips verifies that a non-chance successor
// always flips the turn.
func TestNonChanceSuccessorTurnFlips(t *testing.T) {
	s := NewGame(board.White)
	s.Position.Board = board.Blank()
	s.Position.Board.Set(2, 1, board.White)
	s.Position.Turn = board.White

	succs := Successors(s)
	if len(succs) == 0 {
		t.Fatal("expected at least one successor")
	}
	for _, succ := range succs {
		if succ.State.ChanceNode {
			continue // food-tagged successors are covered by the chance-resolution tests
		}
		if succ.State.Position.Turn != board.Black {
			t.Errorf("successor turn = %v, want Black", succ.State.Position.Turn)
		}
	}
}
