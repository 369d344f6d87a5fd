// Package agentloop bridges the referee's network boundary to the
// search engine. It owns the single persistent GameState and capture
// counters that original_source/client/client.cpp keeps at process
// scope, encapsulated here into an Agent object owned by main instead
// of living as package-level globals.
package agentloop

import (
	"io"
	"log"

	"github.com/pkg/errors"

	"github.com/croatoan/tucants/internal/board"
	"github.com/croatoan/tucants/internal/game"
	"github.com/croatoan/tucants/internal/proto"
	"github.com/croatoan/tucants/internal/rules"
)

// Decider is the search engine's entry point, satisfied by
// *search.Engine. Kept as an interface so tests can substitute a
// stub decider.
type Decider interface {
	Decide(s game.State, budgetMs int) board.Move
}

// Agent owns the persistent GameState and the capture-counter
// bookkeeping. The referee connection is passed to Serve by the caller.
type Agent struct {
	Name     string
	BudgetMs int
	Engine   Decider
	Logger   *log.Logger
	Verbose  bool

	state               State
	previousAntsRemoved int
}

// State is an alias for game.State. The previous-ants-removed value
// needed to derive opponent_captures incrementally is kept on Agent.
type State = game.State

// NewAgent returns an Agent ready to serve a connection once a color
// assignment and an initial position arrive.
func NewAgent(name string, budgetMs int, engine Decider, logger *log.Logger) *Agent {
	return &Agent{Name: name, BudgetMs: budgetMs, Engine: engine, Logger: logger}
}

// Serve reads tagged messages from conn until Quit or a fatal
// protocol fault, replying to each tag as the wire protocol prescribes.
// It returns nil on a clean Quit.
func (a *Agent) Serve(conn io.ReadWriter) error {
	for {
		tag, err := proto.ReadTag(conn)
		if err != nil {
			return errors.Wrap(err, "agentloop: protocol fault reading tag")
		}

		done, err := a.dispatch(tag, conn)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

func (a *Agent) dispatch(tag byte, conn io.ReadWriter) (done bool, err error) {
	switch tag {
	case proto.TagRequestName:
		return false, proto.WriteName(conn, a.Name)

	case proto.TagColorWhite:
		a.setColor(board.White)
		return false, nil

	case proto.TagColorBlack:
		a.setColor(board.Black)
		return false, nil

	case proto.TagNewPosition:
		pos, readErr := proto.ReadPosition(conn)
		if readErr != nil {
			return false, readErr
		}
		a.onNewPosition(pos)
		return false, nil

	case proto.TagRequestMove:
		move := a.chooseMove()
		return false, proto.WriteMove(conn, move)

	case proto.TagPrepareReceiveMove:
		return false, nil

	case proto.TagQuit:
		return true, nil

	default:
		return false, errors.Errorf("agentloop: protocol fault: unknown tag %d", tag)
	}
}

func (a *Agent) setColor(c board.Tile) {
	a.state.OwnColor = c
}

// onNewPosition handles an inbound NewPosition message: a
// starting-layout board means a fresh game, otherwise - when it is the
// agent's move - the opponent's captures since the last update are
// derived from the delta in the agent's own ants removed from the
// board.
func (a *Agent) onNewPosition(pos board.Position) {
	if pos.IsStartingPosition() {
		own := a.state.OwnColor
		a.state = game.NewGame(own)
		a.previousAntsRemoved = 0
		return
	}

	a.state.Position = pos
	if pos.Turn == a.state.OwnColor {
		removed := pos.AntsRemoved(a.state.OwnColor)
		a.state.OpponentCaptures += removed - a.previousAntsRemoved
		a.previousAntsRemoved = removed
	}
}

// chooseMove handles an inbound RequestMove message: a null move if
// the agent cannot move, otherwise the search engine's decision, with
// player_captures credited for the chosen move's own capture count.
func (a *Agent) chooseMove() board.Move {
	if !rules.CanMove(&a.state.Position, a.state.OwnColor) {
		return board.NullMove(a.state.OwnColor)
	}

	move := a.Engine.Decide(a.state, a.BudgetMs)
	a.state.PlayerCaptures += move.NumCaptures()
	if a.Verbose && a.Logger != nil {
		a.Logger.Printf("move: color=%v captures=%d", move.Color, move.NumCaptures())
	}
	return move
}
