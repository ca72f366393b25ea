//
// corvid - UCI chess engine in Go
//
// MIT License
//
// Copyright (c) 2020-2026 corvid contributors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package evaluator contains structures and functions to calculate
// the value of a chess position to be used in a chess engine search.
package evaluator

import (
	"strings"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/mbellarov/corvid/internal/attacks"
	"github.com/mbellarov/corvid/internal/config"
	myLogging "github.com/mbellarov/corvid/internal/logging"
	"github.com/mbellarov/corvid/internal/position"
	. "github.com/mbellarov/corvid/internal/types"
)

var out = message.NewPrinter(language.German)

// Evaluator represents a data structure and functionality for
// evaluating chess positions by using various evaluation heuristics
// like material, positional values, pawn structure, mobility and king
// safety. Create a new instance with NewEvaluator().
type Evaluator struct {
	log *logging.Logger

	position        *position.Position
	gamePhaseFactor float64
	us              Color
	them            Color

	score Score
}

// to avoid object creation and memory allocation during evaluation we
// reuse this tmp Score.
var tmpScore = Score{}

// NewEvaluator creates a new instance of an Evaluator.
func NewEvaluator() *Evaluator {
	return &Evaluator{log: myLogging.GetLog()}
}

// InitEval initializes data structures and values which are used
// several times. Is called at the beginning of Evaluate() but can be
// called separately to be able to run single evaluations in unit
// tests.
func (e *Evaluator) InitEval(p *position.Position) {
	e.position = p
	e.us = p.SideToMove()
	e.them = e.us.Flip()
	e.gamePhaseFactor = GamePhaseFactor(p)
	e.score.MidGameValue = 0
	e.score.EndGameValue = 0
}

// GamePhaseFactor returns 1.0 for a full-material opening position,
// 0.0 at or below PhaseMin non-pawn material, interpolating linearly
// in between -- the tapering weight Score.ValueFromScore expects.
// Exported so search's time-control estimate can reuse the same
// opening/endgame measure instead of duplicating it.
func GamePhaseFactor(p *position.Position) float64 {
	var phase Value
	for pt := Knight; pt <= Queen; pt++ {
		n := p.PiecesBb(White, pt).PopCount() + p.PiecesBb(Black, pt).PopCount()
		phase += Value(n) * GamePhaseValue[pt]
	}
	if phase > PhaseMax {
		phase = PhaseMax
	}
	if phase < PhaseMin {
		return 0
	}
	return float64(phase-PhaseMin) / float64(PhaseMax-PhaseMin)
}

// Evaluate calculates a value for a chess position by using various
// evaluation heuristics like material, positional values, pawn
// structure, etc. It calls InitEval and then the internal evaluation
// function, which calculates the value for the position of the
// current game phase from the view of the side to move.
func (e *Evaluator) Evaluate(p *position.Position) Value {
	e.InitEval(p)
	return e.evaluate()
}

// value adds up the mid and end game scores after weighting them with
// the game phase factor.
func (e *Evaluator) value() Value {
	return e.score.ValueFromScore(e.gamePhaseFactor)
}

// evaluate sums up all partial evaluations. Assumes InitEval has
// already been called.
func (e *Evaluator) evaluate() Value {
	if hasInsufficientMaterial(e.position) {
		return ValueDraw
	}

	// Every heuristic below is computed from White's perspective
	// (white score minus black score); finalEval flips the sign for
	// Black before returning.

	e.evalMaterial()
	e.evalPieceSquares()

	e.score.MidGameValue += config.Settings.Eval.Tempo

	if config.Settings.Eval.UsePawnEval {
		e.score.Add(e.evaluatePawns())
	}
	if config.Settings.Eval.UseMobility {
		e.score.Add(e.evalMobility())
	}
	if config.Settings.Eval.UseRookEval {
		e.score.Add(e.evalRooks(White))
		e.score.Sub(e.evalRooks(Black))
	}
	if config.Settings.Eval.UseKingEval {
		e.score.Add(e.evalKingShield(White))
		e.score.Sub(e.evalKingShield(Black))
		e.score.Sub(e.evalKingExposure(White))
		e.score.Add(e.evalKingExposure(Black))
	}

	return e.finalEval(e.value())
}

// finalEval converts a White-perspective value into a value from the
// view of the side to move, the form negamax search expects.
func (e *Evaluator) finalEval(value Value) Value {
	if e.us == Black {
		return -value
	}
	return value
}

// hasInsufficientMaterial reports the trivial draws: bare kings, or a
// king each plus a single minor piece with no pawns anywhere.
func hasInsufficientMaterial(p *position.Position) bool {
	if p.PiecesBb(White, Pawn)|p.PiecesBb(Black, Pawn) != BbZero {
		return false
	}
	if p.PiecesBb(White, Rook)|p.PiecesBb(Black, Rook) != BbZero {
		return false
	}
	if p.PiecesBb(White, Queen)|p.PiecesBb(Black, Queen) != BbZero {
		return false
	}
	minors := p.PiecesBb(White, Knight).PopCount() + p.PiecesBb(White, Bishop).PopCount() +
		p.PiecesBb(Black, Knight).PopCount() + p.PiecesBb(Black, Bishop).PopCount()
	return minors <= 1
}

// evalMaterial adds the raw piece-value difference.
func (e *Evaluator) evalMaterial() {
	var white, black Value
	for pt := Pawn; pt <= Queen; pt++ {
		white += Value(e.position.PiecesBb(White, pt).PopCount()) * PieceTypeValue[pt]
		black += Value(e.position.PiecesBb(Black, pt).PopCount()) * PieceTypeValue[pt]
	}
	e.score.MidGameValue += int(white - black)
	e.score.EndGameValue += int(white - black)
}

// evalPieceSquares adds the tapered piece-square-table difference for
// every piece on the board.
func (e *Evaluator) evalPieceSquares() {
	for pc := Piece(0); pc < PieceLength; pc++ {
		bb := e.position.PieceBb(pc)
		for bb != BbZero {
			var sq Square
			sq, bb = bb.PopLsb()
			s := PstValue(pc, sq)
			if pc.ColorOf() == White {
				e.score.Add(s)
			} else {
				e.score.Sub(s)
			}
		}
	}
}

// mobility unit baselines: the "typical" attacked-square count for a
// bishop/queen on an empty board, subtracted so an unusually cramped
// piece scores a malus rather than a merely smaller bonus.
const (
	bishopMobilityUnit = 4
	queenMobilityUnit  = 9
)

// evalMobility scores (popcount(attacks) - unit) per bishop and queen,
// tapered with separate opening/endgame weights.
func (e *Evaluator) evalMobility() Score {
	occ := e.position.OccupiedAll()
	white := mobilitySum(e.position, White, Bishop, bishopMobilityUnit, occ) +
		mobilitySum(e.position, White, Queen, queenMobilityUnit, occ)
	black := mobilitySum(e.position, Black, Bishop, bishopMobilityUnit, occ) +
		mobilitySum(e.position, Black, Queen, queenMobilityUnit, occ)
	diff := white - black
	return Score{
		MidGameValue: diff * config.Settings.Eval.MobilityBonusOpening,
		EndGameValue: diff * config.Settings.Eval.MobilityBonusEndgame,
	}
}

// mobilitySum adds (popcount(attacks) - unit) over every piece of type
// pt and color c.
func mobilitySum(p *position.Position, c Color, pt PieceType, unit int, occ Bitboard) int {
	sum := 0
	own := p.OccupiedBb(c)
	bb := p.PiecesBb(c, pt)
	for bb != BbZero {
		var sq Square
		sq, bb = bb.PopLsb()
		sum += (attacks.Attacks(pt, sq, occ) &^ own).PopCount() - unit
	}
	return sum
}

// evalRooks rewards rooks on open or semi-open files: no pawns of
// either color on the file is a full bonus, no own pawn but an enemy
// pawn present is a half bonus.
func (e *Evaluator) evalRooks(us Color) Score {
	tmpScore.MidGameValue = 0
	tmpScore.EndGameValue = 0
	ownPawns := e.position.PiecesBb(us, Pawn)
	enemyPawns := e.position.PiecesBb(us.Flip(), Pawn)
	rooks := e.position.PiecesBb(us, Rook)
	for rooks != BbZero {
		var sq Square
		sq, rooks = rooks.PopLsb()
		file := sq.FileOf().Bb()
		if file&ownPawns != 0 {
			continue
		}
		if file&enemyPawns == 0 {
			tmpScore.MidGameValue += config.Settings.Eval.RookOpenFileBonus
			tmpScore.EndGameValue += config.Settings.Eval.RookOpenFileBonus
		} else {
			tmpScore.MidGameValue += config.Settings.Eval.RookSemiOpenFileBonus
			tmpScore.EndGameValue += config.Settings.Eval.RookSemiOpenFileBonus
		}
	}
	return tmpScore
}

// evalKingShield rewards own pawns standing on the squares immediately
// around the king, wherever it stands -- a middlegame-only term, tapered away in
// the endgame by the caller's Score.ValueFromScore weighting.
func (e *Evaluator) evalKingShield(us Color) Score {
	tmpScore.MidGameValue = 0
	tmpScore.EndGameValue = 0
	kingSq := e.position.KingSquare(us)
	shield := attacks.KingAttacks(kingSq) & e.position.PiecesBb(us, Pawn)
	tmpScore.MidGameValue = shield.PopCount() * config.Settings.Eval.KingShieldBonus
	return tmpScore
}

// evalKingExposure penalizes a king standing on an open or semi-open
// file, the same file-openness test evalRooks applies to rooks but
// charged against the king as an exposure cost instead of a bonus.
func (e *Evaluator) evalKingExposure(us Color) Score {
	tmpScore.MidGameValue = 0
	tmpScore.EndGameValue = 0
	ownPawns := e.position.PiecesBb(us, Pawn)
	enemyPawns := e.position.PiecesBb(us.Flip(), Pawn)
	file := e.position.KingSquare(us).FileOf().Bb()
	if file&ownPawns != 0 {
		return tmpScore
	}
	if file&enemyPawns == 0 {
		tmpScore.MidGameValue = config.Settings.Eval.RookOpenFileBonus
		tmpScore.EndGameValue = config.Settings.Eval.RookOpenFileBonus
	} else {
		tmpScore.MidGameValue = config.Settings.Eval.RookSemiOpenFileBonus
		tmpScore.EndGameValue = config.Settings.Eval.RookSemiOpenFileBonus
	}
	return tmpScore
}

// Report prints a debug report about the last evaluation.
func (e *Evaluator) Report() string {
	var report strings.Builder
	report.WriteString("Evaluation Report\n")
	report.WriteString("=============================================\n")
	report.WriteString(out.Sprintf("Position: %s\n", e.position.Fen()))
	report.WriteString(out.Sprintf("%s\n", e.position.String()))
	report.WriteString(out.Sprintf("GamePhase Factor: %f\n", e.gamePhaseFactor))
	report.WriteString(out.Sprintf("Eval value  : %d \n(from the view of side to move = %s)\n", e.Evaluate(e.position), e.us.String()))
	return report.String()
}
