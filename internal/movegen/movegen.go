/*
 * corvid - UCI chess engine in Go
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 corvid contributors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package movegen generates pseudo-legal moves from a position's
// bitboards and the precomputed attack tables, then filters them down
// to legal moves via position.IsLegalMove. It also carries the
// on-demand staged iterator search uses for move ordering: PV move,
// then captures (MVV-LVA), then killers, then quiet moves scored by
// history.
package movegen

import (
	"github.com/mbellarov/corvid/internal/attacks"
	"github.com/mbellarov/corvid/internal/history"
	"github.com/mbellarov/corvid/internal/moveslice"
	"github.com/mbellarov/corvid/internal/position"
	. "github.com/mbellarov/corvid/internal/types"
)

// GenMode selects which pseudo-legal moves GeneratePseudoLegalMoves
// produces.
type GenMode int

const (
	GenCap GenMode = 1 << iota
	GenNonCap
	GenAll = GenCap | GenNonCap
)

// MoveGen generates and orders moves for one search thread. It is
// reused across nodes rather than reallocated, mirroring the teacher's
// per-thread generator instance.
type MoveGen struct {
	pseudoLegal *moveslice.MoveSlice
	legal       *moveslice.MoveSlice
	onDemand    *moveslice.ScoredMoveSlice

	pvMove           Move
	killers          [2]Move
	history          *history.History
	odIndex          int
	odStage          int
	odKey            Key
}

const (
	stagePV = iota
	stageCaptures
	stageKillers
	stageQuiet
	stageDone
)

// NewMoveGen returns a fresh, empty generator.
func NewMoveGen() *MoveGen {
	return &MoveGen{
		pseudoLegal: moveslice.NewMoveSlice(),
		legal:       moveslice.NewMoveSlice(),
		onDemand:    moveslice.NewScoredMoveSlice(),
	}
}

// SetHistory attaches the shared history-heuristic table used to score
// quiet moves during on-demand iteration.
func (g *MoveGen) SetHistory(h *history.History) { g.history = h }

// SetKillers records this ply's killer moves for the next on-demand
// iteration.
func (g *MoveGen) SetKillers(k1, k2 Move) { g.killers = [2]Move{k1, k2} }

// SetPvMove records the move to try first on the next on-demand
// iteration at this node.
func (g *MoveGen) SetPvMove(m Move) { g.pvMove = m }

// GeneratePseudoLegalMoves fills and returns the generator's internal
// move slice with every pseudo-legal move matching mode. The slice is
// owned by the generator and is overwritten by the next call.
func (g *MoveGen) GeneratePseudoLegalMoves(p *position.Position, mode GenMode) *moveslice.MoveSlice {
	g.pseudoLegal.Clear()
	us := p.SideToMove()

	if mode&GenCap != 0 {
		generatePawnCaptures(p, us, g.pseudoLegal)
		generatePieceMoves(p, us, g.pseudoLegal, true)
	}
	if mode&GenNonCap != 0 {
		generatePawnQuiets(p, us, g.pseudoLegal)
		generatePieceMoves(p, us, g.pseudoLegal, false)
		generateCastling(p, us, g.pseudoLegal)
	}
	return g.pseudoLegal
}

// GenerateLegalMoves generates pseudo-legal moves for mode and filters
// out those that leave the mover's own king in check.
func (g *MoveGen) GenerateLegalMoves(p *position.Position, mode GenMode) *moveslice.MoveSlice {
	g.GeneratePseudoLegalMoves(p, mode)
	g.legal.Clear()
	for i := 0; i < g.pseudoLegal.Len(); i++ {
		m := g.pseudoLegal.At(i)
		if p.IsLegalMove(m) {
			g.legal.PushBack(m)
		}
	}
	return g.legal
}

// HasLegalMove reports whether p has at least one legal move, without
// building the full list -- used to distinguish stalemate from
// checkmate without extra generation cost at terminal nodes.
func (g *MoveGen) HasLegalMove(p *position.Position) bool {
	g.GeneratePseudoLegalMoves(p, GenAll)
	for i := 0; i < g.pseudoLegal.Len(); i++ {
		if p.IsLegalMove(g.pseudoLegal.At(i)) {
			return true
		}
	}
	return false
}

// ResetOnDemand restarts the staged iterator for a new node.
func (g *MoveGen) ResetOnDemand(p *position.Position) {
	g.odStage = stagePV
	g.odIndex = 0
	g.odKey = p.ZobristKey()
}

// GetNextMove returns the next move in search's preferred ordering
// (PV, then MVV-LVA captures, then killers, then history-scored
// quiets), or MoveNone once exhausted. It stages the pseudo-legal list
// lazily, scoring each stage only the first time it's entered.
func (g *MoveGen) GetNextMove(p *position.Position, mode GenMode) Move {
	if g.odKey != p.ZobristKey() {
		g.ResetOnDemand(p)
	}

	if g.odStage == stagePV {
		g.odStage = stageCaptures
		if g.pvMove != MoveNone && p.IsLegalMove(g.pvMove) {
			return g.pvMove
		}
	}

	if g.odStage == stageCaptures {
		if g.odIndex == 0 {
			g.onDemand.Clear()
			caps := g.GeneratePseudoLegalMoves(p, GenCap)
			for i := 0; i < caps.Len(); i++ {
				m := caps.At(i)
				if m == g.pvMove {
					continue
				}
				g.onDemand.PushBack(m, mvvLva(p, m))
			}
			g.onDemand.SortByValue()
		}
		for g.odIndex < g.onDemand.Len() {
			m := g.onDemand.At(g.odIndex).Move
			g.odIndex++
			if p.IsLegalMove(m) {
				return m
			}
		}
		g.odStage = stageKillers
		g.odIndex = 0
	}

	if mode&GenNonCap == 0 {
		g.odStage = stageDone
		return MoveNone
	}

	if g.odStage == stageKillers {
		for g.odIndex < len(g.killers) {
			m := g.killers[g.odIndex]
			g.odIndex++
			if m != MoveNone && m != g.pvMove && !m.IsCapture() && p.IsLegalMove(m) {
				return m
			}
		}
		g.odStage = stageQuiet
		g.odIndex = 0
	}

	if g.odStage == stageQuiet {
		if g.odIndex == 0 {
			g.onDemand.Clear()
			quiets := g.GeneratePseudoLegalMoves(p, GenNonCap)
			for i := 0; i < quiets.Len(); i++ {
				m := quiets.At(i)
				if m == g.pvMove || m == g.killers[0] || m == g.killers[1] {
					continue
				}
				var v int32
				if g.history != nil {
					v = g.history.Value(p.SideToMove(), m.From(), m.To())
				}
				g.onDemand.PushBack(m, v)
			}
			g.onDemand.SortByValue()
		}
		for g.odIndex < g.onDemand.Len() {
			m := g.onDemand.At(g.odIndex).Move
			g.odIndex++
			if p.IsLegalMove(m) {
				return m
			}
		}
		g.odStage = stageDone
	}

	return MoveNone
}

// mvvLva scores a capture by "most valuable victim, least valuable
// attacker": victim value dominates, attacker value breaks ties in
// favor of the cheaper attacker.
func mvvLva(p *position.Position, m Move) int32 {
	victim := p.PieceOn(m.To())
	if m.IsEnPassant() {
		victim = MakePiece(p.SideToMove().Flip(), Pawn)
	}
	victimValue := int32(0)
	if victim != PieceNone {
		victimValue = int32(PieceTypeValue[victim.TypeOf()])
	}
	attackerValue := int32(PieceTypeValue[m.MovingPiece().TypeOf()])
	return victimValue*16 - attackerValue
}

func generatePawnCaptures(p *position.Position, us Color, out *moveslice.MoveSlice) {
	them := us.Flip()
	pawns := p.PiecesBb(us, Pawn)
	enemy := p.OccupiedBb(them)
	promRank := Rank8
	if us == Black {
		promRank = Rank1
	}
	for pawns != 0 {
		var from Square
		from, pawns = pawns.PopLsb()
		targets := attacks.PawnAttacks(us, from) & enemy
		for targets != 0 {
			var to Square
			to, targets = targets.PopLsb()
			addPawnMove(out, from, to, us, promRank == to.RankOf(), true, false)
		}
		if p.EnPassantSquare() != SqNone && attacks.PawnAttacks(us, from).Has(p.EnPassantSquare()) {
			out.PushBack(NewMove(from, p.EnPassantSquare(), MakePiece(us, Pawn), PieceNone,
				MoveFlags{Capture: true, EnPassant: true}))
		}
	}
}

func generatePawnQuiets(p *position.Position, us Color, out *moveslice.MoveSlice) {
	pawns := p.PiecesBb(us, Pawn)
	empty := ^p.OccupiedAll()
	promRank := Rank8
	startRank := Rank2
	pushDir := North
	if us == Black {
		promRank = Rank1
		startRank = Rank7
		pushDir = South
	}
	for pawns != 0 {
		var from Square
		from, pawns = pawns.PopLsb()
		one := from.To(pushDir)
		if !one.IsValid() || !empty.Has(one) {
			continue
		}
		addPawnMove(out, from, one, us, promRank == one.RankOf(), false, false)
		if from.RankOf() == startRank {
			two := one.To(pushDir)
			if two.IsValid() && empty.Has(two) {
				out.PushBack(NewMove(from, two, MakePiece(us, Pawn), PieceNone, MoveFlags{DoublePush: true}))
			}
		}
	}
}

func addPawnMove(out *moveslice.MoveSlice, from, to Square, us Color, promotes, capture, ep bool) {
	moving := MakePiece(us, Pawn)
	flags := MoveFlags{Capture: capture, EnPassant: ep}
	if !promotes {
		out.PushBack(NewMove(from, to, moving, PieceNone, flags))
		return
	}
	for _, pt := range [4]PieceType{Queen, Rook, Bishop, Knight} {
		out.PushBack(NewMove(from, to, moving, MakePiece(us, pt), flags))
	}
}

func generatePieceMoves(p *position.Position, us Color, out *moveslice.MoveSlice, capturesOnly bool) {
	occ := p.OccupiedAll()
	own := p.OccupiedBb(us)
	enemy := p.OccupiedBb(us.Flip())

	for _, pt := range [5]PieceType{Knight, Bishop, Rook, Queen, King} {
		pieces := p.PiecesBb(us, pt)
		for pieces != 0 {
			var from Square
			from, pieces = pieces.PopLsb()
			targets := attacks.Attacks(pt, from, occ) &^ own
			if capturesOnly {
				targets &= enemy
			} else {
				targets &^= enemy
			}
			moving := MakePiece(us, pt)
			for targets != 0 {
				var to Square
				to, targets = targets.PopLsb()
				out.PushBack(NewMove(from, to, moving, PieceNone, MoveFlags{Capture: enemy.Has(to)}))
			}
		}
	}
}

func generateCastling(p *position.Position, us Color, out *moveslice.MoveSlice) {
	occ := p.OccupiedAll()
	rights := p.CastlingRightsMask()
	if us == White {
		if rights.Has(CastleWhiteKingside) && occ&(SqF1.Bb()|SqG1.Bb()) == 0 {
			out.PushBack(NewMove(SqE1, SqG1, WhiteKing, PieceNone, MoveFlags{Castle: true}))
		}
		if rights.Has(CastleWhiteQueenside) && occ&(SqB1.Bb()|SqC1.Bb()|SqD1.Bb()) == 0 {
			out.PushBack(NewMove(SqE1, SqC1, WhiteKing, PieceNone, MoveFlags{Castle: true}))
		}
		return
	}
	if rights.Has(CastleBlackKingside) && occ&(SqF8.Bb()|SqG8.Bb()) == 0 {
		out.PushBack(NewMove(SqE8, SqG8, BlackKing, PieceNone, MoveFlags{Castle: true}))
	}
	if rights.Has(CastleBlackQueenside) && occ&(SqB8.Bb()|SqC8.Bb()|SqD8.Bb()) == 0 {
		out.PushBack(NewMove(SqE8, SqC8, BlackKing, PieceNone, MoveFlags{Castle: true}))
	}
}
