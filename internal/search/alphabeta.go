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

package search

import (
	"time"

	"github.com/mbellarov/corvid/internal/config"
	"github.com/mbellarov/corvid/internal/movegen"
	"github.com/mbellarov/corvid/internal/moveslice"
	"github.com/mbellarov/corvid/internal/position"
	"github.com/mbellarov/corvid/internal/transpositiontable"
	. "github.com/mbellarov/corvid/internal/types"
)

// nodesPerPoll is how often (in visited nodes) negamax and quiescence
// check the stop flag, node limit and clock -- polling every node would
// make time.Since/atomic traffic dominate the search itself.
const nodesPerPoll = 2048

// maxSearchPly bounds recursion: beyond it we trust the static
// evaluation rather than keep extending, the same ceiling quiescence
// uses to terminate runaway check/capture chains.
const maxSearchPly = 63

// negamax searches position p to depth, returning a score from the
// side-to-move's point of view within the [alpha, beta) window. Root
// calls happen at ply 0 with the full window; everything below follows
// the fixed negamax/PVS contract -- no reverse futility pruning,
// internal iterative deepening, futility pruning, late-move pruning or
// counter-move heuristic, none of which this engine carries.
func (s *Search) negamax(p *position.Position, depth, ply int, alpha, beta Value) Value {
	s.pv[ply].Clear()

	s.nodesVisited++
	if s.nodesVisited%nodesPerPoll == 0 {
		s.pollStop()
	}
	if s.stopFlag {
		return ValueZero
	}
	if ply > s.statistics.CurrentExtraSearchDepth {
		s.statistics.CurrentExtraSearchDepth = ply
	}

	isPvNode := beta-alpha > 1

	if ply > 0 && p.IsRepetition(1) {
		return ValueDraw
	}

	key := p.ZobristKey()
	var ttMove Move
	if config.Settings.Search.UseTT && s.tt != nil {
		if entry := s.tt.Probe(key); entry != nil {
			s.statistics.TTHit++
			ttMove = entry.Move()
			if int(entry.Depth()) >= depth {
				ttValue := transpositiontable.ValueFromTt(entry.Value(), ply)
				if ply > 0 && !isPvNode {
					cuts := false
					switch entry.Vtype() {
					case ValueTypeExact:
						cuts = true
					case ValueTypeAlpha:
						cuts = ttValue <= alpha
					case ValueTypeBeta:
						cuts = ttValue >= beta
					}
					if cuts {
						s.statistics.TTCuts++
						return ttValue
					}
					s.statistics.TTNoCuts++
				}
			}
		} else {
			s.statistics.TTMiss++
		}
	}
	if ttMove != MoveNone {
		s.statistics.TTMoveUsed++
	} else {
		s.statistics.NoTTMove++
	}

	if depth <= 0 {
		return s.quiescence(p, ply, alpha, beta)
	}

	if ply > maxSearchPly {
		return s.eval.Evaluate(p)
	}

	inCheck := p.InCheck()
	if inCheck {
		depth++
		s.statistics.CheckExtension++
	}

	if config.Settings.Search.UseNullMove && depth >= 3 && !inCheck && ply > 0 {
		p.MakeNullMove()
		nmpDepth := depth - 1 - config.Settings.Search.NmpReduction
		if nmpDepth < 0 {
			nmpDepth = 0
		}
		value := -s.negamax(p, nmpDepth, ply+1, -beta, -beta+1)
		p.UnmakeNullMove()
		if s.stopFlag {
			return ValueZero
		}
		if value >= beta {
			s.statistics.NullMoveCuts++
			return beta
		}
	}

	mg := s.mg[ply]
	mg.SetPvMove(ttMove)
	mg.SetKillers(s.killers[ply][0], s.killers[ply][1])
	mg.ResetOnDemand(p)

	staticEval := s.eval.Evaluate(p)
	s.statistics.Evaluations++

	bestMove := MoveNone
	ttFlag := ValueTypeAlpha
	searched := 0

	for {
		m := mg.GetNextMove(p, movegen.GenAll)
		if m == MoveNone {
			break
		}

		if ply == 0 {
			s.statistics.CurrentRootMove = m
			s.statistics.CurrentRootMoveIndex = searched + 1
			s.reportCurrentRootMove(m, searched+1)
		}

		isCapture := m.IsCapture()
		isPromotion := m.IsPromotion()

		p.Make(m, position.AllMoves)

		var value Value
		switch {
		case searched == 0:
			value = -s.negamax(p, depth-1, ply+1, -beta, -alpha)
		default:
			reducedDepth := depth - 1
			useLmr := config.Settings.Search.UseLmr &&
				searched >= 4 && depth >= config.Settings.Search.LmrDepth &&
				!inCheck && !isCapture && !isPromotion
			if useLmr {
				s.statistics.LmrReductions++
				lmrDepth := depth - 1 - LmrReduction(depth, searched)
				if lmrDepth < 0 {
					lmrDepth = 0
				}
				value = -s.negamax(p, lmrDepth, ply+1, -alpha-1, -alpha)
				if value > alpha && !s.stopFlag {
					s.statistics.LmrResearches++
					value = -s.negamax(p, reducedDepth, ply+1, -alpha-1, -alpha)
				}
			} else {
				value = -s.negamax(p, reducedDepth, ply+1, -alpha-1, -alpha)
			}
			if value > alpha && value < beta && !s.stopFlag {
				if ply == 0 {
					s.statistics.RootPvsResearches++
				} else {
					s.statistics.PvsResearches++
				}
				value = -s.negamax(p, reducedDepth, ply+1, -beta, -alpha)
			}
		}

		p.Unmake()
		searched++

		if s.stopFlag {
			return ValueZero
		}

		if value > alpha {
			alpha = value
			bestMove = m
			ttFlag = ValueTypeExact
			if !isCapture {
				s.history.Update(p.SideToMove(), m.From(), m.To(), depth)
			}
			savePV(m, &s.pv[ply+1], &s.pv[ply])
		}

		if value >= beta {
			s.statistics.BetaCuts++
			if searched == 1 {
				s.statistics.BetaCuts1st++
			}
			if config.Settings.Search.UseTT && s.tt != nil {
				s.tt.Put(key, m, int8(depth), transpositiontable.ValueToTt(beta, ply), ValueTypeBeta, staticEval)
			}
			if !isCapture && s.killers[ply][0] != m {
				s.killers[ply][1] = s.killers[ply][0]
				s.killers[ply][0] = m
			}
			return beta
		}
	}

	if searched == 0 {
		if inCheck {
			s.statistics.Checkmates++
			return -ValueMate + Value(ply)
		}
		s.statistics.Stalemates++
		return ValueDraw
	}

	if config.Settings.Search.UseTT && s.tt != nil {
		s.tt.Put(key, bestMove, int8(depth), transpositiontable.ValueToTt(alpha, ply), ttFlag, staticEval)
	}

	return alpha
}

// quiescence extends the search through capture sequences so the
// static evaluation is never taken on a position with a pending
// recapture hanging over it. Stand-pat gives a fail-hard lower bound;
// only captures are generated, via position.OnlyCaptures so a
// miscategorized move can never sneak a quiet move into the tree.
func (s *Search) quiescence(p *position.Position, ply int, alpha, beta Value) Value {
	s.nodesVisited++
	if s.nodesVisited%nodesPerPoll == 0 {
		s.pollStop()
	}
	if s.stopFlag {
		return ValueZero
	}
	if ply > s.statistics.CurrentExtraSearchDepth {
		s.statistics.CurrentExtraSearchDepth = ply
	}

	if ply > maxSearchPly {
		return s.eval.Evaluate(p)
	}

	s.statistics.LeafPositionsEvaluated++
	standPat := s.eval.Evaluate(p)
	if standPat >= beta {
		s.statistics.StandpatCuts++
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	if !config.Settings.Search.UseQuiescence {
		return alpha
	}

	mg := s.mg[ply]
	mg.SetPvMove(MoveNone)
	mg.SetKillers(MoveNone, MoveNone)
	mg.ResetOnDemand(p)

	for {
		m := mg.GetNextMove(p, movegen.GenCap)
		if m == MoveNone {
			break
		}
		if !p.Make(m, position.OnlyCaptures) {
			continue
		}
		value := -s.quiescence(p, ply+1, -beta, -alpha)
		p.Unmake()

		if s.stopFlag {
			return ValueZero
		}
		if value >= beta {
			return beta
		}
		if value > alpha {
			alpha = value
		}
	}

	return alpha
}

// aspirationSearch re-centers the alpha-beta window around the
// previous iteration's score and re-searches with the full window on a
// fail-low or fail-high, per the +/-50cp band in AspirationWindow.
func (s *Search) aspirationSearch(p *position.Position, depth int, previousValue Value) Value {
	alpha := previousValue - AspirationWindow
	beta := previousValue + AspirationWindow

	value := s.negamax(p, depth, 0, alpha, beta)
	if s.stopFlag {
		return value
	}

	if value <= alpha {
		s.statistics.AspirationResearches++
		s.sendAspirationResearchInfo("upperbound")
		value = s.negamax(p, depth, 0, -ValueInf, ValueInf)
	} else if value >= beta {
		s.statistics.AspirationResearches++
		s.sendAspirationResearchInfo("lowerbound")
		value = s.negamax(p, depth, 0, -ValueInf, ValueInf)
	}

	return value
}

// pollStop checks the node/time limits and raises stopFlag once either
// is exceeded. Cheap enough to call every nodesPerPoll nodes without
// measurably affecting the search rate.
func (s *Search) pollStop() {
	if s.stopFlag {
		return
	}
	if s.searchLimits.Nodes > 0 && s.nodesVisited >= s.searchLimits.Nodes {
		s.stopFlag = true
		return
	}
	if s.searchLimits.TimeControl && !s.searchLimits.Ponder && !s.searchLimits.Infinite {
		if time.Since(s.startTime) >= s.timeLimit+s.extraTime {
			s.stopFlag = true
		}
	}
}

// savePV splices m onto the front of child (the continuation found one
// ply deeper) and stores the result in dest, the classic triangular PV
// table update performed every time alpha improves.
func savePV(m Move, child, dest *moveslice.MoveSlice) {
	dest.Clear()
	dest.PushBack(m)
	for i := 0; i < child.Len(); i++ {
		dest.PushBack(child.At(i))
	}
}
