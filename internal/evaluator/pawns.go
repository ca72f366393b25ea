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

package evaluator

import (
	"github.com/mbellarov/corvid/internal/config"
	. "github.com/mbellarov/corvid/internal/types"
)

// evaluatePawns scores doubled, isolated and passed pawns directly
// from the bitboards -- unlike the teacher's cached pawn evaluation,
// this engine recomputes the term on every call instead of keying it
// by a dedicated pawn Zobrist hash.
func (e *Evaluator) evaluatePawns() Score {
	tmpScore.MidGameValue = 0
	tmpScore.EndGameValue = 0
	tmpScore.Add(evalPawnsForColor(e.position.PiecesBb(White, Pawn), e.position.PiecesBb(Black, Pawn), White))
	tmpScore.Sub(evalPawnsForColor(e.position.PiecesBb(Black, Pawn), e.position.PiecesBb(White, Pawn), Black))
	return tmpScore
}

func evalPawnsForColor(own, enemy Bitboard, us Color) Score {
	var s Score
	for f := FileA; f <= FileH; f++ {
		onFile := own & f.Bb()
		if onFile == BbZero {
			continue
		}
		count := onFile.PopCount()
		if count > 1 {
			s.MidGameValue -= (count - 1) * config.Settings.Eval.PawnDoubledMalus
			s.EndGameValue -= (count - 1) * config.Settings.Eval.PawnDoubledMalus
		}

		var neighbours Bitboard
		if f > FileA {
			neighbours |= (f - 1).Bb()
		}
		if f < FileH {
			neighbours |= (f + 1).Bb()
		}
		if own&neighbours == BbZero {
			s.MidGameValue -= config.Settings.Eval.PawnIsolatedMalus
			s.EndGameValue -= config.Settings.Eval.PawnIsolatedMalus
		}
	}

	bb := own
	for bb != BbZero {
		var sq Square
		sq, bb = bb.PopLsb()
		if isPassed(sq, enemy, us) {
			bonus := passedPawnBonus(sq, us)
			s.MidGameValue += bonus
			s.EndGameValue += bonus * 2
		}
	}
	return s
}

// isPassed reports whether the pawn on sq has no enemy pawn able to
// stop or capture it on its own file or either adjacent file, ahead
// of it from us's perspective.
func isPassed(sq Square, enemy Bitboard, us Color) bool {
	file := sq.FileOf()
	files := file.Bb()
	if file > FileA {
		files |= (file - 1).Bb()
	}
	if file < FileH {
		files |= (file + 1).Bb()
	}

	var ahead Bitboard
	if us == White {
		for r := sq.RankOf() + 1; r.IsValid(); r++ {
			ahead |= r.Bb()
		}
	} else {
		for r := sq.RankOf(); r > Rank1; {
			r--
			ahead |= r.Bb()
		}
	}
	return enemy&files&ahead == BbZero
}

// passedPawnBonus scales the base passed-pawn bonus by how close the
// pawn is to promotion.
func passedPawnBonus(sq Square, us Color) int {
	rank := int(sq.RankOf())
	steps := rank
	if us == Black {
		steps = 7 - rank
	}
	return steps * config.Settings.Eval.PawnPassedBonus
}
