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

package types

import "strconv"

// Value is a centipawn evaluation or search score.
type Value int32

//noinspection GoUnusedConst
const (
	ValueZero     Value = 0
	ValueDraw     Value = 0
	ValueInf      Value = 20000
	ValueNA       Value = -ValueInf - 1
	ValueMate     Value = 19000
	ValueMateInMaxPly Value = ValueMate - 128
	ValueMinorMax Value = 10

	// MateThreshold: any |value| above this is "close enough to mate"
	// that TT entries need distance-to-mate adjustment (spec's
	// MATE_SCORE threshold).
	MateThreshold Value = ValueMateInMaxPly
)

// IsValid reports whether v is within the representable search range.
func (v Value) IsValid() bool {
	return v >= -ValueInf && v <= ValueInf
}

// IsCheckmateValue reports whether v represents a forced mate score.
func (v Value) IsCheckmateValue() bool {
	return v > MateThreshold || v < -MateThreshold
}

// String renders v as a UCI-style score: "mate N" for a forced mate N
// full moves away, otherwise the raw centipawn value.
func (v Value) String() string {
	if v.IsCheckmateValue() {
		pliesToMate := ValueMate - v
		if v < 0 {
			pliesToMate = -ValueMate - v
		}
		mateIn := (int(pliesToMate) + 1) / 2
		if v < 0 {
			mateIn = -mateIn
		}
		return "mate " + strconv.Itoa(mateIn)
	}
	return "cp " + strconv.Itoa(int(v))
}

// PieceTypeValue holds the material value of each piece type in
// centipawns, shared by opening and endgame tables where the evaluator
// does not differentiate.
var PieceTypeValue = [PtLength]Value{
	PtNone: 0,
	Pawn:   100,
	Knight: 320,
	Bishop: 330,
	Rook:   500,
	Queen:  900,
	King:   2000,
}

// GamePhaseValue is the per-piece contribution to the tapered-evaluation
// phase score, in the ratio queen=4x, rook=2x, bishop=knight=1x, scaled
// so that the full starting set of non-pawn material (2 queens, 4
// rooks, 4 bishops, 4 knights) sums to exactly PhaseMax.
var GamePhaseValue = [PtLength]Value{
	PtNone: 0,
	Pawn:   0,
	Knight: 258,
	Bishop: 258,
	Rook:   516,
	Queen:  1032,
	King:   0,
}

const (
	// PhaseMax is the non-pawn-material phase score of the starting
	// position: pure-opening threshold.
	PhaseMax Value = 6192
	// PhaseMin is the phase score at or below which the position is
	// treated as pure endgame for interpolation purposes.
	PhaseMin Value = 518
)
