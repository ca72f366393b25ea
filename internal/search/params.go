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
	"math"

	. "github.com/mbellarov/corvid/internal/types"
)

// This file holds the static, pre-computed search parameters: the LMR
// reduction table and the aspiration window. Unlike the teacher's
// params.go there are no LMP or futility-pruning margins -- those
// techniques aren't part of this engine's fixed negamax contract.

// lmr is a lookup table for late move reductions in the dimensions
// depth and moves searched.
var lmr [32][64]int

// LmrReduction returns the search depth reduction for LMR depended on
// depth and moves searched.
func LmrReduction(depth int, movesSearched int) int {
	if depth >= 32 {
		depth = 31
	}
	if movesSearched >= 64 {
		movesSearched = 63
	}
	return lmr[depth][movesSearched]
}

func init() {
	for i := 0; i < 32; i++ {
		for j := 0; j < 64; j++ {
			switch {
			case i <= 3:
				lmr[i][j] = 1
			case j <= 3:
				lmr[i][j] = 1
			default:
				lmr[i][j] = int(math.Round(((float64(i) * 0.7) * (float64(j) * 0.005)) + 1.0))
			}
		}
	}
}

// AspirationWindow is the fixed +/-50cp band the iterative-deepening
// loop re-searches around the previous iteration's score before
// falling back to a full-width window.
const AspirationWindow Value = 50

// MaxDepth bounds both the ply-indexed search arrays (move generators,
// PV lines, killers) and the deepest iteration of iterative deepening.
// The ply at which search returns the static evaluation instead of
// recursing further is maxSearchPly in alphabeta.go.
const MaxDepth = 128
