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

// Package moveslice provides growable containers for moves: a plain
// MoveSlice for move generation/perft, and a ScoredMoveSlice that pairs
// each move with an ordering value and sorts by it. Keeping the sort
// value out of types.Move itself (unlike the teacher's packed Move)
// keeps the 24-bit move encoding exact while still giving search the
// same insertion-sort move-ordering idiom.
package moveslice

import (
	"sort"
	"strings"

	. "github.com/mbellarov/corvid/internal/types"
)

// MoveSlice is a growable, reusable list of moves.
type MoveSlice []Move

// NewMoveSlice returns an empty MoveSlice with capacity reserved for a
// typical branching factor.
func NewMoveSlice() *MoveSlice {
	s := make(MoveSlice, 0, 64)
	return &s
}

// Clear empties the slice without releasing its backing array.
func (s *MoveSlice) Clear() { *s = (*s)[:0] }

// PushBack appends m.
func (s *MoveSlice) PushBack(m Move) { *s = append(*s, m) }

// Len returns the number of moves.
func (s *MoveSlice) Len() int { return len(*s) }

// At returns the move at index i.
func (s *MoveSlice) At(i int) Move { return (*s)[i] }

// StringUci renders the slice as a space-separated list of UCI long
// algebraic moves, the form used for "info currline" and PV reporting.
func (s MoveSlice) StringUci() string {
	parts := make([]string, len(s))
	for i, m := range s {
		parts[i] = m.StringUci()
	}
	return strings.Join(parts, " ")
}

// ScoredMove pairs a move with an ordering value, highest-first.
type ScoredMove struct {
	Move  Move
	Value int32
}

// ScoredMoveSlice is a growable list of ScoredMoves kept sortable by
// Value via sort.Stable so that equal-valued moves -- e.g. several
// unscored quiet moves -- keep their generation order.
type ScoredMoveSlice []ScoredMove

// NewScoredMoveSlice returns an empty ScoredMoveSlice.
func NewScoredMoveSlice() *ScoredMoveSlice {
	s := make(ScoredMoveSlice, 0, 64)
	return &s
}

// Clear empties the slice without releasing its backing array.
func (s *ScoredMoveSlice) Clear() { *s = (*s)[:0] }

// PushBack appends a scored move.
func (s *ScoredMoveSlice) PushBack(m Move, value int32) {
	*s = append(*s, ScoredMove{Move: m, Value: value})
}

// Len returns the number of moves.
func (s *ScoredMoveSlice) Len() int { return len(*s) }

// At returns the scored move at index i.
func (s *ScoredMoveSlice) At(i int) ScoredMove { return (*s)[i] }

// SetValue updates the ordering value of the scored move at index i.
func (s *ScoredMoveSlice) SetValue(i int, value int32) { (*s)[i].Value = value }

// SortByValue orders the slice highest-value-first.
func (s *ScoredMoveSlice) SortByValue() {
	sort.SliceStable(*s, func(i, j int) bool {
		return (*s)[i].Value > (*s)[j].Value
	})
}
