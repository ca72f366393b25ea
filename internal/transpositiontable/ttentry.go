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

package transpositiontable

import (
	. "github.com/mbellarov/corvid/internal/types"
)

// TtEntry is one slot of the transposition table. The move field is a
// full 32-bit types.Move (unlike the teacher's 16-bit packed Move)
// since this engine's move encoding doesn't leave spare bits to borrow;
// the entry is correspondingly 24 bytes (18 bytes of fields padded to
// the 8-byte alignment of the key) rather than 16.
type TtEntry struct {
	key   Key
	move  Move
	eval  int16
	value int16
	vmeta uint16
}

const (
	// TtEntrySize is the size in bytes of each TtEntry.
	TtEntrySize = 24

	ageMask    = uint16(0b0000_0000_0000_0111)
	vtypeMask  = uint16(0b0000_0000_0001_1000)
	vtypeShift = uint16(3)
	depthMask  = uint16(0b0000_1111_1110_0000)
	depthShift = uint16(5)
)

func (e *TtEntry) decreaseAge() {
	if e.Age() > 0 {
		e.vmeta--
	}
}

func (e *TtEntry) increaseAge() {
	if e.Age() < 7 {
		e.vmeta++
	}
}

// Key returns the full Zobrist key stored in this entry, used to
// detect hash collisions against the probing key.
func (e *TtEntry) Key() Key { return e.key }

// Move returns the best move found for this position, or MoveNone.
func (e *TtEntry) Move() Move { return e.move }

// Value returns the stored search value (not yet adjusted for mate
// distance from the root).
func (e *TtEntry) Value() Value { return Value(e.value) }

// Eval returns the stored static evaluation.
func (e *TtEntry) Eval() Value { return Value(e.eval) }

// Depth returns the search depth this entry was stored at.
func (e *TtEntry) Depth() int8 { return int8((e.vmeta & depthMask) >> depthShift) }

// Age returns the entry's age counter (0 = freshest).
func (e *TtEntry) Age() int8 { return int8(e.vmeta & ageMask) }

// Vtype returns whether Value() is exact or a search-window bound.
func (e *TtEntry) Vtype() ValueType { return ValueType((e.vmeta & vtypeMask) >> vtypeShift) }
