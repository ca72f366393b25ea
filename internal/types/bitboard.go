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

import (
	"math/bits"
	"strings"
)

// Bitboard is a 64-bit set of squares, one bit per square.
type Bitboard uint64

const BbZero Bitboard = 0
const BbAll Bitboard = 0xFFFFFFFFFFFFFFFF

// File-edge masks used to suppress wraparound when shifting bitboards
// horizontally (leaper attacks, pawn pushes/captures).
var (
	NotFileA  Bitboard
	NotFileH  Bitboard
	NotFileAB Bitboard
	NotFileGH Bitboard
)

func init() {
	NotFileA = ^fileBb[FileA]
	NotFileH = ^fileBb[FileH]
	NotFileAB = ^(fileBb[FileA] | fileBb[FileB])
	NotFileGH = ^(fileBb[FileG] | fileBb[FileH])
}

// PopCount returns the number of set bits.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// Lsb returns the square of the least-significant set bit, or SqNone if
// b is empty.
func (b Bitboard) Lsb() Square {
	if b == 0 {
		return SqNone
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// PopLsb returns the least-significant set square and the bitboard with
// that bit cleared.
func (b Bitboard) PopLsb() (Square, Bitboard) {
	sq := b.Lsb()
	return sq, b & (b - 1)
}

// Has reports whether sq is set in b.
func (b Bitboard) Has(sq Square) bool {
	return b&sq.Bb() != 0
}

// Set returns b with sq set.
func (b Bitboard) Set(sq Square) Bitboard {
	return b | sq.Bb()
}

// Clear returns b with sq cleared.
func (b Bitboard) Clear(sq Square) Bitboard {
	return b &^ sq.Bb()
}

// ShiftNorth/-South/-East/-West and the four diagonal shifts move the
// whole set one step, masking away squares that would wrap the board
// edge.
func (b Bitboard) ShiftNorth() Bitboard     { return b << 8 }
func (b Bitboard) ShiftSouth() Bitboard     { return b >> 8 }
func (b Bitboard) ShiftEast() Bitboard      { return (b & NotFileH) << 1 }
func (b Bitboard) ShiftWest() Bitboard      { return (b & NotFileA) >> 1 }
func (b Bitboard) ShiftNorthEast() Bitboard { return (b & NotFileH) << 9 }
func (b Bitboard) ShiftNorthWest() Bitboard { return (b & NotFileA) << 7 }
func (b Bitboard) ShiftSouthEast() Bitboard { return (b & NotFileH) >> 7 }
func (b Bitboard) ShiftSouthWest() Bitboard { return (b & NotFileA) >> 9 }

// String renders b as an 8x8 ascii board, rank 8 at the top, for the
// "d" command's debug board print.
func (b Bitboard) String() string {
	var sb strings.Builder
	for r := Rank8; ; r-- {
		for f := FileA; f <= FileH; f++ {
			sq := SquareOf(f, r)
			if b.Has(sq) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
			if f < FileH {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
		if r == Rank1 {
			break
		}
	}
	return sb.String()
}
