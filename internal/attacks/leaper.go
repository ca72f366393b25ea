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

// Package attacks holds the precomputed, read-only attack tables that
// every other package (move generation, evaluation, search) consults:
// leaper tables for pawns/knights/kings and magic-hashed tables for
// rooks/bishops. All tables are built once in init() and never mutated
// afterwards.
package attacks

import (
	. "github.com/mbellarov/corvid/internal/types"
)

var pawnAttackTable [2][SqLength]Bitboard
var knightAttackTable [SqLength]Bitboard
var kingAttackTable [SqLength]Bitboard

func init() {
	initLeaperTables()
}

func initLeaperTables() {
	for sq := SqA1; sq < SqNone; sq++ {
		b := sq.Bb()

		// Pawns: diagonal captures only, one rank ahead per side.
		pawnAttackTable[White][sq] = b.ShiftNorthEast() | b.ShiftNorthWest()
		pawnAttackTable[Black][sq] = b.ShiftSouthEast() | b.ShiftSouthWest()

		// Knight: the eight L-shaped leaps, masked against file wrap.
		var n Bitboard
		n |= (b & NotFileGH) << 10
		n |= (b & NotFileH) << 17
		n |= (b & NotFileA) << 15
		n |= (b & NotFileAB) << 6
		n |= (b & NotFileAB) >> 10
		n |= (b & NotFileA) >> 17
		n |= (b & NotFileH) >> 15
		n |= (b & NotFileGH) >> 6
		knightAttackTable[sq] = n

		// King: the eight adjacent squares, masked against file wrap.
		var k Bitboard
		k |= b.ShiftNorth() | b.ShiftSouth() | b.ShiftEast() | b.ShiftWest()
		k |= b.ShiftNorthEast() | b.ShiftNorthWest() | b.ShiftSouthEast() | b.ShiftSouthWest()
		kingAttackTable[sq] = k
	}
}

// PawnAttacks returns the squares a pawn of color c on sq attacks.
func PawnAttacks(c Color, sq Square) Bitboard {
	return pawnAttackTable[c][sq]
}

// KnightAttacks returns the knight leaper attack set for sq.
func KnightAttacks(sq Square) Bitboard {
	return knightAttackTable[sq]
}

// KingAttacks returns the king leaper attack set for sq.
func KingAttacks(sq Square) Bitboard {
	return kingAttackTable[sq]
}
