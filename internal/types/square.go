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

// Package types holds the fundamental value types shared by every other
// package: squares, files, ranks, pieces, colors, moves, bitboards and
// centipawn values. Nothing in here depends on board state.
package types

import "fmt"

// Square identifies one of the 64 squares of a chess board using a
// little-endian rank-file mapping: a1=0, h1=7, a8=56, h8=63. SqNone (64)
// is the sentinel for "no square".
type Square uint8

//noinspection GoUnusedConst
const (
	SqA1 Square = iota
	SqB1
	SqC1
	SqD1
	SqE1
	SqF1
	SqG1
	SqH1
	SqA2
	SqB2
	SqC2
	SqD2
	SqE2
	SqF2
	SqG2
	SqH2
	SqA3
	SqB3
	SqC3
	SqD3
	SqE3
	SqF3
	SqG3
	SqH3
	SqA4
	SqB4
	SqC4
	SqD4
	SqE4
	SqF4
	SqG4
	SqH4
	SqA5
	SqB5
	SqC5
	SqD5
	SqE5
	SqF5
	SqG5
	SqH5
	SqA6
	SqB6
	SqC6
	SqD6
	SqE6
	SqF6
	SqG6
	SqH6
	SqA7
	SqB7
	SqC7
	SqD7
	SqE7
	SqF7
	SqG7
	SqH7
	SqA8
	SqB8
	SqC8
	SqD8
	SqE8
	SqF8
	SqG8
	SqH8
	SqNone // 64
	SqLength = 64
)

// IsValid reports whether sq is one of the 64 real board squares.
func (sq Square) IsValid() bool {
	return sq < SqNone
}

// FileOf returns the file of sq.
func (sq Square) FileOf() File {
	return File(sq & 7)
}

// RankOf returns the rank of sq.
func (sq Square) RankOf() Rank {
	return Rank(sq >> 3)
}

// Bb returns the single-bit Bitboard for sq.
func (sq Square) Bb() Bitboard {
	return sqBb[sq]
}

// MakeSquare parses a two-character square string (e.g. "e4") and
// returns SqNone if it is not a valid square.
func MakeSquare(s string) Square {
	if len(s) != 2 {
		return SqNone
	}
	file := File(s[0] - 'a')
	rank := Rank(s[1] - '1')
	if !file.IsValid() || !rank.IsValid() {
		return SqNone
	}
	return SquareOf(file, rank)
}

// SquareOf builds a Square from a file and rank, or SqNone if either is invalid.
func SquareOf(f File, r Rank) Square {
	if !f.IsValid() || !r.IsValid() {
		return SqNone
	}
	return Square(int(r)<<3 + int(f))
}

// To returns the square reached by stepping one unit in direction d from
// sq, or SqNone if that step would leave the board.
func (sq Square) To(d Direction) Square {
	idx := d.index()
	if idx < 0 {
		panic(fmt.Sprintf("invalid direction %d", d))
	}
	return sqTo[sq][idx]
}

// Mirror returns the square obtained by flipping sq's rank only
// (file unchanged). Used to index black piece-square tables from a
// white-oriented table: sq XOR 56.
func (sq Square) Mirror() Square {
	return sq ^ 56
}

// String renders sq as file+rank (e.g. "e4"), or "-" if invalid.
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return sq.FileOf().String() + sq.RankOf().String()
}

var sqBb [SqLength]Bitboard
var sqTo [SqLength][8]Square

func init() {
	for sq := SqA1; sq < SqNone; sq++ {
		sqBb[sq] = Bitboard(1) << uint(sq)
	}
	for sq := SqA1; sq < SqNone; sq++ {
		for i, d := range AllDirections {
			sqTo[sq][i] = sq.step(d)
		}
	}
}

// step computes the raw neighbor in direction d, respecting file-edge
// wraparound; used only to build the sqTo precomputed table.
func (sq Square) step(d Direction) Square {
	switch d {
	case North:
		if sq.RankOf() == Rank8 {
			return SqNone
		}
		return sq + 8
	case South:
		if sq.RankOf() == Rank1 {
			return SqNone
		}
		return sq - 8
	case East:
		if sq.FileOf() == FileH {
			return SqNone
		}
		return sq + 1
	case West:
		if sq.FileOf() == FileA {
			return SqNone
		}
		return sq - 1
	case NorthEast:
		if sq.FileOf() == FileH || sq.RankOf() == Rank8 {
			return SqNone
		}
		return sq + 9
	case SouthEast:
		if sq.FileOf() == FileH || sq.RankOf() == Rank1 {
			return SqNone
		}
		return sq - 7
	case SouthWest:
		if sq.FileOf() == FileA || sq.RankOf() == Rank1 {
			return SqNone
		}
		return sq - 9
	case NorthWest:
		if sq.FileOf() == FileA || sq.RankOf() == Rank8 {
			return SqNone
		}
		return sq + 7
	default:
		panic(fmt.Sprintf("invalid direction %d", d))
	}
}
