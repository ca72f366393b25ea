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

// File represents a chess board file a-h.
type File uint8

//noinspection GoUnusedConst
const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
	FileNone
)

// IsValid reports whether f is one of the eight real files.
func (f File) IsValid() bool {
	return f < FileNone
}

const fileLabels = "abcdefgh"

// Bb returns the full-file Bitboard for f.
func (f File) Bb() Bitboard {
	return fileBb[f]
}

// String renders f as a lowercase letter, or "-" if invalid.
func (f File) String() string {
	if !f.IsValid() {
		return "-"
	}
	return string(fileLabels[f])
}

// Rank represents a chess board rank 1-8.
type Rank uint8

//noinspection GoUnusedConst
const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
	RankNone
)

// IsValid reports whether r is one of the eight real ranks.
func (r Rank) IsValid() bool {
	return r < RankNone
}

const rankLabels = "12345678"

// Bb returns the full-rank Bitboard for r.
func (r Rank) Bb() Bitboard {
	return rankBb[r]
}

// String renders r as a digit, or "-" if invalid.
func (r Rank) String() string {
	if !r.IsValid() {
		return "-"
	}
	return string(rankLabels[r])
}

var fileBb [8]Bitboard
var rankBb [8]Bitboard

func init() {
	for f := FileA; f <= FileH; f++ {
		var bb Bitboard
		for r := Rank1; r <= Rank8; r++ {
			bb |= SquareOf(f, r).Bb()
		}
		fileBb[f] = bb
	}
	for r := Rank1; r <= Rank8; r++ {
		var bb Bitboard
		for f := FileA; f <= FileH; f++ {
			bb |= SquareOf(f, r).Bb()
		}
		rankBb[r] = bb
	}
}
