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

// Package position owns the one mutable entity the engine core has: the
// board state. It holds the piece bitboards, derived occupancy, side to
// move, castling rights, en-passant square and Zobrist hash, and
// provides the incremental make/unmake operations every other package
// builds on.
package position

import (
	"strings"

	. "github.com/mbellarov/corvid/internal/types"
)

// MaxGameLength bounds the repetition/undo history a single game can
// accumulate; comfortably larger than any realistic game.
const MaxGameLength = 1024

// undoState is the snapshot pushed before every Make and popped by
// Unmake -- spec's "caller captures (piece_bb, occ, side, ep, castle,
// hash)" tuple, kept as an internal stack rather than left to call
// sites.
type undoState struct {
	pieceBb         [PieceLength]Bitboard
	occupied        [3]Bitboard
	sideToMove      Color
	castlingRights  CastlingRights
	enPassantSquare Square
	zobristKey      Key
	halfMoveClock   int
	move            Move
}

const (
	occWhite = 0
	occBlack = 1
	occAll   = 2
)

// Position is the single mutable board-state object the engine owns.
type Position struct {
	pieceBb  [PieceLength]Bitboard
	occupied [3]Bitboard

	sideToMove      Color
	castlingRights  CastlingRights
	enPassantSquare Square
	zobristKey      Key
	halfMoveClock   int
	fullMoveNumber  int

	history    [MaxGameLength]undoState
	historyTop int

	repetition [MaxGameLength]Key
	repTop     int
}

// NewPosition creates a Position at the standard chess starting setup.
func NewPosition() *Position {
	p := &Position{}
	_ = p.SetupFen(StartFen)
	return p
}

// NewPositionFen creates a Position from a FEN string, or the starting
// position plus an error if the FEN is malformed.
func NewPositionFen(fen string) (*Position, error) {
	p := &Position{}
	if err := p.SetupFen(fen); err != nil {
		return NewPosition(), err
	}
	return p, nil
}

// Copy returns an independent deep copy of p.
func (p *Position) Copy() *Position {
	c := *p
	return &c
}

// SideToMove returns the color on move.
func (p *Position) SideToMove() Color { return p.sideToMove }

// CastlingRightsMask returns the current castling-rights mask.
func (p *Position) CastlingRightsMask() CastlingRights { return p.castlingRights }

// EnPassantSquare returns the current en-passant target square, or
// SqNone.
func (p *Position) EnPassantSquare() Square { return p.enPassantSquare }

// ZobristKey returns the incrementally maintained Zobrist hash.
func (p *Position) ZobristKey() Key { return p.zobristKey }

// HalfMoveClock returns the 50-move-rule half-move counter.
func (p *Position) HalfMoveClock() int { return p.halfMoveClock }

// FullMoveNumber returns the FEN full-move counter.
func (p *Position) FullMoveNumber() int { return p.fullMoveNumber }

// Ply returns the number of half-moves made since the position was set
// up (the search-stack depth counter resets separately at search root).
func (p *Position) Ply() int { return p.historyTop }

// PieceOn returns the piece occupying sq, or PieceNone.
func (p *Position) PieceOn(sq Square) Piece {
	for pc := Piece(0); pc < PieceLength; pc++ {
		if p.pieceBb[pc].Has(sq) {
			return pc
		}
	}
	return PieceNone
}

// PiecesBb returns the bitboard of pieces of type pt and color c.
func (p *Position) PiecesBb(c Color, pt PieceType) Bitboard {
	return p.pieceBb[MakePiece(c, pt)]
}

// PieceBb returns the bitboard for the exact colored piece pc.
func (p *Position) PieceBb(pc Piece) Bitboard {
	return p.pieceBb[pc]
}

// OccupiedBb returns all squares occupied by color c.
func (p *Position) OccupiedBb(c Color) Bitboard {
	return p.occupied[c]
}

// OccupiedAll returns all occupied squares on the board.
func (p *Position) OccupiedAll() Bitboard {
	return p.occupied[occAll]
}

// KingSquare returns the square of color c's king.
func (p *Position) KingSquare(c Color) Square {
	return p.pieceBb[MakePiece(c, King)].Lsb()
}

// IsRepetition reports whether the current Zobrist key has already
// occurred at least count times earlier in the game history, counting
// only positions with the side to move currently on move (every other
// ply) since repetition requires returning to the same side-to-move
// position.
func (p *Position) IsRepetition(count int) bool {
	occurrences := 0
	for i := p.repTop - 3; i >= 0; i -= 2 {
		if p.repetition[i] == p.zobristKey {
			occurrences++
			if occurrences >= count {
				return true
			}
		}
	}
	return false
}

// recomputeZobrist rebuilds the hash from scratch; SetupFen uses it to
// seed the key that Make/Unmake then maintain incrementally.
func (p *Position) recomputeZobrist() Key {
	var k Key
	for pc := Piece(0); pc < PieceLength; pc++ {
		bb := p.pieceBb[pc]
		for bb != 0 {
			var sq Square
			sq, bb = bb.PopLsb()
			k ^= pieceKey[pc][sq]
		}
	}
	if p.enPassantSquare != SqNone {
		k ^= epKey[p.enPassantSquare]
	}
	k ^= castleKey[p.castlingRights]
	if p.sideToMove == Black {
		k ^= sideKey
	}
	return k
}

// String renders an ascii board (the "d" debug command).
func (p *Position) String() string {
	var sb strings.Builder
	for r := Rank8; ; r-- {
		sb.WriteString(r.String())
		sb.WriteString(" | ")
		for f := FileA; f <= FileH; f++ {
			pc := p.PieceOn(SquareOf(f, r))
			if pc == PieceNone {
				sb.WriteString(". ")
			} else {
				sb.WriteString(pc.Char() + " ")
			}
		}
		sb.WriteByte('\n')
		if r == Rank1 {
			break
		}
	}
	sb.WriteString("    ---------------\n")
	sb.WriteString("    a b c d e f g h\n")
	sb.WriteString("side to move: " + p.sideToMove.String() + "\n")
	sb.WriteString("castling:     " + p.castlingRights.String() + "\n")
	sb.WriteString("en passant:   " + p.enPassantSquare.String() + "\n")
	return sb.String()
}
