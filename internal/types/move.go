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

import "strings"

// Move packs a chess move into the low 24 bits of a uint32:
//
//  [23]     castle flag
//  [22]     en-passant flag
//  [21]     double-push flag
//  [20]     capture flag
//  [19..16] promoted piece (0 if none)
//  [15..12] moving piece
//  [11..6]  target square
//  [5..0]   source square
//
// The upper 8 bits are unused and always zero; MoveNone (0) is not a
// valid move.
type Move uint32

// MoveNone is the zero value, never a legal move.
const MoveNone Move = 0

const (
	srcShift   = 0
	dstShift   = 6
	pieceShift = 12
	promShift  = 16

	captureBit     Move = 1 << 20
	doublePushBit  Move = 1 << 21
	enPassantBit   Move = 1 << 22
	castleBit      Move = 1 << 23

	sqMask    Move = 0x3F
	pieceMask Move = 0xF
)

// MoveFlags bundles the four boolean flags a move can carry.
type MoveFlags struct {
	Capture    bool
	DoublePush bool
	EnPassant  bool
	Castle     bool
}

// NewMove encodes a move from its constituent fields.
func NewMove(from, to Square, moving Piece, promoted Piece, flags MoveFlags) Move {
	m := Move(from)<<srcShift | Move(to)<<dstShift | Move(moving)<<pieceShift
	if promoted.IsValid() {
		m |= Move(promoted)<<promShift
	}
	if flags.Capture {
		m |= captureBit
	}
	if flags.DoublePush {
		m |= doublePushBit
	}
	if flags.EnPassant {
		m |= enPassantBit
	}
	if flags.Castle {
		m |= castleBit
	}
	return m
}

// From returns the source square.
func (m Move) From() Square { return Square(m>>srcShift) & Square(sqMask) }

// To returns the target square.
func (m Move) To() Square { return Square(m>>dstShift) & Square(sqMask) }

// MovingPiece returns the piece making the move.
func (m Move) MovingPiece() Piece { return Piece(m>>pieceShift) & Piece(pieceMask) }

// PromotedPiece returns the promoted-to piece, or PieceNone if this is
// not a promotion.
func (m Move) PromotedPiece() Piece {
	p := Piece(m>>promShift) & Piece(pieceMask)
	if p == 0 && !m.IsPromotion() {
		return PieceNone
	}
	return p
}

func (m Move) rawPromotedField() Move { return (m >> promShift) & pieceMask }

// IsCapture reports the capture flag.
func (m Move) IsCapture() bool { return m&captureBit != 0 }

// IsDoublePush reports the double pawn-push flag.
func (m Move) IsDoublePush() bool { return m&doublePushBit != 0 }

// IsEnPassant reports the en-passant flag.
func (m Move) IsEnPassant() bool { return m&enPassantBit != 0 }

// IsCastle reports the castle flag.
func (m Move) IsCastle() bool { return m&castleBit != 0 }

// IsPromotion reports whether a promoted piece is encoded.
func (m Move) IsPromotion() bool { return m.rawPromotedField() != 0 }

// IsValid reports whether m carries legal squares/piece fields; MoveNone
// is never valid.
func (m Move) IsValid() bool {
	if m == MoveNone {
		return false
	}
	if !m.From().IsValid() || !m.To().IsValid() || !m.MovingPiece().IsValid() {
		return false
	}
	if m.IsPromotion() && !m.PromotedPiece().IsValid() {
		return false
	}
	return true
}

// StringUci renders m in UCI long algebraic notation (e.g. "e2e4",
// "e7e8q").
func (m Move) StringUci() string {
	if m == MoveNone {
		return "0000"
	}
	var b strings.Builder
	b.WriteString(m.From().String())
	b.WriteString(m.To().String())
	if m.IsPromotion() {
		b.WriteString(strings.ToLower(m.PromotedPiece().TypeOf().Char()))
	}
	return b.String()
}

// String renders a human-readable debug form of m.
func (m Move) String() string {
	if m == MoveNone {
		return "Move(none)"
	}
	return "Move(" + m.StringUci() + ")"
}
