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

package position

import (
	"github.com/mbellarov/corvid/internal/assert"
	"github.com/mbellarov/corvid/internal/attacks"
	. "github.com/mbellarov/corvid/internal/types"
)

// MakeMode selects whether Make accepts any pseudo-legal move or only
// captures (the quiescence-search mode).
type MakeMode int

const (
	AllMoves MakeMode = iota
	OnlyCaptures
)

// Make mutates the position by playing m. In OnlyCaptures mode a
// non-capture move is rejected and the position is left untouched. The
// caller is responsible for having generated m from this exact
// position; Make does not itself validate legality (see IsLegalMove).
func (p *Position) Make(m Move, mode MakeMode) bool {
	if mode == OnlyCaptures && !m.IsCapture() {
		return false
	}

	p.pushHistory(m)

	us := p.sideToMove
	them := us.Flip()
	from := m.From()
	to := m.To()
	moving := m.MovingPiece()

	if assert.DEBUG {
		assert.Assert(p.pieceBb[moving].Has(from), "Make: no %s on %s for move %s", moving, from, m)
		assert.Assert(moving.ColorOf() == us, "Make: moving piece %s does not belong to side to move", moving)
	}

	// 1. Move the piece on its own bitboard.
	p.removePiece(moving, from)
	p.putPiece(moving, to)

	// 2. Capture (ignoring en passant, handled separately in step 4).
	// The piece just placed at step 1 shares this square now, so the
	// captured piece must be found among them's bitboards specifically
	// rather than via a generic PieceOn(to) scan.
	if m.IsCapture() && !m.IsEnPassant() {
		for pt := Pawn; pt <= King; pt++ {
			captured := MakePiece(them, pt)
			if p.pieceBb[captured].Has(to) {
				if assert.DEBUG {
					assert.Assert(pt != King, "Make: king capture on %s by move %s", to, m)
				}
				p.removePiece(captured, to)
				break
			}
		}
	}

	// 3. Promotion.
	if m.IsPromotion() {
		p.removePiece(moving, to)
		p.putPiece(m.PromotedPiece(), to)
	}

	// 4. En passant.
	if m.IsEnPassant() {
		var capturedSq Square
		if us == White {
			capturedSq = to.To(South)
		} else {
			capturedSq = to.To(North)
		}
		p.removePiece(MakePiece(them, Pawn), capturedSq)
	}

	// 5. Clear ep, then set it if this was a double push.
	if p.enPassantSquare != SqNone {
		p.zobristKey ^= epKey[p.enPassantSquare]
		p.enPassantSquare = SqNone
	}
	if m.IsDoublePush() {
		var jumped Square
		if us == White {
			jumped = from.To(North)
		} else {
			jumped = from.To(South)
		}
		p.enPassantSquare = jumped
		p.zobristKey ^= epKey[jumped]
	}

	// 6. Castling: relocate the rook.
	if m.IsCastle() {
		rookFrom, rookTo := castleRookSquares(to)
		rook := MakePiece(us, Rook)
		p.removePiece(rook, rookFrom)
		p.putPiece(rook, rookTo)
	}

	// 7. Update castling rights.
	oldRights := p.castlingRights
	newRights := oldRights &^ (CastlingRightsLost(from) | CastlingRightsLost(to))
	if newRights != oldRights {
		p.zobristKey ^= castleKey[oldRights]
		p.zobristKey ^= castleKey[newRights]
		p.castlingRights = newRights
	}

	// 8. Recompute occupancy, flip side to move.
	p.recomputeOccupancy()
	p.sideToMove = them
	p.zobristKey ^= sideKey

	// Halfmove clock / fullmove number / repetition bookkeeping.
	if moving.TypeOf() == Pawn || m.IsCapture() {
		p.halfMoveClock = 0
	} else {
		p.halfMoveClock++
	}
	if us == Black {
		p.fullMoveNumber++
	}
	p.repetition[p.repTop] = p.zobristKey
	p.repTop++

	return true
}

// Unmake reverses the most recent Make, restoring every field
// bit-for-bit via the snapshot pushed beforehand.
func (p *Position) Unmake() {
	p.repTop--
	p.historyTop--
	s := &p.history[p.historyTop]
	p.pieceBb = s.pieceBb
	p.occupied = s.occupied
	p.sideToMove = s.sideToMove
	p.castlingRights = s.castlingRights
	p.enPassantSquare = s.enPassantSquare
	p.zobristKey = s.zobristKey
	p.halfMoveClock = s.halfMoveClock
	if p.sideToMove == Black {
		p.fullMoveNumber--
	}
}

// MakeNullMove plays a null move: no piece moves, only side to move
// flips and the en-passant square (if any) is cleared, exactly the
// pruning device spec's null-move search step needs. Unmake() reverses
// it the same way it reverses a real move, via the pushed snapshot.
func (p *Position) MakeNullMove() {
	p.pushHistory(MoveNone)
	if p.enPassantSquare != SqNone {
		p.zobristKey ^= epKey[p.enPassantSquare]
		p.enPassantSquare = SqNone
	}
	if p.sideToMove == Black {
		p.fullMoveNumber++
	}
	p.sideToMove = p.sideToMove.Flip()
	p.zobristKey ^= sideKey
	p.repetition[p.repTop] = p.zobristKey
	p.repTop++
}

// UnmakeNullMove reverses the most recent MakeNullMove.
func (p *Position) UnmakeNullMove() {
	p.Unmake()
}

func (p *Position) pushHistory(m Move) {
	s := &p.history[p.historyTop]
	s.pieceBb = p.pieceBb
	s.occupied = p.occupied
	s.sideToMove = p.sideToMove
	s.castlingRights = p.castlingRights
	s.enPassantSquare = p.enPassantSquare
	s.zobristKey = p.zobristKey
	s.halfMoveClock = p.halfMoveClock
	s.move = m
	p.historyTop++
}

func (p *Position) putPiece(pc Piece, sq Square) {
	p.pieceBb[pc] = p.pieceBb[pc].Set(sq)
	p.zobristKey ^= pieceKey[pc][sq]
}

func (p *Position) removePiece(pc Piece, sq Square) {
	p.pieceBb[pc] = p.pieceBb[pc].Clear(sq)
	p.zobristKey ^= pieceKey[pc][sq]
}

func (p *Position) recomputeOccupancy() {
	var w, b Bitboard
	for pt := Pawn; pt <= King; pt++ {
		w |= p.pieceBb[MakePiece(White, pt)]
		b |= p.pieceBb[MakePiece(Black, pt)]
	}
	p.occupied[occWhite] = w
	p.occupied[occBlack] = b
	p.occupied[occAll] = w | b
}

// castleRookSquares maps a castling king's target square to the rook's
// source and target squares.
func castleRookSquares(kingTo Square) (from, to Square) {
	switch kingTo {
	case SqG1:
		return SqH1, SqF1
	case SqC1:
		return SqA1, SqD1
	case SqG8:
		return SqH8, SqF8
	case SqC8:
		return SqA8, SqD8
	default:
		return SqNone, SqNone
	}
}

// IsAttacked reports whether sq is attacked by any piece of color by,
// on the current occupancy.
func (p *Position) IsAttacked(sq Square, by Color) bool {
	occ := p.OccupiedAll()
	if attacks.PawnAttacks(by.Flip(), sq)&p.PiecesBb(by, Pawn) != 0 {
		return true
	}
	if attacks.KnightAttacks(sq)&p.PiecesBb(by, Knight) != 0 {
		return true
	}
	if attacks.KingAttacks(sq)&p.PiecesBb(by, King) != 0 {
		return true
	}
	rq := p.PiecesBb(by, Rook) | p.PiecesBb(by, Queen)
	if attacks.RookAttacks(sq, occ)&rq != 0 {
		return true
	}
	bq := p.PiecesBb(by, Bishop) | p.PiecesBb(by, Queen)
	if attacks.BishopAttacks(sq, occ)&bq != 0 {
		return true
	}
	return false
}

// InCheck reports whether the side to move's king is currently attacked.
func (p *Position) InCheck() bool {
	return p.IsAttacked(p.KingSquare(p.sideToMove), p.sideToMove.Flip())
}

// IsLegalMove reports whether m, played from the current position,
// leaves the mover's own king safe. Castling additionally requires the
// king's start square and every square it crosses to be unattacked.
//
// This realizes spec's "generate pseudo-legal then filter" contract by
// actually making and unmaking the move and re-testing for check --
// semantically equivalent to a simulated-bitboard pin test, and
// considerably simpler to get right.
func (p *Position) IsLegalMove(m Move) bool {
	us := p.sideToMove
	if m.IsCastle() {
		if p.InCheck() {
			return false
		}
		from := m.From()
		to := m.To()
		step := East
		if to < from {
			step = West
		}
		for sq := from; ; {
			next := sq.To(step)
			if p.IsAttacked(sq, us.Flip()) {
				return false
			}
			if sq == to {
				break
			}
			sq = next
		}
	}
	p.Make(m, AllMoves)
	legal := !p.IsAttacked(p.KingSquare(us), us.Flip())
	p.Unmake()
	return legal
}
