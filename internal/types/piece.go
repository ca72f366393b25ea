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

// PieceType identifies a kind of piece independent of color.
type PieceType uint8

//noinspection GoUnusedConst
const (
	PtNone PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	PtLength
)

// IsValid reports whether pt is one of the six real piece types.
func (pt PieceType) IsValid() bool {
	return pt >= Pawn && pt < PtLength
}

var pieceTypeChars = " PNBRQK"

// Char returns the uppercase algebraic letter for pt ("" for PtNone).
func (pt PieceType) Char() string {
	if !pt.IsValid() {
		return ""
	}
	return string(pieceTypeChars[pt])
}

// String renders pt by name.
func (pt PieceType) String() string {
	switch pt {
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return "NoPieceType"
	}
}

// Piece is one of the twelve colored pieces, ordered {WP,WN,WB,WR,WQ,WK,
// BP,BN,BB,BR,BQ,BK}. This ordinal order is load-bearing: it is used as
// an index into piece-keyed arrays (Zobrist keys, piece-square tables)
// and to derive color (piece >= BPawn means black).
type Piece uint8

//noinspection GoUnusedConst
const (
	WhitePawn Piece = iota
	WhiteKnight
	WhiteBishop
	WhiteRook
	WhiteQueen
	WhiteKing
	BlackPawn
	BlackKnight
	BlackBishop
	BlackRook
	BlackQueen
	BlackKing
	PieceNone
	PieceLength = 12
)

// MakePiece builds the colored Piece for a (color, type) pair.
func MakePiece(c Color, pt PieceType) Piece {
	if !c.IsValid() || !pt.IsValid() {
		return PieceNone
	}
	return Piece(c)*6 + Piece(pt-Pawn)
}

// IsValid reports whether p is one of the twelve real pieces.
func (p Piece) IsValid() bool {
	return p < PieceNone
}

// ColorOf returns the color owning p.
func (p Piece) ColorOf() Color {
	if p >= BlackPawn {
		return Black
	}
	return White
}

// TypeOf returns the piece type of p, independent of color.
func (p Piece) TypeOf() PieceType {
	if !p.IsValid() {
		return PtNone
	}
	return PieceType(p%6) + Pawn
}

var pieceChars = "PNBRQKpnbrqk"

// Char returns the single-letter FEN representation of p.
func (p Piece) Char() string {
	if !p.IsValid() {
		return "-"
	}
	return string(pieceChars[p])
}

// PieceFromChar parses a single FEN piece letter, or PieceNone if invalid.
func PieceFromChar(c byte) Piece {
	for i := 0; i < len(pieceChars); i++ {
		if pieceChars[i] == c {
			return Piece(i)
		}
	}
	return PieceNone
}

// String renders p by name (e.g. "White Knight").
func (p Piece) String() string {
	if !p.IsValid() {
		return "NoPiece"
	}
	color := "White"
	if p.ColorOf() == Black {
		color = "Black"
	}
	return color + " " + p.TypeOf().String()
}

// CastlingRights is a 4-bit mask over {white kingside, white queenside,
// black kingside, black queenside}.
type CastlingRights uint8

//noinspection GoUnusedConst
const (
	CastleWhiteKingside CastlingRights = 1 << iota
	CastleWhiteQueenside
	CastleBlackKingside
	CastleBlackQueenside

	CastleNone = CastlingRights(0)
	CastleAll  = CastleWhiteKingside | CastleWhiteQueenside | CastleBlackKingside | CastleBlackQueenside
)

// Has reports whether all bits of mask are set in c.
func (c CastlingRights) Has(mask CastlingRights) bool {
	return c&mask == mask
}

// String renders c in FEN castling-field notation ("-" if none).
func (c CastlingRights) String() string {
	if c == CastleNone {
		return "-"
	}
	s := ""
	if c.Has(CastleWhiteKingside) {
		s += "K"
	}
	if c.Has(CastleWhiteQueenside) {
		s += "Q"
	}
	if c.Has(CastleBlackKingside) {
		s += "k"
	}
	if c.Has(CastleBlackQueenside) {
		s += "q"
	}
	return s
}

// castlingRightsLost is the per-square table of rights that make()
// clears (AND-NOT) when a move's source or target square touches it:
// moving the king or a rook corner (or capturing on one) loses exactly
// the rights associated with that square, and nothing else.
var castlingRightsLost [SqLength]CastlingRights

func init() {
	// Default: a move touching any other square strips no rights.
	castlingRightsLost[SqE1] = CastleWhiteKingside | CastleWhiteQueenside
	castlingRightsLost[SqH1] = CastleWhiteKingside
	castlingRightsLost[SqA1] = CastleWhiteQueenside
	castlingRightsLost[SqE8] = CastleBlackKingside | CastleBlackQueenside
	castlingRightsLost[SqH8] = CastleBlackKingside
	castlingRightsLost[SqA8] = CastleBlackQueenside
}

// CastlingRightsLost returns the rights that a move touching sq (as
// source or target) removes.
func CastlingRightsLost(sq Square) CastlingRights {
	return castlingRightsLost[sq]
}
