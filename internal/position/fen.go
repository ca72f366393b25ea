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
	"fmt"
	"strconv"
	"strings"

	. "github.com/mbellarov/corvid/internal/types"
)

// StartFen is the standard chess starting position.
const StartFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// SetupFen resets p to the position described by fen, a standard six-field
// FEN string (piece placement, side to move, castling rights, en-passant
// target, halfmove clock, fullmove number). The last two fields are
// optional and default to 0 and 1.
func (p *Position) SetupFen(fen string) error {
	fields := strings.Fields(strings.TrimSpace(fen))
	if len(fields) < 4 {
		return fmt.Errorf("position: malformed fen %q: need at least 4 fields", fen)
	}

	*p = Position{}

	if err := p.setupPlacement(fields[0]); err != nil {
		return err
	}

	switch fields[1] {
	case "w":
		p.sideToMove = White
	case "b":
		p.sideToMove = Black
	default:
		return fmt.Errorf("position: malformed fen %q: bad side to move %q", fen, fields[1])
	}

	p.castlingRights = CastleNone
	if fields[2] != "-" {
		for _, c := range fields[2] {
			switch c {
			case 'K':
				p.castlingRights |= CastleWhiteKingside
			case 'Q':
				p.castlingRights |= CastleWhiteQueenside
			case 'k':
				p.castlingRights |= CastleBlackKingside
			case 'q':
				p.castlingRights |= CastleBlackQueenside
			default:
				return fmt.Errorf("position: malformed fen %q: bad castling field %q", fen, fields[2])
			}
		}
	}

	p.enPassantSquare = SqNone
	if fields[3] != "-" {
		sq := MakeSquare(fields[3])
		if sq == SqNone {
			return fmt.Errorf("position: malformed fen %q: bad en passant field %q", fen, fields[3])
		}
		p.enPassantSquare = sq
	}

	p.halfMoveClock = 0
	if len(fields) >= 5 {
		n, err := strconv.Atoi(fields[4])
		if err != nil {
			return fmt.Errorf("position: malformed fen %q: bad halfmove clock %q", fen, fields[4])
		}
		p.halfMoveClock = n
	}

	p.fullMoveNumber = 1
	if len(fields) >= 6 {
		n, err := strconv.Atoi(fields[5])
		if err != nil {
			return fmt.Errorf("position: malformed fen %q: bad fullmove number %q", fen, fields[5])
		}
		p.fullMoveNumber = n
	}

	p.recomputeOccupancy()
	p.zobristKey = p.recomputeZobrist()
	p.repetition[0] = p.zobristKey
	p.repTop = 1

	return nil
}

func (p *Position) setupPlacement(placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("position: malformed piece placement %q: need 8 ranks", placement)
	}
	for i, rankStr := range ranks {
		r := Rank8 - Rank(i)
		f := FileA
		for _, c := range rankStr {
			if c >= '1' && c <= '8' {
				f += File(c - '0')
				continue
			}
			if f > FileH {
				return fmt.Errorf("position: malformed piece placement %q: rank overflow", placement)
			}
			pc := PieceFromChar(byte(c))
			if pc == PieceNone {
				return fmt.Errorf("position: malformed piece placement %q: bad piece char %q", placement, c)
			}
			p.pieceBb[pc] = p.pieceBb[pc].Set(SquareOf(f, r))
			f++
		}
		if f != FileH+1 {
			return fmt.Errorf("position: malformed piece placement %q: rank %d has wrong length", placement, 8-i)
		}
	}
	return nil
}

// Fen renders the current position as a standard six-field FEN string.
func (p *Position) Fen() string {
	var sb strings.Builder
	for r := Rank8; ; r-- {
		empty := 0
		for f := FileA; f <= FileH; f++ {
			pc := p.PieceOn(SquareOf(f, r))
			if pc == PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(pc.Char())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r != Rank1 {
			sb.WriteByte('/')
		}
		if r == Rank1 {
			break
		}
	}

	sb.WriteByte(' ')
	if p.sideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	sb.WriteString(p.castlingRights.String())

	sb.WriteByte(' ')
	sb.WriteString(p.enPassantSquare.String())

	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.halfMoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.fullMoveNumber))

	return sb.String()
}
