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

package movegen

import (
	"regexp"
	"strings"

	"github.com/mbellarov/corvid/internal/position"
	. "github.com/mbellarov/corvid/internal/types"
)

var regexUciMove = regexp.MustCompile("([a-h][1-8][a-h][1-8])([nbrqNBRQ])?")

// GetMoveFromUci matches uciMove against every legal move in p and
// returns the matching encoded Move, or MoveNone if there is no match.
// As this builds and compares strings for every legal move it is not
// efficient -- use only off the hot path (UCI command parsing).
func (g *MoveGen) GetMoveFromUci(p *position.Position, uciMove string) Move {
	matches := regexUciMove.FindStringSubmatch(uciMove)
	if matches == nil {
		return MoveNone
	}
	movePart := matches[1]
	promotionPart := ""
	if len(matches) == 3 {
		promotionPart = strings.ToLower(matches[2])
	}
	legal := g.GenerateLegalMoves(p, GenAll)
	for i := 0; i < legal.Len(); i++ {
		m := legal.At(i)
		if m.StringUci() == movePart+promotionPart {
			return m
		}
	}
	return MoveNone
}

var regexSanMove = regexp.MustCompile("([NBRQK])?([a-h])?([1-8])?x?([a-h][1-8]|O-O-O|O-O)(=?([NBRQ]))?([!?+#]*)?")

// GetMoveFromSan matches sanMove against every legal move in p and
// returns the matching encoded Move, or MoveNone if there is no match
// or the SAN is ambiguous between more than one legal move.
func (g *MoveGen) GetMoveFromSan(p *position.Position, sanMove string) Move {
	matches := regexSanMove.FindStringSubmatch(sanMove)
	if matches == nil {
		return MoveNone
	}

	pieceType := matches[1]
	disambFile := matches[2]
	disambRank := matches[3]
	toSquare := matches[4]
	promotion := matches[6]

	movesFound := 0
	found := MoveNone

	legal := g.GenerateLegalMoves(p, GenAll)
	for i := 0; i < legal.Len(); i++ {
		m := legal.At(i)

		if m.IsCastle() {
			var castlingString string
			switch m.To() {
			case SqG1, SqG8:
				castlingString = "O-O"
			case SqC1, SqC8:
				castlingString = "O-O-O"
			default:
				continue
			}
			if castlingString == toSquare {
				found = m
				movesFound++
			}
			continue
		}

		if m.To().String() != toSquare {
			continue
		}

		movingType := m.MovingPiece().TypeOf()
		movingChar := movingType.Char()
		if (len(pieceType) == 0 || movingChar != pieceType) &&
			(len(pieceType) != 0 || movingType != Pawn) {
			continue
		}

		if len(disambFile) != 0 && m.From().FileOf().String() != disambFile {
			continue
		}
		if len(disambRank) != 0 && m.From().RankOf().String() != disambRank {
			continue
		}

		if len(promotion) != 0 {
			if !m.IsPromotion() || m.PromotedPiece().TypeOf().Char() != promotion {
				continue
			}
		} else if m.IsPromotion() {
			continue
		}

		found = m
		movesFound++
	}

	if movesFound != 1 {
		return MoveNone
	}
	return found
}
