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
	. "github.com/mbellarov/corvid/internal/types"
)

// zobristRand is the xorshift64star generator used to seed the Zobrist
// key tables, grounded on Sebastiano Vigna's public-domain xorshift64*
// generator (the same family the teacher engine uses for both its
// Zobrist keys and its magic-number search).
type zobristRand struct {
	s uint64
}

func (r *zobristRand) rand64() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}

var (
	pieceKey  [PieceLength][SqLength]Key
	epKey     [SqLength]Key
	castleKey [16]Key
	sideKey   Key
)

// zobristSeed is fixed so the key table -- and therefore every hash --
// is identical across runs and across machines, which the determinism
// testable property (two identical `go depth N` searches must return
// the same move) depends on.
const zobristSeed uint64 = 5489

func init() {
	r := zobristRand{s: zobristSeed}
	for pc := Piece(0); pc < PieceLength; pc++ {
		for sq := SqA1; sq < SqNone; sq++ {
			pieceKey[pc][sq] = Key(r.rand64())
		}
	}
	for sq := SqA1; sq < SqNone; sq++ {
		epKey[sq] = Key(r.rand64())
	}
	for i := range castleKey {
		castleKey[i] = Key(r.rand64())
	}
	sideKey = Key(r.rand64())
}
