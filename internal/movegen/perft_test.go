//
// corvid - UCI chess engine in Go
//
// MIT License
//
// Copyright (c) 2020-2026 corvid contributors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package movegen

import (
	"testing"

	"github.com/mbellarov/corvid/internal/position"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Perft node counts for the standard starting position, depths 0-5,
// are a fixed and widely published reference: any correct legal move
// generator must reproduce them exactly.
func TestPerftStartingPosition(t *testing.T) {
	expected := []uint64{1, 20, 400, 8902, 197281, 4865609}
	p := position.NewPosition()
	for depth, want := range expected {
		got := Perft(p, depth)
		assert.Equal(t, want, got, "perft(%d) from starting position", depth)
	}
}

// Kiwipete is the standard second perft reference position, exercising
// castling, promotions and en passant that the starting position never
// reaches this shallow.
func TestPerftKiwipete(t *testing.T) {
	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	p, err := position.NewPositionFen(fen)
	require.NoError(t, err)
	assert.Equal(t, uint64(48), Perft(p, 1))
	assert.Equal(t, uint64(2039), Perft(p, 2))
	assert.Equal(t, uint64(97862), Perft(p, 3))
}

// Position 3 stresses en-passant-only move sets; it is checked here to
// depth 3.
func TestPerftPosition3(t *testing.T) {
	fen := "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	p, err := position.NewPositionFen(fen)
	require.NoError(t, err)
	assert.Equal(t, uint64(14), Perft(p, 1))
	assert.Equal(t, uint64(191), Perft(p, 2))
	assert.Equal(t, uint64(2812), Perft(p, 3))
}

func TestPerftUnmakeRestoresZobrist(t *testing.T) {
	p := position.NewPosition()
	g := NewMoveGen()
	before := p.ZobristKey()
	moves := g.GenerateLegalMoves(p, GenAll)
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		p.Make(m, position.AllMoves)
		p.Unmake()
		assert.Equal(t, before, p.ZobristKey(), "unmake(%s) must restore the hash exactly", m.StringUci())
	}
}
