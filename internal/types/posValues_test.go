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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPstValue(t *testing.T) {
	assert.Equal(t, Value(-30), PosMidValue(WhitePawn, SqE2))
	assert.Equal(t, Value(10), PosEndValue(WhitePawn, SqE2))

	s := PstValue(WhitePawn, SqE2)
	assert.Equal(t, Score{MidGameValue: -30, EndGameValue: 10}, s)
	assert.Equal(t, Value(-30), s.ValueFromScore(1.0))
	assert.Equal(t, Value(10), s.ValueFromScore(0.0))
	assert.Equal(t, Value(-10), s.ValueFromScore(0.5))

	// Black reads the table directly, without the point-mirror White uses.
	assert.Equal(t, PstValue(BlackPawn, SqE7), PstValue(WhitePawn, SqE2))
}
