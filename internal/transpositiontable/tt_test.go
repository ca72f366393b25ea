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

package transpositiontable

import (
	"os"
	"path"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/mbellarov/corvid/internal/types"
)

func init() {
	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "../..")
	_ = os.Chdir(dir)
}

func TestResizeProducesPowerOfTwoCapacity(t *testing.T) {
	tt := NewTtTable(8)
	assert.Greater(t, tt.maxNumberOfEntries, uint64(0))
	assert.Equal(t, tt.maxNumberOfEntries&(tt.maxNumberOfEntries-1), uint64(0))
}

func TestPutAndProbeRoundTrip(t *testing.T) {
	tt := NewTtTable(8)
	m := NewMove(SqE2, SqE4, WhitePawn, PieceNone, MoveFlags{DoublePush: true})
	tt.Put(Key(12345), m, 4, Value(37), ValueTypeExact, Value(40))

	e := tt.Probe(Key(12345))
	if assert.NotNil(t, e) {
		assert.Equal(t, m, e.Move())
		assert.Equal(t, Value(37), e.Value())
		assert.Equal(t, int8(4), e.Depth())
		assert.Equal(t, ValueTypeExact, e.Vtype())
	}
}

func TestProbeMissReturnsNil(t *testing.T) {
	tt := NewTtTable(8)
	assert.Nil(t, tt.Probe(Key(999)))
}

func TestDeeperEntryOverwritesShallowerOnCollision(t *testing.T) {
	tt := NewTtTable(1)
	// Force a collision: reuse the same hash slot by reconstructing a
	// second key that maps to the same bucket.
	key1 := Key(1)
	key2 := Key(1) + Key(tt.maxNumberOfEntries)
	m := NewMove(SqA2, SqA4, WhitePawn, PieceNone, MoveFlags{DoublePush: true})

	tt.Put(key1, m, 2, Value(10), ValueTypeExact, Value(10))
	tt.Put(key2, m, 6, Value(20), ValueTypeExact, Value(20))

	e := tt.Probe(key2)
	if assert.NotNil(t, e) {
		assert.Equal(t, Value(20), e.Value())
	}
}

func TestClearEmptiesTable(t *testing.T) {
	tt := NewTtTable(8)
	m := NewMove(SqE2, SqE4, WhitePawn, PieceNone, MoveFlags{DoublePush: true})
	tt.Put(Key(1), m, 1, Value(1), ValueTypeExact, Value(1))
	assert.Equal(t, uint64(1), tt.Len())
	tt.Clear()
	assert.Equal(t, uint64(0), tt.Len())
	assert.Nil(t, tt.Probe(Key(1)))
}

func TestMateDistanceAdjustmentRoundTrips(t *testing.T) {
	stored := ValueToTt(ValueMate-3, 5)
	assert.Equal(t, ValueMate-3+5, stored)
	assert.Equal(t, ValueMate-3, ValueFromTt(stored, 5))
}

func TestMateDistanceAdjustmentIgnoresNonMateValues(t *testing.T) {
	assert.Equal(t, Value(37), ValueToTt(Value(37), 9))
	assert.Equal(t, Value(37), ValueFromTt(Value(37), 9))
}
