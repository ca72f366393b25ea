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

// Key is a Zobrist hash of a board position, shared by the position,
// transposition table and search packages.
type Key uint64

// ValueType classifies a stored search value against the alpha-beta
// window that produced it: an Exact score, or a bound that only proves
// the true value is at most (Alpha) or at least (Beta) the stored one.
type ValueType uint8

const (
	ValueTypeNone ValueType = iota
	ValueTypeExact
	ValueTypeAlpha
	ValueTypeBeta
)

// String renders t by name.
func (t ValueType) String() string {
	switch t {
	case ValueTypeExact:
		return "EXACT"
	case ValueTypeAlpha:
		return "ALPHA"
	case ValueTypeBeta:
		return "BETA"
	default:
		return "NONE"
	}
}
