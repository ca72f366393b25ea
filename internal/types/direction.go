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

// Direction is one of the eight compass rays a piece can step along.
type Direction int8

//noinspection GoUnusedConst
const (
	North     Direction = 8
	East      Direction = 1
	South     Direction = -8
	West      Direction = -1
	NorthEast Direction = 9
	SouthEast Direction = -7
	SouthWest Direction = -9
	NorthWest Direction = 7
)

// AllDirections lists the eight directions in the fixed order used to
// index the precomputed sqTo table.
var AllDirections = [8]Direction{North, East, South, West, NorthEast, SouthEast, SouthWest, NorthWest}

func (d Direction) index() int {
	for i, v := range AllDirections {
		if v == d {
			return i
		}
	}
	return -1
}

// Color identifies the side to move or the side owning a piece.
type Color uint8

const (
	White Color = iota
	Black
	ColorNone
)

// IsValid reports whether c is White or Black.
func (c Color) IsValid() bool {
	return c == White || c == Black
}

// Flip returns the opposing color.
func (c Color) Flip() Color {
	return c ^ 1
}

// String renders c as "w" or "b".
func (c Color) String() string {
	if c == White {
		return "w"
	}
	if c == Black {
		return "b"
	}
	return "-"
}
