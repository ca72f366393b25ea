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

// Package history provides the move-ordering data search maintains
// between nodes: a history-heuristic counter per (color, from, to)
// rewarding quiet moves that have raised alpha, consulted by
// movegen's on-demand quiet-move stage.
package history

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	. "github.com/mbellarov/corvid/internal/types"
)

var out = message.NewPrinter(language.German)

// History accumulates move-ordering statistics across a search.
type History struct {
	counter [2][SqLength][SqLength]int64
}

// NewHistory returns an empty History.
func NewHistory() *History {
	return &History{}
}

// Update rewards a quiet move that raised alpha at the given depth;
// the bonus is the depth itself, so success in deeper searches earns
// more.
func (h *History) Update(c Color, from, to Square, depth int) {
	bonus := int64(depth)
	h.counter[c][from][to] += bonus
	if h.counter[c][from][to] > 1<<30 {
		h.age()
	}
}

// age halves every counter, keeping values from overflowing across a
// long search without discarding their relative ordering.
func (h *History) age() {
	for c := White; c <= Black; c++ {
		for f := SqA1; f < SqNone; f++ {
			for t := SqA1; t < SqNone; t++ {
				h.counter[c][f][t] /= 2
			}
		}
	}
}

// Value returns the current history score for a quiet (color, from,
// to) move, used directly as a move-ordering sort key.
func (h *History) Value(c Color, from, to Square) int32 {
	return int32(h.counter[c][from][to])
}

// Clear resets all counters, used between games.
func (h *History) Clear() {
	h.counter = [2][SqLength][SqLength]int64{}
}

func (h History) String() string {
	sb := strings.Builder{}
	for sf := SqA1; sf < SqNone; sf++ {
		for st := SqA1; st < SqNone; st++ {
			sb.WriteString(out.Sprintf("Move=%s%s: ", sf.String(), st.String()))
			for c := White; c <= Black; c++ {
				sb.WriteString(out.Sprintf("%s=%-7d ", c.String(), h.counter[c][sf][st]))
			}
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
