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

package config

// searchConfiguration holds the knobs for the fixed search algorithm:
// quiescence, PV/killer/history move ordering, the transposition
// table, null-move pruning and late-move reductions. Unlike the
// teacher's search config this has no flags for RFP, IID, futility
// pruning, LMP, SEE-gated quiescence or counter-moves -- those
// techniques aren't part of this engine's fixed negamax contract.
type searchConfiguration struct {
	UseQuiescence bool

	UsePVS        bool
	UseKiller     bool
	UseAspiration bool

	UseTT  bool
	TTSize int

	UseNullMove  bool
	NmpReduction int

	UseLmr   bool
	LmrDepth int
}

func init() {
	Settings.Search.UseQuiescence = true

	Settings.Search.UsePVS = true
	Settings.Search.UseKiller = true
	Settings.Search.UseAspiration = true

	Settings.Search.UseTT = true
	Settings.Search.TTSize = 128

	Settings.Search.UseNullMove = true
	Settings.Search.NmpReduction = 2

	Settings.Search.UseLmr = true
	Settings.Search.LmrDepth = 3
}
