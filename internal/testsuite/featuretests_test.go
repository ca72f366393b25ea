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

package testsuite

import (
	"testing"
	"time"

	"github.com/mbellarov/corvid/internal/config"
)

// TestFeatureTests runs every EPD file in a folder through RunTests and
// prints the combined report. It toggles the search/eval switches this
// engine actually carries (see searchconfig.go/evalconfig.go) rather
// than the teacher's larger knob set.
func TestFeatureTests(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test in short mode.")
	}

	searchTime := 200 * time.Millisecond
	searchDepth := 0

	config.Settings.Search.UseQuiescence = true
	config.Settings.Search.UseTT = true
	config.Settings.Search.TTSize = 64
	config.Settings.Search.UsePVS = true
	config.Settings.Search.UseAspiration = true
	config.Settings.Search.UseKiller = true
	config.Settings.Search.UseNullMove = true
	config.Settings.Search.NmpReduction = 2
	config.Settings.Search.UseLmr = true
	config.Settings.Search.LmrDepth = 3

	config.Settings.Eval.UsePawnEval = true
	config.Settings.Eval.UseMobility = true
	config.Settings.Eval.UseRookEval = true
	config.Settings.Eval.UseKingEval = true

	folder := "test/testdata/featuretests/"

	out.Println(FeatureTests(folder, searchTime, searchDepth))
}
