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

// evalConfiguration holds the toggles and tunable bonuses for the
// static evaluation: material and piece-square tables are always on,
// the remaining terms (pawn structure, mobility, rook file-openness,
// king shield) can each be switched off independently for testing.
type evalConfiguration struct {
	UsePawnEval bool
	UseMobility bool
	UseRookEval bool
	UseKingEval bool

	Tempo int

	MobilityBonusOpening int
	MobilityBonusEndgame int

	PawnDoubledMalus  int
	PawnIsolatedMalus int
	PawnPassedBonus   int

	RookOpenFileBonus     int
	RookSemiOpenFileBonus int

	KingShieldBonus int
}

func init() {
	Settings.Eval.UsePawnEval = true
	Settings.Eval.UseMobility = true
	Settings.Eval.UseRookEval = true
	Settings.Eval.UseKingEval = true

	Settings.Eval.Tempo = 15

	Settings.Eval.MobilityBonusOpening = 4
	Settings.Eval.MobilityBonusEndgame = 2

	Settings.Eval.PawnDoubledMalus = 10
	Settings.Eval.PawnIsolatedMalus = 15
	Settings.Eval.PawnPassedBonus = 20

	Settings.Eval.RookOpenFileBonus = 15
	Settings.Eval.RookSemiOpenFileBonus = 8

	Settings.Eval.KingShieldBonus = 10
}
