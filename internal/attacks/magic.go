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

package attacks

import (
	. "github.com/mbellarov/corvid/internal/types"
)

// magic holds the fancy-magic-bitboard lookup data for one square: the
// relevant blocker mask, the multiplier, the post-multiply shift and
// the per-square slice into the shared attack table.
type magic struct {
	mask    Bitboard
	number  Bitboard
	shift   uint
	attacks []Bitboard
}

func (m *magic) index(occupied Bitboard) uint {
	occ := (occupied & m.mask) * m.number
	return uint(occ >> m.shift)
}

var rookMagics [SqLength]magic
var bishopMagics [SqLength]magic

var rookDirs = [4]Direction{North, South, East, West}
var bishopDirs = [4]Direction{NorthEast, NorthWest, SouthEast, SouthWest}

func init() {
	initMagics(&rookMagics, rookDirs)
	initMagics(&bishopMagics, bishopDirs)
}

// initMagics computes, for every square, a collision-free magic
// multiplier mapping any blocker subset of the square's relevant mask
// to the correct slider attack set. This is the randomized-search
// bootstrap spec.md §4.1 and §9 allow as an alternative to embedded
// constants: a fixed per-rank seed set makes it fully deterministic
// across runs, and it completes in well under a second at startup.
func initMagics(table *[SqLength]magic, dirs [4]Direction) {
	seeds := [8]uint64{728, 10316, 55013, 32803, 12281, 15100, 16645, 255}

	var occupancy [4096]Bitboard
	var reference [4096]Bitboard
	var epoch [4096]int

	for sq := SqA1; sq < SqNone; sq++ {
		edges := ((Rank1Bb | Rank8Bb) &^ sq.RankOf().Bb()) | ((FileABb | FileHBb) &^ sq.FileOf().Bb())

		m := &table[sq]
		m.mask = slidingAttack(dirs, sq, BbZero) &^ edges
		m.shift = 64 - uint(m.mask.PopCount())

		size := 0
		var b Bitboard
		for {
			occupancy[size] = b
			reference[size] = slidingAttack(dirs, sq, b)
			size++
			b = (b - m.mask) & m.mask
			if b == 0 {
				break
			}
		}
		m.attacks = make([]Bitboard, size)

		rng := magicRand{s: seeds[sq.RankOf()]}
		cnt := 0
		for i := 0; i < size; {
			var candidate Bitboard
			for {
				candidate = Bitboard(rng.sparse())
				if ((candidate * m.mask) >> 56).PopCount() < 6 {
					break
				}
			}
			m.number = candidate
			cnt++
			for i = 0; i < size; i++ {
				idx := m.index(occupancy[i])
				if epoch[idx] < cnt {
					epoch[idx] = cnt
					m.attacks[idx] = reference[i]
				} else if m.attacks[idx] != reference[i] {
					break
				}
			}
		}
	}
}

// magicRand is the xorshift64star generator used to search for magic
// multipliers, grounded on Sebastiano Vigna's public-domain xorshift64*
// (the same generator the engine uses for its Zobrist key table).
type magicRand struct {
	s uint64
}

func (r *magicRand) rand64() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}

// sparse ANDs three draws together so the result has roughly 1/8th of
// its bits set on average -- magic multipliers with few set bits are
// found much faster.
func (r *magicRand) sparse() uint64 {
	return r.rand64() & r.rand64() & r.rand64()
}

// slidingAttack walks each direction from sq until the board edge or a
// blocker (inclusive of the blocker square itself, matching the "first
// blocker on each ray is attacked" contract).
func slidingAttack(dirs [4]Direction, sq Square, occupied Bitboard) Bitboard {
	var attack Bitboard
	for _, d := range dirs {
		s := sq
		for {
			next := s.To(d)
			if !next.IsValid() {
				break
			}
			s = next
			attack = attack.Set(s)
			if occupied.Has(s) {
				break
			}
		}
	}
	return attack
}

// RookAttacks returns the attack bitboard for a rook on sq given the
// exact board occupancy.
func RookAttacks(sq Square, occupied Bitboard) Bitboard {
	m := &rookMagics[sq]
	return m.attacks[m.index(occupied)]
}

// BishopAttacks returns the attack bitboard for a bishop on sq given
// the exact board occupancy.
func BishopAttacks(sq Square, occupied Bitboard) Bitboard {
	m := &bishopMagics[sq]
	return m.attacks[m.index(occupied)]
}

// QueenAttacks is the union of rook and bishop attacks from sq.
func QueenAttacks(sq Square, occupied Bitboard) Bitboard {
	return RookAttacks(sq, occupied) | BishopAttacks(sq, occupied)
}

// Attacks dispatches to the right attack table for any piece type,
// including the leapers; used by generic callers (evaluator mobility,
// AttacksTo-style reverse lookups) that don't want a type switch of
// their own.
func Attacks(pt PieceType, sq Square, occupied Bitboard) Bitboard {
	switch pt {
	case Knight:
		return KnightAttacks(sq)
	case King:
		return KingAttacks(sq)
	case Bishop:
		return BishopAttacks(sq, occupied)
	case Rook:
		return RookAttacks(sq, occupied)
	case Queen:
		return QueenAttacks(sq, occupied)
	default:
		return BbZero
	}
}

var (
	Rank1Bb = Rank1.Bb()
	Rank8Bb = Rank8.Bb()
	FileABb = FileA.Bb()
	FileHBb = FileH.Bb()
)
