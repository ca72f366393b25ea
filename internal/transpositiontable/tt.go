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

// Package transpositiontable implements the Zobrist-keyed transposition
// table (cache) the search consults at every node. The TtTable type is
// not thread safe and must be synchronized externally if shared across
// goroutines; in particular Resize and Clear must never run
// concurrently with a search.
package transpositiontable

import (
	"math"
	"unsafe"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	myLogging "github.com/mbellarov/corvid/internal/logging"
	. "github.com/mbellarov/corvid/internal/types"
	"github.com/mbellarov/corvid/internal/util"
)

var out = message.NewPrinter(language.German)

const (
	// MaxSizeInMB is the largest table size Resize will honor.
	MaxSizeInMB = 65_536
	MB          = 1024 * 1024
)

// TtTable is the transposition table itself.
type TtTable struct {
	log                *logging.Logger
	data               []TtEntry
	sizeInByte         uint64
	hashKeyMask        uint64
	maxNumberOfEntries uint64
	numberOfEntries    uint64
	Stats              TtStats
}

// TtStats holds usage statistics for the "tt" debug command and the
// UCI-facing hashfull calculation.
type TtStats struct {
	numberOfPuts       uint64
	numberOfCollisions uint64
	numberOfOverwrites uint64
	numberOfUpdates    uint64
	numberOfProbes     uint64
	numberOfHits       uint64
	numberOfMisses     uint64
}

// NewTtTable creates a table sized to fit within sizeInMByte of memory.
func NewTtTable(sizeInMByte int) *TtTable {
	tt := TtTable{log: myLogging.GetLog()}
	tt.Resize(sizeInMByte)
	return &tt
}

// Resize rebuilds the table at the largest power-of-two entry count
// fitting within sizeInMByte, clearing all entries.
func (tt *TtTable) Resize(sizeInMByte int) {
	if sizeInMByte > MaxSizeInMB {
		tt.log.Error(out.Sprintf("Requested size for TT of %d MB reduced to max of %d MB", sizeInMByte, MaxSizeInMB))
		sizeInMByte = MaxSizeInMB
	}

	tt.sizeInByte = uint64(sizeInMByte) * MB
	tt.maxNumberOfEntries = 1 << uint64(math.Floor(math.Log2(float64(tt.sizeInByte/TtEntrySize))))
	tt.hashKeyMask = tt.maxNumberOfEntries - 1

	if tt.sizeInByte == 0 {
		tt.maxNumberOfEntries = 0
	}
	tt.sizeInByte = tt.maxNumberOfEntries * TtEntrySize
	tt.data = make([]TtEntry, tt.maxNumberOfEntries)

	tt.log.Info(out.Sprintf("TT Size %d MByte, Capacity %d entries (size=%dByte) (Requested were %d MBytes)",
		tt.sizeInByte/MB, tt.maxNumberOfEntries, unsafe.Sizeof(TtEntry{}), sizeInMByte))
	tt.log.Debug(util.MemStat())
}

// GetEntry returns a pointer to the entry matching key, or nil.
// Does not update statistics.
func (tt *TtTable) GetEntry(key Key) *TtEntry {
	if tt.maxNumberOfEntries == 0 {
		return nil
	}
	e := &tt.data[tt.hash(key)]
	if e.key == key {
		return e
	}
	return nil
}

// Probe returns a pointer to the entry matching key, or nil, and
// refreshes its age on a hit.
func (tt *TtTable) Probe(key Key) *TtEntry {
	if tt.maxNumberOfEntries == 0 {
		return nil
	}
	tt.Stats.numberOfProbes++
	e := &tt.data[tt.hash(key)]
	if e.key == key {
		e.decreaseAge()
		tt.Stats.numberOfHits++
		return e
	}
	tt.Stats.numberOfMisses++
	return nil
}

// Put stores a search result, last writer wins: a slot holding a
// different key is always overwritten. A slot holding the same key is
// updated, keeping its old move, eval and value (with its depth and
// type) where the new ones are MoveNone or ValueNA.
func (tt *TtTable) Put(key Key, move Move, depth int8, value Value, valueType ValueType, eval Value) {
	if tt.maxNumberOfEntries == 0 {
		return
	}

	e := &tt.data[tt.hash(key)]
	tt.Stats.numberOfPuts++

	if e.key == 0 {
		tt.numberOfEntries++
		tt.store(e, key, move, depth, value, valueType, eval)
		return
	}

	if e.key != key {
		tt.Stats.numberOfCollisions++
		tt.Stats.numberOfOverwrites++
		tt.store(e, key, move, depth, value, valueType, eval)
		return
	}

	tt.Stats.numberOfUpdates++
	if move != MoveNone {
		e.move = move
	}
	if eval != ValueNA {
		e.eval = int16(eval)
	}
	if value != ValueNA {
		e.value = int16(value)
		e.vmeta = uint16(depth)<<depthShift | uint16(valueType)<<vtypeShift | 1
	}
}

func (tt *TtTable) store(e *TtEntry, key Key, move Move, depth int8, value Value, valueType ValueType, eval Value) {
	e.key = key
	e.move = move
	e.eval = int16(eval)
	e.value = int16(value)
	e.vmeta = uint16(depth)<<depthShift | uint16(valueType)<<vtypeShift | 1
}

// Clear empties the table without resizing it.
func (tt *TtTable) Clear() {
	tt.data = make([]TtEntry, tt.maxNumberOfEntries)
	tt.numberOfEntries = 0
	tt.Stats = TtStats{}
}

// Hashfull returns how full the table is in permille, as UCI's "info
// hashfull" field expects.
func (tt *TtTable) Hashfull() int {
	if tt.maxNumberOfEntries == 0 {
		return 0
	}
	return int((1000 * tt.numberOfEntries) / tt.maxNumberOfEntries)
}

// AgeEntries increments the age of every occupied entry; called once
// per search. Put does not look at the age when replacing.
func (tt *TtTable) AgeEntries() {
	for i := range tt.data {
		if tt.data[i].key != 0 {
			tt.data[i].increaseAge()
		}
	}
}

// Len returns the number of occupied entries.
func (tt *TtTable) Len() uint64 { return tt.numberOfEntries }

func (tt *TtTable) String() string {
	return out.Sprintf("TT: size %d MB max entries %d of size %d Bytes entries %d (%d%%) puts %d "+
		"updates %d collisions %d overwrites %d probes %d hits %d (%d%%) misses %d (%d%%)",
		tt.sizeInByte/MB, tt.maxNumberOfEntries, unsafe.Sizeof(TtEntry{}), tt.numberOfEntries, tt.Hashfull()/10,
		tt.Stats.numberOfPuts, tt.Stats.numberOfUpdates, tt.Stats.numberOfCollisions, tt.Stats.numberOfOverwrites,
		tt.Stats.numberOfProbes, tt.Stats.numberOfHits, (tt.Stats.numberOfHits*100)/(1+tt.Stats.numberOfProbes),
		tt.Stats.numberOfMisses, (tt.Stats.numberOfMisses*100)/(1+tt.Stats.numberOfProbes))
}

func (tt *TtTable) hash(key Key) uint64 {
	return uint64(key) & tt.hashKeyMask
}

// ValueToTt adjusts a search value that encodes a mate as a distance
// from the root into one that encodes it as a distance from the current
// node, the form stored in the table: a mate score moves ply further
// from zero on the way in so that retrieving it at a different ply
// later still reports the correct distance from the root.
func ValueToTt(value Value, ply int) Value {
	if value == ValueNA {
		return value
	}
	if value > MateThreshold {
		return value + Value(ply)
	}
	if value < -MateThreshold {
		return value - Value(ply)
	}
	return value
}

// ValueFromTt reverses ValueToTt when a stored value is retrieved at
// ply plies from the root.
func ValueFromTt(value Value, ply int) Value {
	if value == ValueNA {
		return value
	}
	if value > MateThreshold {
		return value - Value(ply)
	}
	if value < -MateThreshold {
		return value + Value(ply)
	}
	return value
}
