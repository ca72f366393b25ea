// Package uciInterface defines the callback surface a UCI front end must
// implement to receive progress reports from a running search.
//
// Go does not allow circular imports: the uci package holds a Search
// instance, and Search needs a handle back into the uci package to emit
// "info" lines while it runs. This interface breaks the cycle.
package uciInterface

import (
	"time"

	"github.com/mbellarov/corvid/internal/moveslice"
	"github.com/mbellarov/corvid/internal/types"
)

// UciDriver is implemented by a UCI front end so the search can push
// progress reports to it without importing the uci package directly.
type UciDriver interface {
	SendReadyOk()
	SendInfoString(info string)
	SendIterationEndInfo(depth int, seldepth int, value types.Value, nodes uint64, nps uint64, time time.Duration, pv moveslice.MoveSlice)
	SendAspirationResearchInfo(depth int, seldepth int, value types.Value, bound string, nodes uint64, nps uint64, time time.Duration, pv moveslice.MoveSlice)
	SendCurrentRootMove(currMove types.Move, moveNumber int)
	SendSearchUpdate(depth int, seldepth int, nodes uint64, nps uint64, time time.Duration, hashfull int)
	SendCurrentLine(moveList moveslice.MoveSlice)
	SendResult(bestMove types.Move, ponderMove types.Move)
}
