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

package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/mbellarov/corvid/internal/config"
	"github.com/mbellarov/corvid/internal/logging"
	"github.com/mbellarov/corvid/internal/movegen"
	"github.com/mbellarov/corvid/internal/position"
	"github.com/mbellarov/corvid/internal/search"
	"github.com/mbellarov/corvid/internal/testsuite"
	"github.com/mbellarov/corvid/internal/uci"
	"github.com/mbellarov/corvid/internal/util"
	"github.com/mbellarov/corvid/internal/version"
)

var out = message.NewPrinter(language.German)

func main() {
	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "", "standard log level\n(critical|error|warning|notice|info|debug)")
	searchLogLvl := flag.String("searchloglvl", "", "search log level\n(critical|error|warning|notice|info|debug)")
	testSuite := flag.String("testsuite", "", "path to file containing EPD tests or folder containing EPD files")
	testMovetime := flag.Int("testtime", 2000, "search time for each test position in milliseconds")
	testSearchdepth := flag.Int("testdepth", 0, "search depth limit for each test position")
	perft := flag.Int("perft", 0, "starts perft on the start position with the given depth\nuse -fen to provide a different position")
	fen := flag.String("fen", position.StartFen, "fen for perft and nps test")
	nps := flag.Int("nps", 0, "starts a nodes-per-second test on the given position for the given number of seconds")
	doProfile := flag.Bool("profile", false, "run with CPU profiling enabled, writes cpu.pprof to the working directory")
	flag.Parse()

	if *versionInfo {
		printVersionInfo()
		return
	}

	if *doProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	config.ConfFile = *configFile
	if *logLvl != "" {
		config.Settings.Log.LogLvl = *logLvl
	}
	if *searchLogLvl != "" {
		config.Settings.Log.SearchLogLvl = *searchLogLvl
	}
	config.Setup()

	// Packages that hold their own logger as a package-level var grab it
	// at init() time, before main() has applied CLI overrides. Touching
	// the logger here forces it to pick up the final level.
	logging.GetLog()
	logging.GetSearchLog()

	if *nps != 0 {
		s := search.NewSearch()
		p, err := position.NewPositionFen(*fen)
		if err != nil {
			fmt.Println(err)
			return
		}
		sl := search.NewSearchLimits()
		sl.TimeControl = true
		sl.MoveTime = time.Duration(*nps) * time.Second
		s.StartSearch(*p, *sl)
		s.WaitWhileSearching()
		out.Println()
		out.Println("NPS : ", util.Nps(s.NodesVisited(), s.LastSearchResult().SearchTime))
		return
	}

	if *perft != 0 {
		p, err := position.NewPositionFen(*fen)
		if err != nil {
			fmt.Println(err)
			return
		}
		for d := 1; d <= *perft; d++ {
			start := time.Now()
			nodes := movegen.Perft(p, d)
			elapsed := time.Since(start)
			out.Printf("Perft depth %d: %d nodes in %s (%d nps)\n", d, nodes, elapsed, util.Nps(nodes, elapsed))
		}
		return
	}

	if *testSuite != "" {
		name := *testSuite
		fi, err := os.Stat(name)
		if err != nil {
			fmt.Println(err)
			return
		}
		switch mode := fi.Mode(); {
		case mode.IsDir():
			testsuite.FeatureTests(name+"/", time.Duration(*testMovetime)*time.Millisecond, *testSearchdepth)
		case mode.IsRegular():
			ts, err := testsuite.NewTestSuite(name, time.Duration(*testMovetime)*time.Millisecond, *testSearchdepth)
			if err != nil {
				fmt.Println(err)
				return
			}
			ts.RunTests()
		}
		return
	}

	u := uci.NewUciHandler()
	u.Loop()
}

func printVersionInfo() {
	out.Printf("corvid %s\n", version.Version())
	out.Println("Environment:")
	out.Printf("  Using GO version %s\n", runtime.Version())
	out.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
	out.Printf("  Number of Goroutines: %d\n", runtime.NumGoroutine())
	cwd, _ := os.Getwd()
	out.Printf("  Working directory: %s\n", cwd)
}
