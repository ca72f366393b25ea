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

// logConfiguration holds the three independent log channels as
// config-file-friendly level names ("debug", "info", ...), resolved to
// go-logging's integer levels at Setup() time.
type logConfiguration struct {
	LogLvl       string
	SearchLogLvl string
	TestLogLvl   string
	LogPath      string

	Level       int
	SearchLevel int
	TestLevel   int
}

// LogLevels maps the string level names accepted in config.toml to
// go-logging's integer level values.
var LogLevels = map[string]int{
	"off":      -1,
	"critical": 0,
	"error":    1,
	"warning":  2,
	"notice":   3,
	"info":     4,
	"debug":    5,
}

func init() {
	Settings.Log.LogLvl = "info"
	Settings.Log.SearchLogLvl = "info"
	Settings.Log.TestLogLvl = "debug"
	Settings.Log.LogPath = "./logs"
}

// setupLogLvl resolves the configured level names to go-logging levels,
// falling back to "info" for anything unrecognized.
func setupLogLvl() {
	resolve := func(name string) int {
		if lvl, ok := LogLevels[name]; ok {
			return lvl
		}
		return LogLevels["info"]
	}
	Settings.Log.Level = resolve(Settings.Log.LogLvl)
	Settings.Log.SearchLevel = resolve(Settings.Log.SearchLogLvl)
	Settings.Log.TestLevel = resolve(Settings.Log.TestLogLvl)
}
