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

// Package config holds globally available configuration variables
// which are either set by defaults, read from a config file or set
// by command line options.
package config

import (
	"fmt"
	"log"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/mbellarov/corvid/internal/util"
)

// ConfFile holds the path to the used config file (relative to the
// working directory).
var ConfFile = "./config.toml"

// Settings is the global configuration read in from file, falling
// back to the defaults set in each section's init().
var Settings conf

var initialized = false

type conf struct {
	Log    logConfiguration
	Search searchConfiguration
	Eval   evalConfiguration
}

// Setup reads the configuration file (if present) and applies its
// values on top of the package defaults. Safe to call more than once;
// only the first call has any effect.
func Setup() {
	if initialized {
		return
	}

	path, _ := util.ResolveFile(ConfFile)
	if _, err := toml.DecodeFile(path, &Settings); err != nil {
		log.Println("Config file not found. Using defaults. (", err, ")")
	}

	setupLogLvl()
	initialized = true
}

// String prints out the current configuration settings and values,
// using reflection to walk the Search and Eval sections' fields.
func (settings *conf) String() string {
	var c strings.Builder
	c.WriteString("Search Config:\n")
	writeFields(&c, reflect.ValueOf(&settings.Search).Elem())
	c.WriteString("Eval Config:\n")
	writeFields(&c, reflect.ValueOf(&settings.Eval).Elem())
	return c.String()
}

func writeFields(c *strings.Builder, s reflect.Value) {
	typeOfT := s.Type()
	for i := 0; i < s.NumField(); i++ {
		f := s.Field(i)
		c.WriteString(fmt.Sprintf("%-2d: %-26s %-6s = %v\n", i, typeOfT.Field(i).Name, f.Type(), f.Interface()))
	}
}
