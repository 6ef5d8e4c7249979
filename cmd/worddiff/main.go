// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command worddiff compares two text files word by word.
//
// Usage:
//
//	worddiff [compare] OLD NEW [flags]
//	worddiff normalize FILE [flags]
//	worddiff version
//
// The exit code is 0 if the files contain the same words, 2 if they differ and 1 on errors.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
)

const version = "0.1.0"

const (
	exitSame  = 0
	exitError = 1
	exitDiffs = 2
)

type cli struct {
	Config    string `help:"YAML settings file." type:"path" placeholder:"FILE"`
	LogLevel  string `help:"Log level (trace, debug, info, warn, error)." placeholder:"LEVEL"`
	LogFormat string `help:"Log format (console, json)." placeholder:"FORMAT"`
	LogFile   string `help:"Also write JSON logs to this file, rotated by size." type:"path" placeholder:"FILE"`

	Compare   compareCmd   `cmd:"" default:"withargs" help:"Compare two text files word by word."`
	Normalize normalizeCmd `cmd:"" help:"Print the normalized text of a file and what normalization changed."`
	Version   versionCmd   `cmd:"" help:"Print version information."`
}

// env carries the process environment into commands.
type env struct {
	cli    *cli
	stdout io.Writer
	stderr io.Writer
	code   int
}

type exit int

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) (code int) {
	var c cli
	e := &env{cli: &c, stdout: stdout, stderr: stderr}
	parser, err := kong.New(&c,
		kong.Name("worddiff"),
		kong.Description("Compare two texts word by word after normalizing punctuation, whitespace and case."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Writers(stdout, stderr),
		kong.Exit(func(code int) { panic(exit(code)) }),
		kong.Bind(e),
	)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitError
	}

	defer func() {
		if r := recover(); r != nil {
			c, ok := r.(exit)
			if !ok {
				panic(r)
			}
			code = int(c)
		}
	}()

	ctx, err := parser.Parse(args)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitError
	}
	if err := ctx.Run(); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitError
	}
	return e.code
}

type versionCmd struct{}

func (versionCmd) Run(e *env) error {
	_, err := fmt.Fprintf(e.stdout, "worddiff version %s\n", version)
	return err
}
