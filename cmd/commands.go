// Copyright 2024 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"context"
	"flag"
	"io"
	"log"
	"os"

	"github.com/google/subcommands"
)

const defaultCommand = "sort"

// Streams holds the streams a command reads the dump from and writes its
// result to.
type Streams struct {
	In  io.Reader
	Out io.Writer
}

// StdStreams returns Streams backed by stdin and stdout.
func StdStreams() *Streams {
	return &Streams{In: os.Stdin, Out: os.Stdout}
}

// Execute runs the command named by args[0] with the remaining arguments.
// With no arguments it runs "sort".
func Execute(ctx context.Context, name string, args []string, streams *Streams) subcommands.ExitStatus {
	if len(args) == 0 {
		args = []string{defaultCommand}
	}
	topFlags := flag.NewFlagSet(name, flag.ContinueOnError)
	if err := topFlags.Parse(args); err != nil {
		return subcommands.ExitUsageError
	}
	cdr := subcommands.NewCommander(topFlags, name)
	cdr.Register(cdr.HelpCommand(), "")
	cdr.Register(cdr.FlagsCommand(), "")
	cdr.Register(cdr.CommandsCommand(), "")
	cdr.Register(new(Sort), "")
	cdr.Register(new(Check), "")
	return cdr.Execute(ctx, streams)
}

// warnIfTerminal logs a hint when the dump is about to be read from an
// interactive terminal instead of a pipe.
func warnIfTerminal(r io.Reader) {
	f, ok := r.(*os.File)
	if !ok || !isTerminal(f.Fd()) {
		return
	}
	log.Println(`reading "sfdisk --dump" output from the terminal, end input with Ctrl-D`)
}
