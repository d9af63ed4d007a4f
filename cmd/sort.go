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
	"log"

	"sfdisk-sort/tools/partutil"

	"github.com/google/subcommands"
)

// Sort implements subcommands.Command for the "sort" command.
// It reads a partition table dump from stdin, sorts its entries by start
// sector, renumbers them and writes the new dump to stdout.
type Sort struct {
	lenient bool
}

// Name implements subcommands.Command.Name.
func (s *Sort) Name() string {
	return "sort"
}

// Synopsis implements subcommands.Command.Synopsis.
func (s *Sort) Synopsis() string {
	return "Sort the partitions of an sfdisk dump by start sector."
}

// Usage implements subcommands.Command.Usage.
func (s *Sort) Usage() string {
	return `sort [-lenient]
Reads "sfdisk --dump" output from stdin and writes it to stdout with the
partitions ordered and numbered by start sector. The result can be applied
with "sfdisk <disk> < sorted.txt".
`
}

// SetFlags implements subcommands.Command.SetFlags.
func (s *Sort) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&s.lenient, "lenient", false,
		"Copy lines that look like partition entries but cannot be parsed unchanged instead of failing. "+
			"Still fails if such a line names a partition the sorted table also names.")
}

// Execute implements subcommands.Command.Execute. Nothing is written to
// stdout when the dump cannot be parsed.
func (s *Sort) Execute(_ context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	streams := args[0].(*Streams)
	warnIfTerminal(streams.In)
	if err := partutil.SortTable(streams.In, streams.Out, partutil.Options{Lenient: s.lenient}); err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
