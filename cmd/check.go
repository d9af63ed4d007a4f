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
	"fmt"
	"log"

	"sfdisk-sort/tools/partutil"

	"github.com/google/subcommands"
)

// Check implements subcommands.Command for the "check" command.
// It reports the partitions of a dump whose number does not match their
// position on disk.
type Check struct {
	lenient bool
}

// Name implements subcommands.Command.Name.
func (c *Check) Name() string {
	return "check"
}

// Synopsis implements subcommands.Command.Synopsis.
func (c *Check) Synopsis() string {
	return "Check whether the partitions of an sfdisk dump are in disk order."
}

// Usage implements subcommands.Command.Usage.
func (c *Check) Usage() string {
	return `check [-lenient]
Reads "sfdisk --dump" output from stdin and prints one "old -> new" line for
every partition that "sort" would rename. Exits 0 if there is none.
`
}

// SetFlags implements subcommands.Command.SetFlags.
func (c *Check) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.lenient, "lenient", false,
		"Skip lines that look like partition entries but cannot be parsed instead of failing.")
}

// Execute implements subcommands.Command.Execute.
func (c *Check) Execute(_ context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	streams := args[0].(*Streams)
	warnIfTerminal(streams.In)
	table, err := partutil.ParseTable(streams.In, partutil.Options{Lenient: c.lenient})
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}
	relabels, err := partutil.Relabels(table.Partitions)
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}
	if len(relabels) == 0 {
		log.Printf("%d partitions already in disk order", len(table.Partitions))
		return subcommands.ExitSuccess
	}
	for _, r := range relabels {
		if _, err := fmt.Fprintf(streams.Out, "%s -> %s (start=%d)\n", r.Old, r.New, r.Start); err != nil {
			log.Println(err)
			return subcommands.ExitFailure
		}
	}
	return subcommands.ExitFailure
}
