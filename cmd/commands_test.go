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
	"bytes"
	"context"
	"flag"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/subcommands"
	"github.com/stretchr/testify/require"
)

const unsortedTable = `label: gpt
device: /dev/sdb
unit: sectors

/dev/sdb1 : start=        2048, size=      204800, type=C12A7328-F81F-11D2-BA4B-00A0C93EC93B
/dev/sdb2 : start=     1050624, size=     4194304, type=0FC63DAF-8483-4772-8E79-3D69D8477DE4
/dev/sdb3 : start=      206848, size=      843776, type=0FC63DAF-8483-4772-8E79-3D69D8477DE4
`

const sortedTable = `label: gpt
device: /dev/sdb
unit: sectors

/dev/sdb1 : start=        2048, size=      204800, type=C12A7328-F81F-11D2-BA4B-00A0C93EC93B
/dev/sdb2 : start=      206848, size=      843776, type=0FC63DAF-8483-4772-8E79-3D69D8477DE4
/dev/sdb3 : start=     1050624, size=     4194304, type=0FC63DAF-8483-4772-8E79-3D69D8477DE4
`

func executeCommand(t *testing.T, c subcommands.Command, in string, flags ...string) (subcommands.ExitStatus, string) {
	t.Helper()
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(fs)
	require.NoError(t, fs.Parse(flags))
	var out bytes.Buffer
	ret := c.Execute(context.Background(), fs, &Streams{In: strings.NewReader(in), Out: &out})
	return ret, out.String()
}

func TestSort(t *testing.T) {
	var testData = []struct {
		testName string
		in       string
		flags    []string
		want     string
	}{
		{"Unsorted", unsortedTable, nil, sortedTable},
		{"Sorted", sortedTable, nil, sortedTable},
		{"Lenient", unsortedTable, []string{"-lenient"}, sortedTable},
		{"HeaderOnly", "label: gpt\ndevice: /dev/sdb\n", nil, "label: gpt\ndevice: /dev/sdb\n"},
		{"Empty", "", nil, ""},
	}
	for _, input := range testData {
		t.Run(input.testName, func(t *testing.T) {
			ret, got := executeCommand(t, &Sort{}, input.in, input.flags...)
			require.Equal(t, subcommands.ExitSuccess, ret)
			if diff := cmp.Diff(input.want, got); diff != "" {
				t.Errorf("sort(%v) mismatch (-want +got):\n%s", input.flags, diff)
			}
		})
	}
}

func TestSortFails(t *testing.T) {
	var testData = []struct {
		testName string
		in       string
		flags    []string
		want     subcommands.ExitStatus
	}{
		{"BadStart", "/dev/sdb1 : start=abc, size=10, type=83\n", nil, subcommands.ExitFailure},
		{"BadSize", unsortedTable + "/dev/sdb4 : start=1, size=, type=83\n", nil, subcommands.ExitFailure},
		{"Unrecognized", unsortedTable + "/dev/sdb4 : start=1\n", nil, subcommands.ExitFailure},
		{"LenientKeptLabelWouldRepeat", unsortedTable + "/dev/sdb2 : start=1\n", []string{"-lenient"}, subcommands.ExitFailure},
		{"ExtraArgument", unsortedTable, []string{"/dev/sdb"}, subcommands.ExitUsageError},
	}
	for _, input := range testData {
		t.Run(input.testName, func(t *testing.T) {
			ret, got := executeCommand(t, &Sort{}, input.in, input.flags...)
			require.Equal(t, input.want, ret)
			require.Empty(t, got, "stdout must stay empty on failure")
		})
	}
}

func TestSortUnrecognizedLenient(t *testing.T) {
	in := unsortedTable + "/dev/sdb4 : start=1\n"
	ret, got := executeCommand(t, &Sort{}, in, "-lenient")
	require.Equal(t, subcommands.ExitSuccess, ret)
	require.True(t, strings.HasPrefix(got, "label: gpt\ndevice: /dev/sdb\nunit: sectors\n\n/dev/sdb4 : start=1\n"),
		"unrecognized line must be kept with the header lines, got:\n%s", got)
	require.True(t, strings.HasSuffix(got, "/dev/sdb3 : start=     1050624, size=     4194304, type=0FC63DAF-8483-4772-8E79-3D69D8477DE4\n"))
}

func TestCheck(t *testing.T) {
	var testData = []struct {
		testName string
		in       string
		want     subcommands.ExitStatus
		wantOut  string
	}{
		{
			"Unsorted",
			unsortedTable,
			subcommands.ExitFailure,
			"/dev/sdb3 -> /dev/sdb2 (start=206848)\n/dev/sdb2 -> /dev/sdb3 (start=1050624)\n",
		},
		{"Sorted", sortedTable, subcommands.ExitSuccess, ""},
		{"HeaderOnly", "label: dos\n", subcommands.ExitSuccess, ""},
		{"BadStart", "/dev/sdb1 : start=abc, size=10, type=83\n", subcommands.ExitFailure, ""},
	}
	for _, input := range testData {
		t.Run(input.testName, func(t *testing.T) {
			ret, got := executeCommand(t, &Check{}, input.in)
			require.Equal(t, input.want, ret)
			require.Equal(t, input.wantOut, got)
		})
	}
}

func TestExecute(t *testing.T) {
	var testData = []struct {
		testName string
		args     []string
		want     subcommands.ExitStatus
		wantOut  string
	}{
		{"DefaultsToSort", nil, subcommands.ExitSuccess, sortedTable},
		{"Sort", []string{"sort"}, subcommands.ExitSuccess, sortedTable},
		{"Check", []string{"check"}, subcommands.ExitFailure, "/dev/sdb3 -> /dev/sdb2 (start=206848)\n/dev/sdb2 -> /dev/sdb3 (start=1050624)\n"},
		{"UnknownCommand", []string{"reorder"}, subcommands.ExitUsageError, ""},
		{"UnknownFlag", []string{"-verbose"}, subcommands.ExitUsageError, ""},
	}
	for _, input := range testData {
		t.Run(input.testName, func(t *testing.T) {
			var out bytes.Buffer
			streams := &Streams{In: strings.NewReader(unsortedTable), Out: &out}
			ret := Execute(context.Background(), "sfdisk-sort", input.args, streams)
			require.Equal(t, input.want, ret)
			require.Equal(t, input.wantOut, out.String())
		})
	}
}

func TestWarnIfTerminalIgnoresNonFiles(t *testing.T) {
	// Only *os.File can be a terminal; other readers must be left alone.
	r := strings.NewReader(unsortedTable)
	warnIfTerminal(r)
	require.Equal(t, len(unsortedTable), r.Len())
}
