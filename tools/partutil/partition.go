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

// Package partutil parses, reorders and renders partition tables in the
// text format produced by "sfdisk --dump".
package partutil

// A dump of a disk whose partition entries are not in disk order looks like:
// sudo sfdisk --dump /dev/sdb
// label: gpt
// label-id: 8071096F-DA33-154D-A687-AE097B8252C5
// device: /dev/sdb
// unit: sectors
// first-lba: 2048
// last-lba: 20971486
//
// /dev/sdb1 : start=     4401152, size=     2097152, type=0FC63DAF-8483-4772-8E79-3D69D8477DE4, uuid=3B41256B-E064-544A-9101-D2647C0B3A38
// /dev/sdb2 : start=      206848, size=     4194304, type=0FC63DAF-8483-4772-8E79-3D69D8477DE4, uuid=60E55EA1-4EEA-9F44-A066-4720F0129089
// /dev/sdb3 : start=     6498304, size=      204800, type=0FC63DAF-8483-4772-8E79-3D69D8477DE4, uuid=9479C34A-49A6-9442-A56F-956396DFAC20

// Partition is one partition entry of a dump.
type Partition struct {
	Label string
	Start uint64
	Size  uint64
	Type  string
	// Attrs holds the tokens after type=, verbatim and in order.
	Attrs []string
}

// Table is a parsed dump. Passthrough lines are every line that is not a
// partition entry, in input order.
type Table struct {
	Passthrough []string
	Partitions  []*Partition
	// Device is the value of the "device:" header, if any.
	Device string
	// Kept holds the labels of entry-shaped lines that did not parse and
	// were kept in Passthrough. Only set in lenient mode.
	Kept            []string
	TrailingNewline bool
}

// Options controls how a dump is parsed.
type Options struct {
	// Lenient keeps entry-shaped lines that do not match the partition
	// grammar as passthrough lines instead of failing. A kept line whose
	// label is given to a renumbered partition is still an error.
	Lenient bool
}

func (p *Partition) clone() *Partition {
	c := *p
	c.Attrs = append([]string(nil), p.Attrs...)
	return &c
}
