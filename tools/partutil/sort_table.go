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

package partutil

import (
	"bytes"
	"fmt"
	"io"
	"log"
)

// SortTable reads a dump from r, sorts its partitions by start sector,
// renames them after their new order and writes the new dump to w.
// Nothing is written to w if any step fails.
func SortTable(r io.Reader, w io.Writer, opts Options) error {
	t, err := ParseTable(r, opts)
	if err != nil {
		return err
	}
	if len(t.Partitions) == 0 {
		log.Println("no partition entries found, writing input unchanged")
	}
	for _, label := range ForeignPartitions(t.Device, t.Partitions) {
		log.Printf("partition %q is not on the same disk as the others", label)
	}
	parts, err := Reorder(t.Partitions)
	if err != nil {
		return err
	}
	if err := checkKept(t.Kept, parts); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := Render(&buf, &Table{
		Passthrough:     t.Passthrough,
		Partitions:      parts,
		TrailingNewline: t.TrailingNewline,
	}); err != nil {
		return err
	}
	_, err = w.Write(buf.Bytes())
	return err
}

// checkKept fails if a line kept verbatim names a partition that parts also
// names, since sfdisk would then see the partition twice.
func checkKept(kept []string, parts []*Partition) error {
	labels := make(map[string]bool, len(parts))
	for _, p := range parts {
		labels[p.Label] = true
	}
	for _, label := range kept {
		if labels[label] {
			return fmt.Errorf("unparsed line for %q kept as is would duplicate a renumbered partition", label)
		}
	}
	return nil
}
