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
	"fmt"
	"io"
	"strings"
)

// RenderPartition formats p the way "sfdisk --dump" does.
func RenderPartition(p *Partition) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s : start=%12d, size=%12d, type=%s", p.Label, p.Start, p.Size, p.Type)
	for _, attr := range p.Attrs {
		b.WriteString(", ")
		b.WriteString(attr)
	}
	return b.String()
}

// Render writes the passthrough lines of t verbatim, then one line per
// partition. The output ends with a newline if the input did or if t has
// partitions.
func Render(w io.Writer, t *Table) error {
	lines := make([]string, 0, len(t.Passthrough)+len(t.Partitions))
	lines = append(lines, t.Passthrough...)
	for _, p := range t.Partitions {
		lines = append(lines, RenderPartition(p))
	}
	if len(lines) == 0 {
		return nil
	}
	out := strings.Join(lines, "\n")
	if t.TrailingNewline || len(t.Partitions) > 0 {
		out += "\n"
	}
	if _, err := io.WriteString(w, out); err != nil {
		return fmt.Errorf("cannot write partition table, error msg: (%v)", err)
	}
	return nil
}
