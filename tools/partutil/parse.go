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
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
)

// ParsePartitionLine parses one partition entry of a dump:
//
//	/dev/sdb1 : start=     4401152, size=     2097152, type=83, bootable
//
// start, size and type must come first and in that order. Everything after
// type is kept in Attrs. A start or size that is not an unsigned integer
// gives a *MalformedFieldError; any other mismatch gives an
// *UnrecognizedLineError.
func ParsePartitionLine(line string) (*Partition, error) {
	text := strings.TrimSpace(strings.TrimSuffix(line, "\r"))
	label, rest, found := strings.Cut(text, ":")
	label = strings.TrimSpace(label)
	if !found || label == "" || strings.ContainsAny(label, " \t") {
		return nil, &UnrecognizedLineError{Text: line, Reason: "missing device path"}
	}
	if _, _, _, err := SplitLabel(label); err != nil {
		return nil, &UnrecognizedLineError{Text: line, Reason: err.Error()}
	}

	fields := splitFields(rest)
	p := &Partition{Label: label}
	var err error
	if p.Start, err = parseUintField(line, fields, 0, "start"); err != nil {
		return nil, err
	}
	if p.Size, err = parseUintField(line, fields, 1, "size"); err != nil {
		return nil, err
	}
	typ, ok := fieldValue(fields, 2, "type")
	if !ok || typ == "" {
		return nil, &UnrecognizedLineError{Text: line, Reason: "missing type="}
	}
	p.Type = typ
	if len(fields) > 3 {
		p.Attrs = fields[3:]
	}
	return p, nil
}

func parseUintField(line string, fields []string, idx int, key string) (uint64, error) {
	val, ok := fieldValue(fields, idx, key)
	if !ok {
		return 0, &UnrecognizedLineError{Text: line, Reason: "missing " + key + "="}
	}
	n, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return 0, &MalformedFieldError{Text: line, Field: key, Value: val, Err: err}
	}
	return n, nil
}

// fieldValue returns the value of fields[idx] if it is a key=value token
// with the given key.
func fieldValue(fields []string, idx int, key string) (string, bool) {
	if idx >= len(fields) {
		return "", false
	}
	k, v, found := strings.Cut(fields[idx], "=")
	if !found || strings.TrimSpace(k) != key {
		return "", false
	}
	return strings.TrimSpace(v), true
}

// splitFields splits s on commas that are not inside double quotes, so
// name="EFI, System" stays one token. Tokens are trimmed and empty ones
// dropped.
func splitFields(s string) []string {
	var fields []string
	var cur strings.Builder
	inQuote := false
	flush := func() {
		if f := strings.TrimSpace(cur.String()); f != "" {
			fields = append(fields, f)
		}
		cur.Reset()
	}
	for _, r := range s {
		switch {
		case r == '"':
			inQuote = !inQuote
			cur.WriteRune(r)
		case r == ',' && !inQuote:
			flush()
		default:
			cur.WriteRune(r)
		}
	}
	flush()
	return fields
}

// ParseTable reads a whole dump from r.
func ParseTable(r io.Reader, opts Options) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read partition table, error msg: (%v)", err)
	}
	return ParseTableString(string(data), opts)
}

// ParseTableString parses a whole dump. Lines that are not partition entries
// are kept verbatim in Passthrough. An entry-shaped line that does not match
// the grammar is an error unless opts.Lenient is set, in which case it is
// kept as a passthrough line and its label recorded in Kept.
func ParseTableString(table string, opts Options) (*Table, error) {
	t := &Table{}
	if table == "" {
		return t, nil
	}
	t.TrailingNewline = strings.HasSuffix(table, "\n")
	lines := strings.Split(strings.TrimSuffix(table, "\n"), "\n")
	for idx, line := range lines {
		if ClassifyLine(line) != LinePartition {
			if key, val, ok := headerField(line); ok && key == "device" {
				t.Device = val
			}
			t.Passthrough = append(t.Passthrough, line)
			continue
		}
		p, err := ParsePartitionLine(line)
		if err != nil {
			setLine(err, idx+1)
			var unrecognized *UnrecognizedLineError
			if errors.As(err, &unrecognized) && opts.Lenient {
				log.Printf("keeping line as is: %v", err)
				t.Passthrough = append(t.Passthrough, line)
				t.Kept = append(t.Kept, entryLabel(line))
				continue
			}
			return nil, err
		}
		t.Partitions = append(t.Partitions, p)
	}
	return t, nil
}

// headerField splits a "key: value" header line.
func headerField(line string) (key, val string, ok bool) {
	key, val, ok = strings.Cut(strings.TrimSpace(line), ":")
	return strings.TrimSpace(key), strings.TrimSpace(val), ok
}

// entryLabel returns the device token an entry-shaped line starts with.
func entryLabel(line string) string {
	text := strings.TrimSpace(line)
	if end := strings.IndexFunc(text, isLabelEnd); end >= 0 {
		return text[:end]
	}
	return text
}
