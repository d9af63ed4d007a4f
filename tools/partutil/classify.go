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
	"strings"
	"unicode"
)

// LineKind is the syntactic class of a dump line.
type LineKind int

const (
	LineBlank LineKind = iota
	LineComment
	LineHeader
	LinePartition
)

func (k LineKind) String() string {
	switch k {
	case LineBlank:
		return "blank"
	case LineComment:
		return "comment"
	case LineHeader:
		return "header"
	case LinePartition:
		return "partition"
	default:
		return "unknown"
	}
}

// headerKeys are the header keys sfdisk writes in dump mode.
var headerKeys = map[string]bool{
	"label":        true,
	"label-id":     true,
	"device":       true,
	"unit":         true,
	"first-lba":    true,
	"last-lba":     true,
	"sector-size":  true,
	"grain":        true,
	"table-length": true,
}

// ClassifyLine tells whether line is blank, a comment, a header or a
// partition entry candidate. A partition entry starts with a device token
// followed by a colon, e.g. "/dev/sda1 : start=..." or, for an image dumped
// by relative path, "disk.img1 : start=...". The token must not be a known
// header key and must either be a path or end with a partition number.
func ClassifyLine(line string) LineKind {
	trimmed := strings.TrimSpace(line)
	switch {
	case trimmed == "":
		return LineBlank
	case strings.HasPrefix(trimmed, "#"):
		return LineComment
	}
	end := strings.IndexFunc(trimmed, isLabelEnd)
	if end <= 0 {
		return LineHeader
	}
	if !strings.HasPrefix(strings.TrimLeftFunc(trimmed[end:], unicode.IsSpace), ":") {
		return LineHeader
	}
	token := trimmed[:end]
	if headerKeys[token] {
		return LineHeader
	}
	if !strings.HasPrefix(token, "/") && !isDigit(token[len(token)-1]) {
		return LineHeader
	}
	return LinePartition
}

func isLabelEnd(r rune) bool {
	return r == ':' || unicode.IsSpace(r)
}
