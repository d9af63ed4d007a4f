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

import "fmt"

// MalformedFieldError reports a numeric field of a partition entry that is
// not an unsigned integer. It is always fatal.
type MalformedFieldError struct {
	Line  int
	Text  string
	Field string
	Value string
	Err   error
}

func (e *MalformedFieldError) Error() string {
	return fmt.Sprintf("line %d: cannot convert %s=%q to uint64, "+
		"partition info: %q, error msg: (%v)", e.Line, e.Field, e.Value, e.Text, e.Err)
}

func (e *MalformedFieldError) Unwrap() error { return e.Err }

// UnrecognizedLineError reports a line that looks like a partition entry but
// does not follow the dump grammar.
type UnrecognizedLineError struct {
	Line   int
	Text   string
	Reason string
}

func (e *UnrecognizedLineError) Error() string {
	return fmt.Sprintf("line %d: unrecognized partition entry %q: %s", e.Line, e.Text, e.Reason)
}

func setLine(err error, line int) {
	switch e := err.(type) {
	case *MalformedFieldError:
		e.Line = line
	case *UnrecognizedLineError:
		e.Line = line
	}
}
