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

// sfdisk-sort reorders the partitions of an "sfdisk --dump" partition table
// by start sector and renumbers them to match.
package main

import (
	"context"
	"log"
	"os"
	"path/filepath"

	"sfdisk-sort/cmd"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	ctx := context.Background()
	ret := int(cmd.Execute(ctx, filepath.Base(os.Args[0]), os.Args[1:], cmd.StdStreams()))
	os.Exit(ret)
}
