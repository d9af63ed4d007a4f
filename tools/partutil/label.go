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
	"strconv"
	"strings"
)

// SplitLabel splits a partition label into the disk path, the infix placed
// before the partition number and the partition number itself.
// "/dev/sda12" gives ("/dev/sda", "", 12) and "/dev/nvme0n1p3" gives
// ("/dev/nvme0n1", "p", 3). The infix is only recognized when the disk
// path ends with a digit, so "/dev/sdp1" gives ("/dev/sdp", "", 1).
func SplitLabel(label string) (disk, infix string, num int, err error) {
	prefix := strings.TrimRight(label, "0123456789")
	if prefix == label {
		return "", "", 0, fmt.Errorf("label %q has no partition number", label)
	}
	num, err = strconv.Atoi(label[len(prefix):])
	if err != nil {
		return "", "", 0, fmt.Errorf("cannot convert partition number of %q to int, "+
			"error msg: (%v)", label, err)
	}
	disk = prefix
	if n := len(prefix); n >= 2 && prefix[n-1] == 'p' && isDigit(prefix[n-2]) {
		disk, infix = prefix[:n-1], "p"
	}
	if disk == "" {
		return "", "", 0, fmt.Errorf("label %q has no disk path", label)
	}
	return disk, infix, num, nil
}

// JoinLabel builds the label of partition num on disk using infix.
func JoinLabel(disk, infix string, num int) string {
	return disk + infix + strconv.Itoa(num)
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
