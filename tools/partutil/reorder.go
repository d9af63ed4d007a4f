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
	"sort"
)

// Relabel records the label change of one partition.
type Relabel struct {
	Old   string
	New   string
	Start uint64
}

// Reorder returns copies of parts sorted by start sector and renamed after
// their new position: the partition with the lowest start becomes number 1.
// Partitions with the same start keep their input order. The disk path and
// the 'p' infix of each label are kept. parts is not modified.
func Reorder(parts []*Partition) ([]*Partition, error) {
	sorted, _, err := reorder(parts)
	return sorted, err
}

// Relabels reports the partitions of parts whose label changes when parts is
// reordered, in start order. An empty result means parts is already sorted.
func Relabels(parts []*Partition) ([]Relabel, error) {
	sorted, old, err := reorder(parts)
	if err != nil {
		return nil, err
	}
	var res []Relabel
	for i, p := range sorted {
		if old[i] != p.Label {
			res = append(res, Relabel{Old: old[i], New: p.Label, Start: p.Start})
		}
	}
	return res, nil
}

func reorder(parts []*Partition) ([]*Partition, []string, error) {
	sorted := make([]*Partition, len(parts))
	for i, p := range parts {
		sorted[i] = p.clone()
	}
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	old := make([]string, len(sorted))
	for i, p := range sorted {
		disk, infix, _, err := SplitLabel(p.Label)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot relabel partition %q, error msg: (%v)", p.Label, err)
		}
		old[i] = p.Label
		p.Label = JoinLabel(disk, infix, i+1)
	}
	return sorted, old, nil
}

// ForeignPartitions returns the labels of parts that are not on device, in
// input order. If device is empty, the disk named by most labels is used;
// on a tie the one seen first wins.
func ForeignPartitions(device string, parts []*Partition) []string {
	disks := make([]string, len(parts))
	count := make(map[string]int)
	best := device
	for i, p := range parts {
		disk, _, _, err := SplitLabel(p.Label)
		if err != nil {
			continue
		}
		disks[i] = disk
		count[disk]++
		if device == "" && count[disk] > count[best] {
			best = disk
		}
	}
	var res []string
	for i, p := range parts {
		if disks[i] != best {
			res = append(res, p.Label)
		}
	}
	return res
}
