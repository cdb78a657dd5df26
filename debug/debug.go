/*
 * Copyright 2022 CloudWeGo Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package debug

import (
	"io"

	"github.com/davecgh/go-spew/spew"

	"github.com/cloudwego/dectext/internal/digits"
	"github.com/cloudwego/dectext/internal/opts"
)

// A Stats records the static state of the codec.
type Stats struct {
	Table   TableStats
	Options OptionStats
}

// A TableStats records statistics about the digit-pair table.
type TableStats struct {
	Size  int
	Short int
	Bytes int
}

// An OptionStats records the process-wide parser defaults.
type OptionStats struct {
	StrictDigits  bool
	CheckOverflow bool
}

// A Pair is the unpacked form of a digit-pair table entry.
type Pair struct {
	Hi    byte
	Lo    byte
	Short bool
}

// GetStats returns statistics of the codec.
func GetStats() Stats {
	n := 0
	for _, p := range digits.Pairs {
		n += digits.Short(p)
	}
	o := opts.GetDefaultOptions()
	return Stats{
		Table: TableStats{
			Size:  len(digits.Pairs),
			Short: n,
			Bytes: len(digits.Pairs) * 4,
		},
		Options: OptionStats{
			StrictDigits:  o.StrictDigits,
			CheckOverflow: o.CheckOverflow,
		},
	}
}

// Pairs returns an unpacked copy of the digit-pair table.
func Pairs() []Pair {
	ret := make([]Pair, len(digits.Pairs))
	for i, p := range digits.Pairs {
		ret[i] = Pair{
			Hi:    digits.Hi(p),
			Lo:    digits.Lo(p),
			Short: digits.Short(p) != 0,
		}
	}
	return ret
}

// Dump writes a human readable form of the digit-pair table to w.
func Dump(w io.Writer) {
	c := spew.NewDefaultConfig()
	c.DisablePointerAddresses = true
	c.DisableCapacities = true
	c.Fdump(w, Pairs())
}
