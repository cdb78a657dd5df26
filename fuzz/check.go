// Copyright 2022 CloudWeGo Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package fuzz

import (
	"fmt"

	"github.com/cloudwego/gopkg/unsafex"

	"github.com/cloudwego/dectext/internal/digits"
)

// Check checks if text is a valid decimal int64, and tells whether it is in
// the canonical form.
func Check(text []byte) (Kind, error) {
	s := unsafex.BinaryToString(text)
	_, bad, ovf := digits.ParseSigned(s)
	if len(s) == 0 {
		return Invalid, fmt.Errorf("empty text")
	}
	if bad >= 0 {
		return Invalid, fmt.Errorf("unexpected %q at position %d", s[min(bad, len(s)-1)], bad)
	}
	if ovf {
		return Invalid, fmt.Errorf("value out of range")
	}
	d := s
	if d[0] == '-' {
		d = d[1:]
	}
	if len(d) > 1 && d[0] == '0' || s == "-0" {
		return Padded, nil
	}
	return Canonical, nil
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
