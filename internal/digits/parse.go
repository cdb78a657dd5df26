/*
 * Copyright 2025 CloudWeGo Authors
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

package digits

import (
	"math"
)

// ParsePositive accumulates the decimal digits of s into an int32.
//
// The accumulation is not interrupted by non-digit characters: bad reports
// the index of the first one (or -1), and callers decide whether the result
// can be used. ovf is set as soon as the digits seen so far leave the int32
// range, after which v wraps. Non-digit characters never set ovf.
func ParsePositive(s string) (v int32, bad int, ovf bool) {
	bad = -1
	for i := 0; i < len(s); i++ {
		d := int32(s[i]) - '0'
		if uint32(d) > 9 {
			if bad < 0 {
				bad = i
			}
		} else if !ovf && v > (math.MaxInt32-d)/10 {
			ovf = true
		}
		v = (v << 3) + (v << 1) + d
	}
	return
}

// ParseSigned accumulates an optionally '-' prefixed decimal string into an
// int64. Negative values are built by subtracting digits, so the minimum
// int64 parses without overflow.
//
// bad is the index of the first non-digit (or -1), except for the two texts
// that end before any digit: "" reports bad == 0 and "-" reports bad == 1,
// i.e. bad == len(s) in both cases. ovf is only ever set by digits.
func ParseSigned(s string) (v int64, bad int, ovf bool) {
	if len(s) == 0 {
		return 0, 0, false
	}
	i, neg := 0, s[0] == '-'
	if neg {
		if len(s) == 1 {
			return 0, 1, false
		}
		i = 1
	}
	bad = -1
	for ; i < len(s); i++ {
		d := int64(s[i]) - '0'
		if uint64(d) > 9 {
			if bad < 0 {
				bad = i
			}
		} else if !ovf {
			if neg {
				ovf = v < (math.MinInt64+d)/10
			} else {
				ovf = v > (math.MaxInt64-d)/10
			}
		}
		if neg {
			v = (v << 3) + (v << 1) - d
		} else {
			v = (v << 3) + (v << 1) + d
		}
	}
	return
}
