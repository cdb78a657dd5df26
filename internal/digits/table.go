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

// Pairs maps every value in [0, 100) to its zero-padded two-digit text.
//
// Each entry is packed as hi | lo<<8 | short<<16, where hi and lo are the
// ASCII tens and units characters and short is 1 when the value is below 10,
// i.e. when hi is a leading zero.
var Pairs [100]uint32

func init() {
	for i := range Pairs {
		hi := uint32('0' + i/10)
		lo := uint32('0' + i%10)
		sh := uint32(0)
		if i < 10 {
			sh = 1
		}
		Pairs[i] = hi | lo<<8 | sh<<16
	}
}

// Hi returns the tens character of a packed pair.
func Hi(p uint32) byte { return byte(p) }

// Lo returns the units character of a packed pair.
func Lo(p uint32) byte { return byte(p >> 8) }

// Short returns 1 if the pair carries a leading zero, 0 otherwise.
func Short(p uint32) int { return int(p >> 16) }
