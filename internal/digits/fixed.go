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

// Write2 writes v (0 <= v < 100) as exactly two digits into b[0:2].
func Write2(b []byte, v int) {
	_ = b[1]
	p := Pairs[v]
	b[0] = Hi(p)
	b[1] = Lo(p)
}

// Write4 writes v (0 <= v < 10000) as exactly four digits into b[0:4].
func Write4(b []byte, v int) {
	_ = b[3]
	q := v / 100
	Write2(b, q)
	Write2(b[2:], v-q*100)
}

// Read2 parses two ASCII digits from b[0:2]. Non-digit input is not detected.
func Read2(b []byte) int {
	_ = b[1]
	x := int(b[0]) - '0'
	return (x << 3) + (x << 1) + int(b[1]) - '0'
}

// Read4 parses four ASCII digits from b[0:4]. Non-digit input is not detected.
func Read4(b []byte) int {
	_ = b[3]
	x0 := int(b[0]) - '0'
	x1 := int(b[1]) - '0'
	x2 := int(b[2]) - '0'
	// x0*1000 + x1*100 + x2*10
	return (x0 << 10) - (x0 << 4) - (x0 << 3) +
		(x1 << 6) + (x1 << 5) + (x1 << 2) +
		(x2 << 3) + (x2 << 1) +
		int(b[3]) - '0'
}

// IsDigit reports whether c is an ASCII decimal digit.
func IsDigit(c byte) bool {
	return c-'0' < 10
}
