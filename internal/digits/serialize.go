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

const (
	MinInt32Text = "-2147483648"
	MinInt64Text = "-9223372036854775808"
)

const (
	MaxLen32 = len(MinInt32Text)
	MaxLen64 = len(MinInt64Text)
)

// Len32 returns the length of the decimal text of v, sign included.
func Len32(v int32) int {
	return Len64(int64(v))
}

// Len64 returns the length of the decimal text of v, sign included.
func Len64(v int64) int {
	n, u := 1, uint64(v)
	if v < 0 {
		n, u = 2, -u
	}
	for u >= 100 {
		u /= 100
		n += 2
	}
	if u >= 10 {
		n++
	}
	return n
}

// Serialize32 writes the decimal text of v into b and returns its length.
// b must hold at least Len32(v) bytes.
func Serialize32(b []byte, v int32) int {
	if v == math.MinInt32 {
		_ = b[MaxLen32-1]
		return copy(b, MinInt32Text)
	}

	n, u := 0, uint32(v)
	if v < 0 {
		b[0] = '-'
		n, u = 1, uint32(-v)
	}

	var buf [10]byte
	var p uint32
	i := len(buf)

	/* two digits per round, from the least significant end */
	for {
		q := u / 100
		r := u - ((q << 6) + (q << 5) + (q << 2))
		u = q
		p = Pairs[r]
		i -= 2
		buf[i] = Hi(p)
		buf[i+1] = Lo(p)
		if u == 0 {
			break
		}
	}

	/* drop the padding zero of the leading pair */
	i += Short(p)
	m := len(buf) - i
	_ = b[n+m-1]
	return n + copy(b[n:], buf[i:])
}

// Serialize64 writes the decimal text of v into b and returns its length.
// b must hold at least Len64(v) bytes.
func Serialize64(b []byte, v int64) int {
	if v == math.MinInt64 {
		_ = b[MaxLen64-1]
		return copy(b, MinInt64Text)
	}

	n, u := 0, uint64(v)
	if v < 0 {
		b[0] = '-'
		n, u = 1, uint64(-v)
	}

	var buf [20]byte
	var p uint32
	i := len(buf)

	/* two digits per round, from the least significant end */
	for {
		q := u / 100
		r := u - ((q << 6) + (q << 5) + (q << 2))
		u = q
		p = Pairs[r]
		i -= 2
		buf[i] = Hi(p)
		buf[i+1] = Lo(p)
		if u == 0 {
			break
		}
	}

	/* drop the padding zero of the leading pair */
	i += Short(p)
	m := len(buf) - i
	_ = b[n+m-1]
	return n + copy(b[n:], buf[i:])
}
