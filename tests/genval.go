/*
 * Copyright 2021 ByteDance Inc.
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

package tests

import (
	"math/rand"
)

// mkint rotates the low bit to the top so that negative values are as
// frequent as positive ones.
func mkint(v uint64) int64 {
	return int64((v << 63) | (v >> 1))
}

// GenInt64 returns a random int64 with a uniformly distributed number of
// significant digits.
func GenInt64() int64 {
	return mkint(rand.Uint64() >> uint(rand.Intn(64)))
}

// GenInt32 returns a random int32 with a uniformly distributed number of
// significant digits.
func GenInt32() int32 {
	v := rand.Uint32() >> uint(rand.Intn(32))
	if rand.Intn(2) == 0 {
		return int32(v)
	}
	return -int32(v)
}

// GenDigits returns a random run of n ASCII digits.
func GenDigits(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte('0' + rand.Intn(10))
	}
	return string(b)
}

// Boundaries returns every value whose decimal length differs from that of
// its neighbours, together with the neighbours, in both signs.
func Boundaries() []int64 {
	ret := []int64{0, 1, -1, -9223372036854775808, 9223372036854775807}
	for p := int64(10); p > 0 && p <= 1000000000000000000; p *= 10 {
		ret = append(ret, p-1, p, p+1, -p+1, -p, -p-1)
	}
	return ret
}
