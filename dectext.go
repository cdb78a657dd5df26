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

// Package dectext writes and reads signed integers as decimal ASCII text,
// directly in caller-owned buffers.
//
// Values are produced two digits at a time from a precomputed table and
// written back-to-front, which makes SerializeInt64 noticeably cheaper than
// strconv.AppendInt on the hot paths of wire encoders. Parsers do not
// allocate, and by default let out-of-range values wrap around; see
// WithCheckOverflow.
package dectext

import (
	"github.com/bytedance/gopkg/lang/dirtmake"
	"github.com/cloudwego/gopkg/unsafex"

	"github.com/cloudwego/dectext/internal/digits"
)

const (
	// MaxLen32 is the length of the longest decimal int32, "-2147483648".
	MaxLen32 = digits.MaxLen32

	// MaxLen64 is the length of the longest decimal int64, "-9223372036854775808".
	MaxLen64 = digits.MaxLen64
)

// Write2 writes v (0 <= v <= 99) as exactly two digits at buf[off:off+2],
// with a leading zero if needed.
func Write2(buf []byte, off int, v int) error {
	if v < 0 || v > 99 {
		return evalue("Write2", v, 2)
	}
	if !fits(buf, off, 2) {
		return ebuffer("Write2", buf, off, 2)
	}
	digits.Write2(buf[off:], v)
	return nil
}

// Write4 writes v (0 <= v <= 9999) as exactly four digits at buf[off:off+4],
// with leading zeros if needed.
func Write4(buf []byte, off int, v int) error {
	if v < 0 || v > 9999 {
		return evalue("Write4", v, 4)
	}
	if !fits(buf, off, 4) {
		return ebuffer("Write4", buf, off, 4)
	}
	digits.Write4(buf[off:], v)
	return nil
}

// Read2 parses the two digits at buf[off:off+2].
func Read2(buf []byte, off int) (int, error) {
	if !fits(buf, off, 2) {
		return 0, ebuffer("Read2", buf, off, 2)
	}
	if err := checkDigits("Read2", buf[off:off+2]); err != nil {
		return 0, err
	}
	return digits.Read2(buf[off:]), nil
}

// Read4 parses the four digits at buf[off:off+4].
func Read4(buf []byte, off int) (int, error) {
	if !fits(buf, off, 4) {
		return 0, ebuffer("Read4", buf, off, 4)
	}
	if err := checkDigits("Read4", buf[off:off+4]); err != nil {
		return 0, err
	}
	return digits.Read4(buf[off:]), nil
}

func checkDigits(fn string, b []byte) error {
	for i, c := range b {
		if !digits.IsDigit(c) {
			return eformat(fn, string(b), i)
		}
	}
	return nil
}

// SerializeInt32 writes the decimal text of v at buf[off:] and returns the
// offset right after it. buf must have room for the whole text; MaxLen32
// bytes are always enough.
func SerializeInt32(buf []byte, off int, v int32) (int, error) {
	if n := digits.Len32(v); !fits(buf, off, n) {
		return off, ebuffer("SerializeInt32", buf, off, n)
	}
	return off + digits.Serialize32(buf[off:], v), nil
}

// SerializeInt64 writes the decimal text of v at buf[off:] and returns the
// offset right after it. buf must have room for the whole text; MaxLen64
// bytes are always enough.
func SerializeInt64(buf []byte, off int, v int64) (int, error) {
	if n := digits.Len64(v); !fits(buf, off, n) {
		return off, ebuffer("SerializeInt64", buf, off, n)
	}
	return off + digits.Serialize64(buf[off:], v), nil
}

// AppendInt32 appends the decimal text of v to dst.
func AppendInt32(dst []byte, v int32) []byte {
	return AppendInt64(dst, int64(v))
}

// AppendInt64 appends the decimal text of v to dst.
func AppendInt64(dst []byte, v int64) []byte {
	n := len(dst)
	if cap(dst)-n < MaxLen64 {
		dst = append(dst, make([]byte, MaxLen64)...)
	}
	dst = dst[:n+MaxLen64]
	return dst[:n+digits.Serialize64(dst[n:], v)]
}

// FormatInt32 returns the decimal text of v.
func FormatInt32(v int32) string {
	return FormatInt64(int64(v))
}

// FormatInt64 returns the decimal text of v.
func FormatInt64(v int64) string {
	n := digits.Len64(v)
	buf := dirtmake.Bytes(n, n)
	digits.Serialize64(buf, v)
	return unsafex.BinaryToString(buf)
}

// TryParsePositiveInt parses s as a non-negative decimal int32 using the
// default parser. See Parser.TryParsePositiveInt.
func TryParsePositiveInt(s string) (int32, bool) {
	return getDefaultParser().TryParsePositiveInt(s)
}

// ParseLong parses s as an optionally signed decimal int64 using the default
// parser. See Parser.ParseLong.
func ParseLong(s string) (int64, error) {
	return getDefaultParser().ParseLong(s)
}

// ParseInt32 parses s as an optionally signed decimal int32 using the default
// parser. See Parser.ParseInt32.
func ParseInt32(s string) (int32, error) {
	return getDefaultParser().ParseInt32(s)
}
