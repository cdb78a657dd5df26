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

// Package thriftnum encodes integers as Thrift strings holding decimal text.
//
// IDLs shared with JavaScript clients commonly declare 64-bit identifiers as
// `string` so that they survive a round trip through float64. The helpers
// below produce and consume exactly what the Thrift Binary Protocol writes
// for such a string field, without going through an intermediate Go string.
package thriftnum

import (
	"errors"

	"github.com/cloudwego/gopkg/gridbuf"
	"github.com/cloudwego/gopkg/protocol/thrift"
	"github.com/cloudwego/gopkg/unsafex"

	"github.com/cloudwego/dectext"
	"github.com/cloudwego/dectext/internal/digits"
)

// ErrInvalidLength is returned when a string header is truncated, announces
// a negative length, or more bytes than the buffer holds.
var ErrInvalidLength = errors.New("thriftnum: invalid string length")

var parser = dectext.NewParser(
	dectext.WithStrictDigits(true),
	dectext.WithCheckOverflow(true),
)

// StringLength32 returns the encoded size of v as a Thrift string.
func StringLength32(v int32) int {
	return 4 + digits.Len32(v)
}

// StringLength64 returns the encoded size of v as a Thrift string.
func StringLength64(v int64) int {
	return 4 + digits.Len64(v)
}

// WriteI32String writes v as a Thrift string into buf and returns the number
// of bytes written. buf must hold at least StringLength32(v) bytes.
func WriteI32String(buf []byte, v int32) int {
	n := digits.Serialize32(buf[4:], v)
	thrift.Binary.WriteI32(buf, int32(n))
	return 4 + n
}

// WriteI64String writes v as a Thrift string into buf and returns the number
// of bytes written. buf must hold at least StringLength64(v) bytes.
func WriteI64String(buf []byte, v int64) int {
	n := digits.Serialize64(buf[4:], v)
	thrift.Binary.WriteI32(buf, int32(n))
	return 4 + n
}

// AppendI32String appends v as a Thrift string to b.
func AppendI32String(b []byte, v int32) []byte {
	return AppendI64String(b, int64(v))
}

// AppendI64String appends v as a Thrift string to b.
func AppendI64String(b []byte, v int64) []byte {
	p := len(b)
	b = dectext.AppendInt64(append(b, 0, 0, 0, 0), v)
	thrift.Binary.WriteI32(b[p:], int32(len(b)-p-4))
	return b
}

// GridWriteI64String writes v as a Thrift string into a grid buffer.
func GridWriteI64String(b *gridbuf.WriteBuffer, v int64) {
	n := digits.Len64(v)
	buf := b.MallocN(4 + n)
	thrift.Binary.WriteI32(buf, int32(n))
	digits.Serialize64(buf[4:], v)
}

// ReadI64String decodes a Thrift string holding a decimal int64, and returns
// the value and the number of bytes consumed.
func ReadI64String(buf []byte) (int64, int, error) {
	s, l, err := peekString(buf)
	if err != nil {
		return 0, 0, err
	}
	v, err := parser.ParseLong(s)
	if err != nil {
		return 0, 0, detach(err)
	}
	return v, l, nil
}

// ReadI32String decodes a Thrift string holding a decimal int32, and returns
// the value and the number of bytes consumed.
func ReadI32String(buf []byte) (int32, int, error) {
	s, l, err := peekString(buf)
	if err != nil {
		return 0, 0, err
	}
	v, err := parser.ParseInt32(s)
	if err != nil {
		return 0, 0, detach(err)
	}
	return v, l, nil
}

// peekString returns the string payload at the head of buf without copying.
// The result aliases buf.
func peekString(buf []byte) (string, int, error) {
	if len(buf) < 4 {
		return "", 0, ErrInvalidLength
	}
	sz, l, err := thrift.Binary.ReadI32(buf)
	if err != nil {
		return "", 0, err
	}
	if sz < 0 || int(sz) > len(buf)-l {
		return "", 0, ErrInvalidLength
	}
	return unsafex.BinaryToString(buf[l : l+int(sz)]), l + int(sz), nil
}

// detach makes sure the returned error does not keep a reference to the
// decoded buffer.
func detach(err error) error {
	var fe *dectext.FormatError
	if errors.As(err, &fe) {
		fe.Src = string(unsafex.StringToBinary(fe.Src))
	}
	return err
}
