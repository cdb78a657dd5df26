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

package thriftnum

import (
	"bytes"
	"errors"
	"math"
	"strconv"
	"testing"

	athrift "github.com/apache/thrift/lib/go/thrift"
	"github.com/brianvoe/gofakeit/v6"
	"github.com/cloudwego/gopkg/gridbuf"
	"github.com/stretchr/testify/require"

	"github.com/cloudwego/dectext"
)

var samples = []int64{
	0, 1, -1, 42, -42, 1e9, math.MaxInt32, math.MinInt32,
	math.MaxInt64, math.MinInt64, 9007199254740993,
}

func apacheWrite(t *testing.T, s string) []byte {
	mm := athrift.NewTMemoryBuffer()
	p := athrift.NewTBinaryProtocolTransport(mm)
	require.NoError(t, p.WriteString(s))
	return mm.Bytes()
}

func apacheRead(t *testing.T, b []byte) string {
	mm := athrift.NewTMemoryBuffer()
	_, _ = mm.Write(b)
	s, err := athrift.NewTBinaryProtocolTransport(mm).ReadString()
	require.NoError(t, err)
	return s
}

func TestWriteI64String(t *testing.T) {
	for _, v := range samples {
		buf := make([]byte, StringLength64(v))
		n := WriteI64String(buf, v)
		require.Equal(t, len(buf), n)
		require.Equal(t, apacheWrite(t, strconv.FormatInt(v, 10)), buf)
		require.Equal(t, strconv.FormatInt(v, 10), apacheRead(t, buf))
	}
}

func TestWriteI32String(t *testing.T) {
	for _, v64 := range samples {
		v := int32(v64)
		buf := make([]byte, StringLength32(v))
		n := WriteI32String(buf, v)
		require.Equal(t, len(buf), n)
		require.Equal(t, apacheWrite(t, strconv.FormatInt(int64(v), 10)), buf)
	}
}

func TestAppendI64String(t *testing.T) {
	b := []byte{0xff}
	for _, v := range samples {
		b = AppendI64String(b, v)
	}
	b = AppendI32String(b, -7)
	r := b[1:]
	for _, v := range samples {
		got, n, err := ReadI64String(r)
		require.NoError(t, err)
		require.Equal(t, v, got)
		r = r[n:]
	}
	got, n, err := ReadI32String(r)
	require.NoError(t, err)
	require.Equal(t, int32(-7), got)
	require.Equal(t, len(r), n)
}

func TestGridWriteI64String(t *testing.T) {
	gb := gridbuf.NewWriteBuffer()
	defer gb.Free()
	var want []byte
	for _, v := range samples {
		GridWriteI64String(gb, v)
		want = AppendI64String(want, v)
	}
	require.Equal(t, want, bytes.Join(gb.Bytes(), nil))
}

func TestReadI64String_Random(t *testing.T) {
	gofakeit.Seed(7)
	for i := 0; i < 1000; i++ {
		v := gofakeit.Int64()
		got, n, err := ReadI64String(apacheWrite(t, strconv.FormatInt(v, 10)))
		require.NoError(t, err)
		require.Equal(t, v, got)
		require.Equal(t, StringLength64(v), n)
	}
}

func TestReadI64String_Errors(t *testing.T) {
	_, _, err := ReadI64String([]byte{0, 0})
	require.True(t, errors.Is(err, ErrInvalidLength))

	_, _, err = ReadI64String([]byte{0, 0, 0, 5, '1', '2'})
	require.True(t, errors.Is(err, ErrInvalidLength))

	_, _, err = ReadI64String([]byte{0xff, 0xff, 0xff, 0xff})
	require.True(t, errors.Is(err, ErrInvalidLength))

	buf := apacheWrite(t, "12x4")
	_, _, err = ReadI64String(buf)
	require.True(t, errors.Is(err, dectext.ErrInvalidFormat))
	var fe *dectext.FormatError
	require.True(t, errors.As(err, &fe))
	buf[4] = '9'
	require.Equal(t, "12x4", fe.Src)

	_, _, err = ReadI64String(apacheWrite(t, ""))
	require.True(t, errors.Is(err, dectext.ErrInvalidFormat))

	_, _, err = ReadI64String(apacheWrite(t, "9223372036854775808"))
	require.True(t, errors.Is(err, dectext.ErrOverflow))

	_, _, err = ReadI32String(apacheWrite(t, "2147483648"))
	require.True(t, errors.Is(err, dectext.ErrOverflow))
}

func BenchmarkAppendI64String(b *testing.B) {
	buf := make([]byte, 0, 64)
	for i := 0; i < b.N; i++ {
		buf = AppendI64String(buf[:0], int64(i)<<20)
	}
}
