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

package dectext

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializeInt32(t *testing.T) {
	buf := make([]byte, 4+MaxLen32)
	for _, v := range []int32{0, 1, -1, 7, -7, 10, 99, 100, -100, 12345, math.MaxInt32, math.MinInt32, math.MinInt32 + 1} {
		off, err := SerializeInt32(buf, 4, v)
		require.NoError(t, err)
		s := strconv.FormatInt(int64(v), 10)
		require.Equal(t, 4+len(s), off)
		require.Equal(t, s, string(buf[4:off]))
	}
}

func TestSerializeInt64(t *testing.T) {
	buf := make([]byte, 3+MaxLen64)
	for _, v := range []int64{0, 1, -1, 99, -100, math.MaxInt32, math.MinInt32, math.MaxInt64, math.MinInt64, math.MinInt64 + 1} {
		off, err := SerializeInt64(buf, 3, v)
		require.NoError(t, err)
		s := strconv.FormatInt(v, 10)
		require.Equal(t, 3+len(s), off)
		require.Equal(t, s, string(buf[3:off]))
	}
}

func TestSerialize_KnownTexts(t *testing.T) {
	buf := make([]byte, MaxLen64)
	n, err := SerializeInt32(buf, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, "0", string(buf[:n]))
	n, err = SerializeInt32(buf, 0, math.MinInt32)
	require.NoError(t, err)
	assert.Equal(t, "-2147483648", string(buf[:n]))
	n, err = SerializeInt64(buf, 0, math.MinInt64)
	require.NoError(t, err)
	assert.Equal(t, "-9223372036854775808", string(buf[:n]))
}

func TestSerialize_BufferTooShort(t *testing.T) {
	buf := make([]byte, 8, 64)
	off, err := SerializeInt64(buf, 2, -1234567)
	require.Error(t, err)
	require.Equal(t, 2, off)
	require.True(t, errors.Is(err, ErrIndexOutOfRange))
	var re *RangeError
	require.True(t, errors.As(err, &re))
	require.Equal(t, 8, re.Need)
	require.Equal(t, 2, re.Off)
	require.Equal(t, 8, re.Len)

	_, err = SerializeInt32(buf, 9, 1)
	require.True(t, errors.Is(err, ErrIndexOutOfRange))
	_, err = SerializeInt32(buf, -1, 1)
	require.True(t, errors.Is(err, ErrIndexOutOfRange))

	// exactly enough room
	off, err = SerializeInt32(buf, 7, 5)
	require.NoError(t, err)
	require.Equal(t, 8, off)
}

func TestSerialize_RoundTripRandom(t *testing.T) {
	gofakeit.Seed(20251017)
	buf := make([]byte, MaxLen64)
	for i := 0; i < 10000; i++ {
		v64 := gofakeit.Int64()
		if i%2 == 1 {
			v64 = -v64
		}
		n, err := SerializeInt64(buf, 0, v64)
		require.NoError(t, err)
		got, err := ParseLong(string(buf[:n]))
		require.NoError(t, err)
		if got != v64 {
			t.Fatal(spew.Sdump(v64, got, buf[:n]))
		}

		v32 := gofakeit.Int32()
		n, err = SerializeInt32(buf, 0, v32)
		require.NoError(t, err)
		got32, err := ParseInt32(string(buf[:n]))
		require.NoError(t, err)
		require.Equal(t, v32, got32)
	}
}

func TestFixedWidth_RoundTrip(t *testing.T) {
	buf := make([]byte, 6)
	for v := 0; v <= 99; v++ {
		require.NoError(t, Write2(buf, 1, v))
		got, err := Read2(buf, 1)
		require.NoError(t, err)
		require.Equal(t, v, got)
	}
	for v := 0; v <= 9999; v++ {
		require.NoError(t, Write4(buf, 2, v))
		got, err := Read4(buf, 2)
		require.NoError(t, err)
		require.Equal(t, v, got)
	}
	require.NoError(t, Write4(buf, 0, 7))
	require.Equal(t, "0007", string(buf[:4]))
	require.NoError(t, Write2(buf, 4, 5))
	require.Equal(t, "05", string(buf[4:]))
}

func TestFixedWidth_Errors(t *testing.T) {
	buf := make([]byte, 4)
	err := Write2(buf, 0, 100)
	require.True(t, errors.Is(err, ErrValueOutOfRange))
	require.EqualError(t, err, "dectext.Write2: value 100 does not fit in 2 digits")
	require.True(t, errors.Is(Write2(buf, 0, -1), ErrValueOutOfRange))
	require.True(t, errors.Is(Write4(buf, 0, 10000), ErrValueOutOfRange))
	require.True(t, errors.Is(Write2(buf, 3, 1), ErrIndexOutOfRange))
	require.True(t, errors.Is(Write4(buf, 1, 1), ErrIndexOutOfRange))

	_, err = Read2([]byte("1"), 0)
	require.True(t, errors.Is(err, ErrIndexOutOfRange))
	_, err = Read4([]byte("12345"), 2)
	require.True(t, errors.Is(err, ErrIndexOutOfRange))
	_, err = Read4([]byte("12a4"), 0)
	require.True(t, errors.Is(err, ErrInvalidFormat))
	var fe *FormatError
	require.True(t, errors.As(err, &fe))
	require.Equal(t, 2, fe.Pos)
	_, err = Read2([]byte("-1"), 0)
	require.True(t, errors.Is(err, ErrInvalidFormat))
}

func TestAppendInt(t *testing.T) {
	b := []byte("id=")
	b = AppendInt64(b, math.MinInt64)
	b = append(b, ',')
	b = AppendInt32(b, 42)
	require.Equal(t, "id=-9223372036854775808,42", string(b))

	b = make([]byte, 0, 64)
	b = AppendInt64(b, -5)
	require.Equal(t, "-5", string(b))
	require.Equal(t, 64, cap(b))
}

func TestFormatInt(t *testing.T) {
	require.Equal(t, "0", FormatInt64(0))
	require.Equal(t, "-9223372036854775808", FormatInt64(math.MinInt64))
	require.Equal(t, "9223372036854775807", FormatInt64(math.MaxInt64))
	require.Equal(t, "-2147483648", FormatInt32(math.MinInt32))
	require.Equal(t, "31", FormatInt32(31))
}

func BenchmarkSerializeInt64(b *testing.B) {
	buf := make([]byte, MaxLen64)
	for i := 0; i < b.N; i++ {
		_, _ = SerializeInt64(buf, 0, int64(i)*-104729)
	}
}

func BenchmarkFormatInt64(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = FormatInt64(int64(i) * -104729)
	}
}
