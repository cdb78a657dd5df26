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

package dectext

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidFormat is reported for text that is not a decimal number.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrOverflow is reported for numbers that do not fit the target type,
	// when overflow checking is enabled or the caller asked for a narrower type.
	ErrOverflow = errors.New("value out of range")

	// ErrIndexOutOfRange is reported when the buffer cannot hold the read or
	// written text at the given offset.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrValueOutOfRange is reported for values outside the domain of a
	// fixed-width writer.
	ErrValueOutOfRange = errors.New("value out of fixed-width domain")
)

// FormatError occures when a text cannot be parsed as a decimal number.
// Pos is the index of the offending character, or -1 when the whole value
// is at fault, as for ErrOverflow.
type FormatError struct {
	Func string
	Src  string
	Pos  int
	Err  error
}

func (self *FormatError) Error() string {
	if self.Pos < 0 {
		return fmt.Sprintf("dectext.%s: parsing %q: %s", self.Func, self.Src, self.Err)
	} else {
		return fmt.Sprintf("dectext.%s: parsing %q at position %d: %s", self.Func, self.Src, self.Pos, self.Err)
	}
}

func (self *FormatError) Unwrap() error {
	return self.Err
}

// RangeError occures when a buffer is too short for the requested operation,
// or when a value does not fit a fixed-width field.
type RangeError struct {
	Func  string
	Off   int
	Len   int
	Need  int
	Value int64
	Err   error
}

func (self *RangeError) Error() string {
	if self.Err == ErrValueOutOfRange {
		return fmt.Sprintf("dectext.%s: value %d does not fit in %d digits", self.Func, self.Value, self.Need)
	} else {
		return fmt.Sprintf("dectext.%s: need %d bytes at offset %d, buffer length is %d", self.Func, self.Need, self.Off, self.Len)
	}
}

func (self *RangeError) Unwrap() error {
	return self.Err
}

func eformat(fn string, src string, pos int) error {
	return &FormatError{
		Func: fn,
		Src:  src,
		Pos:  pos,
		Err:  ErrInvalidFormat,
	}
}

func eoverflow(fn string, src string) error {
	return &FormatError{
		Func: fn,
		Src:  src,
		Pos:  -1,
		Err:  ErrOverflow,
	}
}

func ebuffer(fn string, buf []byte, off int, need int) error {
	return &RangeError{
		Func: fn,
		Off:  off,
		Len:  len(buf),
		Need: need,
		Err:  ErrIndexOutOfRange,
	}
}

func evalue(fn string, v int, width int) error {
	return &RangeError{
		Func:  fn,
		Need:  width,
		Value: int64(v),
		Err:   ErrValueOutOfRange,
	}
}

// fits reports whether n bytes can be accessed at buf[off:].
func fits(buf []byte, off int, n int) bool {
	return off >= 0 && off <= len(buf) && len(buf)-off >= n
}
