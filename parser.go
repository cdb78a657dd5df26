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
	"math"
	"sync/atomic"

	"github.com/cloudwego/dectext/internal/digits"
	"github.com/cloudwego/dectext/internal/opts"
)

// Parser parses free-form decimal text according to a fixed set of options.
// A Parser is immutable and safe for concurrent use.
type Parser struct {
	opts opts.Options
}

var defaultParser atomic.Value

func init() {
	defaultParser.Store(NewParser())
}

func getDefaultParser() *Parser {
	return defaultParser.Load().(*Parser)
}

// NewParser creates a Parser from the process defaults overridden by options.
func NewParser(options ...Option) *Parser {
	p := &Parser{opts: opts.GetDefaultOptions()}
	for _, fn := range options {
		fn(&p.opts)
	}
	return p
}

// TryParsePositiveInt parses s as a non-negative decimal int32.
//
// It returns false when s is empty or does not start with a digit, and,
// depending on the options, when a later character is not a digit or the
// value overflows. Leading zeros are accepted.
func (self *Parser) TryParsePositiveInt(s string) (int32, bool) {
	if len(s) == 0 || !digits.IsDigit(s[0]) {
		return 0, false
	}
	v, bad, ovf := digits.ParsePositive(s)
	if !self.opts.Accepts(bad, ovf) {
		return 0, false
	}
	return v, true
}

// ParseLong parses s as an optionally '-' prefixed decimal int64.
func (self *Parser) ParseLong(s string) (int64, error) {
	v, ovf, err := self.parseSigned("ParseLong", s)
	if err != nil {
		return 0, err
	}
	if ovf && self.opts.CheckOverflow {
		return 0, eoverflow("ParseLong", s)
	}
	return v, nil
}

// ParseInt32 parses s like ParseLong, and reports ErrOverflow when the
// value does not fit an int32, regardless of the overflow option.
func (self *Parser) ParseInt32(s string) (int32, error) {
	v, ovf, err := self.parseSigned("ParseInt32", s)
	if err != nil {
		return 0, err
	}
	if ovf || v < math.MinInt32 || v > math.MaxInt32 {
		return 0, eoverflow("ParseInt32", s)
	}
	return int32(v), nil
}

// parseSigned applies the digit policy; the overflow policy is left to the
// caller, since it depends on the result type.
func (self *Parser) parseSigned(fn string, s string) (int64, bool, error) {
	v, bad, ovf := digits.ParseSigned(s)
	switch {
	case bad == len(s): // "" and "-"
		return 0, false, eformat(fn, s, bad)
	case bad >= 0 && self.opts.StrictDigits:
		return 0, false, eformat(fn, s, bad)
	}
	return v, ovf, nil
}
