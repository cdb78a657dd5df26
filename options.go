/*
 * Copyright 2022 CloudWeGo Authors
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
	"github.com/cloudwego/dectext/internal/opts"
)

// Option is the property setter function for opts.Options.
type Option func(*opts.Options)

// WithStrictDigits makes the free-form parsers reject text containing
// non-digit characters after the first one.
//
// When disabled, such characters are folded into the value unchecked, which
// is only safe for input already known to be well-formed.
//
// The default value of this option is "true".
func WithStrictDigits(v bool) Option {
	return func(o *opts.Options) { o.StrictDigits = v }
}

// WithCheckOverflow makes the free-form parsers reject values that do not
// fit the result type instead of letting them wrap.
//
// The default value of this option is "false".
func WithCheckOverflow(v bool) Option {
	return func(o *opts.Options) { o.CheckOverflow = v }
}

// SetStrictDigits sets the default digit validation mode for all parsers
// created from now on, including the package-level functions.
//
// This value can also be configured with the `DECTEXT_STRICT_DIGITS`
// environment variable.
//
// Call it during initialisation only: the defaults are read without
// synchronisation by NewParser and debug.GetStats.
//
// Returns the old opts.StrictDigits value.
func SetStrictDigits(v bool) bool {
	v, opts.StrictDigits = opts.StrictDigits, v
	defaultParser.Store(NewParser())
	return v
}

// SetCheckOverflow sets the default overflow checking mode for all parsers
// created from now on, including the package-level functions.
//
// This value can also be configured with the `DECTEXT_CHECK_OVERFLOW`
// environment variable.
//
// Call it during initialisation only: the defaults are read without
// synchronisation by NewParser and debug.GetStats.
//
// Returns the old opts.CheckOverflow value.
func SetCheckOverflow(v bool) bool {
	v, opts.CheckOverflow = opts.CheckOverflow, v
	defaultParser.Store(NewParser())
	return v
}
