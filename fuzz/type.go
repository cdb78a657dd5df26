// Copyright 2022 CloudWeGo Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package fuzz

// Kind classifies a syntactically valid decimal text.
type Kind int

const (
	Invalid Kind = iota

	// Canonical is the exact text dectext produces for the value.
	Canonical

	// Padded is a valid number spelt with redundant leading zeros, or "-0".
	Padded
)

func (k Kind) String() string {
	switch k {
	case Canonical:
		return "canonical"
	case Padded:
		return "padded"
	default:
		return "invalid"
	}
}
