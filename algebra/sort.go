//  Copyright (c) 2026 Docustore, Inc.
//  Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file
//  except in compliance with the License. You may obtain a copy of the License at
//    http://www.apache.org/licenses/LICENSE-2.0
//  Unless required by applicable law or agreed to in writing, software distributed under the
//  License is distributed on an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND,
//  either express or implied. See the License for the specific language governing permissions
//  and limitations under the License.

package algebra

import (
	"strconv"
	"strings"
)

// SortTerm is one component of a requested or provided sort order.
// Direction is 1 or -1.
type SortTerm struct {
	Field     string
	Direction int
}

// SortKey is an ordered sort specification. The zero value means no
// sort was requested.
type SortKey []SortTerm

func NewSortKey(terms ...SortTerm) SortKey {
	return SortKey(terms)
}

func (this SortKey) Empty() bool {
	return len(this) == 0
}

func (this SortKey) Equals(other SortKey) bool {
	if len(this) != len(other) {
		return false
	}
	for i, term := range this {
		if term != other[i] {
			return false
		}
	}
	return true
}

// String is a canonical form; equal sort keys render identically, so
// the rendering is usable as a set element.
func (this SortKey) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, term := range this {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(term.Field)
		sb.WriteString(": ")
		sb.WriteString(strconv.Itoa(term.Direction))
	}
	sb.WriteByte('}')
	return sb.String()
}

// Natural returns the direction of a $natural component, or 0 if the
// key has none.
func (this SortKey) Natural() int {
	for _, term := range this {
		if term.Field == "$natural" {
			if term.Direction >= 0 {
				return 1
			}
			return -1
		}
	}
	return 0
}

// Reverse flips every direction; the order provided by a reversed
// scan.
func (this SortKey) Reverse() SortKey {
	rv := make(SortKey, len(this))
	for i, term := range this {
		rv[i] = SortTerm{Field: term.Field, Direction: -term.Direction}
	}
	return rv
}
