//  Copyright (c) 2026 Docustore, Inc.
//  Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file
//  except in compliance with the License. You may obtain a copy of the License at
//    http://www.apache.org/licenses/LICENSE-2.0
//  Unless required by applicable law or agreed to in writing, software distributed under the
//  License is distributed on an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND,
//  either express or implied. See the License for the specific language governing permissions
//  and limitations under the License.

package expression

import (
	"github.com/docustore/query/value"
)

type Regexp struct {
	leafBase
	pattern string
	options string
}

func NewRegexp(path, pattern, options string) *Regexp {
	rv := &Regexp{pattern: pattern, options: options}
	rv.path = path
	return rv
}

func (this *Regexp) MatchType() MatchType {
	return REGEXP
}

func (this *Regexp) Pattern() string {
	return this.pattern
}

func (this *Regexp) Options() string {
	return this.options
}

func (this *Regexp) Copy() Expression {
	rv := &Regexp{pattern: this.pattern, options: this.options}
	rv.matchBase = this.copyBase()
	return rv
}

func (this *Regexp) String() string {
	return this.path + " $regex /" + this.pattern + "/" + this.options
}

type Exists struct {
	leafBase
	exists bool
}

func NewExists(path string, exists bool) *Exists {
	rv := &Exists{exists: exists}
	rv.path = path
	return rv
}

func (this *Exists) MatchType() MatchType {
	return EXISTS
}

func (this *Exists) Exists() bool {
	return this.exists
}

func (this *Exists) Copy() Expression {
	rv := &Exists{exists: this.exists}
	rv.matchBase = this.copyBase()
	return rv
}

func (this *Exists) String() string {
	if this.exists {
		return this.path + " $exists: true"
	}
	return this.path + " $exists: false"
}

type TypeOf struct {
	leafBase
	checked value.Type
}

func NewTypeOf(path string, checked value.Type) *TypeOf {
	rv := &TypeOf{checked: checked}
	rv.path = path
	return rv
}

func (this *TypeOf) MatchType() MatchType {
	return TYPE
}

func (this *TypeOf) Checked() value.Type {
	return this.checked
}

func (this *TypeOf) Copy() Expression {
	rv := &TypeOf{checked: this.checked}
	rv.matchBase = this.copyBase()
	return rv
}

func (this *TypeOf) String() string {
	return this.path + " $type: " + this.checked.String()
}
