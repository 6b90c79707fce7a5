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

// comparison is the shared shape of the ordered-comparison leaves.
type comparison struct {
	leafBase
	matchType MatchType
	value     value.Value
}

func newComparison(matchType MatchType, path string, val value.Value) comparison {
	rv := comparison{matchType: matchType, value: val}
	rv.path = path
	return rv
}

func (this *comparison) MatchType() MatchType {
	return this.matchType
}

func (this *comparison) Value() value.Value {
	return this.value
}

func (this *comparison) String() string {
	return this.path + " " + this.matchType.String() + " " + this.value.String()
}

type Eq struct {
	comparison
}

func NewEq(path string, val value.Value) *Eq {
	return &Eq{newComparison(EQ, path, val)}
}

func (this *Eq) Copy() Expression {
	rv := &Eq{newComparison(EQ, this.path, this.value)}
	rv.matchBase = this.copyBase()
	return rv
}

type Lt struct {
	comparison
}

func NewLt(path string, val value.Value) *Lt {
	return &Lt{newComparison(LT, path, val)}
}

func (this *Lt) Copy() Expression {
	rv := &Lt{newComparison(LT, this.path, this.value)}
	rv.matchBase = this.copyBase()
	return rv
}

type Le struct {
	comparison
}

func NewLe(path string, val value.Value) *Le {
	return &Le{newComparison(LE, path, val)}
}

func (this *Le) Copy() Expression {
	rv := &Le{newComparison(LE, this.path, this.value)}
	rv.matchBase = this.copyBase()
	return rv
}

type Gt struct {
	comparison
}

func NewGt(path string, val value.Value) *Gt {
	return &Gt{newComparison(GT, path, val)}
}

func (this *Gt) Copy() Expression {
	rv := &Gt{newComparison(GT, this.path, this.value)}
	rv.matchBase = this.copyBase()
	return rv
}

type Ge struct {
	comparison
}

func NewGe(path string, val value.Value) *Ge {
	return &Ge{newComparison(GE, path, val)}
}

func (this *Ge) Copy() Expression {
	rv := &Ge{newComparison(GE, this.path, this.value)}
	rv.matchBase = this.copyBase()
	return rv
}

// Comparison exposes the literal a comparison leaf tests against.
// The bounds builder reads it without reflecting on concrete types.
type Comparison interface {
	Expression
	Value() value.Value
}
