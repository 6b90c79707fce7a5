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
	"strings"
)

// listBase is embedded by nodes with an ordered child list.
type listBase struct {
	matchBase
	children Expressions
}

func (this *listBase) Children() Expressions {
	return this.children
}

func (this *listBase) SetChildren(children Expressions) {
	this.children = children
}

func (this *listBase) Add(child Expression) {
	this.children = append(this.children, child)
}

func (this *listBase) string(name string) string {
	var sb strings.Builder
	sb.WriteString(name)
	sb.WriteString(": [")
	for i, child := range this.children {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(child.String())
	}
	sb.WriteString("]")
	return sb.String()
}

// ListExpression is satisfied by AND and OR, whose child lists grow
// when the planner folds residual filters together.
type ListExpression interface {
	Expression
	Add(child Expression)
}

type And struct {
	listBase
}

func NewAnd(operands ...Expression) *And {
	rv := &And{}
	rv.children = operands
	return rv
}

func (this *And) MatchType() MatchType {
	return AND
}

func (this *And) Copy() Expression {
	rv := &And{}
	rv.matchBase = this.copyBase()
	rv.children = copyAll(this.children)
	return rv
}

func (this *And) String() string {
	return this.string("$and")
}

type Or struct {
	listBase
}

func NewOr(operands ...Expression) *Or {
	rv := &Or{}
	rv.children = operands
	return rv
}

func (this *Or) MatchType() MatchType {
	return OR
}

func (this *Or) Copy() Expression {
	rv := &Or{}
	rv.matchBase = this.copyBase()
	rv.children = copyAll(this.children)
	return rv
}

func (this *Or) String() string {
	return this.string("$or")
}

type Not struct {
	listBase
}

func NewNot(operand Expression) *Not {
	rv := &Not{}
	rv.children = Expressions{operand}
	return rv
}

func (this *Not) MatchType() MatchType {
	return NOT
}

func (this *Not) Operand() Expression {
	return this.children[0]
}

func (this *Not) Copy() Expression {
	rv := &Not{}
	rv.matchBase = this.copyBase()
	rv.children = copyAll(this.children)
	return rv
}

func (this *Not) String() string {
	return "$not: {" + this.Operand().String() + "}"
}
