//  Copyright (c) 2026 Docustore, Inc.
//  Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file
//  except in compliance with the License. You may obtain a copy of the License at
//    http://www.apache.org/licenses/LICENSE-2.0
//  Unless required by applicable law or agreed to in writing, software distributed under the
//  License is distributed on an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND,
//  either express or implied. See the License for the specific language governing permissions
//  and limitations under the License.

/*
Package expression represents the canonicalized match-expression tree
the planner consumes. Trees arrive from the canonicalizer with index
tags already assigned by the plan enumerator; the planner consumes the
tree destructively.
*/
package expression

type MatchType int

const (
	AND = MatchType(iota)
	OR
	NOT
	EQ
	LT
	LE
	GT
	GE
	REGEXP
	EXISTS
	TYPE
	ALL
	ELEM_MATCH_OBJECT
	ELEM_MATCH_VALUE
	GEO
	GEO_NEAR
	TEXT
)

var _MATCH_TYPE_NAMES = []string{
	AND:               "$and",
	OR:                "$or",
	NOT:               "$not",
	EQ:                "$eq",
	LT:                "$lt",
	LE:                "$lte",
	GT:                "$gt",
	GE:                "$gte",
	REGEXP:            "$regex",
	EXISTS:            "$exists",
	TYPE:              "$type",
	ALL:               "$all",
	ELEM_MATCH_OBJECT: "$elemMatch",
	ELEM_MATCH_VALUE:  "$elemMatch",
	GEO:               "$geoWithin",
	GEO_NEAR:          "$near",
	TEXT:              "$text",
}

func (this MatchType) String() string {
	return _MATCH_TYPE_NAMES[this]
}

func (this MatchType) IsLogical() bool {
	return this == AND || this == OR || this == NOT
}

func (this MatchType) IsArrayOperator() bool {
	return this == ALL || this == ELEM_MATCH_OBJECT || this == ELEM_MATCH_VALUE
}

type Expression interface {
	MatchType() MatchType

	// Path is the dotted field the node applies to; empty for
	// logical nodes.
	Path() string

	// Children of logical and array nodes, in order. The slice is
	// owned by the node; the planner detaches children by calling
	// SetChildren with a shortened slice.
	Children() Expressions
	SetChildren(children Expressions)

	Tag() *IndexTag
	SetTag(tag *IndexTag)

	// Copy is a deep copy; tags are copied too.
	Copy() Expression

	String() string
}

type Expressions []Expression

// matchBase carries the state common to every node.
type matchBase struct {
	path string
	tag  *IndexTag
}

func (this *matchBase) Path() string {
	return this.path
}

func (this *matchBase) Tag() *IndexTag {
	return this.tag
}

func (this *matchBase) SetTag(tag *IndexTag) {
	this.tag = tag
}

func (this *matchBase) copyBase() matchBase {
	rv := matchBase{path: this.path}
	if this.tag != nil {
		rv.tag = this.tag.Copy()
	}
	return rv
}

// leafBase is embedded by nodes without children.
type leafBase struct {
	matchBase
}

func (this *leafBase) Children() Expressions {
	return nil
}

func (this *leafBase) SetChildren(children Expressions) {
}

// RemoveChild detaches the child at position i, preserving the order
// of the remaining children.
func RemoveChild(parent Expression, i int) Expression {
	children := parent.Children()
	child := children[i]
	parent.SetChildren(append(children[:i:i], children[i+1:]...))
	return child
}

func copyAll(exprs Expressions) Expressions {
	if exprs == nil {
		return nil
	}
	rv := make(Expressions, len(exprs))
	for i, expr := range exprs {
		rv[i] = expr.Copy()
	}
	return rv
}
