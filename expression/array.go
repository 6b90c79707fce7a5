//  Copyright (c) 2026 Docustore, Inc.
//  Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file
//  except in compliance with the License. You may obtain a copy of the License at
//    http://www.apache.org/licenses/LICENSE-2.0
//  Unless required by applicable law or agreed to in writing, software distributed under the
//  License is distributed on an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND,
//  either express or implied. See the License for the specific language governing permissions
//  and limitations under the License.

package expression

// arrayBase is embedded by the array operators. Their children are
// predicates evaluated per array element of the node's path.
type arrayBase struct {
	listBase
}

// All matches when every clause is satisfied by some element of the
// array at the node's path. Canonicalization rewrites each clause into
// an ELEM_MATCH_VALUE or a per-element predicate.
type All struct {
	arrayBase
}

func NewAll(path string, operands ...Expression) *All {
	rv := &All{}
	rv.path = path
	rv.children = operands
	return rv
}

func (this *All) MatchType() MatchType {
	return ALL
}

func (this *All) Copy() Expression {
	rv := &All{}
	rv.matchBase = this.copyBase()
	rv.children = copyAll(this.children)
	return rv
}

func (this *All) String() string {
	return this.string(this.path + " $all")
}

// ElemMatchObject matches when one array element, treated as a
// document, satisfies the sole child (an AND over the element's
// fields). Child paths are relative to the element.
type ElemMatchObject struct {
	arrayBase
}

func NewElemMatchObject(path string, child Expression) *ElemMatchObject {
	rv := &ElemMatchObject{}
	rv.path = path
	rv.children = Expressions{child}
	return rv
}

func (this *ElemMatchObject) MatchType() MatchType {
	return ELEM_MATCH_OBJECT
}

func (this *ElemMatchObject) Copy() Expression {
	rv := &ElemMatchObject{}
	rv.matchBase = this.copyBase()
	rv.children = copyAll(this.children)
	return rv
}

func (this *ElemMatchObject) String() string {
	return this.string(this.path + " $elemMatch")
}

// ElemMatchValue matches when one array element satisfies every
// child; the children apply to the element value itself.
type ElemMatchValue struct {
	arrayBase
}

func NewElemMatchValue(path string, operands ...Expression) *ElemMatchValue {
	rv := &ElemMatchValue{}
	rv.path = path
	rv.children = operands
	return rv
}

func (this *ElemMatchValue) MatchType() MatchType {
	return ELEM_MATCH_VALUE
}

func (this *ElemMatchValue) Copy() Expression {
	rv := &ElemMatchValue{}
	rv.matchBase = this.copyBase()
	rv.children = copyAll(this.children)
	return rv
}

func (this *ElemMatchValue) String() string {
	return this.string(this.path + " $elemMatch value")
}
