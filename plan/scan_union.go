//  Copyright (c) 2026 Docustore, Inc.
//  Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file
//  except in compliance with the License. You may obtain a copy of the License at
//    http://www.apache.org/licenses/LICENSE-2.0
//  Unless required by applicable law or agreed to in writing, software distributed under the
//  License is distributed on an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND,
//  either express or implied. See the License for the specific language governing permissions
//  and limitations under the License.

package plan

import (
	"encoding/json"

	"github.com/docustore/query/algebra"
)

// UnionScan unions its children, deduplicating record identifiers.
// Output order is unspecified.
type UnionScan struct {
	readonly
	unordered
	children Operators
}

func NewUnionScan(children ...Operator) *UnionScan {
	return &UnionScan{
		children: children,
	}
}

func (this *UnionScan) Accept(visitor Visitor) (interface{}, error) {
	return visitor.VisitUnionScan(this)
}

func (this *UnionScan) New() Operator {
	return &UnionScan{}
}

func (this *UnionScan) Children() Operators {
	return this.children
}

func (this *UnionScan) SetChildren(children Operators) {
	this.children = children
}

func (this *UnionScan) String() string {
	bytes, _ := this.MarshalJSON()
	return string(bytes)
}

func (this *UnionScan) MarshalJSON() ([]byte, error) {
	return json.Marshal(this.MarshalBase(nil))
}

func (this *UnionScan) MarshalBase(f func(map[string]interface{})) map[string]interface{} {
	r := map[string]interface{}{"#operator": "UnionScan"}
	r["children"] = marshalOperators(this.children)
	if f != nil {
		f(r)
	}
	return r
}

// MergeSortScan unions already-sorted children with an n-way ordered
// merge, preserving the sort key through the union.
type MergeSortScan struct {
	readonly
	sortKey  algebra.SortKey
	children Operators
}

func NewMergeSortScan(sortKey algebra.SortKey, children ...Operator) *MergeSortScan {
	return &MergeSortScan{
		sortKey:  sortKey,
		children: children,
	}
}

func (this *MergeSortScan) Accept(visitor Visitor) (interface{}, error) {
	return visitor.VisitMergeSortScan(this)
}

func (this *MergeSortScan) New() Operator {
	return &MergeSortScan{}
}

func (this *MergeSortScan) SortKey() algebra.SortKey {
	return this.sortKey
}

func (this *MergeSortScan) Children() Operators {
	return this.children
}

func (this *MergeSortScan) SetChildren(children Operators) {
	this.children = children
}

func (this *MergeSortScan) SortedByRecordId() bool {
	return false
}

func (this *MergeSortScan) ProvidedOrders() []algebra.SortKey {
	return []algebra.SortKey{this.sortKey}
}

func (this *MergeSortScan) String() string {
	bytes, _ := this.MarshalJSON()
	return string(bytes)
}

func (this *MergeSortScan) MarshalJSON() ([]byte, error) {
	return json.Marshal(this.MarshalBase(nil))
}

func (this *MergeSortScan) MarshalBase(f func(map[string]interface{})) map[string]interface{} {
	r := map[string]interface{}{"#operator": "MergeSortScan"}
	r["sort_key"] = this.sortKey.String()
	r["children"] = marshalOperators(this.children)
	if f != nil {
		f(r)
	}
	return r
}
