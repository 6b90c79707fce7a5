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

// AndHashScan intersects its children by hashing record identifiers.
// Children may produce records in any order; the output order is that
// of the last child, which streams.
type AndHashScan struct {
	readonly
	children Operators
}

func NewAndHashScan(children ...Operator) *AndHashScan {
	return &AndHashScan{
		children: children,
	}
}

func (this *AndHashScan) Accept(visitor Visitor) (interface{}, error) {
	return visitor.VisitAndHashScan(this)
}

func (this *AndHashScan) New() Operator {
	return &AndHashScan{}
}

func (this *AndHashScan) Children() Operators {
	return this.children
}

func (this *AndHashScan) SetChildren(children Operators) {
	this.children = children
}

func (this *AndHashScan) SortedByRecordId() bool {
	return false
}

// The streamed child is the last one; its orders are the node's.
func (this *AndHashScan) ProvidedOrders() []algebra.SortKey {
	if len(this.children) == 0 {
		return nil
	}
	return this.children[len(this.children)-1].ProvidedOrders()
}

func (this *AndHashScan) String() string {
	bytes, _ := this.MarshalJSON()
	return string(bytes)
}

func (this *AndHashScan) MarshalJSON() ([]byte, error) {
	return json.Marshal(this.MarshalBase(nil))
}

func (this *AndHashScan) MarshalBase(f func(map[string]interface{})) map[string]interface{} {
	r := map[string]interface{}{"#operator": "AndHashScan"}
	r["children"] = marshalOperators(this.children)
	if f != nil {
		f(r)
	}
	return r
}

// AndSortedScan intersects children whose outputs are all ordered by
// record identifier, advancing the laggard child each step.
type AndSortedScan struct {
	readonly
	children Operators
}

func NewAndSortedScan(children ...Operator) *AndSortedScan {
	return &AndSortedScan{
		children: children,
	}
}

func (this *AndSortedScan) Accept(visitor Visitor) (interface{}, error) {
	return visitor.VisitAndSortedScan(this)
}

func (this *AndSortedScan) New() Operator {
	return &AndSortedScan{}
}

func (this *AndSortedScan) Children() Operators {
	return this.children
}

func (this *AndSortedScan) SortedByRecordId() bool {
	return true
}

func (this *AndSortedScan) ProvidedOrders() []algebra.SortKey {
	return nil
}

func (this *AndSortedScan) String() string {
	bytes, _ := this.MarshalJSON()
	return string(bytes)
}

func (this *AndSortedScan) MarshalJSON() ([]byte, error) {
	return json.Marshal(this.MarshalBase(nil))
}

func (this *AndSortedScan) MarshalBase(f func(map[string]interface{})) map[string]interface{} {
	r := map[string]interface{}{"#operator": "AndSortedScan"}
	r["children"] = marshalOperators(this.children)
	if f != nil {
		f(r)
	}
	return r
}
