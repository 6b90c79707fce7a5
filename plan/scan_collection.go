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

	"github.com/docustore/query/expression"
)

// CollectionScan reads the whole collection in record order and
// applies the filter to each document.
type CollectionScan struct {
	leaf
	unordered
	namespace string
	filter    expression.Expression
	direction int
	maxScan   int64
	tailable  bool
}

func NewCollectionScan(namespace string, filter expression.Expression, direction int,
	maxScan int64, tailable bool) *CollectionScan {
	return &CollectionScan{
		namespace: namespace,
		filter:    filter,
		direction: direction,
		maxScan:   maxScan,
		tailable:  tailable,
	}
}

func (this *CollectionScan) Accept(visitor Visitor) (interface{}, error) {
	return visitor.VisitCollectionScan(this)
}

func (this *CollectionScan) New() Operator {
	return &CollectionScan{}
}

func (this *CollectionScan) Namespace() string {
	return this.namespace
}

func (this *CollectionScan) Filter() expression.Expression {
	return this.filter
}

func (this *CollectionScan) SetFilter(filter expression.Expression) {
	this.filter = filter
}

func (this *CollectionScan) Direction() int {
	return this.direction
}

func (this *CollectionScan) MaxScan() int64 {
	return this.maxScan
}

func (this *CollectionScan) Tailable() bool {
	return this.tailable
}

func (this *CollectionScan) String() string {
	bytes, _ := this.MarshalJSON()
	return string(bytes)
}

func (this *CollectionScan) MarshalJSON() ([]byte, error) {
	return json.Marshal(this.MarshalBase(nil))
}

func (this *CollectionScan) MarshalBase(f func(map[string]interface{})) map[string]interface{} {
	r := map[string]interface{}{"#operator": "CollectionScan"}
	r["namespace"] = this.namespace
	r["direction"] = this.direction
	if this.filter != nil {
		r["filter"] = this.filter.String()
	}
	if this.maxScan > 0 {
		r["max_scan"] = this.maxScan
	}
	if this.tailable {
		r["tailable"] = this.tailable
	}
	if f != nil {
		f(r)
	}
	return r
}
