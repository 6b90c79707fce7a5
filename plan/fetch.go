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
	"github.com/docustore/query/expression"
)

// Fetch retrieves the full document for each record identifier
// produced by its child and re-applies the residual filter.
type Fetch struct {
	readonly
	filter expression.Expression
	child  Operator
}

func NewFetch(filter expression.Expression, child Operator) *Fetch {
	return &Fetch{
		filter: filter,
		child:  child,
	}
}

func (this *Fetch) Accept(visitor Visitor) (interface{}, error) {
	return visitor.VisitFetch(this)
}

func (this *Fetch) New() Operator {
	return &Fetch{}
}

func (this *Fetch) Filter() expression.Expression {
	return this.filter
}

func (this *Fetch) SetFilter(filter expression.Expression) {
	this.filter = filter
}

func (this *Fetch) Child() Operator {
	return this.child
}

func (this *Fetch) Children() Operators {
	return Operators{this.child}
}

// A fetch preserves its child's output order.
func (this *Fetch) SortedByRecordId() bool {
	return this.child.SortedByRecordId()
}

func (this *Fetch) ProvidedOrders() []algebra.SortKey {
	return this.child.ProvidedOrders()
}

func (this *Fetch) String() string {
	bytes, _ := this.MarshalJSON()
	return string(bytes)
}

func (this *Fetch) MarshalJSON() ([]byte, error) {
	return json.Marshal(this.MarshalBase(nil))
}

func (this *Fetch) MarshalBase(f func(map[string]interface{})) map[string]interface{} {
	r := map[string]interface{}{"#operator": "Fetch"}
	if this.filter != nil {
		r["filter"] = this.filter.String()
	}
	if bytes, err := this.child.MarshalJSON(); err == nil {
		r["child"] = json.RawMessage(bytes)
	}
	if f != nil {
		f(r)
	}
	return r
}
