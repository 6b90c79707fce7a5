//  Copyright (c) 2026 Docustore, Inc.
//  Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file
//  except in compliance with the License. You may obtain a copy of the License at
//    http://www.apache.org/licenses/LICENSE-2.0
//  Unless required by applicable law or agreed to in writing, software distributed under the
//  License is distributed on an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND,
//  either express or implied. See the License for the specific language governing permissions
//  and limitations under the License.

/*
Package plan provides access plans: trees of scan, fetch, intersect,
union, and merge-sort operators produced by the planner and consumed
by the execution engine.
*/
package plan

import (
	"encoding/json"

	"github.com/docustore/query/algebra"
	"github.com/docustore/query/expression"
)

type Operators []Operator

type Operator interface {
	json.Marshaler // JSON encoding; used by EXPLAIN

	MarshalBase(f func(map[string]interface{})) map[string]interface{} // JSON encoding helper

	Accept(visitor Visitor) (interface{}, error) // Visitor pattern
	Readonly() bool                              // Used to determine read-only compliance
	New() Operator                               // Dynamic constructor

	// Children of the operator, in execution order; nil for leaves.
	Children() Operators

	// SortedByRecordId reports whether the operator's output is
	// ordered by physical record identifier; required of every
	// child of a sorted intersection.
	SortedByRecordId() bool

	// ProvidedOrders are the sort orders the operator's output
	// satisfies.
	ProvidedOrders() []algebra.SortKey
}

// FilterOperator is an operator that can re-check a predicate while
// producing output: the scan leaves and the fetch.
type FilterOperator interface {
	Operator

	Filter() expression.Expression
	SetFilter(filter expression.Expression)
}

func (this Operators) String() string {
	bytes, _ := json.Marshal(this)
	return string(bytes)
}

func marshalOperators(ops Operators) []json.RawMessage {
	rv := make([]json.RawMessage, 0, len(ops))
	for _, op := range ops {
		bytes, err := op.MarshalJSON()
		if err != nil {
			continue
		}
		rv = append(rv, json.RawMessage(bytes))
	}
	return rv
}
