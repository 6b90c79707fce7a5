//  Copyright (c) 2026 Docustore, Inc.
//  Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file
//  except in compliance with the License. You may obtain a copy of the License at
//    http://www.apache.org/licenses/LICENSE-2.0
//  Unless required by applicable law or agreed to in writing, software distributed under the
//  License is distributed on an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND,
//  either express or implied. See the License for the specific language governing permissions
//  and limitations under the License.

package planner

import (
	"github.com/docustore/query/plan"
)

// ReverseScans flips the direction of every index scan in the
// subtree. Bounds stay aligned: each per-field interval list is
// reversed along with the scan direction, and a merge sort's key is
// reversed to describe the new output order.
func ReverseScans(op plan.Operator) {
	switch op := op.(type) {
	case *plan.IndexScan:
		op.SetDirection(-op.Direction())
		bounds := op.Bounds()
		if bounds.IsSimpleRange {
			return
		}
		for _, oil := range bounds.Fields {
			oil.Reverse()
		}
	case *plan.MergeSortScan:
		for _, child := range op.Children() {
			ReverseScans(child)
		}
		sortKey := op.SortKey()
		for i := range sortKey {
			sortKey[i].Direction = -sortKey[i].Direction
		}
	default:
		for _, child := range op.Children() {
			ReverseScans(child)
		}
	}
}
