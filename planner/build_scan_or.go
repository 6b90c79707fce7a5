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
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/docustore/query/algebra"
	"github.com/docustore/query/datastore"
	"github.com/docustore/query/errors"
	"github.com/docustore/query/expression"
	"github.com/docustore/query/logging"
	"github.com/docustore/query/plan"
)

// buildIndexedOr assembles the scans for an OR. Unlike an AND, an OR
// cannot carry residual filters: a residual applies to one branch
// only, so every child must be answered from an index.
func buildIndexedOr(query *algebra.CanonicalQuery, root expression.Expression,
	inArrayOperator bool, indexes datastore.Indexes) (plan.Operator, errors.Error) {

	scans, ok, err := processIndexScans(query, root, inArrayOperator, indexes)
	if err != nil || !ok {
		return nil, err
	}

	if !inArrayOperator && len(root.Children()) > 0 {
		// The enumerator does not tag an OR unless every child is
		// indexed; an untagged child surviving to here means the
		// candidate is broken, not merely unindexed.
		child := root.Children()[0].String()
		logging.Warnf("Access planner: non-indexed child of OR: %s", child)
		return nil, errors.NewOrNotIndexedError(child)
	}

	var orResult plan.Operator

	if len(scans) == 1 {
		// An OR of one node is just that node.
		orResult = scans[0]
	} else if len(scans) > 1 {
		requested := query.Sort()
		if !requested.Empty() && sharedOrders(scans).Contains(requested.String()) {
			orResult = plan.NewMergeSortScan(requested, scans...)
		} else {
			orResult = plan.NewUnionScan(scans...)
		}

		// Text children first, so that text scores exist before
		// any consumer relies on them.
		switch node := orResult.(type) {
		case *plan.MergeSortScan:
			node.SetChildren(partitionTextFirst(node.Children()))
		case *plan.UnionScan:
			node.SetChildren(partitionTextFirst(node.Children()))
		}
	} else {
		return nil, errors.NewPlanInternalError("Indexed OR produced no scans")
	}

	return orResult, nil
}

// sharedOrders intersects the provided sort orders across all scans,
// in canonical string form.
func sharedOrders(scans plan.Operators) mapset.Set[string] {
	shared := orderSet(scans[0])
	for _, scan := range scans[1:] {
		if shared.Cardinality() == 0 {
			break
		}
		shared = shared.Intersect(orderSet(scan))
	}
	return shared
}

func orderSet(op plan.Operator) mapset.Set[string] {
	rv := mapset.NewThreadUnsafeSet[string]()
	for _, order := range op.ProvidedOrders() {
		rv.Add(order.String())
	}
	return rv
}

// partitionTextFirst stably moves text scans ahead of their siblings.
func partitionTextFirst(children plan.Operators) plan.Operators {
	rv := make(plan.Operators, 0, len(children))
	for _, child := range children {
		if _, ok := child.(*plan.TextScan); ok {
			rv = append(rv, child)
		}
	}
	for _, child := range children {
		if _, ok := child.(*plan.TextScan); !ok {
			rv = append(rv, child)
		}
	}
	return rv
}
