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
	"github.com/docustore/query/algebra"
	"github.com/docustore/query/datastore"
	"github.com/docustore/query/errors"
	"github.com/docustore/query/expression"
	"github.com/docustore/query/plan"
)

// buildIndexedAnd assembles the scans for an AND's tagged children
// and hangs the untagged residue above them behind a fetch.
func buildIndexedAnd(query *algebra.CanonicalQuery, root expression.Expression,
	inArrayOperator bool, indexes datastore.Indexes) (plan.Operator, errors.Error) {

	scans, ok, err := processIndexScans(query, root, inArrayOperator, indexes)
	if err != nil || !ok {
		return nil, err
	}

	// At least one child of the AND uses an index; we should not be
	// here otherwise.
	if len(scans) == 0 {
		return nil, errors.NewPlanInternalError("Indexed AND produced no scans")
	}

	var andResult plan.Operator

	if len(scans) == 1 {
		// An AND of one thing is that thing.
		andResult = scans[0]
	} else if allSortedByRecordId(scans) {
		andResult = plan.NewAndSortedScan(scans...)
	} else {
		ahn := plan.NewAndHashScan(scans...)
		andResult = ahn

		// The hash intersection provides the order of its last
		// child; if any child provides the requested sort, stream
		// that one last.
		requested := query.Sort()
		if !requested.Empty() {
			children := ahn.Children()
			for i, child := range children {
				if providesOrder(child, requested) {
					children[i], children[len(children)-1] =
						children[len(children)-1], children[i]
					break
				}
			}
		}
	}

	// An array operator above us re-checks everything; the fetch is
	// its job.
	if inArrayOperator {
		return andResult, nil
	}

	// Whatever is still attached to the AND is not answered by the
	// indexes; fetch and re-filter.
	if len(root.Children()) > 0 {
		filter := root
		if len(root.Children()) == 1 {
			// An AND of one thing is that thing.
			filter = root.Children()[0]
			root.SetChildren(nil)
		}
		andResult = plan.NewFetch(filter, andResult)
	}

	return andResult, nil
}

func allSortedByRecordId(scans plan.Operators) bool {
	for _, scan := range scans {
		if !scan.SortedByRecordId() {
			return false
		}
	}
	return true
}

func providesOrder(op plan.Operator, sort algebra.SortKey) bool {
	for _, provided := range op.ProvidedOrders() {
		if provided.Equals(sort) {
			return true
		}
	}
	return false
}
