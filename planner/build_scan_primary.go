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
	"github.com/docustore/query/expression"
	"github.com/docustore/query/plan"
	"github.com/docustore/query/value"
)

// MakeCollectionScan is the trivial whole-collection plan. A $natural
// sort or hint picks the direction.
func MakeCollectionScan(query *algebra.CanonicalQuery, tailable bool) *plan.CollectionScan {
	direction := 1
	if d := query.Sort().Natural(); d != 0 {
		direction = d
	}
	if hint := query.Hint(); hint != nil && hint.Natural != 0 {
		if hint.Natural >= 0 {
			direction = 1
		} else {
			direction = -1
		}
	}

	return plan.NewCollectionScan(query.Namespace(), query.Root().Copy(), direction,
		query.MaxScan(), tailable)
}

// ScanWholeIndex scans every entry of the index in the given
// direction, fetching unless the query has no predicate at all.
func ScanWholeIndex(index *datastore.Index, query *algebra.CanonicalQuery,
	direction int) plan.Operator {

	isn := plan.NewIndexScan(index.KeyPattern, index.Multikey,
		plan.NewIndexBounds(index.KeyPattern.Len()))
	isn.SetMaxScan(query.MaxScan())
	isn.SetAddKeyMetadata(query.ReturnKey())

	DefaultBuilder.AllValuesBounds(index.KeyPattern, isn.Bounds())

	if direction == -1 {
		ReverseScans(isn)
	}

	return wrapScanWithFilter(isn, query)
}

// MakeIndexScan scans the single key range [startKey, endKey),
// fetching unless the query has no predicate at all.
func MakeIndexScan(index *datastore.Index, query *algebra.CanonicalQuery,
	startKey, endKey value.Value) plan.Operator {

	isn := plan.NewIndexScan(index.KeyPattern, index.Multikey,
		plan.NewSimpleRangeBounds(startKey, endKey, false))
	isn.SetMaxScan(query.MaxScan())
	isn.SetAddKeyMetadata(query.ReturnKey())

	return wrapScanWithFilter(isn, query)
}

func wrapScanWithFilter(isn plan.Operator, query *algebra.CanonicalQuery) plan.Operator {
	filter := query.Root().Copy()

	// find({}) carries a no-op AND root; nothing to re-check.
	if filter.MatchType() == expression.AND && len(filter.Children()) == 0 {
		return isn
	}

	// The predicates might be covered by the key, but fetching is
	// always safe.
	return plan.NewFetch(filter, isn)
}
