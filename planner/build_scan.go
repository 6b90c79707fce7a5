//  Copyright (c) 2026 Docustore, Inc.
//  Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file
//  except in compliance with the License. You may obtain a copy of the License at
//    http://www.apache.org/licenses/LICENSE-2.0
//  Unless required by applicable law or agreed to in writing, software distributed under the
//  License is distributed on an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND,
//  either express or implied. See the License for the specific language governing permissions
//  and limitations under the License.

/*
Package planner builds access plans from tagged predicate trees. The
plan enumerator decides which index answers which predicate and
records its choices as index tags; this package turns one such
tagging into an executable tree of scan, fetch, intersect, union, and
merge-sort operators.
*/
package planner

import (
	"github.com/docustore/query/algebra"
	"github.com/docustore/query/datastore"
	"github.com/docustore/query/errors"
	"github.com/docustore/query/expression"
	"github.com/docustore/query/logging"
	"github.com/docustore/query/plan"
)

// BuildIndexedDataAccess transforms a tagged predicate tree into an
// access plan. The tree is consumed destructively. A nil plan with a
// nil error means the tree cannot be answered from indexes and the
// caller should try another candidate; a warning-level error carries
// the reason when one is worth reporting.
func BuildIndexedDataAccess(query *algebra.CanonicalQuery, root expression.Expression,
	inArrayOperator bool, indexes datastore.Indexes) (plan.Operator, errors.Error) {

	if root.MatchType().IsLogical() && !isBoundsGeneratingNot(root) {
		switch root.MatchType() {
		case expression.AND:
			return buildIndexedAnd(query, root, inArrayOperator, indexes)
		case expression.OR:
			return buildIndexedOr(query, root, inArrayOperator, indexes)
		default:
			// A negated AND/OR cannot be answered from an index.
			logging.Debugf("Access planner: negated logical node %s", root.String())
			return nil, errors.NewNegatedLogicalError()
		}
	}

	// The node is a leaf or an array operator: one field, and the
	// bounds builder deals with it.
	if root.Tag() == nil {
		// No index to use here, and no logical context to supply
		// one.
		return nil, nil
	}

	if isBoundsGenerating(root) {
		tag := root.Tag()
		if root.MatchType() == expression.NOT {
			tag = root.Children()[0].Tag()
			if tag == nil {
				return nil, errors.NewUntaggedChildError(root.String())
			}
		}

		index := indexes.ById(tag.Index)
		if index == nil {
			return nil, errors.NewUnknownIndexError(tag.Index.String())
		}

		soln, tightness, err := makeLeafNode(query, index, tag.Pos, root)
		if err != nil {
			return nil, err
		}
		if err = finishLeafNode(soln, index); err != nil {
			return nil, err
		}

		if inArrayOperator {
			return soln, nil
		}

		// Exact bounds: the scan's output is the predicate's
		// document set. Inexact bounds: the scan returns a
		// superset and the predicate must be re-checked, from the
		// key if it is covered, from the document otherwise.
		if tightness == EXACT {
			return soln, nil
		}
		if tightness == INEXACT_COVERED && !index.Multikey {
			filterNode, ok := soln.(plan.FilterOperator)
			if !ok || filterNode.Filter() != nil {
				return nil, errors.NewPlanInternalError("Covered leaf already filtered")
			}
			filterNode.SetFilter(root)
			return soln, nil
		}
		return plan.NewFetch(root, soln), nil
	}

	if arrayUsesIndexOnChildren(root) {
		var solution plan.Operator

		if root.MatchType() == expression.ALL {
			// An ALL is an AND of its clauses.
			children := make(plan.Operators, 0, len(root.Children()))
			for _, child := range root.Children() {
				node, err := BuildIndexedDataAccess(query, child, true, indexes)
				if err != nil {
					return nil, err
				}
				if node != nil {
					children = append(children, node)
				}
			}

			switch len(children) {
			case 0:
				// No children, no point in hashing nothing.
				return nil, nil
			case 1:
				solution = children[0]
			default:
				solution = plan.NewAndHashScan(children...)
			}
		} else {
			// The element match's sole child is an AND over the
			// element's fields.
			if len(root.Children()) != 1 {
				return nil, errors.NewPlanInternalError("Element match with more than one child")
			}
			var err errors.Error
			solution, err = BuildIndexedDataAccess(query, root.Children()[0], true, indexes)
			if err != nil || solution == nil {
				return nil, err
			}
		}

		// There may be an array operator above us.
		if inArrayOperator {
			return solution, nil
		}

		return plan.NewFetch(root, solution), nil
	}

	return nil, nil
}
