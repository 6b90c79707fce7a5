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

// findElemMatchChildren collects the tagged interval-generating
// predicates inside an element-match subtree, crossing AND and
// nested element-match boundaries.
func findElemMatchChildren(node expression.Expression, out *expression.Expressions) {
	for _, child := range node.Children() {
		if nodeCanUseIndexOnOwnField(child) && child.Tag() != nil {
			*out = append(*out, child)
		} else if child.MatchType() == expression.AND ||
			child.MatchType() == expression.ELEM_MATCH_OBJECT {
			findElemMatchChildren(child, out)
		}
	}
}

// processIndexScans walks the tagged prefix of root's children,
// folding predicates into shared scan leaves where the enumerator's
// tagging allows and emitting one completed subtree per distinct scan
// or recursively built child. Predicates a scan fully answers are
// destroyed; covered predicates move onto leaf filters; residuals are
// left on root for the caller, except under OR, where each residual
// is fetched on its own branch.
func processIndexScans(query *algebra.CanonicalQuery, root expression.Expression,
	inArrayOperator bool, indexes datastore.Indexes) (plan.Operators, bool, errors.Error) {

	var out plan.Operators
	var currentScan plan.Operator
	var currentIndex *datastore.Index
	curChild := 0

	for curChild < len(root.Children()) {
		child := root.Children()[curChild]

		// Children are sorted tagged-first; the untagged suffix is
		// the caller's problem.
		tag := child.Tag()
		if tag == nil {
			break
		}

		if !isBoundsGenerating(child) {
			// The child is indexed by virtue of its children.
			if root.MatchType() == expression.AND &&
				child.MatchType() == expression.ELEM_MATCH_OBJECT {
				// The enumerator's tagging asks us to compound with
				// predicates retrieved from inside the element
				// match. The whole element match stays on root: the
				// fetch above must re-check per-element semantics.
				var emChildren expression.Expressions
				findElemMatchChildren(child, &emChildren)

				for _, emChild := range emChildren {
					innerTag := emChild.Tag()
					if innerTag == nil {
						return nil, false, errors.NewUntaggedChildError(emChild.String())
					}

					if currentScan != nil && currentIndex.Id == tag.Index &&
						shouldMergeWithLeaf(emChild, currentIndex, innerTag.Pos,
							currentScan, root.MatchType()) {
						tightness, err := mergeWithLeafNode(emChild, currentIndex,
							innerTag.Pos, currentScan, root.MatchType())
						if err != nil {
							return nil, false, err
						}
						if tightness == INEXACT_COVERED && !currentIndex.Multikey {
							// Optional: the whole element match is
							// re-checked above anyway, but an extra
							// filter during the scan keeps documents
							// from bubbling up.
							addFilterToLeaf(currentScan.(plan.FilterOperator),
								emChild.Copy(), root.MatchType())
						}
					} else {
						if currentScan != nil {
							if err := finishLeafNode(currentScan, currentIndex); err != nil {
								return nil, false, err
							}
							out = append(out, currentScan)
						}

						currentIndex = indexes.ById(tag.Index)
						if currentIndex == nil {
							return nil, false, errors.NewUnknownIndexError(tag.Index.String())
						}

						var tightness BoundsTightness
						var err errors.Error
						currentScan, tightness, err = makeLeafNode(query, currentIndex,
							innerTag.Pos, emChild)
						if err != nil {
							return nil, false, err
						}
						if tightness == INEXACT_COVERED && !currentIndex.Multikey {
							addFilterToLeaf(currentScan.(plan.FilterOperator),
								emChild.Copy(), root.MatchType())
						}
					}
				}

				curChild++
				continue
			}

			// A logical subtree fully evaluates itself: any filters
			// or fetches it needs are hung on it by the recursion,
			// so it comes off root. Inside an array operator it
			// stays, the operator above re-checks it.
			if !inArrayOperator {
				expression.RemoveChild(root, curChild)
			} else {
				curChild++
			}

			childSolution, err := BuildIndexedDataAccess(query, child, inArrayOperator, indexes)
			if err != nil {
				return nil, false, err
			}
			if childSolution == nil {
				return nil, false, nil
			}
			out = append(out, childSolution)
			continue
		}

		// The child generates intervals over its own field. For a
		// negation the tag of interest is on the negated predicate.
		if child.MatchType() == expression.NOT {
			tag = child.Children()[0].Tag()
			if tag == nil {
				return nil, false, errors.NewUntaggedChildError(child.String())
			}
		}

		// Merging is sound only when the values being tested come
		// from the same array in the document. A non-multikey index
		// has no arrays to worry about; on a multikey index the
		// enumerator's tagging and shouldMergeWithLeaf enforce the
		// rules.
		if currentScan != nil && currentIndex.Id == tag.Index &&
			shouldMergeWithLeaf(child, currentIndex, tag.Pos, currentScan, root.MatchType()) {
			tightness, err := mergeWithLeafNode(child, currentIndex, tag.Pos,
				currentScan, root.MatchType())
			if err != nil {
				return nil, false, err
			}

			if tightness == EXACT {
				// The bounds answer the predicate in full.
				expression.RemoveChild(root, curChild)
			} else if tightness == INEXACT_COVERED &&
				(currentIndex.Type == datastore.INDEX_TEXT || !currentIndex.Multikey) {
				// The key carries enough to re-check the predicate;
				// it becomes a filter on the scan. On a multikey
				// index the key may carry just one of the array's
				// values, so the re-check must see the document.
				expression.RemoveChild(root, curChild)
				addFilterToLeaf(currentScan.(plan.FilterOperator), child, root.MatchType())
			} else if root.MatchType() == expression.OR {
				// An AND residual travels up to the AND's fetch. An
				// OR residual applies to this branch only, so the
				// branch gets its own fetch here.
				if err := finishLeafNode(currentScan, currentIndex); err != nil {
					return nil, false, err
				}
				expression.RemoveChild(root, curChild)
				out = append(out, plan.NewFetch(child, currentScan))
				currentScan = nil
				currentIndex = nil
			} else {
				// Residual; stays on root for the AND to fetch.
				curChild++
			}
		} else {
			if currentScan != nil {
				if err := finishLeafNode(currentScan, currentIndex); err != nil {
					return nil, false, err
				}
				out = append(out, currentScan)
			}

			currentIndex = indexes.ById(tag.Index)
			if currentIndex == nil {
				return nil, false, errors.NewUnknownIndexError(tag.Index.String())
			}

			var tightness BoundsTightness
			var err errors.Error
			currentScan, tightness, err = makeLeafNode(query, currentIndex, tag.Pos, child)
			if err != nil {
				return nil, false, err
			}

			if tightness == EXACT && !inArrayOperator {
				// Inside an array operator even an exact predicate
				// stays attached: per-element semantics are
				// re-checked against the document.
				expression.RemoveChild(root, curChild)
			} else if tightness == INEXACT_COVERED && !currentIndex.Multikey {
				expression.RemoveChild(root, curChild)
				addFilterToLeaf(currentScan.(plan.FilterOperator), child, root.MatchType())
			} else if root.MatchType() == expression.OR {
				if err := finishLeafNode(currentScan, currentIndex); err != nil {
					return nil, false, err
				}
				expression.RemoveChild(root, curChild)
				out = append(out, plan.NewFetch(child, currentScan))
				currentScan = nil
				currentIndex = nil
			} else {
				curChild++
			}
		}
	}

	// Output the scan we're done with, if any.
	if currentScan != nil {
		if err := finishLeafNode(currentScan, currentIndex); err != nil {
			return nil, false, err
		}
		out = append(out, currentScan)
	}

	return out, true, nil
}
