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
	"github.com/docustore/query/value"
)

// makeLeafNode creates a scan leaf from one tagged predicate against
// key field pos of the index. The predicate's path need not equal the
// key field's name: the predicate may sit inside an array operator
// that provides a path prefix.
func makeLeafNode(query *algebra.CanonicalQuery, index *datastore.Index, pos int,
	expr expression.Expression) (plan.Operator, BoundsTightness, errors.Error) {

	indexIs2D := index.KeyPattern.Key(0).Kind == datastore.IK_2D

	if near, ok := expr.(*expression.GeoNear); ok {
		// 2d proximity requires a hard limit and is taken out
		// before planning; reaching here with one is a bug.
		if indexIs2D {
			return nil, EXACT, errors.NewGeoNear2DError()
		}
		baseBounds := plan.NewIndexBounds(index.KeyPattern.Len())
		// Name the near field now so that finishing skips it
		// instead of filling min/max-key bounds.
		baseBounds.Fields[pos].Name = index.KeyPattern.Key(pos).Field
		node := plan.NewGeoNear2DSphereScan(index.KeyPattern, near.Query().Copy(), baseBounds)
		if proj := query.Projection(); proj != nil {
			node.SetAddPointMeta(proj.WantGeoNearPoint)
			node.SetAddDistMeta(proj.WantGeoNearDistance)
		}
		return node, EXACT, nil
	}

	if indexIs2D {
		geo, ok := expr.(*expression.Geo)
		if !ok {
			return nil, EXACT,
				errors.NewPlanInternalError("2d index assigned to non-geo predicate: " + expr.String())
		}
		return plan.NewGeo2DScan(index.KeyPattern, geo.Query()), EXACT, nil
	}

	if text, ok := expr.(*expression.Text); ok {
		return plan.NewTextScan(index.KeyPattern, text.Query(), text.Language()), EXACT, nil
	}

	if pos >= index.KeyPattern.Len() {
		return nil, EXACT,
			errors.NewPlanInternalError("Index tag position exceeds key pattern: " + expr.String())
	}

	isn := plan.NewIndexScan(index.KeyPattern, index.Multikey,
		plan.NewIndexBounds(index.KeyPattern.Len()))
	isn.SetMaxScan(query.MaxScan())
	isn.SetAddKeyMetadata(query.ReturnKey())

	tightness, err := DefaultBuilder.Translate(expr, index.KeyPattern.Key(pos), index,
		isn.Bounds().Fields[pos])
	if err != nil {
		return nil, tightness, err
	}
	return isn, tightness, nil
}

// shouldMergeWithLeaf decides whether an additional predicate can be
// folded into an existing scan leaf. Compounding a later key field is
// always sound; re-filling a field intersects under AND, which is
// unsound on a multikey index, and unions under OR, which is always
// sound.
func shouldMergeWithLeaf(expr expression.Expression, index *datastore.Index, pos int,
	node plan.Operator, mergeType expression.MatchType) bool {
	if node == nil || expr == nil {
		return false
	}

	switch node := node.(type) {
	case *plan.Geo2DScan, *plan.TextScan, *plan.GeoNear2DSphereScan:
		return true
	case *plan.IndexScan:
		if !node.Bounds().Fields[pos].Filled() {
			// The bounds will be compounded; the enumerator told
			// us that is OK.
			return true
		}
		if mergeType == expression.AND {
			return !index.Multikey
		}
		return true
	default:
		return false
	}
}

// mergeWithLeafNode folds expr into the leaf, filling or combining
// the target key field's intervals.
func mergeWithLeafNode(expr expression.Expression, index *datastore.Index, pos int,
	node plan.Operator, mergeType expression.MatchType) (BoundsTightness, errors.Error) {

	var bounds *plan.IndexBounds

	switch node := node.(type) {
	case *plan.Geo2DScan:
		return INEXACT_FETCH, nil
	case *plan.TextScan:
		// Text data is covered, but not exactly. Text covering is
		// unlike any other covering, so finishing handles it.
		return INEXACT_COVERED, nil
	case *plan.GeoNear2DSphereScan:
		bounds = node.BaseBounds()
	case *plan.IndexScan:
		bounds = node.Bounds()
	default:
		return INEXACT_FETCH,
			errors.NewPlanInternalError("Merge into non-leaf operator")
	}

	if pos >= len(bounds.Fields) {
		return INEXACT_FETCH,
			errors.NewPlanInternalError("Index tag position exceeds key pattern: " + expr.String())
	}

	oil := bounds.Fields[pos]
	key := index.KeyPattern.Key(pos)

	if !oil.Filled() {
		return DefaultBuilder.Translate(expr, key, index, oil)
	}
	if mergeType == expression.AND {
		return DefaultBuilder.TranslateAndIntersect(expr, key, index, oil)
	}
	return DefaultBuilder.TranslateAndUnion(expr, key, index, oil)
}

// finishLeafNode finalizes a completed scan leaf: trailing key fields
// with no predicate get all-values intervals, and the bounds are
// aligned to the index's key directions.
func finishLeafNode(node plan.Operator, index *datastore.Index) errors.Error {
	var bounds *plan.IndexBounds

	switch node := node.(type) {
	case *plan.Geo2DScan:
		return nil
	case *plan.TextScan:
		return finishTextNode(node, index)
	case *plan.GeoNear2DSphereScan:
		bounds = node.BaseBounds()
	case *plan.IndexScan:
		bounds = node.Bounds()
	default:
		return errors.NewPlanInternalError("Finish of non-leaf operator")
	}

	firstEmptyField := 0
	for ; firstEmptyField < len(bounds.Fields); firstEmptyField++ {
		if !bounds.Fields[firstEmptyField].Filled() {
			break
		}
	}

	// There may be filled-in fields to the right of the first empty
	// one, e.g. {a: 1, loc: "2dsphere"} with a near search over loc
	// and no predicate over a.
	for ; firstEmptyField < index.KeyPattern.Len(); firstEmptyField++ {
		oil := bounds.Fields[firstEmptyField]
		if !oil.Filled() {
			DefaultBuilder.AllValuesForField(index.KeyPattern.Key(firstEmptyField), oil)
		}
	}

	if firstEmptyField != len(bounds.Fields) {
		return errors.NewPlanInternalError("Index bounds shorter than key pattern")
	}

	// Bounds are built assuming a forward scan; reorient for
	// descending key fields.
	DefaultBuilder.AlignBounds(bounds, index.KeyPattern)
	return nil
}

// finishTextNode builds the index prefix from the equality predicates
// collected on the text scan's filter. The prefix key fields are the
// fields before the text field in the compound key pattern; a text
// scan exists only if each of them is equality-bound.
func finishTextNode(node *plan.TextScan, index *datastore.Index) errors.Error {
	prefixEnd := 0
	for _, key := range index.KeyPattern {
		if key.Kind == datastore.IK_TEXT {
			break
		}
		prefixEnd++
	}

	// No prefix: any filter stays on the node as-is.
	if prefixEnd == 0 {
		return nil
	}

	filter := node.Filter()
	if filter == nil {
		return errors.NewPlanInternalError("Text prefix fields without equality filter")
	}

	prefixExprs := make([]*expression.Eq, prefixEnd)

	if and, ok := filter.(*expression.And); ok {
		if len(and.Children()) < prefixEnd {
			return errors.NewPlanInternalError("Text prefix fields without equality filter")
		}

		// Pull the prefix children out of the AND; the rest stays
		// as the scan filter.
		curChild := 0
		for curChild < len(and.Children()) {
			child := and.Children()[curChild]
			tag := child.Tag()
			if tag == nil {
				return errors.NewUntaggedChildError(child.String())
			}
			if tag.Pos >= prefixEnd {
				curChild++
				continue
			}
			eq, ok := child.(*expression.Eq)
			if !ok {
				return errors.NewPlanInternalError("Non-equality text prefix predicate: " + child.String())
			}
			prefixExprs[tag.Pos] = eq
			expression.RemoveChild(and, curChild)
		}

		switch len(and.Children()) {
		case 0:
			node.SetFilter(nil)
		case 1:
			node.SetFilter(and.Children()[0])
		}
	} else {
		// Only one prefix term.
		if prefixEnd != 1 {
			return errors.NewPlanInternalError("Text prefix fields without equality filter")
		}
		eq, ok := filter.(*expression.Eq)
		if !ok {
			return errors.NewPlanInternalError("Non-equality text prefix predicate: " + filter.String())
		}
		prefixExprs[0] = eq
		node.SetFilter(nil)
	}

	pairs := make([]value.Pair, prefixEnd)
	for i, eq := range prefixExprs {
		if eq == nil {
			return errors.NewPlanInternalError("Text prefix field without equality predicate")
		}
		pairs[i] = value.Pair{Name: eq.Path(), Value: eq.Value()}
	}
	node.SetIndexPrefix(value.NewObjectValue(pairs...))
	return nil
}

// addFilterToLeaf attaches one more covered predicate to a scan
// leaf's filter, combining under the given logical kind.
func addFilterToLeaf(node plan.FilterOperator, match expression.Expression, t expression.MatchType) {
	filter := node.Filter()
	if filter == nil {
		node.SetFilter(match)
		return
	}

	if filter.MatchType() == t {
		if list, ok := filter.(expression.ListExpression); ok {
			list.Add(match)
			return
		}
	}

	if t == expression.AND {
		node.SetFilter(expression.NewAnd(filter, match))
	} else {
		node.SetFilter(expression.NewOr(filter, match))
	}
}
