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
	"github.com/docustore/query/datastore"
	"github.com/docustore/query/errors"
	"github.com/docustore/query/expression"
	"github.com/docustore/query/plan"
)

// BoundsTightness describes how much of a predicate an index interval
// answers. The order matters: EXACT is strongest.
type BoundsTightness int

const (
	// The scan returns exactly the matching keys; the predicate is
	// fully answered and can be dropped.
	EXACT = BoundsTightness(iota)

	// The key carries enough to re-check the predicate without
	// fetching the document.
	INEXACT_COVERED

	// The document must be fetched and re-filtered.
	INEXACT_FETCH
)

var _TIGHTNESS_NAMES = []string{
	EXACT:           "exact",
	INEXACT_COVERED: "inexact_covered",
	INEXACT_FETCH:   "inexact_fetch",
}

func (this BoundsTightness) String() string {
	return _TIGHTNESS_NAMES[this]
}

// BoundsBuilder turns a single predicate over a single key field into
// index intervals. The access-path builder consumes it; swapping in a
// different builder changes the bounds vocabulary without touching
// the tree transformation.
type BoundsBuilder interface {
	// Translate fills the unfilled interval list for one key field
	// from the predicate.
	Translate(expr expression.Expression, key datastore.IndexKey, index *datastore.Index,
		oil *plan.OrderedIntervalList) (BoundsTightness, errors.Error)

	// TranslateAndIntersect translates and intersects into an
	// already filled list. Sound only on non-multikey indexes; the
	// caller enforces that.
	TranslateAndIntersect(expr expression.Expression, key datastore.IndexKey, index *datastore.Index,
		oil *plan.OrderedIntervalList) (BoundsTightness, errors.Error)

	// TranslateAndUnion translates and unions into an already
	// filled list.
	TranslateAndUnion(expr expression.Expression, key datastore.IndexKey, index *datastore.Index,
		oil *plan.OrderedIntervalList) (BoundsTightness, errors.Error)

	// AllValuesForField fills the list with the full range of the
	// key field.
	AllValuesForField(key datastore.IndexKey, oil *plan.OrderedIntervalList)

	// AllValuesBounds fills every field of the bounds with its full
	// range.
	AllValuesBounds(keyPattern datastore.KeyPattern, bounds *plan.IndexBounds)

	// AlignBounds orients the per-field interval lists to the
	// index's key directions; bounds are built assuming a forward
	// scan.
	AlignBounds(bounds *plan.IndexBounds, keyPattern datastore.KeyPattern)
}

// DefaultBuilder is the bounds builder the planner entry points use.
var DefaultBuilder BoundsBuilder = &sarger{}

type sarger struct {
}

func (this *sarger) Translate(expr expression.Expression, key datastore.IndexKey,
	index *datastore.Index, oil *plan.OrderedIntervalList) (BoundsTightness, errors.Error) {
	oil.Name = key.Field
	return this.sargFor(expr, key, index, &oil.Intervals)
}

func (this *sarger) TranslateAndIntersect(expr expression.Expression, key datastore.IndexKey,
	index *datastore.Index, oil *plan.OrderedIntervalList) (BoundsTightness, errors.Error) {
	var next plan.Intervals
	tightness, err := this.sargFor(expr, key, index, &next)
	if err != nil {
		return tightness, err
	}
	oil.Intervals = intersectIntervals(oil.Intervals, next)
	return tightness, nil
}

func (this *sarger) TranslateAndUnion(expr expression.Expression, key datastore.IndexKey,
	index *datastore.Index, oil *plan.OrderedIntervalList) (BoundsTightness, errors.Error) {
	var next plan.Intervals
	tightness, err := this.sargFor(expr, key, index, &next)
	if err != nil {
		return tightness, err
	}
	oil.Intervals = unionIntervals(oil.Intervals, next)
	return tightness, nil
}

func (this *sarger) AllValuesForField(key datastore.IndexKey, oil *plan.OrderedIntervalList) {
	oil.Name = key.Field
	oil.Intervals = plan.Intervals{_ALL_VALUES.Copy()}
}

func (this *sarger) AllValuesBounds(keyPattern datastore.KeyPattern, bounds *plan.IndexBounds) {
	for i, key := range keyPattern {
		this.AllValuesForField(key, bounds.Fields[i])
	}
}

func (this *sarger) AlignBounds(bounds *plan.IndexBounds, keyPattern datastore.KeyPattern) {
	for i, key := range keyPattern {
		if key.Kind == datastore.IK_DESC {
			bounds.Fields[i].Reverse()
		}
	}
}
