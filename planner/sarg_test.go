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
	"math"
	"testing"

	"github.com/docustore/query/datastore"
	"github.com/docustore/query/expression"
	"github.com/docustore/query/plan"
	"github.com/docustore/query/value"
)

func translateFor(t *testing.T, expr expression.Expression) (*plan.OrderedIntervalList, BoundsTightness) {
	t.Helper()
	index := datastore.NewIndex("a_1",
		datastore.KeyPattern{{Field: "a", Kind: datastore.IK_ASC}}, false, datastore.INDEX_REGULAR)
	oil := &plan.OrderedIntervalList{}
	tightness, err := DefaultBuilder.Translate(expr, index.KeyPattern.Key(0), index, oil)
	if err != nil {
		t.Fatalf("translate failed: %v", err)
	}
	return oil, tightness
}

func TestTranslateEq(t *testing.T) {
	oil, tightness := translateFor(t, expression.NewEq("a", value.NewValue(5)))
	if tightness != EXACT {
		t.Errorf("expected exact, got %v", tightness)
	}
	if oil.Name != "a" || len(oil.Intervals) != 1 || !oil.Intervals[0].IsPoint() {
		t.Errorf("expected single point interval on a, got %v", oil)
	}
}

func TestTranslateEqNull(t *testing.T) {
	_, tightness := translateFor(t, expression.NewEq("a", value.NULL_VALUE))
	if tightness != INEXACT_FETCH {
		t.Errorf("null equality must fetch, got %v", tightness)
	}
}

func TestTranslateComparisons(t *testing.T) {
	var tests = []struct {
		expr      expression.Expression
		low       value.Value
		high      value.Value
		inclusion datastore.Inclusion
	}{
		{expression.NewGt("a", value.NewValue(7)),
			value.NewValue(7), value.NewValue(math.Inf(1)), datastore.HIGH},
		{expression.NewGe("a", value.NewValue(7)),
			value.NewValue(7), value.NewValue(math.Inf(1)), datastore.BOTH},
		{expression.NewLt("a", value.NewValue(7)),
			value.NewValue(math.Inf(-1)), value.NewValue(7), datastore.LOW},
		{expression.NewLe("a", value.NewValue(7)),
			value.NewValue(math.Inf(-1)), value.NewValue(7), datastore.BOTH},
		{expression.NewGt("a", value.NewValue("m")),
			value.NewValue("m"), value.EMPTY_OBJECT_VALUE, datastore.NEITHER},
		{expression.NewLt("a", value.NewValue("m")),
			value.NewValue(""), value.NewValue("m"), datastore.LOW},
		{expression.NewGt("a", value.FALSE_VALUE),
			value.FALSE_VALUE, value.TRUE_VALUE, datastore.HIGH},
		{expression.NewLt("a", value.TRUE_VALUE),
			value.FALSE_VALUE, value.TRUE_VALUE, datastore.LOW},
		{expression.NewLe("a", value.TRUE_VALUE),
			value.FALSE_VALUE, value.TRUE_VALUE, datastore.BOTH},
	}

	for _, test := range tests {
		oil, tightness := translateFor(t, test.expr)
		if tightness != EXACT {
			t.Errorf("%s: expected exact, got %v", test.expr.String(), tightness)
		}
		if len(oil.Intervals) != 1 {
			t.Fatalf("%s: expected one interval, got %v", test.expr.String(), oil)
		}
		iv := oil.Intervals[0]
		if !iv.Low.Equals(test.low) || !iv.High.Equals(test.high) || iv.Inclusion != test.inclusion {
			t.Errorf("%s: got %v", test.expr.String(), iv)
		}
	}
}

// Comparisons against types with no expressible bracket cannot stay
// within the type; they scan everything and re-check on the document.
func TestTranslateComparisonsUnbracketed(t *testing.T) {
	var tests = []expression.Expression{
		expression.NewGt("a", value.NULL_VALUE),
		expression.NewLt("a", value.NewValue([]interface{}{1.0})),
		expression.NewGt("a", value.NewValue(map[string]interface{}{"x": 1.0})),
		expression.NewLe("a", value.EMPTY_OBJECT_VALUE),
		expression.NewGe("a", value.NewRegexpValue("^a", "")),
	}

	for _, expr := range tests {
		oil, tightness := translateFor(t, expr)
		if tightness != INEXACT_FETCH {
			t.Errorf("%s: expected fetch, got %v", expr.String(), tightness)
		}
		if len(oil.Intervals) != 1 || !oil.Intervals[0].Low.Equals(value.MIN_VALUE) ||
			!oil.Intervals[0].High.Equals(value.MAX_VALUE) {
			t.Errorf("%s: expected all values, got %v", expr.String(), oil)
		}
	}
}

func TestTranslateRegexpPrefix(t *testing.T) {
	oil, tightness := translateFor(t, expression.NewRegexp("a", "^foo", ""))
	if tightness != INEXACT_COVERED {
		t.Errorf("prefix regexp is covered, got %v", tightness)
	}
	iv := oil.Intervals[0]
	if !iv.Low.Equals(value.NewValue("foo")) || !iv.High.Equals(value.NewValue("fop")) ||
		iv.Inclusion != datastore.LOW {
		t.Errorf(`expected ["foo", "fop"), got %v`, iv)
	}
}

func TestTranslateRegexpNoPrefix(t *testing.T) {
	var tests = []string{"foo", "^foo.*bar", "^(a|b)"}
	for _, pattern := range tests {
		oil, tightness := translateFor(t, expression.NewRegexp("a", pattern, ""))
		if tightness != INEXACT_COVERED {
			t.Errorf("%s: regexp is covered, got %v", pattern, tightness)
		}
		iv := oil.Intervals[0]
		if pattern == "^foo.*bar" {
			// Meta characters end the literal prefix; the literal run
			// before them still bounds the scan.
			if !iv.Low.Equals(value.NewValue("foo")) || !iv.High.Equals(value.NewValue("fop")) {
				t.Errorf(`meta characters end the literal prefix: expected ["foo", "fop"), got %v`, iv)
			}
			continue
		}
		if !iv.Low.Equals(value.NewValue("")) || !iv.High.Equals(value.EMPTY_OBJECT_VALUE) {
			t.Errorf("%s: expected all strings, got %v", pattern, iv)
		}
	}
}

func TestTranslateNot(t *testing.T) {
	oil, tightness := translateFor(t,
		expression.NewNot(expression.NewEq("a", value.NewValue(5))))
	if tightness != INEXACT_FETCH {
		t.Errorf("negation must fetch, got %v", tightness)
	}
	if len(oil.Intervals) != 2 {
		t.Fatalf("expected complement of a point, got %v", oil)
	}
	if !oil.Intervals[0].Low.Equals(value.MIN_VALUE) ||
		!oil.Intervals[0].High.Equals(value.NewValue(5)) ||
		oil.Intervals[0].Inclusion != datastore.LOW {
		t.Errorf("unexpected first interval %v", oil.Intervals[0])
	}
	if !oil.Intervals[1].Low.Equals(value.NewValue(5)) ||
		!oil.Intervals[1].High.Equals(value.MAX_VALUE) ||
		oil.Intervals[1].Inclusion != datastore.HIGH {
		t.Errorf("unexpected second interval %v", oil.Intervals[1])
	}
}

func TestIntersectIntervals(t *testing.T) {
	a := plan.Intervals{
		plan.NewInterval(value.NewValue(1), value.NewValue(5), datastore.BOTH),
		plan.NewInterval(value.NewValue(8), value.NewValue(10), datastore.BOTH),
	}
	b := plan.Intervals{
		plan.NewInterval(value.NewValue(3), value.NewValue(9), datastore.BOTH),
	}
	rv := intersectIntervals(a, b)
	if len(rv) != 2 {
		t.Fatalf("expected two intervals, got %v", rv)
	}
	if !rv[0].Low.Equals(value.NewValue(3)) || !rv[0].High.Equals(value.NewValue(5)) {
		t.Errorf("unexpected %v", rv[0])
	}
	if !rv[1].Low.Equals(value.NewValue(8)) || !rv[1].High.Equals(value.NewValue(9)) {
		t.Errorf("unexpected %v", rv[1])
	}
}

func TestIntersectDisjoint(t *testing.T) {
	a := plan.Intervals{plan.NewInterval(value.NewValue(1), value.NewValue(2), datastore.BOTH)}
	b := plan.Intervals{plan.NewInterval(value.NewValue(3), value.NewValue(4), datastore.BOTH)}
	if rv := intersectIntervals(a, b); len(rv) != 0 {
		t.Errorf("expected empty intersection, got %v", rv)
	}

	// Touching endpoints intersect only if both are inclusive.
	c := plan.Intervals{plan.NewInterval(value.NewValue(1), value.NewValue(3), datastore.LOW)}
	if rv := intersectIntervals(b, c); len(rv) != 0 {
		t.Errorf("expected empty intersection at exclusive endpoint, got %v", rv)
	}
	d := plan.Intervals{plan.NewInterval(value.NewValue(1), value.NewValue(3), datastore.BOTH)}
	rv := intersectIntervals(b, d)
	if len(rv) != 1 || !rv[0].IsPoint() {
		t.Errorf("expected point intersection, got %v", rv)
	}
}

func TestUnionIntervals(t *testing.T) {
	a := plan.Intervals{
		plan.NewInterval(value.NewValue(1), value.NewValue(3), datastore.BOTH),
		plan.NewInterval(value.NewValue(8), value.NewValue(9), datastore.BOTH),
	}
	b := plan.Intervals{
		plan.NewInterval(value.NewValue(2), value.NewValue(5), datastore.BOTH),
	}
	rv := unionIntervals(a, b)
	if len(rv) != 2 {
		t.Fatalf("expected two intervals, got %v", rv)
	}
	if !rv[0].Low.Equals(value.NewValue(1)) || !rv[0].High.Equals(value.NewValue(5)) {
		t.Errorf("unexpected %v", rv[0])
	}

	// Point unions stay ordered and disjoint.
	p1 := plan.Intervals{plan.NewPointInterval(value.NewValue(7))}
	p2 := plan.Intervals{plan.NewPointInterval(value.NewValue(5))}
	rv = unionIntervals(p1, p2)
	if len(rv) != 2 || !rv[0].Low.Equals(value.NewValue(5)) || !rv[1].Low.Equals(value.NewValue(7)) {
		t.Errorf("expected ordered points, got %v", rv)
	}
}

func TestAllValuesBounds(t *testing.T) {
	keyPattern := datastore.KeyPattern{
		{Field: "a", Kind: datastore.IK_ASC},
		{Field: "b", Kind: datastore.IK_DESC},
	}
	bounds := plan.NewIndexBounds(2)
	DefaultBuilder.AllValuesBounds(keyPattern, bounds)
	for i, oil := range bounds.Fields {
		if !oil.Filled() || len(oil.Intervals) != 1 {
			t.Errorf("field %d not filled: %v", i, oil)
		}
	}
	if bounds.Fields[0].Name != "a" || bounds.Fields[1].Name != "b" {
		t.Errorf("unexpected field names: %v", bounds)
	}
}

func TestAlignBounds(t *testing.T) {
	keyPattern := datastore.KeyPattern{
		{Field: "a", Kind: datastore.IK_ASC},
		{Field: "b", Kind: datastore.IK_DESC},
	}
	bounds := plan.NewIndexBounds(2)
	bounds.Fields[0].Name = "a"
	bounds.Fields[0].Intervals = plan.Intervals{
		plan.NewPointInterval(value.NewValue(1)),
	}
	bounds.Fields[1].Name = "b"
	bounds.Fields[1].Intervals = plan.Intervals{
		plan.NewInterval(value.NewValue(1), value.NewValue(2), datastore.LOW),
		plan.NewInterval(value.NewValue(5), value.NewValue(6), datastore.BOTH),
	}
	DefaultBuilder.AlignBounds(bounds, keyPattern)

	// Ascending field untouched.
	if !bounds.Fields[0].Intervals[0].IsPoint() {
		t.Errorf("ascending field changed: %v", bounds.Fields[0])
	}

	// Descending field: interval order and endpoints flipped.
	first := bounds.Fields[1].Intervals[0]
	if !first.Low.Equals(value.NewValue(6)) || !first.High.Equals(value.NewValue(5)) ||
		first.Inclusion != datastore.BOTH {
		t.Errorf("unexpected first interval after align: %v", first)
	}
	second := bounds.Fields[1].Intervals[1]
	if !second.Low.Equals(value.NewValue(2)) || !second.High.Equals(value.NewValue(1)) ||
		second.Inclusion != datastore.HIGH {
		t.Errorf("unexpected second interval after align: %v", second)
	}
}
