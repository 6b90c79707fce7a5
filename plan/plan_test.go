//  Copyright (c) 2026 Docustore, Inc.
//  Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file
//  except in compliance with the License. You may obtain a copy of the License at
//    http://www.apache.org/licenses/LICENSE-2.0
//  Unless required by applicable law or agreed to in writing, software distributed under the
//  License is distributed on an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND,
//  either express or implied. See the License for the specific language governing permissions
//  and limitations under the License.

package plan

import (
	"testing"

	"github.com/docustore/query/algebra"
	"github.com/docustore/query/datastore"
	"github.com/docustore/query/value"
)

func pointList(field string, val interface{}) *OrderedIntervalList {
	return &OrderedIntervalList{
		Name:      field,
		Intervals: Intervals{NewPointInterval(value.NewValue(val))},
	}
}

func rangeList(field string, low, high interface{}) *OrderedIntervalList {
	return &OrderedIntervalList{
		Name: field,
		Intervals: Intervals{
			NewInterval(value.NewValue(low), value.NewValue(high), datastore.BOTH),
		},
	}
}

func TestIndexScanSortedByRecordId(t *testing.T) {
	keyPattern := datastore.KeyPattern{
		{Field: "a", Kind: datastore.IK_ASC},
		{Field: "b", Kind: datastore.IK_ASC},
	}

	bounds := &IndexBounds{Fields: []*OrderedIntervalList{
		pointList("a", 5), pointList("b", 7),
	}}
	if !NewIndexScan(keyPattern, false, bounds).SortedByRecordId() {
		t.Errorf("single-key scan is record-id ordered")
	}

	bounds = &IndexBounds{Fields: []*OrderedIntervalList{
		pointList("a", 5), rangeList("b", 1, 9),
	}}
	if NewIndexScan(keyPattern, false, bounds).SortedByRecordId() {
		t.Errorf("ranged scan is not record-id ordered")
	}

	key := value.NewObjectValue(value.Pair{Name: "a", Value: value.NewValue(5)})
	simple := NewSimpleRangeBounds(key, key, true)
	if !NewIndexScan(keyPattern, false, simple).SortedByRecordId() {
		t.Errorf("single-key simple range is record-id ordered")
	}
}

func TestIndexScanProvidedOrders(t *testing.T) {
	keyPattern := datastore.KeyPattern{
		{Field: "a", Kind: datastore.IK_ASC},
		{Field: "b", Kind: datastore.IK_DESC},
	}
	bounds := &IndexBounds{Fields: []*OrderedIntervalList{
		pointList("a", 5), rangeList("b", 1, 9),
	}}

	isn := NewIndexScan(keyPattern, false, bounds)
	orders := isn.ProvidedOrders()

	expected := []algebra.SortKey{
		algebra.NewSortKey(
			algebra.SortTerm{Field: "a", Direction: 1},
			algebra.SortTerm{Field: "b", Direction: -1}),
		algebra.NewSortKey(algebra.SortTerm{Field: "a", Direction: 1}),
		// The point-bounded field drops out of the order.
		algebra.NewSortKey(algebra.SortTerm{Field: "b", Direction: -1}),
	}
	if len(orders) != len(expected) {
		t.Fatalf("expected %d orders, got %v", len(expected), orders)
	}
	for i, order := range expected {
		if !orders[i].Equals(order) {
			t.Errorf("order %d: expected %v, got %v", i, order, orders[i])
		}
	}

	// Reversing the scan reverses every order.
	isn.SetDirection(-1)
	reversed := isn.ProvidedOrders()
	if !reversed[0].Equals(expected[0].Reverse()) {
		t.Errorf("expected reversed order, got %v", reversed[0])
	}

	// Orders stop at the first special key field.
	textPattern := datastore.KeyPattern{
		{Field: "a", Kind: datastore.IK_ASC},
		{Field: "_fts", Kind: datastore.IK_TEXT},
		{Field: "b", Kind: datastore.IK_ASC},
	}
	isn = NewIndexScan(textPattern, false, &IndexBounds{Fields: []*OrderedIntervalList{
		rangeList("a", 1, 9), {}, {},
	}})
	orders = isn.ProvidedOrders()
	if len(orders) != 1 ||
		!orders[0].Equals(algebra.NewSortKey(algebra.SortTerm{Field: "a", Direction: 1})) {
		t.Errorf("expected a single prefix order, got %v", orders)
	}
}

func TestFetchForwardsProperties(t *testing.T) {
	keyPattern := datastore.KeyPattern{{Field: "a", Kind: datastore.IK_ASC}}
	bounds := &IndexBounds{Fields: []*OrderedIntervalList{pointList("a", 5)}}
	isn := NewIndexScan(keyPattern, false, bounds)

	fetch := NewFetch(nil, isn)
	if !fetch.SortedByRecordId() {
		t.Errorf("fetch forwards record-id ordering")
	}
	if len(fetch.ProvidedOrders()) != len(isn.ProvidedOrders()) {
		t.Errorf("fetch forwards provided orders")
	}
}

func TestIntersectionProperties(t *testing.T) {
	keyPattern := datastore.KeyPattern{{Field: "a", Kind: datastore.IK_ASC}}
	point := NewIndexScan(keyPattern, false,
		&IndexBounds{Fields: []*OrderedIntervalList{pointList("a", 5)}})
	ranged := NewIndexScan(keyPattern, false,
		&IndexBounds{Fields: []*OrderedIntervalList{rangeList("a", 1, 9)}})

	asn := NewAndSortedScan(point, point)
	if !asn.SortedByRecordId() {
		t.Errorf("sorted intersection is record-id ordered")
	}

	ahn := NewAndHashScan(point, ranged)
	if ahn.SortedByRecordId() {
		t.Errorf("hash intersection is not record-id ordered")
	}
	last := ahn.Children()[len(ahn.Children())-1]
	if len(ahn.ProvidedOrders()) != len(last.ProvidedOrders()) {
		t.Errorf("hash intersection provides its last child's orders")
	}

	msn := NewMergeSortScan(
		algebra.NewSortKey(algebra.SortTerm{Field: "a", Direction: 1}), point, ranged)
	if len(msn.ProvidedOrders()) != 1 {
		t.Errorf("merge sort provides its sort key")
	}

	usn := NewUnionScan(point, ranged)
	if usn.SortedByRecordId() || usn.ProvidedOrders() != nil {
		t.Errorf("union provides no order")
	}
}

func TestMarshalSmoke(t *testing.T) {
	keyPattern := datastore.KeyPattern{{Field: "a", Kind: datastore.IK_ASC}}
	isn := NewIndexScan(keyPattern, false,
		&IndexBounds{Fields: []*OrderedIntervalList{pointList("a", 5)}})
	ops := []Operator{
		isn,
		NewCollectionScan("test.marshal", nil, 1, 0, false),
		NewFetch(nil, isn),
		NewAndHashScan(isn, isn),
		NewAndSortedScan(isn, isn),
		NewUnionScan(isn, isn),
		NewMergeSortScan(algebra.NewSortKey(algebra.SortTerm{Field: "a", Direction: 1}), isn, isn),
	}
	for _, op := range ops {
		bytes, err := op.MarshalJSON()
		if err != nil {
			t.Errorf("%T: marshal failed: %v", op, err)
		}
		if len(bytes) == 0 {
			t.Errorf("%T: empty marshaling", op)
		}
	}
}
