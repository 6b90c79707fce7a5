//  Copyright (c) 2026 Docustore, Inc.
//  Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file
//  except in compliance with the License. You may obtain a copy of the License at
//    http://www.apache.org/licenses/LICENSE-2.0
//  Unless required by applicable law or agreed to in writing, software distributed under the
//  License is distributed on an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND,
//  either express or implied. See the License for the specific language governing permissions
//  and limitations under the License.

package value

import (
	"math"
	"testing"
)

func TestTypeOrder(t *testing.T) {
	// One representative per type, in expected collation order.
	ordered := []Value{
		MIN_VALUE,
		NULL_VALUE,
		NewValue(-7.5),
		NewValue(0),
		NewValue(math.Inf(1)),
		NewValue(""),
		NewValue("a"),
		NewValue("b"),
		EMPTY_OBJECT_VALUE,
		NewValue(map[string]interface{}{"a": 1.0}),
		NewValue([]interface{}{}),
		NewValue([]interface{}{1.0}),
		FALSE_VALUE,
		TRUE_VALUE,
		NewRegexpValue("^a", ""),
		MAX_VALUE,
	}

	for i, low := range ordered {
		for j, high := range ordered {
			c := low.Collate(high)
			switch {
			case i < j && c >= 0:
				t.Errorf("expected %v < %v, got %d", low, high, c)
			case i == j && c != 0:
				t.Errorf("expected %v == %v, got %d", low, high, c)
			case i > j && c <= 0:
				t.Errorf("expected %v > %v, got %d", low, high, c)
			}
		}
	}
}

func TestEquals(t *testing.T) {
	var tests = []struct {
		first    Value
		second   Value
		expected bool
	}{
		{NewValue(5), NewValue(5.0), true},
		{NewValue(5), NewValue(7), false},
		{NewValue("a"), NewValue("a"), true},
		{NewValue("a"), NewValue(5), false},
		{NULL_VALUE, NULL_VALUE, true},
		{NULL_VALUE, MIN_VALUE, false},
		{NewValue([]interface{}{1.0, "x"}), NewValue([]interface{}{1.0, "x"}), true},
		{NewValue([]interface{}{1.0, "x"}), NewValue([]interface{}{1.0}), false},
		{NewValue(map[string]interface{}{"a": 1.0, "b": 2.0}),
			NewValue(map[string]interface{}{"b": 2.0, "a": 1.0}), true},
	}

	for _, test := range tests {
		if res := test.first.Equals(test.second); res != test.expected {
			t.Errorf("Equals(%v, %v) = %v, expected %v",
				test.first, test.second, res, test.expected)
		}
	}
}

func TestObjectFieldOrder(t *testing.T) {
	// Insertion order is significant for explicitly ordered objects.
	obj := NewObjectValue(
		Pair{Name: "b", Value: NewValue(2)},
		Pair{Name: "a", Value: NewValue(1)},
	)
	bytes, err := obj.MarshalJSON()
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(bytes) != `{"b":2,"a":1}` {
		t.Errorf("unexpected marshaling: %s", string(bytes))
	}
}
