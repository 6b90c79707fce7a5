//  Copyright (c) 2026 Docustore, Inc.
//  Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file
//  except in compliance with the License. You may obtain a copy of the License at
//    http://www.apache.org/licenses/LICENSE-2.0
//  Unless required by applicable law or agreed to in writing, software distributed under the
//  License is distributed on an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND,
//  either express or implied. See the License for the specific language governing permissions
//  and limitations under the License.

package expression

import (
	"testing"

	"github.com/google/uuid"

	"github.com/docustore/query/value"
)

func TestRemoveChild(t *testing.T) {
	first := NewEq("a", value.NewValue(1))
	second := NewEq("b", value.NewValue(2))
	third := NewEq("c", value.NewValue(3))
	and := NewAnd(first, second, third)

	removed := RemoveChild(and, 1)
	if removed != second {
		t.Errorf("expected the second child, got %v", removed)
	}
	children := and.Children()
	if len(children) != 2 || children[0] != first || children[1] != third {
		t.Errorf("unexpected children after removal: %v", children)
	}

	RemoveChild(and, 0)
	RemoveChild(and, 0)
	if len(and.Children()) != 0 {
		t.Errorf("expected no children, got %v", and.Children())
	}
}

func TestCopyPreservesTags(t *testing.T) {
	index := uuid.New()
	eq := NewEq("a", value.NewValue(5))
	eq.SetTag(NewIndexTag(index, 1))
	and := NewAnd(eq, NewGt("b", value.NewValue(7)))

	cp := and.Copy()
	if cp == Expression(and) {
		t.Fatalf("copy must be a new node")
	}
	cpEq := cp.Children()[0]
	if cpEq == Expression(eq) {
		t.Fatalf("copy must be deep")
	}
	tag := cpEq.Tag()
	if tag == nil || tag.Index != index || tag.Pos != 1 {
		t.Errorf("copy must preserve tags, got %v", tag)
	}
	if tag == eq.Tag() {
		t.Errorf("copied tag must not be shared")
	}
}

func TestMatchTypeClasses(t *testing.T) {
	var tests = []struct {
		expr    Expression
		logical bool
		array   bool
	}{
		{NewAnd(), true, false},
		{NewOr(), true, false},
		{NewNot(NewEq("a", value.NewValue(1))), true, false},
		{NewEq("a", value.NewValue(1)), false, false},
		{NewAll("a"), false, true},
		{NewElemMatchObject("a", NewAnd()), false, true},
		{NewElemMatchValue("a"), false, true},
	}

	for _, test := range tests {
		matchType := test.expr.MatchType()
		if matchType.IsLogical() != test.logical {
			t.Errorf("%v: IsLogical = %v", matchType, matchType.IsLogical())
		}
		if matchType.IsArrayOperator() != test.array {
			t.Errorf("%v: IsArrayOperator = %v", matchType, matchType.IsArrayOperator())
		}
	}
}
