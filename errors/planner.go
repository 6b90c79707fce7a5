//  Copyright (c) 2026 Docustore, Inc.
//  Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file
//  except in compliance with the License. You may obtain a copy of the License at
//    http://www.apache.org/licenses/LICENSE-2.0
//  Unless required by applicable law or agreed to in writing, software distributed under the
//  License is distributed on an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND,
//  either express or implied. See the License for the specific language governing permissions
//  and limitations under the License.

package errors

import (
	"fmt"
)

// Planner errors - errors raised while building access paths.

const E_INTERNAL = 4000

// NewPlanInternalError reports a broken precondition the plan
// enumerator is supposed to guarantee. These are programmer errors;
// planning stops immediately.
func NewPlanInternalError(msg string) Error {
	return &err{level: EXCEPTION, ICode: E_INTERNAL, IKey: "planner.internal",
		InternalMsg: msg, InternalCaller: CallerN(1)}
}

const E_OR_NOT_INDEXED = 4110

// NewOrNotIndexedError reports an OR with a child that carries no
// index tag; such an OR cannot be answered from indexes. Warning
// level: the caller discards the candidate.
func NewOrNotIndexedError(child string) Error {
	return &err{level: WARNING, ICode: E_OR_NOT_INDEXED, IKey: "planner.build_or.not_indexed",
		InternalMsg: fmt.Sprintf("Non-indexed child of OR: %s", child), InternalCaller: CallerN(1)}
}

const E_NEGATED_LOGICAL = 4120

func NewNegatedLogicalError() Error {
	return &err{level: WARNING, ICode: E_NEGATED_LOGICAL, IKey: "planner.build_logical.negated",
		InternalMsg: "Negated AND/OR cannot be answered from an index", InternalCaller: CallerN(1)}
}

const E_GEO_NEAR_2D = 4130

func NewGeoNear2DError() Error {
	return &err{level: EXCEPTION, ICode: E_GEO_NEAR_2D, IKey: "planner.build_leaf.geo_near_2d",
		InternalMsg: "Proximity predicate assigned to a 2d index", InternalCaller: CallerN(1)}
}

const E_UNTAGGED_CHILD = 4140

func NewUntaggedChildError(child string) Error {
	return &err{level: EXCEPTION, ICode: E_UNTAGGED_CHILD, IKey: "planner.build_scan.untagged",
		InternalMsg: fmt.Sprintf("Tagged predicate expected: %s", child), InternalCaller: CallerN(1)}
}

const E_UNKNOWN_INDEX = 4150

func NewUnknownIndexError(id string) Error {
	return &err{level: EXCEPTION, ICode: E_UNKNOWN_INDEX, IKey: "planner.build_scan.unknown_index",
		InternalMsg:    fmt.Sprintf("Index tag names an index not in the catalog: %s", id),
		InternalCaller: CallerN(1)}
}
