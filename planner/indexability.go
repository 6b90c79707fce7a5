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
	"github.com/docustore/query/expression"
)

// nodeCanUseIndexOnOwnField reports whether a predicate generates
// index intervals for the field it names. Logical nodes cannot; of
// the array operators only a value-matching element predicate can,
// since its clauses constrain the indexed element values directly.
func nodeCanUseIndexOnOwnField(expr expression.Expression) bool {
	matchType := expr.MatchType()
	if matchType.IsLogical() {
		return false
	}
	if matchType.IsArrayOperator() {
		return matchType == expression.ELEM_MATCH_VALUE
	}
	return true
}

// isBoundsGeneratingNot reports a negation whose operand generates
// intervals; the bounds are the operand's complement.
func isBoundsGeneratingNot(expr expression.Expression) bool {
	return expr.MatchType() == expression.NOT &&
		nodeCanUseIndexOnOwnField(expr.Children()[0])
}

// isBoundsGenerating reports whether the node itself turns into a
// scan leaf, directly or through a negation.
func isBoundsGenerating(expr expression.Expression) bool {
	return isBoundsGeneratingNot(expr) || nodeCanUseIndexOnOwnField(expr)
}

// arrayUsesIndexOnChildren reports an array operator indexed by
// virtue of its children.
func arrayUsesIndexOnChildren(expr expression.Expression) bool {
	matchType := expr.MatchType()
	return matchType == expression.ALL || matchType == expression.ELEM_MATCH_OBJECT
}
