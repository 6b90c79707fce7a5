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
	"strings"

	"github.com/docustore/query/datastore"
	"github.com/docustore/query/errors"
	"github.com/docustore/query/expression"
	"github.com/docustore/query/plan"
	"github.com/docustore/query/value"
)

var _ALL_VALUES = plan.NewInterval(value.MIN_VALUE, value.MAX_VALUE, datastore.BOTH)

// sargFor fills intervals for one predicate over one key field.
func (this *sarger) sargFor(expr expression.Expression, key datastore.IndexKey,
	index *datastore.Index, intervals *plan.Intervals) (BoundsTightness, errors.Error) {
	switch expr := expr.(type) {
	case *expression.Eq:
		return this.sargEq(expr.Value(), intervals)
	case *expression.Lt:
		return this.sargLess(expr.Value(), false, intervals)
	case *expression.Le:
		return this.sargLess(expr.Value(), true, intervals)
	case *expression.Gt:
		return this.sargGreater(expr.Value(), false, intervals)
	case *expression.Ge:
		return this.sargGreater(expr.Value(), true, intervals)
	case *expression.Regexp:
		return this.sargRegexp(expr, intervals)
	case *expression.Exists:
		*intervals = plan.Intervals{_ALL_VALUES.Copy()}
		return INEXACT_FETCH, nil
	case *expression.TypeOf:
		*intervals = plan.Intervals{_ALL_VALUES.Copy()}
		return INEXACT_FETCH, nil
	case *expression.Not:
		var inner plan.Intervals
		if _, err := this.sargFor(expr.Operand(), key, index, &inner); err != nil {
			return INEXACT_FETCH, err
		}
		*intervals = complementIntervals(inner)
		return INEXACT_FETCH, nil
	case *expression.ElemMatchValue:
		// Bounds from each inner predicate apply to the element
		// value; intersect them. Per-element semantics must be
		// re-checked on the document.
		rv := plan.Intervals{_ALL_VALUES.Copy()}
		for _, child := range expr.Children() {
			var inner plan.Intervals
			if _, err := this.sargFor(child, key, index, &inner); err != nil {
				return INEXACT_FETCH, err
			}
			rv = intersectIntervals(rv, inner)
		}
		*intervals = rv
		return INEXACT_FETCH, nil
	default:
		return INEXACT_FETCH,
			errors.NewPlanInternalError("No bounds for predicate: " + expr.String())
	}
}

func (this *sarger) sargEq(val value.Value, intervals *plan.Intervals) (BoundsTightness, errors.Error) {
	switch val.Type() {
	case value.NULL:
		// Equality to null also matches missing fields; the index
		// stores null for those, but the document distinguishes.
		*intervals = plan.Intervals{plan.NewPointInterval(val)}
		return INEXACT_FETCH, nil
	case value.ARRAY:
		// An array equality matches whole arrays and their
		// elements; the point interval on the array value needs a
		// document re-check.
		*intervals = plan.Intervals{plan.NewPointInterval(val)}
		return INEXACT_FETCH, nil
	default:
		*intervals = plan.Intervals{plan.NewPointInterval(val)}
		return EXACT, nil
	}
}

func (this *sarger) sargLess(val value.Value, inclusive bool, intervals *plan.Intervals) (
	BoundsTightness, errors.Error) {
	low, lowIncl, ok := typeBracketLow(val)
	if !ok {
		// No local bracket for the value's type; an exact interval
		// would leak into neighboring types.
		*intervals = plan.Intervals{_ALL_VALUES.Copy()}
		return INEXACT_FETCH, nil
	}
	incl := datastore.NEITHER
	if lowIncl {
		incl |= datastore.LOW
	}
	if inclusive {
		incl |= datastore.HIGH
	}
	*intervals = plan.Intervals{plan.NewInterval(low, val, incl)}
	return EXACT, nil
}

func (this *sarger) sargGreater(val value.Value, inclusive bool, intervals *plan.Intervals) (
	BoundsTightness, errors.Error) {
	high, highIncl, ok := typeBracketHigh(val)
	if !ok {
		// No local bracket for the value's type; an exact interval
		// would leak into neighboring types.
		*intervals = plan.Intervals{_ALL_VALUES.Copy()}
		return INEXACT_FETCH, nil
	}
	incl := datastore.NEITHER
	if inclusive {
		incl |= datastore.LOW
	}
	if highIncl {
		incl |= datastore.HIGH
	}
	*intervals = plan.Intervals{plan.NewInterval(val, high, incl)}
	return EXACT, nil
}

// sargRegexp uses a rooted literal prefix when the pattern has one;
// otherwise the whole string range. Either way the key carries the
// string, so the predicate is covered.
func (this *sarger) sargRegexp(expr *expression.Regexp, intervals *plan.Intervals) (
	BoundsTightness, errors.Error) {
	prefix := regexpPrefix(expr.Pattern(), expr.Options())
	if prefix == "" {
		*intervals = plan.Intervals{allStrings()}
		return INEXACT_COVERED, nil
	}

	successor := stringPrefixSuccessor(prefix)
	if successor == "" {
		// No string sorts after the prefix; run to the end of the
		// string type bracket.
		*intervals = plan.Intervals{plan.NewInterval(
			value.NewValue(prefix), value.EMPTY_OBJECT_VALUE, datastore.LOW)}
		return INEXACT_COVERED, nil
	}

	*intervals = plan.Intervals{plan.NewInterval(
		value.NewValue(prefix), value.NewValue(successor), datastore.LOW)}
	return INEXACT_COVERED, nil
}

func allStrings() *plan.Interval {
	return plan.NewInterval(value.NewValue(""), value.EMPTY_OBJECT_VALUE, datastore.LOW)
}

// typeBracketLow is the smallest value of val's type bracket. Types
// without an expressible bracket report !ok; a comparison against
// them cannot stay within the type and must re-check on the document.
func typeBracketLow(val value.Value) (low value.Value, inclusive, ok bool) {
	switch val.Type() {
	case value.NUMBER:
		return value.NewValue(math.Inf(-1)), true, true
	case value.STRING:
		return value.NewValue(""), true, true
	case value.BOOLEAN:
		return value.FALSE_VALUE, true, true
	default:
		return nil, false, false
	}
}

// typeBracketHigh is the largest value of val's type bracket.
func typeBracketHigh(val value.Value) (high value.Value, inclusive, ok bool) {
	switch val.Type() {
	case value.NUMBER:
		return value.NewValue(math.Inf(1)), true, true
	case value.STRING:
		// Strings end where objects begin.
		return value.EMPTY_OBJECT_VALUE, false, true
	case value.BOOLEAN:
		return value.TRUE_VALUE, true, true
	default:
		return nil, false, false
	}
}

// regexpPrefix extracts the literal prefix of a rooted pattern.
// Case-insensitive, multiline and extended patterns, and patterns with
// an alternation, have no usable prefix.
func regexpPrefix(pattern, options string) string {
	if strings.ContainsAny(options, "imx") {
		return ""
	}
	if !strings.HasPrefix(pattern, "^") || strings.ContainsRune(pattern, '|') {
		return ""
	}
	var prefix []rune
	for _, r := range pattern[1:] {
		if strings.ContainsRune(`.^$*+?()[]{}|\`, r) {
			// These quantifiers also match zero occurrences of the
			// preceding character, so it is not part of the prefix.
			if strings.ContainsRune(`*?{`, r) && len(prefix) > 0 {
				prefix = prefix[:len(prefix)-1]
			}
			break
		}
		prefix = append(prefix, r)
	}
	return string(prefix)
}

// stringPrefixSuccessor is the least string greater than every string
// with the given prefix, or "" if no such string exists.
func stringPrefixSuccessor(prefix string) string {
	bytes := []byte(prefix)
	for i := len(bytes) - 1; i >= 0; i-- {
		if bytes[i] < 0xff {
			bytes[i]++
			return string(bytes[:i+1])
		}
	}
	return ""
}
