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
	"sort"

	"github.com/docustore/query/datastore"
	"github.com/docustore/query/plan"
	"github.com/docustore/query/value"
)

// Interval arithmetic over ordered disjoint lists. Inputs and outputs
// are ordered by low endpoint and pairwise disjoint.

func intersectIntervals(a, b plan.Intervals) plan.Intervals {
	var rv plan.Intervals
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if iv := intersectInterval(a[i], b[j]); iv != nil {
			rv = append(rv, iv)
		}
		c := cmpHigh(a[i], b[j])
		if c <= 0 {
			i++
		}
		if c >= 0 {
			j++
		}
	}
	return rv
}

func intersectInterval(x, y *plan.Interval) *plan.Interval {
	low := x.Low
	lowIncl := x.Inclusion.HasLow()
	switch c := x.Low.Collate(y.Low); {
	case c < 0:
		low = y.Low
		lowIncl = y.Inclusion.HasLow()
	case c == 0:
		lowIncl = lowIncl && y.Inclusion.HasLow()
	}

	high := x.High
	highIncl := x.Inclusion.HasHigh()
	switch c := x.High.Collate(y.High); {
	case c > 0:
		high = y.High
		highIncl = y.Inclusion.HasHigh()
	case c == 0:
		highIncl = highIncl && y.Inclusion.HasHigh()
	}

	switch c := low.Collate(high); {
	case c > 0:
		return nil
	case c == 0:
		if !lowIncl || !highIncl {
			return nil
		}
	}
	return plan.NewInterval(low, high, inclusion(lowIncl, highIncl))
}

func unionIntervals(a, b plan.Intervals) plan.Intervals {
	merged := make(plan.Intervals, 0, len(a)+len(b))
	merged = append(merged, a...)
	merged = append(merged, b...)
	if len(merged) == 0 {
		return nil
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return cmpLow(merged[i], merged[j]) < 0
	})

	rv := plan.Intervals{merged[0].Copy()}
	for _, next := range merged[1:] {
		cur := rv[len(rv)-1]
		if !connects(cur, next) {
			rv = append(rv, next.Copy())
			continue
		}
		switch c := next.High.Collate(cur.High); {
		case c > 0:
			cur.High = next.High
			cur.Inclusion = inclusion(cur.Inclusion.HasLow(), next.Inclusion.HasHigh())
		case c == 0:
			cur.Inclusion = inclusion(cur.Inclusion.HasLow(),
				cur.Inclusion.HasHigh() || next.Inclusion.HasHigh())
		}
	}
	return rv
}

// complementIntervals inverts an ordered disjoint list over the full
// value range.
func complementIntervals(a plan.Intervals) plan.Intervals {
	var rv plan.Intervals
	low := value.MIN_VALUE
	lowIncl := true
	for _, iv := range a {
		c := low.Collate(iv.Low)
		if c < 0 || (c == 0 && lowIncl && !iv.Inclusion.HasLow()) {
			rv = append(rv, plan.NewInterval(low, iv.Low,
				inclusion(lowIncl, !iv.Inclusion.HasLow())))
		}
		low = iv.High
		lowIncl = !iv.Inclusion.HasHigh()
	}
	c := low.Collate(value.MAX_VALUE)
	if c < 0 || (c == 0 && lowIncl) {
		rv = append(rv, plan.NewInterval(low, value.MAX_VALUE, inclusion(lowIncl, true)))
	}
	return rv
}

// connects holds when next overlaps or abuts cur, i.e. the two merge
// into one interval.
func connects(cur, next *plan.Interval) bool {
	c := next.Low.Collate(cur.High)
	if c != 0 {
		return c < 0
	}
	return next.Inclusion.HasLow() || cur.Inclusion.HasHigh()
}

func cmpLow(x, y *plan.Interval) int {
	c := x.Low.Collate(y.Low)
	if c != 0 {
		return c
	}
	// An inclusive low starts earlier than an exclusive one.
	xi, yi := x.Inclusion.HasLow(), y.Inclusion.HasLow()
	if xi == yi {
		return 0
	}
	if xi {
		return -1
	}
	return 1
}

func cmpHigh(x, y *plan.Interval) int {
	c := x.High.Collate(y.High)
	if c != 0 {
		return c
	}
	// An exclusive high ends earlier than an inclusive one.
	xi, yi := x.Inclusion.HasHigh(), y.Inclusion.HasHigh()
	if xi == yi {
		return 0
	}
	if xi {
		return 1
	}
	return -1
}

func inclusion(lowIncl, highIncl bool) datastore.Inclusion {
	rv := datastore.NEITHER
	if lowIncl {
		rv |= datastore.LOW
	}
	if highIncl {
		rv |= datastore.HIGH
	}
	return rv
}
