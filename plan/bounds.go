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
	"encoding/json"
	"strings"

	"github.com/docustore/query/datastore"
	"github.com/docustore/query/value"
)

// Interval is one contiguous range of values for a single index key
// field.
type Interval struct {
	Low       value.Value
	High      value.Value
	Inclusion datastore.Inclusion
}

type Intervals []*Interval

func NewInterval(low, high value.Value, incl datastore.Inclusion) *Interval {
	return &Interval{Low: low, High: high, Inclusion: incl}
}

// NewPointInterval is the [v, v] interval.
func NewPointInterval(val value.Value) *Interval {
	return &Interval{Low: val, High: val, Inclusion: datastore.BOTH}
}

func (this *Interval) IsPoint() bool {
	return this.Inclusion == datastore.BOTH && this.Low != nil && this.High != nil &&
		this.Low.Equals(this.High)
}

func (this *Interval) Equals(other *Interval) bool {
	return this == other || (this.Inclusion == other.Inclusion &&
		this.Low.Equals(other.Low) && this.High.Equals(other.High))
}

func (this *Interval) Copy() *Interval {
	rv := *this
	return &rv
}

// Reverse swaps the endpoints; used when aligning bounds to a
// descending key field.
func (this *Interval) Reverse() {
	this.Low, this.High = this.High, this.Low
	this.Inclusion = this.Inclusion.Swap()
}

func (this *Interval) String() string {
	var sb strings.Builder
	if this.Inclusion.HasLow() {
		sb.WriteByte('[')
	} else {
		sb.WriteByte('(')
	}
	sb.WriteString(this.Low.String())
	sb.WriteString(", ")
	sb.WriteString(this.High.String())
	if this.Inclusion.HasHigh() {
		sb.WriteByte(']')
	} else {
		sb.WriteByte(')')
	}
	return sb.String()
}

func (this *Interval) MarshalJSON() ([]byte, error) {
	r := map[string]interface{}{
		"low":       this.Low,
		"high":      this.High,
		"inclusion": int(this.Inclusion),
	}
	return json.Marshal(r)
}

// OrderedIntervalList holds the disjoint, ordered intervals for one
// key field. An empty name means the field has not been filled yet.
type OrderedIntervalList struct {
	Name      string
	Intervals Intervals
}

func (this *OrderedIntervalList) Filled() bool {
	return this.Name != ""
}

// IsPoint reports a single point interval; such a field does not
// perturb any sort order the scan provides.
func (this *OrderedIntervalList) IsPoint() bool {
	return len(this.Intervals) == 1 && this.Intervals[0].IsPoint()
}

func (this *OrderedIntervalList) Copy() *OrderedIntervalList {
	rv := &OrderedIntervalList{Name: this.Name}
	rv.Intervals = make(Intervals, len(this.Intervals))
	for i, interval := range this.Intervals {
		rv.Intervals[i] = interval.Copy()
	}
	return rv
}

// Reverse flips the interval order and each interval; used when the
// key field runs descending.
func (this *OrderedIntervalList) Reverse() {
	for i, j := 0, len(this.Intervals)-1; i < j; i, j = i+1, j-1 {
		this.Intervals[i], this.Intervals[j] = this.Intervals[j], this.Intervals[i]
	}
	for _, interval := range this.Intervals {
		interval.Reverse()
	}
}

func (this *OrderedIntervalList) String() string {
	var sb strings.Builder
	sb.WriteString(this.Name)
	sb.WriteByte(':')
	for _, interval := range this.Intervals {
		sb.WriteByte(' ')
		sb.WriteString(interval.String())
	}
	return sb.String()
}

func (this *OrderedIntervalList) MarshalJSON() ([]byte, error) {
	r := map[string]interface{}{
		"field":     this.Name,
		"intervals": this.Intervals,
	}
	return json.Marshal(r)
}

// IndexBounds is either a per-field list of intervals (one entry per
// key field of the index) or a single [startKey, endKey) range over
// whole index keys.
type IndexBounds struct {
	Fields []*OrderedIntervalList

	IsSimpleRange   bool
	StartKey        value.Value
	EndKey          value.Value
	EndKeyInclusive bool
}

// NewIndexBounds sizes the per-field lists for an index with n key
// fields; all lists start unfilled.
func NewIndexBounds(n int) *IndexBounds {
	rv := &IndexBounds{Fields: make([]*OrderedIntervalList, n)}
	for i := range rv.Fields {
		rv.Fields[i] = &OrderedIntervalList{}
	}
	return rv
}

func NewSimpleRangeBounds(startKey, endKey value.Value, endKeyInclusive bool) *IndexBounds {
	return &IndexBounds{
		IsSimpleRange:   true,
		StartKey:        startKey,
		EndKey:          endKey,
		EndKeyInclusive: endKeyInclusive,
	}
}

func (this *IndexBounds) Copy() *IndexBounds {
	rv := &IndexBounds{
		IsSimpleRange:   this.IsSimpleRange,
		StartKey:        this.StartKey,
		EndKey:          this.EndKey,
		EndKeyInclusive: this.EndKeyInclusive,
	}
	if this.Fields != nil {
		rv.Fields = make([]*OrderedIntervalList, len(this.Fields))
		for i, oil := range this.Fields {
			rv.Fields[i] = oil.Copy()
		}
	}
	return rv
}

func (this *IndexBounds) String() string {
	if this.IsSimpleRange {
		var sb strings.Builder
		sb.WriteByte('[')
		sb.WriteString(this.StartKey.String())
		sb.WriteString(", ")
		sb.WriteString(this.EndKey.String())
		if this.EndKeyInclusive {
			sb.WriteByte(']')
		} else {
			sb.WriteByte(')')
		}
		return sb.String()
	}
	parts := make([]string, len(this.Fields))
	for i, oil := range this.Fields {
		parts[i] = oil.String()
	}
	return strings.Join(parts, " ")
}

func (this *IndexBounds) MarshalJSON() ([]byte, error) {
	if this.IsSimpleRange {
		r := map[string]interface{}{
			"start_key":         this.StartKey,
			"end_key":           this.EndKey,
			"end_key_inclusive": this.EndKeyInclusive,
		}
		return json.Marshal(r)
	}
	return json.Marshal(this.Fields)
}
