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

	"github.com/docustore/query/algebra"
	"github.com/docustore/query/datastore"
	"github.com/docustore/query/expression"
)

// IndexScan walks one index over the given bounds. Keys of matching
// entries are checked against the filter, if any, before the record
// identifier is emitted.
type IndexScan struct {
	leaf
	keyPattern     datastore.KeyPattern
	multikey       bool
	bounds         *IndexBounds
	direction      int
	filter         expression.Expression
	maxScan        int64
	addKeyMetadata bool
}

func NewIndexScan(keyPattern datastore.KeyPattern, multikey bool, bounds *IndexBounds) *IndexScan {
	return &IndexScan{
		keyPattern: keyPattern,
		multikey:   multikey,
		bounds:     bounds,
		direction:  1,
	}
}

func (this *IndexScan) Accept(visitor Visitor) (interface{}, error) {
	return visitor.VisitIndexScan(this)
}

func (this *IndexScan) New() Operator {
	return &IndexScan{}
}

func (this *IndexScan) KeyPattern() datastore.KeyPattern {
	return this.keyPattern
}

func (this *IndexScan) Multikey() bool {
	return this.multikey
}

func (this *IndexScan) Bounds() *IndexBounds {
	return this.bounds
}

func (this *IndexScan) Direction() int {
	return this.direction
}

func (this *IndexScan) SetDirection(direction int) {
	this.direction = direction
}

func (this *IndexScan) Filter() expression.Expression {
	return this.filter
}

func (this *IndexScan) SetFilter(filter expression.Expression) {
	this.filter = filter
}

func (this *IndexScan) MaxScan() int64 {
	return this.maxScan
}

func (this *IndexScan) SetMaxScan(maxScan int64) {
	this.maxScan = maxScan
}

func (this *IndexScan) AddKeyMetadata() bool {
	return this.addKeyMetadata
}

func (this *IndexScan) SetAddKeyMetadata(addKeyMetadata bool) {
	this.addKeyMetadata = addKeyMetadata
}

// SortedByRecordId holds when the scan visits a single index key:
// entries with equal keys are stored in record identifier order.
func (this *IndexScan) SortedByRecordId() bool {
	if this.bounds.IsSimpleRange {
		return this.bounds.StartKey.Equals(this.bounds.EndKey)
	}
	for _, oil := range this.bounds.Fields {
		if !oil.IsPoint() {
			return false
		}
	}
	return true
}

// ProvidedOrders is the direction-adjusted key pattern and every
// proper prefix of its leading ordered run. Point-bounded fields can
// also be dropped from the pattern without perturbing the order.
func (this *IndexScan) ProvidedOrders() []algebra.SortKey {
	full := this.keyPattern.SortKey(this.direction)
	ordered := len(full)
	if ordered == 0 {
		return nil
	}

	rv := make([]algebra.SortKey, 0, ordered+1)
	for n := ordered; n >= 1; n-- {
		rv = append(rv, full[:n:n])
	}

	if !this.bounds.IsSimpleRange {
		points := make(map[string]bool, len(this.bounds.Fields))
		for _, oil := range this.bounds.Fields {
			if oil.Filled() && oil.IsPoint() {
				points[oil.Name] = true
			}
		}
		if len(points) > 0 {
			filtered := make(algebra.SortKey, 0, ordered)
			for _, term := range full {
				if !points[term.Field] {
					filtered = append(filtered, term)
				}
			}
			if len(filtered) > 0 && len(filtered) < ordered {
				rv = append(rv, filtered)
			}
		}
	}

	return rv
}

func (this *IndexScan) String() string {
	bytes, _ := this.MarshalJSON()
	return string(bytes)
}

func (this *IndexScan) MarshalJSON() ([]byte, error) {
	return json.Marshal(this.MarshalBase(nil))
}

func (this *IndexScan) MarshalBase(f func(map[string]interface{})) map[string]interface{} {
	r := map[string]interface{}{"#operator": "IndexScan"}
	r["key_pattern"] = this.keyPattern.String()
	r["bounds"] = this.bounds
	r["direction"] = this.direction
	if this.multikey {
		r["multikey"] = this.multikey
	}
	if this.filter != nil {
		r["filter"] = this.filter.String()
	}
	if this.maxScan > 0 {
		r["max_scan"] = this.maxScan
	}
	if this.addKeyMetadata {
		r["add_key_metadata"] = this.addKeyMetadata
	}
	if f != nil {
		f(r)
	}
	return r
}
