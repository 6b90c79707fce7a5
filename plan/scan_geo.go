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

	"github.com/docustore/query/datastore"
	"github.com/docustore/query/expression"
)

// Geo2DScan answers a region predicate with a 2d index.
type Geo2DScan struct {
	leaf
	unordered
	keyPattern datastore.KeyPattern
	query      expression.GeoQuery
	filter     expression.Expression
}

func NewGeo2DScan(keyPattern datastore.KeyPattern, query expression.GeoQuery) *Geo2DScan {
	return &Geo2DScan{
		keyPattern: keyPattern,
		query:      query,
	}
}

func (this *Geo2DScan) Accept(visitor Visitor) (interface{}, error) {
	return visitor.VisitGeo2DScan(this)
}

func (this *Geo2DScan) New() Operator {
	return &Geo2DScan{}
}

func (this *Geo2DScan) KeyPattern() datastore.KeyPattern {
	return this.keyPattern
}

func (this *Geo2DScan) Query() expression.GeoQuery {
	return this.query
}

func (this *Geo2DScan) Filter() expression.Expression {
	return this.filter
}

func (this *Geo2DScan) SetFilter(filter expression.Expression) {
	this.filter = filter
}

func (this *Geo2DScan) String() string {
	bytes, _ := this.MarshalJSON()
	return string(bytes)
}

func (this *Geo2DScan) MarshalJSON() ([]byte, error) {
	return json.Marshal(this.MarshalBase(nil))
}

func (this *Geo2DScan) MarshalBase(f func(map[string]interface{})) map[string]interface{} {
	r := map[string]interface{}{"#operator": "Geo2DScan"}
	r["key_pattern"] = this.keyPattern.String()
	if this.filter != nil {
		r["filter"] = this.filter.String()
	}
	if f != nil {
		f(r)
	}
	return r
}

// GeoNear2DSphereScan returns documents in order of distance from the
// near query's center. The base bounds restrict the non-geo key
// fields of the compound index.
type GeoNear2DSphereScan struct {
	leaf
	unordered
	keyPattern   datastore.KeyPattern
	query        *expression.NearQuery
	baseBounds   *IndexBounds
	filter       expression.Expression
	addPointMeta bool
	addDistMeta  bool
}

func NewGeoNear2DSphereScan(keyPattern datastore.KeyPattern, query *expression.NearQuery,
	baseBounds *IndexBounds) *GeoNear2DSphereScan {
	return &GeoNear2DSphereScan{
		keyPattern: keyPattern,
		query:      query,
		baseBounds: baseBounds,
	}
}

func (this *GeoNear2DSphereScan) Accept(visitor Visitor) (interface{}, error) {
	return visitor.VisitGeoNear2DSphereScan(this)
}

func (this *GeoNear2DSphereScan) New() Operator {
	return &GeoNear2DSphereScan{}
}

func (this *GeoNear2DSphereScan) KeyPattern() datastore.KeyPattern {
	return this.keyPattern
}

func (this *GeoNear2DSphereScan) Query() *expression.NearQuery {
	return this.query
}

func (this *GeoNear2DSphereScan) BaseBounds() *IndexBounds {
	return this.baseBounds
}

func (this *GeoNear2DSphereScan) Filter() expression.Expression {
	return this.filter
}

func (this *GeoNear2DSphereScan) SetFilter(filter expression.Expression) {
	this.filter = filter
}

func (this *GeoNear2DSphereScan) AddPointMeta() bool {
	return this.addPointMeta
}

func (this *GeoNear2DSphereScan) SetAddPointMeta(addPointMeta bool) {
	this.addPointMeta = addPointMeta
}

func (this *GeoNear2DSphereScan) AddDistMeta() bool {
	return this.addDistMeta
}

func (this *GeoNear2DSphereScan) SetAddDistMeta(addDistMeta bool) {
	this.addDistMeta = addDistMeta
}

func (this *GeoNear2DSphereScan) String() string {
	bytes, _ := this.MarshalJSON()
	return string(bytes)
}

func (this *GeoNear2DSphereScan) MarshalJSON() ([]byte, error) {
	return json.Marshal(this.MarshalBase(nil))
}

func (this *GeoNear2DSphereScan) MarshalBase(f func(map[string]interface{})) map[string]interface{} {
	r := map[string]interface{}{"#operator": "GeoNear2DSphereScan"}
	r["key_pattern"] = this.keyPattern.String()
	r["base_bounds"] = this.baseBounds
	if this.filter != nil {
		r["filter"] = this.filter.String()
	}
	if this.addPointMeta {
		r["add_point_meta"] = this.addPointMeta
	}
	if this.addDistMeta {
		r["add_dist_meta"] = this.addDistMeta
	}
	if f != nil {
		f(r)
	}
	return r
}
