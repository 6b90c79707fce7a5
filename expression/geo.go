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
	"fmt"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// GeoQuery is the payload of a region containment predicate.
type GeoQuery struct {
	Region s2.Cap
}

// NearQuery is the payload of a proximity predicate. Distances are
// angles on the unit sphere.
type NearQuery struct {
	Center      s2.LatLng
	MinDistance s1.Angle
	MaxDistance s1.Angle
	Spherical   bool
}

func (this *NearQuery) Copy() *NearQuery {
	rv := *this
	return &rv
}

type Geo struct {
	leafBase
	query GeoQuery
}

func NewGeo(path string, query GeoQuery) *Geo {
	rv := &Geo{query: query}
	rv.path = path
	return rv
}

func (this *Geo) MatchType() MatchType {
	return GEO
}

func (this *Geo) Query() GeoQuery {
	return this.query
}

func (this *Geo) Copy() Expression {
	rv := &Geo{query: this.query}
	rv.matchBase = this.copyBase()
	return rv
}

func (this *Geo) String() string {
	return fmt.Sprintf("%s $geoWithin cap(%v)", this.path, this.query.Region.Center())
}

type GeoNear struct {
	leafBase
	query NearQuery
}

func NewGeoNear(path string, query NearQuery) *GeoNear {
	rv := &GeoNear{query: query}
	rv.path = path
	return rv
}

func (this *GeoNear) MatchType() MatchType {
	return GEO_NEAR
}

func (this *GeoNear) Query() *NearQuery {
	return &this.query
}

func (this *GeoNear) Copy() Expression {
	rv := &GeoNear{query: this.query}
	rv.matchBase = this.copyBase()
	return rv
}

func (this *GeoNear) String() string {
	return fmt.Sprintf("%s $near (%v, max %v)", this.path, this.query.Center, this.query.MaxDistance)
}
