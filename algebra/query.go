//  Copyright (c) 2026 Docustore, Inc.
//  Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file
//  except in compliance with the License. You may obtain a copy of the License at
//    http://www.apache.org/licenses/LICENSE-2.0
//  Unless required by applicable law or agreed to in writing, software distributed under the
//  License is distributed on an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND,
//  either express or implied. See the License for the specific language governing permissions
//  and limitations under the License.

/*
Package algebra carries the canonicalized query the planner plans
for: the predicate tree plus the parsed request options that shape
access-path choices.
*/
package algebra

import (
	"github.com/docustore/query/expression"
)

// Hint is a parsed index hint: an index name, or $natural with a
// direction.
type Hint struct {
	Index   string
	Natural int
}

// Projection flags the planner cares about: whether geo metadata must
// be materialized by a near scan.
type Projection struct {
	WantGeoNearPoint    bool
	WantGeoNearDistance bool
}

// CanonicalQuery is a parsed, normalized query. The predicate tree is
// consumed destructively by planning; the rest is read-only.
type CanonicalQuery struct {
	namespace  string
	root       expression.Expression
	sort       SortKey
	hint       *Hint
	maxScan    int64
	returnKey  bool
	projection *Projection
}

func NewCanonicalQuery(namespace string, root expression.Expression) *CanonicalQuery {
	return &CanonicalQuery{
		namespace: namespace,
		root:      root,
	}
}

func (this *CanonicalQuery) Namespace() string {
	return this.namespace
}

func (this *CanonicalQuery) Root() expression.Expression {
	return this.root
}

func (this *CanonicalQuery) SetRoot(root expression.Expression) {
	this.root = root
}

func (this *CanonicalQuery) Sort() SortKey {
	return this.sort
}

func (this *CanonicalQuery) SetSort(sort SortKey) {
	this.sort = sort
}

func (this *CanonicalQuery) Hint() *Hint {
	return this.hint
}

func (this *CanonicalQuery) SetHint(hint *Hint) {
	this.hint = hint
}

func (this *CanonicalQuery) MaxScan() int64 {
	return this.maxScan
}

func (this *CanonicalQuery) SetMaxScan(maxScan int64) {
	this.maxScan = maxScan
}

func (this *CanonicalQuery) ReturnKey() bool {
	return this.returnKey
}

func (this *CanonicalQuery) SetReturnKey(returnKey bool) {
	this.returnKey = returnKey
}

func (this *CanonicalQuery) Projection() *Projection {
	return this.projection
}

func (this *CanonicalQuery) SetProjection(projection *Projection) {
	this.projection = projection
}
