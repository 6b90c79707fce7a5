//  Copyright (c) 2026 Docustore, Inc.
//  Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file
//  except in compliance with the License. You may obtain a copy of the License at
//    http://www.apache.org/licenses/LICENSE-2.0
//  Unless required by applicable law or agreed to in writing, software distributed under the
//  License is distributed on an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND,
//  either express or implied. See the License for the specific language governing permissions
//  and limitations under the License.

/*
Package datastore describes the index catalog entries the planner
consumes. The catalog itself lives with the storage engine; the
planner only reads these descriptors.
*/
package datastore

import (
	"strings"

	"github.com/google/uuid"

	"github.com/docustore/query/algebra"
)

// IndexKeyKind is the kind of a single key field of an index.
type IndexKeyKind int

const (
	IK_ASC = IndexKeyKind(iota)
	IK_DESC
	IK_2D
	IK_2DSPHERE
	IK_TEXT
)

var _KIND_NAMES = []string{
	IK_ASC:      "1",
	IK_DESC:     "-1",
	IK_2D:       "2d",
	IK_2DSPHERE: "2dsphere",
	IK_TEXT:     "text",
}

func (this IndexKeyKind) String() string {
	return _KIND_NAMES[this]
}

// Direction returns 1 or -1 for ordered key kinds. Special kinds
// (geo, text) sort ascending in the key.
func (this IndexKeyKind) Direction() int {
	if this == IK_DESC {
		return -1
	}
	return 1
}

type IndexKey struct {
	Field string
	Kind  IndexKeyKind
}

// KeyPattern is the ordered list of key fields of a compound index.
type KeyPattern []IndexKey

func (this KeyPattern) Len() int {
	return len(this)
}

func (this KeyPattern) Key(pos int) IndexKey {
	return this[pos]
}

// SortKey is the sort order the pattern provides when scanned in the
// given direction: the leading run of ordered key fields, each
// adjusted by the direction. Nil when the pattern leads with a
// special (geo, text) field.
func (this KeyPattern) SortKey(direction int) algebra.SortKey {
	var rv algebra.SortKey
	for _, key := range this {
		if key.Kind != IK_ASC && key.Kind != IK_DESC {
			break
		}
		rv = append(rv, algebra.SortTerm{Field: key.Field, Direction: key.Kind.Direction() * direction})
	}
	return rv
}

func (this KeyPattern) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, key := range this {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(key.Field)
		sb.WriteString(": ")
		if key.Kind == IK_ASC || key.Kind == IK_DESC {
			sb.WriteString(key.Kind.String())
		} else {
			sb.WriteByte('"')
			sb.WriteString(key.Kind.String())
			sb.WriteByte('"')
		}
	}
	sb.WriteByte('}')
	return sb.String()
}

type IndexType int

const (
	INDEX_REGULAR = IndexType(iota)
	INDEX_TEXT
	INDEX_2D
	INDEX_2DSPHERE
)

var _INDEX_TYPE_NAMES = []string{
	INDEX_REGULAR:  "regular",
	INDEX_TEXT:     "text",
	INDEX_2D:       "2d",
	INDEX_2DSPHERE: "2dsphere",
}

func (this IndexType) String() string {
	return _INDEX_TYPE_NAMES[this]
}

// Index is a catalog entry for one index. Multikey is true iff any
// indexed field has ever held an array value; bounds intersection is
// unsound on such an index.
type Index struct {
	Id         uuid.UUID
	Name       string
	KeyPattern KeyPattern
	Multikey   bool
	Type       IndexType
}

type Indexes []*Index

// NewIndex assigns a fresh identity to a catalog entry.
func NewIndex(name string, keyPattern KeyPattern, multikey bool, indexType IndexType) *Index {
	return &Index{
		Id:         uuid.New(),
		Name:       name,
		KeyPattern: keyPattern,
		Multikey:   multikey,
		Type:       indexType,
	}
}

func (this *Index) String() string {
	rv := this.Name + " " + this.KeyPattern.String()
	if this.Multikey {
		rv += " (multikey)"
	}
	return rv
}

// ById returns the entry carrying the given identity, or nil.
func (this Indexes) ById(id uuid.UUID) *Index {
	for _, index := range this {
		if index.Id == id {
			return index
		}
	}
	return nil
}
