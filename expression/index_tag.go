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

	"github.com/google/uuid"
)

// IndexTag is the plan enumerator's assignment of a predicate to a
// key field of one index. Pos is the 0-based offset of the key field
// in the compound key pattern.
type IndexTag struct {
	Index uuid.UUID
	Pos   int
}

func NewIndexTag(index uuid.UUID, pos int) *IndexTag {
	return &IndexTag{Index: index, Pos: pos}
}

func (this *IndexTag) Copy() *IndexTag {
	rv := *this
	return &rv
}

func (this *IndexTag) String() string {
	return fmt.Sprintf("(%s, %d)", this.Index, this.Pos)
}
