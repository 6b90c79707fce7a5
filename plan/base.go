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
	"github.com/docustore/query/algebra"
)

type readonly struct {
}

func (this *readonly) Readonly() bool {
	return true
}

// leaf is embedded by operators without children.
type leaf struct {
	readonly
}

func (this *leaf) Children() Operators {
	return nil
}

// unordered is embedded by operators that provide no sort order.
type unordered struct {
}

func (this *unordered) SortedByRecordId() bool {
	return false
}

func (this *unordered) ProvidedOrders() []algebra.SortKey {
	return nil
}
