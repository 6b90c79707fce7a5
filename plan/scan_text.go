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

	"golang.org/x/text/language"

	"github.com/docustore/query/datastore"
	"github.com/docustore/query/expression"
	"github.com/docustore/query/value"
)

// TextScan answers a full-text predicate with a text index. The
// indexPrefix pins the equality-bound key fields that precede the
// text field in the compound key pattern.
type TextScan struct {
	leaf
	unordered
	keyPattern  datastore.KeyPattern
	query       string
	language    language.Tag
	indexPrefix value.Value
	filter      expression.Expression
}

func NewTextScan(keyPattern datastore.KeyPattern, query string, lang language.Tag) *TextScan {
	return &TextScan{
		keyPattern: keyPattern,
		query:      query,
		language:   lang,
	}
}

func (this *TextScan) Accept(visitor Visitor) (interface{}, error) {
	return visitor.VisitTextScan(this)
}

func (this *TextScan) New() Operator {
	return &TextScan{}
}

func (this *TextScan) KeyPattern() datastore.KeyPattern {
	return this.keyPattern
}

func (this *TextScan) Query() string {
	return this.query
}

func (this *TextScan) Language() language.Tag {
	return this.language
}

func (this *TextScan) IndexPrefix() value.Value {
	return this.indexPrefix
}

func (this *TextScan) SetIndexPrefix(indexPrefix value.Value) {
	this.indexPrefix = indexPrefix
}

func (this *TextScan) Filter() expression.Expression {
	return this.filter
}

func (this *TextScan) SetFilter(filter expression.Expression) {
	this.filter = filter
}

func (this *TextScan) String() string {
	bytes, _ := this.MarshalJSON()
	return string(bytes)
}

func (this *TextScan) MarshalJSON() ([]byte, error) {
	return json.Marshal(this.MarshalBase(nil))
}

func (this *TextScan) MarshalBase(f func(map[string]interface{})) map[string]interface{} {
	r := map[string]interface{}{"#operator": "TextScan"}
	r["key_pattern"] = this.keyPattern.String()
	r["query"] = this.query
	r["language"] = this.language.String()
	if this.indexPrefix != nil {
		r["index_prefix"] = this.indexPrefix
	}
	if this.filter != nil {
		r["filter"] = this.filter.String()
	}
	if f != nil {
		f(r)
	}
	return r
}
