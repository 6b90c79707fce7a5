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
	"golang.org/x/text/language"
)

// Text is a full-text search predicate. It has no path; it is
// answered only by a text index.
type Text struct {
	leafBase
	query    string
	language language.Tag
}

func NewText(query string, lang language.Tag) *Text {
	return &Text{query: query, language: lang}
}

func (this *Text) MatchType() MatchType {
	return TEXT
}

func (this *Text) Query() string {
	return this.query
}

func (this *Text) Language() language.Tag {
	return this.language
}

func (this *Text) Copy() Expression {
	rv := &Text{query: this.query, language: this.language}
	rv.matchBase = this.copyBase()
	return rv
}

func (this *Text) String() string {
	return "$text: \"" + this.query + "\""
}
