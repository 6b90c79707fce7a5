//  Copyright (c) 2026 Docustore, Inc.
//  Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file
//  except in compliance with the License. You may obtain a copy of the License at
//    http://www.apache.org/licenses/LICENSE-2.0
//  Unless required by applicable law or agreed to in writing, software distributed under the
//  License is distributed on an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND,
//  either express or implied. See the License for the specific language governing permissions
//  and limitations under the License.

/*
Package value represents typed document values with a total collation
order. The planner uses values for index interval endpoints, index key
prefixes, and simple-range scan keys.
*/
package value

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"
)

type Type int

// Collation order across types. MIN_KEY and MAX_KEY bracket every
// other value; they appear only in index bounds, never in documents.
const (
	MIN_KEY = Type(iota)
	NULL
	NUMBER
	STRING
	OBJECT
	ARRAY
	BOOLEAN
	REGEXP
	MAX_KEY
)

var _TYPE_NAMES = []string{
	MIN_KEY: "min_key",
	NULL:    "null",
	NUMBER:  "number",
	STRING:  "string",
	OBJECT:  "object",
	ARRAY:   "array",
	BOOLEAN: "boolean",
	REGEXP:  "regexp",
	MAX_KEY: "max_key",
}

func (this Type) String() string {
	return _TYPE_NAMES[this]
}

type Value interface {
	fmt.Stringer
	json.Marshaler

	Type() Type
	Actual() interface{}
	Equals(other Value) bool
	Collate(other Value) int
}

type Values []Value

var NULL_VALUE Value = &nullValue{}
var MIN_VALUE Value = &minKeyValue{}
var MAX_VALUE Value = &maxKeyValue{}
var TRUE_VALUE Value = boolValue(true)
var FALSE_VALUE Value = boolValue(false)
var EMPTY_OBJECT_VALUE Value = objectValue{}

// NewValue wraps a native Go value. Maps are ordered by field name so
// that equal inputs always collate equal.
func NewValue(val interface{}) Value {
	switch val := val.(type) {
	case Value:
		return val
	case nil:
		return NULL_VALUE
	case bool:
		return boolValue(val)
	case float64:
		return floatValue(val)
	case int:
		return floatValue(float64(val))
	case int64:
		return floatValue(float64(val))
	case string:
		return stringValue(val)
	case []interface{}:
		rv := make(arrayValue, len(val))
		for i, v := range val {
			rv[i] = NewValue(v)
		}
		return rv
	case map[string]interface{}:
		names := make([]string, 0, len(val))
		for name := range val {
			names = append(names, name)
		}
		sort.Strings(names)
		rv := make(objectValue, 0, len(val))
		for _, name := range names {
			rv = append(rv, Pair{Name: name, Value: NewValue(val[name])})
		}
		return rv
	default:
		panic(fmt.Sprintf("Invalid value type %T", val))
	}
}

// Pair is an ordered object field.
type Pair struct {
	Name  string
	Value Value
}

// NewObjectValue preserves the given field order; use it when the
// field order is significant, e.g. index key documents.
func NewObjectValue(pairs ...Pair) Value {
	return objectValue(pairs)
}

func NewRegexpValue(pattern, options string) Value {
	return &regexpValue{pattern: pattern, options: options}
}

type minKeyValue struct{}

func (this *minKeyValue) String() string               { return "min_key" }
func (this *minKeyValue) MarshalJSON() ([]byte, error) { return []byte(`{"$minKey":1}`), nil }
func (this *minKeyValue) Type() Type                   { return MIN_KEY }
func (this *minKeyValue) Actual() interface{}          { return nil }
func (this *minKeyValue) Equals(other Value) bool      { return other.Type() == MIN_KEY }
func (this *minKeyValue) Collate(other Value) int      { return int(MIN_KEY - other.Type()) }

type maxKeyValue struct{}

func (this *maxKeyValue) String() string               { return "max_key" }
func (this *maxKeyValue) MarshalJSON() ([]byte, error) { return []byte(`{"$maxKey":1}`), nil }
func (this *maxKeyValue) Type() Type                   { return MAX_KEY }
func (this *maxKeyValue) Actual() interface{}          { return nil }
func (this *maxKeyValue) Equals(other Value) bool      { return other.Type() == MAX_KEY }
func (this *maxKeyValue) Collate(other Value) int      { return int(MAX_KEY - other.Type()) }

type nullValue struct{}

func (this *nullValue) String() string               { return "null" }
func (this *nullValue) MarshalJSON() ([]byte, error) { return []byte("null"), nil }
func (this *nullValue) Type() Type                   { return NULL }
func (this *nullValue) Actual() interface{}          { return nil }
func (this *nullValue) Equals(other Value) bool      { return other.Type() == NULL }
func (this *nullValue) Collate(other Value) int      { return int(NULL - other.Type()) }

type boolValue bool

func (this boolValue) String() string {
	if this {
		return "true"
	}
	return "false"
}

func (this boolValue) MarshalJSON() ([]byte, error) {
	return []byte(this.String()), nil
}

func (this boolValue) Type() Type          { return BOOLEAN }
func (this boolValue) Actual() interface{} { return bool(this) }

func (this boolValue) Equals(other Value) bool {
	that, ok := other.(boolValue)
	return ok && this == that
}

func (this boolValue) Collate(other Value) int {
	that, ok := other.(boolValue)
	if !ok {
		return int(BOOLEAN - other.Type())
	}
	if this == that {
		return 0
	}
	if bool(this) {
		return 1
	}
	return -1
}

type floatValue float64

func (this floatValue) String() string {
	bytes, _ := this.MarshalJSON()
	return string(bytes)
}

func (this floatValue) MarshalJSON() ([]byte, error) {
	f := float64(this)
	if math.IsInf(f, 1) {
		return []byte(`{"$maxNumber":1}`), nil
	}
	if math.IsInf(f, -1) {
		return []byte(`{"$minNumber":1}`), nil
	}
	return json.Marshal(f)
}

func (this floatValue) Type() Type          { return NUMBER }
func (this floatValue) Actual() interface{} { return float64(this) }

func (this floatValue) Equals(other Value) bool {
	that, ok := other.(floatValue)
	return ok && this == that
}

func (this floatValue) Collate(other Value) int {
	that, ok := other.(floatValue)
	if !ok {
		return int(NUMBER - other.Type())
	}
	switch {
	case this < that:
		return -1
	case this > that:
		return 1
	default:
		return 0
	}
}

type stringValue string

func (this stringValue) String() string {
	bytes, _ := this.MarshalJSON()
	return string(bytes)
}

func (this stringValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(this))
}

func (this stringValue) Type() Type          { return STRING }
func (this stringValue) Actual() interface{} { return string(this) }

func (this stringValue) Equals(other Value) bool {
	that, ok := other.(stringValue)
	return ok && this == that
}

func (this stringValue) Collate(other Value) int {
	that, ok := other.(stringValue)
	if !ok {
		return int(STRING - other.Type())
	}
	return strings.Compare(string(this), string(that))
}

type arrayValue []Value

func (this arrayValue) String() string {
	bytes, _ := this.MarshalJSON()
	return string(bytes)
}

func (this arrayValue) MarshalJSON() ([]byte, error) {
	return json.Marshal([]Value(this))
}

func (this arrayValue) Type() Type { return ARRAY }

func (this arrayValue) Actual() interface{} {
	rv := make([]interface{}, len(this))
	for i, v := range this {
		rv[i] = v.Actual()
	}
	return rv
}

func (this arrayValue) Equals(other Value) bool {
	return this.Collate(other) == 0
}

func (this arrayValue) Collate(other Value) int {
	that, ok := other.(arrayValue)
	if !ok {
		return int(ARRAY - other.Type())
	}
	for i, v := range this {
		if i >= len(that) {
			return 1
		}
		if c := v.Collate(that[i]); c != 0 {
			return c
		}
	}
	return len(this) - len(that)
}

type objectValue []Pair

func (this objectValue) String() string {
	bytes, _ := this.MarshalJSON()
	return string(bytes)
}

func (this objectValue) MarshalJSON() ([]byte, error) {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, pair := range this {
		if i > 0 {
			sb.WriteByte(',')
		}
		name, err := json.Marshal(pair.Name)
		if err != nil {
			return nil, err
		}
		sb.Write(name)
		sb.WriteByte(':')
		val, err := pair.Value.MarshalJSON()
		if err != nil {
			return nil, err
		}
		sb.Write(val)
	}
	sb.WriteByte('}')
	return []byte(sb.String()), nil
}

func (this objectValue) Type() Type { return OBJECT }

func (this objectValue) Actual() interface{} {
	rv := make(map[string]interface{}, len(this))
	for _, pair := range this {
		rv[pair.Name] = pair.Value.Actual()
	}
	return rv
}

func (this objectValue) Equals(other Value) bool {
	return this.Collate(other) == 0
}

func (this objectValue) Collate(other Value) int {
	that, ok := other.(objectValue)
	if !ok {
		return int(OBJECT - other.Type())
	}
	for i, pair := range this {
		if i >= len(that) {
			return 1
		}
		if c := strings.Compare(pair.Name, that[i].Name); c != 0 {
			return c
		}
		if c := pair.Value.Collate(that[i].Value); c != 0 {
			return c
		}
	}
	return len(this) - len(that)
}

type regexpValue struct {
	pattern string
	options string
}

func (this *regexpValue) String() string {
	bytes, _ := this.MarshalJSON()
	return string(bytes)
}

func (this *regexpValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]string{"$regex": this.pattern, "$options": this.options})
}

func (this *regexpValue) Type() Type          { return REGEXP }
func (this *regexpValue) Actual() interface{} { return this.pattern }

func (this *regexpValue) Equals(other Value) bool {
	that, ok := other.(*regexpValue)
	return ok && this.pattern == that.pattern && this.options == that.options
}

func (this *regexpValue) Collate(other Value) int {
	that, ok := other.(*regexpValue)
	if !ok {
		return int(REGEXP - other.Type())
	}
	if c := strings.Compare(this.pattern, that.pattern); c != 0 {
		return c
	}
	return strings.Compare(this.options, that.options)
}
