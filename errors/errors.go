//  Copyright (c) 2026 Docustore, Inc.
//  Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file
//  except in compliance with the License. You may obtain a copy of the License at
//    http://www.apache.org/licenses/LICENSE-2.0
//  Unless required by applicable law or agreed to in writing, software distributed under the
//  License is distributed on an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND,
//  either express or implied. See the License for the specific language governing permissions
//  and limitations under the License.

/*
Package errors provides coded errors. These errors include error
codes and message keys, so that callers can dispatch on the kind of
failure rather than on message text.
*/
package errors

import (
	"encoding/json"
	"fmt"
	"path"
	"runtime"
	"strings"
)

const (
	EXCEPTION = iota
	ERROR
	WARNING
)

type ErrorCode int32

type Errors []Error

type Error interface {
	error
	Code() ErrorCode
	TranslationKey() string
	GetICause() error
	Level() int
	IsFatal() bool
	IsWarning() bool
	Object() map[string]interface{}
}

func NewError(e error, internalMsg string) Error {
	switch e := e.(type) {
	case Error: // if given error is already an Error, just return it:
		return e
	default:
		return &err{level: EXCEPTION, ICode: E_INTERNAL, IKey: "Internal Error", ICause: e,
			InternalMsg: internalMsg, InternalCaller: CallerN(1)}
	}
}

type err struct {
	ICode          ErrorCode
	IKey           string
	ICause         error
	InternalMsg    string
	InternalCaller string
	level          int
}

func (e *err) Error() string {
	switch {
	default:
		return "Unspecified error."
	case e.InternalMsg != "" && e.ICause != nil:
		return e.InternalMsg + " - cause: " + e.ICause.Error()
	case e.InternalMsg != "":
		return e.InternalMsg
	case e.ICause != nil:
		return e.ICause.Error()
	}
}

func (e *err) Object() map[string]interface{} {
	m := map[string]interface{}{
		"code":    int32(e.ICode),
		"key":     e.IKey,
		"message": e.InternalMsg,
		"caller":  e.InternalCaller,
	}
	if e.ICause != nil {
		m["icause"] = e.ICause.Error()
	}
	return m
}

func (e *err) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.Object())
}

func (e *err) Level() int {
	return e.level
}

func (e *err) IsFatal() bool {
	return e.level == EXCEPTION
}

func (e *err) IsWarning() bool {
	return e.level == WARNING
}

func (e *err) Code() ErrorCode {
	return e.ICode
}

func (e *err) TranslationKey() string {
	return e.IKey
}

func (e *err) GetICause() error {
	return e.ICause
}

// Returns "FileName:LineNum" of the Nth caller on the call stack,
// where level of 0 is the caller of CallerN.
func CallerN(level int) string {
	_, fname, lineno, ok := runtime.Caller(1 + level)
	if !ok {
		return "unknown:0"
	}
	return fmt.Sprintf("%s:%d",
		strings.Split(path.Base(fname), ".")[0], lineno)
}
