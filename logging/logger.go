//  Copyright (c) 2026 Docustore, Inc.
//  Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file
//  except in compliance with the License. You may obtain a copy of the License at
//    http://www.apache.org/licenses/LICENSE-2.0
//  Unless required by applicable law or agreed to in writing, software distributed under the
//  License is distributed on an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND,
//  either express or implied. See the License for the specific language governing permissions
//  and limitations under the License.

/*
Package logging provides the leveled logger the planner reports
diagnostics through. The process owning the engine installs its own
Logger; the default writes to the standard library logger.
*/
package logging

import (
	golog "log"
	"sync"
)

type Level int

const (
	NONE  = Level(iota) // Disable all logging
	ERROR               // System is in error state but can recover and continue reliably
	WARN                // System approaching error state, or is in a correct but undesirable state
	INFO                // System-level events and status, in correct states
	DEBUG               // Debug
	TRACE               // Trace detailed system execution, e.g. function entry / exit
)

var _LEVEL_NAMES = []string{
	NONE:  "NONE",
	ERROR: "ERROR",
	WARN:  "WARN",
	INFO:  "INFO",
	DEBUG: "DEBUG",
	TRACE: "TRACE",
}

func (level Level) String() string {
	return _LEVEL_NAMES[level]
}

type Logger interface {
	Logf(level Level, fmt string, args ...interface{})
	Level() Level
	SetLevel(level Level)
}

var (
	logger   Logger = &goLogger{level: INFO}
	loggerMu sync.Mutex

	// cache logging enablement to avoid a level test per call site
	cachedDebug bool
	cachedTrace bool
)

func cacheLoggingChange() {
	cachedDebug = logger.Level() >= DEBUG
	cachedTrace = logger.Level() >= TRACE
}

func SetLogger(newLogger Logger) {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	logger = newLogger
	cacheLoggingChange()
}

func SetLevel(level Level) {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	logger.SetLevel(level)
	cacheLoggingChange()
}

func LogLevel() Level {
	return logger.Level()
}

func Errorf(fmt string, args ...interface{}) {
	logger.Logf(ERROR, fmt, args...)
}

func Warnf(fmt string, args ...interface{}) {
	logger.Logf(WARN, fmt, args...)
}

func Infof(fmt string, args ...interface{}) {
	logger.Logf(INFO, fmt, args...)
}

func Debugf(fmt string, args ...interface{}) {
	if cachedDebug {
		logger.Logf(DEBUG, fmt, args...)
	}
}

func Tracef(fmt string, args ...interface{}) {
	if cachedTrace {
		logger.Logf(TRACE, fmt, args...)
	}
}

// goLogger writes through the standard library logger.
type goLogger struct {
	mu    sync.Mutex
	level Level
}

func (this *goLogger) Logf(level Level, fmt string, args ...interface{}) {
	if level > this.Level() {
		return
	}
	golog.Printf(level.String()+" "+fmt, args...)
}

func (this *goLogger) Level() Level {
	this.mu.Lock()
	defer this.mu.Unlock()
	return this.level
}

func (this *goLogger) SetLevel(level Level) {
	this.mu.Lock()
	defer this.mu.Unlock()
	this.level = level
}
