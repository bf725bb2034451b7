/*
 * Apache License 2.0
 *
 * Copyright (c) 2022, Austin Zhai
 * All rights reserved.
 */
package log

import "sync/atomic"

type Level int

const (
	LevelTrace Level = iota + 1
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
)

func (level Level) String() string {
	switch level {
	case LevelTrace:
		return "trace"
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	}
	return "unknown"
}

// Logger is what the gstree packages log through, KLog is the default.
type Logger interface {
	Enabled(level Level) bool
	Trace(v ...interface{})
	Tracef(format string, v ...interface{})
	Debug(v ...interface{})
	Debugf(format string, v ...interface{})
	Info(v ...interface{})
	Infof(format string, v ...interface{})
	Warn(v ...interface{})
	Warnf(format string, v ...interface{})
	Error(v ...interface{})
	Errorf(format string, v ...interface{})
}

type holder struct {
	logger Logger
}

var defaultLog atomic.Value

func init() {
	defaultLog.Store(holder{logger: NewKLog()})
}

// SetLog replaces the package level logger, nil restores klog.
func SetLog(logger Logger) {
	if logger == nil {
		logger = NewKLog()
	}
	defaultLog.Store(holder{logger: logger})
}

// DefaultLog returns the logger behind the package level functions.
func DefaultLog() Logger {
	return defaultLog.Load().(holder).logger
}

// Enabled guards log calls whose arguments are costly to build.
func Enabled(level Level) bool {
	return DefaultLog().Enabled(level)
}

func Trace(v ...interface{}) {
	DefaultLog().Trace(v...)
}

func Tracef(format string, v ...interface{}) {
	DefaultLog().Tracef(format, v...)
}

func Debug(v ...interface{}) {
	DefaultLog().Debug(v...)
}

func Debugf(format string, v ...interface{}) {
	DefaultLog().Debugf(format, v...)
}

func Info(v ...interface{}) {
	DefaultLog().Info(v...)
}

func Infof(format string, v ...interface{}) {
	DefaultLog().Infof(format, v...)
}

func Warn(v ...interface{}) {
	DefaultLog().Warn(v...)
}

func Warnf(format string, v ...interface{}) {
	DefaultLog().Warnf(format, v...)
}

func Error(v ...interface{}) {
	DefaultLog().Error(v...)
}

func Errorf(format string, v ...interface{}) {
	DefaultLog().Errorf(format, v...)
}
