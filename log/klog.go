/*
 * Apache License 2.0
 *
 * Copyright (c) 2022, Austin Zhai
 * All rights reserved.
 */
package log

import "k8s.io/klog/v2"

type KLog struct {
	verbosities []int // indexed by Level
}

// just a wrapper for klog in kubernetes
// default verbosities see: https://github.com/kubernetes/community/blob/master/contributors/devel/sig-instrumentation/logging.md
func NewKLog() *KLog {
	return &KLog{
		verbosities: []int{
			0,
			5, // LevelTrace
			4, // LevelDebug
			3, // LevelInfo
			2, // LevelWarn
			0, // LevelError, errors go through klog.Error regardless
		},
	}
}

// SetVerbosity maps level to a klog -v threshold.
func (log *KLog) SetVerbosity(level Level, verbosity int) {
	if level < LevelTrace || level > LevelError {
		return
	}
	log.verbosities[level] = verbosity
}

func (log *KLog) Verbosity(level Level) int {
	if level < LevelTrace || level > LevelError {
		return 0
	}
	return log.verbosities[level]
}

func (log *KLog) Enabled(level Level) bool {
	if level >= LevelError {
		return true
	}
	return klog.V(klog.Level(log.Verbosity(level))).Enabled()
}

func (log *KLog) Trace(v ...interface{}) {
	klog.V(klog.Level(log.verbosities[LevelTrace])).Info(v...)
}

func (log *KLog) Tracef(format string, v ...interface{}) {
	klog.V(klog.Level(log.verbosities[LevelTrace])).Infof(format, v...)
}

func (log *KLog) Debug(v ...interface{}) {
	klog.V(klog.Level(log.verbosities[LevelDebug])).Info(v...)
}

func (log *KLog) Debugf(format string, v ...interface{}) {
	klog.V(klog.Level(log.verbosities[LevelDebug])).Infof(format, v...)
}

func (log *KLog) Info(v ...interface{}) {
	klog.V(klog.Level(log.verbosities[LevelInfo])).Info(v...)
}

func (log *KLog) Infof(format string, v ...interface{}) {
	klog.V(klog.Level(log.verbosities[LevelInfo])).Infof(format, v...)
}

// warnings keep the klog WARNING severity instead of a verbosity gated INFO
func (log *KLog) Warn(v ...interface{}) {
	if klog.V(klog.Level(log.verbosities[LevelWarn])).Enabled() {
		klog.Warning(v...)
	}
}

func (log *KLog) Warnf(format string, v ...interface{}) {
	if klog.V(klog.Level(log.verbosities[LevelWarn])).Enabled() {
		klog.Warningf(format, v...)
	}
}

func (log *KLog) Error(v ...interface{}) {
	klog.Error(v...)
}

func (log *KLog) Errorf(format string, v ...interface{}) {
	klog.Errorf(format, v...)
}
