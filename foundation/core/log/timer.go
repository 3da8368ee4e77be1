// File: timer.go
// Title: Phase Timer
// Description: Measures how long an operation took and logs the result when
//              the timer is stopped. The compiler uses one timer per phase.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with performance timing
// - 2026-10-19 v0.2.0: Reduced to phase timing, StopWithCount

package log

import (
	"time"
)

// Timer represents a performance timer for measuring operation duration
type Timer struct {
	logger    *Logger
	operation string
	startTime time.Time
	fields    Fields
	level     Level
	stopped   bool
}

// NewTimer creates a new timer for the given operation
func NewTimer(logger *Logger, operation string) *Timer {
	return &Timer{
		logger:    logger,
		operation: operation,
		startTime: time.Now(),
		fields:    make(Fields),
		level:     LevelDebug,
	}
}

// WithLevel sets the log level for the timer completion message
func (t *Timer) WithLevel(level Level) *Timer {
	t.level = level
	return t
}

// WithField adds a field to be logged when the timer completes
func (t *Timer) WithField(key string, value interface{}) *Timer {
	t.fields[key] = value
	return t
}

// Elapsed returns the elapsed time since the timer was started
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.startTime)
}

// Stop stops the timer and logs the elapsed time. Stopping twice returns 0
// and logs nothing.
func (t *Timer) Stop() time.Duration {
	return t.finish(nil, nil)
}

// StopWithCount stops the timer and records how many items the operation
// produced, e.g. tokens or diagnostics.
func (t *Timer) StopWithCount(key string, n int) time.Duration {
	return t.finish(Fields{key: n}, nil)
}

// StopWithError stops the timer and logs the failure at warn level or higher
func (t *Timer) StopWithError(err error) time.Duration {
	return t.finish(nil, err)
}

// Checkpoint logs an intermediate time without stopping the timer
func (t *Timer) Checkpoint(name string) {
	if t.stopped || t.logger == nil {
		return
	}
	t.logger.log(t.level, t.operation+" checkpoint", nil, t.fields, Fields{
		"checkpoint": name,
		"elapsed":    t.Elapsed().String(),
	})
}

// IsRunning returns true while the timer has not been stopped
func (t *Timer) IsRunning() bool {
	return !t.stopped
}

func (t *Timer) finish(extra Fields, err error) time.Duration {
	if t.stopped {
		return 0
	}
	elapsed := t.Elapsed()
	t.stopped = true

	if t.logger == nil {
		return elapsed
	}

	level := t.level
	message := t.operation + " completed"
	if err != nil {
		message = t.operation + " failed"
		if level < LevelWarn {
			level = LevelWarn
		}
	}

	t.logger.logTimed(level, message, err, elapsed, t.fields, extra)
	return elapsed
}
