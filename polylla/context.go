package polylla

import (
	"fmt"
	"time"
)

// LogCategory classifies a BuildContext log entry.
type LogCategory int

const (
	LogProgress LogCategory = iota
	LogWarning
	LogError
)

// TimerLabel names one of the pipeline's accumulated timers.
type TimerLabel int

const (
	TimerLabelMaxEdges TimerLabel = iota
	TimerLabelFrontierEdges
	TimerLabelSeedEdges
	TimerTraversalAndRepair
	TimerTraversal
	TimerRepair
	TimerSmooth
	numTimers
)

const maxLogMessages = 1000

// BuildContext accumulates log messages and per-phase timings during a
// pipeline run. Logging and timing can each be disabled independently.
type BuildContext struct {
	logEnabled   bool
	timerEnabled bool

	messages []string

	startTime [numTimers]time.Time
	accTime   [numTimers]time.Duration
}

// NewBuildContext creates a BuildContext with logging and timers both
// enabled or both disabled according to state.
func NewBuildContext(state bool) *BuildContext {
	return &BuildContext{logEnabled: state, timerEnabled: state}
}

// EnableLog toggles logging.
func (c *BuildContext) EnableLog(state bool) { c.logEnabled = state }

// EnableTimer toggles the performance timers.
func (c *BuildContext) EnableTimer(state bool) { c.timerEnabled = state }

// Progressf logs a progress message.
func (c *BuildContext) Progressf(format string, args ...interface{}) {
	c.log(LogProgress, format, args...)
}

// Warningf logs a warning message.
func (c *BuildContext) Warningf(format string, args ...interface{}) {
	c.log(LogWarning, format, args...)
}

// Errorf logs an error message.
func (c *BuildContext) Errorf(format string, args ...interface{}) {
	c.log(LogError, format, args...)
}

func (c *BuildContext) log(category LogCategory, format string, args ...interface{}) {
	if !c.logEnabled || len(c.messages) >= maxLogMessages {
		return
	}
	prefix := map[LogCategory]string{LogProgress: "PROG ", LogWarning: "WARN ", LogError: "ERR "}[category]
	c.messages = append(c.messages, prefix+fmt.Sprintf(format, args...))
}

// Messages returns the accumulated log messages in emission order.
func (c *BuildContext) Messages() []string { return c.messages }

// StartTimer starts the named timer.
func (c *BuildContext) StartTimer(label TimerLabel) {
	if c.timerEnabled {
		c.startTime[label] = time.Now()
	}
}

// StopTimer stops the named timer, accumulating the elapsed time.
func (c *BuildContext) StopTimer(label TimerLabel) {
	if c.timerEnabled {
		c.accTime[label] += time.Since(c.startTime[label])
	}
}

// AccumulatedTime returns the total accumulated time for the named timer.
func (c *BuildContext) AccumulatedTime(label TimerLabel) time.Duration {
	if !c.timerEnabled {
		return 0
	}
	return c.accTime[label]
}

// AccumulatedMillis returns AccumulatedTime in fractional milliseconds.
func (c *BuildContext) AccumulatedMillis(label TimerLabel) float64 {
	return float64(c.AccumulatedTime(label).Nanoseconds()) / 1e6
}
