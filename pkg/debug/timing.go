// Package debug provides instrumentation for section collection.
package debug

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/danpilch/storagedump/pkg/collectors"
	"github.com/danpilch/storagedump/pkg/output"
)

// CollectorTiming records the duration of a collector's Collect call.
type CollectorTiming struct {
	Name     string
	Duration time.Duration
}

// TimedCollector wraps a collectors.Collector to record collection duration.
type TimedCollector struct {
	inner  collectors.Collector
	Timing CollectorTiming
}

// NewTimedCollector wraps a collector with timing instrumentation.
func NewTimedCollector(c collectors.Collector) *TimedCollector {
	return &TimedCollector{
		inner: c,
	}
}

// Name returns the wrapped collector's name.
func (t *TimedCollector) Name() string {
	return t.inner.Name()
}

// Collect runs the wrapped collector and records duration.
func (t *TimedCollector) Collect(f *output.Formatter) {
	start := time.Now()
	t.inner.Collect(f)
	t.Timing = CollectorTiming{
		Name:     t.inner.Name(),
		Duration: time.Since(start),
	}
}

// LogTimings writes one debug entry per timing and a total.
func LogTimings(logger *logrus.Logger, timings []CollectorTiming) {
	var total time.Duration
	for _, t := range timings {
		logger.WithFields(logrus.Fields{
			"section":  t.Name,
			"duration": t.Duration,
		}).Debug("Section collected")
		total += t.Duration
	}
	logger.WithField("duration", total).Debug("Report collected")
}
