// Package report generates the storage diagnostics report.
package report

import (
	"io"

	"github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"

	"github.com/danpilch/storagedump/pkg/collectors"
	"github.com/danpilch/storagedump/pkg/debug"
	"github.com/danpilch/storagedump/pkg/output"
)

// Reporter visits every section collector in order and renders the report.
type Reporter struct {
	registry *collectors.Registry
	logger   *logrus.Logger
}

// NewReporter creates a reporter over registry.
func NewReporter(registry *collectors.Registry, logger *logrus.Logger) *Reporter {
	if logger == nil {
		logger = logrus.New()
		logger.SetLevel(logrus.WarnLevel)
	}
	return &Reporter{
		registry: registry,
		logger:   logger,
	}
}

// Generate writes the full report to w. Sources that cannot be read are
// left out; generation itself never fails.
func (r *Reporter) Generate(w io.Writer) {
	r.logger.WithField("kernel", kernelRelease()).Debug("Collecting storage report")

	f := output.NewFormatter(w)
	timings := make([]debug.CollectorTiming, 0, len(r.registry.Collectors()))
	for _, c := range r.registry.Collectors() {
		tc := debug.NewTimedCollector(c)
		tc.Collect(f)
		timings = append(timings, tc.Timing)
	}

	debug.LogTimings(r.logger, timings)
}

func kernelRelease() string {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return "unknown"
	}
	return unix.ByteSliceToString(uts.Release[:])
}
