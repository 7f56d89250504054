package debug

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danpilch/storagedump/pkg/output"
)

type stubCollector struct {
	calls int
}

func (s *stubCollector) Name() string { return "stub" }

func (s *stubCollector) Collect(f *output.Formatter) {
	s.calls++
	f.Pair("stub", "1")
}

func TestTimedCollector(t *testing.T) {
	inner := &stubCollector{}
	tc := NewTimedCollector(inner)

	var buf bytes.Buffer
	tc.Collect(output.NewFormatter(&buf))

	assert.Equal(t, "stub", tc.Name())
	assert.Equal(t, 1, inner.calls)
	assert.Equal(t, "stub", tc.Timing.Name)
	assert.GreaterOrEqual(t, int64(tc.Timing.Duration), int64(0))
	assert.Equal(t, "stub:1\n", buf.String())
}

func TestLogTimings(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	LogTimings(logger, []CollectorTiming{{Name: "F2FS"}, {Name: "UFS"}})

	entries := hook.AllEntries()
	require.Len(t, entries, 3)
	assert.Equal(t, "F2FS", entries[0].Data["section"])
	assert.Equal(t, "Report collected", entries[2].Message)
}
